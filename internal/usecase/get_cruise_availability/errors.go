package get_cruise_availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_cruise_availability: invalid input data")

	// ErrCruiseNotFound возвращается, когда круиз не найден
	ErrCruiseNotFound = errors.New("get_cruise_availability: cruise not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_cruise_availability: internal error")
)
