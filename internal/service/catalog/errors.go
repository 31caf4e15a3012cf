package catalog

import "errors"

var (
	// ErrCruiseNotFound возвращается, когда круиз не найден
	ErrCruiseNotFound = errors.New("cruise not found")

	// ErrInvalidInput возвращается при некорректных параметрах фильтра
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("catalog: internal error")
)
