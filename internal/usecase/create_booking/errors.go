package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrCruiseNotFound возвращается, когда круиза нет в каталоге
	ErrCruiseNotFound = errors.New("create_booking: cruise not found")

	// ErrSailingDateNotAvailable возвращается, когда круиз не отправляется в указанную дату
	ErrSailingDateNotAvailable = errors.New("create_booking: cruise does not sail on this date")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
