package process_payment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("process_payment: invalid input data")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("process_payment: booking not found")

	// ErrBookingCancelled возвращается при попытке оплатить отмененное бронирование
	ErrBookingCancelled = errors.New("process_payment: booking is cancelled")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("process_payment: internal error")
)
