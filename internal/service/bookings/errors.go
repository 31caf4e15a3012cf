package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrBookingCancelled возвращается при изменении отмененного бронирования
	ErrBookingCancelled = errors.New("booking is cancelled")

	// ErrNotConfirmed возвращается, когда подтверждение запрошено до оплаты
	ErrNotConfirmed = errors.New("booking is not confirmed")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
