package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrDuplicateReference возвращается, когда номер бронирования уже занят
	ErrDuplicateReference = errors.New("booking.repository: duplicate reference")

	// ErrTransaction возвращается при ошибках работы с транзакцией
	ErrTransaction = errors.New("booking.repository: transaction error")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")

	// ErrEncode возвращается при ошибке сериализации вложенных данных (пассажиры, оплата)
	ErrEncode = errors.New("booking.repository: failed to encode booking")
)
