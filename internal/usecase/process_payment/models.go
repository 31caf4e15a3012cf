package process_payment

import "github.com/m04kA/SMC-CruiseBookingService/internal/domain"

// Request модель запроса на оплату бронирования
type Request struct {
	Reference     string                 // Номер бронирования
	PaymentMethod string                 // Способ оплаты
	Details       map[string]interface{} // Реквизиты; не сохраняются и не логируются
}

// Response модель ответа с подтвержденным бронированием и квитанцией
type Response struct {
	Booking *domain.Booking
	Payment domain.Payment
}
