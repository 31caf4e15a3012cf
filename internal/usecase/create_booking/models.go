package create_booking

import "github.com/m04kA/SMC-CruiseBookingService/internal/domain"

// Request модель запроса на создание бронирования
type Request struct {
	CruiseID        int64               // ID круиза из каталога
	SailingDate     string              // Дата отправления YYYY-MM-DD
	CabinType       string              // Тип каюты (неизвестный тариф считается как interior)
	Passengers      []domain.Passenger  // Пассажиры, минимум один
	SpecialRequests *string             // Пожелания (опционально)
	ContactInfo     *domain.ContactInfo // Контакты владельца бронирования
}

// Response модель ответа с созданным бронированием
type Response struct {
	Booking *domain.Booking
}
