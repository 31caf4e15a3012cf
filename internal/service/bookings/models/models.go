package models

import (
	"time"

	"github.com/m04kA/SMC-CruiseBookingService/internal/domain"
)

// Request модели

// UpdateBookingRequest изменяемые поля бронирования.
// Остальные поля (статус, цена, пассажиры, номер) через обновление не меняются.
type UpdateBookingRequest struct {
	SpecialRequests *string         `json:"specialRequests,omitempty"`
	ContactInfo     *ContactInfoDTO `json:"contactInfo,omitempty"`
}

// IsEmpty возвращает true, если в запросе нет ни одного поля
func (r *UpdateBookingRequest) IsEmpty() bool {
	return r.SpecialRequests == nil && r.ContactInfo == nil
}

// ListBookingsRequest фильтр списка бронирований
type ListBookingsRequest struct {
	Status   *string `json:"status,omitempty"`
	CruiseID *int64  `json:"cruiseId,omitempty"`
}

// Общие DTO

// PassengerDTO пассажир
type PassengerDTO struct {
	FirstName      string  `json:"firstName"`
	LastName       string  `json:"lastName"`
	DateOfBirth    string  `json:"dateOfBirth"`
	Nationality    string  `json:"nationality"`
	PassportNumber string  `json:"passportNumber"`
	SpecialNeeds   *string `json:"specialNeeds,omitempty"`
}

// ContactInfoDTO контакты владельца бронирования
type ContactInfoDTO struct {
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// PricingDTO расчет стоимости
type PricingDTO struct {
	BasePrice      int64  `json:"basePrice"`
	PassengerCount int    `json:"passengerCount"`
	Subtotal       int64  `json:"subtotal"`
	Taxes          int64  `json:"taxes"`
	Fees           int64  `json:"fees"`
	Total          int64  `json:"total"`
	Currency       string `json:"currency"`
}

// PaymentDTO квитанция об оплате
type PaymentDTO struct {
	TransactionID string    `json:"transactionId"`
	Status        string    `json:"status"`
	Amount        int64     `json:"amount"`
	Currency      string    `json:"currency"`
	PaymentMethod string    `json:"paymentMethod"`
	ProcessedAt   time.Time `json:"processedAt"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID               int64          `json:"id"`
	BookingReference string         `json:"bookingReference"`
	CruiseID         int64          `json:"cruiseId"`
	SailingDate      string         `json:"sailingDate"` // "2024-11-15"
	CabinType        string         `json:"cabinType"`
	Passengers       []PassengerDTO `json:"passengers"`
	SpecialRequests  *string        `json:"specialRequests,omitempty"`
	ContactInfo      ContactInfoDTO `json:"contactInfo"`
	Pricing          PricingDTO     `json:"pricing"`
	Status           string         `json:"status"`
	Payment          *PaymentDTO    `json:"payment,omitempty"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Count    int               `json:"count"`
	Bookings []BookingResponse `json:"bookings"`
}

// CruiseDetailsDTO краткие данные круиза в подтверждении
type CruiseDetailsDTO struct {
	CruiseID    int64  `json:"cruiseId"`
	CruiseName  string `json:"cruiseName,omitempty"`
	Ship        string `json:"ship,omitempty"`
	SailingDate string `json:"sailingDate"`
	CabinType   string `json:"cabinType"`
}

// ConfirmationResponse подтверждение подтвержденного бронирования
type ConfirmationResponse struct {
	BookingReference    string           `json:"bookingReference"`
	CruiseDetails       CruiseDetailsDTO `json:"cruiseDetails"`
	Passengers          []PassengerDTO   `json:"passengers"`
	TotalAmount         int64            `json:"totalAmount"`
	Currency            string           `json:"currency"`
	TransactionID       string           `json:"transactionId,omitempty"`
	CheckInInstructions []string         `json:"checkInInstructions"`
	EmergencyContact    string           `json:"emergencyContact"`
	ConfirmationDate    time.Time        `json:"confirmationDate"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:               b.ID,
		BookingReference: b.Reference,
		CruiseID:         b.CruiseID,
		SailingDate:      b.SailingDate,
		CabinType:        b.CabinType,
		Passengers:       FromDomainPassengers(b.Passengers),
		SpecialRequests:  b.SpecialRequests,
		ContactInfo:      FromDomainContactInfo(b.ContactInfo),
		Pricing:          FromDomainPricing(b.Pricing),
		Status:           string(b.Status),
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}

	if b.Payment != nil {
		resp.Payment = FromDomainPayment(*b.Payment)
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Count:    len(bookings),
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// FromDomainPassengers конвертирует пассажиров в DTO
func FromDomainPassengers(passengers []domain.Passenger) []PassengerDTO {
	result := make([]PassengerDTO, len(passengers))
	for i, p := range passengers {
		result[i] = PassengerDTO{
			FirstName:      p.FirstName,
			LastName:       p.LastName,
			DateOfBirth:    p.DateOfBirth,
			Nationality:    p.Nationality,
			PassportNumber: p.PassportNumber,
			SpecialNeeds:   p.SpecialNeeds,
		}
	}
	return result
}

// ToDomainPassengers конвертирует DTO пассажиров в domain модели
func ToDomainPassengers(passengers []PassengerDTO) []domain.Passenger {
	if passengers == nil {
		return nil
	}

	result := make([]domain.Passenger, len(passengers))
	for i, p := range passengers {
		result[i] = domain.Passenger{
			FirstName:      p.FirstName,
			LastName:       p.LastName,
			DateOfBirth:    p.DateOfBirth,
			Nationality:    p.Nationality,
			PassportNumber: p.PassportNumber,
			SpecialNeeds:   p.SpecialNeeds,
		}
	}
	return result
}

// FromDomainContactInfo конвертирует контакты в DTO
func FromDomainContactInfo(c domain.ContactInfo) ContactInfoDTO {
	return ContactInfoDTO{
		Email:   c.Email,
		Phone:   c.Phone,
		Address: c.Address,
	}
}

// ToDomain конвертирует DTO контактов в domain модель
func (c *ContactInfoDTO) ToDomain() *domain.ContactInfo {
	if c == nil {
		return nil
	}
	return &domain.ContactInfo{
		Email:   c.Email,
		Phone:   c.Phone,
		Address: c.Address,
	}
}

// FromDomainPricing конвертирует расчет стоимости в DTO
func FromDomainPricing(p domain.Pricing) PricingDTO {
	return PricingDTO{
		BasePrice:      p.BasePrice,
		PassengerCount: p.PassengerCount,
		Subtotal:       p.Subtotal,
		Taxes:          p.Taxes,
		Fees:           p.Fees,
		Total:          p.Total,
		Currency:       p.Currency,
	}
}

// FromDomainPayment конвертирует квитанцию в DTO
func FromDomainPayment(p domain.Payment) *PaymentDTO {
	return &PaymentDTO{
		TransactionID: p.TransactionID,
		Status:        p.Status,
		Amount:        p.Amount,
		Currency:      p.Currency,
		PaymentMethod: p.PaymentMethod,
		ProcessedAt:   p.ProcessedAt,
	}
}
