package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Passenger is a traveller listed on a booking
type Passenger struct {
	FirstName      string
	LastName       string
	DateOfBirth    string
	Nationality    string
	PassportNumber string
	SpecialNeeds   *string
}

// ContactInfo is how the cruise line reaches the booking holder
type ContactInfo struct {
	Email   string
	Phone   string
	Address string
}

// Pricing is the price snapshot computed at creation time
type Pricing struct {
	BasePrice      int64
	PassengerCount int
	Subtotal       int64
	Taxes          int64
	Fees           int64
	Total          int64
	Currency       string
}

// Payment is the receipt of a mock payment
type Payment struct {
	TransactionID string
	Status        string
	Amount        int64
	Currency      string
	PaymentMethod string
	ProcessedAt   time.Time
}

// Booking represents a cruise booking in the system
type Booking struct {
	ID          int64
	Reference   string
	CruiseID    int64
	SailingDate string // YYYY-MM-DD
	CabinType   string

	Passengers      []Passenger
	SpecialRequests *string
	ContactInfo     ContactInfo

	Pricing Pricing
	Status  BookingStatus
	Payment *Payment

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// IsConfirmed returns true if the booking has been paid
func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}

// CanBePaid returns true if a payment may be applied.
// Re-payment of a confirmed booking is allowed and replaces the receipt.
func (b *Booking) CanBePaid() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeUpdated returns true if mutable fields may still change
func (b *Booking) CanBeUpdated() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// ApplyPayment attaches the receipt and confirms the booking
func (b *Booking) ApplyPayment(payment Payment, now time.Time) {
	b.Payment = &payment
	b.Status = StatusConfirmed
	b.UpdatedAt = now
}

// Cancel moves the booking to cancelled. Returns false if it already was.
func (b *Booking) Cancel(now time.Time) bool {
	if b.IsCancelled() {
		return false
	}
	b.Status = StatusCancelled
	b.UpdatedAt = now
	return true
}

// Clone returns a deep copy, so stored bookings never share memory with callers
func (b *Booking) Clone() *Booking {
	if b == nil {
		return nil
	}

	c := *b

	if b.Passengers != nil {
		c.Passengers = make([]Passenger, len(b.Passengers))
		for i, p := range b.Passengers {
			c.Passengers[i] = p
			if p.SpecialNeeds != nil {
				needs := *p.SpecialNeeds
				c.Passengers[i].SpecialNeeds = &needs
			}
		}
	}

	if b.SpecialRequests != nil {
		req := *b.SpecialRequests
		c.SpecialRequests = &req
	}

	if b.Payment != nil {
		p := *b.Payment
		c.Payment = &p
	}

	return &c
}

// BookingsFilter фильтр для получения списка бронирований
type BookingsFilter struct {
	Status   *BookingStatus // Фильтр по статусу (опционально)
	CruiseID *int64         // Фильтр по круизу (опционально)
}

// Matches проверяет, подходит ли бронирование под фильтр
func (f BookingsFilter) Matches(b *Booking) bool {
	if f.Status != nil && b.Status != *f.Status {
		return false
	}
	if f.CruiseID != nil && b.CruiseID != *f.CruiseID {
		return false
	}
	return true
}

// ParseBookingStatus validates a status string
func ParseBookingStatus(s string) (BookingStatus, bool) {
	for _, valid := range AllStatuses {
		if BookingStatus(s) == valid {
			return valid, true
		}
	}
	return "", false
}
