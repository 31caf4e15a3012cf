package domain

// Cabin types
const (
	CabinInterior  = "interior"
	CabinOceanview = "oceanview"
	CabinBalcony   = "balcony"
	CabinSuite     = "suite"
)

// CabinBasePrices base fare per passenger in PHP
var CabinBasePrices = map[string]int64{
	CabinInterior:  59900,
	CabinOceanview: 79900,
	CabinBalcony:   99900,
	CabinSuite:     149900,
}

// Pricing constants
const (
	Currency            = "PHP"
	VATPercent          = 12   // 12% VAT on subtotal
	PortFeePerPassenger = 2500 // port fees per person
)

// Identifier prefixes
const (
	ReferencePrefix     = "PHLNCL-"
	TransactionIDPrefix = "TXN-"
)

// Payment constants
const (
	PaymentStatusCompleted = "completed"
)

// Confirmation constants
const (
	EmergencyContact = "+63 2 8123 4567"
)

// CheckInInstructions are shown on every confirmation
var CheckInInstructions = []string{
	"Arrive at port 2 hours before departure",
	"Bring valid passport and booking confirmation",
	"Complete online check-in 24 hours prior",
	"Download Philippines NCL mobile app for updates",
}

// Validation constants
const (
	MaxPassengersPerBooking  = 10
	MaxSpecialRequestsLength = 1000
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// AllStatuses список всех статусов бронирования
var AllStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCancelled,
}
