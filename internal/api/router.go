package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CruiseBookingService/internal/api/handlers"
	cancelBookingHandler "github.com/m04kA/SMC-CruiseBookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-CruiseBookingService/internal/api/handlers/create_booking"
	getBookingHandler "github.com/m04kA/SMC-CruiseBookingService/internal/api/handlers/get_booking"
	getConfirmationHandler "github.com/m04kA/SMC-CruiseBookingService/internal/api/handlers/get_confirmation"
	getCruiseHandler "github.com/m04kA/SMC-CruiseBookingService/internal/api/handlers/get_cruise"
	getCruiseAvailabilityHandler "github.com/m04kA/SMC-CruiseBookingService/internal/api/handlers/get_cruise_availability"
	healthHandler "github.com/m04kA/SMC-CruiseBookingService/internal/api/handlers/health"
	listBookingsHandler "github.com/m04kA/SMC-CruiseBookingService/internal/api/handlers/list_bookings"
	listCruisesHandler "github.com/m04kA/SMC-CruiseBookingService/internal/api/handlers/list_cruises"
	processPaymentHandler "github.com/m04kA/SMC-CruiseBookingService/internal/api/handlers/process_payment"
	searchCruisesHandler "github.com/m04kA/SMC-CruiseBookingService/internal/api/handlers/search_cruises"
	updateBookingHandler "github.com/m04kA/SMC-CruiseBookingService/internal/api/handlers/update_booking"
	"github.com/m04kA/SMC-CruiseBookingService/internal/api/middleware"
	bookingsService "github.com/m04kA/SMC-CruiseBookingService/internal/service/bookings"
	catalogService "github.com/m04kA/SMC-CruiseBookingService/internal/service/catalog"
	createBookingUC "github.com/m04kA/SMC-CruiseBookingService/internal/usecase/create_booking"
	getCruiseAvailabilityUC "github.com/m04kA/SMC-CruiseBookingService/internal/usecase/get_cruise_availability"
	processPaymentUC "github.com/m04kA/SMC-CruiseBookingService/internal/usecase/process_payment"
	"github.com/m04kA/SMC-CruiseBookingService/pkg/metrics"
)

// Logger общий интерфейс логгера для handlers и middleware
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Deps зависимости HTTP слоя
type Deps struct {
	Bookings              *bookingsService.Service
	Catalog               *catalogService.Service
	CreateBooking         *createBookingUC.UseCase
	ProcessPayment        *processPaymentUC.UseCase
	GetCruiseAvailability *getCruiseAvailabilityUC.UseCase
	Logger                Logger

	// Metrics nil, если метрики выключены
	Metrics     *metrics.Metrics
	MetricsPath string
}

// NewRouter собирает все маршруты сервиса
func NewRouter(deps Deps) *mux.Router {
	log := deps.Logger

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(deps.CreateBooking, log)
	listBookings := listBookingsHandler.NewHandler(deps.Bookings, log)
	getBooking := getBookingHandler.NewHandler(deps.Bookings, log)
	updateBooking := updateBookingHandler.NewHandler(deps.Bookings, log)
	cancelBooking := cancelBookingHandler.NewHandler(deps.Bookings, log)
	processPayment := processPaymentHandler.NewHandler(deps.ProcessPayment, log)
	getConfirmation := getConfirmationHandler.NewHandler(deps.Bookings, log)
	listCruises := listCruisesHandler.NewHandler(deps.Catalog, log)
	searchCruises := searchCruisesHandler.NewHandler(deps.Catalog, log)
	getCruise := getCruiseHandler.NewHandler(deps.Catalog, log)
	getCruiseAvailability := getCruiseAvailabilityHandler.NewHandler(deps.GetCruiseAvailability, log)
	health := healthHandler.NewHandler()

	r := mux.NewRouter()
	r.NotFoundHandler = handlers.NotFoundHandler()
	r.MethodNotAllowedHandler = handlers.NotFoundHandler()

	r.Use(middleware.Recover(log))
	r.Use(middleware.Logging(log))

	if deps.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(deps.Metrics))
		r.Handle(deps.MetricsPath, deps.Metrics.Handler()).Methods(http.MethodGet)
	}

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// --- Каталог ---
	api.HandleFunc("/cruises", listCruises.Handle).Methods(http.MethodGet)
	api.HandleFunc("/cruises/search", searchCruises.Handle).Methods(http.MethodPost)
	api.HandleFunc("/cruises/{id}", getCruise.Handle).Methods(http.MethodGet)
	api.HandleFunc("/cruises/{id}/availability", getCruiseAvailability.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{reference}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{reference}", updateBooking.Handle).Methods(http.MethodPut)
	api.HandleFunc("/bookings/{reference}", cancelBooking.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/bookings/{reference}/payment", processPayment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{reference}/confirmation", getConfirmation.Handle).Methods(http.MethodGet)

	return r
}
