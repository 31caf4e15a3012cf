package process_payment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CruiseBookingService/internal/api/handlers"
	processPayment "github.com/m04kA/SMC-CruiseBookingService/internal/usecase/process_payment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "бронирование не найдено"
	msgCancelled          = "отмененное бронирование нельзя оплатить"
	msgPaid               = "оплата прошла успешно"
)

type Handler struct {
	useCase ProcessPaymentUseCase
	logger  Logger
}

func NewHandler(useCase ProcessPaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/bookings/{reference}/payment
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reference := mux.Vars(r)["reference"]

	var req PaymentRequest
	// Пустое тело разбирается как пустой запрос: сначала проверяется наличие бронирования
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, handlers.ErrEmptyBody) {
		h.logger.Warn("POST /bookings/{reference}/payment - Invalid request body: reference=%s, error=%v", reference, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(reference))
	if err != nil {
		switch {
		case errors.Is(err, processPayment.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{reference}/payment - Validation failed: reference=%s, error=%v", reference, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, processPayment.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{reference}/payment - Booking not found: reference=%s", reference)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, processPayment.ErrBookingCancelled):
			h.logger.Warn("POST /bookings/{reference}/payment - Booking is cancelled: reference=%s", reference)
			handlers.RespondBadRequest(w, msgCancelled)

		default:
			h.logger.Error("POST /bookings/{reference}/payment - Failed to process payment: reference=%s, error=%v", reference, err)
			handlers.RespondInternalErrorWithDetails(w, err)
		}
		return
	}

	h.logger.Info("POST /bookings/{reference}/payment - Payment processed successfully: reference=%s, transaction=%s",
		reference, result.Payment.TransactionID)
	handlers.RespondSuccess(w, http.StatusOK, msgPaid, FromUseCaseResponse(result))
}
