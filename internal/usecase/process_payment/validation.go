package process_payment

import (
	"fmt"
	"strings"
)

// validateRequest валидирует входные данные запроса.
// Вызывается после того, как бронирование найдено.
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.PaymentMethod) == "" {
		return fmt.Errorf("%w: paymentMethod is required", ErrInvalidInput)
	}

	return nil
}
