package get_cruise_availability

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CruiseID <= 0 {
		return fmt.Errorf("%w: cruiseID must be positive", ErrInvalidInput)
	}
	return nil
}
