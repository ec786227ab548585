package get_availability

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.VehicleType == "" {
		return fmt.Errorf("%w: vehicleType is required", ErrInvalidInput)
	}
	return nil
}
