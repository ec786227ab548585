package park_vehicle

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.LicensePlate) == "" {
		return fmt.Errorf("%w: licensePlate is required", ErrInvalidInput)
	}

	if len(req.LicensePlate) > domain.MaxLicensePlateLength {
		return fmt.Errorf("%w: licensePlate must be at most %d characters", ErrInvalidInput, domain.MaxLicensePlateLength)
	}

	if req.VehicleType == "" {
		return fmt.Errorf("%w: vehicleType is required", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}
