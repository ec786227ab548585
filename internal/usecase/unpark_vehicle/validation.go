package unpark_vehicle

import (
	"fmt"
	"strings"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.TicketID) == "" {
		return fmt.Errorf("%w: ticketID is required", ErrInvalidInput)
	}
	return nil
}
