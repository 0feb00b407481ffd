package submit_reservation

import (
	"fmt"
	"unicode/utf8"

	"github.com/m04kA/SMC-CabinReservationService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	if req.User.ID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.CabinID <= 0 {
		return fmt.Errorf("%w: cabinID must be positive", ErrInvalidInput)
	}

	if !req.Action.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownAction, req.Action)
	}

	if req.NumGuests < domain.MinGuests {
		return fmt.Errorf("%w: at least %d guest required", ErrInvalidGuests, domain.MinGuests)
	}

	if utf8.RuneCountInString(req.Observations) > domain.MaxObservationsLength {
		return fmt.Errorf("%w: observations exceed %d characters", ErrInvalidInput, domain.MaxObservationsLength)
	}

	return nil
}

// validateGuests проверяет вместимость домика
func validateGuests(cabin *domain.Cabin, numGuests int) error {
	if !cabin.AcceptsGuests(numGuests) {
		return fmt.Errorf("%w: cabin %d accepts up to %d guests", ErrInvalidGuests, cabin.ID, cabin.MaxCapacity)
	}
	return nil
}
