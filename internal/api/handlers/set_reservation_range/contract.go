package set_reservation_range

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CabinReservationService/internal/domain"
)

type SelectionService interface {
	Set(ctx context.Context, userID int64, from, to *time.Time) (domain.DateRange, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
