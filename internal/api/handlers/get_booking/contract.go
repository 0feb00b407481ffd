package get_booking

import (
	"context"

	"github.com/m04kA/SMC-CabinReservationService/internal/service/bookings/models"
)

// BookingService чтение брони для страницы подтверждения
type BookingService interface {
	GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error)
}

type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
