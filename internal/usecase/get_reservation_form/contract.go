package get_reservation_form

import (
	"context"

	"github.com/m04kA/SMC-CabinReservationService/internal/domain"
)

// CabinRepository интерфейс репозитория домиков
type CabinRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Cabin, error)
}

// RangeSelection общий выбор дат пользователя
type RangeSelection interface {
	Get(ctx context.Context, userID int64) (domain.DateRange, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
