package selection

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CabinReservationService/internal/domain"
)

// RangeStore хранилище выбранных диапазонов дат
type RangeStore interface {
	Load(ctx context.Context, userID int64) (*domain.DateRange, error)
	Save(ctx context.Context, userID int64, rng domain.DateRange, ttl time.Duration) error
	Delete(ctx context.Context, userID int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
