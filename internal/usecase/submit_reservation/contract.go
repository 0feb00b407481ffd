package submit_reservation

import (
	"context"

	"github.com/m04kA/SMC-CabinReservationService/internal/domain"
	"github.com/m04kA/SMC-CabinReservationService/internal/integrations/checkout"
)

// CabinRepository интерфейс репозитория домиков
type CabinRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Cabin, error)
}

// RangeSelection общий выбор дат пользователя
type RangeSelection interface {
	Get(ctx context.Context, userID int64) (domain.DateRange, error)
	Reset(ctx context.Context, userID int64) error
}

// BookingService внешние операции создания бронирований
type BookingService interface {
	CreateBooking(ctx context.Context, draft *domain.BookingDraft) (*domain.Booking, error)
	CreateBookingOnline(ctx context.Context, draft *domain.BookingDraft, rawForm map[string]string) (*domain.Booking, error)
}

// PaymentClient открывает оплату и ждет ее результата
type PaymentClient interface {
	OpenCheckout(ctx context.Context, cfg *checkout.Config) (*checkout.Result, error)
}

// Notifier уведомления, которые видит пользователь
type Notifier interface {
	Success(ctx context.Context, userID int64, message string)
	Failure(ctx context.Context, userID int64, message string)
	Navigate(ctx context.Context, userID int64, destination string)
}

// MetricsRecorder учет исходов отправки формы
type MetricsRecorder interface {
	ObserveSubmission(action, result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
