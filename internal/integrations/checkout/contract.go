package checkout

import (
	"context"

	"github.com/m04kA/SMC-CabinReservationService/internal/domain"
)

// Provider платежный провайдер (Razorpay, Stripe)
type Provider interface {
	Name() string
	// CreateOrder создает заказ, под который открывается виджет оплаты
	CreateOrder(ctx context.Context, req *OrderRequest) (*Order, error)
	// VerifyPayment проверяет результат виджета и возвращает ID платежа.
	// Непрошедшая проверка возвращается как ErrVerificationFailed.
	VerifyPayment(ctx context.Context, orderID string, outcome *Outcome) (string, error)
}

// Publisher доставляет браузеру конфигурацию виджета оплаты
// и уведомления о платежах, пришедших после таймаута
type Publisher interface {
	Checkout(ctx context.Context, userID int64, session *domain.CheckoutSession) error
	Failure(ctx context.Context, userID int64, message string)
}

// PendingGauge счетчик ожидающих сессий (prometheus.Gauge)
type PendingGauge interface {
	Inc()
	Dec()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
