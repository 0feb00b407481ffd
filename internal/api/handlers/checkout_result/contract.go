package checkout_result

import (
	"context"

	"github.com/m04kA/SMC-CabinReservationService/internal/integrations/checkout"
)

type CheckoutResolver interface {
	Resolve(ctx context.Context, userID int64, orderID string, outcome *checkout.Outcome) (*checkout.Result, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
