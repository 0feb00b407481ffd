package checkout_result

import (
	"github.com/m04kA/SMC-CabinReservationService/internal/integrations/checkout"
)

const eventPaymentFailed = "payment.failed"

// Статусы разрешенной сессии оплаты
const (
	statusPaid       = "paid"
	statusFailed     = "failed"
	statusUnverified = "unverified"
)

// PaymentError ошибка из события payment.failed
type PaymentError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// OutcomeRequest то, что виджет вернул браузеру
type OutcomeRequest struct {
	PaymentID string        `json:"razorpay_payment_id"`
	OrderID   string        `json:"razorpay_order_id"`
	Signature string        `json:"razorpay_signature"`
	Event     string        `json:"event"`
	Error     *PaymentError `json:"error"`
}

// OutcomeResponse HTTP response model
type OutcomeResponse struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
}

// ToOutcome конвертирует HTTP запрос в результат виджета
func (r *OutcomeRequest) ToOutcome() *checkout.Outcome {
	outcome := &checkout.Outcome{
		PaymentID: r.PaymentID,
		OrderID:   r.OrderID,
		Signature: r.Signature,
		Failed:    r.Event == eventPaymentFailed,
	}
	if r.Error != nil {
		outcome.Failed = true
		outcome.ErrorCode = r.Error.Code
		outcome.ErrorDescription = r.Error.Description
	}
	return outcome
}

func statusOf(res *checkout.Result) string {
	switch {
	case res.Failed:
		return statusFailed
	case res.PaymentID == "":
		return statusUnverified
	default:
		return statusPaid
	}
}
