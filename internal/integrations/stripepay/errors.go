package stripepay

import "errors"

var (
	// ErrInternal возвращается при ошибках обращения к Stripe API
	ErrInternal = errors.New("stripe client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от Stripe
	ErrInvalidResponse = errors.New("stripe client: invalid response")

	// ErrPaymentProcessing возвращается, пока платеж в статусе processing
	ErrPaymentProcessing = errors.New("stripe client: payment is still processing")
)
