package razorpay

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("razorpay client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от Razorpay
	ErrInvalidResponse = errors.New("razorpay client: invalid response")

	// ErrUnauthorized возвращается при неверных ключах API
	ErrUnauthorized = errors.New("razorpay client: unauthorized")
)
