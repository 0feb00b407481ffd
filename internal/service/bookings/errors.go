package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("bookings: booking not found")

	// ErrAccessDenied возвращается, когда бронирование принадлежит другому пользователю
	ErrAccessDenied = errors.New("bookings: access denied")

	// ErrInvalidDraft возвращается при некорректном черновике бронирования
	ErrInvalidDraft = errors.New("bookings: invalid booking draft")

	// ErrPaymentIDRequired возвращается, если для онлайн-брони не передан ID платежа
	ErrPaymentIDRequired = errors.New("bookings: payment id is required")

	// ErrDuplicatePayment возвращается, когда платеж уже привязан к другой брони
	ErrDuplicatePayment = errors.New("bookings: payment already used by another booking")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings: internal error")
)
