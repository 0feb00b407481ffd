package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrDuplicatePayment возвращается, когда бронирование с таким payment_id уже существует
	ErrDuplicatePayment = errors.New("booking.repository: booking for payment already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")

	// ErrEncodeSnapshot возвращается, если снимок формы не удалось сериализовать
	ErrEncodeSnapshot = errors.New("booking.repository: failed to encode form snapshot")
)
