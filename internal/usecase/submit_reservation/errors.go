package submit_reservation

import "errors"

var (
	// ErrRangeIncomplete возвращается, если даты заезда и выезда не выбраны
	ErrRangeIncomplete = errors.New("submit_reservation: date range is not selected")

	// ErrInvalidGuests возвращается, если число гостей вне 1..maxCapacity
	ErrInvalidGuests = errors.New("submit_reservation: invalid number of guests")

	// ErrUnknownAction возвращается для неизвестного действия отправки
	ErrUnknownAction = errors.New("submit_reservation: unknown submit action")

	// ErrCabinNotFound возвращается, когда домик не найден
	ErrCabinNotFound = errors.New("submit_reservation: cabin not found")

	// ErrSubmissionInProgress возвращается, пока предыдущая отправка пользователя не завершилась
	ErrSubmissionInProgress = errors.New("submit_reservation: submission already in progress")

	// ErrBookingFailed возвращается, если бронирование не удалось сохранить
	ErrBookingFailed = errors.New("submit_reservation: failed to create booking")

	// ErrCheckoutFailed возвращается, если оплату не удалось открыть
	ErrCheckoutFailed = errors.New("submit_reservation: failed to open checkout")

	// ErrPaymentFailed возвращается, если виджет сообщил об ошибке оплаты
	ErrPaymentFailed = errors.New("submit_reservation: payment failed")

	// ErrMissingPaymentID возвращается, если оплата завершилась без ID платежа
	ErrMissingPaymentID = errors.New("submit_reservation: payment id is missing")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("submit_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("submit_reservation: internal error")
)
