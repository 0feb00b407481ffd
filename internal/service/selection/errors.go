package selection

import "errors"

var (
	// ErrInvalidRange возвращается, если дата выезда не позже даты заезда
	ErrInvalidRange = errors.New("selection: end date must be after start date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("selection: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("selection: internal error")
)
