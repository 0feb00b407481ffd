package selection

import "errors"

var (
	// ErrRangeNotFound возвращается, когда у пользователя нет сохраненного диапазона
	ErrRangeNotFound = errors.New("selection.store: range not found")

	// ErrStore возвращается при ошибках хранилища
	ErrStore = errors.New("selection.store: storage error")
)
