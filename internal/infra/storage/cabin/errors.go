package cabin

import "errors"

var (
	// ErrCabinNotFound возвращается, когда домик не найден
	ErrCabinNotFound = errors.New("cabin.repository: cabin not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("cabin.repository: failed to build query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("cabin.repository: failed to scan row")
)
