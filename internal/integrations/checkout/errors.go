package checkout

import "errors"

var (
	// ErrInvalidConfig возвращается при некорректной конфигурации оплаты
	ErrInvalidConfig = errors.New("checkout: invalid checkout config")

	// ErrCreateOrder возвращается, если провайдер не создал заказ
	ErrCreateOrder = errors.New("checkout: failed to create order")

	// ErrPublish возвращается, если конфигурацию виджета не удалось доставить браузеру
	ErrPublish = errors.New("checkout: failed to publish checkout session")

	// ErrAborted возвращается, если результат оплаты не пришел до таймаута или отмены
	ErrAborted = errors.New("checkout: checkout aborted before payment outcome")

	// ErrSessionNotFound возвращается для неизвестного или истекшего заказа
	ErrSessionNotFound = errors.New("checkout: session not found")

	// ErrSessionExpired возвращается для результата, пришедшего после таймаута ожидания
	ErrSessionExpired = errors.New("checkout: session expired")

	// ErrAlreadyResolved возвращается при повторной доставке результата оплаты
	ErrAlreadyResolved = errors.New("checkout: session already resolved")

	// ErrVerificationFailed возвращается провайдером, если платеж не подтвержден
	ErrVerificationFailed = errors.New("checkout: payment verification failed")

	// ErrVerify возвращается при технической ошибке проверки платежа (можно повторить)
	ErrVerify = errors.New("checkout: payment verification error")
)
