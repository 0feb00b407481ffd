package checkout

// Prefill данные покупателя для предзаполнения виджета
type Prefill struct {
	Name  string
	Email string
}

// Config конфигурация открытия оплаты
type Config struct {
	UserID      int64
	Key         string // публичный ключ мерчанта
	AmountMinor int64  // сумма в минимальных единицах валюты
	Currency    string
	Name        string // отображаемое название магазина
	Description string
	Prefill     Prefill
	Notes       map[string]string
}

// Result итог оплаты, полученный от виджета
type Result struct {
	OrderID     string
	PaymentID   string // пустой, если платеж не удалось подтвердить
	Failed      bool   // событие payment.failed
	Description string // описание ошибки от провайдера
}

// Outcome то, что браузер прислал из виджета оплаты
type Outcome struct {
	PaymentID        string
	OrderID          string
	Signature        string
	Failed           bool
	ErrorCode        string
	ErrorDescription string
}

// OrderRequest запрос на создание заказа у провайдера
type OrderRequest struct {
	AmountMinor int64
	Currency    string
	Receipt     string
	Description string
	Notes       map[string]string
}

// Order заказ, созданный у провайдера
type Order struct {
	ID           string
	AmountMinor  int64
	Currency     string
	ClientSecret string // только для Stripe
}
