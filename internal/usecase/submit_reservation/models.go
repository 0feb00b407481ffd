package submit_reservation

import (
	"github.com/m04kA/SMC-CabinReservationService/internal/domain"
	"github.com/m04kA/SMC-CabinReservationService/internal/integrations/checkout"
)

// Тексты уведомлений пользователю
const (
	MsgBookingFailed     = "There was an issue creating your booking. Please try again."
	MsgPaymentSucceeded  = "Payment successful and room booked!"
	MsgPostPaymentFailed = checkout.MsgPaymentNotRecorded
	MsgPaymentFailed     = "Payment failed: "
	MsgCheckoutFailed    = "There was an issue with the payment. Please try again."
)

// Статусы завершенной отправки
const (
	StatusBooked = "booked" // бронь без оплаты
	StatusPaid   = "paid"   // оплачено и забронировано
)

// Исходы отправки для метрик
const (
	resultBooked           = "booked"
	resultBookingFailed    = "booking_failed"
	resultCheckoutFailed   = "checkout_failed"
	resultPaymentFailed    = "payment_failed"
	resultMissingPaymentID = "missing_payment_id"
)

// Settings параметры витрины для онлайн-оплаты
type Settings struct {
	MerchantKey      string // публичный ключ мерчанта для виджета
	Currency         string
	DisplayName      string
	ConfirmationPath string
}

// Request модель запроса на отправку формы бронирования
type Request struct {
	User         domain.User         // Пользователь (из заголовков авторизации)
	CabinID      int64               // ID домика
	Action       domain.SubmitAction // payOffline или payOnline
	NumGuests    int                 // Количество гостей
	Observations string              // Пожелания гостя (опционально)
	RawForm      map[string]string   // Все поля формы как есть
}

// Response модель ответа с итогом отправки
type Response struct {
	Action     domain.SubmitAction
	BookingID  int64
	NumNights  int
	CabinPrice domain.Money
	PaymentID  *string
	Redirect   string
	Status     string
}
