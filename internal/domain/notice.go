package domain

import "time"

// NoticeKind is the kind of user-visible feedback
type NoticeKind string

const (
	NoticeSuccess  NoticeKind = "success"
	NoticeFailure  NoticeKind = "failure"
	NoticeNavigate NoticeKind = "navigate"
	NoticeCheckout NoticeKind = "checkout"
)

// Notice is one entry of a user's feedback feed: a message to show,
// a destination to navigate to or a checkout widget to open.
type Notice struct {
	ID          string
	Kind        NoticeKind
	Message     string
	Destination string
	Checkout    *CheckoutSession
	CreatedAt   time.Time
}

// CheckoutPrefill pre-populates the checkout widget
type CheckoutPrefill struct {
	Name  string
	Email string
}

// CheckoutSession carries everything the browser needs to open the
// payment provider's hosted widget for a created order.
type CheckoutSession struct {
	Provider     string
	OrderID      string
	Key          string
	AmountMinor  int64
	Currency     string
	Name         string
	Description  string
	ClientSecret string
	Prefill      CheckoutPrefill
	Notes        map[string]string
}
