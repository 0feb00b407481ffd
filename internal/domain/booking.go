package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusUnconfirmed BookingStatus = "unconfirmed"
	StatusCheckedIn   BookingStatus = "checked-in"
	StatusCheckedOut  BookingStatus = "checked-out"
)

// PaymentMethod describes how the guest pays for the stay
type PaymentMethod string

const (
	PaymentOffline PaymentMethod = "offline" // pay on arrival
	PaymentOnline  PaymentMethod = "online"  // paid through the checkout widget
)

// SubmitAction is the named submit control the guest activated
type SubmitAction string

const (
	ActionPayOffline SubmitAction = "payOffline"
	ActionPayOnline  SubmitAction = "payOnline"
)

// IsValid returns true for the two known submit actions
func (a SubmitAction) IsValid() bool {
	return a == ActionPayOffline || a == ActionPayOnline
}

// BookingDraft is assembled per submission and handed to the booking
// operations. It is never kept after the submission completes.
type BookingDraft struct {
	StartDate    time.Time
	EndDate      time.Time
	NumNights    int
	CabinPrice   Money
	CabinID      int64
	UserID       int64
	NumGuests    int
	Observations string
	PaymentID    *string
}

// HasPayment returns true if the draft carries a non-empty payment identifier
func (d *BookingDraft) HasPayment() bool {
	return d.PaymentID != nil && *d.PaymentID != ""
}

// Booking represents a persisted cabin booking
type Booking struct {
	ID            int64
	CabinID       int64
	UserID        int64
	StartDate     time.Time
	EndDate       time.Time
	NumNights     int
	NumGuests     int
	CabinPrice    Money
	ExtrasPrice   Money
	TotalPrice    Money
	HasBreakfast  bool
	IsPaid        bool
	PaymentMethod PaymentMethod
	PaymentID     *string
	Status        BookingStatus
	Observations  *string
	FormSnapshot  map[string]string // raw form fields of an online submission

	CreatedAt time.Time
}

// IsOnline returns true if the booking was paid through the checkout
func (b *Booking) IsOnline() bool {
	return b.PaymentMethod == PaymentOnline
}
