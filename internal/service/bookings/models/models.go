package models

import (
	"time"

	"github.com/m04kA/SMC-CabinReservationService/internal/domain"
)

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID            int64   `json:"id"`
	CabinID       int64   `json:"cabinId"`
	UserID        int64   `json:"userId"`
	StartDate     string  `json:"startDate"` // "2025-10-15"
	EndDate       string  `json:"endDate"`
	NumNights     int     `json:"numNights"`
	NumGuests     int     `json:"numGuests"`
	CabinPrice    float64 `json:"cabinPrice"`
	ExtrasPrice   float64 `json:"extrasPrice"`
	TotalPrice    float64 `json:"totalPrice"`
	HasBreakfast  bool    `json:"hasBreakfast"`
	IsPaid        bool    `json:"isPaid"`
	PaymentMethod string  `json:"paymentMethod"`
	PaymentID     *string `json:"paymentId,omitempty"`
	Status        string  `json:"status"`
	Observations  *string `json:"observations,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:            b.ID,
		CabinID:       b.CabinID,
		UserID:        b.UserID,
		StartDate:     b.StartDate.Format(domain.DateFormat),
		EndDate:       b.EndDate.Format(domain.DateFormat),
		NumNights:     b.NumNights,
		NumGuests:     b.NumGuests,
		CabinPrice:    b.CabinPrice.Major(),
		ExtrasPrice:   b.ExtrasPrice.Major(),
		TotalPrice:    b.TotalPrice.Major(),
		HasBreakfast:  b.HasBreakfast,
		IsPaid:        b.IsPaid,
		PaymentMethod: string(b.PaymentMethod),
		PaymentID:     b.PaymentID,
		Status:        string(b.Status),
		Observations:  b.Observations,
		CreatedAt:     b.CreatedAt,
	}
}
