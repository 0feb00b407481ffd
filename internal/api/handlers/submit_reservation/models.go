package submit_reservation

import (
	"strconv"

	"github.com/m04kA/SMC-CabinReservationService/internal/domain"
	submitReservation "github.com/m04kA/SMC-CabinReservationService/internal/usecase/submit_reservation"
)

// Статус онлайн-отправки, пока виджет оплаты не вернул результат
const statusPending = "pending"

// SubmitReservationRequest HTTP request model
type SubmitReservationRequest struct {
	Action       string `json:"action" validate:"required,oneof=payOffline payOnline"`
	NumGuests    int    `json:"numGuests" validate:"required,min=1"`
	Observations string `json:"observations" validate:"max=1000"`
}

// SubmitReservationResponse HTTP response model
type SubmitReservationResponse struct {
	Action     string  `json:"action"`
	Status     string  `json:"status"`
	BookingID  *int64  `json:"bookingId,omitempty"`
	NumNights  int     `json:"numNights"`
	CabinPrice float64 `json:"cabinPrice"`
	PaymentID  *string `json:"paymentId,omitempty"`
	Redirect   string  `json:"redirect,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SubmitReservationRequest) ToUseCaseRequest(user domain.User, cabinID int64) *submitReservation.Request {
	return &submitReservation.Request{
		User:         user,
		CabinID:      cabinID,
		Action:       domain.SubmitAction(r.Action),
		NumGuests:    r.NumGuests,
		Observations: r.Observations,
		RawForm: map[string]string{
			"action":       r.Action,
			"cabinId":      strconv.FormatInt(cabinID, 10),
			"numGuests":    strconv.Itoa(r.NumGuests),
			"observations": r.Observations,
		},
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *submitReservation.Response) *SubmitReservationResponse {
	bookingID := resp.BookingID
	return &SubmitReservationResponse{
		Action:     string(resp.Action),
		Status:     resp.Status,
		BookingID:  &bookingID,
		NumNights:  resp.NumNights,
		CabinPrice: resp.CabinPrice.Major(),
		PaymentID:  resp.PaymentID,
		Redirect:   resp.Redirect,
	}
}

// pendingResponse ответ на онлайн-отправку, ожидающую оплаты
func pendingResponse(draft domain.BookingDraft) *SubmitReservationResponse {
	return &SubmitReservationResponse{
		Action:     string(domain.ActionPayOnline),
		Status:     statusPending,
		NumNights:  draft.NumNights,
		CabinPrice: draft.CabinPrice.Major(),
	}
}
