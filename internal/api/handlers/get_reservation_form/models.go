package get_reservation_form

import (
	"github.com/m04kA/SMC-CabinReservationService/internal/api/handlers"
	getReservationForm "github.com/m04kA/SMC-CabinReservationService/internal/usecase/get_reservation_form"
)

// CabinView данные домика для формы
type CabinView struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	MaxCapacity  int     `json:"maxCapacity"`
	RegularPrice float64 `json:"regularPrice"`
	Discount     float64 `json:"discount"`
	Image        string  `json:"image,omitempty"`
}

// UserView отображаемые данные гостя
type UserView struct {
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

// RangeView выбранные даты
type RangeView struct {
	From *string `json:"from"`
	To   *string `json:"to"`
}

// GuestOptionView вариант выбора количества гостей
type GuestOptionView struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// ReservationFormResponse HTTP response model
type ReservationFormResponse struct {
	Cabin        CabinView         `json:"cabin"`
	User         UserView          `json:"user"`
	Range        RangeView         `json:"range"`
	NumNights    int               `json:"numNights"`
	CabinPrice   float64           `json:"cabinPrice"`
	GuestOptions []GuestOptionView `json:"guestOptions"`
	CanSubmit    bool              `json:"canSubmit"`
	Actions      []string          `json:"actions"`
	Hint         string            `json:"hint,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getReservationForm.Response) *ReservationFormResponse {
	options := make([]GuestOptionView, 0, len(resp.GuestOptions))
	for _, o := range resp.GuestOptions {
		options = append(options, GuestOptionView{Value: o.Value, Label: o.Label})
	}

	actions := make([]string, 0, len(resp.Actions))
	for _, a := range resp.Actions {
		actions = append(actions, string(a))
	}

	return &ReservationFormResponse{
		Cabin: CabinView{
			ID:           resp.Cabin.ID,
			Name:         resp.Cabin.Name,
			MaxCapacity:  resp.Cabin.MaxCapacity,
			RegularPrice: resp.Cabin.RegularPrice.Major(),
			Discount:     resp.Cabin.Discount.Major(),
			Image:        resp.Cabin.Image,
		},
		User: UserView{
			Name:  resp.User.Name,
			Image: resp.User.Image,
		},
		Range: RangeView{
			From: handlers.FormatDate(resp.Range.From),
			To:   handlers.FormatDate(resp.Range.To),
		},
		NumNights:    resp.NumNights,
		CabinPrice:   resp.CabinPrice.Major(),
		GuestOptions: options,
		CanSubmit:    resp.CanSubmit,
		Actions:      actions,
		Hint:         resp.Hint,
	}
}
