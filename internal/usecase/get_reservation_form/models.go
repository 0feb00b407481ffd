package get_reservation_form

import (
	"github.com/m04kA/SMC-CabinReservationService/internal/domain"
)

// HintSelectDates подсказка, пока даты не выбраны
const HintSelectDates = "Start by selecting dates"

// Request модель запроса формы бронирования
type Request struct {
	User    domain.User
	CabinID int64
}

// Response модель формы бронирования
type Response struct {
	Cabin        domain.Cabin
	User         domain.User
	Range        domain.DateRange
	NumNights    int          // 0, пока диапазон не выбран
	CabinPrice   domain.Money // 0, пока диапазон не выбран
	GuestOptions []domain.GuestOption
	CanSubmit    bool
	Actions      []domain.SubmitAction // пусто, если CanSubmit == false
	Hint         string
}
