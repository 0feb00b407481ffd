package get_reservation_form

import (
	"context"

	getReservationForm "github.com/m04kA/SMC-CabinReservationService/internal/usecase/get_reservation_form"
)

type GetReservationFormUseCase interface {
	Execute(ctx context.Context, req *getReservationForm.Request) (*getReservationForm.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
