package get_reservation_form

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CabinReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-CabinReservationService/internal/api/middleware"
	getReservationForm "github.com/m04kA/SMC-CabinReservationService/internal/usecase/get_reservation_form"
)

const (
	msgInvalidCabinID = "некорректный ID домика"
	msgMissingUserID  = "отсутствует ID пользователя"
	msgCabinNotFound  = "домик не найден"
)

type Handler struct {
	useCase GetReservationFormUseCase
	logger  Logger
}

func NewHandler(useCase GetReservationFormUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/cabins/{cabinId}/reservation-form
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	cabinID, err := strconv.ParseInt(mux.Vars(r)["cabinId"], 10, 64)
	if err != nil || cabinID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidCabinID)
		return
	}

	user, ok := middleware.GetUser(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getReservationForm.Request{User: user, CabinID: cabinID})
	if err != nil {
		switch {
		case errors.Is(err, getReservationForm.ErrCabinNotFound):
			handlers.RespondNotFound(w, msgCabinNotFound)
		case errors.Is(err, getReservationForm.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidCabinID)
		default:
			h.logger.Error("GET /cabins/{id}/reservation-form - Failed to build form: cabin_id=%d, user_id=%d, error=%v",
				cabinID, user.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
