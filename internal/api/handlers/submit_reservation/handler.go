package submit_reservation

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"sync"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CabinReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-CabinReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-CabinReservationService/internal/domain"
	submitReservation "github.com/m04kA/SMC-CabinReservationService/internal/usecase/submit_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidCabinID     = "некорректный ID домика"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgCabinNotFound      = "домик не найден"
	msgRangeIncomplete    = "сначала выберите даты заезда и выезда"
	msgInvalidGuests      = "недопустимое количество гостей"
	msgUnknownAction      = "неизвестное действие отправки формы"
	msgInProgress         = "предыдущая отправка формы еще не завершена"
	msgBookingFailed      = "не удалось создать бронирование, попробуйте еще раз"
)

type Handler struct {
	useCase SubmitReservationUseCase
	baseCtx context.Context
	wg      sync.WaitGroup
	logger  Logger
}

// NewHandler создает обработчик; baseCtx ограничивает фоновые онлайн-оплаты
// и отменяется при остановке сервера
func NewHandler(useCase SubmitReservationUseCase, baseCtx context.Context, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		baseCtx: baseCtx,
		logger:  logger,
	}
}

// Handle POST /api/v1/cabins/{cabinId}/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	cabinID, err := strconv.ParseInt(mux.Vars(r)["cabinId"], 10, 64)
	if err != nil || cabinID <= 0 {
		h.logger.Warn("POST /cabins/{id}/reservations - Invalid cabin ID: %v", mux.Vars(r)["cabinId"])
		handlers.RespondBadRequest(w, msgInvalidCabinID)
		return
	}

	user, ok := middleware.GetUser(r.Context())
	if !ok {
		h.logger.Warn("POST /cabins/{id}/reservations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req SubmitReservationRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /cabins/{id}/reservations - Invalid request body: user_id=%d, error=%v", user.ID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	sub, err := h.useCase.Begin(r.Context(), req.ToUseCaseRequest(user, cabinID))
	if err != nil {
		h.respondError(w, err, user.ID, cabinID)
		return
	}

	if sub.Action() == domain.ActionPayOnline {
		// Оплата ждет результата виджета дольше, чем живет запрос
		draft := sub.Draft()
		h.wg.Add(1)
		go func() {
			defer h.wg.Done()
			if _, err := sub.Complete(h.baseCtx); err != nil {
				h.logger.Warn("POST /cabins/{id}/reservations - Online submission finished with error: user_id=%d, cabin_id=%d, error=%v",
					user.ID, cabinID, err)
			}
		}()

		h.logger.Info("POST /cabins/{id}/reservations - Checkout started: user_id=%d, cabin_id=%d, nights=%d",
			user.ID, cabinID, draft.NumNights)
		handlers.RespondJSON(w, http.StatusAccepted, pendingResponse(draft))
		return
	}

	result, err := sub.Complete(r.Context())
	if err != nil {
		h.respondError(w, err, user.ID, cabinID)
		return
	}

	h.logger.Info("POST /cabins/{id}/reservations - Booking created successfully: booking_id=%d, user_id=%d, cabin_id=%d",
		result.BookingID, user.ID, cabinID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

// Wait ждет завершения фоновых онлайн-оплат
func (h *Handler) Wait() {
	h.wg.Wait()
}

func (h *Handler) respondError(w http.ResponseWriter, err error, userID, cabinID int64) {
	switch {
	case errors.Is(err, submitReservation.ErrCabinNotFound):
		h.logger.Warn("POST /cabins/{id}/reservations - Cabin not found: cabin_id=%d", cabinID)
		handlers.RespondNotFound(w, msgCabinNotFound)

	case errors.Is(err, submitReservation.ErrRangeIncomplete):
		h.logger.Warn("POST /cabins/{id}/reservations - Range incomplete: user_id=%d", userID)
		handlers.RespondUnprocessable(w, msgRangeIncomplete)

	case errors.Is(err, submitReservation.ErrInvalidGuests):
		h.logger.Warn("POST /cabins/{id}/reservations - Invalid guests: user_id=%d, cabin_id=%d", userID, cabinID)
		handlers.RespondBadRequest(w, msgInvalidGuests)

	case errors.Is(err, submitReservation.ErrUnknownAction):
		handlers.RespondBadRequest(w, msgUnknownAction)

	case errors.Is(err, submitReservation.ErrInvalidInput):
		handlers.RespondBadRequest(w, msgInvalidRequestBody)

	case errors.Is(err, submitReservation.ErrSubmissionInProgress):
		h.logger.Warn("POST /cabins/{id}/reservations - Submission in progress: user_id=%d", userID)
		handlers.RespondConflict(w, msgInProgress)

	case errors.Is(err, submitReservation.ErrBookingFailed):
		h.logger.Error("POST /cabins/{id}/reservations - Booking failed: user_id=%d, cabin_id=%d, error=%v", userID, cabinID, err)
		handlers.RespondError(w, http.StatusInternalServerError, msgBookingFailed)

	default:
		h.logger.Error("POST /cabins/{id}/reservations - Failed to submit reservation: user_id=%d, cabin_id=%d, error=%v",
			userID, cabinID, err)
		handlers.RespondInternalError(w)
	}
}
