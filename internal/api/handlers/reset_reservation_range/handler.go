package reset_reservation_range

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-CabinReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-CabinReservationService/internal/api/middleware"
)

const msgMissingUserID = "отсутствует ID пользователя"

type SelectionService interface {
	Reset(ctx context.Context, userID int64) error
}

type Logger interface {
	Error(format string, v ...interface{})
}

type Handler struct {
	service SelectionService
	logger  Logger
}

func NewHandler(service SelectionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/reservation/range
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.Reset(r.Context(), userID); err != nil {
		h.logger.Error("DELETE /reservation/range - Failed to reset range: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
