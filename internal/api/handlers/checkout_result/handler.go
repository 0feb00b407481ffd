package checkout_result

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CabinReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-CabinReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-CabinReservationService/internal/integrations/checkout"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgSessionNotFound    = "сессия оплаты не найдена или истекла"
	msgAlreadyResolved    = "результат оплаты уже получен"
	msgVerifyUnavailable  = "не удалось проверить платеж, повторите попытку"
	msgSessionExpired     = "время ожидания оплаты истекло"
)

type Handler struct {
	resolver CheckoutResolver
	logger   Logger
}

func NewHandler(resolver CheckoutResolver, logger Logger) *Handler {
	return &Handler{
		resolver: resolver,
		logger:   logger,
	}
}

// Handle POST /api/v1/checkouts/{orderId}/result
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["orderId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Виджет присылает дополнительные поля ошибки, поэтому неизвестные поля допустимы
	var req OutcomeRequest
	if err := handlers.DecodeJSONLenient(r, &req); err != nil {
		h.logger.Warn("POST /checkouts/{id}/result - Invalid request body: order_id=%s, error=%v", orderID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.resolver.Resolve(r.Context(), userID, orderID, req.ToOutcome())
	if err != nil {
		switch {
		case errors.Is(err, checkout.ErrSessionNotFound):
			h.logger.Warn("POST /checkouts/{id}/result - Session not found: order_id=%s, user_id=%d", orderID, userID)
			handlers.RespondNotFound(w, msgSessionNotFound)
		case errors.Is(err, checkout.ErrSessionExpired):
			h.logger.Warn("POST /checkouts/{id}/result - Session expired: order_id=%s, user_id=%d", orderID, userID)
			handlers.RespondError(w, http.StatusGone, msgSessionExpired)
		case errors.Is(err, checkout.ErrAlreadyResolved):
			handlers.RespondConflict(w, msgAlreadyResolved)
		case errors.Is(err, checkout.ErrVerify):
			h.logger.Error("POST /checkouts/{id}/result - Verification unavailable: order_id=%s, error=%v", orderID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgVerifyUnavailable)
		default:
			h.logger.Error("POST /checkouts/{id}/result - Failed to resolve checkout: order_id=%s, error=%v", orderID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /checkouts/{id}/result - Checkout resolved: order_id=%s, user_id=%d, status=%s",
		orderID, userID, statusOf(result))
	handlers.RespondJSON(w, http.StatusOK, OutcomeResponse{OrderID: orderID, Status: statusOf(result)})
}
