package get_notices

import (
	"context"
	"net/http"
	"time"

	"github.com/m04kA/SMC-CabinReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-CabinReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-CabinReservationService/internal/domain"
)

const msgMissingUserID = "отсутствует ID пользователя"

type NoticeService interface {
	Drain(ctx context.Context, userID int64) []domain.Notice
}

// CheckoutView конфигурация виджета оплаты для браузера
type CheckoutView struct {
	Provider     string            `json:"provider"`
	OrderID      string            `json:"orderId"`
	Key          string            `json:"key"`
	Amount       int64             `json:"amount"` // минимальные единицы валюты
	Currency     string            `json:"currency"`
	Name         string            `json:"name"`
	Description  string            `json:"description"`
	ClientSecret string            `json:"clientSecret,omitempty"`
	Prefill      map[string]string `json:"prefill"`
	Notes        map[string]string `json:"notes,omitempty"`
}

// NoticeView одно уведомление
type NoticeView struct {
	ID          string        `json:"id"`
	Kind        string        `json:"kind"`
	Message     string        `json:"message,omitempty"`
	Destination string        `json:"destination,omitempty"`
	Checkout    *CheckoutView `json:"checkout,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
}

type Handler struct {
	service NoticeService
}

func NewHandler(service NoticeService) *Handler {
	return &Handler{service: service}
}

// Handle GET /api/v1/notices
// Возвращает и очищает накопленные уведомления пользователя
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	notices := h.service.Drain(r.Context(), userID)

	views := make([]NoticeView, 0, len(notices))
	for _, n := range notices {
		views = append(views, toView(n))
	}

	handlers.RespondJSON(w, http.StatusOK, views)
}

func toView(n domain.Notice) NoticeView {
	v := NoticeView{
		ID:          n.ID,
		Kind:        string(n.Kind),
		Message:     n.Message,
		Destination: n.Destination,
		CreatedAt:   n.CreatedAt,
	}
	if c := n.Checkout; c != nil {
		v.Checkout = &CheckoutView{
			Provider:     c.Provider,
			OrderID:      c.OrderID,
			Key:          c.Key,
			Amount:       c.AmountMinor,
			Currency:     c.Currency,
			Name:         c.Name,
			Description:  c.Description,
			ClientSecret: c.ClientSecret,
			Prefill: map[string]string{
				"name":  c.Prefill.Name,
				"email": c.Prefill.Email,
			},
			Notes: c.Notes,
		}
	}
	return v
}
