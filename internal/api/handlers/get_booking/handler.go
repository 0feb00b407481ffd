package get_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CabinReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-CabinReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-CabinReservationService/internal/service/bookings"
)

const (
	msgBadBookingID  = "ID бронирования должен быть положительным числом"
	msgNoBooking     = "бронь не найдена"
	msgNoUser        = "гость не авторизован"
	msgForeignBooker = "бронь оформлена другим гостем"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/{bookingId}
// Страница подтверждения показывает бронь только ее владельцу
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	raw := mux.Vars(r)["bookingId"]
	bookingID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || bookingID <= 0 {
		handlers.RespondBadRequest(w, msgBadBookingID)
		return
	}

	guestID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgNoUser)
		return
	}

	booking, err := h.service.GetByID(r.Context(), bookingID, guestID)
	switch {
	case err == nil:
		handlers.RespondJSON(w, http.StatusOK, booking)
	case errors.Is(err, bookings.ErrBookingNotFound):
		handlers.RespondNotFound(w, msgNoBooking)
	case errors.Is(err, bookings.ErrAccessDenied):
		h.logger.Warn("GET /bookings/{id} - guest=%d requested booking=%d of another guest", guestID, bookingID)
		handlers.RespondForbidden(w, msgForeignBooker)
	default:
		h.logger.Error("GET /bookings/{id} - lookup of booking=%d failed: %v", bookingID, err)
		handlers.RespondInternalError(w)
	}
}
