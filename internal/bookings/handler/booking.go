package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"daybook/internal/bookings/service"
	httputil "daybook/pkg/http"
	"daybook/pkg/logger"
)

type BookingHandler struct {
	service service.BookingService
	log     *logger.Logger
}

func NewBookingHandler(service service.BookingService, log *logger.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log,
	}
}

// GetForDay serves one day's bookings, partitioned into active and
// cancelled. The date query parameter is required; there is no default day.
func (h *BookingHandler) GetForDay(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	date := r.URL.Query().Get("date")

	dayBookings, err := h.service.GetForDay(r.Context(), date)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetForDay", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteJSON(w, http.StatusOK, dayBookings); err != nil {
		h.log.Error("failed to write JSON response", "handler", "GetForDay", "operation", "WriteJSON", "error", err)
	}
}

func (h *BookingHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/bookings", h.GetForDay)
}
