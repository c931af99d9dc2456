package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/cinetick/booking-engine/internal/core/domain"
	"github.com/cinetick/booking-engine/internal/core/services"
)

// NewRouter wires every endpoint of the engine onto a chi mux.
func NewRouter(svc *services.OrderService) http.Handler {
	orders := NewOrderHandler(svc)
	staff := NewStaffHandler(svc)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Route("/orders", func(r chi.Router) {
		r.Post("/", orders.CreateOrder)
		r.Post("/{id}/pay", orders.PayOrder)
		r.Post("/{id}/cancel", orders.CancelOrder)
		r.Get("/{id}/ticket-status", orders.TicketStatus)
	})

	r.Route("/showtimes", func(r chi.Router) {
		r.Get("/{id}/seats", orders.GetSeats)
		r.Post("/{id}/seats", orders.CreateInventory)
	})

	r.Route("/staff", func(r chi.Router) {
		r.Post("/sell", staff.SellTicket)
		r.Post("/orders/{id}/check", staff.CheckTicket)
		r.Post("/orders/{id}/refund", staff.RefundTicket)
		r.Get("/operations", staff.Operations)
		r.Get("/{staffID}/operations", staff.OperationsByStaff)
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeDomainError maps service errors onto HTTP statuses. Seats being
// taken is a normal outcome under contention, so it is never logged.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrSeatsUnavailable),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrAlreadyChecked):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrInvalidSeats),
		errors.Is(err, domain.ErrEmptySelection),
		errors.Is(err, domain.ErrUnknownTicketType):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrTooEarly),
		errors.Is(err, domain.ErrTooLate),
		errors.Is(err, domain.ErrRefundNotAllowed):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrShowtimeNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		log.Printf("internal error: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// pathUUID parses a uuid path parameter, writing a 400 on failure.
func pathUUID(w http.ResponseWriter, r *http.Request, key string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, key))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid "+key)
		return uuid.Nil, false
	}
	return id, true
}
