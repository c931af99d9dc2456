package handler

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/cinetick/booking-engine/internal/core/domain"
	"github.com/cinetick/booking-engine/internal/core/services"
)

type OrderHandler struct {
	svc *services.OrderService
}

func NewOrderHandler(svc *services.OrderService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

type createOrderRequest struct {
	UserID     uuid.UUID         `json:"user_id"`
	ShowtimeID uuid.UUID         `json:"showtime_id"`
	SeatIDs    []uuid.UUID       `json:"seat_ids"`
	TicketType domain.TicketType `json:"ticket_type"`
}

func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	order, err := h.svc.CreateOrder(r.Context(), req.UserID, req.ShowtimeID, req.SeatIDs, req.TicketType)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, order)
}

func (h *OrderHandler) PayOrder(w http.ResponseWriter, r *http.Request) {
	orderID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	order, err := h.svc.MarkPaid(r.Context(), orderID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

type cancelOrderRequest struct {
	ActorID uuid.UUID `json:"actor_id"`
}

func (h *OrderHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	orderID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req cancelOrderRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json body")
			return
		}
	}

	order, err := h.svc.CancelOrder(r.Context(), orderID, req.ActorID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

func (h *OrderHandler) TicketStatus(w http.ResponseWriter, r *http.Request) {
	orderID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	status, err := h.svc.TicketStatus(r.Context(), orderID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]domain.TicketStatus{"ticket_status": status})
}

func (h *OrderHandler) GetSeats(w http.ResponseWriter, r *http.Request) {
	showtimeID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	seats, err := h.svc.AvailableSeats(r.Context(), showtimeID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, seats)
}

type createInventoryRequest struct {
	TheaterID uuid.UUID `json:"theater_id"`
}

func (h *OrderHandler) CreateInventory(w http.ResponseWriter, r *http.Request) {
	showtimeID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req createInventoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	seats, err := h.svc.CreateShowtimeInventory(r.Context(), showtimeID, req.TheaterID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, seats)
}
