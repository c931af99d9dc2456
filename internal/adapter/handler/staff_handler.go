package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/cinetick/booking-engine/internal/core/domain"
	"github.com/cinetick/booking-engine/internal/core/services"
)

type StaffHandler struct {
	svc *services.OrderService
}

func NewStaffHandler(svc *services.OrderService) *StaffHandler {
	return &StaffHandler{svc: svc}
}

type sellTicketRequest struct {
	StaffID       uuid.UUID         `json:"staff_id"`
	ShowtimeID    uuid.UUID         `json:"showtime_id"`
	SeatIDs       []uuid.UUID       `json:"seat_ids"`
	TicketType    domain.TicketType `json:"ticket_type"`
	PaymentMethod string            `json:"payment_method"`
}

func (h *StaffHandler) SellTicket(w http.ResponseWriter, r *http.Request) {
	var req sellTicketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	order, err := h.svc.SellTicket(r.Context(), req.StaffID, req.ShowtimeID, req.SeatIDs, req.TicketType, req.PaymentMethod)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, order)
}

type checkTicketRequest struct {
	StaffID uuid.UUID `json:"staff_id"`
}

func (h *StaffHandler) CheckTicket(w http.ResponseWriter, r *http.Request) {
	orderID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req checkTicketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	if err := h.svc.CheckTicket(r.Context(), orderID, req.StaffID); err != nil {
		var checkErr *domain.CheckInError
		if errors.As(err, &checkErr) {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
				"error":          checkErr.Error(),
				"ticket_status":  checkErr.Status,
				"showtime_start": checkErr.ShowtimeStart,
			})
			return
		}
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "checked"})
}

type refundTicketRequest struct {
	StaffID uuid.UUID `json:"staff_id"`
	Reason  string    `json:"reason"`
}

func (h *StaffHandler) RefundTicket(w http.ResponseWriter, r *http.Request) {
	orderID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req refundTicketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	order, err := h.svc.RefundTicket(r.Context(), orderID, req.StaffID, req.Reason)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

func (h *StaffHandler) Operations(w http.ResponseWriter, r *http.Request) {
	ops, err := h.svc.AllOperations(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ops)
}

func (h *StaffHandler) OperationsByStaff(w http.ResponseWriter, r *http.Request) {
	staffID, ok := pathUUID(w, r, "staffID")
	if !ok {
		return
	}

	ops, err := h.svc.ByStaff(r.Context(), staffID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ops)
}
