package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type StaffOpType string

const (
	OpSell   StaffOpType = "SELL"
	OpCheck  StaffOpType = "CHECK"
	OpRefund StaffOpType = "REFUND"
	OpModify StaffOpType = "MODIFY"
)

// StaffOperation is one row of the append-only audit log. Details is a
// tagged union keyed by Type; rows are never mutated or deleted.
type StaffOperation struct {
	ID         uuid.UUID        `json:"id"`
	StaffID    uuid.UUID        `json:"staff_id"`
	Type       StaffOpType      `json:"type"`
	OrderID    *uuid.UUID       `json:"order_id,omitempty"`
	ShowtimeID *uuid.UUID       `json:"showtime_id,omitempty"`
	Details    OperationDetails `json:"details"`
	CreatedAt  time.Time        `json:"created_at"`
}

// OperationDetails is the per-type payload of a staff operation.
type OperationDetails interface {
	OperationType() StaffOpType
}

type SellDetails struct {
	TicketType    TicketType `json:"ticket_type"`
	Seats         []string   `json:"seats"`
	TotalPrice    float64    `json:"total_price"`
	PaymentMethod string     `json:"payment_method"`
}

func (SellDetails) OperationType() StaffOpType { return OpSell }

type CheckDetails struct {
	TicketStatus TicketStatus `json:"ticket_status"`
	CheckedAt    time.Time    `json:"checked_at"`
}

func (CheckDetails) OperationType() StaffOpType { return OpCheck }

type RefundDetails struct {
	Reason       string  `json:"reason"`
	RefundAmount float64 `json:"refund_amount"`
}

func (RefundDetails) OperationType() StaffOpType { return OpRefund }

type ModifyDetails struct {
	Field    string `json:"field"`
	OldValue string `json:"old_value"`
	NewValue string `json:"new_value"`
}

func (ModifyDetails) OperationType() StaffOpType { return OpModify }

type detailsEnvelope struct {
	Type    StaffOpType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// MarshalDetails wraps the payload in a {type, payload} envelope so the
// stored JSON stays self-describing.
func MarshalDetails(d OperationDetails) ([]byte, error) {
	payload, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	return json.Marshal(detailsEnvelope{Type: d.OperationType(), Payload: payload})
}

// UnmarshalDetails restores the concrete payload variant from its
// stored envelope.
func UnmarshalDetails(data []byte) (OperationDetails, error) {
	var env detailsEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}
	switch env.Type {
	case OpSell:
		var d SellDetails
		return d, json.Unmarshal(env.Payload, &d)
	case OpCheck:
		var d CheckDetails
		return d, json.Unmarshal(env.Payload, &d)
	case OpRefund:
		var d RefundDetails
		return d, json.Unmarshal(env.Payload, &d)
	case OpModify:
		var d ModifyDetails
		return d, json.Unmarshal(env.Payload, &d)
	default:
		return nil, fmt.Errorf("unknown staff operation type %q", env.Type)
	}
}
