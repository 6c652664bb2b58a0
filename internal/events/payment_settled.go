package events

import "time"

const PaymentSettledTopic = "insurance.payment.settled.v1"

type PaymentSettledEvent struct {
	EventType      string    `json:"event_type"`
	RequestID      string    `json:"request_id,omitempty"`
	SessionID      string    `json:"session_id"`
	OrganizationID string    `json:"organization_id"`
	Outcome        string    `json:"outcome"`
	TotalAmount    int64     `json:"total_amount"`
	EmployeeCount  int       `json:"employee_count"`
	OccurredAt     time.Time `json:"occurred_at"`
}
