package payment

type CreateSessionRequest struct {
	Month string `json:"month" binding:"required"`
	Year  int    `json:"year" binding:"required"`
}

type SessionResponse struct {
	ID            string `json:"id"`
	Month         string `json:"month"`
	Year          int    `json:"year"`
	TotalAmount   int64  `json:"total_amount"`
	EmployeeCount int    `json:"employee_count"`
	Status        string `json:"status"`
	PaymentURL    string `json:"payment_url,omitempty"`
	ResolvedAt    string `json:"resolved_at,omitempty"`
}

// WebhookRequest is what the payment gateway posts back after checkout
type WebhookRequest struct {
	SessionID string `json:"session_id" binding:"required,uuid"`
	Status    string `json:"status" binding:"required,oneof=success failure"`
}
