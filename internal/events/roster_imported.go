package events

import "time"

const RosterImportedTopic = "insurance.employee.roster.v1"

type RosterImportedEvent struct {
	EventType      string    `json:"event_type"`
	RequestID      string    `json:"request_id,omitempty"`
	OrganizationID string    `json:"organization_id"`
	ImportedCount  int       `json:"imported_count"`
	SkippedCount   int       `json:"skipped_count"`
	OccurredAt     time.Time `json:"occurred_at"`
}
