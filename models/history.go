package models

import "time"

// History record kinds.
const (
	KindScan   = "scan"
	KindReport = "report"
)

// Report statuses. Scans are always completed; reports move
// pending -> in_progress -> completed, never backward.
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// HistoryRecord is one append-only entry in a citizen's scan/report ledger.
// Immutable after creation except for administrative status transitions on
// reports.
type HistoryRecord struct {
	ID           string    `bson:"id" json:"id"`
	AccountID    string    `bson:"accountId" json:"accountId"`
	Kind         string    `bson:"kind" json:"kind"` // scan | report
	Category     string    `bson:"category" json:"category"`
	Status       string    `bson:"status" json:"status"`
	TicketNumber string    `bson:"ticketNumber,omitempty" json:"ticketNumber,omitempty"` // present iff kind == report
	Address      string    `bson:"address,omitempty" json:"address,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}

// IsReport reports whether the record is an escalated pickup report.
func (r *HistoryRecord) IsReport() bool {
	return r.Kind == KindReport
}
