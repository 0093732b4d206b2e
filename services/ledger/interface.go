package ledger

import "ecoscan/models"

// LedgerService records scan and report events and serves the listing views.
// Records are created exactly once and never modified by citizen traffic;
// status transitions on reports are an administrative action outside this
// write surface.
type LedgerService interface {
	// RecordScan appends a completed scan record. No ticket is issued.
	RecordScan(accountID, category string) (*models.HistoryRecord, error)
	// RecordReport appends a report record with a freshly issued ticket.
	// address must carry at least one location signal (free text or a
	// coordinate pair rendered as text).
	RecordReport(accountID, category, address string) (*models.HistoryRecord, error)
	// ListForAccount returns the caller's own records, newest first.
	ListForAccount(accountID string) ([]models.HistoryRecord, error)
	// ListReports returns every report across accounts, newest first.
	ListReports() ([]models.HistoryRecord, error)
}
