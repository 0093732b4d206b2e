package historyRepo

import "ecoscan/models"

// HistoryRepository defines methods for ledger data access. Records are
// append-only: there is no update or delete surface for citizen traffic.
type HistoryRepository interface {
	// Create inserts a new history record.
	Create(record *models.HistoryRecord) error
	// ListByAccount retrieves the given account's records, newest first.
	ListByAccount(accountID string) ([]models.HistoryRecord, error)
	// ListReports retrieves every report record across accounts, newest first.
	ListReports() ([]models.HistoryRecord, error)
}
