package ledger

import (
	"fmt"
	"strings"
	"time"

	historyRepo "ecoscan/database/repository/history"
	"ecoscan/models"
	"ecoscan/taxonomy"
	"ecoscan/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultLedgerService implements LedgerService against an injected history
// repository.
type DefaultLedgerService struct {
	Repo historyRepo.HistoryRepository
}

// RecordScan appends a scan record. Scans are point-in-time: status is always
// completed and no ticket is issued.
func (s *DefaultLedgerService) RecordScan(accountID, category string) (*models.HistoryRecord, error) {
	cat, ok := taxonomy.Lookup(category)
	if !ok {
		return nil, ErrInvalidCategory
	}

	rec := &models.HistoryRecord{
		ID:        uuid.NewString(),
		AccountID: accountID,
		Kind:      models.KindScan,
		Category:  cat.ID,
		Status:    models.StatusCompleted,
		CreatedAt: time.Now(),
	}
	if err := s.Repo.Create(rec); err != nil {
		utils.GetLogger().Error("RecordScan: failed to create record", zap.Error(err))
		return nil, fmt.Errorf("failed to record scan")
	}
	return rec, nil
}

// RecordReport appends a report record. Reports always start in_progress:
// issuing the ticket is what moves them into the pickup pipeline, so there is
// no observable pending phase on creation.
func (s *DefaultLedgerService) RecordReport(accountID, category, address string) (*models.HistoryRecord, error) {
	cat, ok := taxonomy.Lookup(category)
	if !ok {
		return nil, ErrInvalidCategory
	}
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, ErrMissingLocation
	}

	ticket, err := utils.IssueTicket()
	if err != nil {
		utils.GetLogger().Error("RecordReport: failed to issue ticket", zap.Error(err))
		return nil, fmt.Errorf("failed to record report")
	}

	rec := &models.HistoryRecord{
		ID:           uuid.NewString(),
		AccountID:    accountID,
		Kind:         models.KindReport,
		Category:     cat.ID,
		Status:       models.StatusInProgress,
		TicketNumber: ticket,
		Address:      address,
		CreatedAt:    time.Now(),
	}
	if err := s.Repo.Create(rec); err != nil {
		utils.GetLogger().Error("RecordReport: failed to create record", zap.Error(err))
		return nil, fmt.Errorf("failed to record report")
	}
	return rec, nil
}

// ListForAccount returns only the caller's records. This filter is the sole
// authorization boundary inside the ledger besides the upstream token check.
func (s *DefaultLedgerService) ListForAccount(accountID string) ([]models.HistoryRecord, error) {
	records, err := s.Repo.ListByAccount(accountID)
	if err != nil {
		utils.GetLogger().Error("ListForAccount: failed to list records", zap.Error(err))
		return nil, fmt.Errorf("failed to fetch history")
	}
	if records == nil {
		records = []models.HistoryRecord{}
	}
	return records, nil
}

// ListReports returns report records across all accounts.
func (s *DefaultLedgerService) ListReports() ([]models.HistoryRecord, error) {
	records, err := s.Repo.ListReports()
	if err != nil {
		utils.GetLogger().Error("ListReports: failed to list reports", zap.Error(err))
		return nil, fmt.Errorf("failed to fetch reports")
	}
	if records == nil {
		records = []models.HistoryRecord{}
	}
	return records, nil
}
