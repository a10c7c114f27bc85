package application

import (
	"context"

	"github.com/qoocca/parent-pay/internal/domain"
	"github.com/qoocca/parent-pay/internal/ports"
)

// ReceiptDetailsOutcome is the consolidated result of fetching many receipt
// details concurrently.
type ReceiptDetailsOutcome = BatchOutcome[domain.Receipt]

type ReceiptService struct {
	source ports.ReceiptSource
}

func NewReceiptService(source ports.ReceiptSource) *ReceiptService {
	return &ReceiptService{source: source}
}

// ListReceipts returns all pending receipt requests for the parent.
func (s *ReceiptService) ListReceipts(ctx context.Context, token string) ([]domain.Receipt, error) {
	return s.source.FetchReceiptRequests(ctx, token)
}

// GetReceiptDetails fetches one detail per ID, all concurrently, and
// returns a single consolidated outcome ordered by receiptIDs.
func (s *ReceiptService) GetReceiptDetails(ctx context.Context, token string, receiptIDs []int64) ReceiptDetailsOutcome {
	return RunBatch(ctx, receiptIDs,
		func(r domain.Receipt) int64 { return r.ReceiptID },
		func(ctx context.Context, id int64) (domain.Receipt, error) {
			return s.source.FetchReceiptDetail(ctx, token, id)
		},
	)
}
