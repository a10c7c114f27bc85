package application

import (
	"context"

	"github.com/qoocca/parent-pay/internal/domain"
	"github.com/qoocca/parent-pay/internal/ports"
)

// PayOutcome summarizes a pay-many batch. Payments carry no payload, so
// only the failure side is reported.
type PayOutcome struct {
	FailedCount    int
	HasAuthFailure bool
	Errors         []*domain.AppError
}

type PaymentService struct {
	source ports.PaymentSource
}

func NewPaymentService(source ports.PaymentSource) *PaymentService {
	return &PaymentService{source: source}
}

// PayReceipts submits one payment per ID, all concurrently, and returns a
// single consolidated outcome once every payment has terminated.
func (s *PaymentService) PayReceipts(ctx context.Context, token string, receiptIDs []int64) PayOutcome {
	outcome := RunBatch(ctx, receiptIDs,
		func(id int64) int64 { return id },
		func(ctx context.Context, id int64) (int64, error) {
			if err := s.source.PayReceipt(ctx, token, id); err != nil {
				return 0, err
			}
			return id, nil
		},
	)

	return PayOutcome{
		FailedCount:    outcome.FailedCount,
		HasAuthFailure: outcome.HasAuthFailure,
		Errors:         outcome.Errors,
	}
}
