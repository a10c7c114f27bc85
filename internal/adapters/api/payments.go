package api

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/qoocca/parent-pay/internal/domain"
	"github.com/qoocca/parent-pay/internal/ports"
)

// PaymentRepository implements ports.PaymentSource over the parent API.
// A payment is retried exactly once when the first attempt fails with a
// network classification; every other failure is terminal.
type PaymentRepository struct {
	client *Client
}

var _ ports.PaymentSource = (*PaymentRepository)(nil)

func NewPaymentRepository(client *Client) *PaymentRepository {
	return &PaymentRepository{client: client}
}

func (r *PaymentRepository) PayReceipt(ctx context.Context, token string, receiptID int64) error {
	return r.payReceipt(ctx, token, receiptID, 1)
}

func (r *PaymentRepository) payReceipt(ctx context.Context, token string, receiptID int64, retriesLeft int) error {
	res := r.client.Post(ctx, fmt.Sprintf("/api/receipt/%d/pay", receiptID), token, nil)
	if res.Kind == ResultSuccess {
		return nil
	}

	appErr := Classify(res)
	if appErr.Kind == domain.ErrorKindNetwork && retriesLeft > 0 {
		log.Debug().Int64("receiptId", receiptID).Msg("payment hit network failure, retrying once")
		return r.payReceipt(ctx, token, receiptID, retriesLeft-1)
	}

	return appErr
}
