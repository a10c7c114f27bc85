package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/qoocca/parent-pay/internal/domain"
	"github.com/qoocca/parent-pay/internal/ports"
)

// ReceiptRepository implements ports.ReceiptSource over the parent API.
type ReceiptRepository struct {
	client *Client
}

var _ ports.ReceiptSource = (*ReceiptRepository)(nil)

func NewReceiptRepository(client *Client) *ReceiptRepository {
	return &ReceiptRepository{client: client}
}

func (r *ReceiptRepository) FetchReceiptRequests(ctx context.Context, token string) ([]domain.Receipt, error) {
	res := r.client.Get(ctx, "/api/parent/receipt/requests", token)
	if res.Kind != ResultSuccess {
		return nil, Classify(res)
	}

	var receipts []domain.Receipt
	if err := json.Unmarshal(res.Body, &receipts); err != nil {
		return nil, Classify(Result{Kind: ResultDecodeError, Err: err})
	}

	return receipts, nil
}

func (r *ReceiptRepository) FetchReceiptDetail(ctx context.Context, token string, receiptID int64) (domain.Receipt, error) {
	res := r.client.Get(ctx, fmt.Sprintf("/api/parent/receipt/%d", receiptID), token)
	if res.Kind != ResultSuccess {
		return domain.Receipt{}, Classify(res)
	}

	var receipt domain.Receipt
	if err := json.Unmarshal(res.Body, &receipt); err != nil {
		return domain.Receipt{}, Classify(Result{Kind: ResultDecodeError, Err: err})
	}

	return receipt, nil
}
