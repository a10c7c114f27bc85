package ports

import (
	"context"

	"github.com/qoocca/parent-pay/internal/domain"
)

// ReceiptSource fetches receipt data from the backend. Failures carry a
// *domain.AppError classification.
type ReceiptSource interface {
	FetchReceiptRequests(ctx context.Context, token string) ([]domain.Receipt, error)
	FetchReceiptDetail(ctx context.Context, token string, receiptID int64) (domain.Receipt, error)
}

// PaymentSource submits payments. A nil error means the receipt was paid.
type PaymentSource interface {
	PayReceipt(ctx context.Context, token string, receiptID int64) error
}

// AuthSource performs the phone-number login exchange.
type AuthSource interface {
	Login(ctx context.Context, phone string) (domain.LoginResult, error)
}

// PushTokenSource registers a device push token for a parent.
type PushTokenSource interface {
	RegisterToken(ctx context.Context, parentID int64, deviceToken string) error
}
