package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/qoocca/parent-pay/internal/ports"
)

// PushTokenRepository implements ports.PushTokenSource over the parent API.
type PushTokenRepository struct {
	client *Client
}

var _ ports.PushTokenSource = (*PushTokenRepository)(nil)

func NewPushTokenRepository(client *Client) *PushTokenRepository {
	return &PushTokenRepository{client: client}
}

func (r *PushTokenRepository) RegisterToken(ctx context.Context, parentID int64, deviceToken string) error {
	values := url.Values{}
	values.Set("parentId", fmt.Sprintf("%d", parentID))
	values.Set("deviceToken", deviceToken)

	res := r.client.Post(ctx, "/api/fcm/register?"+values.Encode(), "", nil)
	if res.Kind != ResultSuccess {
		return Classify(res)
	}

	return nil
}
