package api

import (
	"context"
	"encoding/json"

	"github.com/qoocca/parent-pay/internal/domain"
	"github.com/qoocca/parent-pay/internal/ports"
)

// AuthRepository implements ports.AuthSource over the parent API.
type AuthRepository struct {
	client *Client
}

var _ ports.AuthSource = (*AuthRepository)(nil)

func NewAuthRepository(client *Client) *AuthRepository {
	return &AuthRepository{client: client}
}

func (r *AuthRepository) Login(ctx context.Context, phone string) (domain.LoginResult, error) {
	body, err := json.Marshal(map[string]string{"parentPhone": phone})
	if err != nil {
		return domain.LoginResult{}, domain.ErrUnknown(err)
	}

	res := r.client.Post(ctx, "/api/parent/auth/login", "", body)
	if res.Kind != ResultSuccess {
		return domain.LoginResult{}, Classify(res)
	}

	var result domain.LoginResult
	if err := json.Unmarshal(res.Body, &result); err != nil {
		return domain.LoginResult{}, Classify(Result{Kind: ResultDecodeError, Err: err})
	}

	return result, nil
}
