package application

import (
	"context"
	"errors"
	"strings"

	"github.com/qoocca/parent-pay/internal/domain"
	"github.com/qoocca/parent-pay/internal/ports"
)

var ErrPhoneRequired = errors.New("phone number is required")

type AuthService struct {
	source ports.AuthSource
}

func NewAuthService(source ports.AuthSource) *AuthService {
	return &AuthService{source: source}
}

// Login exchanges a parent phone number for a session.
func (s *AuthService) Login(ctx context.Context, phone string) (domain.LoginResult, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return domain.LoginResult{}, ErrPhoneRequired
	}

	return s.source.Login(ctx, phone)
}
