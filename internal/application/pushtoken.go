package application

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/qoocca/parent-pay/internal/domain"
	"github.com/qoocca/parent-pay/internal/ports"
)

var ErrNotLoggedIn = errors.New("no parent session, skipping push token registration")

type PushTokenService struct {
	source ports.PushTokenSource
}

func NewPushTokenService(source ports.PushTokenSource) *PushTokenService {
	return &PushTokenService{source: source}
}

// RegisterToken sends a refreshed device token to the backend. Called with
// the sentinel parent ID it refuses rather than registering an orphan token.
func (s *PushTokenService) RegisterToken(ctx context.Context, parentID int64, deviceToken string) error {
	if parentID == domain.SentinelParentID {
		return ErrNotLoggedIn
	}

	if err := s.source.RegisterToken(ctx, parentID, deviceToken); err != nil {
		log.Error().Err(err).Int64("parentId", parentID).Msg("push token registration failed")
		return err
	}

	log.Debug().Int64("parentId", parentID).Msg("push token registered")
	return nil
}
