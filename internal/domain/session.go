package domain

import "strings"

// SentinelParentID marks an absent parent identity in persisted settings.
const SentinelParentID int64 = -1

// Session is the authenticated parent identity. A session is valid only
// when both fields are present.
type Session struct {
	ParentID    int64
	AccessToken string
}

func (s Session) Valid() bool {
	return s.ParentID != SentinelParentID && strings.TrimSpace(s.AccessToken) != ""
}
