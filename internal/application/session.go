package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/airella-bridge/internal/domain"
	"github.com/bnema/airella-bridge/internal/ports"
)

// SessionManager owns the source API session. Only Login and Refresh mutate
// it.
type SessionManager struct {
	source  ports.SourceAPI
	creds   domain.Credentials
	session domain.Session
}

func NewSessionManager(source ports.SourceAPI, creds domain.Credentials) *SessionManager {
	return &SessionManager{source: source, creds: creds}
}

func (m *SessionManager) Login(ctx context.Context) error {
	session, err := m.source.Login(ctx, m.creds)
	if err != nil {
		return asAuthError(err)
	}
	if !session.Active() {
		return fmt.Errorf("%w: login returned an incomplete session", domain.ErrAuth)
	}

	m.session = session
	return nil
}

// Refresh replaces the access token using the current refresh token. The
// refresh token itself is kept.
func (m *SessionManager) Refresh(ctx context.Context) error {
	if !m.session.Active() {
		return fmt.Errorf("refresh access token: %w", domain.ErrNoSession)
	}

	access, err := m.source.Refresh(ctx, m.session.RefreshToken)
	if err != nil {
		return asAuthError(err)
	}
	if access == "" {
		return fmt.Errorf("%w: refresh returned an empty access token", domain.ErrAuth)
	}

	m.session.AccessToken = access
	return nil
}

func (m *SessionManager) AccessToken() string {
	return m.session.AccessToken
}

func (m *SessionManager) Session() domain.Session {
	return m.session
}

func asAuthError(err error) error {
	if errors.Is(err, domain.ErrAuth) {
		return err
	}
	return fmt.Errorf("%w: %w", domain.ErrAuth, err)
}
