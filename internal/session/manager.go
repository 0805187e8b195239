package session

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"meetingrooms/internal/domain"
	"meetingrooms/internal/pkg/jwt"

	"github.com/google/uuid"
)

type CookieConfig struct {
	Name     string
	Path     string
	Secure   bool
	SameSite http.SameSite
}

// ParseSameSite maps Lax / Strict / None onto http.SameSite.
func ParseSameSite(v string) http.SameSite {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}

// Manager issues, resolves and destroys sessions. The cookie carries a
// signed token naming the session; the session itself lives in the Store.
type Manager struct {
	store  Store
	signer *jwt.Service
	ttl    time.Duration
	cookie CookieConfig
	now    func() time.Time
}

func NewManager(store Store, signer *jwt.Service, ttl time.Duration, cookie CookieConfig) *Manager {
	return &Manager{
		store:  store,
		signer: signer,
		ttl:    ttl,
		cookie: cookie,
		now:    time.Now,
	}
}

func (m *Manager) CookieName() string { return m.cookie.Name }

// Start creates a session for userID and writes the cookie.
func (m *Manager) Start(ctx context.Context, w http.ResponseWriter, userID string) (*domain.Session, error) {
	now := m.now().UTC()
	s := &domain.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		ExpiresAt: now.Add(m.ttl),
		CreatedAt: now,
	}
	if err := m.store.Save(ctx, s); err != nil {
		return nil, err
	}

	token, err := m.signer.Sign(s.ID, s.ExpiresAt)
	if err != nil {
		return nil, err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     m.cookie.Name,
		Value:    token,
		Path:     m.cookie.Path,
		Expires:  s.ExpiresAt,
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		Secure:   m.cookie.Secure,
		SameSite: m.cookie.SameSite,
	})
	return s, nil
}

// Resolve returns the live session named by the request cookie.
// ErrNotFound covers a missing cookie, a bad signature, an unknown id and
// an expired session.
func (m *Manager) Resolve(ctx context.Context, r *http.Request) (*domain.Session, error) {
	c, err := r.Cookie(m.cookie.Name)
	if err != nil || c.Value == "" {
		return nil, ErrNotFound
	}

	claims, err := m.signer.Parse(c.Value)
	if err != nil {
		return nil, ErrNotFound
	}

	s, err := m.store.Get(ctx, claims.SessionID)
	if err != nil {
		return nil, err
	}
	if s.Expired(m.now()) {
		_ = m.store.Delete(ctx, s.ID)
		return nil, ErrNotFound
	}
	return s, nil
}

// Destroy deletes the request's session, if any, and clears the cookie.
// Calling it without a session is not an error.
func (m *Manager) Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	defer m.ClearCookie(w)

	s, err := m.Resolve(ctx, r)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return m.store.Delete(ctx, s.ID)
}

// RevokeUser ends every session of userID.
func (m *Manager) RevokeUser(ctx context.Context, userID string) error {
	return m.store.DeleteByUser(ctx, userID)
}

func (m *Manager) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookie.Name,
		Value:    "",
		Path:     m.cookie.Path,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   m.cookie.Secure,
		SameSite: m.cookie.SameSite,
	})
}
