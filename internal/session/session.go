package session

import (
	"context"
	"strings"
)

// Session identifica o usuário autenticado. É construída explicitamente e
// repassada a quem precisa, nunca lida de estado global.
type Session struct {
	UserID string `json:"userId"`
	Email  string `json:"email,omitempty"`
	Name   string `json:"name,omitempty"`
}

func (s *Session) IsZero() bool {
	return s == nil || strings.TrimSpace(s.UserID) == ""
}

// AuthState é o que o provedor de autenticação sabe no momento
type AuthState struct {
	Session *Session
	Loading bool
}

// SignedIn indica uma autenticação resolvida com usuário presente
func (a AuthState) SignedIn() bool {
	return !a.Loading && !a.Session.IsZero()
}

func (a AuthState) UserID() string {
	if a.Session.IsZero() {
		return ""
	}
	return a.Session.UserID
}

type contextKey string

const sessionKey contextKey = "session"

func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(sessionKey).(*Session)
	if !ok || s.IsZero() {
		return nil, false
	}
	return s, true
}
