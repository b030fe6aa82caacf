package domain

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionContext carrega a credencial do usuário para as chamadas ao backend de votos.
// OnInvalidated é chamado uma única vez quando o backend rejeita a credencial.
type SessionContext struct {
	Token  string
	UserID int

	onInvalidated func(error)
	once          sync.Once
	mu            sync.RWMutex
	invalid       bool
}

func NewSessionContext(token string, userID int, onInvalidated func(error)) *SessionContext {
	return &SessionContext{
		Token:         token,
		UserID:        userID,
		onInvalidated: onInvalidated,
	}
}

// Invalidate marca a sessão como inválida e dispara o callback apenas na primeira vez
func (s *SessionContext) Invalidate(err error) {
	if s == nil {
		return
	}
	s.once.Do(func() {
		s.mu.Lock()
		s.invalid = true
		s.mu.Unlock()

		if s.onInvalidated != nil {
			s.onInvalidated(err)
		}
	})
}

func (s *SessionContext) Invalidated() bool {
	if s == nil {
		return true
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.invalid
}

// ExpiresAt lê o claim exp sem validar a assinatura; tokens opacos retornam false
func (s *SessionContext) ExpiresAt() (time.Time, bool) {
	if s == nil || s.Token == "" {
		return time.Time{}, false
	}

	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(s.Token, claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

// Usable indica se vale a pena chamar o backend com essa sessão
func (s *SessionContext) Usable(now time.Time) bool {
	if s == nil || s.Token == "" || s.Invalidated() {
		return false
	}
	if exp, ok := s.ExpiresAt(); ok && !now.Before(exp) {
		return false
	}
	return true
}
