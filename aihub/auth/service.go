// aihub/auth/service.go
package auth

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"aihub/aihub/types"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrUnknownProvider = errors.New("unknown auth provider")

// Service is the identity collaborator: it tracks the current signed-in
// identity (or none) and issues tokens for the HTTP surface. Provider SDK
// wiring is out of scope, so each provider resolves to a demo identity the
// way the original mock sign-in paths do. A failed sign-in leaves the
// identity absent; it is never fatal.
type Service struct {
	mu        sync.Mutex
	jwtSecret string
	current   *types.Identity
}

func NewService(jwtSecret string) *Service {
	return &Service{jwtSecret: jwtSecret}
}

func (s *Service) SignIn(provider types.AuthProvider) (types.Identity, error) {
	var email string
	switch provider {
	case types.ProviderGoogle:
		email = "demo.user@gmail.com"
	case types.ProviderFacebook:
		email = "demo.user@facebook.com"
	case types.ProviderMicrosoft:
		email = "demo.user@outlook.com"
	default:
		return types.Identity{}, fmt.Errorf("%w: %q", ErrUnknownProvider, provider)
	}

	identity := types.Identity{
		ID:       fmt.Sprintf("%s_%s", provider, uuid.New().String()[:8]),
		Name:     "Demo User",
		Email:    email,
		Provider: provider,
		Plan:     "free",
	}

	s.mu.Lock()
	s.current = &identity
	s.mu.Unlock()
	return identity, nil
}

func (s *Service) SignOut() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
}

func (s *Service) CurrentIdentity() (types.Identity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return types.Identity{}, false
	}
	return *s.current, true
}

// IssueToken signs a short-lived JWT carrying the identity id, consumed by
// the HTTP middleware.
func (s *Service) IssueToken(identity types.Identity) (string, error) {
	claims := jwt.MapClaims{
		"identity_id": identity.ID,
		"exp":         time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}
