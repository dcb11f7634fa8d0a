package auth

import (
	"fmt"
	"strings"

	"github.com/dhank77/undangan.love/internal/application/errs"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// IdentityProvider reads the caller out of a bearer token. The token has
// already been verified upstream, so its signature is not checked here.
type IdentityProvider struct {
	cfg *Config
}

type Identity struct {
	UserID uuid.UUID
}

func NewIdentityProvider(cfg *Config) *IdentityProvider {
	return &IdentityProvider{cfg: cfg}
}

// FromHeader resolves an Authorization header. In dev mode a missing header
// falls back to the configured test user.
func (p *IdentityProvider) FromHeader(header string) (*Identity, error) {
	token, found := strings.CutPrefix(strings.TrimSpace(header), "Bearer ")
	if !found || strings.TrimSpace(token) == "" {
		if p.cfg.Mode == ModeDev && p.cfg.TestUser != nil {
			return &Identity{UserID: *p.cfg.TestUser}, nil
		}
		return nil, errs.UnauthorizedError{Err: fmt.Errorf("missing bearer token")}
	}
	return p.GetIdentity(strings.TrimSpace(token))
}

func (p *IdentityProvider) GetIdentity(tokenString string) (*Identity, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return nil, errs.UnauthorizedError{Err: fmt.Errorf("identity can't be retrieved, %v", err)}
	}

	sub, err := token.Claims.GetSubject()
	if err != nil || sub == "" {
		return nil, errs.UnauthorizedError{Err: fmt.Errorf("token has no subject")}
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, errs.UnauthorizedError{Err: fmt.Errorf("subject is not a user id, %v", err)}
	}

	return &Identity{
		UserID: userID,
	}, nil
}
