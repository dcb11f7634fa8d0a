package auth

import (
	"errors"
	"testing"

	"github.com/dhank77/undangan.love/internal/application/errs"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("any-secret"))
	require.NoError(t, err)
	return token
}

func TestFromHeaderReadsSubject(t *testing.T) {
	userID := uuid.New()
	p := NewIdentityProvider(&Config{})

	identity, err := p.FromHeader("Bearer " + signedToken(t, jwt.MapClaims{"sub": userID.String()}))
	require.NoError(t, err)
	require.Equal(t, userID, identity.UserID)
}

func TestFromHeaderRejects(t *testing.T) {
	p := NewIdentityProvider(&Config{})
	tests := map[string]string{
		"missing header":     "",
		"wrong scheme":       "Basic abc",
		"garbage token":      "Bearer not.a.jwt",
		"no subject":         "Bearer " + signedToken(t, jwt.MapClaims{"name": "x"}),
		"subject not a uuid": "Bearer " + signedToken(t, jwt.MapClaims{"sub": "user-1"}),
	}
	for name, header := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := p.FromHeader(header)
			var unauthorized errs.UnauthorizedError
			require.True(t, errors.As(err, &unauthorized))
		})
	}
}

func TestDevModeFallsBackToTestUser(t *testing.T) {
	testUser := uuid.New()
	p := NewIdentityProvider(&Config{Mode: ModeDev, TestUser: &testUser})

	identity, err := p.FromHeader("")
	require.NoError(t, err)
	require.Equal(t, testUser, identity.UserID)

	tokenUser := uuid.New()
	identity, err = p.FromHeader("Bearer " + signedToken(t, jwt.MapClaims{"sub": tokenUser.String()}))
	require.NoError(t, err)
	require.Equal(t, tokenUser, identity.UserID)
}

func TestNewConfigIgnoresBadTestUser(t *testing.T) {
	t.Setenv("MODE", "dev")
	t.Setenv("TEST_USER", "not-a-uuid")

	cfg := NewConfig()
	require.Equal(t, ModeDev, cfg.Mode)
	require.Nil(t, cfg.TestUser)
}
