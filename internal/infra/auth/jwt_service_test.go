package auth

import (
	"testing"
	"time"

	"vetclinic/config"
	domainerrors "vetclinic/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret"
	cfg.JWT = &config.JWTConfig{
		Issuer:         "APIVeterinaria",
		Audience:       "APIVeterinariaClient",
		AccessTokenTTL: time.Minute,
	}

	return cfg
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	userID := uuid.New()
	token, err := svc.GenerateAccessToken(userID, "vet1", "veterinario")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "vet1", claims.Username)
	assert.Equal(t, "veterinario", claims.Role)
	assert.Equal(t, "APIVeterinaria", claims.Issuer)
}

func TestJWTService_RejectsWrongIssuer(t *testing.T) {
	issuerCfg := newTestJWTConfig()
	issuerCfg.JWT.Issuer = "OtraAPI"
	otherSvc, err := NewJWTService(issuerCfg)
	require.NoError(t, err)

	token, err := otherSvc.GenerateAccessToken(uuid.New(), "cliente1", "cliente")
	require.NoError(t, err)

	svc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalido)
}

func TestJWTService_RejectsTamperedToken(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	token, err := svc.GenerateAccessToken(uuid.New(), "cliente1", "cliente")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token + "x")
	require.Error(t, err)
}

func TestJWTService_RequiresSecret(t *testing.T) {
	cfg := newTestJWTConfig()
	cfg.SecretKey.Access = ""

	_, err := NewJWTService(cfg)
	require.Error(t, err)
}
