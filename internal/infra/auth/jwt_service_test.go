package auth

import (
	"testing"
	"time"

	"internova/config"
	"internova/internal/domain/entity"
	domainerrors "internova/internal/domain/errors"
	"internova/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSigningKey = "test_access_secret_key_very_long_for_testing"

func newTestJWTConfig(key string) *config.Config {
	cfg := &config.Config{
		JWT: &config.JWTConfig{Issuer: "Internova", Audience: "InternovaUsers"},
	}
	cfg.SecretKey.Access = key

	return cfg
}

func newTestJWTService(t *testing.T, now func() time.Time) *jwtService {
	t.Helper()

	svc, err := NewJWTService(newTestJWTConfig(testSigningKey))
	require.NoError(t, err)

	impl, ok := svc.(*jwtService)
	require.True(t, ok)
	if now != nil {
		impl.now = now
	}

	return impl
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	svc := newTestJWTService(t, nil)

	token, err := svc.Issue(42, "jane@uni.edu", entity.RoleStudent)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)

	accountID, err := claims.AccountID()
	require.NoError(t, err)
	assert.Equal(t, int64(42), accountID)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, "jane@uni.edu", claims.Email)
	assert.Equal(t, "Student", claims.Role)
	assert.Equal(t, "Internova", claims.Issuer)
	assert.Equal(t, jwt.ClaimStrings{"InternovaUsers"}, claims.Audience)
	assert.NotEmpty(t, claims.ID)
	assert.Equal(t, service.AccessTokenTTL, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestJWTService_UniqueTokenIDs(t *testing.T) {
	svc := newTestJWTService(t, nil)

	first, err := svc.Issue(1, "a@b.c", entity.RoleCompany)
	require.NoError(t, err)
	second, err := svc.Issue(1, "a@b.c", entity.RoleCompany)
	require.NoError(t, err)

	c1, err := svc.Validate(first)
	require.NoError(t, err)
	c2, err := svc.Validate(second)
	require.NoError(t, err)

	assert.NotEqual(t, c1.ID, c2.ID)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	issuedAt := time.Now().Add(-9 * time.Hour)
	issuer := newTestJWTService(t, func() time.Time { return issuedAt })

	token, err := issuer.Issue(7, "old@uni.edu", entity.RoleStudent)
	require.NoError(t, err)

	// Seven hours later the token is still inside its 8h window.
	early := newTestJWTService(t, func() time.Time { return issuedAt.Add(7 * time.Hour) })
	_, err = early.Validate(token)
	require.NoError(t, err)

	verifier := newTestJWTService(t, nil)
	claims, err := verifier.Validate(token)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
	assert.Equal(t, domainerrors.KindAuthentication, domainerrors.KindOf(err))
}

func TestJWTService_RejectsForeignTokens(t *testing.T) {
	svc := newTestJWTService(t, nil)

	otherKey, err := NewJWTService(newTestJWTConfig("a_completely_different_signing_key"))
	require.NoError(t, err)
	wrongKeyToken, err := otherKey.Issue(1, "a@b.c", entity.RoleStudent)
	require.NoError(t, err)

	otherAudienceCfg := newTestJWTConfig(testSigningKey)
	otherAudienceCfg.JWT.Audience = "SomeoneElse"
	otherAudience, err := NewJWTService(otherAudienceCfg)
	require.NoError(t, err)
	wrongAudienceToken, err := otherAudience.Issue(1, "a@b.c", entity.RoleStudent)
	require.NoError(t, err)

	otherIssuerCfg := newTestJWTConfig(testSigningKey)
	otherIssuerCfg.JWT.Issuer = "Mallory"
	otherIssuer, err := NewJWTService(otherIssuerCfg)
	require.NoError(t, err)
	wrongIssuerToken, err := otherIssuer.Issue(1, "a@b.c", entity.RoleStudent)
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "1"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := map[string]string{
		"garbage":        "clearly-not-a-jwt-token-format",
		"empty":          "",
		"wrong key":      wrongKeyToken,
		"wrong audience": wrongAudienceToken,
		"wrong issuer":   wrongIssuerToken,
		"alg none":       noneToken,
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			claims, err := svc.Validate(token)
			assert.Nil(t, claims)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
		})
	}
}

func TestJWTService_RequiresSigningKey(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig(""))
	assert.Nil(t, svc)
	require.Error(t, err)
	assert.Equal(t, domainerrors.KindFatalConfig, domainerrors.KindOf(err))

	svc, err = NewJWTService(nil)
	assert.Nil(t, svc)
	assert.Error(t, err)
}
