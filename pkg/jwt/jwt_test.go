package jwt

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(secret string) *Service {
	return NewService(secret, "blog-api", "blog-frontend")
}

func TestNewService(t *testing.T) {
	secretKey := "test-secret-key"
	service := newTestService(secretKey)

	assert.NotNil(t, service)
	assert.Equal(t, []byte(secretKey), service.secretKey)
	assert.Equal(t, "blog-api", service.issuer)
	assert.Equal(t, "blog-frontend", service.audience)
}

func TestGenerateAndValidateToken_RoundTrip(t *testing.T) {
	service := newTestService("test-secret-key")

	token, err := service.GenerateToken("user-456", "alice", "Blogger")
	require.NoError(t, err)
	assert.Equal(t, 3, len(strings.Split(token, ".")))

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-456", claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "Blogger", claims.Role)
	assert.Equal(t, "user-456", claims.Subject)
	assert.Equal(t, "blog-api", claims.Issuer)
	assert.Equal(t, jwt.ClaimStrings{"blog-frontend"}, claims.Audience)
	assert.NotEmpty(t, claims.ID)
}

func TestGenerateToken_ExpiresThreeHoursAfterIssue(t *testing.T) {
	issued := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	service := newTestService("test-secret-key").WithClock(func() time.Time { return issued })

	token, err := service.GenerateToken("user-1", "bob", "Administrator")
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, issued, claims.IssuedAt.Time.UTC())
	assert.Equal(t, issued.Add(3*time.Hour), claims.ExpiresAt.Time.UTC())
}

func TestGenerateToken_UniqueTokenIDs(t *testing.T) {
	service := newTestService("test-secret-key")

	first, err := service.GenerateToken("user-1", "bob", "Blogger")
	require.NoError(t, err)
	second, err := service.GenerateToken("user-1", "bob", "Blogger")
	require.NoError(t, err)

	c1, err := service.ValidateToken(first)
	require.NoError(t, err)
	c2, err := service.ValidateToken(second)
	require.NoError(t, err)
	assert.NotEqual(t, c1.ID, c2.ID)
}

func TestValidateToken_Expired(t *testing.T) {
	issued := time.Now().Add(-4 * time.Hour)
	issuer := newTestService("test-secret-key").WithClock(func() time.Time { return issued })

	token, err := issuer.GenerateToken("user-1", "bob", "Blogger")
	require.NoError(t, err)

	_, err = newTestService("test-secret-key").ValidateToken(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidateToken_InvalidToken(t *testing.T) {
	service := newTestService("test-secret-key")

	_, err := service.ValidateToken("invalid-token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateToken_EmptyToken(t *testing.T) {
	service := newTestService("test-secret-key")

	_, err := service.ValidateToken("")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	service1 := newTestService("secret-key-1")
	service2 := newTestService("secret-key-2")

	token, err := service1.GenerateToken("user-123", "alice", "Blogger")
	require.NoError(t, err)

	_, err = service2.ValidateToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateToken_WrongAudience(t *testing.T) {
	token, err := NewService("secret", "blog-api", "someone-else").GenerateToken("user-1", "bob", "Blogger")
	require.NoError(t, err)

	_, err = NewService("secret", "blog-api", "blog-frontend").ValidateToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateToken_UnexpectedSigningMethod(t *testing.T) {
	claims := Claims{
		UserID: "user-1",
		Role:   "Administrator",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "blog-api",
			Audience:  jwt.ClaimStrings{"blog-frontend"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = newTestService("test-secret-key").ValidateToken(unsigned)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateToken_MissingIdentityClaims(t *testing.T) {
	service := newTestService("test-secret-key")

	token, err := service.GenerateToken("", "", "")
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
