package jwt_test

import (
	"errors"
	"testing"

	"resort/config"
	"resort/infras/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJWT() jwt.JWT {
	cfg := &config.Config{}
	cfg.App.Name = "resort"
	cfg.JWT.AccessSecret = "access-secret"
	cfg.JWT.RefreshSecret = "refresh-secret"
	cfg.JWT.AccessExpireMin = 15
	cfg.JWT.RefreshExpireMin = 60

	return jwt.New(cfg)
}

func TestJWT_GenerateAndValidate(t *testing.T) {
	svc := newJWT()

	pair, err := svc.GenerateTokenPair("s-1", "desk@resort.test", "front_desk")
	require.NoError(t, err)
	assert.Equal(t, "Bearer", pair.TokenType)
	assert.Equal(t, int64(900), pair.ExpiresIn)

	claims, err := svc.ValidateToken(pair.AccessToken, jwt.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "s-1", claims.StaffID)
	assert.Equal(t, "front_desk", claims.Role)

	_, err = svc.ValidateToken(pair.AccessToken, jwt.RefreshToken)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)

	_, err = svc.ValidateToken("garbage", jwt.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestJWT_RefreshTokens(t *testing.T) {
	svc := newJWT()

	pair, err := svc.GenerateTokenPair("s-1", "desk@resort.test", "admin")
	require.NoError(t, err)

	refreshed, err := svc.RefreshTokens(pair.RefreshToken)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(refreshed.AccessToken, jwt.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)

	_, err = svc.RefreshTokens(pair.AccessToken)
	assert.Error(t, err)
}

func TestExtractTokenFromHeader(t *testing.T) {
	token, err := jwt.ExtractTokenFromHeader("Bearer abc.def")
	assert.NoError(t, err)
	assert.Equal(t, "abc.def", token)

	_, err = jwt.ExtractTokenFromHeader("")
	assert.True(t, errors.Is(err, jwt.ErrMissingHeader))

	_, err = jwt.ExtractTokenFromHeader("Basic abc")
	assert.True(t, errors.Is(err, jwt.ErrInvalidHeader))
}
