package dto_test

import (
	"testing"

	"resort/infras/jwt"
	"resort/internal/domains/auth/model/dto"

	"github.com/stretchr/testify/assert"
)

func TestTokenResponse_FromTokenPair(t *testing.T) {
	pair := &jwt.TokenPair{
		AccessToken:  "access",
		RefreshToken: "refresh",
		TokenType:    "Bearer",
		ExpiresIn:    900,
	}

	var res dto.TokenResponse
	res.FromTokenPair(pair)

	assert.Equal(t, dto.TokenResponse{
		AccessToken:  "access",
		RefreshToken: "refresh",
		TokenType:    "Bearer",
		ExpiresIn:    900,
	}, res)
}
