package utils

import (
	"testing"

	"microblog/internal/pkg/config"

	"github.com/stretchr/testify/assert"
)

func TestGenerateAndParse(t *testing.T) {
	mgr := NewJWTManager(config.JWTConfig{Secret: "test-secret-key-0123456789abcdef0123", Expire: 1})

	token, err := mgr.Generate("user-1")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := mgr.Parse(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "microblog", claims.Issuer)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	mgr := NewJWTManager(config.JWTConfig{Secret: "test-secret-key-0123456789abcdef0123", Expire: 1})
	other := NewJWTManager(config.JWTConfig{Secret: "another-secret-key-0123456789abcdef", Expire: 1})

	token, err := mgr.Generate("user-1")
	assert.NoError(t, err)

	claims, err := other.Parse(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestParseRejectsGarbage(t *testing.T) {
	mgr := NewJWTManager(config.JWTConfig{Secret: "test-secret-key-0123456789abcdef0123", Expire: 1})

	claims, err := mgr.Parse("not.a.token")
	assert.Error(t, err)
	assert.Nil(t, claims)
}
