package util

import (
	"testing"
	"time"

	"business_health_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	user := &model.User{
		BaseModel: model.BaseModel{ID: 42},
		Phone:     "9876543210",
		Role:      model.Owner,
	}

	token, err := GenerateJWT(user, "test-secret", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseJWT(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, model.Owner, claims.Role)
	assert.Equal(t, "9876543210", claims.Phone)
}

func TestJWTWrongSecret(t *testing.T) {
	user := &model.User{BaseModel: model.BaseModel{ID: 1}, Phone: "1", Role: model.Owner}

	token, err := GenerateJWT(user, "secret-a", time.Hour)
	require.NoError(t, err)

	_, err = ParseJWT(token, "secret-b")
	assert.Error(t, err)
}

func TestJWTExpired(t *testing.T) {
	user := &model.User{BaseModel: model.BaseModel{ID: 1}, Phone: "1", Role: model.Owner}

	token, err := GenerateJWT(user, "secret", -time.Minute)
	require.NoError(t, err)

	_, err = ParseJWT(token, "secret")
	assert.Error(t, err)
}
