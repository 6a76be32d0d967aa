package security_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusrent-backend/internal/domain"
	"campusrent-backend/internal/security"
)

const testSecret = "test-secret-key-with-32-characters!!"

func TestTokenManager_GenerateAndValidate(t *testing.T) {
	manager := security.NewTokenManager(testSecret, time.Hour)
	user := &domain.User{ID: "student1", Name: "Minjun Kim", Category: domain.UserCategoryStudent}

	token, err := manager.GenerateAccessToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "student1", claims.UserID)
	assert.Equal(t, "Minjun Kim", claims.Name)
	assert.Equal(t, domain.UserCategoryStudent, claims.Category)
	assert.Equal(t, "campusrent", claims.Issuer)
}

func TestTokenManager_ExpiredToken(t *testing.T) {
	manager := security.NewTokenManager(testSecret, -time.Minute)
	user := &domain.User{ID: "student1", Category: domain.UserCategoryStudent}

	token, err := manager.GenerateAccessToken(user)
	require.NoError(t, err)

	_, err = manager.ValidateToken(token)
	assert.ErrorIs(t, err, security.ErrExpiredToken)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	manager := security.NewTokenManager(testSecret, time.Hour)
	other := security.NewTokenManager("another-secret-key-32-characters!!!!", time.Hour)
	user := &domain.User{ID: "student1", Category: domain.UserCategoryStudent}

	token, err := manager.GenerateAccessToken(user)
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, security.ErrInvalidToken)
}

func TestTokenManager_GarbageToken(t *testing.T) {
	manager := security.NewTokenManager(testSecret, time.Hour)

	_, err := manager.ValidateToken("not-a-jwt")
	assert.ErrorIs(t, err, security.ErrInvalidToken)
}
