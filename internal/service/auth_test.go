package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusrent-backend/internal/domain"
	"campusrent-backend/internal/repository"
	"campusrent-backend/internal/service"
)

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	hash, err := service.HashPassword("1234")
	require.NoError(t, err)
	student := &domain.User{
		ID:           "student1",
		Name:         "Minjun Kim",
		Category:     domain.UserCategoryStudent,
		PasswordHash: hash,
	}

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		tokens := new(MockTokenManager)
		svc := service.NewAuthService(userRepo, tokens)

		userRepo.On("GetByID", ctx, "student1").Return(student, nil)
		tokens.On("GenerateAccessToken", student).Return("signed-token", nil)

		token, user, err := svc.Login(ctx, "student1", "1234")
		require.NoError(t, err)
		assert.Equal(t, "signed-token", token)
		assert.Equal(t, "student1", user.ID)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		tokens := new(MockTokenManager)
		svc := service.NewAuthService(userRepo, tokens)

		userRepo.On("GetByID", ctx, "student1").Return(student, nil)

		token, user, err := svc.Login(ctx, "student1", "wrong")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
		assert.Empty(t, token)
		assert.Nil(t, user)
		tokens.AssertNotCalled(t, "GenerateAccessToken", student)
	})

	t.Run("UnknownUser", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, new(MockTokenManager))

		// Unknown id and bad password are indistinguishable to the caller.
		userRepo.On("GetByID", ctx, "ghost").Return(nil, repository.ErrNotFound)

		_, _, err := svc.Login(ctx, "ghost", "1234")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})
}
