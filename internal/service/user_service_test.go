package service

import (
	"context"
	"testing"

	"tastebook/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestUserService_ChangePassword(t *testing.T) {
	ctx := context.Background()

	hashed, err := bcrypt.GenerateFromPassword([]byte("OldPassword1!x"), bcrypt.MinCost)
	require.NoError(t, err)

	newUserRepo := func(updated **models.User) *stubUserRepo {
		return &stubUserRepo{
			getByIDFn: func(_ context.Context, id uint, _ uint) (*models.User, error) {
				return &models.User{ID: id, Username: "chef", Password: string(hashed)}, nil
			},
			updateFn: func(_ context.Context, user *models.User) error {
				*updated = user
				return nil
			},
		}
	}

	t.Run("Wrong current password", func(t *testing.T) {
		var updated *models.User
		svc := NewUserService(newUserRepo(&updated))

		err := svc.ChangePassword(ctx, ChangePasswordInput{
			UserID:          1,
			CurrentPassword: "nope",
			NewPassword:     "NewPassword1!x",
		})
		require.Error(t, err)
		appErr, ok := err.(*models.AppError)
		require.True(t, ok)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
		assert.Equal(t, "Current password is incorrect", appErr.Message)
		assert.Nil(t, updated)
	})

	t.Run("Weak new password", func(t *testing.T) {
		var updated *models.User
		svc := NewUserService(newUserRepo(&updated))

		err := svc.ChangePassword(ctx, ChangePasswordInput{
			UserID:          1,
			CurrentPassword: "OldPassword1!x",
			NewPassword:     "short",
		})
		require.Error(t, err)
		appErr, ok := err.(*models.AppError)
		require.True(t, ok)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
		assert.Nil(t, updated)
	})

	t.Run("Valid change rehashes", func(t *testing.T) {
		var updated *models.User
		svc := NewUserService(newUserRepo(&updated))

		err := svc.ChangePassword(ctx, ChangePasswordInput{
			UserID:          1,
			CurrentPassword: "OldPassword1!x",
			NewPassword:     "NewPassword1!x",
		})
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.NotEqual(t, string(hashed), updated.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword(
			[]byte(updated.Password), []byte("NewPassword1!x")))
	})
}
