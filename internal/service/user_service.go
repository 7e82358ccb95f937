package service

import (
	"context"

	"tastebook/internal/models"
	"tastebook/internal/repository"
	"tastebook/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	userRepo repository.UserRepository
}

type ChangePasswordInput struct {
	UserID          uint
	CurrentPassword string
	NewPassword     string
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) ListUsers(ctx context.Context, limit, offset int, currentUserID uint) ([]models.User, int64, error) {
	return s.userRepo.List(ctx, limit, offset, currentUserID)
}

func (s *UserService) GetUserByID(ctx context.Context, id uint, currentUserID uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id, currentUserID)
}

func (s *UserService) ChangePassword(ctx context.Context, in ChangePasswordInput) error {
	user, err := s.userRepo.GetByID(ctx, in.UserID, in.UserID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.CurrentPassword)); err != nil {
		return models.NewValidationError("Current password is incorrect")
	}
	if err := validation.ValidatePassword(in.NewPassword); err != nil {
		return models.NewValidationError(err.Error())
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return models.NewInternalError(err)
	}
	user.Password = string(hashed)
	return s.userRepo.Update(ctx, user)
}
