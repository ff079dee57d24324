package service

import (
	"errors"

	"business_health_backend/internal/catalog"
	"business_health_backend/internal/model"
	"business_health_backend/internal/repository"
	"business_health_backend/internal/util"

	"gorm.io/gorm"
)

type UserService struct {
	UserRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{UserRepo: userRepo}
}

func (s *UserService) Profile(userID uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// ProfileUpdate carries the fields a user may change about themselves.
type ProfileUpdate struct {
	Name     string `json:"name"`
	Language string `json:"language"`
	Business string `json:"business"`
}

func (s *UserService) UpdateProfile(userID uint, update ProfileUpdate) (*model.User, error) {
	user, err := s.Profile(userID)
	if err != nil {
		return nil, err
	}

	if update.Name != "" {
		user.Name = update.Name
	}
	if update.Language != "" {
		user.Language = string(catalog.Language(update.Language).Normalize())
	}
	if update.Business != "" {
		user.Business = update.Business
	}

	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) List(limit, offset int) ([]model.User, int64, error) {
	return s.UserRepo.List(limit, offset)
}
