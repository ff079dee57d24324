package service

import (
	"errors"

	"business_health_backend/internal/config"
	"business_health_backend/internal/model"
	"business_health_backend/internal/repository"
	"business_health_backend/internal/util"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	UserRepo *repository.UserRepository
	Cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Cfg:      cfg,
	}
}

func (s *AuthService) Register(user *model.User) error {
	_, err := s.UserRepo.FindByPhone(user.Phone)
	if err == nil {
		return util.ErrPhoneRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashedPassword)
	if user.Role == "" {
		user.Role = model.Owner
	}
	return s.UserRepo.Create(user)
}

func (s *AuthService) Login(phone, password string) (string, *model.User, error) {
	user, err := s.UserRepo.FindByPhone(phone)
	if err != nil {
		return "", nil, util.ErrInvalidCredentials
	}
	if user.Disabled {
		return "", nil, util.ErrPermissionDenied
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, util.ErrInvalidCredentials
	}

	if err := s.UserRepo.UpdateLastLogin(user.ID); err != nil {
		return "", nil, err
	}

	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) GetCurrentUser(c *gin.Context) *model.User {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		return nil
	}

	user, err := s.UserRepo.FindByID(claims.UserID)
	if err != nil {
		return nil
	}
	return user
}
