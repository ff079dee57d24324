package repository

import (
	"business_health_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	return &user, err
}

func (r *UserRepository) FindByPhone(phone string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("phone = ?", phone).First(&user).Error
	return &user, err
}

func (r *UserRepository) Update(user *model.User) error {
	return r.DB.Save(user).Error
}

func (r *UserRepository) UpdateLastLogin(userID uint) error {
	now := time.Now()
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{"last_login": now, "last_seen": now}).
		Error
}

func (r *UserRepository) TouchLastSeen(userID uint) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Update("last_seen", time.Now()).
		Error
}

func (r *UserRepository) CountAdmins() (int64, error) {
	var count int64
	err := r.DB.Model(&model.User{}).Where("role = ?", model.Admin).Count(&count).Error
	return count, err
}

func (r *UserRepository) List(limit, offset int) ([]model.User, int64, error) {
	var users []model.User
	var total int64

	db := r.DB.Model(&model.User{})
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&users).Error
	return users, total, err
}
