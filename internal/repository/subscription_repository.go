package repository

import (
	"business_health_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type SubscriptionRepository struct {
	DB *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{DB: db}
}

func (r *SubscriptionRepository) CreatePaymentRequest(req *model.PaymentRequest) error {
	return r.DB.Create(req).Error
}

func (r *SubscriptionRepository) FindPaymentRequest(id uint) (*model.PaymentRequest, error) {
	var req model.PaymentRequest
	err := r.DB.Preload("User").First(&req, id).Error
	return &req, err
}

func (r *SubscriptionRepository) UpdatePaymentRequest(req *model.PaymentRequest) error {
	return r.DB.Save(req).Error
}

// PendingPaymentForUser returns the user's open payment request, if any. A
// user can only have one request in review at a time.
func (r *SubscriptionRepository) PendingPaymentForUser(userID uint) (*model.PaymentRequest, error) {
	var req model.PaymentRequest
	err := r.DB.Where("user_id = ? AND status = ?", userID, model.PaymentPending).
		Order("created_at DESC").
		First(&req).Error
	return &req, err
}

func (r *SubscriptionRepository) ListPaymentRequests(status model.PaymentStatus, limit, offset int) ([]model.PaymentRequest, int64, error) {
	var reqs []model.PaymentRequest
	var total int64

	db := r.DB.Model(&model.PaymentRequest{}).Preload("User")
	if status != "" {
		db = db.Where("status = ?", status)
	}
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&reqs).Error
	return reqs, total, err
}

func (r *SubscriptionRepository) PaymentHistoryForUser(userID uint) ([]model.PaymentRequest, error) {
	var reqs []model.PaymentRequest
	err := r.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&reqs).Error
	return reqs, err
}

func (r *SubscriptionRepository) CreateSubscription(sub *model.Subscription) error {
	return r.DB.Create(sub).Error
}

// ActiveSubscription returns the subscription covering the given instant,
// preferring the one that expires last when windows overlap.
func (r *SubscriptionRepository) ActiveSubscription(userID uint, at time.Time) (*model.Subscription, error) {
	var sub model.Subscription
	err := r.DB.Where("user_id = ? AND starts_at <= ? AND expires_at > ?", userID, at, at).
		Order("expires_at DESC").
		First(&sub).Error
	return &sub, err
}

func (r *SubscriptionRepository) LatestSubscription(userID uint) (*model.Subscription, error) {
	var sub model.Subscription
	err := r.DB.Where("user_id = ?", userID).
		Order("expires_at DESC").
		First(&sub).Error
	return &sub, err
}
