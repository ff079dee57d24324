package repository

import (
	"business_health_backend/internal/model"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// maxAssessmentsPerUser caps how much history is retained per user. Older
// records beyond the cap are pruned on every save.
const maxAssessmentsPerUser = 50

const latestAssessmentTTL = 24 * time.Hour

type AssessmentRepository struct {
	DB    *gorm.DB
	Redis *redis.Client
	ctx   context.Context
}

func NewAssessmentRepository(db *gorm.DB, rdb *redis.Client) *AssessmentRepository {
	return &AssessmentRepository{
		DB:    db,
		Redis: rdb,
		ctx:   context.Background(),
	}
}

func latestAssessmentKey(userID uint) string {
	return fmt.Sprintf("assessment:latest:%d", userID)
}

// Save stores a new assessment and prunes the user's history down to the
// retention cap inside the same transaction.
func (r *AssessmentRepository) Save(record *model.AssessmentRecord) error {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(record).Error; err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&model.AssessmentRecord{}).
			Where("user_id = ?", record.UserID).
			Count(&count).Error; err != nil {
			return err
		}
		if count <= maxAssessmentsPerUser {
			return nil
		}

		// Delete the oldest records beyond the cap.
		var staleIDs []uint
		if err := tx.Model(&model.AssessmentRecord{}).
			Where("user_id = ?", record.UserID).
			Order("created_at ASC, id ASC").
			Limit(int(count)-maxAssessmentsPerUser).
			Pluck("id", &staleIDs).Error; err != nil {
			return err
		}
		return tx.Delete(&model.AssessmentRecord{}, staleIDs).Error
	})
	if err != nil {
		return err
	}

	r.cacheLatest(record)
	return nil
}

func (r *AssessmentRepository) FindByID(id uint) (*model.AssessmentRecord, error) {
	var record model.AssessmentRecord
	err := r.DB.First(&record, id).Error
	return &record, err
}

// History returns the user's assessments most recent first.
func (r *AssessmentRepository) History(userID uint, limit, offset int) ([]model.AssessmentRecord, int64, error) {
	var records []model.AssessmentRecord
	var total int64

	db := r.DB.Model(&model.AssessmentRecord{}).Where("user_id = ?", userID)
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := db.Order("created_at DESC, id DESC").Limit(limit).Offset(offset).Find(&records).Error
	return records, total, err
}

// Latest returns the user's most recent assessment, trying the Redis cache
// before the database.
func (r *AssessmentRepository) Latest(userID uint) (*model.AssessmentRecord, error) {
	if r.Redis != nil {
		data, err := r.Redis.Get(r.ctx, latestAssessmentKey(userID)).Bytes()
		if err == nil {
			var record model.AssessmentRecord
			if jsonErr := json.Unmarshal(data, &record); jsonErr == nil {
				return &record, nil
			}
		}
	}

	var record model.AssessmentRecord
	err := r.DB.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		First(&record).Error
	if err != nil {
		return nil, err
	}

	r.cacheLatest(&record)
	return &record, nil
}

func (r *AssessmentRepository) DeleteAllForUser(userID uint) error {
	if err := r.DB.Where("user_id = ?", userID).
		Delete(&model.AssessmentRecord{}).Error; err != nil {
		return err
	}
	if r.Redis != nil {
		r.Redis.Del(r.ctx, latestAssessmentKey(userID))
	}
	return nil
}

func (r *AssessmentRepository) cacheLatest(record *model.AssessmentRecord) {
	if r.Redis == nil {
		return
	}
	data, err := json.Marshal(record)
	if err != nil {
		return
	}
	r.Redis.Set(r.ctx, latestAssessmentKey(record.UserID), data, latestAssessmentTTL)
}
