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

// recentWindow is how many messages of a session are kept in the Redis
// cache for fast reloads of an open conversation.
const recentWindow = 20

const recentWindowTTL = 6 * time.Hour

type ChatRepository struct {
	DB    *gorm.DB
	Redis *redis.Client
	ctx   context.Context
}

func NewChatRepository(db *gorm.DB, rdb *redis.Client) *ChatRepository {
	return &ChatRepository{
		DB:    db,
		Redis: rdb,
		ctx:   context.Background(),
	}
}

func recentMessagesKey(sessionID string) string {
	return fmt.Sprintf("chat:recent:%s", sessionID)
}

func (r *ChatRepository) CreateSession(session *model.ChatSession) error {
	return r.DB.Create(session).Error
}

func (r *ChatRepository) GetSession(id string, userID uint) (*model.ChatSession, error) {
	var session model.ChatSession
	err := r.DB.Where("id = ? AND user_id = ?", id, userID).First(&session).Error
	return &session, err
}

func (r *ChatRepository) UpdateSession(session *model.ChatSession) error {
	return r.DB.Save(session).Error
}

func (r *ChatRepository) ListSessions(userID uint, limit, offset int) ([]model.ChatSession, int64, error) {
	var sessions []model.ChatSession
	var total int64

	db := r.DB.Model(&model.ChatSession{}).Where("user_id = ?", userID)
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := db.Order("updated_at DESC").Limit(limit).Offset(offset).Find(&sessions).Error
	return sessions, total, err
}

func (r *ChatRepository) DeleteSession(id string, userID uint) error {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND user_id = ?", id, userID).
			Delete(&model.ChatSession{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("session_id = ?", id).Delete(&model.ChatMessage{}).Error
	})
	if err != nil {
		return err
	}
	if r.Redis != nil {
		r.Redis.Del(r.ctx, recentMessagesKey(id))
	}
	return nil
}

// AppendMessages stores a batch of messages (typically a user turn plus the
// assistant reply) and refreshes the session's recent-message cache.
func (r *ChatRepository) AppendMessages(session *model.ChatSession, messages ...*model.ChatMessage) error {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		for _, msg := range messages {
			msg.SessionID = session.ID
			if err := tx.Create(msg).Error; err != nil {
				return err
			}
		}
		return tx.Model(session).Update("updated_at", time.Now()).Error
	})
	if err != nil {
		return err
	}

	if r.Redis != nil {
		for _, msg := range messages {
			data, jsonErr := json.Marshal(msg)
			if jsonErr != nil {
				continue
			}
			key := recentMessagesKey(session.ID)
			r.Redis.RPush(r.ctx, key, data)
			r.Redis.LTrim(r.ctx, key, -recentWindow, -1)
			r.Redis.Expire(r.ctx, key, recentWindowTTL)
		}
	}
	return nil
}

// RecentMessages returns the last messages of a session oldest first,
// serving from Redis when the cache is warm.
func (r *ChatRepository) RecentMessages(sessionID string) ([]model.ChatMessage, error) {
	if r.Redis != nil {
		raw, err := r.Redis.LRange(r.ctx, recentMessagesKey(sessionID), 0, -1).Result()
		if err == nil && len(raw) > 0 {
			messages := make([]model.ChatMessage, 0, len(raw))
			ok := true
			for _, item := range raw {
				var msg model.ChatMessage
				if jsonErr := json.Unmarshal([]byte(item), &msg); jsonErr != nil {
					ok = false
					break
				}
				messages = append(messages, msg)
			}
			if ok {
				return messages, nil
			}
		}
	}

	var messages []model.ChatMessage
	err := r.DB.Where("session_id = ?", sessionID).
		Order("sent_at DESC, id DESC").
		Limit(recentWindow).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}

	// Reverse into chronological order.
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

func (r *ChatRepository) Messages(sessionID string, limit, offset int) ([]model.ChatMessage, int64, error) {
	var messages []model.ChatMessage
	var total int64

	db := r.DB.Model(&model.ChatMessage{}).Where("session_id = ?", sessionID)
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := db.Order("sent_at ASC, id ASC").Limit(limit).Offset(offset).Find(&messages).Error
	return messages, total, err
}
