package model

import (
	"time"
)

type ChatRole string

const (
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

// ChatSession groups one user's advisor conversation. The transcript is
// append-only during a session and rehydrated at session start.
type ChatSession struct {
	UUIDBase
	UserID   uint          `gorm:"index;not null" json:"userId"`
	Language string        `gorm:"size:10;default:'en'" json:"language"`
	Topic    string        `gorm:"size:100" json:"topic"` // last matched problem id, advisory only
	Messages []ChatMessage `gorm:"foreignKey:SessionID" json:"messages,omitempty"`
}

func (ChatSession) TableName() string {
	return "chat_sessions"
}

// ChatMessage is one transcript entry.
type ChatMessage struct {
	BaseModel
	SessionID string    `gorm:"index;type:varchar(36);not null" json:"sessionId"`
	Role      ChatRole  `gorm:"type:enum('user','assistant');not null" json:"role"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	SentAt    time.Time `gorm:"index" json:"sentAt"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}
