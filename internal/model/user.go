package model

import (
	"time"
)

type UserRole string

const (
	Owner UserRole = "owner" // small-business owner, the default account
	Admin UserRole = "admin" // reviews payment requests
)

// swagger:model User
type User struct {
	BaseModel
	Name      string    `gorm:"size:100;not null" json:"name"`
	Phone     string    `gorm:"size:20;unique;not null" json:"phone"`
	Password  string    `gorm:"size:100;not null" json:"-"`
	Role      UserRole  `gorm:"type:enum('owner','admin');default:'owner'" json:"role"`
	Language  string    `gorm:"size:10;default:'en'" json:"language"`
	Business  string    `gorm:"size:255" json:"business"` // free-text business name
	Disabled  bool      `gorm:"default:false" json:"disabled"`
	LastLogin time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastLogin"`
	LastSeen  time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastSeen"`
}

func (User) TableName() string {
	return "users"
}
