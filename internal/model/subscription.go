package model

import (
	"time"
)

type SubscriptionPlan string

const (
	PlanMonthly SubscriptionPlan = "monthly"
	PlanYearly  SubscriptionPlan = "yearly"
)

// PlanDuration returns how long a plan stays active once approved.
func PlanDuration(plan SubscriptionPlan) time.Duration {
	if plan == PlanYearly {
		return 365 * 24 * time.Hour
	}
	return 30 * 24 * time.Hour
}

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentApproved PaymentStatus = "approved"
	PaymentRejected PaymentStatus = "rejected"
)

// PaymentRequest is a manually reviewed UPI payment claim. The user submits
// the UPI transaction reference; an admin approves or rejects it.
// swagger:model PaymentRequest
type PaymentRequest struct {
	BaseModel
	UserID     uint             `gorm:"index;not null" json:"userId"`
	Plan       SubscriptionPlan `gorm:"type:enum('monthly','yearly');not null" json:"plan"`
	UPIRef     string           `gorm:"size:100;not null" json:"upiRef"`
	AmountINR  int              `gorm:"not null" json:"amountInr"`
	Status     PaymentStatus    `gorm:"type:enum('pending','approved','rejected');default:'pending';index" json:"status"`
	Note       string           `gorm:"size:255" json:"note"` // admin note on review
	ReviewedBy uint             `gorm:"default:0" json:"reviewedBy"`
	ReviewedAt *time.Time       `json:"reviewedAt,omitempty"`
	User       *User            `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (PaymentRequest) TableName() string {
	return "payment_requests"
}

// Subscription is the active entitlement window created on approval.
// swagger:model Subscription
type Subscription struct {
	BaseModel
	UserID    uint             `gorm:"index;not null" json:"userId"`
	Plan      SubscriptionPlan `gorm:"type:enum('monthly','yearly');not null" json:"plan"`
	StartsAt  time.Time        `gorm:"not null" json:"startsAt"`
	ExpiresAt time.Time        `gorm:"index;not null" json:"expiresAt"`
	PaymentID uint             `gorm:"index" json:"paymentId"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}

// ActiveAt reports whether the subscription covers the given instant.
func (s *Subscription) ActiveAt(t time.Time) bool {
	return !t.Before(s.StartsAt) && t.Before(s.ExpiresAt)
}
