package service

import (
	"errors"
	"time"

	"business_health_backend/internal/config"
	"business_health_backend/internal/model"
	"business_health_backend/internal/repository"
	"business_health_backend/internal/util"

	"gorm.io/gorm"
)

// SubscriptionService runs the manual UPI payment flow: users submit a
// transaction reference, an admin reviews it, approval opens an entitlement
// window.
type SubscriptionService struct {
	Repo *repository.SubscriptionRepository
	Cfg  *config.Config
}

func NewSubscriptionService(repo *repository.SubscriptionRepository, cfg *config.Config) *SubscriptionService {
	return &SubscriptionService{Repo: repo, Cfg: cfg}
}

// PlanInfo is what the payment page renders.
type PlanInfo struct {
	Plan       model.SubscriptionPlan `json:"plan"`
	PriceINR   int                    `json:"priceInr"`
	UPIAddress string                 `json:"upiAddress"`
}

func (s *SubscriptionService) Plans() []PlanInfo {
	return []PlanInfo{
		{Plan: model.PlanMonthly, PriceINR: s.Cfg.Subscription.MonthlyPriceINR, UPIAddress: s.Cfg.Subscription.UPIAddress},
		{Plan: model.PlanYearly, PriceINR: s.Cfg.Subscription.YearlyPriceINR, UPIAddress: s.Cfg.Subscription.UPIAddress},
	}
}

func (s *SubscriptionService) priceFor(plan model.SubscriptionPlan) int {
	if plan == model.PlanYearly {
		return s.Cfg.Subscription.YearlyPriceINR
	}
	return s.Cfg.Subscription.MonthlyPriceINR
}

// RequestPayment opens a payment request for review. Only one request may
// be pending per user.
func (s *SubscriptionService) RequestPayment(userID uint, plan model.SubscriptionPlan, upiRef string) (*model.PaymentRequest, error) {
	if plan != model.PlanMonthly && plan != model.PlanYearly {
		return nil, errors.New("unknown subscription plan")
	}

	if _, err := s.Repo.PendingPaymentForUser(userID); err == nil {
		return nil, util.ErrPaymentPending
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	req := &model.PaymentRequest{
		UserID:    userID,
		Plan:      plan,
		UPIRef:    upiRef,
		AmountINR: s.priceFor(plan),
		Status:    model.PaymentPending,
	}
	if err := s.Repo.CreatePaymentRequest(req); err != nil {
		return nil, err
	}
	return req, nil
}

// SubscriptionStatus summarizes the user's entitlement for the client.
type SubscriptionStatus struct {
	Active         bool                   `json:"active"`
	Plan           model.SubscriptionPlan `json:"plan,omitempty"`
	ExpiresAt      *time.Time             `json:"expiresAt,omitempty"`
	PendingPayment bool                   `json:"pendingPayment"`
}

func (s *SubscriptionService) Status(userID uint) (*SubscriptionStatus, error) {
	status := &SubscriptionStatus{}

	sub, err := s.Repo.ActiveSubscription(userID, time.Now())
	if err == nil {
		status.Active = true
		status.Plan = sub.Plan
		status.ExpiresAt = &sub.ExpiresAt
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if _, err := s.Repo.PendingPaymentForUser(userID); err == nil {
		status.PendingPayment = true
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return status, nil
}

func (s *SubscriptionService) PaymentHistory(userID uint) ([]model.PaymentRequest, error) {
	return s.Repo.PaymentHistoryForUser(userID)
}

func (s *SubscriptionService) ListPayments(status model.PaymentStatus, limit, offset int) ([]model.PaymentRequest, int64, error) {
	return s.Repo.ListPaymentRequests(status, limit, offset)
}

// Review settles a pending payment request. Approval opens a subscription
// window; if the user already has time left the new window starts when the
// current one expires.
func (s *SubscriptionService) Review(adminID, paymentID uint, approve bool, note string) (*model.PaymentRequest, error) {
	req, err := s.Repo.FindPaymentRequest(paymentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrPaymentNotFound
		}
		return nil, err
	}
	if req.Status != model.PaymentPending {
		return nil, util.ErrPaymentReviewed
	}

	now := time.Now()
	req.ReviewedBy = adminID
	req.ReviewedAt = &now
	req.Note = note
	if approve {
		req.Status = model.PaymentApproved
	} else {
		req.Status = model.PaymentRejected
	}
	if err := s.Repo.UpdatePaymentRequest(req); err != nil {
		return nil, err
	}

	if !approve {
		return req, nil
	}

	startsAt := now
	if current, err := s.Repo.ActiveSubscription(req.UserID, now); err == nil {
		startsAt = current.ExpiresAt
	}

	sub := &model.Subscription{
		UserID:    req.UserID,
		Plan:      req.Plan,
		StartsAt:  startsAt,
		ExpiresAt: startsAt.Add(model.PlanDuration(req.Plan)),
		PaymentID: req.ID,
	}
	if err := s.Repo.CreateSubscription(sub); err != nil {
		return nil, err
	}
	return req, nil
}

// HasActiveEntitlement reports whether the user may use the advisor chat.
func (s *SubscriptionService) HasActiveEntitlement(userID uint) (bool, error) {
	_, err := s.Repo.ActiveSubscription(userID, time.Now())
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return false, err
}
