package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPlanDuration(t *testing.T) {
	assert.Equal(t, 30*24*time.Hour, PlanDuration(PlanMonthly))
	assert.Equal(t, 365*24*time.Hour, PlanDuration(PlanYearly))
}

func TestSubscriptionActiveAt(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	sub := Subscription{
		StartsAt:  start,
		ExpiresAt: start.Add(30 * 24 * time.Hour),
	}

	assert.False(t, sub.ActiveAt(start.Add(-time.Second)))
	assert.True(t, sub.ActiveAt(start)) // inclusive start
	assert.True(t, sub.ActiveAt(start.Add(15*24*time.Hour)))
	assert.False(t, sub.ActiveAt(sub.ExpiresAt)) // exclusive end
	assert.False(t, sub.ActiveAt(sub.ExpiresAt.Add(time.Hour)))
}
