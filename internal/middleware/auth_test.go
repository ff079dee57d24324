package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"business_health_backend/internal/util"
	"business_health_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type touchFunc func(userID uint) error

func (f touchFunc) TouchLastSeen(userID uint) error { return f(userID) }

func activityRouter(repo UserActivityRepo, claims *util.Claims) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		if claims != nil {
			c.Set("user", claims)
		}
	})
	router.Use(ActivityMiddleware(repo))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	return router
}

func TestActivityMiddlewareRecordsUser(t *testing.T) {
	logger.Log = zap.NewNop()

	touched := make(chan uint, 1)
	router := activityRouter(touchFunc(func(userID uint) error {
		touched <- userID
		return nil
	}), &util.Claims{UserID: 7})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	select {
	case userID := <-touched:
		assert.Equal(t, uint(7), userID)
	case <-time.After(time.Second):
		t.Fatal("last seen update never ran")
	}
}

func TestActivityMiddlewareSurvivesRepoFailure(t *testing.T) {
	logger.Log = zap.NewNop()

	touched := make(chan struct{}, 1)
	router := activityRouter(touchFunc(func(userID uint) error {
		touched <- struct{}{}
		return errors.New("db down")
	}), &util.Claims{UserID: 7})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	select {
	case <-touched:
	case <-time.After(time.Second):
		t.Fatal("last seen update never ran")
	}
}

func TestActivityMiddlewareSkipsAnonymous(t *testing.T) {
	router := activityRouter(touchFunc(func(userID uint) error {
		t.Error("unexpected last seen update")
		return nil
	}), nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
