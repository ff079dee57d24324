package middleware

import (
	"strings"

	"business_health_backend/internal/config"
	"business_health_backend/internal/model"
	"business_health_backend/internal/util"
	"business_health_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if tokenString == "" {
			tokenString = c.Query("token")
		}

		if tokenString == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret)
		if err != nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set("user", claims)
		c.Next()
	}
}

// RoleMiddleware requires one of the given roles. Admins pass every gate.
func RoleMiddleware(roles ...model.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := util.GetUserFromContext(c)
		if user == nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		hasRole := false
		for _, role := range roles {
			if user.Role == model.Admin || user.Role == role {
				hasRole = true
				break
			}
		}

		if !hasRole {
			util.Forbidden(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

type EntitlementChecker interface {
	HasActiveEntitlement(userID uint) (bool, error)
}

// EntitlementMiddleware gates the advisor chat behind an active
// subscription. Admins are always entitled. Responds 402 when the
// subscription is missing or expired.
func EntitlementMiddleware(subscriptions EntitlementChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := util.GetUserFromContext(c)
		if claims == nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}
		if claims.Role == model.Admin {
			c.Next()
			return
		}

		active, err := subscriptions.HasActiveEntitlement(claims.UserID)
		if err != nil {
			util.LogInternalError(c, err)
			c.Abort()
			return
		}
		if !active {
			util.PaymentRequired(c, util.ErrNoEntitlement.Error())
			c.Abort()
			return
		}
		c.Next()
	}
}

type UserActivityRepo interface {
	TouchLastSeen(userID uint) error
}

func ActivityMiddleware(repo UserActivityRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := util.GetUserFromContext(c)
		if claims != nil {
			// Async, never blocks the request.
			go func(userID uint) {
				if err := repo.TouchLastSeen(userID); err != nil {
					logger.Log.Warn("failed to record user activity", zap.Uint("user_id", userID), zap.Error(err))
				}
			}(claims.UserID)
		}
		c.Next()
	}
}
