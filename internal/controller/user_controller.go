package controller

import (
	"business_health_backend/internal/service"
	"business_health_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	Users *service.UserService
}

func NewUserController(users *service.UserService) *UserController {
	return &UserController{Users: users}
}

// List godoc
// @Summary List users (admin)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} util.Response{data=object}
// @Failure 401 {object} util.Response
// @Failure 403 {object} util.Response
// @Router /api/admin/users [get]
func (c *UserController) List(ctx *gin.Context) {
	limit, offset := pagination(ctx)
	users, total, err := c.Users.List(limit, offset)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{
		"items": users,
		"total": total,
	})
}
