package controller

import (
	"errors"

	"business_health_backend/internal/model"
	"business_health_backend/internal/service"
	"business_health_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
	UserService *service.UserService
}

func NewAuthController(authService *service.AuthService, userService *service.UserService) *AuthController {
	return &AuthController{
		AuthService: authService,
		UserService: userService,
	}
}

// swagger:model RegisterRequest
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone" binding:"required,min=10,max=15"`
	Password string `json:"password" binding:"required,min=6"`
	Language string `json:"language" binding:"omitempty,oneof=en hi"`
	Business string `json:"business"`
}

// Register godoc
// @Summary Register a new user
// @Description Creates a business-owner account keyed by phone number
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   body body RegisterRequest true "Registration details"
// @Success 201 {object} util.Response{data=object} "Created"
// @Failure 400 {object} util.Response "Invalid request"
// @Failure 409 {object} util.Response "Phone already registered"
// @Failure 500 {object} util.Response "Internal error"
// @Router /api/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user := &model.User{
		Name:     req.Name,
		Phone:    req.Phone,
		Password: req.Password,
		Language: req.Language,
		Business: req.Business,
		Role:     model.Owner,
	}

	if err := c.AuthService.Register(user); err != nil {
		if errors.Is(err, util.ErrPhoneRegistered) {
			util.Error(ctx, 409, util.ErrPhoneRegistered.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, gin.H{"id": user.ID})
}

// swagger:model LoginRequest
type LoginRequest struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary Log in
// @Description Exchanges phone and password for a JWT
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   body body LoginRequest true "Credentials"
// @Success 200 {object} util.Response{data=object} "Token and profile"
// @Failure 400 {object} util.Response "Invalid request"
// @Failure 401 {object} util.Response "Invalid credentials"
// @Router /api/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	token, user, err := c.AuthService.Login(req.Phone, req.Password)
	if err != nil {
		if errors.Is(err, util.ErrInvalidCredentials) || errors.Is(err, util.ErrPermissionDenied) {
			util.Error(ctx, 401, util.ErrInvalidCredentials.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{
		"token": token,
		"user":  user,
	})
}

// Profile godoc
// @Summary Current user profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.User}
// @Failure 401 {object} util.Response
// @Router /api/profile [get]
func (c *AuthController) Profile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	user, err := c.UserService.Profile(claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, user)
}

// UpdateProfile godoc
// @Summary Update profile
// @Description Changes name, preferred language or business name
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.ProfileUpdate true "Fields to change"
// @Success 200 {object} util.Response{data=model.User}
// @Failure 400 {object} util.Response
// @Failure 401 {object} util.Response
// @Router /api/profile [put]
func (c *AuthController) UpdateProfile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.ProfileUpdate
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.UpdateProfile(claims.UserID, req)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, user)
}
