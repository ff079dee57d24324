package controller

import (
	"errors"
	"strings"

	"business_health_backend/internal/service"
	"business_health_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	Chat *service.ChatService
}

func NewChatController(chat *service.ChatService) *ChatController {
	return &ChatController{Chat: chat}
}

// swagger:model StartSessionRequest
type StartSessionRequest struct {
	Language string `json:"language" binding:"omitempty,oneof=en hi"`
}

// StartSession godoc
// @Summary Start an advisor conversation
// @Tags chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body StartSessionRequest false "Session options"
// @Success 201 {object} util.Response{data=model.ChatSession}
// @Failure 401 {object} util.Response
// @Failure 402 {object} util.Response "No active subscription"
// @Router /api/chat/sessions [post]
func (c *ChatController) StartSession(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req StartSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && ctx.Request.ContentLength > 0 {
		util.BadRequest(ctx, err.Error())
		return
	}

	session, err := c.Chat.StartSession(claims.UserID, req.Language)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, session)
}

// ListSessions godoc
// @Summary List conversations
// @Tags chat
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} util.Response{data=object}
// @Failure 401 {object} util.Response
// @Router /api/chat/sessions [get]
func (c *ChatController) ListSessions(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	limit, offset := pagination(ctx)
	sessions, total, err := c.Chat.ListSessions(claims.UserID, limit, offset)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{
		"items": sessions,
		"total": total,
	})
}

// DeleteSession godoc
// @Summary Delete a conversation
// @Tags chat
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session id"
// @Success 200 {object} util.Response
// @Failure 401 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/chat/sessions/{id} [delete]
func (c *ChatController) DeleteSession(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.Chat.DeleteSession(claims.UserID, ctx.Param("id")); err != nil {
		if errors.Is(err, util.ErrSessionNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, nil)
}

// swagger:model SendMessageRequest
type SendMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

// SendMessage godoc
// @Summary Send a message to the advisor
// @Description Appends the user message and returns the advisor's reply
// @Tags chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session id"
// @Param body body SendMessageRequest true "Message"
// @Success 200 {object} util.Response{data=model.ChatMessage}
// @Failure 400 {object} util.Response "Empty message"
// @Failure 401 {object} util.Response
// @Failure 402 {object} util.Response "No active subscription"
// @Failure 404 {object} util.Response "Unknown session"
// @Router /api/chat/sessions/{id}/messages [post]
func (c *ChatController) SendMessage(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SendMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		util.BadRequest(ctx, util.ErrEmptyMessage.Error())
		return
	}

	reply, err := c.Chat.SendMessage(claims.UserID, ctx.Param("id"), req.Content)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrEmptyMessage):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, util.ErrSessionNotFound):
			util.NotFound(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, reply)
}

// Messages godoc
// @Summary Conversation transcript
// @Tags chat
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session id"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} util.Response{data=object}
// @Failure 401 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/chat/sessions/{id}/messages [get]
func (c *ChatController) Messages(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	limit, offset := pagination(ctx)
	messages, total, err := c.Chat.SessionMessages(claims.UserID, ctx.Param("id"), limit, offset)
	if err != nil {
		if errors.Is(err, util.ErrSessionNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, gin.H{
		"items": messages,
		"total": total,
	})
}

// Suggestions godoc
// @Summary Quick question suggestions
// @Description Localized starter questions for the chat input
// @Tags chat
// @Produce json
// @Security BearerAuth
// @Param lang query string false "Language" Enums(en, hi) default(en)
// @Success 200 {object} util.Response{data=[]string}
// @Failure 401 {object} util.Response
// @Router /api/chat/suggestions [get]
func (c *ChatController) Suggestions(ctx *gin.Context) {
	util.Success(ctx, c.Chat.Suggestions(ctx.DefaultQuery("lang", "en")))
}
