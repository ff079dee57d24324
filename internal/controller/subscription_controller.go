package controller

import (
	"errors"
	"strconv"

	"business_health_backend/internal/model"
	"business_health_backend/internal/service"
	"business_health_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SubscriptionController struct {
	Subscriptions *service.SubscriptionService
}

func NewSubscriptionController(subscriptions *service.SubscriptionService) *SubscriptionController {
	return &SubscriptionController{Subscriptions: subscriptions}
}

// Plans godoc
// @Summary Available plans
// @Description Plan prices and the UPI address to pay to
// @Tags subscription
// @Produce json
// @Success 200 {object} util.Response{data=[]service.PlanInfo}
// @Router /api/subscription/plans [get]
func (c *SubscriptionController) Plans(ctx *gin.Context) {
	util.Success(ctx, c.Subscriptions.Plans())
}

// Status godoc
// @Summary Subscription status
// @Tags subscription
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=service.SubscriptionStatus}
// @Failure 401 {object} util.Response
// @Router /api/subscription/status [get]
func (c *SubscriptionController) Status(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	status, err := c.Subscriptions.Status(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, status)
}

// swagger:model PaymentRequestBody
type PaymentRequestBody struct {
	Plan   string `json:"plan" binding:"required,oneof=monthly yearly"`
	UPIRef string `json:"upiRef" binding:"required,min=6,max=100"`
}

// RequestPayment godoc
// @Summary Submit a UPI payment for review
// @Description Records the UPI transaction reference; an admin approves or rejects it
// @Tags subscription
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body PaymentRequestBody true "Payment claim"
// @Success 201 {object} util.Response{data=model.PaymentRequest}
// @Failure 400 {object} util.Response
// @Failure 401 {object} util.Response
// @Failure 409 {object} util.Response "A request is already pending"
// @Router /api/subscription/payments [post]
func (c *SubscriptionController) RequestPayment(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req PaymentRequestBody
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	payment, err := c.Subscriptions.RequestPayment(claims.UserID, model.SubscriptionPlan(req.Plan), req.UPIRef)
	if err != nil {
		if errors.Is(err, util.ErrPaymentPending) {
			util.Error(ctx, 409, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, payment)
}

// PaymentHistory godoc
// @Summary Own payment requests
// @Tags subscription
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.PaymentRequest}
// @Failure 401 {object} util.Response
// @Router /api/subscription/payments [get]
func (c *SubscriptionController) PaymentHistory(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	payments, err := c.Subscriptions.PaymentHistory(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, payments)
}

// ListPayments godoc
// @Summary List payment requests (admin)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status" Enums(pending, approved, rejected)
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} util.Response{data=object}
// @Failure 401 {object} util.Response
// @Failure 403 {object} util.Response
// @Router /api/admin/payments [get]
func (c *SubscriptionController) ListPayments(ctx *gin.Context) {
	limit, offset := pagination(ctx)
	status := model.PaymentStatus(ctx.Query("status"))

	payments, total, err := c.Subscriptions.ListPayments(status, limit, offset)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{
		"items": payments,
		"total": total,
	})
}

// swagger:model ReviewPaymentRequest
type ReviewPaymentRequest struct {
	Approve bool   `json:"approve"`
	Note    string `json:"note" binding:"max=255"`
}

// ReviewPayment godoc
// @Summary Approve or reject a payment (admin)
// @Description Approval activates the subscription window
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Payment request id"
// @Param body body ReviewPaymentRequest true "Review decision"
// @Success 200 {object} util.Response{data=model.PaymentRequest}
// @Failure 400 {object} util.Response
// @Failure 401 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Failure 409 {object} util.Response "Already reviewed"
// @Router /api/admin/payments/{id}/review [post]
func (c *SubscriptionController) ReviewPayment(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	paymentID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid payment id")
		return
	}

	var req ReviewPaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	payment, err := c.Subscriptions.Review(claims.UserID, uint(paymentID), req.Approve, req.Note)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrPaymentNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrPaymentReviewed):
			util.Error(ctx, 409, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, payment)
}
