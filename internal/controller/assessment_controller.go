package controller

import (
	"errors"
	"strconv"

	"business_health_backend/internal/service"
	"business_health_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AssessmentController struct {
	Assessments *service.AssessmentService
}

func NewAssessmentController(assessments *service.AssessmentService) *AssessmentController {
	return &AssessmentController{Assessments: assessments}
}

func pagination(ctx *gin.Context) (limit, offset int) {
	limit, _ = strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset, _ = strconv.Atoi(ctx.DefaultQuery("offset", "0"))
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// Submit godoc
// @Summary Submit a completed questionnaire
// @Description Scores the answers, stores the record and returns scores plus recommendations
// @Tags assessments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.AssessmentInput true "Answers"
// @Success 201 {object} util.Response{data=service.AssessmentResult}
// @Failure 400 {object} util.Response "Unknown industry/function or malformed answers"
// @Failure 401 {object} util.Response
// @Router /api/assessments [post]
func (c *AssessmentController) Submit(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var input service.AssessmentInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.Assessments.Submit(claims.UserID, input)
	if err != nil {
		if errors.Is(err, util.ErrUnknownIndustry) || errors.Is(err, util.ErrUnknownFunction) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, result)
}

// History godoc
// @Summary Assessment history
// @Description Returns the user's assessments, most recent first
// @Tags assessments
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} util.Response{data=object}
// @Failure 401 {object} util.Response
// @Router /api/assessments [get]
func (c *AssessmentController) History(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	limit, offset := pagination(ctx)
	records, total, err := c.Assessments.History(claims.UserID, limit, offset)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{
		"items": records,
		"total": total,
	})
}

// Latest godoc
// @Summary Latest assessment
// @Description Returns the most recent assessment, or empty data when none exists
// @Tags assessments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.AssessmentRecord}
// @Failure 401 {object} util.Response
// @Router /api/assessments/latest [get]
func (c *AssessmentController) Latest(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	record, err := c.Assessments.Latest(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, record)
}

// Clear godoc
// @Summary Delete assessment history
// @Tags assessments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Failure 401 {object} util.Response
// @Router /api/assessments [delete]
func (c *AssessmentController) Clear(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.Assessments.Clear(claims.UserID); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
