package controller

import (
	"business_health_backend/internal/catalog"
	"business_health_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// CatalogController serves the static questionnaire and startup-planning
// data. Responses carry both languages; clients pick locally.
type CatalogController struct{}

func NewCatalogController() *CatalogController {
	return &CatalogController{}
}

// Industries godoc
// @Summary List industries
// @Description All industries with their weighted questionnaires
// @Tags catalog
// @Produce json
// @Success 200 {object} util.Response{data=[]catalog.Category}
// @Router /api/catalog/industries [get]
func (c *CatalogController) Industries(ctx *gin.Context) {
	util.Success(ctx, catalog.Industries)
}

// Functions godoc
// @Summary List business functions
// @Description Sales, marketing and finance questionnaires
// @Tags catalog
// @Produce json
// @Success 200 {object} util.Response{data=[]catalog.Category}
// @Router /api/catalog/functions [get]
func (c *CatalogController) Functions(ctx *gin.Context) {
	util.Success(ctx, catalog.BusinessFunctions)
}

// BusinessModels godoc
// @Summary Startup business models
// @Description Reference business models grouped by industry
// @Tags catalog
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/catalog/startup/business-models [get]
func (c *CatalogController) BusinessModels(ctx *gin.Context) {
	util.Success(ctx, catalog.StartupBusinessModels)
}

// RevenueModels godoc
// @Summary Startup revenue models
// @Tags catalog
// @Produce json
// @Success 200 {object} util.Response{data=[]catalog.RevenueModel}
// @Router /api/catalog/startup/revenue-models [get]
func (c *CatalogController) RevenueModels(ctx *gin.Context) {
	util.Success(ctx, catalog.StartupRevenueModels)
}
