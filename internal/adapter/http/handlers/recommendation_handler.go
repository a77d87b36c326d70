package handlers

import (
	"net/http"

	request "rawasi_matching/internal/adapter/http/dto/request"
	response "rawasi_matching/internal/adapter/http/dto/response"
	"rawasi_matching/internal/usecase"

	"github.com/gin-gonic/gin"
)

// RecommendationHandler serves the read side of a session.
type RecommendationHandler struct {
	usecase usecase.IRecommendationUseCase
}

func NewRecommendationHandler(uc usecase.IRecommendationUseCase) *RecommendationHandler {
	return &RecommendationHandler{usecase: uc}
}

// GetRecommendations godoc
// @Summary  Ranked providers for the session project
// @Tags     recommendations
// @Produce  json
// @Param    id    path      string  true   "Session ID"
// @Param    tech  query     string  false  "Tech tag, or All"
// @Param    q     query     string  false  "Name search"
// @Success  200   {object}  response.RecommendationsResponse
// @Router   /sessions/{id}/recommendations [get]
func (h *RecommendationHandler) GetRecommendations(c *gin.Context) {
	var query request.RecommendationQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(errInvalidQuery.HTTPStatus, errInvalidQuery.ToHTTPError())
		return
	}

	res, err := h.usecase.Recommend(c.Request.Context(), c.Param("id"), query.ToFilter())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromRecommendations(res))
}

// GetCompare godoc
// @Summary  Compared providers with their score breakdown
// @Tags     compare
// @Produce  json
// @Param    id   path      string  true  "Session ID"
// @Success  200  {object}  response.CompareResponse
// @Router   /sessions/{id}/compare [get]
func (h *RecommendationHandler) GetCompare(c *gin.Context) {
	items, err := h.usecase.Compare(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCompare(items))
}

// GetEstimate godoc
// @Summary  Cost, duration and budget risk of the project
// @Tags     recommendations
// @Produce  json
// @Param    id   path      string  true  "Session ID"
// @Success  200  {object}  response.EstimateResponse
// @Router   /sessions/{id}/estimate [get]
func (h *RecommendationHandler) GetEstimate(c *gin.Context) {
	est, err := h.usecase.Estimate(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(est))
}

// GetDashboard godoc
// @Summary  Project dashboard
// @Tags     dashboard
// @Produce  json
// @Param    id   path      string  true  "Session ID"
// @Success  200  {object}  response.DashboardResponse
// @Router   /sessions/{id}/dashboard [get]
func (h *RecommendationHandler) GetDashboard(c *gin.Context) {
	summary, err := h.usecase.Dashboard(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDashboard(summary))
}
