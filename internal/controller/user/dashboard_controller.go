package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Launchpad/internal/controller"
	"github.com/lshigami/Launchpad/internal/service"
)

type DashboardController struct {
	dashboardService service.DashboardService
}

func NewDashboardController(dashboardService service.DashboardService) *DashboardController {
	return &DashboardController{dashboardService: dashboardService}
}

func (c *DashboardController) RegisterRoutes(api *gin.RouterGroup, limit gin.HandlerFunc) {
	api.GET("/sessions/:id/dashboard", limit, c.GetDashboard)
	api.GET("/sessions/:id/learning-path", limit, c.GetLearningPath)
}

// GetDashboard godoc
// @Summary Get the readiness dashboard
// @Description Readiness, tier, skill profile and growth projection derived from the quiz score. The learning path is generated on the first visit after the quiz.
// @Tags User - Dashboard
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.DashboardDTO
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 429 {object} dto.ErrorResponse "Too many requests"
// @Router /sessions/{id}/dashboard [get]
func (c *DashboardController) GetDashboard(ctx *gin.Context) {
	dash, err := c.dashboardService.GetDashboard(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		controller.RespondError(ctx, "GetDashboard", err)
		return
	}
	ctx.JSON(http.StatusOK, dash)
}

// GetLearningPath godoc
// @Summary Get the personalized learning path
// @Tags User - Dashboard
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.LearningPathDTO
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 409 {object} dto.ErrorResponse "Quiz not taken yet or generation cancelled"
// @Failure 502 {object} dto.ErrorResponse "Content generation failed"
// @Router /sessions/{id}/learning-path [get]
func (c *DashboardController) GetLearningPath(ctx *gin.Context) {
	path, err := c.dashboardService.GetLearningPath(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		controller.RespondError(ctx, "GetLearningPath", err)
		return
	}
	ctx.JSON(http.StatusOK, path)
}
