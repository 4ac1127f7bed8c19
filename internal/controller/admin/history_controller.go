package admin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Launchpad/internal/controller"
	"github.com/lshigami/Launchpad/internal/dto"
	"github.com/lshigami/Launchpad/internal/service"
)

type HistoryController struct {
	historyService service.HistoryService
}

func NewHistoryController(historyService service.HistoryService) *HistoryController {
	return &HistoryController{historyService: historyService}
}

func (c *HistoryController) RegisterRoutes(api *gin.RouterGroup) {
	history := api.Group("/history")
	history.GET("/quiz-results", c.ListQuizResults)
	history.GET("/interviews", c.ListInterviews)
	history.GET("/interviews/:record_id", c.GetInterview)
}

// ListQuizResults godoc
// @Summary (History) List quiz results
// @Description Most recent first, optionally filtered by name.
// @Tags History
// @Produce json
// @Param name query string false "Filter by name"
// @Param limit query int false "Maximum rows (default 50)"
// @Success 200 {array} dto.QuizResultSummaryDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid query"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /history/quiz-results [get]
func (c *HistoryController) ListQuizResults(ctx *gin.Context) {
	var query dto.HistoryQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		controller.RespondBindError(ctx, "ListQuizResults", err)
		return
	}
	results, err := c.historyService.ListQuizResults(query)
	if err != nil {
		controller.RespondError(ctx, "ListQuizResults", err)
		return
	}
	ctx.JSON(http.StatusOK, results)
}

// ListInterviews godoc
// @Summary (History) List interview records
// @Description Most recent first, without transcripts.
// @Tags History
// @Produce json
// @Param name query string false "Filter by name"
// @Param limit query int false "Maximum rows (default 50)"
// @Success 200 {array} dto.InterviewRecordSummaryDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid query"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /history/interviews [get]
func (c *HistoryController) ListInterviews(ctx *gin.Context) {
	var query dto.HistoryQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		controller.RespondBindError(ctx, "ListInterviews", err)
		return
	}
	records, err := c.historyService.ListInterviews(query)
	if err != nil {
		controller.RespondError(ctx, "ListInterviews", err)
		return
	}
	ctx.JSON(http.StatusOK, records)
}

// GetInterview godoc
// @Summary (History) Get one interview record
// @Tags History
// @Produce json
// @Param record_id path int true "Record ID"
// @Success 200 {object} dto.InterviewRecordDetailDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid record ID"
// @Failure 404 {object} dto.ErrorResponse "Record not found"
// @Router /history/interviews/{record_id} [get]
func (c *HistoryController) GetInterview(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("record_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid record ID format"})
		return
	}
	record, err := c.historyService.GetInterview(uint(id))
	if err != nil {
		controller.RespondError(ctx, "GetInterview", err)
		return
	}
	ctx.JSON(http.StatusOK, record)
}
