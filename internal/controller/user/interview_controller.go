package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Launchpad/internal/controller"
	"github.com/lshigami/Launchpad/internal/dto"
	"github.com/lshigami/Launchpad/internal/service"
)

type InterviewController struct {
	interviewService service.InterviewService
}

func NewInterviewController(interviewService service.InterviewService) *InterviewController {
	return &InterviewController{interviewService: interviewService}
}

func (c *InterviewController) RegisterRoutes(api *gin.RouterGroup, limit gin.HandlerFunc) {
	api.POST("/sessions/:id/interview", limit, c.StartInterview)
	api.GET("/sessions/:id/interview", c.GetInterview)
	api.POST("/sessions/:id/interview/messages", limit, c.SendMessage)
	api.POST("/sessions/:id/interview/feedback", limit, c.RetryFeedback)
}

// StartInterview godoc
// @Summary Start a mock interview
// @Description Opens a new interview conversation for the target role and returns the interviewer's first message.
// @Tags User - Interview
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.InterviewDTO
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 409 {object} dto.ErrorResponse "Generation already in progress or cancelled"
// @Failure 502 {object} dto.ErrorResponse "Content generation failed"
// @Router /sessions/{id}/interview [post]
func (c *InterviewController) StartInterview(ctx *gin.Context) {
	iv, err := c.interviewService.StartInterview(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		controller.RespondError(ctx, "StartInterview", err)
		return
	}
	ctx.JSON(http.StatusOK, iv)
}

// GetInterview godoc
// @Summary Get the interview transcript
// @Tags User - Interview
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.InterviewDTO
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 409 {object} dto.ErrorResponse "Interview not started"
// @Router /sessions/{id}/interview [get]
func (c *InterviewController) GetInterview(ctx *gin.Context) {
	iv, err := c.interviewService.GetInterview(ctx.Param("id"))
	if err != nil {
		controller.RespondError(ctx, "GetInterview", err)
		return
	}
	ctx.JSON(http.StatusOK, iv)
}

// SendMessage godoc
// @Summary Answer the interviewer
// @Description Sends one message and returns the reply. When the interview ends, feedback is generated and included.
// @Tags User - Interview
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param message body dto.InterviewMessageRequest true "Candidate answer"
// @Success 200 {object} dto.InterviewDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 409 {object} dto.ErrorResponse "Interview not started, finished or busy"
// @Failure 502 {object} dto.ErrorResponse "Content generation failed"
// @Router /sessions/{id}/interview/messages [post]
func (c *InterviewController) SendMessage(ctx *gin.Context) {
	var req dto.InterviewMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, "SendMessage", err)
		return
	}
	iv, err := c.interviewService.SendMessage(ctx.Request.Context(), ctx.Param("id"), req.Text)
	if err != nil {
		controller.RespondError(ctx, "SendMessage", err)
		return
	}
	ctx.JSON(http.StatusOK, iv)
}

// RetryFeedback godoc
// @Summary Retry interview feedback
// @Description Only for a finished interview whose feedback could not be generated.
// @Tags User - Interview
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.InterviewDTO
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 409 {object} dto.ErrorResponse "Interview not finished or feedback already present"
// @Failure 502 {object} dto.ErrorResponse "Content generation failed"
// @Router /sessions/{id}/interview/feedback [post]
func (c *InterviewController) RetryFeedback(ctx *gin.Context) {
	iv, err := c.interviewService.RetryFeedback(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		controller.RespondError(ctx, "RetryFeedback", err)
		return
	}
	ctx.JSON(http.StatusOK, iv)
}
