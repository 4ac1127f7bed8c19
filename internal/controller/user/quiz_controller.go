package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Launchpad/internal/controller"
	"github.com/lshigami/Launchpad/internal/dto"
	"github.com/lshigami/Launchpad/internal/service"
)

type QuizController struct {
	quizService service.QuizService
}

func NewQuizController(quizService service.QuizService) *QuizController {
	return &QuizController{quizService: quizService}
}

func (c *QuizController) RegisterRoutes(api *gin.RouterGroup, limit gin.HandlerFunc) {
	api.POST("/sessions/:id/quiz", limit, c.GenerateQuiz)
	api.GET("/sessions/:id/quiz", c.GetQuiz)
	api.POST("/sessions/:id/quiz/answers", c.SubmitAnswers)
}

// GenerateQuiz godoc
// @Summary Generate the diagnostic quiz
// @Description Generates five multiple choice questions for the session's target role. Correct answers are never returned. An unusable model reply yields an empty question list.
// @Tags User - Quiz
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.QuizDTO
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 409 {object} dto.ErrorResponse "Generation already in progress or cancelled"
// @Failure 429 {object} dto.ErrorResponse "Too many requests"
// @Failure 502 {object} dto.ErrorResponse "Content generation failed"
// @Router /sessions/{id}/quiz [post]
func (c *QuizController) GenerateQuiz(ctx *gin.Context) {
	quiz, err := c.quizService.GenerateQuiz(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		controller.RespondError(ctx, "GenerateQuiz", err)
		return
	}
	ctx.JSON(http.StatusOK, quiz)
}

// GetQuiz godoc
// @Summary Get the generated quiz
// @Tags User - Quiz
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.QuizDTO
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 409 {object} dto.ErrorResponse "Quiz not generated yet"
// @Router /sessions/{id}/quiz [get]
func (c *QuizController) GetQuiz(ctx *gin.Context) {
	quiz, err := c.quizService.GetQuiz(ctx.Param("id"))
	if err != nil {
		controller.RespondError(ctx, "GetQuiz", err)
		return
	}
	ctx.JSON(http.StatusOK, quiz)
}

// SubmitAnswers godoc
// @Summary Submit quiz answers
// @Description One entry per question, null for unanswered. Scores the quiz, records the result and moves to the dashboard.
// @Tags User - Quiz
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param answers body dto.SubmitQuizRequest true "Selected option indices"
// @Success 200 {object} dto.QuizResultDTO
// @Failure 400 {object} dto.ErrorResponse "Wrong answer count or index out of range"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 409 {object} dto.ErrorResponse "Quiz not generated yet"
// @Router /sessions/{id}/quiz/answers [post]
func (c *QuizController) SubmitAnswers(ctx *gin.Context) {
	var req dto.SubmitQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, "SubmitAnswers", err)
		return
	}
	result, err := c.quizService.SubmitAnswers(ctx.Param("id"), req)
	if err != nil {
		controller.RespondError(ctx, "SubmitAnswers", err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}
