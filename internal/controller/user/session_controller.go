package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Launchpad/internal/controller"
	"github.com/lshigami/Launchpad/internal/dto"
	"github.com/lshigami/Launchpad/internal/service"
)

type SessionController struct {
	sessionService service.SessionService
}

func NewSessionController(sessionService service.SessionService) *SessionController {
	return &SessionController{sessionService: sessionService}
}

func (c *SessionController) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/sessions", c.CreateSession)
	api.GET("/sessions/:id", c.GetSession)
	api.POST("/sessions/:id/navigate", c.Navigate)
	api.POST("/sessions/:id/restart", c.Restart)
}

// CreateSession godoc
// @Summary Start a journey from the landing form
// @Description Creates an in-memory session for the given name and target role and moves it to the quiz view.
// @Tags User - Session
// @Accept json
// @Produce json
// @Param session body dto.CreateSessionRequest true "Name and target role"
// @Success 201 {object} dto.SessionDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Router /sessions [post]
func (c *SessionController) CreateSession(ctx *gin.Context) {
	var req dto.CreateSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, "CreateSession", err)
		return
	}
	sess, err := c.sessionService.CreateSession(req)
	if err != nil {
		controller.RespondError(ctx, "CreateSession", err)
		return
	}
	ctx.JSON(http.StatusCreated, sess)
}

// GetSession godoc
// @Summary Get session state
// @Tags User - Session
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.SessionDTO
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{id} [get]
func (c *SessionController) GetSession(ctx *gin.Context) {
	sess, err := c.sessionService.GetSession(ctx.Param("id"))
	if err != nil {
		controller.RespondError(ctx, "GetSession", err)
		return
	}
	ctx.JSON(http.StatusOK, sess)
}

// Navigate godoc
// @Summary Switch the current view
// @Description Leaving a view cancels any generation still running for it.
// @Tags User - Session
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param view body dto.NavigateRequest true "Target view"
// @Success 200 {object} dto.SessionDTO
// @Failure 400 {object} dto.ErrorResponse "Unknown view"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{id}/navigate [post]
func (c *SessionController) Navigate(ctx *gin.Context) {
	var req dto.NavigateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, "Navigate", err)
		return
	}
	sess, err := c.sessionService.Navigate(ctx.Param("id"), req.View)
	if err != nil {
		controller.RespondError(ctx, "Navigate", err)
		return
	}
	ctx.JSON(http.StatusOK, sess)
}

// Restart godoc
// @Summary Restart the journey
// @Description Cancels everything in flight and returns the session to the landing view.
// @Tags User - Session
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.SessionDTO
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{id}/restart [post]
func (c *SessionController) Restart(ctx *gin.Context) {
	sess, err := c.sessionService.Restart(ctx.Param("id"))
	if err != nil {
		controller.RespondError(ctx, "Restart", err)
		return
	}
	ctx.JSON(http.StatusOK, sess)
}
