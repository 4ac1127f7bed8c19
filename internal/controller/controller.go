package controller

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Launchpad/internal/dto"
	"github.com/lshigami/Launchpad/internal/llm"
	"github.com/lshigami/Launchpad/internal/service"
	"github.com/lshigami/Launchpad/internal/session"
	"github.com/rs/zerolog/log"
)

// StatusFor maps a service error onto an HTTP status and a short message.
func StatusFor(err error) (int, string) {
	var (
		rateLimit   *llm.ErrRateLimit
		invalid     *llm.ErrInvalidResponse
		unavailable *llm.ErrProviderUnavailable
		truncated   *llm.ErrMaxTokensExceeded
	)
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		return http.StatusNotFound, "Session not found"
	case errors.Is(err, service.ErrRecordNotFound):
		return http.StatusNotFound, "Record not found"
	case errors.Is(err, service.ErrInvalidView),
		errors.Is(err, service.ErrAnswerCountMismatch),
		errors.Is(err, service.ErrAnswerOutOfRange):
		return http.StatusBadRequest, "Invalid request"
	case errors.Is(err, service.ErrCancelled):
		return http.StatusConflict, "Generation cancelled"
	case errors.Is(err, service.ErrBusy):
		return http.StatusConflict, "Generation already in progress"
	case errors.Is(err, service.ErrQuizNotGenerated),
		errors.Is(err, service.ErrQuizNotTaken),
		errors.Is(err, service.ErrInterviewNotStarted),
		errors.Is(err, service.ErrInterviewFinished),
		errors.Is(err, service.ErrInterviewNotFinished),
		errors.Is(err, service.ErrFeedbackExists):
		return http.StatusConflict, "Action not allowed in the current state"
	case errors.Is(err, service.ErrFeedbackFailed),
		errors.As(err, &rateLimit),
		errors.As(err, &invalid),
		errors.As(err, &unavailable),
		errors.As(err, &truncated),
		errors.Is(err, context.DeadlineExceeded):
		return http.StatusBadGateway, "Content generation failed"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// RespondError logs err and writes the matching ErrorResponse.
func RespondError(ctx *gin.Context, op string, err error) {
	status, msg := StatusFor(err)
	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Str("op", op).Int("status", status).Msg("Request failed")
	ctx.JSON(status, dto.ErrorResponse{Message: msg, Details: []string{err.Error()}})
}

func RespondBindError(ctx *gin.Context, op string, err error) {
	log.Warn().Err(err).Str("op", op).Msg("Failed to bind request")
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
}

// Controller serves the endpoints that do not belong to a journey step.
type Controller struct {
	store   *session.Store
	content service.ContentService
	roles   service.SessionService
}

func NewController(store *session.Store, content service.ContentService, roles service.SessionService) *Controller {
	return &Controller{store: store, content: content, roles: roles}
}

func (ctrl *Controller) RegisterRoutes(router *gin.Engine) {
	router.GET("/healthz", ctrl.Health)
	router.GET("/api/v1/roles", ctrl.Roles)
}

// Health godoc
// @Summary Liveness probe
// @Tags System
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /healthz [get]
func (ctrl *Controller) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.HealthResponse{
		Status:         "ok",
		ActiveSessions: ctrl.store.Len(),
		Model:          ctrl.content.ModelID(),
	})
}

// Roles godoc
// @Summary List suggested target roles
// @Tags System
// @Produce json
// @Success 200 {object} dto.RolesResponse
// @Router /roles [get]
func (ctrl *Controller) Roles(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.RolesResponse{Roles: ctrl.roles.Roles()})
}
