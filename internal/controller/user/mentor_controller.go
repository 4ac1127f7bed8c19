package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Launchpad/internal/controller"
	"github.com/lshigami/Launchpad/internal/service"
)

type MentorController struct {
	mentorService service.MentorService
}

func NewMentorController(mentorService service.MentorService) *MentorController {
	return &MentorController{mentorService: mentorService}
}

func (c *MentorController) RegisterRoutes(api *gin.RouterGroup, limit gin.HandlerFunc) {
	api.GET("/sessions/:id/mentors", limit, c.GetMentors)
}

// GetMentors godoc
// @Summary Match mentors
// @Description Generates a fresh list of three mentors for the target role on every call.
// @Tags User - Mentors
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.MentorsDTO
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 409 {object} dto.ErrorResponse "Generation already in progress or cancelled"
// @Failure 502 {object} dto.ErrorResponse "Content generation failed"
// @Router /sessions/{id}/mentors [get]
func (c *MentorController) GetMentors(ctx *gin.Context) {
	mentors, err := c.mentorService.GetMentors(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		controller.RespondError(ctx, "GetMentors", err)
		return
	}
	ctx.JSON(http.StatusOK, mentors)
}
