package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/fliprhq/flipr-cms/internal/flash"
	"github.com/fliprhq/flipr-cms/internal/service"
)

// HomeHandler renders the public landing page.
type HomeHandler struct {
	projectService *service.ProjectService
	clientService  *service.ClientService
	log            zerolog.Logger
}

func NewHomeHandler(projectService *service.ProjectService, clientService *service.ClientService, log zerolog.Logger) *HomeHandler {
	return &HomeHandler{
		projectService: projectService,
		clientService:  clientService,
		log:            log.With().Str("component", "home_handler").Logger(),
	}
}

// Index godoc
// GET /
func (h *HomeHandler) Index(c *gin.Context) {
	ctx := c.Request.Context()

	projects, err := h.projectService.List(ctx)
	if err != nil {
		h.log.Error().Err(err).Msg("list projects")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	clients, err := h.clientService.List(ctx)
	if err != nil {
		h.log.Error().Err(err).Msg("list clients")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"projects": projects,
		"clients":  clients,
		"notices":  flash.Take(c),
	})
}
