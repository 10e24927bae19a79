package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/fliprhq/flipr-cms/internal/service"
)

// APIHandler serves the read-only query service. Responses are bare JSON
// arrays ordered newest first; there is no filtering or pagination.
type APIHandler struct {
	projectService *service.ProjectService
	clientService  *service.ClientService
	log            zerolog.Logger
}

func NewAPIHandler(projectService *service.ProjectService, clientService *service.ClientService, log zerolog.Logger) *APIHandler {
	return &APIHandler{
		projectService: projectService,
		clientService:  clientService,
		log:            log.With().Str("component", "api_handler").Logger(),
	}
}

// projectOut is the public projection of a project.
type projectOut struct {
	ID          int    `json:"id"`
	ImageURL    string `json:"image_url"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// clientOut is the public projection of a client.
type clientOut struct {
	ID          int    `json:"id"`
	ImageURL    string `json:"image_url"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Designation string `json:"designation"`
}

// Root godoc
// GET /
func (h *APIHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Flipr API running. Use /projects or /clients."})
}

// ListProjects godoc
// GET /projects
func (h *APIHandler) ListProjects(c *gin.Context) {
	projects, err := h.projectService.List(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list projects")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	out := make([]projectOut, 0, len(projects))
	for _, p := range projects {
		out = append(out, projectOut{
			ID:          p.ID,
			ImageURL:    p.ImageURL,
			Name:        p.Name,
			Description: p.Description,
		})
	}
	c.JSON(http.StatusOK, out)
}

// ListClients godoc
// GET /clients
func (h *APIHandler) ListClients(c *gin.Context) {
	clients, err := h.clientService.List(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list clients")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	out := make([]clientOut, 0, len(clients))
	for _, cl := range clients {
		out = append(out, clientOut{
			ID:          cl.ID,
			ImageURL:    cl.ImageURL,
			Name:        cl.Name,
			Description: cl.Description,
			Designation: cl.Designation,
		})
	}
	c.JSON(http.StatusOK, out)
}
