package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/fliprhq/flipr-cms/internal/flash"
	"github.com/fliprhq/flipr-cms/internal/service"
)

// AdminHandler renders the admin panel aggregating all four listings.
// The panel is deliberately unauthenticated: the source system ships
// without an auth gate and adding one would change observable behavior.
type AdminHandler struct {
	projectService    *service.ProjectService
	clientService     *service.ClientService
	contactService    *service.ContactService
	subscriberService *service.SubscriberService
	log               zerolog.Logger
}

func NewAdminHandler(
	projectService *service.ProjectService,
	clientService *service.ClientService,
	contactService *service.ContactService,
	subscriberService *service.SubscriberService,
	log zerolog.Logger,
) *AdminHandler {
	return &AdminHandler{
		projectService:    projectService,
		clientService:     clientService,
		contactService:    contactService,
		subscriberService: subscriberService,
		log:               log.With().Str("component", "admin_handler").Logger(),
	}
}

// Panel godoc
// GET /admin
func (h *AdminHandler) Panel(c *gin.Context) {
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
	contacts, err := h.contactService.List(ctx)
	if err != nil {
		h.log.Error().Err(err).Msg("list contacts")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	subscribers, err := h.subscriberService.List(ctx)
	if err != nil {
		h.log.Error().Err(err).Msg("list subscribers")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.HTML(http.StatusOK, "admin.html", gin.H{
		"projects":    projects,
		"clients":     clients,
		"contacts":    contacts,
		"subscribers": subscribers,
		"notices":     flash.Take(c),
	})
}
