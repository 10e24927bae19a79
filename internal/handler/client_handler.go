package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/fliprhq/flipr-cms/internal/flash"
	"github.com/fliprhq/flipr-cms/internal/model"
	"github.com/fliprhq/flipr-cms/internal/repository"
	"github.com/fliprhq/flipr-cms/internal/service"
	"github.com/fliprhq/flipr-cms/internal/validator"
)

// ClientHandler serves the admin CRUD surface for clients.
type ClientHandler struct {
	clientService *service.ClientService
	log           zerolog.Logger
}

func NewClientHandler(clientService *service.ClientService, log zerolog.Logger) *ClientHandler {
	return &ClientHandler{
		clientService: clientService,
		log:           log.With().Str("component", "client_handler").Logger(),
	}
}

// Create godoc
// POST /admin/clients
func (h *ClientHandler) Create(c *gin.Context) {
	var form model.ClientForm
	if fields := validator.BindForm(c, &form); fields != nil {
		h.log.Debug().Interface("fields", fields).Msg("client form rejected")
		flash.Danger(c, "All client fields are required.")
		c.Redirect(http.StatusFound, "/admin")
		return
	}

	client := &model.Client{
		ImageURL:    form.ImageURL,
		Name:        form.Name,
		Description: form.Description,
		Designation: form.Designation,
	}
	if err := h.clientService.Create(c.Request.Context(), client); err != nil {
		h.log.Error().Err(err).Msg("create client")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	flash.Success(c, "Client added successfully!")
	c.Redirect(http.StatusFound, "/admin")
}

// EditForm godoc
// GET /admin/clients/:id/edit
func (h *ClientHandler) EditForm(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	client, err := h.clientService.GetByID(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}
	if err != nil {
		h.log.Error().Err(err).Int("id", id).Msg("get client")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.HTML(http.StatusOK, "edit_client.html", gin.H{
		"client":  client,
		"notices": flash.Take(c),
	})
}

// Update godoc
// POST /admin/clients/:id/edit
func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	if _, err := h.clientService.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		h.log.Error().Err(err).Int("id", id).Msg("get client")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	// Validate the complete field set before touching the stored row.
	var form model.ClientForm
	if fields := validator.BindForm(c, &form); fields != nil {
		flash.Danger(c, "All client fields are required.")
		c.Redirect(http.StatusFound, fmt.Sprintf("/admin/clients/%d/edit", id))
		return
	}

	client := &model.Client{
		ID:          id,
		ImageURL:    form.ImageURL,
		Name:        form.Name,
		Description: form.Description,
		Designation: form.Designation,
	}
	if err := h.clientService.Update(ctx, client); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		h.log.Error().Err(err).Int("id", id).Msg("update client")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	flash.Success(c, "Client updated successfully!")
	c.Redirect(http.StatusFound, "/admin")
}

// Delete godoc
// POST /admin/clients/:id/delete
func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.clientService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		h.log.Error().Err(err).Int("id", id).Msg("delete client")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	flash.Success(c, "Client deleted.")
	c.Redirect(http.StatusFound, "/admin")
}
