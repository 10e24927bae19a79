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

// ContactHandler serves the public contact form and the admin-side
// edit/delete surface for captured leads.
type ContactHandler struct {
	contactService *service.ContactService
	log            zerolog.Logger
}

func NewContactHandler(contactService *service.ContactService, log zerolog.Logger) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
		log:            log.With().Str("component", "contact_handler").Logger(),
	}
}

// Submit godoc
// POST /contact
func (h *ContactHandler) Submit(c *gin.Context) {
	var form model.ContactForm
	if fields := validator.BindForm(c, &form); fields != nil {
		h.log.Debug().Interface("fields", fields).Msg("contact form rejected")
		flash.Danger(c, "Please fill all fields in the contact form.")
		c.Redirect(http.StatusFound, "/")
		return
	}

	contact := &model.Contact{
		FullName: form.FullName,
		Email:    form.Email,
		Mobile:   form.Mobile,
		City:     form.City,
	}
	if err := h.contactService.Create(c.Request.Context(), contact); err != nil {
		h.log.Error().Err(err).Msg("create contact")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	flash.Success(c, "Thank you! Your contact details have been submitted.")
	c.Redirect(http.StatusFound, "/")
}

// EditForm godoc
// GET /admin/contacts/:id/edit
func (h *ContactHandler) EditForm(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	contact, err := h.contactService.GetByID(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}
	if err != nil {
		h.log.Error().Err(err).Int("id", id).Msg("get contact")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.HTML(http.StatusOK, "edit_contact.html", gin.H{
		"contact": contact,
		"notices": flash.Take(c),
	})
}

// Update godoc
// POST /admin/contacts/:id/edit
func (h *ContactHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	if _, err := h.contactService.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		h.log.Error().Err(err).Int("id", id).Msg("get contact")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	// Validate the complete field set before touching the stored row.
	var form model.ContactEditForm
	if fields := validator.BindForm(c, &form); fields != nil {
		flash.Danger(c, "All contact fields are required.")
		c.Redirect(http.StatusFound, fmt.Sprintf("/admin/contacts/%d/edit", id))
		return
	}

	contact := &model.Contact{
		ID:       id,
		FullName: form.FullName,
		Email:    form.Email,
		Mobile:   form.Mobile,
		City:     form.City,
	}
	if err := h.contactService.Update(ctx, contact); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		h.log.Error().Err(err).Int("id", id).Msg("update contact")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	flash.Success(c, "Contact updated successfully!")
	c.Redirect(http.StatusFound, "/admin")
}

// Delete godoc
// POST /admin/contacts/:id/delete
func (h *ContactHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.contactService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		h.log.Error().Err(err).Int("id", id).Msg("delete contact")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	flash.Success(c, "Contact deleted.")
	c.Redirect(http.StatusFound, "/admin")
}
