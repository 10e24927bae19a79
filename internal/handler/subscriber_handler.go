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

// SubscriberHandler serves the public newsletter signup and the admin-side
// edit/delete surface for subscribers.
type SubscriberHandler struct {
	subscriberService *service.SubscriberService
	log               zerolog.Logger
}

func NewSubscriberHandler(subscriberService *service.SubscriberService, log zerolog.Logger) *SubscriberHandler {
	return &SubscriberHandler{
		subscriberService: subscriberService,
		log:               log.With().Str("component", "subscriber_handler").Logger(),
	}
}

// Subscribe godoc
// POST /subscribe
func (h *SubscriberHandler) Subscribe(c *gin.Context) {
	var form model.SubscribeForm
	if fields := validator.BindForm(c, &form); fields != nil {
		flash.Danger(c, "Please enter an email address.")
		c.Redirect(http.StatusFound, "/")
		return
	}

	created, err := h.subscriberService.Subscribe(c.Request.Context(), form.Email)
	if err != nil {
		h.log.Error().Err(err).Msg("subscribe")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	if created {
		flash.Success(c, "Subscribed successfully to our newsletter!")
	} else {
		flash.Info(c, "You are already subscribed!")
	}
	c.Redirect(http.StatusFound, "/")
}

// EditForm godoc
// GET /admin/subscribers/:id/edit
func (h *SubscriberHandler) EditForm(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	subscriber, err := h.subscriberService.GetByID(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}
	if err != nil {
		h.log.Error().Err(err).Int("id", id).Msg("get subscriber")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.HTML(http.StatusOK, "edit_subscriber.html", gin.H{
		"subscriber": subscriber,
		"notices":    flash.Take(c),
	})
}

// Update godoc
// POST /admin/subscribers/:id/edit
func (h *SubscriberHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	if _, err := h.subscriberService.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		h.log.Error().Err(err).Int("id", id).Msg("get subscriber")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	var form model.SubscribeForm
	if fields := validator.BindForm(c, &form); fields != nil {
		flash.Danger(c, "Email is required.")
		c.Redirect(http.StatusFound, fmt.Sprintf("/admin/subscribers/%d/edit", id))
		return
	}

	subscriber := &model.Subscriber{ID: id, Email: form.Email}
	if err := h.subscriberService.Update(ctx, subscriber); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		if errors.Is(err, repository.ErrDuplicateEmail) {
			flash.Danger(c, "Another subscriber already uses that email.")
			c.Redirect(http.StatusFound, fmt.Sprintf("/admin/subscribers/%d/edit", id))
			return
		}
		h.log.Error().Err(err).Int("id", id).Msg("update subscriber")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	flash.Success(c, "Subscriber updated successfully!")
	c.Redirect(http.StatusFound, "/admin")
}

// Delete godoc
// POST /admin/subscribers/:id/delete
func (h *SubscriberHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.subscriberService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		h.log.Error().Err(err).Int("id", id).Msg("delete subscriber")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	flash.Success(c, "Subscriber deleted.")
	c.Redirect(http.StatusFound, "/admin")
}
