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

// ProjectHandler serves the admin CRUD surface for projects.
type ProjectHandler struct {
	projectService *service.ProjectService
	log            zerolog.Logger
}

func NewProjectHandler(projectService *service.ProjectService, log zerolog.Logger) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		log:            log.With().Str("component", "project_handler").Logger(),
	}
}

// Create godoc
// POST /admin/projects
func (h *ProjectHandler) Create(c *gin.Context) {
	var form model.ProjectForm
	if fields := validator.BindForm(c, &form); fields != nil {
		h.log.Debug().Interface("fields", fields).Msg("project form rejected")
		flash.Danger(c, "All project fields are required.")
		c.Redirect(http.StatusFound, "/admin")
		return
	}

	project := &model.Project{
		ImageURL:    form.ImageURL,
		Name:        form.Name,
		Description: form.Description,
	}
	if err := h.projectService.Create(c.Request.Context(), project); err != nil {
		h.log.Error().Err(err).Msg("create project")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	flash.Success(c, "Project added successfully!")
	c.Redirect(http.StatusFound, "/admin")
}

// EditForm godoc
// GET /admin/projects/:id/edit
func (h *ProjectHandler) EditForm(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	project, err := h.projectService.GetByID(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}
	if err != nil {
		h.log.Error().Err(err).Int("id", id).Msg("get project")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.HTML(http.StatusOK, "edit_project.html", gin.H{
		"project": project,
		"notices": flash.Take(c),
	})
}

// Update godoc
// POST /admin/projects/:id/edit
func (h *ProjectHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	if _, err := h.projectService.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		h.log.Error().Err(err).Int("id", id).Msg("get project")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	// Validate the complete field set before touching the stored row.
	var form model.ProjectForm
	if fields := validator.BindForm(c, &form); fields != nil {
		flash.Danger(c, "All project fields are required.")
		c.Redirect(http.StatusFound, fmt.Sprintf("/admin/projects/%d/edit", id))
		return
	}

	project := &model.Project{
		ID:          id,
		ImageURL:    form.ImageURL,
		Name:        form.Name,
		Description: form.Description,
	}
	if err := h.projectService.Update(ctx, project); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		h.log.Error().Err(err).Int("id", id).Msg("update project")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	flash.Success(c, "Project updated successfully!")
	c.Redirect(http.StatusFound, "/admin")
}

// Delete godoc
// POST /admin/projects/:id/delete
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.projectService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		h.log.Error().Err(err).Int("id", id).Msg("delete project")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	flash.Success(c, "Project deleted.")
	c.Redirect(http.StatusFound, "/admin")
}
