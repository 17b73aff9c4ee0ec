package project

import (
	"spec-sync/core/errors"
	"spec-sync/core/logger"
	"spec-sync/core/server"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CreateRequest is the body of POST /projects.
type CreateRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Handler handles HTTP requests for projects.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the project routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/projects")
	group.Get("/", h.HandleList)
	group.Post("/", h.HandleCreate)
	group.Get("/:id", h.HandleGet)
	group.Delete("/:id", h.HandleDelete)
	group.Get("/:id/summary", h.HandleSummary)
}

// HandleList returns every project.
// @Summary List Projects
// @Description List projects ordered by last update, without endpoints.
// @Tags projects
// @Produce json
// @Success 200 {array} models.Project "Projects"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/projects [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	projects, err := h.service.ListProjects(c.Context())
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Failed to list projects", zap.Error(err))
		return server.SendError(c, err)
	}
	return c.JSON(projects)
}

// HandleCreate creates a project.
// @Summary Create Project
// @Tags projects
// @Accept json
// @Produce json
// @Param project body CreateRequest true "Project"
// @Success 201 {object} models.Project "Created project"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/projects [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	var req CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return server.SendError(c, errors.NewValidationError("", nil, "invalid request body"))
	}

	p, err := h.service.CreateProject(c.Context(), req.Name, req.Description)
	if err != nil {
		logger.WithRayID(h.service.logger, c).Warn("Failed to create project", zap.Error(err))
		return server.SendError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(p)
}

// HandleGet returns one project with its endpoints.
// @Summary Get Project
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} models.Project "Project"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/projects/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	p, err := h.service.GetProject(c.Context(), c.Params("id"))
	if err != nil {
		return server.SendError(c, err)
	}
	return c.JSON(p)
}

// HandleDelete deletes a project and its endpoints.
// @Summary Delete Project
// @Tags projects
// @Param id path string true "Project ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/projects/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.DeleteProject(c.Context(), c.Params("id")); err != nil {
		logger.WithRayID(h.service.logger, c).Warn("Failed to delete project", zap.Error(err))
		return server.SendError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleSummary returns endpoint counts by status.
// @Summary Project Summary
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} Summary "Summary"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/projects/{id}/summary [get]
func (h *Handler) HandleSummary(c *fiber.Ctx) error {
	sum, err := h.service.Summary(c.Context(), c.Params("id"))
	if err != nil {
		return server.SendError(c, err)
	}
	return c.JSON(sum)
}
