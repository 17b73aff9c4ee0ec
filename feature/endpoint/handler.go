package endpoint

import (
	"encoding/json"

	"spec-sync/core/errors"
	"spec-sync/core/logger"
	"spec-sync/core/server"
	"spec-sync/core/spec"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CreateRequest is the body of POST /endpoints.
type CreateRequest struct {
	ProjectID string `json:"projectId"`
	Path      string `json:"path"`
	Method    string `json:"method"`
}

// UpdateSpecRequest is the body of PUT /endpoints/:id.
type UpdateSpecRequest struct {
	Spec     json.RawMessage `json:"spec" swaggertype:"object"`
	SpecType string          `json:"specType" enums:"frontend,backend"`
}

// Handler handles HTTP requests for endpoints.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the endpoint routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/endpoints")
	group.Post("/", h.HandleCreate)
	group.Get("/:id", h.HandleGet)
	group.Put("/:id", h.HandleUpdateSpec)
	group.Delete("/:id", h.HandleDelete)
}

// HandleCreate creates an endpoint.
// @Summary Create Endpoint
// @Tags endpoints
// @Accept json
// @Produce json
// @Param endpoint body CreateRequest true "Endpoint"
// @Success 201 {object} models.Endpoint "Created endpoint"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Project Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/endpoints [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	var req CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return server.SendError(c, errors.NewValidationError("", nil, "invalid request body"))
	}

	ep, err := h.service.CreateEndpoint(c.Context(), req.ProjectID, req.Path, req.Method)
	if err != nil {
		logger.WithRayID(h.service.logger, c).Warn("Failed to create endpoint", zap.Error(err))
		return server.SendError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(ep)
}

// HandleGet returns one endpoint.
// @Summary Get Endpoint
// @Tags endpoints
// @Produce json
// @Param id path string true "Endpoint ID"
// @Success 200 {object} models.Endpoint "Endpoint"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/endpoints/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	ep, err := h.service.GetEndpoint(c.Context(), c.Params("id"))
	if err != nil {
		return server.SendError(c, err)
	}
	return c.JSON(ep)
}

// HandleUpdateSpec saves one side's spec and returns the reconciled endpoint.
// @Summary Save Endpoint Spec
// @Description Replaces the frontend or backend spec and recomputes status and conflicts.
// @Tags endpoints
// @Accept json
// @Produce json
// @Param id path string true "Endpoint ID"
// @Param body body UpdateSpecRequest true "Spec and side"
// @Success 200 {object} models.Endpoint "Updated endpoint"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/endpoints/{id} [put]
func (h *Handler) HandleUpdateSpec(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req UpdateSpecRequest
	if err := c.BodyParser(&req); err != nil {
		return server.SendError(c, errors.NewValidationError("", nil, "invalid request body"))
	}
	side, ok := spec.ParseSide(req.SpecType)
	if !ok {
		return server.SendError(c, errors.NewValidationError("specType", req.SpecType, "must be frontend or backend"))
	}
	if len(req.Spec) == 0 {
		return server.SendError(c, errors.NewValidationError("spec", nil, "is required"))
	}

	s, err := spec.Decode(req.Spec)
	if err != nil {
		l.Warn("Rejected spec", zap.String("endpoint_id", c.Params("id")), zap.Error(err))
		return server.SendError(c, err)
	}

	ep, err := h.service.UpdateSpec(c.Context(), c.Params("id"), side, s)
	if err != nil {
		if server.StatusCode(err) == fiber.StatusInternalServerError {
			l.Error("Failed to save spec", zap.String("endpoint_id", c.Params("id")), zap.Error(err))
		}
		return server.SendError(c, err)
	}
	return c.JSON(ep)
}

// HandleDelete deletes one endpoint.
// @Summary Delete Endpoint
// @Tags endpoints
// @Param id path string true "Endpoint ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/endpoints/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.DeleteEndpoint(c.Context(), c.Params("id")); err != nil {
		return server.SendError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
