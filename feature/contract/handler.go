package contract

import (
	"spec-sync/core/errors"
	"spec-sync/core/logger"
	"spec-sync/core/openapi"
	"spec-sync/core/server"
	"spec-sync/core/spec"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for contract documents.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the contract routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/projects/:id")
	group.Get("/openapi", h.HandleExport)
	group.Post("/snapshots", h.HandleCreateSnapshot)
	group.Get("/snapshots", h.HandleListSnapshots)
	group.Get("/snapshots/:name", h.HandleGetSnapshot)
	group.Delete("/snapshots/:name", h.HandleDeleteSnapshot)
}

func parseQuery(c *fiber.Ctx) (spec.Side, openapi.Format, error) {
	side, ok := spec.ParseSide(c.Query("side"))
	if !ok {
		return "", "", errors.NewValidationError("side", c.Query("side"), "must be frontend or backend")
	}
	format, err := openapi.ParseFormat(c.Query("format"))
	if err != nil {
		return "", "", errors.NewValidationError("format", c.Query("format"), err.Error())
	}
	return side, format, nil
}

// HandleExport renders one side of a project as OpenAPI.
// @Summary Export OpenAPI
// @Tags contracts
// @Produce json
// @Produce application/yaml
// @Param id path string true "Project ID"
// @Param side query string true "Side" Enums(frontend, backend)
// @Param format query string false "Format" Enums(json, yaml)
// @Success 200 {object} map[string]interface{} "OpenAPI document"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/projects/{id}/openapi [get]
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	side, format, err := parseQuery(c)
	if err != nil {
		return server.SendError(c, err)
	}

	doc, err := h.service.Export(c.Context(), c.Params("id"), side, format)
	if err != nil {
		return server.SendError(c, err)
	}
	c.Set(fiber.HeaderContentType, doc.Format.ContentType())
	return c.Send(doc.Body)
}

// HandleCreateSnapshot renders one side and stores it in the bucket.
// @Summary Create Snapshot
// @Tags contracts
// @Produce json
// @Param id path string true "Project ID"
// @Param side query string true "Side" Enums(frontend, backend)
// @Param format query string false "Format" Enums(json, yaml)
// @Success 201 {object} Snapshot "Stored snapshot"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/projects/{id}/snapshots [post]
func (h *Handler) HandleCreateSnapshot(c *fiber.Ctx) error {
	side, format, err := parseQuery(c)
	if err != nil {
		return server.SendError(c, err)
	}

	snap, err := h.service.CreateSnapshot(c.Context(), c.Params("id"), side, format)
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Snapshot failed", zap.Error(err))
		return server.SendError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(snap)
}

// HandleListSnapshots lists the stored snapshots of a project.
// @Summary List Snapshots
// @Tags contracts
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {array} Snapshot "Snapshots"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/projects/{id}/snapshots [get]
func (h *Handler) HandleListSnapshots(c *fiber.Ctx) error {
	snaps, err := h.service.ListSnapshots(c.Context(), c.Params("id"))
	if err != nil {
		return server.SendError(c, err)
	}
	return c.JSON(snaps)
}

// HandleGetSnapshot downloads one snapshot.
// @Summary Get Snapshot
// @Tags contracts
// @Produce json
// @Produce application/yaml
// @Param id path string true "Project ID"
// @Param name path string true "Snapshot name"
// @Success 200 {object} map[string]interface{} "OpenAPI document"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/projects/{id}/snapshots/{name} [get]
func (h *Handler) HandleGetSnapshot(c *fiber.Ctx) error {
	doc, err := h.service.GetSnapshot(c.Context(), c.Params("id"), c.Params("name"))
	if err != nil {
		return server.SendError(c, err)
	}
	c.Set(fiber.HeaderContentType, doc.Format.ContentType())
	return c.Send(doc.Body)
}

// HandleDeleteSnapshot deletes one snapshot.
// @Summary Delete Snapshot
// @Tags contracts
// @Param id path string true "Project ID"
// @Param name path string true "Snapshot name"
// @Success 204 "Deleted"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/projects/{id}/snapshots/{name} [delete]
func (h *Handler) HandleDeleteSnapshot(c *fiber.Ctx) error {
	if err := h.service.DeleteSnapshot(c.Context(), c.Params("id"), c.Params("name")); err != nil {
		return server.SendError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
