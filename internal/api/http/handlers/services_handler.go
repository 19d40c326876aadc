package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/office-admin-service/internal/api/dto"
	"github.com/spec-kit/office-admin-service/internal/auth"
	"github.com/spec-kit/office-admin-service/internal/domain"
	"github.com/spec-kit/office-admin-service/internal/service"
)

// ServicesHandler exposes the bookable-service overview and draft endpoints.
type ServicesHandler struct {
	catalog *service.CatalogService
}

// NewServicesHandler constructs handler.
func NewServicesHandler(catalog *service.CatalogService) *ServicesHandler {
	return &ServicesHandler{catalog: catalog}
}

// Overview handles GET /services.
func (h *ServicesHandler) Overview(c *fiber.Ctx) error {
	sess, err := auth.SessionFromCtx(c)
	if err != nil {
		return err
	}
	rows := h.catalog.Overview(sess, overviewFilter(c))
	return c.JSON(fiber.Map{"data": rows})
}

// OpenEditor handles POST /services/editors.
func (h *ServicesHandler) OpenEditor(c *fiber.Ctx) error {
	sess, err := auth.SessionFromCtx(c)
	if err != nil {
		return err
	}
	var req dto.OpenEditorRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	draft, err := h.catalog.OpenEditor(sess, req.Index)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": draft})
}

// UpdateDraft handles PUT /services/editors/:id.
func (h *ServicesHandler) UpdateDraft(c *fiber.Ctx) error {
	sess, err := auth.SessionFromCtx(c)
	if err != nil {
		return err
	}
	var form domain.ServiceForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	draft, err := h.catalog.UpdateDraft(sess, c.Params("id"), form)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": draft})
}

// Save handles POST /services/editors/:id/save.
func (h *ServicesHandler) Save(c *fiber.Ctx) error {
	sess, err := auth.SessionFromCtx(c)
	if err != nil {
		return err
	}
	draft, list, err := h.catalog.Save(c.UserContext(), sess, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"draft": draft, "services": list}})
}

// SaveAndClose handles POST /services/editors/:id/commit.
func (h *ServicesHandler) SaveAndClose(c *fiber.Ctx) error {
	sess, err := auth.SessionFromCtx(c)
	if err != nil {
		return err
	}
	list, err := h.catalog.SaveAndClose(c.UserContext(), sess, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"services": list}})
}

// RequestDelete handles POST /services/editors/:id/delete.
func (h *ServicesHandler) RequestDelete(c *fiber.Ctx) error {
	sess, err := auth.SessionFromCtx(c)
	if err != nil {
		return err
	}
	if err := h.catalog.RequestDelete(sess, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"status": "confirm_required"}})
}

// ConfirmDelete handles POST /services/editors/:id/delete/confirm.
func (h *ServicesHandler) ConfirmDelete(c *fiber.Ctx) error {
	sess, err := auth.SessionFromCtx(c)
	if err != nil {
		return err
	}
	list, err := h.catalog.ConfirmDelete(c.UserContext(), sess, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"services": list}})
}

// Cancel handles DELETE /services/editors/:id.
func (h *ServicesHandler) Cancel(c *fiber.Ctx) error {
	sess, err := auth.SessionFromCtx(c)
	if err != nil {
		return err
	}
	h.catalog.Cancel(sess, c.Params("id"))
	return c.SendStatus(http.StatusNoContent)
}

// BulkDelete handles POST /services/bulk-delete.
func (h *ServicesHandler) BulkDelete(c *fiber.Ctx) error {
	sess, err := auth.SessionFromCtx(c)
	if err != nil {
		return err
	}
	var req dto.BulkDeleteRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	list, err := h.catalog.BulkDelete(c.UserContext(), sess, req.IDs)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"services": list}})
}
