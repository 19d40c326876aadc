package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/office-admin-service/internal/api/dto"
	"github.com/spec-kit/office-admin-service/internal/auth"
	"github.com/spec-kit/office-admin-service/internal/domain"
	"github.com/spec-kit/office-admin-service/internal/service"
)

// DepartmentsHandler exposes the department overview and draft endpoints.
type DepartmentsHandler struct {
	departments *service.DepartmentService
}

// NewDepartmentsHandler constructs handler.
func NewDepartmentsHandler(departments *service.DepartmentService) *DepartmentsHandler {
	return &DepartmentsHandler{departments: departments}
}

// Overview handles GET /departments.
func (h *DepartmentsHandler) Overview(c *fiber.Ctx) error {
	sess, err := auth.SessionFromCtx(c)
	if err != nil {
		return err
	}
	views := h.departments.Overview(sess, overviewFilter(c))
	return c.JSON(fiber.Map{"data": views})
}

// OpenEditor handles POST /departments/editors.
func (h *DepartmentsHandler) OpenEditor(c *fiber.Ctx) error {
	sess, err := auth.SessionFromCtx(c)
	if err != nil {
		return err
	}
	var req dto.OpenEditorRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	draft, err := h.departments.OpenEditor(sess, req.Index)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": draft})
}

// UpdateDraft handles PUT /departments/editors/:id.
func (h *DepartmentsHandler) UpdateDraft(c *fiber.Ctx) error {
	sess, err := auth.SessionFromCtx(c)
	if err != nil {
		return err
	}
	var form domain.DepartmentForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	draft, err := h.departments.UpdateDraft(sess, c.Params("id"), form)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": draft})
}

// Save handles POST /departments/editors/:id/save.
func (h *DepartmentsHandler) Save(c *fiber.Ctx) error {
	sess, err := auth.SessionFromCtx(c)
	if err != nil {
		return err
	}
	draft, list, err := h.departments.Save(c.UserContext(), sess, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"draft": draft, "departments": list}})
}

// SaveAndClose handles POST /departments/editors/:id/commit.
func (h *DepartmentsHandler) SaveAndClose(c *fiber.Ctx) error {
	sess, err := auth.SessionFromCtx(c)
	if err != nil {
		return err
	}
	list, err := h.departments.SaveAndClose(c.UserContext(), sess, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"departments": list}})
}

// RequestDelete handles POST /departments/editors/:id/delete.
func (h *DepartmentsHandler) RequestDelete(c *fiber.Ctx) error {
	sess, err := auth.SessionFromCtx(c)
	if err != nil {
		return err
	}
	if err := h.departments.RequestDelete(sess, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"status": "confirm_required"}})
}

// ConfirmDelete handles POST /departments/editors/:id/delete/confirm.
func (h *DepartmentsHandler) ConfirmDelete(c *fiber.Ctx) error {
	sess, err := auth.SessionFromCtx(c)
	if err != nil {
		return err
	}
	list, err := h.departments.ConfirmDelete(c.UserContext(), sess, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"departments": list}})
}

// Cancel handles DELETE /departments/editors/:id.
func (h *DepartmentsHandler) Cancel(c *fiber.Ctx) error {
	sess, err := auth.SessionFromCtx(c)
	if err != nil {
		return err
	}
	h.departments.Cancel(sess, c.Params("id"))
	return c.SendStatus(http.StatusNoContent)
}

// BulkDelete handles POST /departments/bulk-delete.
func (h *DepartmentsHandler) BulkDelete(c *fiber.Ctx) error {
	sess, err := auth.SessionFromCtx(c)
	if err != nil {
		return err
	}
	var req dto.BulkDeleteRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	list, err := h.departments.BulkDelete(c.UserContext(), sess, req.IDs)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"departments": list}})
}

func overviewFilter(c *fiber.Ctx) service.OverviewFilter {
	return service.OverviewFilter{
		Search:     c.Query("search"),
		Status:     c.Query("status"),
		Department: c.Query("department"),
	}
}
