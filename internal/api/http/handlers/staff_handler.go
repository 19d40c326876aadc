package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/office-admin-service/internal/api/dto"
	"github.com/spec-kit/office-admin-service/internal/auth"
	"github.com/spec-kit/office-admin-service/internal/domain"
	"github.com/spec-kit/office-admin-service/internal/service"
)

// StaffHandler exposes the sachbearbeiter overview and draft endpoints.
type StaffHandler struct {
	staff *service.StaffService
}

// NewStaffHandler constructs handler.
func NewStaffHandler(staff *service.StaffService) *StaffHandler {
	return &StaffHandler{staff: staff}
}

// Overview handles GET /staff.
func (h *StaffHandler) Overview(c *fiber.Ctx) error {
	sess, err := auth.SessionFromCtx(c)
	if err != nil {
		return err
	}
	rows := h.staff.Overview(sess, overviewFilter(c))
	return c.JSON(fiber.Map{"data": rows})
}

// OpenEditor handles POST /staff/editors.
func (h *StaffHandler) OpenEditor(c *fiber.Ctx) error {
	sess, err := auth.SessionFromCtx(c)
	if err != nil {
		return err
	}
	var req dto.OpenEditorRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	draft, err := h.staff.OpenEditor(sess, req.Index)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": draft})
}

// UpdateDraft handles PUT /staff/editors/:id.
func (h *StaffHandler) UpdateDraft(c *fiber.Ctx) error {
	sess, err := auth.SessionFromCtx(c)
	if err != nil {
		return err
	}
	var form domain.EmployeeForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	draft, err := h.staff.UpdateDraft(sess, c.Params("id"), form)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": draft})
}

// Save handles POST /staff/editors/:id/save.
func (h *StaffHandler) Save(c *fiber.Ctx) error {
	sess, err := auth.SessionFromCtx(c)
	if err != nil {
		return err
	}
	draft, list, err := h.staff.Save(c.UserContext(), sess, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"draft": draft, "staff": list}})
}

// SaveAndClose handles POST /staff/editors/:id/commit.
func (h *StaffHandler) SaveAndClose(c *fiber.Ctx) error {
	sess, err := auth.SessionFromCtx(c)
	if err != nil {
		return err
	}
	list, err := h.staff.SaveAndClose(c.UserContext(), sess, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"staff": list}})
}

// RequestDelete handles POST /staff/editors/:id/delete.
func (h *StaffHandler) RequestDelete(c *fiber.Ctx) error {
	sess, err := auth.SessionFromCtx(c)
	if err != nil {
		return err
	}
	if err := h.staff.RequestDelete(sess, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"status": "confirm_required"}})
}

// ConfirmDelete handles POST /staff/editors/:id/delete/confirm.
func (h *StaffHandler) ConfirmDelete(c *fiber.Ctx) error {
	sess, err := auth.SessionFromCtx(c)
	if err != nil {
		return err
	}
	list, err := h.staff.ConfirmDelete(c.UserContext(), sess, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"staff": list}})
}

// Cancel handles DELETE /staff/editors/:id.
func (h *StaffHandler) Cancel(c *fiber.Ctx) error {
	sess, err := auth.SessionFromCtx(c)
	if err != nil {
		return err
	}
	h.staff.Cancel(sess, c.Params("id"))
	return c.SendStatus(http.StatusNoContent)
}

// BulkDelete handles POST /staff/bulk-delete.
func (h *StaffHandler) BulkDelete(c *fiber.Ctx) error {
	sess, err := auth.SessionFromCtx(c)
	if err != nil {
		return err
	}
	var req dto.BulkDeleteRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	list, err := h.staff.BulkDelete(c.UserContext(), sess, req.IDs)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"staff": list}})
}
