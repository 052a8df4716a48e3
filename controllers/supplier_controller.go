package controllers

import (
	"strings"

	"inventory-api/dto"
	"inventory-api/services"

	"github.com/gofiber/fiber/v2"
)

type SupplierController struct {
	Service *services.SupplierService
}

func NewSupplierController(service *services.SupplierService) *SupplierController {
	return &SupplierController{Service: service}
}

func (c *SupplierController) Index(ctx *fiber.Ctx) error {
	suppliers, err := c.Service.List(ctx.UserContext())
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"message": fiber.Map{"suppliers": suppliers}})
}

func (c *SupplierController) Store(ctx *fiber.Ctx) error {
	var req dto.SupplierRequest
	if err := parseBody(ctx, &req); err != nil {
		return badBody(ctx)
	}

	supplier, err := c.Service.Create(ctx.UserContext(), req)
	if err != nil {
		return fail(ctx, err)
	}
	return message(ctx, fiber.StatusOK, supplier.Name+" created successfully")
}

func (c *SupplierController) Show(ctx *fiber.Ctx) error {
	id, ok := paramID(ctx)
	if !ok {
		return message(ctx, fiber.StatusNotFound, "Supplier Not Found")
	}

	supplier, err := c.Service.Get(ctx.UserContext(), id)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"message": fiber.Map{"supplier": supplier}})
}

func (c *SupplierController) Update(ctx *fiber.Ctx) error {
	var req dto.SupplierRequest
	if err := parseBody(ctx, &req); err != nil {
		return badBody(ctx)
	}
	id, ok := paramID(ctx)
	if !ok {
		return message(ctx, fiber.StatusNotFound, "Supplier Not Found")
	}

	if _, err := c.Service.Update(ctx.UserContext(), id, req); err != nil {
		return fail(ctx, err)
	}
	return message(ctx, fiber.StatusOK, "Supplier Details edited successfully")
}

func (c *SupplierController) Destroy(ctx *fiber.Ctx) error {
	id, ok := paramID(ctx)
	if !ok {
		return message(ctx, fiber.StatusNotFound, "Supplier Not Found")
	}

	if err := c.Service.Delete(ctx.UserContext(), id); err != nil {
		return fail(ctx, err)
	}
	return message(ctx, fiber.StatusOK, "Supplier Details deleted successfully")
}

// UploadExcel creates suppliers from the "file" form field. Only .xlsx workbooks are read.
func (c *SupplierController) UploadExcel(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("file")
	if err != nil {
		return message(ctx, fiber.StatusBadRequest, "File is required")
	}
	if !strings.HasSuffix(strings.ToLower(file.Filename), ".xlsx") {
		return message(ctx, fiber.StatusBadRequest, "Only Excel files (.xlsx) are allowed")
	}

	content, err := file.Open()
	if err != nil {
		return message(ctx, fiber.StatusBadRequest, "Failed to open file")
	}
	defer content.Close()

	result, err := c.Service.Import(ctx.UserContext(), content)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"message": result})
}
