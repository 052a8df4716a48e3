package controllers

import (
	"fmt"
	"time"

	"inventory-api/dto"
	"inventory-api/services"

	"github.com/gofiber/fiber/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ProductController struct {
	Service *services.ProductService
}

func NewProductController(service *services.ProductService) *ProductController {
	return &ProductController{Service: service}
}

func (c *ProductController) Index(ctx *fiber.Ctx) error {
	products, err := c.Service.List(ctx.UserContext())
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"message": fiber.Map{"products": products}})
}

func (c *ProductController) SupplierProducts(ctx *fiber.Ctx) error {
	id, ok := paramID(ctx)
	if !ok {
		return message(ctx, fiber.StatusNotFound, "Supplier Not Found")
	}

	products, err := c.Service.ListBySupplier(ctx.UserContext(), id)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"message": fiber.Map{"products": products}})
}

func (c *ProductController) OrderProducts(ctx *fiber.Ctx) error {
	products, err := c.Service.ListOrderable(ctx.UserContext())
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"message": fiber.Map{"products": products}})
}

func (c *ProductController) Store(ctx *fiber.Ctx) error {
	var req dto.CreateProductRequest
	if err := parseBody(ctx, &req); err != nil {
		return badBody(ctx)
	}

	product, err := c.Service.Create(ctx.UserContext(), req)
	if err != nil {
		return fail(ctx, err)
	}
	return message(ctx, fiber.StatusOK, product.Suppliers[0].Name+"'s Product Added successfully")
}

func (c *ProductController) Show(ctx *fiber.Ctx) error {
	id, ok := paramID(ctx)
	if !ok {
		return message(ctx, fiber.StatusNotFound, "Product Not Found")
	}

	product, err := c.Service.Get(ctx.UserContext(), id)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"message": fiber.Map{"product": product}})
}

func (c *ProductController) Update(ctx *fiber.Ctx) error {
	var req dto.UpdateProductRequest
	if err := parseBody(ctx, &req); err != nil {
		return badBody(ctx)
	}
	id, ok := paramID(ctx)
	if !ok {
		return message(ctx, fiber.StatusNotFound, "Product Not Found")
	}

	if _, err := c.Service.Update(ctx.UserContext(), id, req); err != nil {
		return fail(ctx, err)
	}
	return message(ctx, fiber.StatusOK, "Product Details edited successfully")
}

func (c *ProductController) Destroy(ctx *fiber.Ctx) error {
	id, ok := paramID(ctx)
	if !ok {
		return message(ctx, fiber.StatusNotFound, "Product Not Found")
	}

	if err := c.Service.Delete(ctx.UserContext(), id); err != nil {
		return fail(ctx, err)
	}
	return message(ctx, fiber.StatusOK, "Product deleted successfully")
}

func (c *ProductController) Export(ctx *fiber.Ctx) error {
	buf, err := c.Service.Export(ctx.UserContext())
	if err != nil {
		return fail(ctx, err)
	}

	filename := fmt.Sprintf("products-%s.xlsx", time.Now().Format("20060102"))
	ctx.Set(fiber.HeaderContentType, xlsxContentType)
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}
