package controllers

import (
	"inventory-api/dto"
	"inventory-api/services"

	"github.com/gofiber/fiber/v2"
)

type OrderController struct {
	Service *services.OrderService
}

func NewOrderController(service *services.OrderService) *OrderController {
	return &OrderController{Service: service}
}

func (c *OrderController) Index(ctx *fiber.Ctx) error {
	orders, err := c.Service.List(ctx.UserContext())
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"message": fiber.Map{"orders": orders}})
}

func (c *OrderController) SupplierOrders(ctx *fiber.Ctx) error {
	id, ok := paramID(ctx)
	if !ok {
		return message(ctx, fiber.StatusNotFound, "Supplier Not Found")
	}

	orders, err := c.Service.ListBySupplier(ctx.UserContext(), id)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"message": fiber.Map{"orders": orders}})
}

func (c *OrderController) Store(ctx *fiber.Ctx) error {
	var req dto.OrderRequest
	if err := parseBody(ctx, &req); err != nil {
		return badBody(ctx)
	}

	order, err := c.Service.Create(ctx.UserContext(), req)
	if err != nil {
		return fail(ctx, err)
	}
	return message(ctx, fiber.StatusOK, order.OrderNumber+" added successfully")
}

func (c *OrderController) Show(ctx *fiber.Ctx) error {
	id, ok := paramID(ctx)
	if !ok {
		return message(ctx, fiber.StatusNotFound, "Order Not Found")
	}

	res, err := c.Service.Get(ctx.UserContext(), id)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"message": res})
}

func (c *OrderController) Update(ctx *fiber.Ctx) error {
	var req dto.OrderRequest
	if err := parseBody(ctx, &req); err != nil {
		return badBody(ctx)
	}
	id, ok := paramID(ctx)
	if !ok {
		return message(ctx, fiber.StatusNotFound, "Order Not Found")
	}

	order, err := c.Service.Update(ctx.UserContext(), id, req)
	if err != nil {
		return fail(ctx, err)
	}
	return message(ctx, fiber.StatusOK, order.OrderNumber+" added successfully")
}

func (c *OrderController) Destroy(ctx *fiber.Ctx) error {
	id, ok := paramID(ctx)
	if !ok {
		return message(ctx, fiber.StatusNotFound, "Order Not Found")
	}

	if err := c.Service.Delete(ctx.UserContext(), id); err != nil {
		return fail(ctx, err)
	}
	return message(ctx, fiber.StatusOK, "Order Details deleted successfully")
}

// Chart is served bare, without the message envelope.
func (c *OrderController) Chart(ctx *fiber.Ctx) error {
	chart, err := c.Service.ChartData(ctx.UserContext())
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(chart)
}

func (c *OrderController) SupplierChart(ctx *fiber.Ctx) error {
	id, ok := paramID(ctx)
	if !ok {
		return message(ctx, fiber.StatusNotFound, "Supplier Not Found")
	}

	chart, err := c.Service.ChartDataBySupplier(ctx.UserContext(), id)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(chart)
}
