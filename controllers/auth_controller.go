package controllers

import (
	"inventory-api/dto"
	"inventory-api/services"

	"github.com/gofiber/fiber/v2"
)

type AuthController struct {
	Service *services.AuthService
}

func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{Service: service}
}

func (c *AuthController) Register(ctx *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := parseBody(ctx, &req); err != nil {
		return badBody(ctx)
	}

	res, err := c.Service.Register(ctx.UserContext(), req)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(res)
}

func (c *AuthController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := parseBody(ctx, &req); err != nil {
		return badBody(ctx)
	}

	res, err := c.Service.Login(ctx.UserContext(), req)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(res)
}

func (c *AuthController) EmailUnique(ctx *fiber.Ctx) error {
	var req dto.EmailUniqueRequest
	if err := parseBody(ctx, &req); err != nil {
		return badBody(ctx)
	}

	unique, err := c.Service.EmailUnique(ctx.UserContext(), req.Email)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"message": unique})
}

func (c *AuthController) ForgotPassword(ctx *fiber.Ctx) error {
	var req dto.ForgotPasswordRequest
	if err := parseBody(ctx, &req); err != nil {
		return badBody(ctx)
	}

	msg, err := c.Service.ForgotPassword(ctx.UserContext(), req)
	if err != nil {
		return fail(ctx, err)
	}
	return message(ctx, fiber.StatusOK, msg)
}

func (c *AuthController) UpdatePassword(ctx *fiber.Ctx) error {
	var req dto.UpdatePasswordRequest
	if err := parseBody(ctx, &req); err != nil {
		return badBody(ctx)
	}

	msg, err := c.Service.UpdatePassword(ctx.UserContext(), req)
	if err != nil {
		return fail(ctx, err)
	}
	return message(ctx, fiber.StatusOK, msg)
}
