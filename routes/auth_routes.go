package routes

import (
	"inventory-api/controllers"
	"inventory-api/services"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(api fiber.Router, service *services.AuthService) {
	authController := controllers.NewAuthController(service)

	user := api.Group("/user")
	user.Post("/register", authController.Register)
	user.Post("/register/email-unique", authController.EmailUnique)
	user.Post("/login", authController.Login)
	user.Post("/login/password/forgot", authController.ForgotPassword)
	user.Post("/login/password/update", authController.UpdatePassword)
}
