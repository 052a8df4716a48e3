package routes

import (
	"inventory-api/controllers"
	"inventory-api/services"

	"github.com/gofiber/fiber/v2"
)

func SetupProductRoutes(api fiber.Router, guard fiber.Handler, service *services.ProductService) {
	productController := controllers.NewProductController(service)

	api.Get("/products/export", guard, productController.Export)
	api.Get("/products", guard, productController.Index)
	api.Post("/products", guard, productController.Store)
	api.Get("/products/:id", guard, productController.Show)
	api.Put("/products/:id", guard, productController.Update)
	api.Delete("/products/:id", guard, productController.Destroy)
	api.Get("/supplier-products/:id", guard, productController.SupplierProducts)
	api.Get("/create-order-products", guard, productController.OrderProducts)
}
