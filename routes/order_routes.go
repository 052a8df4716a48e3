package routes

import (
	"inventory-api/controllers"
	"inventory-api/services"

	"github.com/gofiber/fiber/v2"
)

// Guards sit on each route rather than a group: a group prefix like /orders would also match /orders-chart.
func SetupOrderRoutes(api fiber.Router, guard fiber.Handler, service *services.OrderService) {
	orderController := controllers.NewOrderController(service)

	api.Get("/orders", guard, orderController.Index)
	api.Post("/orders", guard, orderController.Store)
	api.Get("/orders/:id", guard, orderController.Show)
	api.Put("/orders/:id", guard, orderController.Update)
	api.Delete("/orders/:id", guard, orderController.Destroy)
	api.Get("/supplier-orders/:id", guard, orderController.SupplierOrders)
	api.Get("/orders-chart", guard, orderController.Chart)
	api.Get("/supplier-orders-chart/:id", guard, orderController.SupplierChart)
}
