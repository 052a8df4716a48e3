package routes

import (
	"inventory-api/controllers"
	"inventory-api/services"

	"github.com/gofiber/fiber/v2"
)

func SetupSupplierRoutes(api fiber.Router, guard fiber.Handler, service *services.SupplierService) {
	supplierController := controllers.NewSupplierController(service)

	api.Post("/suppliers/upload-excel", guard, supplierController.UploadExcel)
	api.Get("/suppliers", guard, supplierController.Index)
	api.Post("/suppliers", guard, supplierController.Store)
	api.Get("/suppliers/:id", guard, supplierController.Show)
	api.Put("/suppliers/:id", guard, supplierController.Update)
	api.Delete("/suppliers/:id", guard, supplierController.Destroy)
}
