package migration

import (
	"inventory-api/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.PasswordReset{},
		&models.Supplier{},
		&models.Product{},
		&models.SupplierProduct{},
		&models.Order{},
		&models.OrderDetail{},
	)
}
