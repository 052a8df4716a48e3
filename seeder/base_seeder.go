package seed

import (
	"errors"
	"time"

	"inventory-api/models"
	"inventory-api/utils"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const (
	TestUserName     = "TestUser"
	TestUserEmail    = "test@user.com"
	TestUserPassword = "secretpassword"
)

// SeedTestUser creates the verified demo account once.
func SeedTestUser(db *gorm.DB) error {
	var existing models.User
	err := db.Where("email = ?", TestUserEmail).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := utils.HashPassword(TestUserPassword)
	if err != nil {
		return err
	}
	verified := time.Now()
	user := models.User{
		Name:            TestUserName,
		Email:           TestUserEmail,
		Password:        hash,
		EmailVerifiedAt: &verified,
	}
	if err := db.Create(&user).Error; err != nil {
		return err
	}
	log.Info().Str("email", user.Email).Msg("seeded test user")
	return nil
}

func RunSeeders(db *gorm.DB) error {
	return SeedTestUser(db)
}
