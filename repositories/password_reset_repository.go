package repositories

import (
	"context"
	"inventory-api/models"

	"gorm.io/gorm"
)

type PasswordResetRepository struct {
	DB *gorm.DB
}

func NewPasswordResetRepository(DB *gorm.DB) *PasswordResetRepository {
	return &PasswordResetRepository{DB: DB}
}

func (r *PasswordResetRepository) WithTx(tx *gorm.DB) *PasswordResetRepository {
	return &PasswordResetRepository{DB: tx}
}

func (r *PasswordResetRepository) Create(ctx context.Context, reset *models.PasswordReset) error {
	return r.DB.WithContext(ctx).Create(reset).Error
}

// Exists reports whether token was issued for email and not yet consumed.
func (r *PasswordResetRepository) Exists(ctx context.Context, email, token string) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&models.PasswordReset{}).
		Where("email = ? AND token = ?", email, token).
		Count(&count).Error
	return count > 0, err
}

// DeleteByEmail removes every outstanding code for email.
func (r *PasswordResetRepository) DeleteByEmail(ctx context.Context, email string) error {
	return r.DB.WithContext(ctx).Where("email = ?", email).Delete(&models.PasswordReset{}).Error
}
