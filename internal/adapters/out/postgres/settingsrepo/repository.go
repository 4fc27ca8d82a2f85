package settingsrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"foodbank/internal/core/domain/model/settings"
	"foodbank/internal/pkg/errs"
)

// GormSettingsRepository implements SettingsRepository using GORM.
type GormSettingsRepository struct {
	db *gorm.DB
}

// NewGormSettingsRepository creates a new GORM settings repository.
func NewGormSettingsRepository(db *gorm.DB) *GormSettingsRepository {
	return &GormSettingsRepository{db: db}
}

// Get retrieves the singleton settings document.
func (r *GormSettingsRepository) Get(ctx context.Context) (settings.Settings, error) {
	var dto SettingsDTO
	if err := r.db.WithContext(ctx).First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return settings.Settings{}, errs.NewObjectNotFoundError("settings", "singleton")
		}
		return settings.Settings{}, err
	}

	return toDomain(dto)
}
