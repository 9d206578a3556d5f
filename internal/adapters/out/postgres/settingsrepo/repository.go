// Package settingsrepo persists the storefront-wide settings row.
package settingsrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// settingsRowID is the primary key of the single settings row.
const settingsRowID = 1

// SettingsDTO represents the database structure for storefront settings.
// The table holds exactly one row.
type SettingsDTO struct {
	ID              int `gorm:"primaryKey"`
	OrderingEnabled bool
}

// TableName specifies the database table name for settings.
func (SettingsDTO) TableName() string {
	return "settings"
}

// GormSettingsRepository implements SettingsRepository using GORM.
type GormSettingsRepository struct {
	db *gorm.DB
}

// NewGormSettingsRepository creates a new GORM settings repository.
func NewGormSettingsRepository(db *gorm.DB) *GormSettingsRepository {
	return &GormSettingsRepository{db: db}
}

// GetOrderingEnabled reports whether new orders are currently accepted.
// Ordering defaults to enabled until an admin writes the switch.
func (r *GormSettingsRepository) GetOrderingEnabled(ctx context.Context) (bool, error) {
	var dto SettingsDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", settingsRowID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return true, nil
		}
		return false, err
	}
	return dto.OrderingEnabled, nil
}

// SetOrderingEnabled durably records the ordering switch.
func (r *GormSettingsRepository) SetOrderingEnabled(ctx context.Context, enabled bool) error {
	dto := SettingsDTO{ID: settingsRowID, OrderingEnabled: enabled}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&dto).Error
}
