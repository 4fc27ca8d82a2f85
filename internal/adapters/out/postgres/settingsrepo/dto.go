// Package settingsrepo reads the singleton settings document that governs
// ordering mode, scheduling lead time, category limits, and disabled dates.
// The ordering core never writes this table; it is owned by the admin
// surface outside this module.
package settingsrepo

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"foodbank/internal/core/domain/model/settings"
)

// SettingsDTO represents the database structure of the settings document.
// Exactly one row is expected.
type SettingsDTO struct {
	ID           int  `gorm:"primaryKey"`
	LeadTimeDays int  ``
	Advanced     bool ``

	MaxProduce int
	MaxMeat    int
	MaxVito    int
	MaxDry     int

	MeatOptions       StringListDTO `gorm:"type:jsonb"`
	VitoOptions       StringListDTO `gorm:"type:jsonb"`
	DryGoodOptions    StringListDTO `gorm:"type:jsonb"`
	RetailRescueItems StringListDTO `gorm:"type:jsonb"`

	DisabledDates DateListDTO `gorm:"type:jsonb"`
}

// TableName specifies the database table name for the settings document.
func (SettingsDTO) TableName() string {
	return "settings"
}

// StringListDTO is a jsonb-backed list of option names.
type StringListDTO []string

// Value serializes the list for a jsonb column.
func (l StringListDTO) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal([]string(l))
}

// Scan deserializes the list from a jsonb column.
func (l *StringListDTO) Scan(value any) error {
	return scanJSON(value, l)
}

// DateListDTO is a jsonb-backed list of timestamps.
type DateListDTO []time.Time

// Value serializes the list for a jsonb column.
func (l DateListDTO) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]time.Time{})
	}
	return json.Marshal([]time.Time(l))
}

// Scan deserializes the list from a jsonb column.
func (l *DateListDTO) Scan(value any) error {
	return scanJSON(value, l)
}

func scanJSON(value, dst any) error {
	switch v := value.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		return fmt.Errorf("unsupported jsonb source type %T", value)
	}
}

// toDomain converts the stored row to a validated settings snapshot.
func toDomain(dto SettingsDTO) (settings.Settings, error) {
	return settings.NewSettings(
		dto.LeadTimeDays,
		dto.Advanced,
		settings.Options{
			MaxProduce:        dto.MaxProduce,
			MaxMeat:           dto.MaxMeat,
			MaxVito:           dto.MaxVito,
			MaxDry:            dto.MaxDry,
			MeatOptions:       dto.MeatOptions,
			VitoOptions:       dto.VitoOptions,
			DryGoodOptions:    dto.DryGoodOptions,
			RetailRescueItems: dto.RetailRescueItems,
		},
		dto.DisabledDates,
	)
}
