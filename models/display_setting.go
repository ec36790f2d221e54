package models

import "time"

// DisplaySetting is one row of the loosely-typed key/value settings store.
// The recognized key set lives in the theme package, not in the schema.
type DisplaySetting struct {
	SettingKey   string    `gorm:"primaryKey;size:100" json:"setting_key"`
	SettingValue string    `gorm:"type:text" json:"setting_value"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (DisplaySetting) TableName() string {
	return "display_settings"
}
