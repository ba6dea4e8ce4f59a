package models

import (
	"slices"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Known setting keys. Their values are used verbatim in report headers and footers.
const (
	SettingAppName       = "app_name"
	SettingCityName      = "city_name"
	SettingTreasurerName = "treasurer_name"
	SettingLeaderName    = "leader_name"
)

// SettingKeys are all known setting keys.
var SettingKeys = []string{SettingAppName, SettingCityName, SettingTreasurerName, SettingLeaderName}

// Setting is a single application setting.
type Setting struct {
	Key   string `gorm:"primaryKey"`
	Value string
	Timestamps
}

func (s *Setting) BeforeSave(_ *gorm.DB) error {
	s.Value = strings.TrimSpace(s.Value)

	if !slices.Contains(SettingKeys, s.Key) {
		return ErrSettingKeyUnknown
	}

	return nil
}

// SetSetting creates or updates the setting with the key.
func SetSetting(db *gorm.DB, key, value string) (Setting, error) {
	s := Setting{Key: key, Value: value}

	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&s).Error
	if err != nil {
		return Setting{}, err
	}

	err = db.Where(&Setting{Key: key}).First(&s).Error
	return s, err
}

// Settings returns all settings as a map. Known keys that are not set
// are returned with an empty value.
func Settings(db *gorm.DB) (map[string]string, error) {
	var settings []Setting
	err := db.Find(&settings).Error
	if err != nil {
		return nil, err
	}

	m := make(map[string]string, len(SettingKeys))
	for _, key := range SettingKeys {
		m[key] = ""
	}

	for _, s := range settings {
		m[s.Key] = s.Value
	}

	return m, nil
}
