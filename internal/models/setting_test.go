package models_test

import (
	"github.com/sikuang/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestSetSetting() {
	s, err := models.SetSetting(models.DB, models.SettingCityName, "  Bandung ")
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), "Bandung", s.Value)

	// Updating an existing key
	s, err = models.SetSetting(models.DB, models.SettingCityName, "Jakarta")
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), "Jakarta", s.Value)

	var count int64
	require.Nil(suite.T(), models.DB.Model(&models.Setting{}).Count(&count).Error)
	assert.Equal(suite.T(), int64(1), count)
}

func (suite *TestSuiteStandard) TestSetSettingUnknownKey() {
	_, err := models.SetSetting(models.DB, "favorite_color", "blue")
	assert.ErrorIs(suite.T(), err, models.ErrSettingKeyUnknown)
}

func (suite *TestSuiteStandard) TestSettings() {
	_, err := models.SetSetting(models.DB, models.SettingTreasurerName, "Siti")
	require.Nil(suite.T(), err)

	settings, err := models.Settings(models.DB)
	require.Nil(suite.T(), err)

	assert.Len(suite.T(), settings, len(models.SettingKeys))
	assert.Equal(suite.T(), "Siti", settings[models.SettingTreasurerName])
	assert.Equal(suite.T(), "", settings[models.SettingLeaderName])
}
