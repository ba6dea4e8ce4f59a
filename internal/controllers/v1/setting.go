package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sikuang/backend/internal/httputil"
	"github.com/sikuang/backend/internal/models"
	"golang.org/x/exp/slices"
)

var errSettingNotFound = fmt.Errorf("%w setting with this key", models.ErrResourceNotFound)

type URIKey struct {
	Key string `uri:"key" binding:"required" example:"city_name"` // Key of the setting
}

// SettingEditable represents all user configurable parameters
type SettingEditable struct {
	Value string `json:"value" example:"Bandung" default:""` // Value of the setting
}

type SettingLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/settings/city_name"` // The setting itself
}

type Setting struct {
	Key string `json:"key" example:"city_name" enums:"app_name,city_name,treasurer_name,leader_name"` // Key of the setting
	SettingEditable
	Links SettingLinks `json:"links"`
}

func newSetting(c *gin.Context, key, value string) Setting {
	url := c.GetString(string(models.DBContextURL))

	return Setting{
		Key:             key,
		SettingEditable: SettingEditable{Value: value},
		Links: SettingLinks{
			Self: fmt.Sprintf("%s/v1/settings/%s", url, key),
		},
	}
}

type SettingListResponse struct {
	Data  []Setting `json:"data"`                                                                // List of all settings
	Error *string   `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
}

type SettingResponse struct {
	Data  *Setting `json:"data"`                                        // Data for the setting
	Error *string  `json:"error" example:"this setting key is unknown"` // The error, if any occurred
}

// RegisterSettingRoutes registers the routes for settings with
// the RouterGroup that is passed.
func RegisterSettingRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsSettingList)
		r.GET("", GetSettings)
	}

	// Setting with key
	{
		r.OPTIONS("/:key", OptionsSettingDetail)
		r.GET("/:key", GetSetting)
		r.PUT("/:key", SetSetting)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Settings
// @Success		204
// @Router			/v1/settings [options]
func OptionsSettingList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Settings
// @Success		204
// @Param			key	path	string	true	"Key of the setting"
// @Router			/v1/settings/{key} [options]
func OptionsSettingDetail(c *gin.Context) {
	httputil.OptionsGetPut(c)
}

// @Summary		Get settings
// @Description	Returns all settings. Settings that have not been set have an empty value.
// @Tags			Settings
// @Produce		json
// @Success		200	{object}	SettingListResponse
// @Failure		500	{object}	SettingListResponse
// @Router			/v1/settings [get]
func GetSettings(c *gin.Context) {
	settings, err := models.Settings(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SettingListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Setting, 0, len(models.SettingKeys))
	for _, key := range models.SettingKeys {
		data = append(data, newSetting(c, key, settings[key]))
	}

	c.JSON(http.StatusOK, SettingListResponse{Data: data})
}

// @Summary		Get setting
// @Description	Returns a specific setting
// @Tags			Settings
// @Produce		json
// @Success		200	{object}	SettingResponse
// @Failure		404	{object}	SettingResponse
// @Failure		500	{object}	SettingResponse
// @Param			key	path		string	true	"Key of the setting"
// @Router			/v1/settings/{key} [get]
func GetSetting(c *gin.Context) {
	var uri URIKey
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SettingResponse{
			Error: &s,
		})
		return
	}

	if !slices.Contains(models.SettingKeys, uri.Key) {
		s := errSettingNotFound.Error()
		c.JSON(http.StatusNotFound, SettingResponse{
			Error: &s,
		})
		return
	}

	settings, err := models.Settings(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SettingResponse{
			Error: &s,
		})
		return
	}

	data := newSetting(c, uri.Key, settings[uri.Key])
	c.JSON(http.StatusOK, SettingResponse{Data: &data})
}

// @Summary		Set setting
// @Description	Creates or updates a setting
// @Tags			Settings
// @Accept			json
// @Produce		json
// @Success		200		{object}	SettingResponse
// @Failure		400		{object}	SettingResponse
// @Failure		500		{object}	SettingResponse
// @Param			key		path		string			true	"Key of the setting"
// @Param			setting	body		SettingEditable	true	"Setting"
// @Router			/v1/settings/{key} [put]
func SetSetting(c *gin.Context) {
	var uri URIKey
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SettingResponse{
			Error: &s,
		})
		return
	}

	var editable SettingEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SettingResponse{
			Error: &s,
		})
		return
	}

	setting, err := models.SetSetting(models.DB, uri.Key, editable.Value)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SettingResponse{
			Error: &s,
		})
		return
	}

	data := newSetting(c, setting.Key, setting.Value)
	c.JSON(http.StatusOK, SettingResponse{Data: &data})
}
