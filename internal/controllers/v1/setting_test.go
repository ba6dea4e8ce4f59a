package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/sikuang/backend/internal/controllers/v1"
	"github.com/sikuang/backend/internal/models"
	"github.com/sikuang/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestSettingsOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/settings", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET", r.Header().Get("allow"))

	r = test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/settings/city_name", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET, PUT", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestSettingsGetListDefaults() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/settings", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SettingListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, len(models.SettingKeys))
	for i, key := range models.SettingKeys {
		assert.Equal(suite.T(), key, response.Data[i].Key)
		assert.Equal(suite.T(), "", response.Data[i].Value)
		assert.Equal(suite.T(), "http://example.com/v1/settings/"+key, response.Data[i].Links.Self)
	}
}

func (suite *TestSuiteStandard) TestSettingsSet() {
	r := test.Request(suite.T(), http.MethodPut, "http://example.com/v1/settings/city_name", v1.SettingEditable{Value: " Bandung "})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SettingResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "city_name", response.Data.Key)
	assert.Equal(suite.T(), "Bandung", response.Data.Value)

	// Setting it again updates the value
	r = test.Request(suite.T(), http.MethodPut, "http://example.com/v1/settings/city_name", v1.SettingEditable{Value: "Cimahi"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/settings/city_name", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "Cimahi", response.Data.Value)
}

func (suite *TestSuiteStandard) TestSettingsErrors() {
	tests := []struct {
		name   string
		method string
		path   string
		body   any
		status int
	}{
		{"GET unknown key", http.MethodGet, "http://example.com/v1/settings/colour", "", http.StatusNotFound},
		{"PUT unknown key", http.MethodPut, "http://example.com/v1/settings/colour", v1.SettingEditable{Value: "blue"}, http.StatusBadRequest},
		{"PUT empty body", http.MethodPut, "http://example.com/v1/settings/city_name", "", http.StatusBadRequest},
		{"PUT broken body", http.MethodPut, "http://example.com/v1/settings/city_name", `{ "value": 2 }`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, tt.path, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.SettingResponse
			test.DecodeResponse(t, &r, &response)
			assert.NotNil(t, response.Error)
		})
	}
}

func (suite *TestSuiteStandard) TestSettingsDBClosed() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/settings", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)

	r = test.Request(suite.T(), http.MethodPut, "http://example.com/v1/settings/city_name", v1.SettingEditable{Value: "Bandung"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
