// Package docs serves the OpenAPI description of the API.
//
// The template is regenerated from the handler annotations with
// "swag init --output api --outputTypes go".
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "tags": [
        {"name": "General"},
        {"name": "v1"},
        {"name": "Budget Years"},
        {"name": "Categories"},
        {"name": "Plans"},
        {"name": "Transactions"},
        {"name": "Settings"},
        {"name": "Reports"}
    ],
    "paths": {
        "/": {"get": {"tags": ["General"], "summary": "API root", "responses": {"200": {"description": "OK"}}}},
        "/version": {"get": {"tags": ["General"], "summary": "API version", "responses": {"200": {"description": "OK"}}}},
        "/healthz": {"get": {"tags": ["General"], "summary": "Get health", "responses": {"204": {"description": "No Content"}, "500": {"description": "Internal Server Error"}}}},
        "/v1": {"get": {"tags": ["v1"], "summary": "v1 API", "responses": {"200": {"description": "OK"}}}, "delete": {"tags": ["v1"], "summary": "Delete everything", "responses": {"204": {"description": "No Content"}, "400": {"description": "Bad Request"}}}},
        "/v1/budget-years": {
            "get": {"tags": ["Budget Years"], "summary": "Get budget years", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Budget Years"], "summary": "Create budget years", "responses": {"201": {"description": "Created"}}}
        },
        "/v1/budget-years/{id}": {
            "get": {"tags": ["Budget Years"], "summary": "Get budget year", "responses": {"200": {"description": "OK"}}},
            "patch": {"tags": ["Budget Years"], "summary": "Update budget year", "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["Budget Years"], "summary": "Delete budget year", "responses": {"204": {"description": "No Content"}}}
        },
        "/v1/categories": {
            "get": {"tags": ["Categories"], "summary": "Get categories", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Categories"], "summary": "Create category", "responses": {"201": {"description": "Created"}}}
        },
        "/v1/categories/{id}": {
            "get": {"tags": ["Categories"], "summary": "Get category", "responses": {"200": {"description": "OK"}}},
            "patch": {"tags": ["Categories"], "summary": "Update category", "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["Categories"], "summary": "Delete category", "responses": {"204": {"description": "No Content"}}}
        },
        "/v1/plans": {
            "get": {"tags": ["Plans"], "summary": "Get plans", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Plans"], "summary": "Create plans", "responses": {"201": {"description": "Created"}}}
        },
        "/v1/plans/{id}": {
            "get": {"tags": ["Plans"], "summary": "Get plan", "responses": {"200": {"description": "OK"}}},
            "patch": {"tags": ["Plans"], "summary": "Update plan", "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["Plans"], "summary": "Delete plan", "responses": {"204": {"description": "No Content"}}}
        },
        "/v1/plans/{id}/realization": {"get": {"tags": ["Plans"], "summary": "Get plan realization", "responses": {"200": {"description": "OK"}}}},
        "/v1/transactions": {
            "get": {"tags": ["Transactions"], "summary": "Get transactions", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Transactions"], "summary": "Create transactions", "responses": {"201": {"description": "Created"}}}
        },
        "/v1/transactions/{id}": {
            "get": {"tags": ["Transactions"], "summary": "Get transaction", "responses": {"200": {"description": "OK"}}},
            "patch": {"tags": ["Transactions"], "summary": "Update transaction", "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["Transactions"], "summary": "Delete transaction", "responses": {"204": {"description": "No Content"}}}
        },
        "/v1/settings": {"get": {"tags": ["Settings"], "summary": "Get settings", "responses": {"200": {"description": "OK"}}}},
        "/v1/settings/{key}": {
            "get": {"tags": ["Settings"], "summary": "Get setting", "responses": {"200": {"description": "OK"}}},
            "put": {"tags": ["Settings"], "summary": "Set setting", "responses": {"200": {"description": "OK"}}}
        },
        "/v1/reports/summary": {"get": {"tags": ["Reports"], "summary": "Summary", "responses": {"200": {"description": "OK"}}}},
        "/v1/reports/cash-book": {"get": {"tags": ["Reports"], "summary": "Cash book", "responses": {"200": {"description": "OK"}}}},
        "/v1/reports/realization": {"get": {"tags": ["Reports"], "summary": "Realization", "responses": {"200": {"description": "OK"}}}},
        "/v1/reports/balance-sheet": {"get": {"tags": ["Reports"], "summary": "Balance sheet", "responses": {"200": {"description": "OK"}}}},
        "/v1/reports/plans": {"get": {"tags": ["Reports"], "summary": "Plans", "responses": {"200": {"description": "OK"}}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "",
	Host:             "",
	BasePath:         "",
	Schemes:          []string{},
	Title:            "",
	Description:      "",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
