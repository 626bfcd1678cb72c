// Package docs registers the OpenAPI description served at /swagger/*.
// Regenerate with: swag init -g cmd/app/main.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "ApiKeyAuth": {"type": "apiKey", "name": "X-API-Key", "in": "header"}
    },
    "paths": {
        "/healthz": {"get": {"tags": ["health"], "summary": "Liveness check", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.HealthResponse"}}}}},
        "/readyz": {"get": {"tags": ["health"], "summary": "Readiness check", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.HealthResponse"}}, "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.HealthResponse"}}}}},
        "/version": {"get": {"tags": ["health"], "summary": "Build information", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.VersionInfo"}}}}},
        "/api/v1/products": {"get": {"security": [{"ApiKeyAuth": []}], "tags": ["catalog"], "summary": "List base products", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}},
        "/api/v1/products/{id}": {"get": {"security": [{"ApiKeyAuth": []}], "tags": ["catalog"], "summary": "Get a base product", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}}}},
        "/api/v1/ingredients": {"get": {"security": [{"ApiKeyAuth": []}], "tags": ["catalog"], "summary": "List ingredients", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}},
        "/api/v1/ingredients/{id}": {"get": {"security": [{"ApiKeyAuth": []}], "tags": ["catalog"], "summary": "Get an ingredient", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}}}},
        "/api/v1/effects/{name}": {"get": {"security": [{"ApiKeyAuth": []}], "tags": ["catalog"], "summary": "Get an effect", "parameters": [{"type": "string", "name": "name", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}}}},
        "/api/v1/mix/calculate": {"post": {"security": [{"ApiKeyAuth": []}], "tags": ["mix"], "summary": "Calculate a mix", "consumes": ["application/json"], "produces": ["application/json"], "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.CalculateMixRequest"}}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}}}},
        "/api/v1/mix/link": {"get": {"security": [{"ApiKeyAuth": []}], "tags": ["mix"], "summary": "Calculate a shared mix link", "parameters": [{"type": "string", "name": "base", "in": "query", "required": true}, {"type": "string", "name": "ingredients", "in": "query"}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}}}},
        "/api/v1/mix/name": {"post": {"security": [{"ApiKeyAuth": []}], "tags": ["mix"], "summary": "Name a mix", "consumes": ["application/json"], "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.GenerateNameRequest"}}], "responses": {"200": {"description": "OK"}}}},
        "/api/v1/mix/suggestions": {"post": {"security": [{"ApiKeyAuth": []}], "tags": ["mix"], "summary": "Suggest ingredients", "consumes": ["application/json"], "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.SuggestionsRequest"}}], "responses": {"200": {"description": "OK"}}}},
        "/api/v1/mix/can-add": {"post": {"security": [{"ApiKeyAuth": []}], "tags": ["mix"], "summary": "Check an ingredient addition", "consumes": ["application/json"], "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.CanAddRequest"}}], "responses": {"200": {"description": "OK"}}}},
        "/api/v1/mix/reverse": {"post": {"security": [{"ApiKeyAuth": []}], "tags": ["mix"], "summary": "Reverse lookup", "consumes": ["application/json"], "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.ReverseLookupRequest"}}], "responses": {"200": {"description": "OK"}}}},
        "/api/v1/optimizer/optimize": {"post": {"security": [{"ApiKeyAuth": []}], "tags": ["optimizer"], "summary": "Optimize an inventory", "consumes": ["application/json"], "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.OptimizeRequest"}}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ValidationErrorResponse"}}}}},
        "/api/v1/optimizer/goals": {"get": {"security": [{"ApiKeyAuth": []}], "tags": ["optimizer"], "summary": "List optimization goals", "parameters": [{"type": "boolean", "name": "flat", "in": "query"}], "responses": {"200": {"description": "OK"}}}}
    },
    "definitions": {
        "handler.ErrorResponse": {"type": "object", "properties": {"error": {"type": "string"}}},
        "handler.ValidationErrorResponse": {"type": "object", "properties": {"error": {"type": "string"}, "fields": {"type": "object", "additionalProperties": {"type": "string"}}}},
        "handler.HealthResponse": {"type": "object", "properties": {"status": {"type": "string"}, "message": {"type": "string"}}},
        "handler.VersionInfo": {"type": "object", "properties": {"version": {"type": "string"}, "go_version": {"type": "string"}, "build_time": {"type": "string"}, "git_commit": {"type": "string"}}},
        "handler.CalculateMixRequest": {"type": "object", "required": ["base_product_id"], "properties": {"base_product_id": {"type": "string"}, "ingredient_ids": {"type": "array", "maxItems": 16, "items": {"type": "string"}}}},
        "handler.GenerateNameRequest": {"type": "object", "required": ["category"], "properties": {"effects": {"type": "array", "items": {"type": "string"}}, "category": {"type": "string", "enum": ["weed", "meth", "cocaine"]}}},
        "handler.SuggestionsRequest": {"type": "object", "properties": {"effects": {"type": "array", "items": {"type": "string"}}}},
        "handler.CanAddRequest": {"type": "object", "required": ["ingredient_id"], "properties": {"ingredient_ids": {"type": "array", "items": {"type": "string"}}, "ingredient_id": {"type": "string"}}},
        "handler.ReverseLookupRequest": {"type": "object", "required": ["effects"], "properties": {"effects": {"type": "array", "items": {"type": "string"}}}},
        "handler.OptimizeRequest": {"type": "object", "required": ["goal"], "properties": {"inventory": {"type": "object"}, "goal": {"type": "string"}, "top_n": {"type": "integer", "minimum": 0, "maximum": 50}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "MixMaster API",
	Description:      "Mix calculation, product naming and inventory optimization.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
