// Package docs registers the OpenAPI description of the API with swag so
// http-swagger can serve it under /swagger/. Regenerate it from the
// controller annotations with `go generate ./cmd/server`.
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
    "paths": {
        "/candidates": {
            "get": {
                "description": "Returns a page of candidates, optionally filtered by id. total counts every matching candidate; page and limit echo the values applied (defaults 1 and 10, limit capped at 100).",
                "produces": ["application/json"],
                "tags": ["candidates"],
                "summary": "List candidates",
                "parameters": [
                    {"type": "string", "description": "Candidate ID (UUID)", "name": "id", "in": "query"},
                    {"minimum": 1, "type": "integer", "description": "1-based page number", "name": "page", "in": "query"},
                    {"minimum": 1, "type": "integer", "description": "Page size", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {
                        "description": "data contains candidates, total, page and limit",
                        "schema": {"$ref": "#/definitions/controllers.ListCandidatesSuccessResponse"}
                    },
                    "400": {
                        "description": "error_code: bad_request",
                        "schema": {"$ref": "#/definitions/helpers.APIResponse"}
                    },
                    "500": {
                        "description": "error_code: internal_error",
                        "schema": {"$ref": "#/definitions/helpers.APIResponse"}
                    }
                }
            }
        },
        "/healthz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/readyz": {
            "get": {
                "description": "Pings the database.",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "503": {"description": "error_code: unavailable", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        }
    },
    "definitions": {
        "controllers.ListCandidatesSuccessResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "boolean"},
                "message": {"type": "string"},
                "error_code": {"type": "string"},
                "data": {"$ref": "#/definitions/usecase.ListCandidatesResponse"}
            }
        },
        "domain.Candidate": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "vote_number": {"type": "integer"},
                "president_name": {"type": "string"},
                "vice_president_name": {"type": "string"},
                "president_nim": {"type": "string"},
                "vice_president_nim": {"type": "string"},
                "president_photo": {"type": "string"},
                "vice_president_photo": {"type": "string"},
                "status": {"type": "boolean"},
                "created_by": {"type": "string"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "helpers.APIResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "boolean"},
                "message": {"type": "string"},
                "error_code": {"type": "string"},
                "data": {}
            }
        },
        "usecase.ListCandidatesResponse": {
            "type": "object",
            "properties": {
                "candidates": {"type": "array", "items": {"$ref": "#/definitions/domain.Candidate"}},
                "total": {"type": "integer"},
                "page": {"type": "integer"},
                "limit": {"type": "integer"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "votesvc API",
	Description:      "Read-only candidate listing for the vote service.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
