// Package docs holds the OpenAPI document served under /docs. It mirrors the
// handler annotations and is registered with swag under the "api" instance
package docs

import (
	"tzconv/internal/core/version"

	"github.com/swaggo/swag/v2"
)

const docTemplate = `{
    "openapi": "3.1.0",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}"
    },
    "paths": {
        "/convert": {
            "get": {
                "tags": ["Convert"],
                "summary": "Convert a wall-clock time between zones",
                "parameters": [
                    {"name": "time", "in": "query", "required": true, "description": "time of day", "schema": {"type": "string", "example": "1pm"}},
                    {"name": "origin", "in": "query", "required": true, "description": "origin zone", "schema": {"type": "string", "example": "est"}},
                    {"name": "destination", "in": "query", "description": "destination zone, local when blank", "schema": {"type": "string"}},
                    {"name": "day", "in": "query", "description": "day of month or today, yesterday, tomorrow", "schema": {"type": "string"}},
                    {"name": "month", "in": "query", "description": "month name, abbreviation or number", "schema": {"type": "string"}},
                    {"name": "year", "in": "query", "description": "year", "schema": {"type": "string"}}
                ],
                "responses": {
                    "200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/domain.ConvertResponse"}}}},
                    "422": {"description": "token could not be parsed", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}}
                }
            }
        },
        "/zones": {
            "get": {
                "tags": ["Convert"],
                "summary": "Zone table with current offsets",
                "parameters": [
                    {"name": "filter", "in": "query", "description": "substring of key or name", "schema": {"type": "string"}}
                ],
                "responses": {
                    "200": {"description": "ok", "content": {"application/json": {"schema": {"type": "array", "items": {"$ref": "#/components/schemas/domain.ZoneRow"}}}}},
                    "404": {"description": "no zone matched", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}}
                }
            }
        },
        "/meta/health": {
            "get": {
                "tags": ["Meta"],
                "summary": "Liveness",
                "responses": {"200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/http.Health"}}}}}
            }
        },
        "/meta/ready": {
            "get": {
                "tags": ["Meta"],
                "summary": "Zone database readiness",
                "description": "Loads each probe zone; status is fail when any load failed",
                "responses": {"200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/http.Readiness"}}}}}
            }
        },
        "/meta/version": {
            "get": {
                "tags": ["Meta"],
                "summary": "Build and version info",
                "responses": {"200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/version.BuildInfo"}}}}}
            }
        },
        "/meta/service": {
            "get": {
                "tags": ["Meta"],
                "summary": "Service name and uptime",
                "responses": {"200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/http.Service"}}}}}
            }
        }
    },
    "components": {
        "schemas": {
            "domain.ConvertResponse": {
                "type": "object",
                "properties": {
                    "sentence": {"type": "string", "example": "1:00 pm EST is 7:00 pm BST"},
                    "origin": {"type": "string", "example": "2024-07-01T13:00:00-05:00"},
                    "destination": {"type": "string", "example": "2024-07-01T19:00:00+01:00"},
                    "origin_zone": {"type": "string"},
                    "destination_zone": {"type": "string"},
                    "format": {"type": "string"},
                    "assumed_local": {"type": "boolean"}
                }
            },
            "domain.ZoneRow": {
                "type": "object",
                "properties": {
                    "key": {"type": "string", "example": "est"},
                    "name": {"type": "string", "example": "Etc/GMT+5"},
                    "kind": {"type": "string"},
                    "offset": {"type": "string", "example": "-05:00"}
                }
            },
            "http.Health": {
                "type": "object",
                "properties": {
                    "ok": {"type": "boolean"},
                    "service": {"type": "string"},
                    "started": {"type": "string"},
                    "now": {"type": "string"}
                }
            },
            "http.Check": {
                "type": "object",
                "properties": {
                    "name": {"type": "string", "example": "Europe/London"},
                    "status": {"type": "string", "example": "ok"},
                    "error": {"type": "string"}
                }
            },
            "http.Readiness": {
                "type": "object",
                "properties": {
                    "status": {"type": "string", "example": "ok"},
                    "checks": {"type": "array", "items": {"$ref": "#/components/schemas/http.Check"}},
                    "now": {"type": "string"}
                }
            },
            "http.Service": {
                "type": "object",
                "properties": {
                    "name": {"type": "string"},
                    "started": {"type": "string"},
                    "uptime": {"type": "integer", "example": 300}
                }
            },
            "version.BuildInfo": {
                "type": "object",
                "properties": {
                    "name": {"type": "string"},
                    "version": {"type": "string"},
                    "commit": {"type": "string"},
                    "date": {"type": "string"},
                    "go": {"type": "string"}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          version.Info().Version,
	Title:            "tzconv API",
	Description:      "Converts a wall-clock time from one zone to another",
	InfoInstanceName: "api",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
