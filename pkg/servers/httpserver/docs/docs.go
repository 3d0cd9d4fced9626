// Package docs описание служебного API шлюза в формате swagger 2.0
// регистрируется в swag и отдается через /swagger/doc.json
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
        "/alive": {
            "get": {
                "produces": ["application/json"],
                "summary": "процесс шлюза жив",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.AliveOut"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            }
        },
        "/ping": {
            "get": {
                "produces": ["application/json"],
                "summary": "параметры запущенного экземпляра шлюза",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.PongObj"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            }
        },
        "/health_gateway": {
            "get": {
                "produces": ["application/json"],
                "summary": "состояние бекенда глазами шлюза",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.UpstreamStatus"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/model.UpstreamStatus"}}
                }
            }
        },
        "/metrics": {
            "get": {
                "produces": ["text/plain"],
                "summary": "метрики prometheus",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        }
    },
    "definitions": {
        "model.AliveOut": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "config": {"type": "object"}
            }
        },
        "model.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "code": {"type": "string"},
                "request_id": {"type": "string"}
            }
        },
        "model.PongObj": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "replica_id": {"type": "string"},
                "version": {"type": "string"},
                "hash_commit": {"type": "string"},
                "status": {"type": "string"},
                "basename": {"type": "string"},
                "proxy_target": {"type": "string"},
                "port": {"type": "string"},
                "pid": {"type": "integer"},
                "start_time": {"type": "string"},
                "uptime": {"type": "string"},
                "os": {"type": "string"},
                "arch": {"type": "string"}
            }
        },
        "model.UpstreamStatus": {
            "type": "object",
            "properties": {
                "target": {"type": "string"},
                "healthy": {"type": "boolean"},
                "status": {"type": "string"},
                "error": {"type": "string"},
                "checked_at": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo метаданные описания, версия проставляется при старте
var SwaggerInfo = &swag.Spec{
	Version:          "",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "OnlyFlow front gateway",
	Description:      "Служебные методы шлюза фронтенда. Запросы к API приложения проксируются в бекенд как есть.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
