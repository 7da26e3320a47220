package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "GDS API",
        "description": "Gestão Dinâmica de Salas - weekly room allocation engine",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Allocation", "description": "Weekly schedule generation and summary"},
        {"name": "Swaps", "description": "Manual reassignment of placed demand"},
        {"name": "Realtime", "description": "Live room occupancy"},
        {"name": "Demand", "description": "Weekly duty-slot demand"},
        {"name": "Rooms", "description": "Room supply management"},
        {"name": "Auth", "description": "Administrator authentication"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"}
                }
            }
        },
        "/api/v1/auth/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Authenticate the facility administrator",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid credentials"}
                }
            }
        },
        "/api/v1/allocation/generate": {
            "post": {
                "tags": ["Allocation"],
                "summary": "Rebuild the weekly room allocation",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/allocation/summary": {
            "get": {
                "tags": ["Allocation"],
                "summary": "Current allocation summary",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/allocation/conflicts": {
            "get": {
                "tags": ["Allocation"],
                "summary": "List unresolved demand",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/allocation/summary/export/csv": {
            "get": {
                "tags": ["Allocation"],
                "summary": "Download the summary as CSV",
                "produces": ["text/csv"],
                "responses": {
                    "200": {"description": "CSV payload"}
                }
            }
        },
        "/api/v1/allocation/summary/export/pdf": {
            "get": {
                "tags": ["Allocation"],
                "summary": "Download the summary as PDF",
                "produces": ["application/pdf"],
                "responses": {
                    "200": {"description": "PDF payload"}
                }
            }
        },
        "/api/v1/allocation/assignments/{id}/swap-options": {
            "get": {
                "tags": ["Swaps"],
                "summary": "List candidate rooms for an assignment",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Assignment not found"}
                }
            }
        },
        "/api/v1/allocation/assignments/{id}/swap": {
            "post": {
                "tags": ["Swaps"],
                "summary": "Move an assignment into another room",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ApplySwapRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Room already assigned in this slot"}
                }
            }
        },
        "/api/v1/realtime/status": {
            "get": {
                "tags": ["Realtime"],
                "summary": "Live room occupancy for the current slot",
                "parameters": [
                    {"name": "at", "in": "query", "type": "string", "description": "RFC3339 instant to project instead of now"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/specialties": {
            "get": {
                "tags": ["Specialty"],
                "summary": "List the canonical specialty catalogue",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/demands": {
            "get": {
                "tags": ["Demand"],
                "summary": "List weekly demand",
                "parameters": [
                    {"name": "day", "in": "query", "type": "string"},
                    {"name": "shift", "in": "query", "type": "string"},
                    {"name": "specialty", "in": "query", "type": "string"},
                    {"name": "origin", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Demand"],
                "summary": "Add a manual demand record",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateDemandRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/rooms": {
            "get": {
                "tags": ["Rooms"],
                "summary": "List rooms",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/rooms/{id}": {
            "delete": {
                "tags": ["Rooms"],
                "summary": "Remove a room",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "Removed"}
                }
            }
        },
        "/api/v1/rooms/{id}/maintenance": {
            "put": {
                "tags": ["Rooms"],
                "summary": "Toggle room maintenance",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SetMaintenanceRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/rooms/{id}/check-in": {
            "post": {
                "tags": ["Rooms"],
                "summary": "Manually check an occupant into a room",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CheckInRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "412": {"description": "Room under maintenance"}
                }
            }
        },
        "/api/v1/rooms/{id}/check-out": {
            "post": {
                "tags": ["Rooms"],
                "summary": "Release a room's occupancy",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "required": ["username", "password"],
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "CreateDemandRequest": {
            "type": "object",
            "required": ["professionalName", "specialty", "dayOfWeek", "shift"],
            "properties": {
                "professionalName": {"type": "string"},
                "specialty": {"type": "string"},
                "resourceKind": {"type": "string", "enum": ["STAFF", "RESIDENT", "EXTRA"]},
                "dayOfWeek": {"type": "string", "enum": ["MON", "TUE", "WED", "THU", "FRI", "SAT", "SUN"]},
                "shift": {"type": "string", "enum": ["MORNING", "AFTERNOON", "NIGHT"]}
            }
        },
        "ApplySwapRequest": {
            "type": "object",
            "required": ["roomId"],
            "properties": {
                "roomId": {"type": "string"},
                "force": {"type": "boolean"}
            }
        },
        "SetMaintenanceRequest": {
            "type": "object",
            "properties": {
                "maintenance": {"type": "boolean"}
            }
        },
        "CheckInRequest": {
            "type": "object",
            "required": ["occupantName"],
            "properties": {
                "occupantName": {"type": "string"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
