package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "CUET CAD Club API",
        "description": "Read-only page view models for the club website, backed by a hosted content store",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Pages", "description": "Assembled page view models"},
        {"name": "Join", "description": "Membership applications"},
        {"name": "Exports", "description": "Downloadable directory and calendar files"},
        {"name": "Content", "description": "Content authoring contract"}
    ],
    "paths": {
        "/pages/home": {
            "get": {
                "tags": ["Pages"],
                "summary": "Homepage view model",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/pages/about": {
            "get": {
                "tags": ["Pages"],
                "summary": "About page view model",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/pages/events": {
            "get": {
                "tags": ["Pages"],
                "summary": "Events page view model, partitioned into upcoming and past",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "502": {"description": "Content backend unavailable", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/pages/workshops": {
            "get": {
                "tags": ["Pages"],
                "summary": "Workshops page view model, partitioned by next session date",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "502": {"description": "Content backend unavailable", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/pages/committee": {
            "get": {
                "tags": ["Pages"],
                "summary": "Committee page view model, grouped by role",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "502": {"description": "Content backend unavailable", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/pages/alumni": {
            "get": {
                "tags": ["Pages"],
                "summary": "Alumni page view model, grouped by graduating class",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "502": {"description": "Content backend unavailable", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/pages/join": {
            "get": {
                "tags": ["Pages"],
                "summary": "Join page view model",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/join/applications": {
            "post": {
                "tags": ["Join"],
                "summary": "Submit a membership application",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ApplicationRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/exports/alumni.csv": {
            "get": {
                "tags": ["Exports"],
                "summary": "Alumni directory as CSV",
                "produces": ["text/csv"],
                "responses": {
                    "200": {"description": "CSV file"},
                    "502": {"description": "Content backend unavailable", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/exports/events.pdf": {
            "get": {
                "tags": ["Exports"],
                "summary": "Event calendar as PDF",
                "produces": ["application/pdf"],
                "responses": {
                    "200": {"description": "PDF file"},
                    "502": {"description": "Content backend unavailable", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/content/schema": {
            "get": {
                "tags": ["Content"],
                "summary": "Content authoring contract",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "ApplicationRequest": {
            "type": "object",
            "required": ["name", "email", "studentId", "department", "year", "motivation"],
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "studentId": {"type": "string"},
                "department": {"type": "string"},
                "year": {"type": "string"},
                "experience": {"type": "string"},
                "motivation": {"type": "string"}
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
