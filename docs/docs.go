// Package docs provides Swagger documentation for the Premium Estimator API.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Premium Estimator API",
        "description": "Car insurance premium estimator backing the quote widget.\n\nThe workflow:\n1. **Sessions** - Start a questionnaire session and walk the phases\n2. **Answers** - Record answers for driver, vehicle and policy questions\n3. **Estimates** - Save the final pricing result as a shareable snapshot\n4. **Catalog** - Static question, state and carrier tables for host pages",
        "contact": {
            "name": "API Support",
            "url": "https://github.com/QuotelyAi/cheapestcarinsurancetulsa"
        },
        "license": {
            "name": "MIT"
        },
        "version": "1.0.0"
    },
    "host": "localhost:8080",
    "basePath": "/api/v1",
    "schemes": ["http", "https"],
    "consumes": ["application/json"],
    "produces": ["application/json"],
    "paths": {
        "/sessions": {
            "post": {
                "tags": ["Sessions"],
                "summary": "Start a session",
                "description": "Opens a fresh single-driver, single-vehicle questionnaire",
                "operationId": "startSession",
                "responses": {
                    "201": {
                        "description": "Session created",
                        "schema": {"$ref": "#/definitions/Session"}
                    }
                }
            }
        },
        "/sessions/{session_id}": {
            "get": {
                "tags": ["Sessions"],
                "summary": "Get a session",
                "operationId": "getSession",
                "parameters": [
                    {"name": "session_id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {
                        "description": "Current screen state",
                        "schema": {"$ref": "#/definitions/Session"}
                    },
                    "404": {
                        "description": "Session not found",
                        "schema": {"$ref": "#/definitions/ProblemDetails"}
                    }
                }
            }
        },
        "/sessions/{session_id}/answers": {
            "post": {
                "tags": ["Sessions"],
                "summary": "Answer the current question",
                "description": "Records an option for the question at the session's cursor. Multi-select questions toggle options.",
                "operationId": "answerQuestion",
                "parameters": [
                    {"name": "session_id", "in": "path", "required": true, "type": "string"},
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {"option_id": {"type": "string", "example": "26-40"}}
                        }
                    }
                ],
                "responses": {
                    "200": {"description": "Updated session", "schema": {"$ref": "#/definitions/Session"}},
                    "400": {"description": "Option not valid for the current question", "schema": {"$ref": "#/definitions/ProblemDetails"}},
                    "404": {"description": "Session not found", "schema": {"$ref": "#/definitions/ProblemDetails"}},
                    "409": {"description": "No current question at this phase", "schema": {"$ref": "#/definitions/ProblemDetails"}}
                }
            }
        },
        "/sessions/{session_id}:next": {
            "post": {
                "tags": ["Sessions"],
                "summary": "Advance the questionnaire",
                "operationId": "nextQuestion",
                "parameters": [
                    {"name": "session_id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Updated session", "schema": {"$ref": "#/definitions/Session"}},
                    "400": {"description": "Current question unanswered", "schema": {"$ref": "#/definitions/ProblemDetails"}},
                    "409": {"description": "Session already complete", "schema": {"$ref": "#/definitions/ProblemDetails"}}
                }
            }
        },
        "/sessions/{session_id}:back": {
            "post": {
                "tags": ["Sessions"],
                "summary": "Go back one screen",
                "operationId": "previousQuestion",
                "parameters": [
                    {"name": "session_id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Updated session", "schema": {"$ref": "#/definitions/Session"}},
                    "409": {"description": "Already at the first screen", "schema": {"$ref": "#/definitions/ProblemDetails"}}
                }
            }
        },
        "/sessions/{session_id}:restart": {
            "post": {
                "tags": ["Sessions"],
                "summary": "Restart the questionnaire",
                "operationId": "restartSession",
                "parameters": [
                    {"name": "session_id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Reset session", "schema": {"$ref": "#/definitions/Session"}}
                }
            }
        },
        "/sessions/{session_id}/drivers:count": {
            "post": {
                "tags": ["Sessions"],
                "summary": "Set the driver count",
                "description": "Re-materializes the driver list with stable ids driver-1..N. Only valid on the drivers-count phase.",
                "operationId": "setDriverCount",
                "parameters": [
                    {"name": "session_id", "in": "path", "required": true, "type": "string"},
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {"count": {"type": "integer", "minimum": 1, "maximum": 6}}
                        }
                    }
                ],
                "responses": {
                    "200": {"description": "Updated session", "schema": {"$ref": "#/definitions/Session"}},
                    "400": {"description": "Count out of range", "schema": {"$ref": "#/definitions/ProblemDetails"}},
                    "409": {"description": "Wrong phase", "schema": {"$ref": "#/definitions/ProblemDetails"}}
                }
            }
        },
        "/sessions/{session_id}/vehicles:count": {
            "post": {
                "tags": ["Sessions"],
                "summary": "Set the vehicle count",
                "operationId": "setVehicleCount",
                "parameters": [
                    {"name": "session_id", "in": "path", "required": true, "type": "string"},
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {"count": {"type": "integer", "minimum": 1, "maximum": 5}}
                        }
                    }
                ],
                "responses": {
                    "200": {"description": "Updated session", "schema": {"$ref": "#/definitions/Session"}},
                    "400": {"description": "Count out of range", "schema": {"$ref": "#/definitions/ProblemDetails"}},
                    "409": {"description": "Wrong phase", "schema": {"$ref": "#/definitions/ProblemDetails"}}
                }
            }
        },
        "/sessions/{session_id}/estimate": {
            "get": {
                "tags": ["Sessions"],
                "summary": "Live estimate",
                "description": "Recomputes the pricing result from the session's current answers",
                "operationId": "liveEstimate",
                "parameters": [
                    {"name": "session_id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Pricing result", "schema": {"$ref": "#/definitions/PricingResult"}},
                    "404": {"description": "Session not found", "schema": {"$ref": "#/definitions/ProblemDetails"}}
                }
            }
        },
        "/sessions/{session_id}/estimates": {
            "post": {
                "tags": ["Estimates"],
                "summary": "Save an estimate",
                "description": "Persists the pricing result of a completed session. Valid for 7 days.",
                "operationId": "saveEstimate",
                "parameters": [
                    {"name": "session_id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "201": {"description": "Estimate saved", "schema": {"$ref": "#/definitions/Estimate"}},
                    "404": {"description": "Session not found", "schema": {"$ref": "#/definitions/ProblemDetails"}},
                    "409": {"description": "Questionnaire incomplete", "schema": {"$ref": "#/definitions/ProblemDetails"}}
                }
            }
        },
        "/estimates/{estimate_id}": {
            "get": {
                "tags": ["Estimates"],
                "summary": "Get a saved estimate",
                "operationId": "getEstimate",
                "parameters": [
                    {"name": "estimate_id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Saved estimate", "schema": {"$ref": "#/definitions/Estimate"}},
                    "404": {"description": "Estimate not found", "schema": {"$ref": "#/definitions/ProblemDetails"}}
                }
            }
        },
        "/estimates": {
            "get": {
                "tags": ["Estimates"],
                "summary": "List recent estimates",
                "description": "Admin only. Requires the X-API-Key header.",
                "operationId": "listEstimates",
                "parameters": [
                    {"name": "limit", "in": "query", "type": "integer", "default": 20},
                    {"name": "X-API-Key", "in": "header", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {
                        "description": "Most recently saved estimates",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/Estimate"}}
                    },
                    "401": {"description": "Missing or wrong API key", "schema": {"$ref": "#/definitions/ProblemDetails"}}
                }
            }
        },
        "/catalog/questions": {
            "get": {
                "tags": ["Catalog"],
                "summary": "Question tables",
                "operationId": "listQuestions",
                "parameters": [
                    {"name": "category", "in": "query", "type": "string", "enum": ["driver", "vehicle", "policy"]}
                ],
                "responses": {
                    "200": {"description": "Question tables keyed by category"}
                }
            }
        },
        "/catalog/states": {
            "get": {
                "tags": ["Catalog"],
                "summary": "Jurisdiction table",
                "operationId": "listStates",
                "responses": {
                    "200": {"description": "Per-state rating configuration"}
                }
            }
        },
        "/catalog/carriers": {
            "get": {
                "tags": ["Catalog"],
                "summary": "Carrier scoring table",
                "operationId": "listCarriers",
                "responses": {
                    "200": {"description": "Carrier profiles used for recommendations"}
                }
            }
        }
    },
    "definitions": {
        "Session": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "phase": {"type": "string", "enum": ["drivers-count", "driver-details", "vehicles-count", "vehicle-details", "policy", "results"]},
                "drivers": {"type": "array", "items": {"$ref": "#/definitions/Entity"}},
                "vehicles": {"type": "array", "items": {"$ref": "#/definitions/Entity"}},
                "active_driver_id": {"type": "string"},
                "active_vehicle_id": {"type": "string"},
                "question": {"type": "object"},
                "answer": {"type": "array", "items": {"type": "string"}},
                "can_continue": {"type": "boolean"},
                "progress": {
                    "type": "object",
                    "properties": {
                        "completed": {"type": "integer"},
                        "total": {"type": "integer"}
                    }
                },
                "created_at": {"type": "string", "format": "date-time"},
                "updated_at": {"type": "string", "format": "date-time"}
            }
        },
        "Entity": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "example": "driver-1"},
                "primary": {"type": "boolean"},
                "answered": {"type": "integer"}
            }
        },
        "PricingResult": {
            "type": "object",
            "properties": {
                "monthly_premium": {"type": "integer", "example": 182},
                "annual_premium": {"type": "integer", "example": 2184},
                "risk_tier": {"type": "string", "enum": ["preferred", "standard", "non-standard", "high-risk"]},
                "sr22_required": {"type": "boolean"},
                "breakdown": {"type": "object"},
                "carrier_recommendations": {"type": "array", "items": {"type": "object"}},
                "high_risk_drivers": {"type": "array", "items": {"type": "string"}},
                "per_vehicle_premiums": {"type": "array", "items": {"type": "object"}},
                "per_driver_impact": {"type": "array", "items": {"type": "object"}}
            }
        },
        "Estimate": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "session_id": {"type": "string"},
                "state": {"type": "string", "example": "OK"},
                "driver_count": {"type": "integer"},
                "vehicle_count": {"type": "integer"},
                "result": {"$ref": "#/definitions/PricingResult"},
                "status": {"type": "string", "enum": ["active", "expired"]},
                "created_at": {"type": "string", "format": "date-time"},
                "expires_at": {"type": "string", "format": "date-time"}
            }
        },
        "ProblemDetails": {
            "type": "object",
            "description": "RFC 7807 Problem Details",
            "properties": {
                "type": {"type": "string", "example": "about:blank"},
                "title": {"type": "string", "example": "Not Found"},
                "status": {"type": "integer", "example": 404},
                "detail": {"type": "string", "example": "Resource not found"}
            }
        }
    },
    "tags": [
        {"name": "Sessions", "description": "Questionnaire sessions and navigation"},
        {"name": "Estimates", "description": "Saved pricing snapshots"},
        {"name": "Catalog", "description": "Static question, state and carrier tables"}
    ]
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{"http", "https"},
	Title:            "Premium Estimator API",
	Description:      "Car insurance premium estimator backing the quote widget",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
