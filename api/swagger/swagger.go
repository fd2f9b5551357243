package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Colonia de Verano API",
        "description": "Enrollment form, coordinators' dashboard and spreadsheet export for the summer day camp",
        "version": "1.0.0"
    },
    "basePath": "/api",
    "schemes": ["http", "https"],
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "tags": [
        {"name": "Registration", "description": "Public enrollment form"},
        {"name": "Authentication", "description": "Administrator sign-in"},
        {"name": "Admin", "description": "Coordinators' dashboard"}
    ],
    "paths": {
        "/registration": {
            "post": {
                "tags": ["Registration"],
                "summary": "Submit an enrollment",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RegistrationRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/SubmitResponse"}},
                    "400": {"description": "Invalid form", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "500": {"description": "Store failure", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/registration/weeks": {
            "get": {
                "tags": ["Registration"],
                "summary": "List camp weeks",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/WeeksResponse"}}
                }
            }
        },
        "/admin/login": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Authenticate an administrator",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/LoginResponse"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "403": {"description": "Inactive account", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/admin/registrations": {
            "get": {
                "tags": ["Admin"],
                "summary": "List registrations, newest first",
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/RegistrationsResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "500": {"description": "Store failure", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/admin/export": {
            "get": {
                "tags": ["Admin"],
                "summary": "Download registrations",
                "security": [{"BearerAuth": []}],
                "produces": [
                    "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
                    "text/csv",
                    "application/pdf"
                ],
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["xlsx", "csv", "pdf"], "default": "xlsx"}
                ],
                "responses": {
                    "200": {"description": "Attachment named Registros_Colonia_AMM_<YYYY-MM-DD>.<format>", "schema": {"type": "file"}},
                    "400": {"description": "Unsupported format", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/admin/me": {
            "get": {
                "tags": ["Admin"],
                "summary": "Current administrator",
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "EmergencyContact": {
            "type": "object",
            "required": ["name", "phone", "relationship"],
            "properties": {
                "name": {"type": "string"},
                "phone": {"type": "string"},
                "relationship": {"type": "string"}
            }
        },
        "AuthorizedPerson": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "relationship": {"type": "string"},
                "phone": {"type": "string"},
                "dni": {"type": "string"}
            }
        },
        "RegistrationRequest": {
            "type": "object",
            "required": [
                "childName", "childLastName", "birthdate", "age", "dni", "schoolGrade",
                "parentName", "parentLastName", "relationship", "phone", "email", "address",
                "healthInsurance", "affiliateNumber", "emergencyContact", "weeks"
            ],
            "properties": {
                "childName": {"type": "string"},
                "childLastName": {"type": "string"},
                "birthdate": {"type": "string", "example": "2019-05-04"},
                "age": {"type": "integer", "minimum": 3, "maximum": 12},
                "dni": {"type": "string"},
                "schoolGrade": {"type": "string"},
                "parentName": {"type": "string"},
                "parentLastName": {"type": "string"},
                "relationship": {"type": "string", "enum": ["Madre", "Padre", "Tutor/a", "Otro"]},
                "phone": {"type": "string"},
                "email": {"type": "string"},
                "address": {"type": "string"},
                "healthInsurance": {"type": "string"},
                "affiliateNumber": {"type": "string"},
                "allergies": {"type": "string"},
                "medications": {"type": "string"},
                "specialDiet": {"type": "string"},
                "emergencyContact": {"$ref": "#/definitions/EmergencyContact"},
                "weeks": {"type": "array", "minItems": 1, "items": {"type": "string"}},
                "mealPlan": {"type": "boolean"},
                "dietaryRestrictions": {"type": "string"},
                "authorizedPersons": {"type": "array", "items": {"$ref": "#/definitions/AuthorizedPerson"}},
                "additionalInfo": {"type": "string"},
                "photoConsent": {"type": "boolean"}
            }
        },
        "Registration": {
            "allOf": [
                {"$ref": "#/definitions/RegistrationRequest"},
                {
                    "type": "object",
                    "properties": {
                        "id": {"type": "string"},
                        "createdAt": {"type": "string", "format": "date-time"}
                    }
                }
            ]
        },
        "SubmitResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "id": {"type": "string"}
            }
        },
        "WeeksResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "weeks": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {"label": {"type": "string"}, "order": {"type": "integer"}}
                    }
                }
            }
        },
        "RegistrationsResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "registrations": {"type": "array", "items": {"$ref": "#/definitions/Registration"}}
            }
        },
        "LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "LoginResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "token": {"type": "string"},
                "expiresIn": {"type": "integer"},
                "user": {
                    "type": "object",
                    "properties": {
                        "id": {"type": "string"},
                        "email": {"type": "string"},
                        "fullName": {"type": "string"}
                    }
                }
            }
        },
        "ErrorEnvelope": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "code": {"type": "string"},
                "message": {"type": "string"},
                "error": {"type": "string"},
                "fields": {"type": "object", "additionalProperties": {"type": "string"}}
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
