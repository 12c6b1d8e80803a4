// Package docs holds the swagger document served at /swagger.
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
        "/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login",
                "description": "Login with email and password, returns the auth token",
                "parameters": [
                    {
                        "description": "Login request",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.LoginRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.LoginResponse"}},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/users": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Create a user",
                "parameters": [
                    {
                        "description": "User creation request",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.CreateUserRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.UserResponse"}},
                    "409": {"description": "Conflict"}
                }
            }
        },
        "/bills": {
            "get": {
                "produces": ["application/json"],
                "tags": ["bills"],
                "summary": "List bills",
                "security": [{"Bearer": []}],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.BillResponse"}}
                    },
                    "401": {"description": "Unauthorized"}
                }
            },
            "post": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["bills"],
                "summary": "Upload a receipt and open a draft bill",
                "security": [{"Bearer": []}],
                "parameters": [
                    {"type": "file", "description": "Receipt image (jpg, jpeg or png)", "name": "file", "in": "formData", "required": true},
                    {"type": "string", "description": "Owner email", "name": "email", "in": "formData"}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.CreateBillResponse"}},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/bills/{id}": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["bills"],
                "summary": "Finalize or review a bill",
                "security": [{"Bearer": []}],
                "parameters": [
                    {"type": "string", "description": "Bill key", "name": "id", "in": "path", "required": true},
                    {
                        "description": "Bill fields",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.UpdateBillRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.BillResponse"}},
                    "403": {"description": "Forbidden"},
                    "404": {"description": "Not Found"}
                }
            }
        }
    },
    "definitions": {
        "dto.LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "dto.LoginResponse": {
            "type": "object",
            "properties": {"jwt": {"type": "string"}}
        },
        "dto.CreateUserRequest": {
            "type": "object",
            "required": ["type", "name", "email", "password"],
            "properties": {
                "type": {"type": "string", "enum": ["Employee", "Admin"]},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "dto.UserResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "type": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string"}
            }
        },
        "dto.CreateBillResponse": {
            "type": "object",
            "properties": {
                "fileUrl": {"type": "string"},
                "key": {"type": "string"}
            }
        },
        "dto.UpdateBillRequest": {
            "type": "object",
            "required": ["email", "type", "name", "date"],
            "properties": {
                "email": {"type": "string"},
                "type": {"type": "string"},
                "name": {"type": "string"},
                "date": {"type": "string"},
                "amount": {"type": "integer"},
                "vat": {"type": "string"},
                "pct": {"type": "integer"},
                "commentary": {"type": "string"},
                "fileUrl": {"type": "string"},
                "fileName": {"type": "string"},
                "status": {"type": "string", "enum": ["pending", "accepted", "refused"]},
                "commentAdmin": {"type": "string"}
            }
        },
        "dto.BillResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "email": {"type": "string"},
                "type": {"type": "string"},
                "name": {"type": "string"},
                "date": {"type": "string"},
                "amount": {"type": "integer"},
                "vat": {"type": "string"},
                "pct": {"type": "integer"},
                "commentary": {"type": "string"},
                "fileUrl": {"type": "string"},
                "fileName": {"type": "string"},
                "status": {"type": "string"},
                "commentAdmin": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "Bearer": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header",
            "description": "Type \"Bearer\" followed by a space and JWT token."
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Billed API",
	Description:      "Expense-report gateway: bill upload, finalization, listing and auth",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
