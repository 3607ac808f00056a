// Package docs holds the OpenAPI description served at /swagger.
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
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "Healthy", "schema": {"$ref": "#/definitions/dto.HealthResponse"}},
                    "503": {"description": "Database unreachable", "schema": {"$ref": "#/definitions/dto.HealthResponse"}}
                }
            }
        },
        "/users": {
            "get": {
                "security": [{"BasicAuth": []}],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Get the current user",
                "description": "Returns the user whose credentials authenticated the request",
                "responses": {
                    "200": {"description": "Current user", "schema": {"$ref": "#/definitions/dto.UserResponse"}},
                    "400": {"description": "User not found", "schema": {"$ref": "#/definitions/dto.MessageResponse"}},
                    "401": {"description": "Access Denied", "schema": {"$ref": "#/definitions/dto.MessageResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.MessageResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "tags": ["users"],
                "summary": "Create a user",
                "description": "Registers a new user. The password is stored as a bcrypt hash.",
                "parameters": [
                    {"description": "User information", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateUserRequest"}}
                ],
                "responses": {
                    "201": {"description": "User created, Location is /"},
                    "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/dto.ValidationErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.MessageResponse"}}
                }
            }
        },
        "/courses": {
            "get": {
                "produces": ["application/json"],
                "tags": ["courses"],
                "summary": "List courses",
                "description": "Lists every course with its owner",
                "responses": {
                    "200": {"description": "Courses", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.CourseResponse"}}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.MessageResponse"}}
                }
            },
            "post": {
                "security": [{"BasicAuth": []}],
                "consumes": ["application/json"],
                "tags": ["courses"],
                "summary": "Create a course",
                "description": "Creates a course owned by the user named in userId",
                "parameters": [
                    {"description": "Course information", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CourseRequest"}}
                ],
                "responses": {
                    "201": {"description": "Course created, Location is /courses/{id}"},
                    "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/dto.ValidationErrorResponse"}},
                    "401": {"description": "Access Denied", "schema": {"$ref": "#/definitions/dto.MessageResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.MessageResponse"}}
                }
            }
        },
        "/courses/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["courses"],
                "summary": "Get a course",
                "description": "Returns a course with its owner",
                "parameters": [
                    {"minimum": 1, "type": "integer", "format": "int64", "description": "Course ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Course", "schema": {"$ref": "#/definitions/dto.CourseResponse"}},
                    "404": {"description": "Course not found", "schema": {"$ref": "#/definitions/dto.MessageResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.MessageResponse"}}
                }
            },
            "put": {
                "security": [{"BasicAuth": []}],
                "consumes": ["application/json"],
                "tags": ["courses"],
                "summary": "Update a course",
                "description": "Updates title, description and optional fields. The owner cannot be changed.",
                "parameters": [
                    {"minimum": 1, "type": "integer", "format": "int64", "description": "Course ID", "name": "id", "in": "path", "required": true},
                    {"description": "Course information", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CourseRequest"}}
                ],
                "responses": {
                    "204": {"description": "Course updated"},
                    "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/dto.ValidationErrorResponse"}},
                    "401": {"description": "Access Denied", "schema": {"$ref": "#/definitions/dto.MessageResponse"}},
                    "403": {"description": "Not the owner", "schema": {"$ref": "#/definitions/dto.MessageResponse"}},
                    "404": {"description": "Course not found", "schema": {"$ref": "#/definitions/dto.MessageResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.MessageResponse"}}
                }
            },
            "delete": {
                "security": [{"BasicAuth": []}],
                "tags": ["courses"],
                "summary": "Delete a course",
                "parameters": [
                    {"minimum": 1, "type": "integer", "format": "int64", "description": "Course ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "Course deleted"},
                    "401": {"description": "Access Denied", "schema": {"$ref": "#/definitions/dto.MessageResponse"}},
                    "403": {"description": "Not the owner", "schema": {"$ref": "#/definitions/dto.MessageResponse"}},
                    "404": {"description": "Course not found", "schema": {"$ref": "#/definitions/dto.MessageResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.MessageResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.CourseRequest": {
            "type": "object",
            "required": ["description", "title", "userId"],
            "properties": {
                "description": {"type": "string", "example": "High-end furniture projects are great to dream about."},
                "estimatedTime": {"type": "string", "example": "12 hours"},
                "materialsNeeded": {"type": "string", "example": "* 1/2 x 3/4 inch parting strip"},
                "title": {"type": "string", "example": "Build a Basic Bookcase"},
                "userId": {"type": "integer", "example": 1}
            }
        },
        "dto.CourseResponse": {
            "type": "object",
            "properties": {
                "description": {"type": "string"},
                "estimatedTime": {"type": "string", "example": "12 hours"},
                "id": {"type": "integer", "example": 1},
                "materialsNeeded": {"type": "string"},
                "title": {"type": "string", "example": "Build a Basic Bookcase"},
                "user": {"$ref": "#/definitions/dto.UserResponse"},
                "userId": {"type": "integer", "example": 1}
            }
        },
        "dto.CreateUserRequest": {
            "type": "object",
            "required": ["emailAddress", "firstName", "lastName", "password"],
            "properties": {
                "emailAddress": {"type": "string", "example": "joe@smith.com"},
                "firstName": {"type": "string", "example": "Joe"},
                "lastName": {"type": "string", "example": "Smith"},
                "password": {"type": "string", "example": "password"}
            }
        },
        "dto.HealthResponse": {
            "type": "object",
            "properties": {
                "database": {"type": "string", "example": "ok"},
                "status": {"type": "string", "example": "ok"}
            }
        },
        "dto.MessageResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "string", "example": "AUTH_008"},
                "message": {"type": "string", "example": "Access Denied"}
            }
        },
        "dto.UserResponse": {
            "type": "object",
            "properties": {
                "emailAddress": {"type": "string", "example": "joe@smith.com"},
                "firstName": {"type": "string", "example": "Joe"},
                "id": {"type": "integer", "example": 1},
                "lastName": {"type": "string", "example": "Smith"}
            }
        },
        "dto.ValidationErrorResponse": {
            "type": "object",
            "properties": {
                "errors": {"type": "array", "items": {"type": "string"}, "example": ["Please provide a title"]}
            }
        }
    },
    "securityDefinitions": {
        "BasicAuth": {
            "type": "basic"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Course Catalog API",
	Description:      "Users and courses with per-request basic auth and owner-only course changes.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
