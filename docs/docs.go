// Package docs registers the OpenAPI document served under /swagger/.
// Regenerate with: swag init -g cmd/shopfront/docs.go -o docs
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
                "tags": ["Health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"},
                    "503": {"description": "Store unreachable"}
                }
            }
        },
        "/products/search": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Catalog"],
                "summary": "Search products",
                "parameters": [
                    {"type": "string", "name": "keyword", "in": "query"},
                    {"type": "number", "name": "min_price", "in": "query"},
                    {"type": "number", "name": "max_price", "in": "query"},
                    {"type": "number", "name": "min_rating", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.ProductSearchResult"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpserver.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/httpserver.ErrorResponse"}}
                }
            }
        },
        "/users/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Customers"],
                "summary": "List customers",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Customer"}}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Customers"],
                "summary": "Create customer",
                "parameters": [
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.createCustomerRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Customer"}},
                    "400": {"description": "Invalid payload or duplicated email", "schema": {"$ref": "#/definitions/httpserver.ErrorResponse"}}
                }
            }
        },
        "/users/{id}/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Customers"],
                "summary": "Retrieve customer",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Customer"}},
                    "404": {"description": "Customer not found", "schema": {"$ref": "#/definitions/httpserver.ErrorResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Customers"],
                "summary": "Update customer",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.updateCustomerRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Customer"}},
                    "400": {"description": "Invalid payload or duplicated email", "schema": {"$ref": "#/definitions/httpserver.ErrorResponse"}},
                    "404": {"description": "Customer not found", "schema": {"$ref": "#/definitions/httpserver.ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["Customers"],
                "summary": "Delete customer",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "Customer removed"},
                    "404": {"description": "Customer not found", "schema": {"$ref": "#/definitions/httpserver.ErrorResponse"}}
                }
            }
        },
        "/users/{id}/favorites/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Favorites"],
                "summary": "List favorites",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Favorite"}}},
                    "404": {"description": "Customer not found", "schema": {"$ref": "#/definitions/httpserver.ErrorResponse"}},
                    "503": {"description": "External product service unavailable", "schema": {"$ref": "#/definitions/httpserver.ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Favorites"],
                "summary": "Add favorite",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.addFavoriteRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Favorite"}},
                    "400": {"description": "Invalid payload or favorite already registered", "schema": {"$ref": "#/definitions/httpserver.ErrorResponse"}},
                    "404": {"description": "Customer or product not found", "schema": {"$ref": "#/definitions/httpserver.ErrorResponse"}},
                    "503": {"description": "External product service unavailable", "schema": {"$ref": "#/definitions/httpserver.ErrorResponse"}}
                }
            }
        },
        "/users/{id}/favorites/{product_id}/": {
            "delete": {
                "tags": ["Favorites"],
                "summary": "Remove favorite",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "name": "product_id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "Favorite removed"},
                    "404": {"description": "Favorite not found", "schema": {"$ref": "#/definitions/httpserver.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "domain.Customer": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "email": {"type": "string"}
            }
        },
        "domain.ProductRating": {
            "type": "object",
            "properties": {
                "rate": {"type": "number"},
                "count": {"type": "integer"}
            }
        },
        "domain.Favorite": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "customer_id": {"type": "integer"},
                "product_id": {"type": "integer"},
                "title": {"type": "string"},
                "image": {"type": "string"},
                "price": {"type": "number"},
                "review": {"$ref": "#/definitions/domain.ProductRating"},
                "created_at": {"type": "string"}
            }
        },
        "domain.ProductSearchResult": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "price": {"type": "number"},
                "rating": {"type": "number"},
                "image": {"type": "string"}
            }
        },
        "http.createCustomerRequest": {
            "type": "object",
            "required": ["name", "email", "password"],
            "properties": {
                "name": {"type": "string", "maxLength": 255},
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "http.updateCustomerRequest": {
            "type": "object",
            "required": ["name", "email"],
            "properties": {
                "name": {"type": "string", "maxLength": 255},
                "email": {"type": "string"}
            }
        },
        "http.addFavoriteRequest": {
            "type": "object",
            "required": ["product_id"],
            "properties": {
                "product_id": {"type": "integer", "minimum": 1}
            }
        },
        "httpserver.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "details": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8000",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Shopfront API",
	Description:      "Product search, customers and favorite products",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
