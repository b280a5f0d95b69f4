// Package docs registers the OpenAPI description served at /swagger/.
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
        "/healthz": {
            "get": {"summary": "Health check", "responses": {"200": {"description": "OK"}}}
        },
        "/categories": {
            "get": {
                "produces": ["application/json"],
                "summary": "List categories",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"type": "string"}}}}
            }
        },
        "/menu": {
            "get": {
                "produces": ["application/json"],
                "summary": "Home screen",
                "parameters": [{"type": "string", "description": "Category to select", "name": "category", "in": "query"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/screen.HomeView"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            }
        },
        "/products/{id}": {
            "get": {
                "produces": ["application/json"],
                "summary": "Get product",
                "parameters": [{"type": "string", "description": "Product ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/catalog.Item"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            }
        },
        "/cart": {
            "get": {
                "produces": ["application/json"],
                "summary": "Cart screen",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/screen.CartView"}}}
            },
            "delete": {
                "produces": ["application/json"],
                "summary": "Clear cart",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/screen.CartView"}}}
            }
        },
        "/cart/items": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Add item",
                "parameters": [{"description": "Product", "name": "item", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.addItemRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/screen.CartView"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            }
        },
        "/cart/items/{id}": {
            "delete": {
                "produces": ["application/json"],
                "summary": "Remove item",
                "parameters": [
                    {"type": "string", "description": "Product ID", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "confirm or cancel", "name": "choice", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/screen.CartView"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.errorResponse"}},
                    "428": {"description": "Precondition Required", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            }
        },
        "/cart/address": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Set delivery address",
                "parameters": [{"description": "Address", "name": "address", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.addressRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/screen.CartView"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            }
        },
        "/orders": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Submit order",
                "parameters": [{"description": "Order", "name": "order", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.orderRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/checkout.Outcome"}},
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/checkout.Outcome"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.errorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/api.errorResponse"}},
                    "428": {"description": "Precondition Required", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "api.addItemRequest": {"type": "object", "properties": {"product_id": {"type": "string"}}},
        "api.addressRequest": {"type": "object", "properties": {"address": {"type": "string"}}},
        "api.orderRequest": {"type": "object", "properties": {"address": {"type": "string"}, "choice": {"type": "string"}}},
        "api.errorResponse": {"type": "object", "properties": {"error": {"type": "string"}, "prompt": {"$ref": "#/definitions/dialog.Prompt"}}},
        "dialog.Prompt": {"type": "object", "properties": {"title": {"type": "string"}, "message": {"type": "string"}}},
        "catalog.Item": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "price": {"type": "integer"},
                "thumbnail": {"type": "string"},
                "category": {"type": "string"},
                "ingredients": {"type": "array", "items": {"type": "string"}}
            }
        },
        "cart.LineItem": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "price": {"type": "integer"},
                "thumbnail": {"type": "string"},
                "quantity": {"type": "integer"}
            }
        },
        "screen.CategoryButton": {"type": "object", "properties": {"title": {"type": "string"}, "selected": {"type": "boolean"}}},
        "screen.HomeView": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "cart_quantity": {"type": "integer"},
                "categories": {"type": "array", "items": {"$ref": "#/definitions/screen.CategoryButton"}},
                "selected": {"type": "string"},
                "products": {"type": "array", "items": {"$ref": "#/definitions/catalog.Item"}}
            }
        },
        "screen.Line": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "quantity": {"type": "integer"},
                "price": {"type": "string"},
                "subtotal": {"type": "string"},
                "thumbnail": {"type": "string"}
            }
        },
        "screen.CartView": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "lines": {"type": "array", "items": {"$ref": "#/definitions/screen.Line"}},
                "empty": {"type": "boolean"},
                "empty_message": {"type": "string"},
                "total": {"type": "string"},
                "address": {"type": "string"}
            }
        },
        "checkout.Order": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "address": {"type": "string"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/cart.LineItem"}},
                "total": {"type": "integer"},
                "summary": {"type": "string"},
                "placed_at": {"type": "string"}
            }
        },
        "checkout.Outcome": {
            "type": "object",
            "properties": {
                "submitted": {"type": "boolean"},
                "order": {"$ref": "#/definitions/checkout.Order"},
                "prompt": {"$ref": "#/definitions/dialog.Prompt"},
                "navigate_back": {"type": "boolean"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Food Order API",
	Description:      "Menu and cart screens for the food-ordering app",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
