// Package docs holds the OpenAPI description served at /swagger/. It is kept
// by hand in the layout swag init produces, so swag.Register can serve it.
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
        "/beer": {
            "get": {
                "description": "Get a page of beers, optionally filtered by name and style",
                "produces": ["application/json"],
                "tags": ["Beers"],
                "summary": "List beers",
                "parameters": [
                    {"type": "integer", "default": 0, "description": "Zero-based page number", "name": "pageNumber", "in": "query"},
                    {"type": "integer", "default": 25, "description": "Page size", "name": "pageSize", "in": "query"},
                    {"type": "string", "description": "Case-insensitive name filter", "name": "beerName", "in": "query"},
                    {
                        "enum": ["LAGER", "PILSNER", "STOUT", "GOSE", "PORTER", "ALE", "WHEAT", "IPA", "PALE_ALE", "SAISON"],
                        "type": "string",
                        "description": "Beer style",
                        "name": "beerStyle",
                        "in": "query"
                    },
                    {"type": "boolean", "default": false, "description": "Include quantity on hand", "name": "showInventoryOnHand", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.BeerPagedList"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            },
            "post": {
                "description": "Create a beer; the new resource is referenced by the Location header",
                "consumes": ["application/json"],
                "tags": ["Beers"],
                "summary": "Create a beer",
                "parameters": [
                    {"description": "Create Beer Request", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateBeerRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "headers": {"Location": {"type": "string", "description": "URL of the new beer"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorBody"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            }
        },
        "/beer/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Beers"],
                "summary": "Get beer by ID",
                "parameters": [
                    {"type": "string", "description": "Beer ID", "name": "id", "in": "path", "required": true},
                    {"type": "boolean", "default": false, "description": "Include quantity on hand", "name": "showInventoryOnHand", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.BeerResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorBody"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            },
            "put": {
                "description": "Replace name, style, UPC, price and quantity of the beer identified by the path",
                "consumes": ["application/json"],
                "tags": ["Beers"],
                "summary": "Update a beer",
                "parameters": [
                    {"type": "string", "description": "Beer ID", "name": "id", "in": "path", "required": true},
                    {"description": "Update Beer Request", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateBeerRequest"}}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorBody"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.ErrorBody"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            },
            "delete": {
                "description": "Delete a beer; deleting an unknown beer also succeeds",
                "tags": ["Beers"],
                "summary": "Delete a beer",
                "parameters": [
                    {"type": "string", "description": "Beer ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            }
        },
        "/beer/{id}/history": {
            "get": {
                "description": "Audit entries recorded for a beer, oldest first",
                "produces": ["application/json"],
                "tags": ["Beers"],
                "summary": "Get beer history",
                "parameters": [
                    {"type": "string", "description": "Beer ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.AuditLogListResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            }
        },
        "/beerUpc/{upc}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Beers"],
                "summary": "Get beer by UPC",
                "parameters": [
                    {"type": "string", "description": "Beer UPC", "name": "upc", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.BeerResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            }
        }
    },
    "definitions": {
        "dto.AuditLogListResponse": {
            "type": "object",
            "properties": {
                "logs": {"type": "array", "items": {"$ref": "#/definitions/dto.AuditLogResponse"}},
                "total": {"type": "integer"}
            }
        },
        "dto.AuditLogResponse": {
            "type": "object",
            "properties": {
                "action": {"type": "string"},
                "createdAt": {"type": "string"},
                "entityId": {"type": "string"},
                "id": {"type": "integer"},
                "metadata": {"type": "object", "additionalProperties": true}
            }
        },
        "dto.BeerPagedList": {
            "type": "object",
            "properties": {
                "content": {"type": "array", "items": {"$ref": "#/definitions/dto.BeerResponse"}},
                "empty": {"type": "boolean"},
                "first": {"type": "boolean"},
                "last": {"type": "boolean"},
                "number": {"type": "integer"},
                "numberOfElements": {"type": "integer"},
                "size": {"type": "integer"},
                "totalElements": {"type": "integer"},
                "totalPages": {"type": "integer"}
            }
        },
        "dto.BeerResponse": {
            "type": "object",
            "properties": {
                "beerName": {"type": "string"},
                "beerStyle": {"type": "string"},
                "createdDate": {"type": "string"},
                "id": {"type": "string"},
                "lastUpdatedDate": {"type": "string"},
                "price": {"type": "number"},
                "quantityOnHand": {"type": "integer"},
                "upc": {"type": "string"}
            }
        },
        "dto.CreateBeerRequest": {
            "type": "object",
            "required": ["beerName", "beerStyle", "price", "upc"],
            "properties": {
                "beerName": {"type": "string", "maxLength": 100},
                "beerStyle": {"type": "string"},
                "price": {"type": "number", "minimum": 0},
                "quantityOnHand": {"type": "integer", "minimum": 0},
                "upc": {"type": "string", "maxLength": 13, "minLength": 12, "pattern": "^[0-9]+$"}
            }
        },
        "dto.UpdateBeerRequest": {
            "type": "object",
            "required": ["beerName", "beerStyle", "price", "upc"],
            "properties": {
                "beerName": {"type": "string", "maxLength": 100},
                "beerStyle": {"type": "string"},
                "price": {"type": "number", "minimum": 0},
                "quantityOnHand": {"type": "integer", "minimum": 0},
                "upc": {"type": "string", "maxLength": 13, "minLength": 12, "pattern": "^[0-9]+$"}
            }
        },
        "response.ErrorBody": {
            "type": "object",
            "properties": {
                "errors": {},
                "message": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "BREWERY API",
	Description:      "Beer inventory REST API",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
