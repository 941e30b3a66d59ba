// Package docs registers the OpenAPI document served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/job-orders": {
            "get": {
                "summary": "List job orders filtered by creation date",
                "parameters": [
                    {"name": "from_date", "in": "query", "type": "string", "format": "date"},
                    {"name": "to_date", "in": "query", "type": "string", "format": "date"},
                    {"name": "status", "in": "query", "type": "string", "enum": ["pending", "in_progress", "completed", "delivered", "all"]},
                    {"name": "customer_id", "in": "query", "type": "integer"},
                    {"name": "payment_method", "in": "query", "type": "string", "enum": ["cash", "card", "split"]},
                    {"name": "search", "in": "query", "type": "string"},
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/JobOrder"}}}}
            },
            "post": {
                "summary": "Create a job order with its items and measurements",
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"type": "object"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/JobOrder"}},
                    "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/Error"}},
                    "404": {"description": "Customer not found", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/job-orders/stats": {
            "get": {"summary": "Counts and sums over the filtered orders", "responses": {"200": {"description": "OK"}}}
        },
        "/job-orders/recent": {
            "get": {"summary": "Newest job orders", "responses": {"200": {"description": "OK"}}}
        },
        "/job-orders/deliveries": {
            "get": {"summary": "List job orders filtered by delivery date", "responses": {"200": {"description": "OK"}}}
        },
        "/job-orders/{id}": {
            "get": {"summary": "Composite view of a job order", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/JobOrder"}}, "404": {"description": "Not found"}}},
            "put": {"summary": "Partial update", "responses": {"200": {"description": "OK"}}},
            "patch": {"summary": "Partial update", "responses": {"200": {"description": "OK"}}},
            "delete": {"summary": "Soft delete", "responses": {"204": {"description": "Deleted"}}}
        },
        "/job-orders/{id}/status": {
            "post": {"summary": "Change the status only", "responses": {"200": {"description": "OK"}}}
        },
        "/job-orders/{id}/delivery": {
            "post": {"summary": "Record money received on delivery", "responses": {"200": {"description": "OK"}}}
        },
        "/job-orders/{id}/toggle-block": {
            "post": {"summary": "Flip the blocked flag", "responses": {"200": {"description": "OK"}}}
        },
        "/job-orders/{id}/items": {
            "get": {"summary": "Active items of a job order", "responses": {"200": {"description": "OK"}}}
        },
        "/job-orders/{id}/measurements": {
            "get": {"summary": "Active measurements of a job order", "responses": {"200": {"description": "OK"}}}
        },
        "/customers": {"post": {"summary": "Register a customer", "responses": {"201": {"description": "Created"}}}},
        "/materials": {"post": {"summary": "Add a catalog material", "responses": {"201": {"description": "Created"}}}},
        "/receipts": {"post": {"summary": "Record a payment receipt", "responses": {"201": {"description": "Created"}}}},
        "/sales": {"post": {"summary": "Record a counter sale", "responses": {"201": {"description": "Created"}}}}
    },
    "definitions": {
        "Error": {
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "message": {"type": "string"},
                "details": {"type": "array", "items": {"type": "object", "properties": {"field": {"type": "string"}, "message": {"type": "string"}}}}
            }
        },
        "JobOrder": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "job_order_number": {"type": "string"},
                "customer": {"type": "integer"},
                "customer_id": {"type": "string"},
                "customer_name": {"type": "string"},
                "customer_phone": {"type": "string"},
                "status": {"type": "string"},
                "delivery_date": {"type": "string", "format": "date-time"},
                "total_amount": {"type": "string"},
                "advance_amount": {"type": "string"},
                "balance_amount": {"type": "string"},
                "received_on_delivery_amount": {"type": "string"},
                "payment_method": {"type": "string"},
                "cash_amount": {"type": "string"},
                "card_amount": {"type": "string"},
                "remarks": {"type": "string"},
                "is_active": {"type": "boolean"},
                "is_blocked": {"type": "boolean"},
                "job_order_items": {"type": "array", "items": {"type": "object"}},
                "job_order_measurements": {"type": "array", "items": {"type": "object"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Atelier API",
	Description:      "Job orders, customers, materials, receipts and sales of a tailoring shop.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
