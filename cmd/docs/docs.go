// Package docs registers the OpenAPI description served under /swagger.
//
// The generic document routes carry no swag annotations, so this template is
// maintained by hand alongside the handlers rather than by swag init.
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
        "/accounts": {
            "get": {"security": [{"BearerAuth": []}], "produces": ["application/json"], "tags": ["accounts"], "summary": "List accounts", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "consumes": ["application/json"], "produces": ["application/json"], "tags": ["accounts"], "summary": "Create a new account", "responses": {"201": {"description": "Created"}, "400": {"description": "Invalid input or unknown parent"}, "409": {"description": "Code already in use"}}}
        },
        "/accounts/resolve": {
            "get": {"security": [{"BearerAuth": []}], "produces": ["application/json"], "tags": ["accounts"], "summary": "Resolve an account by code or name", "parameters": [{"type": "string", "name": "q", "in": "query", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "No such account"}}}
        },
        "/accounts/{accountID}": {
            "get": {"security": [{"BearerAuth": []}], "produces": ["application/json"], "tags": ["accounts"], "summary": "Get an account by ID", "parameters": [{"type": "integer", "name": "accountID", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Account not found"}}},
            "put": {"security": [{"BearerAuth": []}], "consumes": ["application/json"], "produces": ["application/json"], "tags": ["accounts"], "summary": "Update an account", "parameters": [{"type": "integer", "name": "accountID", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["accounts"], "summary": "Delete an account", "parameters": [{"type": "integer", "name": "accountID", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}, "409": {"description": "Account is in use"}}}
        },
        "/accounts/{accountID}/balance": {
            "get": {"security": [{"BearerAuth": []}], "produces": ["application/json"], "tags": ["accounts"], "summary": "Get the balance of an account", "parameters": [{"type": "integer", "name": "accountID", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/accounts/{accountID}/children": {
            "get": {"security": [{"BearerAuth": []}], "produces": ["application/json"], "tags": ["accounts"], "summary": "List the direct children of an account", "parameters": [{"type": "integer", "name": "accountID", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/accounts/{accountID}/ledger": {
            "get": {"security": [{"BearerAuth": []}], "produces": ["application/json"], "tags": ["accounts"], "summary": "Ledger of one account", "parameters": [{"type": "integer", "name": "accountID", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/journal-entries": {
            "get": {"security": [{"BearerAuth": []}], "produces": ["application/json"], "tags": ["journal"], "summary": "List journal entries", "parameters": [{"type": "integer", "default": 20, "name": "limit", "in": "query"}, {"type": "string", "name": "nextToken", "in": "query"}], "responses": {"200": {"description": "OK"}}}
        },
        "/journal-entries/{entryID}": {
            "get": {"security": [{"BearerAuth": []}], "produces": ["application/json"], "tags": ["journal"], "summary": "Get a journal entry", "parameters": [{"type": "integer", "name": "entryID", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Entry not found"}}}
        },
        "/vendor-invoices": {
            "get": {"security": [{"BearerAuth": []}], "produces": ["application/json"], "tags": ["documents"], "summary": "List vendor invoices", "parameters": [{"type": "integer", "default": 20, "name": "limit", "in": "query"}, {"type": "string", "name": "nextToken", "in": "query"}, {"type": "integer", "name": "vendorID", "in": "query", "description": "Only documents of this vendor"}, {"type": "integer", "name": "departmentID", "in": "query", "description": "Only documents of this department"}], "responses": {"200": {"description": "OK"}, "400": {"description": "Invalid paging or filter parameters"}}},
            "post": {"security": [{"BearerAuth": []}], "consumes": ["application/json"], "produces": ["application/json"], "tags": ["documents"], "summary": "Create and post a vendor invoice", "responses": {"201": {"description": "Created"}, "400": {"description": "Invalid document or unbalanced entry"}}}
        },
        "/vendor-invoices/{documentID}": {
            "get": {"security": [{"BearerAuth": []}], "produces": ["application/json"], "tags": ["documents"], "summary": "Get a vendor invoice", "parameters": [{"type": "integer", "name": "documentID", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["documents"], "summary": "Delete a vendor invoice and unwind its entry", "parameters": [{"type": "integer", "name": "documentID", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}, "404": {"description": "Not found"}}}
        },
        "/sales-invoices": {
            "get": {"security": [{"BearerAuth": []}], "produces": ["application/json"], "tags": ["documents"], "summary": "List sales invoices", "parameters": [{"type": "integer", "default": 20, "name": "limit", "in": "query"}, {"type": "string", "name": "nextToken", "in": "query"}, {"type": "integer", "name": "departmentID", "in": "query", "description": "Only documents of this department"}], "responses": {"200": {"description": "OK"}, "400": {"description": "Invalid paging or filter parameters"}}},
            "post": {"security": [{"BearerAuth": []}], "consumes": ["application/json"], "produces": ["application/json"], "tags": ["documents"], "summary": "Create and post a sales invoice", "responses": {"201": {"description": "Created"}, "400": {"description": "Invalid document or unbalanced entry"}}}
        },
        "/sales-invoices/{documentID}": {
            "get": {"security": [{"BearerAuth": []}], "produces": ["application/json"], "tags": ["documents"], "summary": "Get a sales invoice", "parameters": [{"type": "integer", "name": "documentID", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["documents"], "summary": "Delete a sales invoice and unwind its entry", "parameters": [{"type": "integer", "name": "documentID", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}, "404": {"description": "Not found"}}}
        },
        "/payments": {
            "get": {"security": [{"BearerAuth": []}], "produces": ["application/json"], "tags": ["documents"], "summary": "List payments", "parameters": [{"type": "integer", "default": 20, "name": "limit", "in": "query"}, {"type": "string", "name": "nextToken", "in": "query"}, {"type": "integer", "name": "vendorID", "in": "query", "description": "Only documents of this vendor"}], "responses": {"200": {"description": "OK"}, "400": {"description": "Invalid paging or filter parameters"}}},
            "post": {"security": [{"BearerAuth": []}], "consumes": ["application/json"], "produces": ["application/json"], "tags": ["documents"], "summary": "Create and post a payment", "responses": {"201": {"description": "Created"}, "400": {"description": "Invalid document or unbalanced entry"}}}
        },
        "/payments/{documentID}": {
            "get": {"security": [{"BearerAuth": []}], "produces": ["application/json"], "tags": ["documents"], "summary": "Get a payment", "parameters": [{"type": "integer", "name": "documentID", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["documents"], "summary": "Delete a payment and unwind its entry", "parameters": [{"type": "integer", "name": "documentID", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}, "404": {"description": "Not found"}}}
        },
        "/daily-expenses": {
            "get": {"security": [{"BearerAuth": []}], "produces": ["application/json"], "tags": ["documents"], "summary": "List daily expenses", "parameters": [{"type": "integer", "default": 20, "name": "limit", "in": "query"}, {"type": "string", "name": "nextToken", "in": "query"}], "responses": {"200": {"description": "OK"}, "400": {"description": "Invalid paging or filter parameters"}}},
            "post": {"security": [{"BearerAuth": []}], "consumes": ["application/json"], "produces": ["application/json"], "tags": ["documents"], "summary": "Create and post a daily expense", "responses": {"201": {"description": "Created"}, "400": {"description": "Invalid document or unbalanced entry"}}}
        },
        "/daily-expenses/{documentID}": {
            "get": {"security": [{"BearerAuth": []}], "produces": ["application/json"], "tags": ["documents"], "summary": "Get a daily expense", "parameters": [{"type": "integer", "name": "documentID", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["documents"], "summary": "Delete a daily expense and unwind its entry", "parameters": [{"type": "integer", "name": "documentID", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}, "404": {"description": "Not found"}}}
        },
        "/adjustments": {
            "get": {"security": [{"BearerAuth": []}], "produces": ["application/json"], "tags": ["documents"], "summary": "List adjustments", "parameters": [{"type": "integer", "default": 20, "name": "limit", "in": "query"}, {"type": "string", "name": "nextToken", "in": "query"}], "responses": {"200": {"description": "OK"}, "400": {"description": "Invalid paging or filter parameters"}}},
            "post": {"security": [{"BearerAuth": []}], "consumes": ["application/json"], "produces": ["application/json"], "tags": ["documents"], "summary": "Create and post a adjustment", "responses": {"201": {"description": "Created"}, "400": {"description": "Invalid document or unbalanced entry"}}}
        },
        "/adjustments/{documentID}": {
            "get": {"security": [{"BearerAuth": []}], "produces": ["application/json"], "tags": ["documents"], "summary": "Get a adjustment", "parameters": [{"type": "integer", "name": "documentID", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["documents"], "summary": "Delete a adjustment and unwind its entry", "parameters": [{"type": "integer", "name": "documentID", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}, "404": {"description": "Not found"}}}
        },
        "/documents/unposted": {
            "get": {"security": [{"BearerAuth": []}], "produces": ["application/json"], "tags": ["documents"], "summary": "List unposted documents", "responses": {"200": {"description": "OK"}}}
        },
        "/reports/ledger": {
            "get": {"security": [{"BearerAuth": []}], "produces": ["application/json"], "tags": ["reports"], "summary": "General ledger", "responses": {"200": {"description": "OK"}}}
        },
        "/reports/trial-balance": {
            "get": {"security": [{"BearerAuth": []}], "produces": ["application/json"], "tags": ["reports"], "summary": "Trial balance", "responses": {"200": {"description": "OK"}}}
        },
        "/reports/income-statement": {
            "get": {"security": [{"BearerAuth": []}], "produces": ["application/json"], "tags": ["reports"], "summary": "Income statement", "responses": {"200": {"description": "OK"}}}
        },
        "/reports/balance-sheet": {
            "get": {"security": [{"BearerAuth": []}], "produces": ["application/json"], "tags": ["reports"], "summary": "Balance sheet", "responses": {"200": {"description": "OK"}}}
        },
        "/reports/expense-analysis": {
            "get": {"security": [{"BearerAuth": []}], "produces": ["application/json"], "tags": ["reports"], "summary": "Expense analysis", "responses": {"200": {"description": "OK"}}}
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "ERP Ledger API",
	Description:      "Double-entry ledger and posting engine of the ERP backend.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
