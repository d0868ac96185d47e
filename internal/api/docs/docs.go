// Package docs holds the Swagger document served at /swagger/*.
// Regenerate with: swag init -g cmd/api-service/main.go -o internal/api/docs
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
        "/drafts": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["drafts"],
                "summary": "Generate a press release draft",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.GenerateDraftRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.GenerateDraftResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/specs/stories": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["drafts"],
                "summary": "Convert specifications into benefit sentences",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.MapStoriesRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.MapStoriesResponse"}}}
            }
        },
        "/analysis/link": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["analysis"],
                "summary": "Extract a fact sheet from a product page",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.AnalyzeLinkRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.AnalysisResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/analysis/file": {
            "post": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["analysis"],
                "summary": "Extract a fact sheet from a document",
                "parameters": [{"type": "file", "in": "formData", "name": "file", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.AnalysisResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/news/timeline": {
            "get": {
                "produces": ["application/json"],
                "tags": ["news"],
                "summary": "Get a grouped news timeline",
                "parameters": [
                    {"type": "string", "in": "query", "name": "query", "required": true},
                    {"type": "string", "in": "query", "name": "sort"},
                    {"type": "integer", "in": "query", "name": "pages"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.TimelineResponse"}}}
            }
        },
        "/events": {
            "get": {
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "List calendar events",
                "parameters": [{"type": "string", "in": "query", "name": "from"}, {"type": "string", "in": "query", "name": "to"}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.EventResponse"}}}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Create a calendar event",
                "parameters": [{"in": "body", "name": "event", "required": true, "schema": {"$ref": "#/definitions/dto.EventRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.EventResponse"}}}
            }
        },
        "/events/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Get a calendar event by ID",
                "parameters": [{"type": "integer", "in": "path", "name": "id", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.EventResponse"}}}
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Update a calendar event",
                "parameters": [
                    {"type": "integer", "in": "path", "name": "id", "required": true},
                    {"in": "body", "name": "event", "required": true, "schema": {"$ref": "#/definitions/dto.EventRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.EventResponse"}}}
            },
            "delete": {
                "tags": ["events"],
                "summary": "Delete a calendar event",
                "parameters": [{"type": "integer", "in": "path", "name": "id", "required": true}],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/events/{id}/performance-file": {
            "post": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Attach a performance report to an event",
                "parameters": [
                    {"type": "integer", "in": "path", "name": "id", "required": true},
                    {"type": "file", "in": "formData", "name": "file", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.EventResponse"}}}
            }
        },
        "/reports/metadata": {
            "post": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["reports"],
                "summary": "Extract metadata from performance reports",
                "parameters": [{"type": "file", "in": "formData", "name": "files", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.BulkMetadataResponse"}}}
            }
        },
        "/reports/coverage": {
            "get": {
                "produces": ["application/json"],
                "tags": ["reports"],
                "summary": "Get the coverage rollup",
                "parameters": [{"type": "string", "in": "query", "name": "from"}, {"type": "string", "in": "query", "name": "to"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/coverage.Rollup"}}}
            }
        },
        "/subscriptions": {
            "get": {
                "produces": ["application/json"],
                "tags": ["subscriptions"],
                "summary": "List clipping subscriptions",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.SubscriptionResponse"}}}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["subscriptions"],
                "summary": "Create a clipping subscription",
                "parameters": [{"in": "body", "name": "subscription", "required": true, "schema": {"$ref": "#/definitions/dto.SubscriptionRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.SubscriptionResponse"}}}
            }
        },
        "/subscriptions/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["subscriptions"],
                "summary": "Get a clipping subscription by ID",
                "parameters": [{"type": "integer", "in": "path", "name": "id", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.SubscriptionResponse"}}}
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["subscriptions"],
                "summary": "Update a clipping subscription",
                "parameters": [
                    {"type": "integer", "in": "path", "name": "id", "required": true},
                    {"in": "body", "name": "subscription", "required": true, "schema": {"$ref": "#/definitions/dto.SubscriptionRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.SubscriptionResponse"}}}
            },
            "delete": {
                "tags": ["subscriptions"],
                "summary": "Delete a clipping subscription and its run history",
                "parameters": [{"type": "integer", "in": "path", "name": "id", "required": true}],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/subscriptions/{id}/runs": {
            "get": {
                "produces": ["application/json"],
                "tags": ["subscriptions"],
                "summary": "List the run history of a subscription",
                "parameters": [{"type": "integer", "in": "path", "name": "id", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.RunResponse"}}}}
            }
        }
    },
    "definitions": {
        "dto.ErrorResponse": {"type": "object", "properties": {"error": {"type": "string"}}},
        "entity.FactSheet": {
            "type": "object",
            "properties": {
                "brandName": {"type": "string"},
                "productName": {"type": "string"},
                "prType": {"type": "string", "enum": ["new_product", "campaign", "trend", "promotion", "issue"]},
                "definition": {"type": "string"},
                "features": {"type": "array", "items": {"type": "string"}},
                "usageContext": {"type": "string"},
                "coreMessages": {"type": "array", "items": {"type": "string"}},
                "launchDate": {"type": "string"},
                "discountPromo": {"type": "string"},
                "channels": {"type": "string"},
                "commentIntent": {"type": "string"}
            }
        },
        "entity.SpecItem": {
            "type": "object",
            "properties": {
                "category": {"type": "string", "enum": ["dimensions", "material", "function", "other"]},
                "value": {"type": "string"},
                "detail": {"type": "string"}
            }
        },
        "entity.ReportFileMetadata": {
            "type": "object",
            "properties": {"extractedDate": {"type": "string"}, "extractedTitle": {"type": "string"}, "articleCount": {"type": "integer"}}
        },
        "dto.GenerateDraftRequest": {
            "type": "object",
            "properties": {
                "factSheet": {"$ref": "#/definitions/entity.FactSheet"},
                "specs": {"type": "array", "items": {"$ref": "#/definitions/entity.SpecItem"}},
                "eventId": {"type": "integer"}
            }
        },
        "dto.GenerateDraftResponse": {
            "type": "object",
            "properties": {
                "prType": {"type": "string"},
                "draft": {"type": "string"},
                "stories": {"type": "array", "items": {"type": "string"}},
                "eventId": {"type": "integer"}
            }
        },
        "dto.MapStoriesRequest": {"type": "object", "properties": {"specs": {"type": "array", "items": {"$ref": "#/definitions/entity.SpecItem"}}}},
        "dto.MapStoriesResponse": {"type": "object", "properties": {"stories": {"type": "array", "items": {"type": "string"}}}},
        "dto.AnalyzeLinkRequest": {"type": "object", "properties": {"url": {"type": "string"}}},
        "dto.AnalysisResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "data": {"$ref": "#/definitions/entity.FactSheet"},
                "degraded": {"type": "boolean"},
                "message": {"type": "string"},
                "source": {"type": "string"}
            }
        },
        "dto.TimelineResponse": {
            "type": "object",
            "properties": {
                "query": {"type": "string"},
                "sort": {"type": "string"},
                "totalItems": {"type": "integer"},
                "days": {"type": "array", "items": {"type": "object"}}
            }
        },
        "dto.EventRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "date": {"type": "string"},
                "status": {"type": "string", "enum": ["scheduled", "draft", "published"]},
                "type": {"type": "string"},
                "content": {"type": "string"},
                "articleCount": {"type": "integer"},
                "keywords": {"type": "array", "items": {"type": "string"}}
            }
        },
        "dto.EventResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "title": {"type": "string"},
                "date": {"type": "string"},
                "status": {"type": "string"},
                "type": {"type": "string"},
                "content": {"type": "string"},
                "articleCount": {"type": "integer"},
                "performanceFile": {"type": "object"},
                "keywords": {"type": "array", "items": {"type": "string"}},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "dto.ReportMetadataResult": {
            "type": "object",
            "properties": {
                "fileName": {"type": "string"},
                "metadata": {"$ref": "#/definitions/entity.ReportFileMetadata"},
                "error": {"type": "string"}
            }
        },
        "dto.BulkMetadataResponse": {"type": "object", "properties": {"results": {"type": "array", "items": {"$ref": "#/definitions/dto.ReportMetadataResult"}}}},
        "coverage.Bucket": {"type": "object", "properties": {"key": {"type": "string"}, "events": {"type": "integer"}, "articles": {"type": "integer"}}},
        "coverage.Rollup": {
            "type": "object",
            "properties": {
                "from": {"type": "string"},
                "to": {"type": "string"},
                "totalEvents": {"type": "integer"},
                "totalArticles": {"type": "integer"},
                "byMonth": {"type": "array", "items": {"$ref": "#/definitions/coverage.Bucket"}},
                "byWeek": {"type": "array", "items": {"$ref": "#/definitions/coverage.Bucket"}},
                "byType": {"type": "array", "items": {"$ref": "#/definitions/coverage.Bucket"}}
            }
        },
        "dto.SubscriptionRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "type": {"type": "string", "enum": ["news_clipping", "coverage_report"]},
                "query": {"type": "string"},
                "sort": {"type": "string"},
                "maxPages": {"type": "integer"},
                "lookbackDays": {"type": "integer"},
                "cronExpression": {"type": "string"},
                "isActive": {"type": "boolean"}
            }
        },
        "dto.SubscriptionResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "type": {"type": "string"},
                "query": {"type": "string"},
                "sort": {"type": "string"},
                "maxPages": {"type": "integer"},
                "lookbackDays": {"type": "integer"},
                "cronExpression": {"type": "string"},
                "isActive": {"type": "boolean"},
                "nextExecution": {"type": "string"},
                "lastExecution": {"type": "string"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "dto.RunResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "subscriptionId": {"type": "integer"},
                "status": {"type": "string"},
                "startedAt": {"type": "string"},
                "completedAt": {"type": "string"},
                "result": {"type": "object"},
                "errorMessage": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "PressCraft API",
	Description:      "Press release authoring and PR operations backend.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
