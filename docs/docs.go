// Package docs registers the OpenAPI description served under /swagger.
// It is maintained by hand alongside the handler annotations and lists
// response schemas only for the agent, call and phone number payloads.
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
        "/agents": {
            "get": {"tags": ["Agents"], "summary": "List agents", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Agents"], "summary": "Create agent", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/agent.CreateAgentRequest"}}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Invalid request or validation failed"}}}
        },
        "/agents/{id}": {
            "get": {"tags": ["Agents"], "summary": "Get agent", "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Agent not found"}}},
            "patch": {"tags": ["Agents"], "summary": "Update agent", "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Agent not found"}}},
            "delete": {"tags": ["Agents"], "summary": "Delete agent", "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Agent not found"}}}
        },
        "/calls": {
            "post": {"tags": ["Calls"], "summary": "Start a web call",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/call.StartCallRequest"}}],
                "responses": {"201": {"description": "Created"}, "409": {"description": "No agent selected or a call is already in progress"}}}
        },
        "/calls/end": {
            "post": {"tags": ["Calls"], "summary": "End the active call", "responses": {"200": {"description": "OK"}, "404": {"description": "No call to end"}, "409": {"description": "Most recent call already completed"}}}
        },
        "/calls/events": {
            "post": {"tags": ["Calls"], "summary": "Report a call lifecycle event",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/call.CallEventRequest"}}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Unknown event"}}}
        },
        "/calls/status": {
            "get": {"tags": ["Calls"], "summary": "Current call status", "responses": {"200": {"description": "OK"}}}
        },
        "/calls/history": {
            "get": {"tags": ["Calls"], "summary": "Call history", "responses": {"200": {"description": "OK"}}}
        },
        "/calls/history/export": {
            "get": {"tags": ["Calls"], "summary": "Export call history", "produces": ["text/csv"], "responses": {"200": {"description": "CSV file"}, "409": {"description": "No calls to export"}}}
        },
        "/calls/{id}": {
            "get": {"tags": ["Calls"], "summary": "Call details", "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Call not found"}}}
        },
        "/phone-numbers": {
            "get": {"tags": ["PhoneNumbers"], "summary": "List phone numbers", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["PhoneNumbers"], "summary": "Purchase a phone number",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/phonenumber.PurchasePhoneNumberRequest"}}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Neither number nor area code given"}}}
        },
        "/phone-numbers/search": {
            "post": {"tags": ["PhoneNumbers"], "summary": "Search phone numbers by area code",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/phonenumber.SearchPhoneNumbersRequest"}}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Area code missing or not 3 digits"}}}
        },
        "/phone-numbers/{number}": {
            "patch": {"tags": ["PhoneNumbers"], "summary": "Assign a phone number", "parameters": [{"in": "path", "name": "number", "type": "string", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Phone number not found"}}},
            "delete": {"tags": ["PhoneNumbers"], "summary": "Release a phone number", "parameters": [{"in": "path", "name": "number", "type": "string", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Phone number not found"}}}
        }
    },
    "definitions": {
        "agent.CreateAgentRequest": {
            "type": "object",
            "required": ["agent_name"],
            "properties": {
                "agent_name": {"type": "string"},
                "voice_id": {"type": "string"},
                "language": {"type": "string"},
                "general_prompt": {"type": "string"},
                "llm_websocket_url": {"type": "string"},
                "llm_id": {"type": "string"},
                "ambient_sound": {"type": "string"},
                "ambient_sound_volume": {"type": "number"},
                "interruption_sensitivity": {"type": "number"},
                "responsiveness": {"type": "number"},
                "enable_backchannel": {"type": "boolean"}
            }
        },
        "call.StartCallRequest": {
            "type": "object",
            "properties": {"agent_id": {"type": "string"}}
        },
        "call.CallEventRequest": {
            "type": "object",
            "required": ["event"],
            "properties": {
                "event": {"type": "string", "enum": ["started", "ended", "agentSpeaking", "agentListening", "error"]},
                "message": {"type": "string"}
            }
        },
        "phonenumber.SearchPhoneNumbersRequest": {
            "type": "object",
            "required": ["area_code"],
            "properties": {"area_code": {"type": "string"}}
        },
        "phonenumber.PurchasePhoneNumberRequest": {
            "type": "object",
            "properties": {
                "phone_number": {"type": "string"},
                "area_code": {"type": "string"},
                "agent_id": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:3001",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "Voice Agent Dashboard API",
	Description:      "Backend for managing voice agents, placing browser calls and reviewing call transcripts",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
