// Package docs holds the OpenAPI document served under /swagger/.
// Regenerate with: swag init -g cmd/app/main.go -o docs --parseInternal
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
        "/drying/collect": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "drying"
                ],
                "summary": "Collect a rack",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.ActionResult"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/domain.ActionResult"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.ValidationErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Rack",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.RackRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ]
            }
        },
        "/drying/start": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "drying"
                ],
                "summary": "Start drying",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.ActionResult"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/domain.ActionResult"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.ValidationErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Rack and bud",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.DryRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ]
            }
        },
        "/events": {
            "get": {
                "description": "Server-sent events for harvests, sales, dealer activity, level-ups, offline catch-up and saves. Filter with a comma separated types query.",
                "produces": [
                    "text/event-stream"
                ],
                "tags": [
                    "events"
                ],
                "summary": "Stream game events",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Comma separated event types",
                        "name": "types",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "string"
                        }
                    }
                },
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ]
            }
        },
        "/grow/fertilize": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "grow"
                ],
                "summary": "Apply fertilizer",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.ActionResult"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/domain.ActionResult"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.ValidationErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Slot and fertilizer",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.FertilizeRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ]
            }
        },
        "/grow/harvest": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "grow"
                ],
                "summary": "Harvest a slot",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.ActionResult"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/domain.ActionResult"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.ValidationErrorResponse"
                        }
                    }
                },
                "description": "Rolls yield, crits, drops and trait bonuses and adds a wet bud to the inventory",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Slot",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.SlotRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ]
            }
        },
        "/grow/plant": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "grow"
                ],
                "summary": "Plant a seed",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.ActionResult"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/domain.ActionResult"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.ValidationErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Slot and seed",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.PlantRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ]
            }
        },
        "/grow/soil": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "grow"
                ],
                "summary": "Apply soil",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.ActionResult"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/domain.ActionResult"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.ValidationErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Slot and soil",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.SoilRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ]
            }
        },
        "/grow/tap": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "grow"
                ],
                "summary": "Tap a slot",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.ActionResult"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/domain.ActionResult"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.ValidationErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Slot",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.SlotRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ]
            }
        },
        "/grow/water": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "grow"
                ],
                "summary": "Water a slot",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.ActionResult"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/domain.ActionResult"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.ValidationErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Slot",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.SlotRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ]
            }
        },
        "/sales/auto-sell": {
            "put": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "sales"
                ],
                "summary": "Configure auto-sell",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.ActionResult"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/domain.ActionResult"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.ValidationErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Auto-sell settings",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.AutoSellRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ]
            }
        },
        "/sales/channels/unlock": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "sales"
                ],
                "summary": "Unlock a sales channel",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.ActionResult"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/domain.ActionResult"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.ValidationErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Channel id",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.IDRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ]
            }
        },
        "/sales/sell": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "sales"
                ],
                "summary": "Sell product",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.ActionResult"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/domain.ActionResult"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.ValidationErrorResponse"
                        }
                    }
                },
                "description": "Rejected unless the channel is unlocked, off cooldown and accepts the bud's quality and grams",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Bud, channel and grams",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.SellRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ]
            }
        },
        "/save/": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "save"
                ],
                "summary": "Save now",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.ActionResult"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ]
            }
        },
        "/save/export": {
            "get": {
                "description": "Returns the snapshot as base64 of zstd-compressed JSON",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "save"
                ],
                "summary": "Export the save",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.ExportResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ]
            }
        },
        "/save/import": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "save"
                ],
                "summary": "Import a save",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.ActionResult"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/domain.ActionResult"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.ValidationErrorResponse"
                        }
                    }
                },
                "description": "Migrates the imported save to the current version and persists it",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Exported save string",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.ImportRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ]
            }
        },
        "/shop/fertilizers": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "shop"
                ],
                "summary": "Buy fertilizer",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.ActionResult"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/domain.ActionResult"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.ValidationErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Fertilizer id",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.IDRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ]
            }
        },
        "/shop/racks": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "shop"
                ],
                "summary": "Unlock a drying rack",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.ActionResult"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/domain.ActionResult"
                        }
                    }
                },
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ]
            }
        },
        "/shop/seeds": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "shop"
                ],
                "summary": "Buy a seed",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.ActionResult"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/domain.ActionResult"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.ValidationErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Seed template id",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.IDRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ]
            }
        },
        "/shop/slots": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "shop"
                ],
                "summary": "Unlock a grow slot",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.ActionResult"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/domain.ActionResult"
                        }
                    }
                },
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ]
            }
        },
        "/shop/soils": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "shop"
                ],
                "summary": "Buy soil",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.ActionResult"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/domain.ActionResult"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.ValidationErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Soil id",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.IDRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ]
            }
        },
        "/shop/upgrades": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "shop"
                ],
                "summary": "Buy an upgrade",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.ActionResult"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/domain.ActionResult"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.ValidationErrorResponse"
                        }
                    }
                },
                "description": "Priced in the track currency: coins, gems, or one skill point per level",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Upgrade kind",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.UpgradeRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ]
            }
        },
        "/state": {
            "get": {
                "description": "Returns the full live snapshot: ledger, slots, racks, inventory, channels, workers and dealer log",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "state"
                ],
                "summary": "Get game state",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.State"
                        }
                    }
                },
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ]
            }
        },
        "/workers/buy": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "workers"
                ],
                "summary": "Hire a worker",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.ActionResult"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/domain.ActionResult"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.ValidationErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Worker id",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.IDRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ]
            }
        },
        "/workers/pause": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "workers"
                ],
                "summary": "Pause or resume a worker",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.ActionResult"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/domain.ActionResult"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.ValidationErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Worker id",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.IDRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ]
            }
        },
        "/workers/upgrade": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "workers"
                ],
                "summary": "Upgrade a worker",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.ActionResult"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/domain.ActionResult"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.ValidationErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Worker id",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.IDRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ]
            }
        }
    },
    "definitions": {
        "domain.ActionResult": {
            "type": "object",
            "properties": {
                "success": {
                    "type": "boolean"
                },
                "reason": {
                    "type": "string"
                },
                "data": {}
            }
        },
        "domain.State": {
            "type": "object",
            "properties": {
                "version": {
                    "type": "integer"
                },
                "coins": {
                    "type": "integer"
                },
                "resin": {
                    "type": "integer"
                },
                "essence": {
                    "type": "integer"
                },
                "gems": {
                    "type": "integer"
                },
                "xp": {
                    "type": "integer"
                },
                "level": {
                    "type": "integer"
                },
                "skill_points": {
                    "type": "integer"
                },
                "total_harvests": {
                    "type": "integer"
                },
                "total_grams_harvested": {
                    "type": "integer"
                },
                "total_grams_sold": {
                    "type": "integer"
                },
                "total_revenue": {
                    "type": "integer"
                },
                "total_sales": {
                    "type": "integer"
                },
                "dealer_sales": {
                    "type": "integer"
                },
                "seeds_dropped": {
                    "type": "integer"
                },
                "grow_slots": {
                    "type": "array",
                    "items": {
                        "type": "object"
                    }
                },
                "drying_racks": {
                    "type": "array",
                    "items": {
                        "type": "object"
                    }
                },
                "seeds": {
                    "type": "array",
                    "items": {
                        "type": "object"
                    }
                },
                "inventory": {
                    "type": "array",
                    "items": {
                        "type": "object"
                    }
                },
                "fertilizers": {
                    "type": "array",
                    "items": {
                        "type": "object"
                    }
                },
                "soils": {
                    "type": "array",
                    "items": {
                        "type": "object"
                    }
                },
                "sales_channels": {
                    "type": "array",
                    "items": {
                        "type": "object"
                    }
                },
                "workers": {
                    "type": "array",
                    "items": {
                        "type": "object"
                    }
                },
                "dealer_activities": {
                    "type": "array",
                    "items": {
                        "type": "object"
                    }
                },
                "drug_effects": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "object"
                    }
                },
                "auto_sell": {
                    "type": "object"
                },
                "sales_window": {
                    "type": "array",
                    "items": {
                        "type": "object"
                    }
                },
                "upgrades": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "integer"
                    }
                },
                "discovered_seeds": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "boolean"
                    }
                },
                "last_active": {
                    "type": "integer"
                },
                "last_auto_sell_at": {
                    "type": "integer"
                }
            }
        },
        "handler.AutoSellRequest": {
            "type": "object",
            "properties": {
                "enabled": {
                    "type": "boolean"
                },
                "min_quality": {
                    "type": "integer",
                    "minimum": 0,
                    "maximum": 100
                },
                "channel": {
                    "type": "string",
                    "maxLength": 64
                },
                "only_when_nearly_full": {
                    "type": "boolean"
                }
            }
        },
        "handler.DryRequest": {
            "type": "object",
            "properties": {
                "rack": {
                    "type": "integer",
                    "minimum": 0
                },
                "bud_id": {
                    "type": "string"
                }
            },
            "required": [
                "bud_id"
            ]
        },
        "handler.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string"
                }
            }
        },
        "handler.ExportResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "string"
                }
            }
        },
        "handler.FertilizeRequest": {
            "type": "object",
            "properties": {
                "slot": {
                    "type": "integer",
                    "minimum": 0
                },
                "fertilizer_id": {
                    "type": "string"
                }
            },
            "required": [
                "fertilizer_id"
            ]
        },
        "handler.IDRequest": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "maxLength": 64
                }
            },
            "required": [
                "id"
            ]
        },
        "handler.ImportRequest": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "string"
                }
            },
            "required": [
                "data"
            ]
        },
        "handler.PlantRequest": {
            "type": "object",
            "properties": {
                "slot": {
                    "type": "integer",
                    "minimum": 0
                },
                "seed_id": {
                    "type": "string"
                }
            },
            "required": [
                "seed_id"
            ]
        },
        "handler.RackRequest": {
            "type": "object",
            "properties": {
                "rack": {
                    "type": "integer",
                    "minimum": 0
                }
            }
        },
        "handler.SellRequest": {
            "type": "object",
            "properties": {
                "bud_id": {
                    "type": "string"
                },
                "channel_id": {
                    "type": "string"
                },
                "grams": {
                    "type": "integer",
                    "minimum": 1
                }
            },
            "required": [
                "bud_id",
                "channel_id"
            ]
        },
        "handler.SlotRequest": {
            "type": "object",
            "properties": {
                "slot": {
                    "type": "integer",
                    "minimum": 0
                }
            }
        },
        "handler.SoilRequest": {
            "type": "object",
            "properties": {
                "slot": {
                    "type": "integer",
                    "minimum": 0
                },
                "soil_id": {
                    "type": "string"
                }
            },
            "required": [
                "soil_id"
            ]
        },
        "handler.UpgradeRequest": {
            "type": "object",
            "properties": {
                "kind": {
                    "type": "string"
                }
            },
            "required": [
                "kind"
            ]
        },
        "handler.ValidationErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string"
                },
                "fields": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "string"
                    }
                }
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {
            "type": "apiKey",
            "name": "X-API-Key",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "dev",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Grow Lab API",
	Description:      "Tick-driven grow and sell simulation: grow slots, drying racks, sales channels, workers and dealers.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
