// Package docs registra el documento OpenAPI servido en /swagger/*.
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
        "/games": {
            "post": {
                "tags": [
                    "game"
                ],
                "summary": "Nueva partida",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Slot de guardado (default: default)",
                        "name": "X-Save-Slot",
                        "in": "header"
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/gameResponse"
                        }
                    }
                }
            }
        },
        "/game": {
            "get": {
                "tags": [
                    "game"
                ],
                "summary": "Estado de la partida",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Slot de guardado (default: default)",
                        "name": "X-Save-Slot",
                        "in": "header"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/gameResponse"
                        }
                    },
                    "404": {
                        "description": "game not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/game/days": {
            "post": {
                "tags": [
                    "game"
                ],
                "summary": "Avanzar un día",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Slot de guardado (default: default)",
                        "name": "X-Save-Slot",
                        "in": "header"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/DayReport"
                        }
                    }
                }
            }
        },
        "/game/speed": {
            "post": {
                "tags": [
                    "game"
                ],
                "summary": "Cambiar velocidad",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Slot de guardado (default: default)",
                        "name": "X-Save-Slot",
                        "in": "header"
                    },
                    {
                        "description": "payload",
                        "name": "payload",
                        "in": "body",
                        "required": false,
                        "schema": {
                            "$ref": "#/definitions/speedRequest"
                        }
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "invalid speed",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/dogs/{dogID}": {
            "get": {
                "tags": [
                    "dogs"
                ],
                "summary": "Detalle de un perro",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Slot de guardado (default: default)",
                        "name": "X-Save-Slot",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "description": "ID del perro",
                        "name": "dogID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/DogView"
                        }
                    },
                    "404": {
                        "description": "dog not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/dogs/{dogID}/feed": {
            "post": {
                "tags": [
                    "care"
                ],
                "summary": "Alimentar",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Slot de guardado (default: default)",
                        "name": "X-Save-Slot",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "description": "ID del perro",
                        "name": "dogID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "payload",
                        "name": "payload",
                        "in": "body",
                        "required": false,
                        "schema": {
                            "$ref": "#/definitions/feedRequest"
                        }
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/DogView"
                        }
                    },
                    "402": {
                        "description": "insufficient funds",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "404": {
                        "description": "dog not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/dogs/{dogID}/walk": {
            "post": {
                "tags": [
                    "care"
                ],
                "summary": "Pasear",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Slot de guardado (default: default)",
                        "name": "X-Save-Slot",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "description": "ID del perro",
                        "name": "dogID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/DogView"
                        }
                    },
                    "404": {
                        "description": "dog not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/dogs/{dogID}/treat": {
            "post": {
                "tags": [
                    "care"
                ],
                "summary": "Tratamiento veterinario",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Slot de guardado (default: default)",
                        "name": "X-Save-Slot",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "description": "ID del perro",
                        "name": "dogID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/treatResponse"
                        }
                    },
                    "402": {
                        "description": "insufficient funds",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "404": {
                        "description": "dog not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/kennel/feed": {
            "post": {
                "tags": [
                    "care"
                ],
                "summary": "Alimentar a todo el criadero",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Slot de guardado (default: default)",
                        "name": "X-Save-Slot",
                        "in": "header"
                    },
                    {
                        "description": "payload",
                        "name": "payload",
                        "in": "body",
                        "required": false,
                        "schema": {
                            "$ref": "#/definitions/feedRequest"
                        }
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/BulkReport"
                        }
                    }
                }
            }
        },
        "/kennel/walk": {
            "post": {
                "tags": [
                    "care"
                ],
                "summary": "Pasear a todo el criadero",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Slot de guardado (default: default)",
                        "name": "X-Save-Slot",
                        "in": "header"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/BulkReport"
                        }
                    }
                }
            }
        },
        "/kennel/treat": {
            "post": {
                "tags": [
                    "care"
                ],
                "summary": "Tratar a todo el criadero",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Slot de guardado (default: default)",
                        "name": "X-Save-Slot",
                        "in": "header"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/BulkReport"
                        }
                    }
                }
            }
        },
        "/breedings": {
            "post": {
                "tags": [
                    "breeding"
                ],
                "summary": "Cruzar",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Slot de guardado (default: default)",
                        "name": "X-Save-Slot",
                        "in": "header"
                    },
                    {
                        "description": "payload",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/breedRequest"
                        }
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/DogView"
                            }
                        }
                    },
                    "400": {
                        "description": "invalid json",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "404": {
                        "description": "dog not found",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "409": {
                        "description": "invalid pairing",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/litter/{dogID}/adopt": {
            "post": {
                "tags": [
                    "breeding"
                ],
                "summary": "Adoptar cachorro",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Slot de guardado (default: default)",
                        "name": "X-Save-Slot",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "description": "ID del perro",
                        "name": "dogID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/DogView"
                        }
                    },
                    "402": {
                        "description": "insufficient funds",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "404": {
                        "description": "dog not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/market": {
            "get": {
                "tags": [
                    "market"
                ],
                "summary": "Mercado",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Slot de guardado (default: default)",
                        "name": "X-Save-Slot",
                        "in": "header"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/marketResponse"
                        }
                    }
                }
            }
        },
        "/market/refresh": {
            "post": {
                "tags": [
                    "market"
                ],
                "summary": "Renovar mercado",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Slot de guardado (default: default)",
                        "name": "X-Save-Slot",
                        "in": "header"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/marketResponse"
                        }
                    },
                    "402": {
                        "description": "insufficient funds",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/market/{dogID}/buy": {
            "post": {
                "tags": [
                    "market"
                ],
                "summary": "Comprar un perro del mercado",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Slot de guardado (default: default)",
                        "name": "X-Save-Slot",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "description": "ID del perro",
                        "name": "dogID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/DogView"
                        }
                    },
                    "402": {
                        "description": "insufficient funds",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "404": {
                        "description": "dog not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/shows": {
            "post": {
                "tags": [
                    "shows"
                ],
                "summary": "Inscribir en exposición",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Slot de guardado (default: default)",
                        "name": "X-Save-Slot",
                        "in": "header"
                    },
                    {
                        "description": "payload",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/enterShowRequest"
                        }
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/showResponse"
                        }
                    },
                    "404": {
                        "description": "dog not found",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "409": {
                        "description": "dog is not mature",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/shows/current/attempts": {
            "post": {
                "tags": [
                    "shows"
                ],
                "summary": "Intento de destreza",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Slot de guardado (default: default)",
                        "name": "X-Save-Slot",
                        "in": "header"
                    },
                    {
                        "description": "payload",
                        "name": "payload",
                        "in": "body",
                        "required": false,
                        "schema": {
                            "$ref": "#/definitions/attemptRequest"
                        }
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/AttemptResult"
                        }
                    },
                    "409": {
                        "description": "no show in progress / no skill attempts left",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/shows/current/finish": {
            "post": {
                "tags": [
                    "shows"
                ],
                "summary": "Cerrar exposición",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Slot de guardado (default: default)",
                        "name": "X-Save-Slot",
                        "in": "header"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/showReportResponse"
                        }
                    },
                    "409": {
                        "description": "no show in progress",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "DefectRecord": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "expressed": {
                    "type": "boolean"
                },
                "carrier": {
                    "type": "boolean"
                }
            }
        },
        "Dog": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "breed": {
                    "type": "string"
                },
                "gender": {
                    "type": "string"
                },
                "age": {
                    "type": "integer"
                },
                "conformation": {
                    "type": "integer"
                },
                "coat": {
                    "type": "integer"
                },
                "temperament": {
                    "type": "integer"
                },
                "stamina": {
                    "type": "integer"
                },
                "satiety": {
                    "type": "integer"
                },
                "happiness": {
                    "type": "integer"
                },
                "health": {
                    "type": "integer"
                },
                "days_since_fed": {
                    "type": "integer"
                },
                "days_since_walked": {
                    "type": "integer"
                },
                "days_since_bred": {
                    "type": "integer"
                },
                "has_bred": {
                    "type": "boolean"
                },
                "defects": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/DefectRecord"
                    }
                },
                "genetic_rating": {
                    "type": "integer"
                },
                "price": {
                    "type": "integer"
                },
                "boost_amount": {
                    "type": "integer"
                },
                "boost_expires_at": {
                    "type": "string"
                },
                "treatment_days": {
                    "type": "integer"
                }
            }
        },
        "DogView": {
            "type": "object",
            "properties": {
                "dog": {
                    "$ref": "#/definitions/Dog"
                },
                "location": {
                    "type": "string"
                },
                "genetic_rating": {
                    "type": "integer"
                },
                "price": {
                    "type": "integer"
                },
                "visible_defects": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/DefectRecord"
                    }
                },
                "beauty_score": {
                    "type": "integer"
                },
                "boost_active": {
                    "type": "boolean"
                }
            }
        },
        "Eligible": {
            "type": "object",
            "properties": {
                "males": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "females": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "show": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "showResponse": {
            "type": "object",
            "properties": {
                "dog_id": {
                    "type": "string"
                },
                "beauty": {
                    "type": "integer"
                },
                "visible_defects": {
                    "type": "integer"
                },
                "attempts": {
                    "type": "integer"
                },
                "skill_total": {
                    "type": "integer"
                },
                "started_at": {
                    "type": "string"
                },
                "attempts_left": {
                    "type": "integer"
                }
            }
        },
        "gameResponse": {
            "type": "object",
            "properties": {
                "day": {
                    "type": "integer"
                },
                "money": {
                    "type": "integer"
                },
                "money_display": {
                    "type": "string"
                },
                "prestige": {
                    "type": "integer"
                },
                "speed": {
                    "type": "integer"
                },
                "dogs": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/DogView"
                    }
                },
                "litter": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/DogView"
                    }
                },
                "market_size": {
                    "type": "integer"
                },
                "show": {
                    "$ref": "#/definitions/showResponse"
                },
                "eligible": {
                    "$ref": "#/definitions/Eligible"
                }
            }
        },
        "DayReport": {
            "type": "object",
            "properties": {
                "day": {
                    "type": "integer"
                },
                "deceased": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/Dog"
                    }
                }
            }
        },
        "BulkReport": {
            "type": "object",
            "properties": {
                "applied": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "skipped": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "spent": {
                    "type": "integer"
                }
            }
        },
        "marketResponse": {
            "type": "object",
            "properties": {
                "last_update": {
                    "type": "integer"
                },
                "refresh_fee": {
                    "type": "integer"
                },
                "listings": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/DogView"
                    }
                }
            }
        },
        "treatResponse": {
            "type": "object",
            "properties": {
                "dog": {
                    "$ref": "#/definitions/DogView"
                },
                "cost": {
                    "type": "integer"
                },
                "days": {
                    "type": "integer"
                },
                "cost_display": {
                    "type": "string"
                }
            }
        },
        "Result": {
            "type": "object",
            "properties": {
                "tier": {
                    "type": "string"
                },
                "total": {
                    "type": "integer"
                },
                "reward": {
                    "type": "integer"
                },
                "prestige_gain": {
                    "type": "integer"
                }
            }
        },
        "showReportResponse": {
            "type": "object",
            "properties": {
                "dog_id": {
                    "type": "string"
                },
                "result": {
                    "$ref": "#/definitions/Result"
                },
                "money": {
                    "type": "integer"
                },
                "prestige": {
                    "type": "integer"
                },
                "reward_display": {
                    "type": "string"
                }
            }
        },
        "AttemptResult": {
            "type": "object",
            "properties": {
                "position": {
                    "type": "number"
                },
                "score": {
                    "type": "integer"
                },
                "session": {
                    "$ref": "#/definitions/showResponse"
                }
            }
        },
        "speedRequest": {
            "type": "object",
            "properties": {
                "speed": {
                    "type": "integer"
                }
            }
        },
        "feedRequest": {
            "type": "object",
            "properties": {
                "tier": {
                    "type": "string"
                }
            }
        },
        "breedRequest": {
            "type": "object",
            "properties": {
                "male_id": {
                    "type": "string"
                },
                "female_id": {
                    "type": "string"
                }
            }
        },
        "enterShowRequest": {
            "type": "object",
            "properties": {
                "dog_id": {
                    "type": "string"
                }
            }
        },
        "attemptRequest": {
            "type": "object",
            "properties": {
                "position": {
                    "type": "number"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Kennel Tycoon API",
	Description:      "Simulación de criadero: cría, cuidado, mercado y exposiciones.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
