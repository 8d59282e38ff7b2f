// Package docs registra el documento OpenAPI que sirve /swagger.
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
        "/pets": {
            "get": {"tags": ["pets"], "summary": "Lista el store de mascotas", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["pets"], "summary": "Registra una mascota y refresca el store", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "502": {"description": "Bad Gateway"}}}
        },
        "/pets/refresh": {
            "post": {"tags": ["pets"], "summary": "Vuelve a leer las mascotas del backend", "responses": {"200": {"description": "OK"}, "502": {"description": "Bad Gateway"}}}
        },
        "/pets/import": {
            "post": {"tags": ["pets"], "summary": "Importa una planilla (campo multipart file)", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "502": {"description": "Bad Gateway"}}}
        },
        "/pets/{petID}": {
            "get": {"tags": ["pets"], "summary": "Obtiene una mascota", "parameters": [{"name": "petID", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "delete": {"tags": ["pets"], "summary": "Borra una mascota; requiere ?confirm=true o X-Confirm", "parameters": [{"name": "petID", "in": "path", "required": true, "type": "string"}, {"name": "confirm", "in": "query", "type": "boolean"}], "responses": {"204": {"description": "No Content"}, "428": {"description": "Precondition Required"}, "502": {"description": "Bad Gateway"}}}
        },
        "/pets/{petID}/reminders": {
            "post": {"tags": ["reminders"], "summary": "Genera y envía un recordatorio al dueño", "parameters": [{"name": "petID", "in": "path", "required": true, "type": "string"}], "responses": {"201": {"description": "Created"}, "404": {"description": "Not Found"}, "409": {"description": "Conflict"}, "502": {"description": "Bad Gateway"}}}
        },
        "/reminders": {
            "get": {"tags": ["reminders"], "summary": "Historial, lo más reciente primero", "parameters": [{"name": "petId", "in": "query", "type": "string"}], "responses": {"200": {"description": "OK"}}}
        },
        "/reminders/status": {
            "get": {"tags": ["reminders"], "summary": "Envíos en curso", "responses": {"200": {"description": "OK"}}}
        },
        "/settings": {
            "get": {"tags": ["settings"], "summary": "Configuración de la clínica con defaults", "responses": {"200": {"description": "OK"}}},
            "put": {"tags": ["settings"], "summary": "Guarda la configuración", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "502": {"description": "Bad Gateway"}}}
        },
        "/settings/refresh": {
            "post": {"tags": ["settings"], "summary": "Vuelve a leer la configuración", "responses": {"200": {"description": "OK"}, "502": {"description": "Bad Gateway"}}}
        },
        "/campaigns": {
            "get": {"tags": ["campaigns"], "summary": "Lista campañas", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["campaigns"], "summary": "Crea una campaña (opcionalmente desde plantilla)", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "502": {"description": "Bad Gateway"}}}
        },
        "/campaigns/templates": {
            "get": {"tags": ["campaigns"], "summary": "Plantillas disponibles", "responses": {"200": {"description": "OK"}}}
        },
        "/drafts": {
            "get": {"tags": ["drafts"], "summary": "Borradores pendientes", "responses": {"200": {"description": "OK"}}}
        },
        "/drafts/auto-wishes": {
            "post": {"tags": ["drafts"], "summary": "Genera saludos automáticos", "responses": {"200": {"description": "OK"}, "502": {"description": "Bad Gateway"}}}
        },
        "/drafts/{draftID}/message": {
            "put": {"tags": ["drafts"], "summary": "Edita el mensaje en el buffer local", "parameters": [{"name": "draftID", "in": "path", "required": true, "type": "string"}], "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found"}}}
        },
        "/drafts/{draftID}/approve": {
            "post": {"tags": ["drafts"], "summary": "Aprueba un borrador", "parameters": [{"name": "draftID", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}, "502": {"description": "Bad Gateway"}}}
        },
        "/drafts/{draftID}/reject": {
            "post": {"tags": ["drafts"], "summary": "Rechaza un borrador", "parameters": [{"name": "draftID", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}, "502": {"description": "Bad Gateway"}}}
        },
        "/stats": {
            "get": {"tags": ["stats"], "summary": "Estadísticas derivadas", "responses": {"200": {"description": "OK"}}}
        },
        "/insights": {
            "get": {"tags": ["stats"], "summary": "Resumen IA de las estadísticas", "responses": {"200": {"description": "OK"}}}
        },
        "/notifications": {
            "get": {"tags": ["notifications"], "summary": "Notificaciones activas", "responses": {"200": {"description": "OK"}}}
        },
        "/notifications/{notificationID}": {
            "delete": {"tags": ["notifications"], "summary": "Descarta una notificación", "parameters": [{"name": "notificationID", "in": "path", "required": true, "type": "string"}], "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found"}}}
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Kizuna Dashboard API",
	Description:      "BFF del panel de recordatorios de la clínica.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
