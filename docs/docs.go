// Package docs especificación OpenAPI servida en /docs.
// Se regenera con: swag init -g cmd/api/main.go -o docs
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
        "/api/audits/scan/{uuid}": {
            "post": {
                "parameters": [
                    {
                        "name": "uuid",
                        "in": "path",
                        "required": true,
                        "description": "UUID devuelto por stage",
                        "type": "string"
                    },
                    {
                        "name": "file",
                        "in": "formData",
                        "required": true,
                        "description": "Archivo con la columna de EPC",
                        "type": "file"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.ScanResponse",
                        "schema": {
                            "$ref": "#/definitions/dto.ScanResponse"
                        }
                    },
                    "400": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "summary": "Conciliar un escaneo contra lo registrado en stage",
                "tags": [
                    "audits"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/api/audits/scan/{uuid}/epcis": {
            "post": {
                "parameters": [
                    {
                        "name": "uuid",
                        "in": "path",
                        "required": true,
                        "description": "UUID devuelto por stage",
                        "type": "string"
                    },
                    {
                        "name": "file",
                        "in": "formData",
                        "required": true,
                        "description": "Archivo con la columna de EPC",
                        "type": "file"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "binary",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "400": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "summary": "Conciliación como documento EPCIS 1.2",
                "tags": [
                    "audits"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/xml"
                ]
            }
        },
        "/api/audits/scan/{uuid}/report": {
            "post": {
                "parameters": [
                    {
                        "name": "uuid",
                        "in": "path",
                        "required": true,
                        "description": "UUID devuelto por stage",
                        "type": "string"
                    },
                    {
                        "name": "file",
                        "in": "formData",
                        "required": true,
                        "description": "Archivo con la columna de EPC",
                        "type": "file"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "binary",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "400": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "summary": "Conciliación en PDF",
                "tags": [
                    "audits"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/pdf"
                ]
            }
        },
        "/api/audits/stage": {
            "post": {
                "parameters": [
                    {
                        "name": "warehouse_id",
                        "in": "formData",
                        "required": true,
                        "description": "Bodega auditada",
                        "type": "string"
                    },
                    {
                        "name": "file",
                        "in": "formData",
                        "required": true,
                        "description": "Archivo con la columna de EPC",
                        "type": "file"
                    }
                ],
                "responses": {
                    "201": {
                        "description": "dto.StageResponse",
                        "schema": {
                            "$ref": "#/definitions/dto.StageResponse"
                        }
                    },
                    "400": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "summary": "Registrar el conjunto esperado de EPC de una bodega",
                "tags": [
                    "audits"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/api/auth/login": {
            "post": {
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "description": "email, password",
                        "schema": {
                            "$ref": "#/definitions/dto.LoginRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.LoginResponse",
                        "schema": {
                            "$ref": "#/definitions/dto.LoginResponse"
                        }
                    },
                    "400": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "summary": "Iniciar sesión",
                "tags": [
                    "auth"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/api/companies/me": {
            "get": {
                "responses": {
                    "200": {
                        "description": "dto.DataResponse[dto.CompanyResponse]",
                        "schema": {
                            "$ref": "#/definitions/dto.DataResponse[dto.CompanyResponse]"
                        }
                    },
                    "401": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "summary": "Empresa del usuario autenticado",
                "tags": [
                    "companies"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/api/companies/register": {
            "post": {
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "description": "Empresa y usuario administrador",
                        "schema": {
                            "$ref": "#/definitions/dto.RegisterCompanyRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "dto.RegisterCompanyResponse",
                        "schema": {
                            "$ref": "#/definitions/dto.RegisterCompanyResponse"
                        }
                    },
                    "400": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "summary": "Registrar empresa y su administrador",
                "tags": [
                    "companies"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/api/products": {
            "post": {
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "description": "Datos del producto",
                        "schema": {
                            "$ref": "#/definitions/dto.CreateProductInfoRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "dto.DataResponse[dto.ProductInfoResponse]",
                        "schema": {
                            "$ref": "#/definitions/dto.DataResponse[dto.ProductInfoResponse]"
                        }
                    },
                    "400": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "summary": "Crear entrada de catálogo",
                "tags": [
                    "products"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/api/products/epc": {
            "get": {
                "parameters": [
                    {
                        "name": "limit",
                        "in": "query",
                        "required": false,
                        "description": "Tamaño de página",
                        "type": "integer"
                    },
                    {
                        "name": "page",
                        "in": "query",
                        "required": false,
                        "description": "Página (desde 1)",
                        "type": "integer"
                    },
                    {
                        "name": "sort",
                        "in": "query",
                        "required": false,
                        "description": "asc | desc",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.ListResponse[dto.ProductResponse]",
                        "schema": {
                            "$ref": "#/definitions/dto.ListResponse[dto.ProductResponse]"
                        }
                    }
                },
                "summary": "Listar unidades EPC",
                "tags": [
                    "products"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "produces": [
                    "application/json"
                ]
            },
            "post": {
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "description": "epc_numbers",
                        "schema": {
                            "$ref": "#/definitions/dto.EPCLookupRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.ListResponse[dto.ProductResponse]",
                        "schema": {
                            "$ref": "#/definitions/dto.ListResponse[dto.ProductResponse]"
                        }
                    },
                    "400": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "summary": "Buscar unidades por número EPC",
                "tags": [
                    "products"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/api/products/epc/add": {
            "post": {
                "parameters": [
                    {
                        "name": "zone_id",
                        "in": "formData",
                        "required": true,
                        "description": "Zona destino",
                        "type": "string"
                    },
                    {
                        "name": "product_info_id",
                        "in": "formData",
                        "required": true,
                        "description": "Entrada de catálogo",
                        "type": "string"
                    },
                    {
                        "name": "file",
                        "in": "formData",
                        "required": true,
                        "description": "Archivo con la columna de EPC",
                        "type": "file"
                    }
                ],
                "responses": {
                    "201": {
                        "description": "dto.BulkAddResponse",
                        "schema": {
                            "$ref": "#/definitions/dto.BulkAddResponse"
                        }
                    },
                    "400": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "summary": "Alta masiva de EPC en una zona (CSV o XLSX)",
                "tags": [
                    "products"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/api/products/search": {
            "post": {
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "description": "Alcance de la búsqueda",
                        "schema": {
                            "$ref": "#/definitions/dto.SearchProductInfoRequest"
                        }
                    },
                    {
                        "name": "limit",
                        "in": "query",
                        "required": false,
                        "description": "Tamaño de página",
                        "type": "integer"
                    },
                    {
                        "name": "page",
                        "in": "query",
                        "required": false,
                        "description": "Página (desde 1)",
                        "type": "integer"
                    },
                    {
                        "name": "sort",
                        "in": "query",
                        "required": false,
                        "description": "asc | desc",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.ListResponse[dto.ProductInfoResponse]",
                        "schema": {
                            "$ref": "#/definitions/dto.ListResponse[dto.ProductInfoResponse]"
                        }
                    },
                    "400": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "summary": "Buscar catálogo por empresa, bodega o zona",
                "tags": [
                    "products"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/api/products/{productId}": {
            "patch": {
                "parameters": [
                    {
                        "name": "productId",
                        "in": "path",
                        "required": true,
                        "description": "ID del producto",
                        "type": "string"
                    },
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "description": "Campos a modificar",
                        "schema": {
                            "$ref": "#/definitions/dto.UpdateProductInfoRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.DataResponse[dto.ProductInfoResponse]",
                        "schema": {
                            "$ref": "#/definitions/dto.DataResponse[dto.ProductInfoResponse]"
                        }
                    },
                    "400": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "summary": "Actualizar entrada de catálogo (parcial)",
                "tags": [
                    "products"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/api/roles": {
            "post": {
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "description": "Nombre, rutas y permisos",
                        "schema": {
                            "$ref": "#/definitions/dto.CreateRoleRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "dto.DataResponse[dto.RoleResponse]",
                        "schema": {
                            "$ref": "#/definitions/dto.DataResponse[dto.RoleResponse]"
                        }
                    },
                    "400": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "summary": "Crear rol",
                "tags": [
                    "roles"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ]
            },
            "get": {
                "parameters": [
                    {
                        "name": "limit",
                        "in": "query",
                        "required": false,
                        "description": "Tamaño de página",
                        "type": "integer"
                    },
                    {
                        "name": "page",
                        "in": "query",
                        "required": false,
                        "description": "Página (desde 1)",
                        "type": "integer"
                    },
                    {
                        "name": "sort",
                        "in": "query",
                        "required": false,
                        "description": "asc | desc",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.ListResponse[dto.RoleResponse]",
                        "schema": {
                            "$ref": "#/definitions/dto.ListResponse[dto.RoleResponse]"
                        }
                    }
                },
                "summary": "Listar roles",
                "tags": [
                    "roles"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/api/roles/{roleId}": {
            "get": {
                "parameters": [
                    {
                        "name": "roleId",
                        "in": "path",
                        "required": true,
                        "description": "ID del rol",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.DataResponse[dto.RoleResponse]",
                        "schema": {
                            "$ref": "#/definitions/dto.DataResponse[dto.RoleResponse]"
                        }
                    },
                    "404": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "summary": "Obtener rol",
                "tags": [
                    "roles"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "produces": [
                    "application/json"
                ]
            },
            "patch": {
                "parameters": [
                    {
                        "name": "roleId",
                        "in": "path",
                        "required": true,
                        "description": "ID del rol",
                        "type": "string"
                    },
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "description": "Rutas y permisos",
                        "schema": {
                            "$ref": "#/definitions/dto.UpdateRoleRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.DataResponse[dto.RoleResponse]",
                        "schema": {
                            "$ref": "#/definitions/dto.DataResponse[dto.RoleResponse]"
                        }
                    },
                    "403": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "summary": "Actualizar rol",
                "tags": [
                    "roles"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/api/shipments": {
            "post": {
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "description": "Bodegas de origen y destino",
                        "schema": {
                            "$ref": "#/definitions/dto.CreateShipmentRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "dto.DataResponse[dto.ShipmentResponse]",
                        "schema": {
                            "$ref": "#/definitions/dto.DataResponse[dto.ShipmentResponse]"
                        }
                    },
                    "400": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "summary": "Crear envío",
                "tags": [
                    "shipments"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ]
            },
            "get": {
                "parameters": [
                    {
                        "name": "status",
                        "in": "query",
                        "required": false,
                        "description": "Estado del envío",
                        "type": "string"
                    },
                    {
                        "name": "limit",
                        "in": "query",
                        "required": false,
                        "description": "Tamaño de página",
                        "type": "integer"
                    },
                    {
                        "name": "page",
                        "in": "query",
                        "required": false,
                        "description": "Página (desde 1)",
                        "type": "integer"
                    },
                    {
                        "name": "sort",
                        "in": "query",
                        "required": false,
                        "description": "asc | desc",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.ListResponse[dto.ShipmentResponse]",
                        "schema": {
                            "$ref": "#/definitions/dto.ListResponse[dto.ShipmentResponse]"
                        }
                    }
                },
                "summary": "Listar envíos",
                "tags": [
                    "shipments"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/api/shipments/{shipmentId}": {
            "get": {
                "parameters": [
                    {
                        "name": "shipmentId",
                        "in": "path",
                        "required": true,
                        "description": "ID del envío",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.DataResponse[dto.ShipmentResponse]",
                        "schema": {
                            "$ref": "#/definitions/dto.DataResponse[dto.ShipmentResponse]"
                        }
                    },
                    "404": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "summary": "Obtener envío",
                "tags": [
                    "shipments"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "produces": [
                    "application/json"
                ]
            },
            "patch": {
                "parameters": [
                    {
                        "name": "shipmentId",
                        "in": "path",
                        "required": true,
                        "description": "ID del envío",
                        "type": "string"
                    },
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "description": "Campos a modificar",
                        "schema": {
                            "$ref": "#/definitions/dto.UpdateShipmentRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.DataResponse[dto.ShipmentResponse]",
                        "schema": {
                            "$ref": "#/definitions/dto.DataResponse[dto.ShipmentResponse]"
                        }
                    },
                    "404": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "summary": "Actualizar destino o fecha del envío",
                "tags": [
                    "shipments"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/api/shipments/{shipmentId}/products": {
            "post": {
                "parameters": [
                    {
                        "name": "shipmentId",
                        "in": "path",
                        "required": true,
                        "description": "ID del envío",
                        "type": "string"
                    },
                    {
                        "name": "file",
                        "in": "formData",
                        "required": true,
                        "description": "Archivo con la columna de EPC",
                        "type": "file"
                    }
                ],
                "responses": {
                    "201": {
                        "description": "dto.BulkAddResponse",
                        "schema": {
                            "$ref": "#/definitions/dto.BulkAddResponse"
                        }
                    },
                    "400": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "summary": "Cargar EPC al envío (CSV o XLSX)",
                "tags": [
                    "shipments"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/api/shipments/{shipmentId}/status": {
            "patch": {
                "parameters": [
                    {
                        "name": "shipmentId",
                        "in": "path",
                        "required": true,
                        "description": "ID del envío",
                        "type": "string"
                    },
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "description": "Nuevo estado",
                        "schema": {
                            "$ref": "#/definitions/dto.UpdateShipmentStatusRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.ShipmentStatusResponse",
                        "schema": {
                            "$ref": "#/definitions/dto.ShipmentStatusResponse"
                        }
                    },
                    "400": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "summary": "Avanzar el estado del envío",
                "tags": [
                    "shipments"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/api/users": {
            "post": {
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "description": "Datos del usuario, rol y sucursal",
                        "schema": {
                            "$ref": "#/definitions/dto.CreateUserRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "dto.DataResponse[dto.UserResponse]",
                        "schema": {
                            "$ref": "#/definitions/dto.DataResponse[dto.UserResponse]"
                        }
                    },
                    "400": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "summary": "Crear usuario",
                "tags": [
                    "users"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ]
            },
            "get": {
                "parameters": [
                    {
                        "name": "role",
                        "in": "query",
                        "required": false,
                        "description": "Filtrar por rol",
                        "type": "string"
                    },
                    {
                        "name": "branch_path",
                        "in": "query",
                        "required": false,
                        "description": "company | warehouse",
                        "type": "string"
                    },
                    {
                        "name": "branch_id",
                        "in": "query",
                        "required": false,
                        "description": "ID de la sucursal",
                        "type": "string"
                    },
                    {
                        "name": "limit",
                        "in": "query",
                        "required": false,
                        "description": "Tamaño de página",
                        "type": "integer"
                    },
                    {
                        "name": "page",
                        "in": "query",
                        "required": false,
                        "description": "Página (desde 1)",
                        "type": "integer"
                    },
                    {
                        "name": "sort",
                        "in": "query",
                        "required": false,
                        "description": "asc | desc",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.ListResponse[dto.UserResponse]",
                        "schema": {
                            "$ref": "#/definitions/dto.ListResponse[dto.UserResponse]"
                        }
                    }
                },
                "summary": "Listar usuarios",
                "tags": [
                    "users"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/api/users/register/csv": {
            "post": {
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "description": "CSV con cabecera email,phone,password,branch_path,branch_id,role",
                        "schema": {
                            "$ref": "#/definitions/dto.RegisterUsersCSVRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "dto.RegisterUsersResponse",
                        "schema": {
                            "$ref": "#/definitions/dto.RegisterUsersResponse"
                        }
                    },
                    "400": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "summary": "Alta masiva de usuarios (CSV en el cuerpo)",
                "tags": [
                    "users"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/api/users/register/file/csv": {
            "post": {
                "parameters": [
                    {
                        "name": "file",
                        "in": "formData",
                        "required": true,
                        "description": "Archivo con cabecera email,phone,password,branch_path,branch_id,role",
                        "type": "file"
                    }
                ],
                "responses": {
                    "201": {
                        "description": "dto.RegisterUsersResponse",
                        "schema": {
                            "$ref": "#/definitions/dto.RegisterUsersResponse"
                        }
                    },
                    "400": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "summary": "Alta masiva de usuarios (archivo CSV o XLSX)",
                "tags": [
                    "users"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/api/users/register/json": {
            "post": {
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "description": "Usuarios",
                        "schema": {
                            "$ref": "#/definitions/dto.RegisterUsersRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "dto.RegisterUsersResponse",
                        "schema": {
                            "$ref": "#/definitions/dto.RegisterUsersResponse"
                        }
                    },
                    "400": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "summary": "Alta masiva de usuarios (JSON)",
                "tags": [
                    "users"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "description": "Todo o nada. Las filas sin password reciben una generada que se devuelve una sola vez.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/api/users/{userId}": {
            "get": {
                "parameters": [
                    {
                        "name": "userId",
                        "in": "path",
                        "required": true,
                        "description": "ID del usuario",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.DataResponse[dto.UserResponse]",
                        "schema": {
                            "$ref": "#/definitions/dto.DataResponse[dto.UserResponse]"
                        }
                    },
                    "403": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "summary": "Obtener usuario",
                "tags": [
                    "users"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "produces": [
                    "application/json"
                ]
            },
            "patch": {
                "parameters": [
                    {
                        "name": "userId",
                        "in": "path",
                        "required": true,
                        "description": "ID del usuario",
                        "type": "string"
                    },
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "description": "Campos a cambiar; branch_path y branch_id van juntos",
                        "schema": {
                            "$ref": "#/definitions/dto.UpdateUserRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.DataResponse[dto.UserResponse]",
                        "schema": {
                            "$ref": "#/definitions/dto.DataResponse[dto.UserResponse]"
                        }
                    },
                    "400": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "summary": "Actualizar usuario",
                "tags": [
                    "users"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/api/vendors": {
            "post": {
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "description": "Datos del proveedor",
                        "schema": {
                            "$ref": "#/definitions/dto.CreateVendorRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "dto.DataResponse[dto.VendorResponse]",
                        "schema": {
                            "$ref": "#/definitions/dto.DataResponse[dto.VendorResponse]"
                        }
                    },
                    "400": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "summary": "Crear proveedor",
                "tags": [
                    "vendors"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ]
            },
            "get": {
                "parameters": [
                    {
                        "name": "limit",
                        "in": "query",
                        "required": false,
                        "description": "Tamaño de página",
                        "type": "integer"
                    },
                    {
                        "name": "page",
                        "in": "query",
                        "required": false,
                        "description": "Página (desde 1)",
                        "type": "integer"
                    },
                    {
                        "name": "sort",
                        "in": "query",
                        "required": false,
                        "description": "asc | desc",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.ListResponse[dto.VendorResponse]",
                        "schema": {
                            "$ref": "#/definitions/dto.ListResponse[dto.VendorResponse]"
                        }
                    }
                },
                "summary": "Listar proveedores",
                "tags": [
                    "vendors"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/api/vendors/{vendorId}": {
            "get": {
                "parameters": [
                    {
                        "name": "vendorId",
                        "in": "path",
                        "required": true,
                        "description": "ID del proveedor",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.DataResponse[dto.VendorResponse]",
                        "schema": {
                            "$ref": "#/definitions/dto.DataResponse[dto.VendorResponse]"
                        }
                    },
                    "404": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "summary": "Obtener proveedor",
                "tags": [
                    "vendors"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "produces": [
                    "application/json"
                ]
            },
            "patch": {
                "parameters": [
                    {
                        "name": "vendorId",
                        "in": "path",
                        "required": true,
                        "description": "ID del proveedor",
                        "type": "string"
                    },
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "description": "Campos a cambiar",
                        "schema": {
                            "$ref": "#/definitions/dto.UpdateVendorRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.DataResponse[dto.VendorResponse]",
                        "schema": {
                            "$ref": "#/definitions/dto.DataResponse[dto.VendorResponse]"
                        }
                    },
                    "400": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "summary": "Actualizar proveedor",
                "tags": [
                    "vendors"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/api/warehouses": {
            "post": {
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "description": "Datos de la bodega",
                        "schema": {
                            "$ref": "#/definitions/dto.CreateWarehouseRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "dto.DataResponse[dto.WarehouseResponse]",
                        "schema": {
                            "$ref": "#/definitions/dto.DataResponse[dto.WarehouseResponse]"
                        }
                    },
                    "400": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "summary": "Crear bodega",
                "tags": [
                    "warehouses"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ]
            },
            "get": {
                "parameters": [
                    {
                        "name": "limit",
                        "in": "query",
                        "required": false,
                        "description": "Tamaño de página",
                        "type": "integer"
                    },
                    {
                        "name": "page",
                        "in": "query",
                        "required": false,
                        "description": "Página (desde 1)",
                        "type": "integer"
                    },
                    {
                        "name": "sort",
                        "in": "query",
                        "required": false,
                        "description": "asc | desc",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.ListResponse[dto.WarehouseResponse]",
                        "schema": {
                            "$ref": "#/definitions/dto.ListResponse[dto.WarehouseResponse]"
                        }
                    }
                },
                "summary": "Listar bodegas",
                "tags": [
                    "warehouses"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/api/warehouses/{warehouseId}": {
            "get": {
                "parameters": [
                    {
                        "name": "warehouseId",
                        "in": "path",
                        "required": true,
                        "description": "ID de la bodega",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.DataResponse[dto.WarehouseResponse]",
                        "schema": {
                            "$ref": "#/definitions/dto.DataResponse[dto.WarehouseResponse]"
                        }
                    },
                    "403": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "summary": "Obtener bodega",
                "tags": [
                    "warehouses"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/api/warehouses/{warehouseId}/zones": {
            "post": {
                "parameters": [
                    {
                        "name": "warehouseId",
                        "in": "path",
                        "required": true,
                        "description": "ID de la bodega",
                        "type": "string"
                    }
                ],
                "responses": {
                    "201": {
                        "description": "dto.DataResponse[dto.ZoneResponse]",
                        "schema": {
                            "$ref": "#/definitions/dto.DataResponse[dto.ZoneResponse]"
                        }
                    },
                    "403": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "summary": "Crear zona en una bodega",
                "tags": [
                    "warehouses"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "produces": [
                    "application/json"
                ]
            },
            "get": {
                "parameters": [
                    {
                        "name": "warehouseId",
                        "in": "path",
                        "required": true,
                        "description": "ID de la bodega",
                        "type": "string"
                    },
                    {
                        "name": "limit",
                        "in": "query",
                        "required": false,
                        "description": "Tamaño de página",
                        "type": "integer"
                    },
                    {
                        "name": "page",
                        "in": "query",
                        "required": false,
                        "description": "Página (desde 1)",
                        "type": "integer"
                    },
                    {
                        "name": "sort",
                        "in": "query",
                        "required": false,
                        "description": "asc | desc",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.ListResponse[dto.ZoneResponse]",
                        "schema": {
                            "$ref": "#/definitions/dto.ListResponse[dto.ZoneResponse]"
                        }
                    }
                },
                "summary": "Listar zonas de una bodega",
                "tags": [
                    "warehouses"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/api/warehouses/{warehouseId}/zones/{zoneId}": {
            "get": {
                "parameters": [
                    {
                        "name": "warehouseId",
                        "in": "path",
                        "required": true,
                        "description": "ID de la bodega",
                        "type": "string"
                    },
                    {
                        "name": "zoneId",
                        "in": "path",
                        "required": true,
                        "description": "ID de la zona",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.DataResponse[dto.ZoneResponse]",
                        "schema": {
                            "$ref": "#/definitions/dto.DataResponse[dto.ZoneResponse]"
                        }
                    },
                    "404": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "summary": "Obtener zona",
                "tags": [
                    "warehouses"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "produces": [
                    "application/json"
                ]
            }
        }
    },
    "definitions": {
        "dto.BulkAddResponse": {
            "type": "object"
        },
        "dto.CreateProductInfoRequest": {
            "type": "object"
        },
        "dto.CreateRoleRequest": {
            "type": "object"
        },
        "dto.CreateShipmentRequest": {
            "type": "object"
        },
        "dto.CreateUserRequest": {
            "type": "object"
        },
        "dto.CreateVendorRequest": {
            "type": "object"
        },
        "dto.CreateWarehouseRequest": {
            "type": "object"
        },
        "dto.DataResponse[dto.CompanyResponse]": {
            "type": "object"
        },
        "dto.DataResponse[dto.ProductInfoResponse]": {
            "type": "object"
        },
        "dto.DataResponse[dto.RoleResponse]": {
            "type": "object"
        },
        "dto.DataResponse[dto.ShipmentResponse]": {
            "type": "object"
        },
        "dto.DataResponse[dto.UserResponse]": {
            "type": "object"
        },
        "dto.DataResponse[dto.VendorResponse]": {
            "type": "object"
        },
        "dto.DataResponse[dto.WarehouseResponse]": {
            "type": "object"
        },
        "dto.DataResponse[dto.ZoneResponse]": {
            "type": "object"
        },
        "dto.EPCLookupRequest": {
            "type": "object"
        },
        "dto.ErrorResponse": {
            "type": "object"
        },
        "dto.ListResponse[dto.ProductInfoResponse]": {
            "type": "object"
        },
        "dto.ListResponse[dto.ProductResponse]": {
            "type": "object"
        },
        "dto.ListResponse[dto.RoleResponse]": {
            "type": "object"
        },
        "dto.ListResponse[dto.ShipmentResponse]": {
            "type": "object"
        },
        "dto.ListResponse[dto.UserResponse]": {
            "type": "object"
        },
        "dto.ListResponse[dto.VendorResponse]": {
            "type": "object"
        },
        "dto.ListResponse[dto.WarehouseResponse]": {
            "type": "object"
        },
        "dto.ListResponse[dto.ZoneResponse]": {
            "type": "object"
        },
        "dto.LoginRequest": {
            "type": "object"
        },
        "dto.LoginResponse": {
            "type": "object"
        },
        "dto.RegisterCompanyRequest": {
            "type": "object"
        },
        "dto.RegisterCompanyResponse": {
            "type": "object"
        },
        "dto.RegisterUsersCSVRequest": {
            "type": "object"
        },
        "dto.RegisterUsersRequest": {
            "type": "object"
        },
        "dto.RegisterUsersResponse": {
            "type": "object"
        },
        "dto.ScanResponse": {
            "type": "object"
        },
        "dto.SearchProductInfoRequest": {
            "type": "object"
        },
        "dto.ShipmentStatusResponse": {
            "type": "object"
        },
        "dto.StageResponse": {
            "type": "object"
        },
        "dto.UpdateProductInfoRequest": {
            "type": "object"
        },
        "dto.UpdateRoleRequest": {
            "type": "object"
        },
        "dto.UpdateShipmentRequest": {
            "type": "object"
        },
        "dto.UpdateShipmentStatusRequest": {
            "type": "object"
        },
        "dto.UpdateUserRequest": {
            "type": "object"
        },
        "dto.UpdateVendorRequest": {
            "type": "object"
        }
    },
    "securityDefinitions": {
        "Bearer": {
            "description": "Bearer <token>",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo metadatos exportados de la especificación.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "EPC Inventory API",
	Description:      "Inventario multiempresa por EPC: bodegas, zonas, catálogo, envíos y auditorías.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
