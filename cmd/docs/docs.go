// Package docs holds the OpenAPI description served under /swagger.
// Regenerate with: swag init -g cmd/receipts_backend/main.go -o cmd/docs
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
		"/customers": {
			"get": {
				"tags": [
					"customers"
				],
				"summary": "List customers",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.ListCustomersResponse"
						}
					},
					"500": {
						"description": "Internal error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			},
			"post": {
				"tags": [
					"customers"
				],
				"summary": "Create a customer",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "customer",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.CreateCustomerRequest"
						},
						"description": "customer"
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/dto.CustomerResponse"
						}
					},
					"400": {
						"description": "Invalid input",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"500": {
						"description": "Internal error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/customers/{customer_id}": {
			"get": {
				"tags": [
					"customers"
				],
				"summary": "Get a customer",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"name": "customer_id",
						"in": "path",
						"required": true,
						"description": "Customer ID"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.CustomerResponse"
						}
					},
					"404": {
						"description": "Not found",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"500": {
						"description": "Internal error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/customers/{customer_id}/statement": {
			"get": {
				"tags": [
					"customers"
				],
				"summary": "Get a statement of account",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"name": "customer_id",
						"in": "path",
						"required": true,
						"description": "Customer ID"
					},
					{
						"type": "string",
						"name": "from",
						"in": "query",
						"description": "Start date (YYYY-MM-DD)"
					},
					{
						"type": "string",
						"name": "to",
						"in": "query",
						"description": "End date, inclusive (YYYY-MM-DD)"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.StatementOfAccount"
						}
					},
					"400": {
						"description": "Invalid input",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"404": {
						"description": "Not found",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"500": {
						"description": "Internal error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/delegates": {
			"get": {
				"tags": [
					"delegates"
				],
				"summary": "List delegates",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.ListDelegatesResponse"
						}
					},
					"500": {
						"description": "Internal error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			},
			"post": {
				"tags": [
					"delegates"
				],
				"summary": "Create a delegate",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "delegate",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.CreateDelegateRequest"
						},
						"description": "delegate"
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/dto.DelegateResponse"
						}
					},
					"400": {
						"description": "Invalid input",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"500": {
						"description": "Internal error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/delegates/{delegate_id}": {
			"delete": {
				"tags": [
					"delegates"
				],
				"summary": "Delete a delegate",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"name": "delegate_id",
						"in": "path",
						"required": true,
						"description": "Delegate ID"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.DelegateResponse"
						}
					},
					"404": {
						"description": "Not found",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"500": {
						"description": "Internal error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/invoices": {
			"get": {
				"tags": [
					"invoices"
				],
				"summary": "List invoices",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"name": "customerID",
						"in": "query",
						"description": "Customer ID"
					},
					{
						"type": "integer",
						"name": "limit",
						"in": "query",
						"description": "Page size"
					},
					{
						"type": "string",
						"name": "nextToken",
						"in": "query",
						"description": "Token from the previous page"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.ListInvoicesResponse"
						}
					},
					"400": {
						"description": "Invalid input",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"500": {
						"description": "Internal error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			},
			"post": {
				"tags": [
					"invoices"
				],
				"summary": "Create an invoice",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "invoice",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.CreateInvoiceRequest"
						},
						"description": "invoice"
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/dto.InvoiceResponse"
						}
					},
					"400": {
						"description": "Invalid input",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"404": {
						"description": "Not found",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"500": {
						"description": "Internal error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/invoices/{invoice_id}": {
			"get": {
				"tags": [
					"invoices"
				],
				"summary": "Get an invoice",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"name": "invoice_id",
						"in": "path",
						"required": true,
						"description": "Invoice ID"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.InvoiceResponse"
						}
					},
					"404": {
						"description": "Not found",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"500": {
						"description": "Internal error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/payments": {
			"get": {
				"tags": [
					"payments"
				],
				"summary": "List payments",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"name": "customerID",
						"in": "query",
						"description": "Customer ID"
					},
					{
						"type": "string",
						"name": "from",
						"in": "query",
						"description": "Start date (YYYY-MM-DD)"
					},
					{
						"type": "string",
						"name": "to",
						"in": "query",
						"description": "End date, inclusive (YYYY-MM-DD)"
					},
					{
						"type": "integer",
						"name": "limit",
						"in": "query",
						"description": "Page size"
					},
					{
						"type": "string",
						"name": "nextToken",
						"in": "query",
						"description": "Token from the previous page"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.ListPaymentsResponse"
						}
					},
					"400": {
						"description": "Invalid input",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"500": {
						"description": "Internal error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			},
			"post": {
				"tags": [
					"payments"
				],
				"summary": "Record a payment",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"name": "Idempotency-Key",
						"in": "header",
						"description": "Repeated submissions with the same key return the first payment"
					},
					{
						"name": "payment",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.RecordPaymentRequest"
						},
						"description": "payment"
					}
				],
				"responses": {
					"200": {
						"description": "Replayed submission",
						"schema": {
							"$ref": "#/definitions/dto.RecordPaymentResponse"
						}
					},
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/dto.RecordPaymentResponse"
						}
					},
					"400": {
						"description": "Invalid input",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"404": {
						"description": "Not found",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"409": {
						"description": "Submission with this key still in progress",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"500": {
						"description": "Internal error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/reports/dashboard": {
			"get": {
				"tags": [
					"reports"
				],
				"summary": "Dashboard summary",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.DashboardResponse"
						}
					},
					"500": {
						"description": "Internal error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/reports/daily": {
			"get": {
				"tags": [
					"reports"
				],
				"summary": "Daily performance",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"name": "from",
						"in": "query",
						"description": "Start date (YYYY-MM-DD)"
					},
					{
						"type": "string",
						"name": "to",
						"in": "query",
						"description": "End date, inclusive (YYYY-MM-DD)"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.DailyPerformanceResponse"
						}
					},
					"400": {
						"description": "Invalid input",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"500": {
						"description": "Internal error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/reports/delegates": {
			"get": {
				"tags": [
					"reports"
				],
				"summary": "Debt by delegate",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"name": "from",
						"in": "query",
						"description": "Start date (YYYY-MM-DD)"
					},
					{
						"type": "string",
						"name": "to",
						"in": "query",
						"description": "End date, inclusive (YYYY-MM-DD)"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.DelegateDebtsResponse"
						}
					},
					"400": {
						"description": "Invalid input",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"500": {
						"description": "Internal error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/engine/split": {
			"post": {
				"tags": [
					"engine"
				],
				"summary": "Split an invoice total",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.SplitRequest"
						},
						"description": "request"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.DebtPair"
						}
					},
					"400": {
						"description": "Invalid input",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/engine/apply": {
			"post": {
				"tags": [
					"engine"
				],
				"summary": "Allocate a payment",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.ApplyRequest"
						},
						"description": "request"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.AllocationResult"
						}
					},
					"400": {
						"description": "Invalid input",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/engine/resolve": {
			"post": {
				"tags": [
					"engine"
				],
				"summary": "Resolve invoice status",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.ResolveRequest"
						},
						"description": "request"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.ResolveResponse"
						}
					},
					"400": {
						"description": "Invalid input",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/engine/statement": {
			"post": {
				"tags": [
					"engine"
				],
				"summary": "Build a statement from events",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.StatementRequest"
						},
						"description": "request"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.Statement"
						}
					},
					"400": {
						"description": "Invalid input",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"500": {
						"description": "Internal error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		}
	},
	"definitions": {
		"domain.DebtPair": {
			"type": "object",
			"properties": {
				"cash": {
					"type": "string",
					"example": "100.00"
				},
				"cheque": {
					"type": "string",
					"example": "100.00"
				}
			}
		},
		"domain.AllocationResult": {
			"type": "object",
			"properties": {
				"remainingDebts": {
					"$ref": "#/definitions/domain.DebtPair"
				},
				"cashCoverage": {
					"type": "string",
					"example": "100.00"
				},
				"chequeCoverage": {
					"type": "string",
					"example": "100.00"
				},
				"surplus": {
					"type": "string",
					"example": "100.00"
				}
			}
		},
		"domain.Balance": {
			"type": "object",
			"properties": {
				"cash": {
					"type": "string",
					"example": "100.00"
				},
				"cheque": {
					"type": "string",
					"example": "100.00"
				},
				"total": {
					"type": "string",
					"example": "100.00"
				}
			}
		},
		"domain.LedgerEvent": {
			"type": "object",
			"properties": {
				"type": {
					"type": "string",
					"enum": [
						"INVOICE",
						"PAYMENT"
					]
				},
				"id": {
					"type": "string"
				},
				"seq": {
					"type": "integer"
				},
				"reference": {
					"type": "string"
				},
				"createdAt": {
					"type": "string"
				},
				"amount": {
					"type": "string",
					"example": "100.00"
				},
				"split": {
					"$ref": "#/definitions/domain.DebtPair"
				},
				"status": {
					"type": "string",
					"enum": [
						"UNPAID",
						"PARTIALLY_PAID",
						"PAID"
					]
				},
				"method": {
					"type": "string",
					"enum": [
						"CASH",
						"CHEQUE",
						"BANK_TRANSFER"
					]
				},
				"isException": {
					"type": "boolean"
				},
				"invoiceID": {
					"type": "string"
				}
			}
		},
		"domain.EnrichedEvent": {
			"type": "object",
			"properties": {
				"type": {
					"type": "string",
					"enum": [
						"INVOICE",
						"PAYMENT"
					]
				},
				"id": {
					"type": "string"
				},
				"seq": {
					"type": "integer"
				},
				"reference": {
					"type": "string"
				},
				"createdAt": {
					"type": "string"
				},
				"amount": {
					"type": "string",
					"example": "100.00"
				},
				"split": {
					"$ref": "#/definitions/domain.DebtPair"
				},
				"status": {
					"type": "string",
					"enum": [
						"UNPAID",
						"PARTIALLY_PAID",
						"PAID"
					]
				},
				"method": {
					"type": "string",
					"enum": [
						"CASH",
						"CHEQUE",
						"BANK_TRANSFER"
					]
				},
				"isException": {
					"type": "boolean"
				},
				"invoiceID": {
					"type": "string"
				},
				"allocation": {
					"$ref": "#/definitions/domain.AllocationResult"
				},
				"runningCash": {
					"type": "string",
					"example": "100.00"
				},
				"runningCheque": {
					"type": "string",
					"example": "100.00"
				},
				"runningCredit": {
					"type": "string",
					"example": "100.00"
				},
				"runningTotal": {
					"type": "string",
					"example": "100.00"
				}
			}
		},
		"domain.AggregateBalance": {
			"type": "object",
			"properties": {
				"invoicedCash": {
					"type": "string",
					"example": "100.00"
				},
				"invoicedCheque": {
					"type": "string",
					"example": "100.00"
				},
				"cashPaid": {
					"type": "string",
					"example": "100.00"
				},
				"chequePaid": {
					"type": "string",
					"example": "100.00"
				}
			}
		},
		"domain.Statement": {
			"type": "object",
			"properties": {
				"history": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.EnrichedEvent"
					}
				},
				"finalBalance": {
					"$ref": "#/definitions/domain.Balance"
				}
			}
		},
		"domain.StatementOfAccount": {
			"type": "object",
			"properties": {
				"customer": {
					"$ref": "#/definitions/dto.CustomerResponse"
				},
				"from": {
					"type": "string"
				},
				"to": {
					"type": "string"
				},
				"history": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.EnrichedEvent"
					}
				},
				"finalBalance": {
					"$ref": "#/definitions/domain.Balance"
				}
			}
		},
		"domain.DelegateDebt": {
			"type": "object",
			"properties": {
				"delegateID": {
					"type": "string"
				},
				"delegateName": {
					"type": "string"
				},
				"customerCount": {
					"type": "integer"
				},
				"totalCashDue": {
					"type": "string",
					"example": "100.00"
				},
				"totalChequeDue": {
					"type": "string",
					"example": "100.00"
				},
				"totalDue": {
					"type": "string",
					"example": "100.00"
				}
			}
		},
		"dto.CreateCustomerRequest": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"phone": {
					"type": "string"
				},
				"notes": {
					"type": "string"
				},
				"delegateID": {
					"type": "string"
				}
			},
			"required": [
				"name"
			]
		},
		"dto.CustomerResponse": {
			"type": "object",
			"properties": {
				"customerID": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"phone": {
					"type": "string"
				},
				"notes": {
					"type": "string"
				},
				"delegateID": {
					"type": "string"
				},
				"delegateName": {
					"type": "string"
				},
				"balance": {
					"$ref": "#/definitions/domain.Balance"
				},
				"createdAt": {
					"type": "string"
				},
				"lastUpdatedAt": {
					"type": "string"
				}
			}
		},
		"dto.ListCustomersResponse": {
			"type": "object",
			"properties": {
				"customers": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.CustomerResponse"
					}
				}
			}
		},
		"dto.CreateDelegateRequest": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"phone": {
					"type": "string"
				},
				"role": {
					"type": "string"
				}
			},
			"required": [
				"name"
			]
		},
		"dto.DelegateResponse": {
			"type": "object",
			"properties": {
				"delegateID": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"phone": {
					"type": "string"
				},
				"role": {
					"type": "string"
				},
				"createdAt": {
					"type": "string"
				}
			}
		},
		"dto.ListDelegatesResponse": {
			"type": "object",
			"properties": {
				"delegates": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.DelegateResponse"
					}
				}
			}
		},
		"dto.CreateInvoiceRequest": {
			"type": "object",
			"properties": {
				"customerID": {
					"type": "string"
				},
				"totalAmount": {
					"type": "string",
					"example": "100.00"
				},
				"invoiceDate": {
					"type": "string"
				},
				"notes": {
					"type": "string"
				}
			},
			"required": [
				"customerID",
				"totalAmount"
			]
		},
		"dto.InvoiceResponse": {
			"type": "object",
			"properties": {
				"invoiceID": {
					"type": "string"
				},
				"invoiceNumber": {
					"type": "string"
				},
				"customerID": {
					"type": "string"
				},
				"customerName": {
					"type": "string"
				},
				"totalAmount": {
					"type": "string",
					"example": "100.00"
				},
				"cashDebt": {
					"type": "string",
					"example": "100.00"
				},
				"chequeDebt": {
					"type": "string",
					"example": "100.00"
				},
				"remaining": {
					"$ref": "#/definitions/domain.DebtPair"
				},
				"invoiceDate": {
					"type": "string"
				},
				"notes": {
					"type": "string"
				},
				"status": {
					"type": "string",
					"enum": [
						"UNPAID",
						"PARTIALLY_PAID",
						"PAID"
					]
				},
				"createdAt": {
					"type": "string"
				}
			}
		},
		"dto.ListInvoicesResponse": {
			"type": "object",
			"properties": {
				"invoices": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.InvoiceResponse"
					}
				},
				"nextToken": {
					"type": "string"
				}
			}
		},
		"dto.RecordPaymentRequest": {
			"type": "object",
			"properties": {
				"customerID": {
					"type": "string"
				},
				"invoiceID": {
					"type": "string"
				},
				"amount": {
					"type": "string",
					"example": "100.00"
				},
				"method": {
					"type": "string",
					"enum": [
						"CASH",
						"CHEQUE",
						"BANK_TRANSFER"
					]
				},
				"isException": {
					"type": "boolean"
				},
				"bankName": {
					"type": "string"
				},
				"notes": {
					"type": "string"
				}
			},
			"required": [
				"customerID",
				"amount",
				"method"
			]
		},
		"dto.PaymentResponse": {
			"type": "object",
			"properties": {
				"paymentID": {
					"type": "string"
				},
				"customerID": {
					"type": "string"
				},
				"customerName": {
					"type": "string"
				},
				"invoiceID": {
					"type": "string"
				},
				"invoiceNumber": {
					"type": "string"
				},
				"amount": {
					"type": "string",
					"example": "100.00"
				},
				"method": {
					"type": "string",
					"enum": [
						"CASH",
						"CHEQUE",
						"BANK_TRANSFER"
					]
				},
				"isException": {
					"type": "boolean"
				},
				"bankName": {
					"type": "string"
				},
				"notes": {
					"type": "string"
				},
				"createdAt": {
					"type": "string"
				}
			}
		},
		"dto.RecordPaymentResponse": {
			"type": "object",
			"properties": {
				"payment": {
					"$ref": "#/definitions/dto.PaymentResponse"
				},
				"invoice": {
					"$ref": "#/definitions/dto.InvoiceResponse"
				},
				"allocation": {
					"$ref": "#/definitions/domain.AllocationResult"
				},
				"replayed": {
					"type": "boolean"
				}
			}
		},
		"dto.ListPaymentsResponse": {
			"type": "object",
			"properties": {
				"payments": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.PaymentResponse"
					}
				},
				"nextToken": {
					"type": "string"
				}
			}
		},
		"dto.DashboardResponse": {
			"type": "object",
			"properties": {
				"totalCashDebt": {
					"type": "string",
					"example": "100.00"
				},
				"totalChequeDebt": {
					"type": "string",
					"example": "100.00"
				},
				"totalDebt": {
					"type": "string",
					"example": "100.00"
				},
				"totalInvoiceVolume": {
					"type": "string",
					"example": "100.00"
				},
				"customerCount": {
					"type": "integer"
				},
				"recentPayments": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.PaymentResponse"
					}
				}
			}
		},
		"dto.DailyPerformanceResponse": {
			"type": "object",
			"properties": {
				"fromDate": {
					"type": "string"
				},
				"toDate": {
					"type": "string"
				},
				"invoices": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.InvoiceResponse"
					}
				},
				"payments": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.PaymentResponse"
					}
				},
				"invoiceCount": {
					"type": "integer"
				},
				"invoiceAmount": {
					"type": "string",
					"example": "100.00"
				},
				"paymentCount": {
					"type": "integer"
				},
				"paymentAmount": {
					"type": "string",
					"example": "100.00"
				}
			}
		},
		"dto.DelegateDebtsResponse": {
			"type": "object",
			"properties": {
				"delegates": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.DelegateDebt"
					}
				}
			}
		},
		"dto.SplitRequest": {
			"type": "object",
			"properties": {
				"total": {
					"type": "string",
					"example": "100.00"
				}
			},
			"required": [
				"total"
			]
		},
		"dto.DebtPairRequest": {
			"type": "object",
			"properties": {
				"cash": {
					"type": "string",
					"example": "100.00"
				},
				"cheque": {
					"type": "string",
					"example": "100.00"
				}
			},
			"required": [
				"cash",
				"cheque"
			]
		},
		"dto.PaymentInputRequest": {
			"type": "object",
			"properties": {
				"amount": {
					"type": "string",
					"example": "100.00"
				},
				"method": {
					"type": "string",
					"enum": [
						"CASH",
						"CHEQUE",
						"BANK_TRANSFER"
					]
				},
				"isException": {
					"type": "boolean"
				}
			},
			"required": [
				"amount",
				"method"
			]
		},
		"dto.ApplyRequest": {
			"type": "object",
			"properties": {
				"debts": {
					"$ref": "#/definitions/dto.DebtPairRequest"
				},
				"payment": {
					"$ref": "#/definitions/dto.PaymentInputRequest"
				}
			}
		},
		"dto.ResolveRequest": {
			"type": "object",
			"properties": {
				"total": {
					"type": "string",
					"example": "100.00"
				},
				"remaining": {
					"type": "string",
					"example": "100.00"
				}
			},
			"required": [
				"total",
				"remaining"
			]
		},
		"dto.ResolveResponse": {
			"type": "object",
			"properties": {
				"status": {
					"type": "string",
					"enum": [
						"UNPAID",
						"PARTIALLY_PAID",
						"PAID"
					]
				}
			}
		},
		"dto.StatementRequest": {
			"type": "object",
			"properties": {
				"events": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.LedgerEvent"
					}
				},
				"aggregate": {
					"$ref": "#/definitions/domain.AggregateBalance"
				}
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
	Title:            "Receipts Ledger API",
	Description:      "Accounts receivable with the cash and cheque split of every invoice.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
