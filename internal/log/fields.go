package log

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldOperation   = "operation"
	FieldError       = "error"
	FieldKey         = "key"
	FieldEmail       = "email"
	FieldTxnID       = "id"
	FieldTxnType     = "type"
	FieldCategory    = "category"
	FieldAmountCents = "amount_cents"
	FieldDate        = "date"
	FieldCount       = "count"
	FieldBackend     = "backend"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentLedger  = "ledger"
	ComponentBlob    = "blob"
	ComponentReports = "reports"
	ComponentBackend = "backend"
	ComponentCLI     = "cli"
)

// Operations defines standard operation names
const (
	OpLoad   = "load"
	OpLogin  = "login"
	OpLogout = "logout"
	OpAdd    = "add"
	OpUpdate = "update"
	OpDelete = "delete"
	OpClear  = "clear"
	OpExport = "export"
	OpImport = "import"
)
