package log

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldSuccess   = "success"
	FieldError     = "error"
	FieldErrorType = "error_type"
	FieldOperation = "operation"
	FieldCommand   = "command"
	FieldYear      = "year"
	FieldMonth     = "month"
	FieldMonthKey  = "month_key"
	FieldKind      = "kind"
	FieldDate      = "date"
	FieldAmount    = "amount"
	FieldCategory  = "category"
	FieldRef       = "ref"
	FieldBackend   = "backend"
	FieldCommandID = "command_id"
	FieldDuration  = "duration_ms"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentCLI     = "cli"
	ComponentLedger  = "ledger"
	ComponentStorage = "storage"
	ComponentAMQP    = "amqp"
	ComponentBackend = "backend"
)

// Operations defines standard operation names
const (
	OpAppend   = "append"
	OpList     = "list"
	OpReport   = "report"
	OpPublish  = "publish"
	OpValidate = "validate"
	OpParse    = "parse"
	OpShutdown = "shutdown"
	OpStartup  = "startup"
)

// ErrorTypes defines standard error type categories
const (
	ErrorTypeValidation    = "validation_error"
	ErrorTypeConfiguration = "configuration_error"
	ErrorTypeDatabase      = "database_error"
	ErrorTypeNetwork       = "network_error"
	ErrorTypeInternal      = "internal_error"
)

// LogFields provides a builder pattern for structured log fields
type LogFields map[string]any

// NewFields creates a new LogFields instance
func NewFields() LogFields {
	return make(LogFields)
}

// WithError adds error field
func (f LogFields) WithError(err error) LogFields {
	if err != nil {
		f[FieldError] = err.Error()
	}
	return f
}

// WithOperation adds operation field
func (f LogFields) WithOperation(op string) LogFields {
	f[FieldOperation] = op
	return f
}

// WithTransaction adds transaction-related fields
func (f LogFields) WithTransaction(kind, date, amount, category string) LogFields {
	f[FieldKind] = kind
	f[FieldDate] = date
	f[FieldAmount] = amount
	f[FieldCategory] = category
	return f
}

// WithMonth adds year and month fields
func (f LogFields) WithMonth(year, month int) LogFields {
	f[FieldYear] = year
	f[FieldMonth] = month
	return f
}

// ToSlice converts LogFields to a slice for slog
func (f LogFields) ToSlice() []any {
	slice := make([]any, 0, len(f)*2)
	for k, v := range f {
		slice = append(slice, k, v)
	}
	return slice
}
