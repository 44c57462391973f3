package validation

import "errors"

// ErrSchemaViolation wraps every document that does not match its schema
var ErrSchemaViolation = errors.New("schema validation failed")

// Error message formats
const (
	ErrMsgParseData     = "failed to parse JSON data: %w"
	ErrMsgLoadSchema    = "failed to load schema %s: %w"
	ErrMsgParseSchema   = "failed to parse schema JSON: %w"
	ErrMsgAddSchema     = "failed to add schema resource: %w"
	ErrMsgCompileSchema = "failed to compile schema: %w"
)
