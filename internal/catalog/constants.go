package catalog

// Error message formats
const (
	ErrMsgReadCatalogFailed  = "failed to read catalog: %w"
	ErrMsgParseCatalogFailed = "failed to parse catalog: %w"
	ErrMsgInvalidCatalog     = "invalid catalog: %w"
)

// UpgradeCostMultiplier scales worker upgrade prices per level
const UpgradeCostMultiplier = 1.6

// SchemaName is the embedded JSON schema catalog documents must match
const SchemaName = "catalog.schema.json"
