package domain

// SchemaVersion tags the on-disk layout of every stored entity. Opening a
// store written under a different version requires an explicit migration.
const SchemaVersion = 1

const (
	DefaultLocale   = "en"
	DefaultCurrency = "USD"
	DefaultTheme    = "Default"
)
