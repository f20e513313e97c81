package ir

// Version constants for the serialized forms.
const (
	// IRVersion is the schema version of indexed tables and model records.
	IRVersion = "1"

	// ToolVersion is the rbin release version.
	ToolVersion = "0.1.0"
)
