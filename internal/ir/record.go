package ir

// ModelRecord is a catalogued structure presentation.
// ID is the StructureID of (Variant, Symbols, Tables).
type ModelRecord struct {
	ID          string        `json:"id"`
	Variant     string        `json:"variant"`
	Cardinality int           `json:"cardinality"`
	Symbols     []string      `json:"symbols"`
	Tables      IndexedTables `json:"tables"`
	ProofText   string        `json:"proof_text"`
	Seq         int64         `json:"seq"`
}

// Sighting records that an input labelled Label produced the model ModelID
// while ingesting batch Batch.
type Sighting struct {
	ID      string `json:"id"`
	ModelID string `json:"model_id"`
	Label   string `json:"label"`
	Batch   string `json:"batch"`
	Seq     int64  `json:"seq"`
}
