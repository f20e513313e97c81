package store

import (
	"encoding/json"
	"fmt"

	"github.com/roach88/rbin/internal/ir"
)

// marshalSymbols converts a symbol order to canonical JSON TEXT.
func marshalSymbols(symbols []string) (string, error) {
	data, err := ir.MarshalCanonical(ir.Strings(symbols))
	if err != nil {
		return "", fmt.Errorf("marshal symbols: %w", err)
	}
	return string(data), nil
}

// marshalTables converts indexed tables to JSON TEXT.
// Tables are stored as a list so declaration order survives the round trip.
func marshalTables(tables ir.IndexedTables) (string, error) {
	if tables == nil {
		tables = ir.IndexedTables{}
	}
	data, err := json.Marshal(tables)
	if err != nil {
		return "", fmt.Errorf("marshal tables: %w", err)
	}
	return string(data), nil
}

func unmarshalSymbols(data string) ([]string, error) {
	symbols := []string{}
	if data == "" {
		return symbols, nil
	}
	if err := json.Unmarshal([]byte(data), &symbols); err != nil {
		return nil, fmt.Errorf("unmarshal symbols: %w", err)
	}
	return symbols, nil
}

func unmarshalTables(data string) (ir.IndexedTables, error) {
	tables := ir.IndexedTables{}
	if data == "" {
		return tables, nil
	}
	if err := json.Unmarshal([]byte(data), &tables); err != nil {
		return nil, fmt.Errorf("unmarshal tables: %w", err)
	}
	return tables, nil
}
