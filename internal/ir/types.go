package ir

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Sentinel symbols for the greatest and least elements of a bounded order.
const (
	TOP = "⟙"
	BOT = "⟘"
)

// CayleyTable is a binary operation keyed by first, then second argument.
type CayleyTable map[string]map[string]string

// UnaryTable is a unary operation keyed by its argument.
type UnaryTable map[string]string

// Operation is a named finite operation. Exactly one of Binary and Unary
// is set.
type Operation struct {
	Name   string      `json:"name"`
	Binary CayleyTable `json:"binary,omitempty"`
	Unary  UnaryTable  `json:"unary,omitempty"`
}

// Binary creates a binary operation.
func Binary(name string, table CayleyTable) Operation {
	return Operation{Name: name, Binary: table}
}

// Unary creates a unary operation.
func Unary(name string, table UnaryTable) Operation {
	return Operation{Name: name, Unary: table}
}

// Arity returns 2 for binary operations, 1 for unary ones and 0 for an
// operation with no table at all.
func (o Operation) Arity() int {
	switch {
	case o.Binary != nil:
		return 2
	case o.Unary != nil:
		return 1
	default:
		return 0
	}
}

// Keys returns the symbols the table is defined on, sorted.
func (o Operation) Keys() []string {
	var keys []string
	if o.Binary != nil {
		keys = make([]string, 0, len(o.Binary))
		for k := range o.Binary {
			keys = append(keys, k)
		}
	} else {
		keys = make([]string, 0, len(o.Unary))
		for k := range o.Unary {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// Clone returns a deep copy of the operation.
func (o Operation) Clone() Operation {
	c := Operation{Name: o.Name}
	if o.Binary != nil {
		c.Binary = make(CayleyTable, len(o.Binary))
		for one, row := range o.Binary {
			newRow := make(map[string]string, len(row))
			for two, v := range row {
				newRow[two] = v
			}
			c.Binary[one] = newRow
		}
	}
	if o.Unary != nil {
		c.Unary = make(UnaryTable, len(o.Unary))
		for k, v := range o.Unary {
			c.Unary[k] = v
		}
	}
	return c
}

// Operations is an ordered list of named operations.
// Declaration order is significant for proof text output.
type Operations []Operation

// Names returns operation names in declaration order.
func (ops Operations) Names() []string {
	names := make([]string, len(ops))
	for i, op := range ops {
		names[i] = op.Name
	}
	return names
}

// Get returns the operation with the given name.
func (ops Operations) Get(name string) (Operation, bool) {
	for _, op := range ops {
		if op.Name == name {
			return op, true
		}
	}
	return Operation{}, false
}

// Clone returns a deep copy of every operation.
func (ops Operations) Clone() Operations {
	if ops == nil {
		return nil
	}
	c := make(Operations, len(ops))
	for i, op := range ops {
		c[i] = op.Clone()
	}
	return c
}

// RawModel is a finite model as produced by an input adapter: a label
// plus fully populated operation tables, before any axiom checking.
type RawModel struct {
	Label      string     `json:"label"`
	Operations Operations `json:"operations"`
}

// IndexedTable is an operation with every symbol replaced by its 0-based
// index in a structure's symbol order. Exactly one field is set.
type IndexedTable struct {
	Binary [][]int
	Unary  []int
}

// MarshalJSON encodes the table as a nested integer list.
func (t IndexedTable) MarshalJSON() ([]byte, error) {
	if t.Binary != nil {
		return json.Marshal(t.Binary)
	}
	return json.Marshal(t.Unary)
}

// UnmarshalJSON accepts either a list of integer lists or a list of integers.
func (t *IndexedTable) UnmarshalJSON(data []byte) error {
	var binary [][]int
	if err := json.Unmarshal(data, &binary); err == nil {
		t.Binary, t.Unary = binary, nil
		return nil
	}
	var unary []int
	if err := json.Unmarshal(data, &unary); err != nil {
		return fmt.Errorf("indexed table: %w", err)
	}
	t.Binary, t.Unary = nil, unary
	return nil
}

// Value converts the table to an IRValue for canonical marshaling.
func (t IndexedTable) Value() IRValue {
	if t.Binary != nil {
		rows := make(IRArray, len(t.Binary))
		for i, row := range t.Binary {
			cells := make(IRArray, len(row))
			for j, v := range row {
				cells[j] = IRInt(v)
			}
			rows[i] = cells
		}
		return rows
	}
	cells := make(IRArray, len(t.Unary))
	for i, v := range t.Unary {
		cells[i] = IRInt(v)
	}
	return cells
}

// NamedTable pairs an operation name with its indexed table.
type NamedTable struct {
	Name  string       `json:"name"`
	Table IndexedTable `json:"table"`
}

// IndexedTables is an ordered list of indexed tables, one per operation.
type IndexedTables []NamedTable

// Get returns the indexed table of the named operation.
func (ts IndexedTables) Get(name string) (IndexedTable, bool) {
	for _, t := range ts {
		if t.Name == name {
			return t.Table, true
		}
	}
	return IndexedTable{}, false
}

// Object converts the tables to an IRObject keyed by operation name.
func (ts IndexedTables) Object() IRObject {
	obj := make(IRObject, len(ts))
	for _, t := range ts {
		obj[t.Name] = t.Table.Value()
	}
	return obj
}
