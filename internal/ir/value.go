package ir

import (
	"slices"
	"unicode/utf16"
)

// IRValue is one node of a canonical JSON document. The set of
// implementations is closed: strings, integers, booleans, arrays and
// objects. Structure identity never needs floats or null.
type IRValue interface {
	irValue()
}

type (
	// IRString is a symbol, operation name or other text.
	IRString string
	// IRInt is a table cell, cardinality or other integer.
	IRInt int64
	// IRBool is a flag.
	IRBool bool
	// IRArray is an ordered list, e.g. a table row.
	IRArray []IRValue
	// IRObject maps names to values. Iterate it with SortedKeys.
	IRObject map[string]IRValue
)

func (IRString) irValue() {}
func (IRInt) irValue()    {}
func (IRBool) irValue()   {}
func (IRArray) irValue()  {}
func (IRObject) irValue() {}

// Strings wraps a symbol list.
func Strings(ss []string) IRArray {
	arr := make(IRArray, 0, len(ss))
	for _, s := range ss {
		arr = append(arr, IRString(s))
	}
	return arr
}

// SortedKeys returns the object's keys ordered by UTF-16 code units.
// This is not byte order: a key outside the BMP sorts before U+E000.
func (obj IRObject) SortedKeys() []string {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, compareUTF16)
	return keys
}

func compareUTF16(a, b string) int {
	return slices.Compare(utf16.Encode([]rune(a)), utf16.Encode([]rune(b)))
}
