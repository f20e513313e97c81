// Package render turns structures and Hasse diagrams into text formats:
// Graphviz DOT, LaTeX and Markdown Cayley tables, and JSON documents.
//
// Renderers only read the canonical data surfaces of a structure: its
// symbols, its proof text, its indexed tables and the Hasse edge list.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/roach88/rbin/internal/algebra"
	"github.com/roach88/rbin/internal/ir"
	"github.com/roach88/rbin/internal/order"
)

// ErrUnknownOperation indicates the requested operation is absent or has
// the wrong arity for the format.
var ErrUnknownOperation = errors.New("render: unknown operation")

// DefaultMultSymbol is the LaTeX symbol used when none is given.
const DefaultMultSymbol = `\cdot`

// DOT renders Hasse edges as an undirected Graphviz graph.
func DOT(edges []order.Edge) string {
	var b strings.Builder
	b.WriteString("graph {\n")
	for _, e := range edges {
		fmt.Fprintf(&b, "    %s -- %s\n", dotID(e.Upper), dotID(e.Lower))
	}
	b.WriteString("}\n")
	return b.String()
}

func dotID(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}

// LaTeXTable renders a binary operation as a LaTeX Cayley table.
// An empty symbol uses DefaultMultSymbol.
func LaTeXTable(s *algebra.Structure, op, symbol string) (string, error) {
	table, err := binary(s, op)
	if err != nil {
		return "", err
	}
	if symbol == "" {
		symbol = DefaultMultSymbol
	}
	symbols := s.Symbols()

	var b strings.Builder
	b.WriteString("\\begin{table}[]\n")
	fmt.Fprintf(&b, "\\begin{tabular}{l|%s}\n", strings.Repeat("l", len(symbols)))
	b.WriteString(math(append([]string{symbol}, symbols...)) + "\\\\\\hline\n")
	for _, x := range symbols {
		row := make([]string, 0, len(symbols)+1)
		row = append(row, x)
		for _, y := range symbols {
			row = append(row, table[x][y])
		}
		b.WriteString(math(row) + "\\\\\n")
	}
	b.WriteString("\\end{tabular}\n")
	b.WriteString("\\end{table}\n")
	return b.String(), nil
}

func math(cells []string) string {
	return "$" + strings.Join(cells, "$ & $") + "$"
}

// Markdown renders one operation as a GitHub table. Binary operations get
// a row per first argument; unary operations a single row of results.
func Markdown(s *algebra.Structure, op string) (string, error) {
	operation, ok := s.Operation(op)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownOperation, op)
	}
	symbols := s.Symbols()

	var b strings.Builder
	if operation.Unary != nil {
		writeRow(&b, append([]string{"x"}, symbols...))
		writeRule(&b, len(symbols)+1)
		row := []string{op + "(x)"}
		for _, x := range symbols {
			row = append(row, operation.Unary[x])
		}
		writeRow(&b, row)
		return b.String(), nil
	}

	writeRow(&b, append([]string{op}, symbols...))
	writeRule(&b, len(symbols)+1)
	for _, x := range symbols {
		row := []string{"**" + x + "**"}
		for _, y := range symbols {
			row = append(row, operation.Binary[x][y])
		}
		writeRow(&b, row)
	}
	return b.String(), nil
}

func writeRow(b *strings.Builder, cells []string) {
	escaped := make([]string, len(cells))
	for i, c := range cells {
		escaped[i] = strings.ReplaceAll(c, "|", `\|`)
	}
	b.WriteString("| " + strings.Join(escaped, " | ") + " |\n")
}

func writeRule(b *strings.Builder, n int) {
	b.WriteString("|" + strings.Repeat("---|", n) + "\n")
}

func binary(s *algebra.Structure, op string) (ir.CayleyTable, error) {
	operation, ok := s.Operation(op)
	if !ok || operation.Arity() != 2 {
		return nil, fmt.Errorf("%w: %q is not a binary operation", ErrUnknownOperation, op)
	}
	return operation.Binary, nil
}

// Document is the JSON export of a structure.
type Document struct {
	Label   string           `json:"label"`
	Variant algebra.Variant  `json:"variant"`
	ID      string           `json:"id"`
	Symbols []string         `json:"symbols"`
	Tables  ir.IndexedTables `json:"tables"`
	Hasse   []order.Edge     `json:"hasse,omitempty"`
}

// NewDocument builds the export of s. Hasse edges are included when
// withHasse is set; s must then own meet and join.
func NewDocument(s *algebra.Structure, withHasse bool) (*Document, error) {
	id, err := s.ID()
	if err != nil {
		return nil, err
	}
	doc := &Document{
		Label:   s.Label(),
		Variant: s.Variant(),
		ID:      id,
		Symbols: s.Symbols(),
		Tables:  s.IndexedTables(),
	}
	if withHasse {
		edges, err := order.Hasse(s)
		if err != nil {
			return nil, err
		}
		doc.Hasse = edges
	}
	return doc, nil
}

// JSON renders the document of s, indented by two spaces.
func JSON(s *algebra.Structure, withHasse bool) ([]byte, error) {
	doc, err := NewDocument(s, withHasse)
	if err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("render: marshal document: %w", err)
	}
	return append(data, '\n'), nil
}
