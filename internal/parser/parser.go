// Package parser reads finite models out of Isabelle/Nitpick replies.
//
// Nitpick prints each operation of a counterexample as a lambda with a
// list of point updates:
//
//	    join =
//	      (\<lambda>x. _)
//	      ((0, 0) := 0, (0, 1) := 1, (1, 0) := 1, (1, 1) := 1)
//	    invo =
//	      (\<lambda>x. _)
//	      (0 := 1, 1 := 0)
//
// The Isabelle server log carries the replies as JSON on a line starting
// with FINISHED.
package parser

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/roach88/rbin/internal/ir"
)

// ErrNoReply indicates a log without a finished reply that mentions a lambda.
var ErrNoReply = errors.New("parser: no finished reply with a model")

var (
	binaryPattern = regexp.MustCompile(`\((\d+), (\d+)\) := (\d+)`)
	unaryPattern  = regexp.MustCompile(`(\d+) := (\d+)`)
	blockPattern  = regexp.MustCompile(`    (\w+) =\n? +\(\\<lambda>x\. _\)\n? *\(([^a-z]*)\)\n`)
)

// ParseBinary collects "(i, j) := k" updates into a Cayley table.
// Text without such updates yields an empty table.
func ParseBinary(text string) ir.CayleyTable {
	table := ir.CayleyTable{}
	for _, m := range binaryPattern.FindAllStringSubmatch(text, -1) {
		row, ok := table[m[1]]
		if !ok {
			row = map[string]string{}
			table[m[1]] = row
		}
		row[m[2]] = m[3]
	}
	return table
}

// ParseUnary collects "i := k" updates into a unary table.
func ParseUnary(text string) ir.UnaryTable {
	table := ir.UnaryTable{}
	for _, m := range unaryPattern.FindAllStringSubmatch(text, -1) {
		table[m[1]] = m[2]
	}
	return table
}

// ParseModel extracts every operation block of a Nitpick message, in the
// order they appear. A block with pair updates is binary, otherwise unary.
func ParseModel(label, message string) ir.RawModel {
	model := ir.RawModel{Label: label, Operations: ir.Operations{}}
	for _, m := range blockPattern.FindAllStringSubmatch(message, -1) {
		name, body := m[1], m[2]
		if table := ParseBinary(body); len(table) > 0 {
			model.Operations = append(model.Operations, ir.Binary(name, table))
			continue
		}
		model.Operations = append(model.Operations, ir.Unary(name, ParseUnary(body)))
	}
	return model
}

type reply struct {
	Nodes []struct {
		TheoryName string `json:"theory_name"`
		Messages   []struct {
			Message string `json:"message"`
		} `json:"messages"`
	} `json:"nodes"`
}

// ParseReply reads an Isabelle server log and returns one raw model per
// theory whose messages contain a lambda. Only the first FINISHED line
// that mentions a lambda is read. The label of a model is the theory name
// without its session prefix: "Tmp.T42" becomes "T42".
func ParseReply(r io.Reader) ([]ir.RawModel, error) {
	line, err := findFinished(r)
	if err != nil {
		return nil, err
	}

	start := strings.Index(line, "{")
	if start < 0 {
		return nil, fmt.Errorf("parser: FINISHED line carries no JSON object")
	}
	var rep reply
	if err := json.Unmarshal([]byte(line[start:]), &rep); err != nil {
		return nil, fmt.Errorf("parser: decode reply: %w", err)
	}

	models := []ir.RawModel{}
	for _, node := range rep.Nodes {
		for _, msg := range node.Messages {
			if strings.Contains(msg.Message, "lambda") {
				models = append(models, ParseModel(theoryLabel(node.TheoryName), msg.Message))
				break
			}
		}
	}
	return models, nil
}

func findFinished(r io.Reader) (string, error) {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if strings.Contains(line, "FINISHED") && strings.Contains(line, "lambda") {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if err == io.EOF {
			return "", ErrNoReply
		}
		if err != nil {
			return "", fmt.Errorf("parser: read log: %w", err)
		}
	}
}

func theoryLabel(name string) string {
	parts := strings.Split(name, ".")
	if len(parts) > 1 {
		return parts[1]
	}
	return name
}
