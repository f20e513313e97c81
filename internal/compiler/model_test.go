package compiler

import (
	"testing"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/rbin/internal/ir"
)

func TestCompileModelBasic(t *testing.T) {
	ctx := cuecontext.New()
	v := ctx.CompileString(`
		model: T30: {
			variant: "residuated_binar"
			operations: {
				join: {"0": {"0": "0", "1": "1"}, "1": {"0": "1", "1": "1"}}
				meet: {"0": {"0": "0", "1": "0"}, "1": {"0": "0", "1": "1"}}
				invo: {"0": "1", "1": "0"}
			}
		}
	`)

	require.NoError(t, v.Err())
	spec, err := CompileModel(v.LookupPath(cue.ParsePath("model.T30")))
	require.NoError(t, err)

	assert.Equal(t, "T30", spec.Name)
	assert.Equal(t, "residuated_binar", spec.Variant)
	assert.Equal(t, []string{"join", "meet", "invo"}, spec.Operations.Names())

	join, ok := spec.Operations.Get("join")
	require.True(t, ok)
	assert.Equal(t, 2, join.Arity())
	assert.Equal(t, "1", join.Binary["0"]["1"])

	invo, ok := spec.Operations.Get("invo")
	require.True(t, ok)
	assert.Equal(t, ir.UnaryTable{"0": "1", "1": "0"}, invo.Unary)
	assert.Greater(t, spec.Line, 0)
}

func TestCompileModelPreservesDeclarationOrder(t *testing.T) {
	ctx := cuecontext.New()
	v := ctx.CompileString(`
		model: ring: operations: {
			add:  {"0": {"0": "0", "1": "1"}, "1": {"0": "1", "1": "0"}}
			neg:  {"0": "0", "1": "1"}
			mult: {"0": {"0": "0", "1": "0"}, "1": {"0": "0", "1": "1"}}
		}
	`)

	require.NoError(t, v.Err())
	spec, err := CompileModel(v.LookupPath(cue.ParsePath("model.ring")))
	require.NoError(t, err)
	assert.Equal(t, []string{"add", "neg", "mult"}, spec.Operations.Names())
	assert.Empty(t, spec.Variant)
}

func TestCompileModelSentinelSymbols(t *testing.T) {
	ctx := cuecontext.New()
	v := ctx.CompileString(`
		model: "two element": operations: {
			join: {"⟘": {"⟘": "⟘", "⟙": "⟙"}, "⟙": {"⟘": "⟙", "⟙": "⟙"}}
		}
	`)

	require.NoError(t, v.Err())
	spec, err := CompileModel(v.LookupPath(cue.MakePath(cue.Str("model"), cue.Str("two element"))))
	require.NoError(t, err)
	assert.Equal(t, "two element", spec.Name)

	join, _ := spec.Operations.Get("join")
	assert.Equal(t, ir.TOP, join.Binary[ir.BOT][ir.TOP])
}

func TestCompileModelMissingOperations(t *testing.T) {
	ctx := cuecontext.New()
	v := ctx.CompileString(`
		model: Bad: {
			variant: "lattice"
		}
	`)

	require.NoError(t, v.Err())
	_, err := CompileModel(v.LookupPath(cue.ParsePath("model.Bad")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "operations")
	assert.Contains(t, err.Error(), "required")
}

func TestCompileModelEmptyOperations(t *testing.T) {
	ctx := cuecontext.New()
	v := ctx.CompileString(`model: Empty: operations: {}`)

	require.NoError(t, v.Err())
	_, err := CompileModel(v.LookupPath(cue.ParsePath("model.Empty")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one operation")
}

func TestCompileModelMixedRows(t *testing.T) {
	ctx := cuecontext.New()
	v := ctx.CompileString(`
		model: Mixed: operations: {
			op: {"0": {"0": "0"}, "1": "1"}
		}
	`)

	require.NoError(t, v.Err())
	_, err := CompileModel(v.LookupPath(cue.ParsePath("model.Mixed")))
	require.Error(t, err)

	var ce *CompileError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "op", ce.Field)
	assert.Contains(t, ce.Message, "mix")
	assert.True(t, ce.Pos.IsValid())
}

func TestCompileModelRejectsNonStringCells(t *testing.T) {
	ctx := cuecontext.New()
	v := ctx.CompileString(`
		model: Ints: operations: {
			op: {"0": {"0": 0}}
		}
	`)

	require.NoError(t, v.Err())
	_, err := CompileModel(v.LookupPath(cue.ParsePath("model.Ints")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "string symbol")
}

func TestCompileModelRejectsNumericRows(t *testing.T) {
	ctx := cuecontext.New()
	v := ctx.CompileString(`
		model: Nums: operations: {
			op: {"0": 1}
		}
	`)

	require.NoError(t, v.Err())
	_, err := CompileModel(v.LookupPath(cue.ParsePath("model.Nums")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported row kind")
}

func TestCompileModelTableMustBeStruct(t *testing.T) {
	ctx := cuecontext.New()
	v := ctx.CompileString(`model: Str: operations: op: "nope"`)

	require.NoError(t, v.Err())
	_, err := CompileModel(v.LookupPath(cue.ParsePath("model.Str")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be a struct")
}

func TestCompileModelVariantMustBeString(t *testing.T) {
	ctx := cuecontext.New()
	v := ctx.CompileString(`
		model: V: {
			variant: 3
			operations: op: {"0": "0"}
		}
	`)

	require.NoError(t, v.Err())
	_, err := CompileModel(v.LookupPath(cue.ParsePath("model.V")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "variant")
}

func TestCompileModels(t *testing.T) {
	ctx := cuecontext.New()
	v := ctx.CompileString(`
		model: B: operations: op: {"0": "0"}
		model: A: operations: op: {"0": "0"}
	`)

	require.NoError(t, v.Err())
	specs, err := CompileModels(v)
	require.NoError(t, err)
	require.Len(t, specs, 2)
	assert.Equal(t, "B", specs[0].Name)
	assert.Equal(t, "A", specs[1].Name)

	raw := specs[0].RawModel()
	assert.Equal(t, "B", raw.Label)
	raw.Operations[0].Unary["0"] = "x"
	assert.Equal(t, "0", specs[0].Operations[0].Unary["0"], "RawModel copies tables")
}

func TestCompileModelsNone(t *testing.T) {
	ctx := cuecontext.New()
	v := ctx.CompileString(`other: 1`)

	specs, err := CompileModels(v)
	require.NoError(t, err)
	assert.Empty(t, specs)
	assert.NotNil(t, specs)
}

func TestCompileModelsCUEError(t *testing.T) {
	ctx := cuecontext.New()
	v := ctx.CompileString(`
		model: A: operations: op: {"0": "0"}
		model: A: operations: op: {"0": "1"}
	`)

	_, err := CompileModels(v)
	require.Error(t, err)
}

func TestCompileErrorFormat(t *testing.T) {
	err := &CompileError{Field: "operations", Message: "operations are required"}
	assert.Equal(t, "operations: operations are required", err.Error())
}
