package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/rbin/internal/compiler"
)

func TestLoadModels(t *testing.T) {
	result, errs := LoadModels(modelsDir, LoadModeFailFast)
	require.Empty(t, errs)
	require.NotNil(t, result)

	assert.Equal(t, 1, result.FileCount)
	var names []string
	for _, m := range result.Models {
		names = append(names, m.Name)
	}
	assert.Equal(t, []string{"T1", "D4", "R2"}, names)
	assert.Equal(t, "lattice", result.Models[1].Variant)
	assert.Equal(t, []string{"add", "neg", "mult"}, result.Models[2].Operations.Names())
}

func TestLoadModels_ValidationErrors(t *testing.T) {
	dir := writeCUE(t, `
model: Ragged: {
	operations: {
		join: {"0": {"0": "0", "1": "1"}, "1": {"0": "1", "1": "1"}}
		meet: {"0": {"0": "0"}, "1": {"0": "0", "1": "1"}}
	}
}

model: Fine: {
	operations: {
		neg: {"0": "0"}
	}
}
`)

	result, errs := LoadModels(dir, LoadModeCollectAll)
	require.NotNil(t, result)
	require.NotEmpty(t, errs)

	var loadErr *LoadError
	require.True(t, errors.As(errs[0], &loadErr))
	assert.Equal(t, compiler.ErrRowNotTotal, loadErr.Code)
	assert.Equal(t, "Ragged", loadErr.Model)

	require.Len(t, result.Models, 1)
	assert.Equal(t, "Fine", result.Models[0].Name)
}

func TestLoadModels_DirectoryErrors(t *testing.T) {
	file := filepath.Join(t.TempDir(), "models.cue")
	require.NoError(t, os.WriteFile(file, []byte("package models\n"), 0644))

	tests := []struct {
		name string
		dir  string
		code string
	}{
		{"missing", "/nonexistent/models", ErrCodeNotFound},
		{"file", file, ErrCodeNotFound},
		{"no cue files", t.TempDir(), ErrCodeNoFiles},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, errs := LoadModels(tt.dir, LoadModeFailFast)
			assert.Nil(t, result)
			require.Len(t, errs, 1)
			var loadErr *LoadError
			require.True(t, errors.As(errs[0], &loadErr))
			assert.Equal(t, tt.code, loadErr.Code)
		})
	}
}

func TestLoadModels_NoModels(t *testing.T) {
	dir := writeCUE(t, "other: 1\n")
	result, errs := LoadModels(dir, LoadModeFailFast)
	require.NotNil(t, result)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "no models found")
}

func TestLoadError_Error(t *testing.T) {
	err := &LoadError{Code: ErrCodeNoOperations, Model: "T1", Message: "operations: operations are required"}
	assert.Equal(t, "E102: T1: operations: operations are required", err.Error())
}
