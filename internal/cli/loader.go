package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/load"
	"cuelang.org/go/cue/token"

	"github.com/roach88/rbin/internal/compiler"
)

// LoadMode controls how errors are handled during model loading.
type LoadMode int

const (
	// LoadModeFailFast stops on the first error encountered.
	LoadModeFailFast LoadMode = iota
	// LoadModeCollectAll collects all errors before returning.
	LoadModeCollectAll
)

// LoadResult contains the models compiled from a directory.
type LoadResult struct {
	Models    []*compiler.ModelSpec
	CUEValue  cue.Value
	FileCount int
}

// LoadError represents an error that occurred during model loading.
type LoadError struct {
	Code    string    `json:"code"`
	Model   string    `json:"model,omitempty"`
	Message string    `json:"message"`
	Pos     token.Pos `json:"-"`
}

func (e *LoadError) Error() string {
	msg := e.Message
	if e.Model != "" {
		msg = e.Model + ": " + msg
	}
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, msg)
	}
	return fmt.Sprintf("%s: %s", e.Code, msg)
}

// LoadModels loads the CUE package in dir and compiles every model under
// its "model" key. Models that fail to compile or validate are left out of
// the result. In LoadModeFailFast the first such error ends loading.
//
// A nil result means the directory could not be loaded at all.
func LoadModels(dir string, mode LoadMode) (*LoadResult, []error) {
	value, files, loadErr := loadPackage(dir)
	if loadErr != nil {
		return nil, []error{loadErr}
	}

	result := &LoadResult{CUEValue: value, FileCount: files}

	var errs []error
	modelsVal := value.LookupPath(cue.ParsePath("model"))
	if modelsVal.Exists() {
		iter, iterErr := modelsVal.Fields()
		if iterErr != nil {
			return result, []error{&LoadError{Code: ErrCodeGeneric, Message: fmt.Sprintf("iterating models: %v", iterErr)}}
		}
		for iter.Next() {
			name := iter.Label()
			modelErrs := compileOne(name, iter.Value(), result)
			errs = append(errs, modelErrs...)
			if len(modelErrs) > 0 && mode == LoadModeFailFast {
				return result, errs
			}
		}
	}

	if len(result.Models) == 0 && len(errs) == 0 {
		errs = append(errs, &LoadError{Code: ErrCodeGeneric, Message: "no models found"})
	}

	return result, errs
}

// loadPackage builds the CUE package in dir and reports how many .cue
// files it found there.
func loadPackage(dir string) (cue.Value, int, *LoadError) {
	fail := func(code, format string, args ...any) (cue.Value, int, *LoadError) {
		return cue.Value{}, 0, &LoadError{Code: code, Message: fmt.Sprintf(format, args...)}
	}

	switch info, err := os.Stat(dir); {
	case errors.Is(err, fs.ErrNotExist):
		return fail(ErrCodeNotFound, "models directory not found: %s", dir)
	case err != nil:
		return fail(ErrCodeNotFound, "error accessing models directory: %v", err)
	case !info.IsDir():
		return fail(ErrCodeNotFound, "not a directory: %s", dir)
	}

	files, err := FindCUEFiles(dir)
	if err != nil {
		return fail(ErrCodeScanError, "error scanning directory: %v", err)
	}
	if len(files) == 0 {
		return fail(ErrCodeNoFiles, "no CUE files found in %s", dir)
	}

	instances := load.Instances([]string{"."}, &load.Config{Dir: dir})
	if len(instances) == 0 {
		return fail(ErrCodeLoadFailed, "no CUE instances loaded")
	}
	if err := instances[0].Err; err != nil {
		return fail(ErrCodeLoadFailed, "loading CUE files: %v", err)
	}

	value := cuecontext.New().BuildInstance(instances[0])
	if err := value.Err(); err != nil {
		return fail(ErrCodeBuildFailed, "building CUE value: %v", err)
	}
	return value, len(files), nil
}

// compileOne compiles and validates a single model, appending it to result
// when it is clean.
func compileOne(name string, v cue.Value, result *LoadResult) []error {
	spec, err := compiler.CompileModel(v)
	if err != nil {
		return []error{convertCompileError(err, name)}
	}

	var errs []error
	for _, ve := range compiler.Validate(spec) {
		errs = append(errs, &LoadError{
			Code:    ve.Code,
			Model:   name,
			Message: fmt.Sprintf("%s: %s", ve.Field, ve.Message),
			Pos:     v.Pos(),
		})
	}
	if len(errs) == 0 {
		result.Models = append(result.Models, spec)
	}
	return errs
}

// FindCUEFiles lists the .cue files under dir, recursively.
func FindCUEFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(path) == ".cue" {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

// convertCompileError converts a compiler error to a LoadError with position info.
func convertCompileError(err error, model string) *LoadError {
	var compileErr *compiler.CompileError
	if errors.As(err, &compileErr) {
		return &LoadError{
			Code:    MapFieldToErrorCode(compileErr.Field),
			Model:   model,
			Message: fmt.Sprintf("%s: %s", compileErr.Field, compileErr.Message),
			Pos:     compileErr.Pos,
		}
	}
	return &LoadError{
		Code:    ErrCodeGeneric,
		Model:   model,
		Message: err.Error(),
	}
}

// Error code constants - unified across all CLI commands.
const (
	ErrCodeGeneric     = "E001" // Generic/unknown error
	ErrCodeScanError   = "E002" // Directory scan error
	ErrCodeNoFiles     = "E003" // No CUE files found
	ErrCodeLoadFailed  = "E004" // CUE load failed
	ErrCodeNotFound    = "E005" // Path not found
	ErrCodeBuildFailed = "E006" // CUE build failed
	ErrCodeWriteFailed = "E007" // File write error
	ErrCodeStore       = "E008" // Catalogue open/read/write failed

	// Model compilation errors
	ErrCodeVariantType   = "E101" // variant is not a string
	ErrCodeNoOperations  = "E102" // operations missing or empty
	ErrCodeTableShape    = "E103" // a row is neither a struct nor a string
	ErrCodeCUEEvaluation = "E104" // CUE evaluation error inside a model

	// Structure errors
	ErrCodeInvalidModel = "E301" // axiom violation or malformed tables
	ErrCodeNotLattice   = "E302" // lattice-only operation on another variant
	ErrCodeRender       = "E303" // renderer rejected the request
	ErrCodeNoReply      = "E304" // reasoner log holds no model
	ErrCodeTestFailed   = "E305" // harness scenario failed
)

// MapFieldToErrorCode maps a compiler error field to an error code.
// Any field naming an operation or a row is a table shape error.
func MapFieldToErrorCode(field string) string {
	switch field {
	case "variant":
		return ErrCodeVariantType
	case "operations":
		return ErrCodeNoOperations
	case "cue":
		return ErrCodeCUEEvaluation
	case "":
		return ErrCodeGeneric
	default:
		return ErrCodeTableShape
	}
}
