package cli

import (
	"encoding/json"
	"fmt"
	"io"
)

// OutputFormatter writes command results as text or as a JSON envelope.
type OutputFormatter struct {
	Format  string // "text" or "json"
	Writer  io.Writer
	Verbose bool // include error details in text output
}

// CLIResponse is the JSON envelope every command prints.
type CLIResponse struct {
	Status string    `json:"status"` // "ok" or "error"
	Data   any       `json:"data,omitempty"`
	Error  *CLIError `json:"error,omitempty"`
}

// CLIError is the error half of CLIResponse. Code is one of the ErrCode
// constants.
type CLIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// TextWriter is implemented by results with a human-readable rendering.
type TextWriter interface {
	WriteText(w io.Writer) error
}

func (f *OutputFormatter) isJSON() bool { return f.Format == "json" }

// Success prints data. In text mode data is written through TextWriter
// when it implements it and with fmt otherwise.
func (f *OutputFormatter) Success(data any) error {
	if f.isJSON() {
		return f.encode(CLIResponse{Status: "ok", Data: data})
	}
	return f.text(data)
}

// Failure prints data together with an error, e.g. a check that found
// invalid models, and returns an ExitFailure error.
func (f *OutputFormatter) Failure(data any, code, message string) error {
	var err error
	if f.isJSON() {
		err = f.encode(CLIResponse{Status: "error", Data: data, Error: &CLIError{Code: code, Message: message}})
	} else if _, ok := data.(TextWriter); ok {
		err = f.text(data)
	}
	if err != nil {
		return err
	}
	return NewExitError(ExitFailure, message)
}

// Error prints an error with no result attached.
func (f *OutputFormatter) Error(code, message string, details any) error {
	if f.isJSON() {
		return f.encode(CLIResponse{Status: "error", Error: &CLIError{Code: code, Message: message, Details: details}})
	}

	fmt.Fprintf(f.Writer, "Error [%s]: %s\n", code, message)
	if f.Verbose && details != nil {
		fmt.Fprintf(f.Writer, "Details: %v\n", details)
	}
	return nil
}

func (f *OutputFormatter) text(data any) error {
	if tw, ok := data.(TextWriter); ok {
		return tw.WriteText(f.Writer)
	}
	_, err := fmt.Fprintln(f.Writer, data)
	return err
}

// encode writes indented JSON. Symbols such as < and & are left unescaped.
func (f *OutputFormatter) encode(resp CLIResponse) error {
	enc := json.NewEncoder(f.Writer)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(resp)
}
