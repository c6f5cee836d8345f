package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/hupe1980/sortdist"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // At least one input failed
	ExitCommandError = 2 // Command error (bad flags, invalid config, unreachable store)
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil and ExitFailure if the error is not an ExitError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // Diagnostics and per-input failures in text mode (defaults to Writer)

	printer *message.Printer
}

// NewOutputFormatter creates a formatter for the given format.
func NewOutputFormatter(format string, w, errW io.Writer) *OutputFormatter {
	return &OutputFormatter{
		Format:    format,
		Writer:    w,
		ErrWriter: errW,
		printer:   message.NewPrinter(language.English),
	}
}

// ResultJSON is the JSON form of one processed input.
type ResultJSON struct {
	Name      string `json:"name"`
	Records   int    `json:"records"`
	Distance  int64  `json:"distance"`
	Kernel    string `json:"kernel"`
	ElapsedMS int64  `json:"elapsed_ms"`
	Error     string `json:"error,omitempty"`
}

// Start announces an input before it is processed. Text format only.
func (f *OutputFormatter) Start(name string) {
	if f.Format == "json" {
		return
	}
	fmt.Fprintf(f.Writer, "Processing %s...\n", name)
}

// Result outputs one processed input.
func (f *OutputFormatter) Result(r sortdist.Result) error {
	if f.Format == "json" {
		out := ResultJSON{
			Name:      r.Name,
			Records:   r.Records,
			Distance:  r.Distance,
			Kernel:    r.Kernel.String(),
			ElapsedMS: r.Elapsed.Milliseconds(),
		}
		if r.Err != nil {
			out.Error = r.Err.Error()
		}
		return json.NewEncoder(f.Writer).Encode(out)
	}

	if r.Err != nil {
		fmt.Fprintf(f.errWriter(), "Error processing input '%s': %v\n\n", r.Name, r.Err)
		return nil
	}
	fmt.Fprintf(f.Writer, "The answer is: %d, completed in %dms\n\n", r.Distance, r.Elapsed.Milliseconds())
	return nil
}

// Success outputs a successful result in the configured format. Text output
// formats numbers with digit grouping.
func (f *OutputFormatter) Success(data any, format string, args ...any) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(data)
	}
	f.printer.Fprintf(f.Writer, format+"\n", args...)
	return nil
}

// Printf writes grouped-number text output. It is a no-op in JSON format.
func (f *OutputFormatter) Printf(format string, args ...any) {
	if f.Format == "json" {
		return
	}
	f.printer.Fprintf(f.Writer, format, args...)
}

func (f *OutputFormatter) errWriter() io.Writer {
	if f.ErrWriter != nil {
		return f.ErrWriter
	}
	return f.Writer
}
