package cli

import (
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"planweaver/internal/request"
)

// Semantic exit codes. The engine's "always produce a schedule for valid
// input" policy means deadline warnings still exit 0; only structural
// validation failures exit 1.
const (
	ExitSuccess           = 0
	ExitValidationFailure = 1
	ExitInvalidInvocation = 2
	ExitDecodeError       = 3
	ExitInternalError     = 4
)

// Invocation is the fully canonicalized description of a run.
//
// Paths are cleaned; the request format is derived from the request file
// extension so nothing downstream inspects file names.
type Invocation struct {
	RequestPath   string
	OutputPath    string
	ConfigPath    string // optional; empty means built-in defaults
	RequestFormat request.Format
}

// InvocationError carries the exit code for an unusable command line.
type InvocationError struct {
	ExitCode int
	Message  string
}

func (e *InvocationError) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

func invalidInvocationf(format string, args ...any) error {
	return &InvocationError{ExitCode: ExitInvalidInvocation, Message: fmt.Sprintf(format, args...)}
}

// ParseInvocation parses CLI flags into a canonical Invocation.
//
// It reads no environment variables: every input is an explicit flag, so a
// run is reproducible from its command line alone.
func ParseInvocation(args []string) (Invocation, error) {
	fs := flag.NewFlagSet("planweaver", flag.ContinueOnError)
	fs.SetOutput(io.Discard) // parsing errors are returned, not printed

	var requestPath string
	var outputPath string
	var configPath string

	fs.StringVar(&requestPath, "request", "", "Planning request file (.json, .yaml). Required.")
	fs.StringVar(&outputPath, "out", "", "Response output file. Required.")
	fs.StringVar(&configPath, "config", "", "Planner policy config file (optional).")

	if err := fs.Parse(args); err != nil {
		return Invocation{}, invalidInvocationf("%v", err)
	}
	if fs.NArg() != 0 {
		return Invocation{}, invalidInvocationf("unexpected positional arguments: %q", strings.Join(fs.Args(), " "))
	}
	if requestPath == "" {
		return Invocation{}, invalidInvocationf("-request is required")
	}
	if outputPath == "" {
		return Invocation{}, invalidInvocationf("-out is required")
	}

	inv := Invocation{
		RequestPath:   filepath.Clean(requestPath),
		OutputPath:    filepath.Clean(outputPath),
		RequestFormat: formatForPath(requestPath),
	}
	if configPath != "" {
		inv.ConfigPath = filepath.Clean(configPath)
	}
	return inv, nil
}

func formatForPath(path string) request.Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return request.FormatYAML
	default:
		return request.FormatJSON
	}
}
