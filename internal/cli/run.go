package cli

import (
	"errors"
	"log/slog"
)

// Run is the high-level CLI entrypoint suitable for black-box tests. It
// accepts the argument slice (excluding argv[0]) and returns the semantic
// result plus any error.
func Run(args []string, logger *slog.Logger) (Result, error) {
	inv, err := ParseInvocation(args)
	if err != nil {
		code := ExitInternalError
		var invErr *InvocationError
		if errors.As(err, &invErr) {
			code = invErr.ExitCode
		}
		return Result{ExitCode: code}, err
	}
	return Execute(inv, logger)
}
