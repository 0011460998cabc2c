package cli

import (
	"errors"
	"log/slog"
	"os"

	"planweaver/internal/config"
	"planweaver/internal/request"
	"planweaver/internal/schedule"
)

// Result is the semantic outcome of an invocation.
type Result struct {
	ExitCode int
	Response *request.Response
}

// Execute maps a canonical Invocation to one engine run.
//
// Responsibilities:
//   - Load policy config (or defaults) and the request file.
//   - Run the engine exactly once; the engine itself does no I/O.
//   - Write the response file: the schedule on success, the structured
//     error object on validation failure.
//   - Translate outcomes to semantic exit codes.
func Execute(inv Invocation, logger *slog.Logger) (Result, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	}

	cfg := config.DefaultConfig()
	if inv.ConfigPath != "" {
		loaded, err := config.Load(inv.ConfigPath)
		if err != nil {
			return Result{ExitCode: ExitDecodeError}, err
		}
		cfg = loaded
	}
	window, err := cfg.Window()
	if err != nil {
		return Result{ExitCode: ExitDecodeError}, err
	}

	data, err := os.ReadFile(inv.RequestPath)
	if err != nil {
		return Result{ExitCode: ExitDecodeError}, err
	}
	req, err := request.Decode(data, inv.RequestFormat)
	if err != nil {
		return Result{ExitCode: ExitDecodeError}, err
	}

	in, err := req.Resolve(request.Defaults{
		WindowStart: window.Start,
		WindowEnd:   window.End,
		Priority:    cfg.DefaultPriority,
	})
	if err != nil {
		return Result{ExitCode: ExitDecodeError}, err
	}
	in.TieBreak = cfg.TieBreakPolicy()

	logger.Info("planning",
		"request", inv.RequestPath,
		"tasks", len(in.Tasks),
		"blocked", len(in.Blocked),
		"tie_break", string(in.TieBreak))

	res, err := schedule.Plan(*in)
	if err != nil {
		if errResp, ok := request.BuildErrorResponse(err); ok {
			logger.Warn("validation failed", "rule", errResp.Error.Rule, "task_ids", errResp.Error.TaskIDs)
			if werr := writeResponse(inv.OutputPath, errResp); werr != nil {
				return Result{ExitCode: ExitInternalError}, errors.Join(err, werr)
			}
			return Result{ExitCode: ExitValidationFailure}, err
		}
		return Result{ExitCode: ExitInternalError}, err
	}

	resp := request.BuildResponse(in, res)
	if err := writeResponse(inv.OutputPath, resp); err != nil {
		return Result{ExitCode: ExitInternalError}, err
	}

	logger.Info("planned",
		"plan_id", res.PlanID,
		"blocks", len(res.Blocks),
		"warnings", len(res.Warnings),
		"out", inv.OutputPath)
	return Result{ExitCode: ExitSuccess, Response: resp}, nil
}

func writeResponse(path string, v any) error {
	data, err := request.EncodeJSON(v)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
