package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fbkclanna/autocommit/internal/proc"
)

// NoOutputSentinel is written to an artifact when the executable printed nothing.
const NoOutputSentinel = "[no output captured]"

// execute runs the built executable with its combined output captured into
// the artifact. The returned bool is false when there is nothing to commit
// afterwards (no executable, or no artifact could be created). A launch
// failure is a warning but the pipeline continues with whatever was
// captured.
func (r *Runner) execute(ctx context.Context, artifactRel string) (PhaseResult, *int, bool) {
	exe := r.project.Executable()
	if exe == "" {
		detail := fmt.Sprintf("executable %s not found in %s", r.project.TargetName, r.project.DestDir)
		return skipped(PhaseExecute, detail), nil, false
	}

	if err := os.MkdirAll(r.project.OutputDir(), 0755); err != nil { //nolint:gosec // output dir is committed
		return warning(PhaseExecute, "creating output directory failed", err), nil, false
	}
	artifact := r.project.Path(artifactRel)
	f, err := os.Create(artifact) //nolint:gosec // artifact path derived from config
	if err != nil {
		return warning(PhaseExecute, "creating output artifact failed", err), nil, false
	}

	cfg := r.project.Config
	runCtx := ctx
	if cfg.Run.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, cfg.Run.Timeout)
		defer cancel()
	}

	r.log.Info("running executable", "path", exe, "output", artifactRel)
	runner := &proc.ExecRunner{Env: cfg.RunEnv()}
	res, runErr := runner.Stream(runCtx, filepath.Dir(exe), f, exe, cfg.Run.Args...)
	if err := f.Close(); err != nil && runErr == nil {
		runErr = fmt.Errorf("closing output artifact: %w", err)
	}

	if err := ensureNonEmpty(artifact); err != nil {
		r.log.Warn("writing output sentinel failed", "err", err)
	}

	if runErr != nil {
		return warning(PhaseExecute, "executable failed to run", runErr), nil, true
	}
	code := res.ExitCode
	r.log.Info("executable finished", "exit_code", code)
	return ok(PhaseExecute, fmt.Sprintf("captured output to %s (exit code %d)", artifactRel, code)), &code, true
}

// ensureNonEmpty writes NoOutputSentinel into a zero-byte file.
func ensureNonEmpty(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.Size() > 0 {
		return nil
	}
	return os.WriteFile(path, []byte(NoOutputSentinel+"\n"), 0644) //nolint:gosec // artifact is committed
}
