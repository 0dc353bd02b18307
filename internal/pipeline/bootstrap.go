package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
)

const (
	gitignoreFile   = ".gitignore"
	bootstrapCommit = "Initial commit (autocommit bootstrap)"
)

// bootstrap creates the repository and a baseline commit when HEAD does not
// exist yet. Every step is best-effort; failures are collected into a
// warning and a missing HEAD afterwards is not retried. The second return
// value reports whether a bootstrap was attempted.
func (r *Runner) bootstrap(ctx context.Context) (PhaseResult, bool) {
	if r.git.HasHead(ctx) {
		return skipped(PhaseBootstrap, "repository already has commits"), false
	}

	if !r.git.IsRepo() {
		if err := r.git.Init(ctx); err != nil {
			return warning(PhaseBootstrap, "git init failed", err), true
		}
		r.log.Debug("initialized repository", "dir", r.project.Root)
	}

	var errs []error
	cfg := r.project.Config
	if err := r.git.EnsureIdentity(ctx, cfg.Identity.Name, cfg.Identity.Email); err != nil {
		errs = append(errs, fmt.Errorf("setting commit identity: %w", err))
	}

	created, err := writeGitignore(r.project.Path(gitignoreFile), cfg.Ignore)
	if err != nil {
		errs = append(errs, err)
	} else if created {
		r.log.Debug("wrote .gitignore", "patterns", len(cfg.Ignore))
	}

	if r.project.Exists(gitignoreFile) {
		if err := r.git.Add(ctx, gitignoreFile); err != nil {
			errs = append(errs, fmt.Errorf("staging .gitignore: %w", err))
		}
	}
	if err := r.git.Commit(ctx, bootstrapCommit); err != nil {
		errs = append(errs, fmt.Errorf("initial commit: %w", err))
	}

	if len(errs) > 0 {
		return warning(PhaseBootstrap, "bootstrap incomplete", errors.Join(errs...)), true
	}
	return ok(PhaseBootstrap, "created initial commit"), true
}

// writeGitignore writes the pattern set to path unless the file exists.
func writeGitignore(path string, patterns []string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}
	content := strings.Join(patterns, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil { //nolint:gosec // .gitignore needs to be readable
		return false, fmt.Errorf("writing .gitignore: %w", err)
	}
	return true, nil
}
