package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/fbkclanna/autocommit/internal/counter"
	"github.com/fbkclanna/autocommit/internal/git"
)

// commit persists the next counter value, stages the watched sources, the
// artifact, the counter file and the automation files, and commits. It
// returns the new HEAD on success.
//
// When git reports nothing to commit, the counter file is restored and the
// phase is skipped. Any other failure also unstages and removes the new
// artifact, so committed counter values stay 1:1 with committed artifacts.
func (r *Runner) commit(ctx context.Context, next int, artifactRel, runID string) (PhaseResult, string) {
	counterPath := r.project.CounterPath()
	saved, readErr := os.ReadFile(counterPath) //nolint:gosec // configured counter file
	restore := func() {
		if readErr != nil {
			_ = os.Remove(counterPath)
			return
		}
		if err := os.WriteFile(counterPath, saved, 0644); err != nil { //nolint:gosec // counter file is committed
			r.log.Warn("restoring counter failed", "err", err)
		}
	}

	if err := counter.Save(counterPath, next); err != nil {
		r.discardArtifact(artifactRel)
		return warning(PhaseCommit, "updating counter failed", err), ""
	}

	cfg := r.project.Config
	if err := r.git.EnsureIdentity(ctx, cfg.Identity.Name, cfg.Identity.Email); err != nil {
		r.log.Warn("setting commit identity failed", "err", err)
	}

	paths := r.project.StagePaths(artifactRel)
	r.log.Debug("staging", "paths", paths)
	err := r.git.Add(ctx, paths...)
	if err == nil {
		err = r.git.Commit(ctx, commitMessage(next, r.project.Label(), r.now(), runID))
	}
	if errors.Is(err, git.ErrNothingToCommit) {
		restore()
		return skipped(PhaseCommit, "nothing to commit"), ""
	}
	if err != nil {
		if r.git.HasHead(ctx) {
			if uerr := r.git.Unstage(ctx, cfg.CounterFile, artifactRel); uerr != nil {
				r.log.Debug("unstaging after failed commit", "err", uerr)
			}
		}
		restore()
		r.discardArtifact(artifactRel)
		return warning(PhaseCommit, "commit failed", err), ""
	}

	sha, err := r.git.HeadCommit(ctx)
	if err != nil || sha == "" {
		sha = "HEAD"
	}
	return ok(PhaseCommit, fmt.Sprintf("committed run #%d as %s", next, sha)), sha
}

func commitMessage(n int, label string, at time.Time, runID string) string {
	return fmt.Sprintf("autocommit #%d: %s at %s\n\nRun-Id: %s\n", n, label, at.Format(time.DateTime), runID)
}

func (r *Runner) discardArtifact(artifactRel string) {
	if err := os.Remove(r.project.Path(artifactRel)); err != nil && !errors.Is(err, os.ErrNotExist) {
		r.log.Debug("removing artifact", "err", err)
	}
}
