package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/fbkclanna/autocommit/internal/git"
)

// publish pushes the new commit when the configured remote exists. Without
// an upstream the local branch is renamed to the configured branch and
// pushed with -u. Push failures are warnings.
func (r *Runner) publish(ctx context.Context) PhaseResult {
	cfg := r.project.Config
	if r.noPush || !cfg.PushEnabled() {
		return skipped(PhasePublish, "push disabled")
	}

	url, err := r.git.RemoteURL(ctx, cfg.Remote)
	if err != nil {
		return skipped(PhasePublish, fmt.Sprintf("no remote %q configured", cfg.Remote))
	}
	r.log.Debug("pushing", "remote", cfg.Remote, "url", url)

	upstream, err := r.git.Upstream(ctx)
	if errors.Is(err, git.ErrNoUpstream) {
		if err := r.git.RenameBranch(ctx, cfg.Branch); err != nil {
			return warning(PhasePublish, "renaming branch to "+cfg.Branch+" failed", err)
		}
		if err := r.git.Push(ctx, cfg.Remote, cfg.Branch, true); err != nil {
			return warning(PhasePublish, "push failed", err)
		}
		return ok(PhasePublish, fmt.Sprintf("pushed %s to %s (upstream set)", cfg.Branch, cfg.Remote))
	}

	if err := r.git.Push(ctx, cfg.Remote, "", false); err != nil {
		return warning(PhasePublish, "push failed", err)
	}
	return ok(PhasePublish, "pushed to "+upstream)
}
