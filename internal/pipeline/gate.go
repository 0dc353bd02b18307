package pipeline

import (
	"context"
	"fmt"

	"github.com/fbkclanna/autocommit/internal/git"
)

// StatusQuerier reports working tree changes restricted to paths.
type StatusQuerier interface {
	Status(ctx context.Context, paths ...string) ([]git.StatusEntry, error)
}

// Decision is the outcome of the change gate.
type Decision struct {
	Run     bool
	Reason  string
	Changes []git.StatusEntry
}

// Gate decides whether the executable should run. A freshly bootstrapped
// repository and an empty watch set always run; otherwise the run proceeds
// only if git reports a modified or untracked entry under a watched path.
// When the status query fails the state is unknown and the gate opens; the
// error is returned alongside the decision.
func Gate(ctx context.Context, q StatusQuerier, watch []string, bootstrapped bool) (Decision, error) {
	switch {
	case bootstrapped:
		return Decision{Run: true, Reason: "repository was just bootstrapped"}, nil
	case len(watch) == 0:
		return Decision{Run: true, Reason: "no watched files present"}, nil
	}

	changes, err := q.Status(ctx, watch...)
	if err != nil {
		return Decision{Run: true, Reason: "status query failed"}, err
	}
	if len(changes) == 0 {
		return Decision{Reason: "no changes in watched files"}, nil
	}
	return Decision{
		Run:     true,
		Reason:  fmt.Sprintf("%d watched path(s) changed", len(changes)),
		Changes: changes,
	}, nil
}
