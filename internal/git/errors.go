package git

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNothingToCommit is returned by Commit when the index matches HEAD.
	ErrNothingToCommit = errors.New("nothing to commit")

	// ErrNoRemote is returned when the requested remote is not configured.
	ErrNoRemote = errors.New("remote not configured")

	// ErrNoUpstream is returned when the current branch has no upstream.
	ErrNoUpstream = errors.New("no upstream branch")
)

// Error describes a git command that ran and exited non-zero.
type Error struct {
	Args     []string
	ExitCode int
	Stderr   string
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("git %s: exit status %d", strings.Join(e.Args, " "), e.ExitCode)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + s
	}
	return msg
}
