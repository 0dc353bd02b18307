package git

import (
	"context"
	"strings"
)

// StatusEntry is one line of `git status --porcelain`.
type StatusEntry struct {
	Code string // two-letter XY code, e.g. " M", "??", "A "
	Path string
}

// Untracked reports whether git does not know the path yet.
func (e StatusEntry) Untracked() bool { return e.Code == "??" }

// Status returns porcelain entries restricted to paths. Untracked files
// inside untracked directories are listed individually.
func (c *Client) Status(ctx context.Context, paths ...string) ([]StatusEntry, error) {
	args := []string{"status", "--porcelain", "--untracked-files=all"}
	if len(paths) > 0 {
		args = append(args, "--")
		args = append(args, paths...)
	}
	out, err := c.output(ctx, args...)
	if err != nil {
		return nil, err
	}
	return parsePorcelain(out), nil
}

func parsePorcelain(out string) []StatusEntry {
	var entries []StatusEntry
	for _, line := range strings.Split(out, "\n") {
		if len(line) < 4 {
			continue
		}
		path := line[3:]
		// Renames are reported as "old -> new".
		if _, after, ok := strings.Cut(path, " -> "); ok {
			path = after
		}
		entries = append(entries, StatusEntry{Code: line[:2], Path: strings.Trim(path, `"`)})
	}
	return entries
}
