package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fbkclanna/autocommit/internal/proc"
)

// DefaultTool is the git executable looked up on PATH.
const DefaultTool = "git"

// Client runs git commands inside a single repository directory.
type Client struct {
	Dir    string
	Tool   string
	runner proc.Runner
}

// Option configures a Client.
type Option func(*Client)

// WithTool overrides the git executable (name on PATH or absolute path).
func WithTool(tool string) Option {
	return func(c *Client) {
		if tool != "" {
			c.Tool = tool
		}
	}
}

// WithRunner replaces the process runner.
func WithRunner(r proc.Runner) Option {
	return func(c *Client) { c.runner = r }
}

// New returns a client for the repository rooted at dir.
func New(dir string, opts ...Option) *Client {
	c := &Client{Dir: dir, Tool: DefaultTool, runner: proc.NewExecRunner()}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Available reports whether the git tool can be located.
func (c *Client) Available() bool {
	_, err := proc.LookPath(c.Tool)
	return err == nil
}

// Version returns the output of `git version`.
func (c *Client) Version(ctx context.Context) (string, error) {
	out, err := c.output(ctx, "version")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// IsRepo returns true if the directory contains a .git entry.
func (c *Client) IsRepo() bool {
	_, err := os.Stat(filepath.Join(c.Dir, ".git"))
	return err == nil
}

// Init runs git init in the client directory.
func (c *Client) Init(ctx context.Context) error {
	return c.run(ctx, "init")
}

// HasHead reports whether the repository has at least one commit.
func (c *Client) HasHead(ctx context.Context) bool {
	err := c.run(ctx, "rev-parse", "--verify", "--quiet", "HEAD")
	return err == nil
}

// HeadCommit returns the short SHA of HEAD.
func (c *Client) HeadCommit(ctx context.Context) (string, error) {
	out, err := c.output(ctx, "rev-parse", "--short", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// CommitCount returns the number of commits reachable from HEAD.
func (c *Client) CommitCount(ctx context.Context) (int, error) {
	out, err := c.output(ctx, "rev-list", "--count", "HEAD")
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(out))
	if err != nil {
		return 0, fmt.Errorf("parsing commit count %q: %w", out, err)
	}
	return n, nil
}

// CurrentBranch returns the current branch name, or empty string if detached.
func (c *Client) CurrentBranch(ctx context.Context) (string, error) {
	out, err := c.output(ctx, "symbolic-ref", "--short", "HEAD")
	if err != nil {
		// Detached HEAD: symbolic-ref fails.
		return "", nil
	}
	return strings.TrimSpace(out), nil
}

// EnsureIdentity sets repo-local user.name/user.email when git has none configured.
func (c *Client) EnsureIdentity(ctx context.Context, name, email string) error {
	if _, err := c.output(ctx, "config", "user.name"); err != nil {
		if err := c.run(ctx, "config", "user.name", name); err != nil {
			return err
		}
	}
	if _, err := c.output(ctx, "config", "user.email"); err != nil {
		if err := c.run(ctx, "config", "user.email", email); err != nil {
			return err
		}
	}
	return nil
}

// Add stages the given paths.
func (c *Client) Add(ctx context.Context, paths ...string) error {
	if len(paths) == 0 {
		return nil
	}
	args := append([]string{"add", "--"}, paths...)
	return c.run(ctx, args...)
}

// Unstage removes the given paths from the index, keeping the working tree.
func (c *Client) Unstage(ctx context.Context, paths ...string) error {
	if len(paths) == 0 {
		return nil
	}
	args := append([]string{"reset", "-q", "HEAD", "--"}, paths...)
	return c.run(ctx, args...)
}

// HasStagedChanges reports whether the index differs from HEAD.
func (c *Client) HasStagedChanges(ctx context.Context) (bool, error) {
	err := c.run(ctx, "diff", "--cached", "--quiet")
	if err == nil {
		return false, nil
	}
	var gerr *Error
	if errors.As(err, &gerr) && gerr.ExitCode == 1 {
		return true, nil
	}
	return false, err
}

// Commit creates a commit with the given message. It returns
// ErrNothingToCommit when git refuses because the index matches HEAD.
func (c *Client) Commit(ctx context.Context, message string) error {
	err := c.run(ctx, "commit", "-q", "-m", message)
	if err == nil {
		return nil
	}
	if staged, serr := c.HasStagedChanges(ctx); serr == nil && !staged {
		return fmt.Errorf("%w: %v", ErrNothingToCommit, err)
	}
	return err
}

// RemoteURL returns the URL configured for the named remote.
func (c *Client) RemoteURL(ctx context.Context, remote string) (string, error) {
	out, err := c.output(ctx, "remote", "get-url", remote)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrNoRemote, remote)
	}
	return strings.TrimSpace(out), nil
}

// Upstream returns the upstream of the current branch, e.g. "origin/main".
func (c *Client) Upstream(ctx context.Context) (string, error) {
	out, err := c.output(ctx, "rev-parse", "--abbrev-ref", "--symbolic-full-name", "@{u}")
	if err != nil {
		return "", ErrNoUpstream
	}
	return strings.TrimSpace(out), nil
}

// RenameBranch force-renames the current branch.
func (c *Client) RenameBranch(ctx context.Context, name string) error {
	return c.run(ctx, "branch", "-M", name)
}

// Push pushes to the remote. With setUpstream, branch is pushed with -u.
func (c *Client) Push(ctx context.Context, remote, branch string, setUpstream bool) error {
	if setUpstream {
		return c.run(ctx, "push", "-u", remote, branch)
	}
	return c.run(ctx, "push")
}

// run executes a git command and discards stdout.
func (c *Client) run(ctx context.Context, args ...string) error {
	_, err := c.output(ctx, args...)
	return err
}

// output executes a git command and returns its stdout.
// Non-zero exits are reported as *Error with the captured stderr.
func (c *Client) output(ctx context.Context, args ...string) (string, error) {
	res, err := c.runner.Run(ctx, c.Dir, c.Tool, args...)
	if err != nil {
		return "", fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
	}
	if !res.Success() {
		return res.Stdout, &Error{Args: args, ExitCode: res.ExitCode, Stderr: res.Stderr}
	}
	return res.Stdout, nil
}
