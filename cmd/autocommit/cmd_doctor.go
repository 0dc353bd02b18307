package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fbkclanna/autocommit/internal/git"
	"github.com/fbkclanna/autocommit/internal/project"
	"github.com/spf13/cobra"
)

func newDoctorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor <repo-root> [target-name dest-dir]",
		Short: "Diagnose the environment the post-build step will run in",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 && len(args) != 3 {
				return fmt.Errorf("accepts 1 or 3 arg(s), received %d", len(args))
			}
			return nil
		},
		RunE: runDoctor,
	}
	cmd.Flags().String("config", "", "Config file (default <repo-root>/.autocommit.yaml)")
	cmd.Flags().String("git", "git", "git executable name or path")
	return cmd
}

func runDoctor(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	tool, _ := cmd.Flags().GetString("git")
	out := cmd.OutOrStdout()
	ctx := cmd.Context()

	var target, dest string
	if len(args) == 3 {
		target, dest = args[1], args[2]
	}

	ok := true
	fail := func(format string, a ...any) {
		_, _ = fmt.Fprintf(out, format+"\n", a...)
		ok = false
	}

	pc, err := project.Load(args[0], target, dest, project.Options{ConfigPath: configPath, Tool: tool})
	_, _ = fmt.Fprint(out, "Checking config... ")
	if err != nil {
		fail("ERROR\n  %v", err)
		_, _ = fmt.Fprintln(out, "\nSome checks failed. See above for details.")
		return fmt.Errorf("doctor checks failed")
	}
	if _, err := os.Stat(pc.ConfigPath); err == nil {
		_, _ = fmt.Fprintf(out, "%s\n", pc.ConfigPath)
	} else {
		_, _ = fmt.Fprintln(out, "not found (using defaults)")
	}

	client := git.New(pc.Root, git.WithTool(pc.Tool))
	_, _ = fmt.Fprintf(out, "Checking %s... ", client.Tool)
	if !client.Available() {
		fail("NOT FOUND\n  git is required. Install it from https://git-scm.com/")
	} else if ver, err := client.Version(ctx); err != nil {
		fail("ERROR\n  %v", err)
	} else {
		_, _ = fmt.Fprintln(out, ver)
		checkRepository(ctx, out, client, pc)
	}

	watch := pc.WatchSet()
	_, _ = fmt.Fprintf(out, "Watched paths present: %d of %d\n", len(watch), len(pc.Config.Watch))
	if len(watch) == 0 {
		_, _ = fmt.Fprintln(out, "  Warning: nothing to watch, every run will execute and commit")
	}

	if target != "" {
		_, _ = fmt.Fprint(out, "Checking executable... ")
		if exe := pc.Executable(); exe != "" {
			_, _ = fmt.Fprintf(out, "found at %s\n", exe)
		} else {
			fail("NOT FOUND\n  expected %s in %s", target, pc.DestDir)
		}
	}

	if ok {
		_, _ = fmt.Fprintln(out, "\nAll checks passed.")
		return nil
	}
	_, _ = fmt.Fprintln(out, "\nSome checks failed. See above for details.")
	return fmt.Errorf("doctor checks failed")
}

// checkRepository reports repository, HEAD and remote state. None of these
// are failures: the first run bootstraps the repository and pushing is optional.
func checkRepository(ctx context.Context, out io.Writer, client *git.Client, pc *project.Context) {
	_, _ = fmt.Fprint(out, "Checking repository... ")
	switch {
	case client.HasHead(ctx):
		branch, _ := client.CurrentBranch(ctx)
		head, _ := client.HeadCommit(ctx)
		_, _ = fmt.Fprintf(out, "%s at %s\n", orDash(branch), orDash(head))
	case client.IsRepo():
		_, _ = fmt.Fprintln(out, "no commits yet (a baseline commit will be created)")
	default:
		_, _ = fmt.Fprintln(out, "not initialized (will be created on the first run)")
		return
	}

	remote := pc.Config.Remote
	_, _ = fmt.Fprintf(out, "Checking remote %s... ", remote)
	url, err := client.RemoteURL(ctx, remote)
	if err != nil {
		_, _ = fmt.Fprintln(out, "not configured (commits stay local)")
		return
	}
	if !pc.Config.PushEnabled() {
		_, _ = fmt.Fprintf(out, "%s (push disabled)\n", url)
		return
	}
	upstream, err := client.Upstream(ctx)
	if errors.Is(err, git.ErrNoUpstream) {
		_, _ = fmt.Fprintf(out, "%s (no upstream; first push sets %s/%s)\n", url, remote, pc.Config.Branch)
		return
	}
	_, _ = fmt.Fprintf(out, "%s (tracking %s)\n", url, upstream)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
