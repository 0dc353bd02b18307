package main

import (
	"encoding/json"
	"fmt"

	"github.com/fbkclanna/autocommit/internal/counter"
	"github.com/fbkclanna/autocommit/internal/git"
	"github.com/fbkclanna/autocommit/internal/project"
	"github.com/fbkclanna/autocommit/internal/ui"
	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status <repo-root>",
		Short: "Show watched paths, the run counter and the remote",
		Args:  cobra.ExactArgs(1),
		RunE:  runStatus,
	}
	cmd.Flags().String("config", "", "Config file (default <repo-root>/.autocommit.yaml)")
	cmd.Flags().String("git", "git", "git executable name or path")
	cmd.Flags().Bool("json", false, "Output as JSON")
	return cmd
}

type watchStatus struct {
	Path    string `json:"path"`
	Present bool   `json:"present"`
	State   string `json:"state,omitempty"`
}

type projectStatus struct {
	Root    string        `json:"root"`
	Repo    bool          `json:"repo"`
	Commits int           `json:"commits"`
	Counter int           `json:"counter"`
	Remote  string        `json:"remote,omitempty"`
	Watch   []watchStatus `json:"watch"`
}

func runStatus(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	tool, _ := cmd.Flags().GetString("git")
	asJSON, _ := cmd.Flags().GetBool("json")

	pc, err := project.Load(args[0], "", "", project.Options{ConfigPath: configPath, Tool: tool})
	if err != nil {
		return err
	}

	s, err := collectStatus(cmd, pc)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	}

	tbl := ui.NewTable(out, "PATH", "PRESENT", "STATE")
	for _, w := range s.Watch {
		tbl.Row(w.Path, w.Present, w.State)
	}
	if err := tbl.Flush(); err != nil {
		return err
	}
	remote := s.Remote
	if remote == "" {
		remote = "-"
	}
	_, _ = fmt.Fprintf(out, "\nCommits: %d\nCounter: %d\nRemote:  %s\n", s.Commits, s.Counter, remote)
	return nil
}

func collectStatus(cmd *cobra.Command, pc *project.Context) (projectStatus, error) {
	ctx := cmd.Context()
	s := projectStatus{Root: pc.Root, Watch: make([]watchStatus, 0, len(pc.Config.Watch))}

	n, err := counter.Load(pc.CounterPath())
	if err != nil {
		return s, err
	}
	s.Counter = n

	client := git.New(pc.Root, git.WithTool(pc.Tool))
	s.Repo = client.Available() && client.IsRepo()
	if s.Repo {
		if n, err := client.CommitCount(ctx); err == nil {
			s.Commits = n
		}
		if url, err := client.RemoteURL(ctx, pc.Config.Remote); err == nil {
			s.Remote = url
		}
	}

	for _, p := range pc.Config.Watch {
		w := watchStatus{Path: p, Present: pc.Exists(p)}
		if w.Present && s.Repo {
			entries, err := client.Status(ctx, p)
			if err != nil {
				return s, err
			}
			w.State = watchState(entries)
		}
		s.Watch = append(s.Watch, w)
	}
	return s, nil
}

// watchState summarizes porcelain entries for one watched path.
func watchState(entries []git.StatusEntry) string {
	if len(entries) == 0 {
		return "clean"
	}
	for _, e := range entries {
		if !e.Untracked() {
			return "modified"
		}
	}
	return "untracked"
}
