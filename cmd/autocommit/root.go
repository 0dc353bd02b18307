package main

import (
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fbkclanna/autocommit/internal/logging"
	"github.com/fbkclanna/autocommit/internal/pipeline"
	"github.com/fbkclanna/autocommit/internal/project"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "autocommit <repo-root> <target-name> <dest-dir>",
		Short: "Run a freshly built executable and commit its output",
		Long: `autocommit is meant to be invoked as a post-build step. When a watched
source changed since the last commit it runs <dest-dir>/<target-name>,
captures the output into output/welcome_output_<n>.txt and commits the
sources, the output and the run counter, pushing to origin when configured.

The command never fails the build: every problem is logged as a warning.`,
		Version: version,
		Args:    cobra.ExactArgs(3),
		RunE:    runPipeline,
	}

	cmd.Flags().String("config", "", "Config file (default <repo-root>/.autocommit.yaml)")
	cmd.Flags().String("git", "git", "git executable name or path")
	cmd.Flags().Bool("no-push", false, "Do not push after committing")
	cmd.Flags().Bool("json", false, "Print the run report as JSON")
	cmd.Flags().BoolP("verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(
		newInitCmd(),
		newDoctorCmd(),
		newStatusCmd(),
	)

	return cmd
}

func runPipeline(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	tool, _ := cmd.Flags().GetString("git")
	noPush, _ := cmd.Flags().GetBool("no-push")
	asJSON, _ := cmd.Flags().GetBool("json")
	verbose, _ := cmd.Flags().GetBool("verbose")

	logger := logging.New(cmd.ErrOrStderr(), verbose)

	pc, err := project.Load(args[0], args[1], args[2], project.Options{ConfigPath: configPath, Tool: tool})
	if err != nil {
		logger.Warn("auto-commit disabled", "err", err)
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := []pipeline.Option{pipeline.WithLogger(logger)}
	if noPush {
		opts = append(opts, pipeline.WithoutPush())
	}
	rep := pipeline.New(pc, opts...).Run(ctx)

	out := cmd.OutOrStdout()
	if asJSON {
		err = rep.WriteJSON(out)
	} else {
		err = rep.WriteTable(out, isTerminal(out))
	}
	if err != nil {
		logger.Warn("writing report failed", "err", err)
	}
	return nil
}

// isTerminal reports whether w is a terminal file descriptor.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
