package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fbkclanna/autocommit/internal/config"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [repo-root]",
		Short: "Write a .autocommit.yaml, interactively on a terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runInit,
	}
	cmd.Flags().Bool("defaults", false, "Write the default configuration without prompting")
	cmd.Flags().StringSlice("watch", nil, "Watched paths (overrides the defaults)")
	cmd.Flags().Bool("force", false, "Overwrite an existing config file")
	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) == 1 {
		root = args[0]
	}
	useDefaults, _ := cmd.Flags().GetBool("defaults")
	force, _ := cmd.Flags().GetBool("force")
	watch, _ := cmd.Flags().GetStringSlice("watch")

	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("repository root: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("repository root %s is not a directory", root)
	}

	path := filepath.Join(root, config.FileName)
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	cfg := config.Default()
	if cmd.Flags().Changed("watch") {
		list := strings.Join(watch, ",")
		if err := relPathsValidator(list); err != nil {
			return fmt.Errorf("invalid --watch: %w", err)
		}
		cfg.Watch = splitList(list)
	}

	if !useDefaults && !cmd.Flags().Changed("watch") && term.IsTerminal(int(os.Stdin.Fd())) {
		if err := interactiveConfig(cfg); err != nil {
			return fmt.Errorf("interactive setup: %w", err)
		}
	}

	if err := config.Save(path, cfg); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (watching %d path(s))\n", path, len(cfg.Watch))
	return nil
}
