/*
Copyright © 2019 Eclipse Foundation and others.
*/

// Package cmd provides the command-line interface for eclipsefdn-github-sync
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/eclipsefdn/eclipsefdn-github-sync/internal/config"
	"github.com/eclipsefdn/eclipsefdn-github-sync/internal/errors"
	"github.com/eclipsefdn/eclipsefdn-github-sync/internal/log"
)

var version = "0.1"

// Exit statuses
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// NewRootCommand builds the command with its own Options value, so every
// invocation starts from a clean state.
func NewRootCommand() *cobra.Command {
	opts := &config.Options{}

	cmd := &cobra.Command{
		Use:   config.Name + " -T <token> [flags]",
		Short: "Manage Eclipse Foundation GitHub organizations",
		Long: `eclipsefdn-github-sync - administrative helper for GitHub organizations

Authenticates with a GitHub access token and creates a team in an
organization. Teams are created with pull permission.`,
		Example: `  # Create the team "widgets" in the "acme" organization
  eclipsefdn-github-sync -T $GITHUB_TOKEN -c -t widgets -o acme

  # Show what would be created without writing anything
  eclipsefdn-github-sync -T $GITHUB_TOKEN -c -t widgets -o acme --dry_run

  # Target a GitHub Enterprise Server instance
  eclipsefdn-github-sync -T $GITHUB_TOKEN -c -t widgets -o acme --api_url https://ghe.example.com/api/v3`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 {
				return errors.Wrapf(errors.ErrInvalidConfig, "unexpected arguments %q", args)
			}
			return nil
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if opts.Verbose {
				log.SetDebugMode(true)
				log.Debug("Debug mode enabled")
			}
			return opts.Finalize(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCreateTeam(cmd.Context(), opts)
		},
	}

	config.BindFlags(cmd.Flags(), opts)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return config.FlagError(err)
	})
	return cmd
}

// Main runs the command with args and returns the process exit status.
// Configuration and credential problems exit 2 after printing usage; a
// failed API call exits 1.
func Main(ctx context.Context, args []string) int {
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(log.Stdout)
	cmd.SetErr(log.Stderr)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return ExitOK
	}

	log.Error("%v", err)
	switch errors.Kind(err) {
	case errors.KindConfiguration, errors.KindCredential:
		_, _ = fmt.Fprint(log.Stderr, cmd.UsageString())
		return ExitUsage
	default:
		return ExitFailure
	}
}

// Execute is called by main.main().
func Execute() {
	os.Exit(Main(context.Background(), os.Args[1:]))
}
