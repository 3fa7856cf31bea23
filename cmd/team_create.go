package cmd

import (
	"context"

	"github.com/eclipsefdn/eclipsefdn-github-sync/internal/config"
	"github.com/eclipsefdn/eclipsefdn-github-sync/internal/github"
	"github.com/eclipsefdn/eclipsefdn-github-sync/internal/log"
	"github.com/eclipsefdn/eclipsefdn-github-sync/internal/runner"
)

func runCreateTeam(ctx context.Context, opts *config.Options) error {
	client, err := github.New(opts.AccessToken,
		github.WithBaseURL(opts.APIURL),
		github.WithTimeout(opts.Timeout),
		github.WithUserAgent(opts.UserAgent),
		github.WithDebug(opts.Verbose),
	)
	if err != nil {
		return err
	}
	log.Debug("Using GitHub API at %s", client.BaseURL)

	res, err := runner.Run(ctx, opts, client)
	if err != nil {
		return err
	}
	if res.Action == runner.ActionNone {
		log.Info("Nothing to do, pass --create_team to create a team")
	}
	return nil
}
