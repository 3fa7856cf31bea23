// Package runner performs the action selected by the command-line options.
package runner

import (
	"context"
	"fmt"

	"github.com/eclipsefdn/eclipsefdn-github-sync/internal/config"
	"github.com/eclipsefdn/eclipsefdn-github-sync/internal/errors"
	"github.com/eclipsefdn/eclipsefdn-github-sync/internal/github"
	"github.com/eclipsefdn/eclipsefdn-github-sync/internal/log"
)

// Action is what a run ended up doing.
type Action int

const (
	ActionNone Action = iota
	ActionDryRun
	ActionCreated
	ActionFailed
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionDryRun:
		return "dry-run"
	case ActionCreated:
		return "created"
	case ActionFailed:
		return "failed"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// Result describes the outcome of Run. It is returned together with the
// error on failure so callers can report what was attempted.
type Result struct {
	Action       Action
	Organization string
	Team         string
	Permission   github.Permission
	Created      *github.Team
}

// Run creates the configured team when opts.CreateTeam is set, and does
// nothing otherwise. The create call is made at most once and is skipped
// entirely in dry-run mode.
func Run(ctx context.Context, opts *config.Options, client *github.Client) (*Result, error) {
	if opts == nil {
		return nil, errors.Wrap(errors.ErrInvalidConfig, "no options")
	}
	if !opts.CreateTeam {
		log.Debug("No action requested")
		return &Result{Action: ActionNone}, nil
	}

	req := &github.NewTeam{
		Name:       opts.Team,
		Permission: github.PermissionPull,
	}
	res := &Result{
		Organization: opts.Organization,
		Team:         req.Name,
		Permission:   req.Permission,
	}

	if opts.DryRun {
		log.Warn("Dry run set, not writing new team %s:%s", opts.Organization, req.Name)
		res.Action = ActionDryRun
		return res, nil
	}
	if client == nil {
		res.Action = ActionFailed
		return res, errors.Wrap(errors.ErrInvalidCredential, "no GitHub client")
	}

	log.Info("Creating team %s:%s with %s permission", opts.Organization, req.Name, req.Permission)
	created, err := client.Teams().Create(ctx, opts.Organization, req)
	if err != nil {
		res.Action = ActionFailed
		return res, err
	}

	res.Action = ActionCreated
	res.Created = created
	log.Success("Done creating team with name: %s:%s", opts.Organization, req.Name)
	if created.HTMLURL != "" {
		log.InfoH2("%s", created.HTMLURL)
	}
	return res, nil
}
