// Package config turns command-line arguments into the options of a run.
package config

import (
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/eclipsefdn/eclipsefdn-github-sync/internal/errors"
)

// Name is the program name used in usage output.
const Name = "eclipsefdn-github-sync"

// Flag names
const (
	FlagCreateTeam   = "create_team"
	FlagTeam         = "team"
	FlagOrganization = "organization"
	FlagToken        = "token"
	FlagDryRun       = "dry_run"
	FlagAPIURL       = "api_url"
	FlagTimeout      = "timeout"
	FlagUserAgent    = "user_agent"
	FlagConfig       = "config"
	FlagVerbose      = "verbose"
)

// Options is the parsed configuration of one run. Treat it as read-only
// once Parse or Finalize has returned.
type Options struct {
	CreateTeam   bool
	Team         string
	Organization string
	AccessToken  string
	DryRun       bool

	// Empty values fall back to the GitHub client defaults.
	APIURL    string
	Timeout   time.Duration
	UserAgent string

	ConfigFile string
	Verbose    bool
}

// BindFlags registers every option on fs. The cobra command and Parse
// share this table.
func BindFlags(fs *pflag.FlagSet, o *Options) {
	fs.BoolVarP(&o.CreateTeam, FlagCreateTeam, "c", false, "Create a new team in the organization")
	fs.StringVarP(&o.Team, FlagTeam, "t", "", "Name of the team (required with --create_team)")
	fs.StringVarP(&o.Organization, FlagOrganization, "o", "", "Name of the targeted organization (required with --create_team)")
	fs.StringVarP(&o.AccessToken, FlagToken, "T", "", "GitHub access token (required)")
	fs.BoolVarP(&o.DryRun, FlagDryRun, "d", false, "Report what would be written without calling the API")
	fs.StringVar(&o.APIURL, FlagAPIURL, "", "GitHub API root (default https://api.github.com)")
	fs.DurationVar(&o.Timeout, FlagTimeout, 0, "Request timeout (default 30s)")
	fs.StringVar(&o.UserAgent, FlagUserAgent, "", "User-Agent sent with API requests")
	fs.StringVar(&o.ConfigFile, FlagConfig, "", "YAML settings file")
	fs.BoolVar(&o.Verbose, FlagVerbose, false, "Enable debug logging")
}

// Parse reads args into a new Options. It never touches the network; the
// only I/O is reading the --config file when one is given.
func Parse(args []string) (*Options, error) {
	o := &Options{}
	fs := pflag.NewFlagSet(Name, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	BindFlags(fs, o)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, err
		}
		return nil, FlagError(err)
	}
	if fs.NArg() > 0 {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "unexpected arguments %q", fs.Args())
	}
	if err := o.Finalize(fs); err != nil {
		return nil, err
	}
	return o, nil
}

// FlagError maps a pflag parse failure onto the error taxonomy.
func FlagError(err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	if strings.HasPrefix(msg, "unknown flag") || strings.HasPrefix(msg, "unknown shorthand flag") {
		return fmt.Errorf("%w: %w", errors.ErrUnknownOption, err)
	}
	return fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
}

// Finalize merges the --config settings into options whose flags were not
// set on fs, then validates the result.
func (o *Options) Finalize(fs *pflag.FlagSet) error {
	if o.ConfigFile != "" {
		s, err := LoadSettings(o.ConfigFile)
		if err != nil {
			return err
		}
		o.ApplySettings(s, fs.Changed)
	}
	return o.Validate()
}

// Validate checks the cross-field rules that the flag parser cannot.
func (o *Options) Validate() error {
	if strings.TrimSpace(o.AccessToken) == "" {
		return errors.Wrap(errors.ErrMissingRequired, "--"+FlagToken)
	}
	if o.CreateTeam {
		if strings.TrimSpace(o.Team) == "" {
			return errors.Wrapf(errors.ErrMissingRequired, "--%s is required with --%s", FlagTeam, FlagCreateTeam)
		}
		if strings.TrimSpace(o.Organization) == "" {
			return errors.Wrapf(errors.ErrMissingRequired, "--%s is required with --%s", FlagOrganization, FlagCreateTeam)
		}
	}
	if o.Timeout < 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "--%s must not be negative", FlagTimeout)
	}
	if o.APIURL != "" {
		u, err := url.Parse(o.APIURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return errors.Wrapf(errors.ErrInvalidConfig, "--%s %q is not an http(s) URL", FlagAPIURL, o.APIURL)
		}
	}
	return nil
}

// Args renders o back into flags. Parse(o.Args()) yields an equal Options.
func (o *Options) Args() []string {
	args := []string{"--" + FlagToken + "=" + o.AccessToken}
	if o.CreateTeam {
		args = append(args, "--"+FlagCreateTeam)
	}
	if o.Team != "" {
		args = append(args, "--"+FlagTeam+"="+o.Team)
	}
	if o.Organization != "" {
		args = append(args, "--"+FlagOrganization+"="+o.Organization)
	}
	if o.DryRun {
		args = append(args, "--"+FlagDryRun)
	}
	if o.APIURL != "" {
		args = append(args, "--"+FlagAPIURL+"="+o.APIURL)
	}
	if o.Timeout != 0 {
		args = append(args, "--"+FlagTimeout+"="+o.Timeout.String())
	}
	if o.UserAgent != "" {
		args = append(args, "--"+FlagUserAgent+"="+o.UserAgent)
	}
	if o.ConfigFile != "" {
		args = append(args, "--"+FlagConfig+"="+o.ConfigFile)
	}
	if o.Verbose {
		args = append(args, "--"+FlagVerbose)
	}
	return args
}
