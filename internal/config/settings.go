package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v2"

	"github.com/eclipsefdn/eclipsefdn-github-sync/internal/errors"
)

// Settings is the optional YAML file passed with --config. The access
// token is deliberately absent: it only comes from the command line.
type Settings struct {
	APIURL    string        `yaml:"api_url"`
	Timeout   time.Duration `yaml:"timeout"`
	UserAgent string        `yaml:"user_agent"`
}

// LoadSettings reads and strictly decodes a settings file.
func LoadSettings(path string) (*Settings, error) {
	//nolint:gosec // G304: path comes from the operator
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "read settings %s: %v", path, err)
	}

	var s Settings
	if err := yaml.UnmarshalStrict(b, &s); err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "parse settings %s: %v", path, err)
	}
	return &s, nil
}

// ApplySettings copies s into o for every option whose flag was not set
// explicitly, as reported by changed.
func (o *Options) ApplySettings(s *Settings, changed func(name string) bool) {
	if s == nil {
		return
	}
	if changed == nil {
		changed = func(string) bool { return false }
	}
	if s.APIURL != "" && !changed(FlagAPIURL) {
		o.APIURL = s.APIURL
	}
	if s.Timeout != 0 && !changed(FlagTimeout) {
		o.Timeout = s.Timeout
	}
	if s.UserAgent != "" && !changed(FlagUserAgent) {
		o.UserAgent = s.UserAgent
	}
}
