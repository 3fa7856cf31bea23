package github

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/imroc/req/v3"

	"github.com/eclipsefdn/eclipsefdn-github-sync/internal/errors"
)

// Permission is the access tier a team gets on repositories added to it.
type Permission string

const (
	PermissionPull  Permission = "pull"
	PermissionPush  Permission = "push"
	PermissionAdmin Permission = "admin"
)

// ParsePermission accepts pull, push or admin in any case.
func ParsePermission(s string) (Permission, error) {
	p := Permission(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", errors.Wrapf(errors.ErrInvalidPermission, "%q (want pull, push or admin)", s)
	}
	return p, nil
}

// Valid reports whether p is one of the known levels.
func (p Permission) Valid() bool {
	switch p {
	case PermissionPull, PermissionPush, PermissionAdmin:
		return true
	}
	return false
}

func (p Permission) String() string {
	return string(p)
}

// NewTeam is the body of a create-team request.
type NewTeam struct {
	Name       string     `json:"name"`
	Permission Permission `json:"permission,omitempty"`
}

// Team is a team as returned by the API.
//
//nolint:revive // Field names match API responses
type Team struct {
	ID         int64  `json:"id"`
	NodeID     string `json:"node_id"`
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	Permission string `json:"permission"`
	Privacy    string `json:"privacy"`
	URL        string `json:"url"`
	HTMLURL    string `json:"html_url"`
}

// TeamService manages organization teams.
type TeamService struct {
	client *Client
}

// Create makes a new team in org. A NewTeam without a permission is sent
// as pull.
func (s *TeamService) Create(ctx context.Context, org string, team *NewTeam) (*Team, error) {
	if s == nil {
		return nil, fmt.Errorf("team service is not initialized")
	}
	if strings.TrimSpace(org) == "" {
		return nil, errors.Wrap(errors.ErrInvalidConfig, "organization is required")
	}
	if team == nil || strings.TrimSpace(team.Name) == "" {
		return nil, errors.Wrap(errors.ErrInvalidConfig, "team name is required")
	}

	body := *team
	if body.Permission == "" {
		body.Permission = PermissionPull
	}
	if !body.Permission.Valid() {
		return nil, errors.Wrapf(errors.ErrInvalidPermission, "%q", body.Permission)
	}

	var created Team
	build := func(r *req.Request) *req.Request {
		return r.SetPathParam("org", org).SetBodyJsonMarshal(&body)
	}
	if err := s.client.doRequest(ctx, http.MethodPost, "/orgs/{org}/teams", build, &created); err != nil {
		return nil, fmt.Errorf("create team %s/%s: %w", org, body.Name, err)
	}
	return &created, nil
}
