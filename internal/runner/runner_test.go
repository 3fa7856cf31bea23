package runner

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eclipsefdn/eclipsefdn-github-sync/internal/config"
	"github.com/eclipsefdn/eclipsefdn-github-sync/internal/errors"
	"github.com/eclipsefdn/eclipsefdn-github-sync/internal/github"
	"github.com/eclipsefdn/eclipsefdn-github-sync/internal/log"
)

type createCall struct {
	Org  string
	Body github.NewTeam
}

// fakeGitHub records every create-team request it receives.
type fakeGitHub struct {
	mu     sync.Mutex
	calls  []createCall
	status int
	body   string
}

func (f *fakeGitHub) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /orgs/{org}/teams", func(w http.ResponseWriter, r *http.Request) {
		var body github.NewTeam
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		f.mu.Lock()
		f.calls = append(f.calls, createCall{Org: r.PathValue("org"), Body: body})
		f.mu.Unlock()

		w.WriteHeader(f.status)
		_, _ = w.Write([]byte(f.body))
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
	})
	return mux
}

func (f *fakeGitHub) Calls() []createCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]createCall(nil), f.calls...)
}

func setup(t *testing.T, status int, body string) (*fakeGitHub, *github.Client) {
	t.Helper()
	fake := &fakeGitHub{status: status, body: body}
	server := httptest.NewServer(fake.handler(t))
	t.Cleanup(server.Close)

	client, err := github.New("tok123", github.WithBaseURL(server.URL))
	require.NoError(t, err)
	return fake, client
}

func quietLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	oldOut, oldErr := log.Stdout, log.Stderr
	var buf bytes.Buffer
	log.Stdout, log.Stderr = &buf, &buf
	t.Cleanup(func() { log.Stdout, log.Stderr = oldOut, oldErr })
	return &buf
}

func TestRun_NoActionMakesNoCalls(t *testing.T) {
	quietLogs(t)
	fake, client := setup(t, http.StatusCreated, `{}`)

	for _, opts := range []*config.Options{
		{AccessToken: "tok123"},
		{AccessToken: "tok123", Team: "widgets", Organization: "acme"},
		{AccessToken: "tok123", DryRun: true},
	} {
		res, err := Run(context.Background(), opts, client)
		require.NoError(t, err)
		assert.Equal(t, ActionNone, res.Action)
	}
	assert.Empty(t, fake.Calls())
}

func TestRun_CreatesTeamOnce(t *testing.T) {
	quietLogs(t)
	fake, client := setup(t, http.StatusCreated,
		`{"id":7,"name":"eclipse-committers","slug":"eclipse-committers","permission":"pull"}`)

	opts := &config.Options{
		AccessToken:  "tok123",
		CreateTeam:   true,
		Team:         "eclipse-committers",
		Organization: "eclipse-foundation",
	}
	res, err := Run(context.Background(), opts, client)
	require.NoError(t, err)

	want := []createCall{{
		Org:  "eclipse-foundation",
		Body: github.NewTeam{Name: "eclipse-committers", Permission: github.PermissionPull},
	}}
	if diff := cmp.Diff(want, fake.Calls()); diff != "" {
		t.Errorf("create calls mismatch (-want +got):\n%s", diff)
	}

	wantRes := &Result{
		Action:       ActionCreated,
		Organization: "eclipse-foundation",
		Team:         "eclipse-committers",
		Permission:   github.PermissionPull,
		Created:      &github.Team{ID: 7, Name: "eclipse-committers", Slug: "eclipse-committers", Permission: "pull"},
	}
	if diff := cmp.Diff(wantRes, res); diff != "" {
		t.Errorf("result mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_ParsedScenario(t *testing.T) {
	quietLogs(t)
	fake, client := setup(t, http.StatusCreated, `{"id":1,"name":"widgets"}`)

	opts, err := config.Parse([]string{"-T", "tok123", "-c", "-t", "widgets", "-o", "acme"})
	require.NoError(t, err)

	res, err := Run(context.Background(), opts, client)
	require.NoError(t, err)
	assert.Equal(t, ActionCreated, res.Action)

	calls := fake.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "acme", calls[0].Org)
	assert.Equal(t, "widgets", calls[0].Body.Name)
	assert.Equal(t, github.PermissionPull, calls[0].Body.Permission)
}

func TestRun_DryRunSkipsWrite(t *testing.T) {
	out := quietLogs(t)
	fake, client := setup(t, http.StatusCreated, `{}`)

	opts := &config.Options{AccessToken: "tok123", CreateTeam: true, Team: "widgets", Organization: "acme", DryRun: true}
	res, err := Run(context.Background(), opts, client)
	require.NoError(t, err)

	assert.Empty(t, fake.Calls())
	if diff := cmp.Diff(&Result{Action: ActionDryRun, Organization: "acme", Team: "widgets", Permission: github.PermissionPull}, res); diff != "" {
		t.Errorf("result mismatch (-want +got):\n%s", diff)
	}
	assert.Contains(t, out.String(), "acme:widgets")
}

func TestRun_APIErrorIsReturned(t *testing.T) {
	quietLogs(t)
	fake, client := setup(t, http.StatusUnprocessableEntity,
		`{"message":"Validation Failed","errors":[{"resource":"Team","code":"already_exists","field":"name"}]}`)

	opts := &config.Options{AccessToken: "tok123", CreateTeam: true, Team: "widgets", Organization: "acme"}
	res, err := Run(context.Background(), opts, client)

	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrRemoteCall)
	assert.Equal(t, errors.KindRemote, errors.Kind(err))
	assert.Equal(t, ActionFailed, res.Action)
	assert.Len(t, fake.Calls(), 1)
}

func TestRun_TransportErrorDoesNotPanic(t *testing.T) {
	quietLogs(t)
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	client, err := github.New("tok123", github.WithBaseURL(url))
	require.NoError(t, err)

	opts := &config.Options{AccessToken: "tok123", CreateTeam: true, Team: "widgets", Organization: "acme"}

	var res *Result
	require.NotPanics(t, func() {
		res, err = Run(context.Background(), opts, client)
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrRemoteCall)
	assert.Equal(t, ActionFailed, res.Action)
}

func TestRun_NilArguments(t *testing.T) {
	quietLogs(t)

	_, err := Run(context.Background(), nil, nil)
	assert.ErrorIs(t, err, errors.ErrInvalidConfig)

	opts := &config.Options{AccessToken: "tok123", CreateTeam: true, Team: "widgets", Organization: "acme"}
	res, err := Run(context.Background(), opts, nil)
	assert.ErrorIs(t, err, errors.ErrInvalidCredential)
	assert.Equal(t, ActionFailed, res.Action)
}

func TestAction_String(t *testing.T) {
	got := []string{ActionNone.String(), ActionDryRun.String(), ActionCreated.String(), ActionFailed.String(), Action(9).String()}
	want := []string{"none", "dry-run", "created", "failed", "Action(9)"}
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("Action.String() mismatch (-want +got):\n%s", diff)
	}
}
