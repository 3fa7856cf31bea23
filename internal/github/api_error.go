package github

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/eclipsefdn/eclipsefdn-github-sync/internal/errors"
)

// FieldError is one entry of the "errors" array GitHub attaches to 422
// responses.
type FieldError struct {
	Resource string `json:"resource"`
	Field    string `json:"field"`
	Code     string `json:"code"`
	Message  string `json:"message,omitempty"`
}

// APIError is a non-2xx answer from the GitHub API.
type APIError struct {
	Method           string       `json:"-"`
	Path             string       `json:"-"`
	StatusCode       int          `json:"-"`
	Message          string       `json:"message"`
	DocumentationURL string       `json:"documentation_url,omitempty"`
	Errors           []FieldError `json:"errors,omitempty"`
}

func newAPIError(method, path string, status int, body []byte) *APIError {
	apiErr := &APIError{Method: method, Path: path, StatusCode: status}
	if len(body) > 0 {
		if err := json.Unmarshal(body, apiErr); err != nil {
			apiErr.Message = strings.TrimSpace(string(body))
		}
	}
	return apiErr
}

func (e *APIError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s: %d", e.Method, e.Path, e.StatusCode)
	if e.Message != "" {
		b.WriteString(" ")
		b.WriteString(e.Message)
	}
	for _, fe := range e.Errors {
		switch {
		case fe.Message != "":
			fmt.Fprintf(&b, "; %s", fe.Message)
		case fe.Field != "":
			fmt.Fprintf(&b, "; %s.%s %s", fe.Resource, fe.Field, fe.Code)
		}
	}
	return b.String()
}

// Is lets callers match any API rejection against errors.ErrRemoteCall.
func (e *APIError) Is(target error) bool {
	return target == errors.ErrRemoteCall
}

// AlreadyExists reports whether GitHub rejected a create because the
// resource name is taken.
func (e *APIError) AlreadyExists() bool {
	if e.StatusCode != 422 {
		return false
	}
	for _, fe := range e.Errors {
		if fe.Code == "already_exists" {
			return true
		}
	}
	return strings.Contains(strings.ToLower(e.Message), "already exists")
}
