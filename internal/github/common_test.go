package github

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

// mockServer creates a test HTTP server that simulates the GitHub API.
// Unrouted paths answer 404 with a GitHub-style body.
func mockServer(t *testing.T, handlers map[string]http.HandlerFunc) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Not Found"}`))
	})
	for path, handler := range handlers {
		mux.HandleFunc(path, handler)
	}
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func newTestClient(t *testing.T, server *httptest.Server) *Client {
	t.Helper()
	c, err := New("tok123", WithBaseURL(server.URL))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return c
}
