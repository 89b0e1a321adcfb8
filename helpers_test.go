package aihorde_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-logr/logr/testr"

	"github.com/lapismyt/aihorde-go"
)

// mustEncode encodes v as JSON and writes it to w.
// Panics on error - safe in tests since errors indicate test bugs.
func mustEncode(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		panic("failed to encode response: " + err.Error())
	}
}

// mustDecode decodes JSON from r.Body into v.
// Panics on error - safe in tests since errors indicate test bugs.
func mustDecode(r *http.Request, v any) {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		panic("failed to decode request: " + err.Error())
	}
}

// writeRaw writes body verbatim with the given status.
func writeRaw(w http.ResponseWriter, status int, body string) {
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

// newTestClient starts a server for handler and returns a client whose base
// URL points at its /api/v2 prefix.
func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...aihorde.Option) *aihorde.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	opts = append([]aihorde.Option{
		aihorde.WithBaseURL(server.URL + "/api/v2"),
		aihorde.WithLogger(testr.NewWithOptions(t, testr.Options{Verbosity: 1})),
	}, opts...)
	return aihorde.NewClient(opts...)
}
