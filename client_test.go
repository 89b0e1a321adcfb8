package aihorde_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/go-openapi/swag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lapismyt/aihorde-go"
)

// TestNewClient_Defaults verifies the settings of a client built without
// options.
func TestNewClient_Defaults(t *testing.T) {
	// Arrange
	client := aihorde.NewClient()
	// Act
	cfg := client.Config()

	// Assert
	assert.Equal(t, aihorde.AnonymousAPIKey, cfg.APIKey)
	assert.Equal(t, aihorde.DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, aihorde.DefaultClientAgent, cfg.ClientAgent)
	assert.True(t, strings.HasPrefix(cfg.ClientAgent, "aihorde-go:"+aihorde.Version+":"))
}

// TestNewClient_EmptyOptionsKeepDefaults verifies that empty values do not
// clear the defaults.
func TestNewClient_EmptyOptionsKeepDefaults(t *testing.T) {
	// Arrange
	client := aihorde.NewClient(
		aihorde.WithAPIKey(""),
		aihorde.WithClientAgent(""),
		aihorde.WithHTTPClient(nil),
	)
	// Act
	cfg := client.Config()

	// Assert
	assert.Equal(t, aihorde.AnonymousAPIKey, cfg.APIKey)
	assert.Equal(t, aihorde.DefaultClientAgent, cfg.ClientAgent)
}

// TestNewClient_InvalidBaseURLFallsBack verifies that construction never
// fails and unusable base URLs are replaced by the default.
func TestNewClient_InvalidBaseURLFallsBack(t *testing.T) {
	for _, raw := range []string{"not a url", "/relative/path", "ftp://horde.example/api", "http://[::1"} {
		t.Run(raw, func(t *testing.T) {
			var logged atomic.Bool
			logger := funcr.New(func(prefix, args string) {
				if strings.Contains(args, "invalid base URL") {
					logged.Store(true)
				}
			}, funcr.Options{})

			client := aihorde.NewClient(aihorde.WithBaseURL(raw), aihorde.WithLogger(logger))

			assert.Equal(t, aihorde.DefaultBaseURL, client.Config().BaseURL)
			assert.True(t, logged.Load(), "fallback should be logged")
		})
	}
}

// TestParseBaseURL verifies which base URLs are accepted and how they
// are normalized.
func TestParseBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{"https", "https://stablehorde.net/api/v2", "https://stablehorde.net/api/v2", false},
		{"http with port", "http://localhost:7001/api/v2/", "http://localhost:7001/api/v2/", false},
		{"query stripped", "https://aihorde.net/api/v2?x=1#frag", "https://aihorde.net/api/v2", false},
		{"relative", "api/v2", "", true},
		{"no host", "https:///api/v2", "", true},
		{"unsupported scheme", "ws://aihorde.net/api/v2", "", true},
		{"unparseable", "http://%zz", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := aihorde.ParseBaseURL(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, aihorde.ErrInvalidURL)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, u.String())
		})
	}
}

// TestClientConfig_StringMasksKey verifies the printable config never shows
// the full API key.
func TestClientConfig_StringMasksKey(t *testing.T) {
	// Arrange
	client := aihorde.NewClient(aihorde.WithAPIKey("abcdef123456"))

	// Act
	s := client.Config().String()

	// Assert
	assert.NotContains(t, s, "abcdef123456")
	assert.Contains(t, s, "ab****56")
	assert.Equal(t, "abcdef123456", client.Config().APIKey)
}

// TestClient_SendsHeaders verifies that every request carries the key and
// client agent, and only requests with a body set Content-Type.
func TestClient_SendsHeaders(t *testing.T) {
	// Arrange
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "secret-key", r.Header.Get("apikey"))
		assert.Equal(t, "tests:1.0:nobody", r.Header.Get("Client-Agent"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Empty(t, r.Header.Get("Content-Type"))
		mustEncode(w, map[string]any{"message": "OK", "version": "4.44.0"})
	}, aihorde.WithAPIKey("secret-key"), aihorde.WithClientAgent("tests:1.0:nobody"))

	// Act
	_, err := client.Heartbeat(context.Background())

	// Assert
	require.NoError(t, err)
}

// TestWhoAmI_Success tests WhoAmI with a complete user record.
//
// It verifies that:
//   - The client calls GET /find_user
//   - Every nested record decodes the same way encoding/json would
//   - Enum fields such as the style type are recognized
func TestWhoAmI_Success(t *testing.T) {
	// Arrange
	raw := `{
		"username": "db0#1",
		"id": 1,
		"kudos": 1234.5,
		"concurrency": 30,
		"worker_count": 2,
		"worker_ids": ["w1", "w2"],
		"sharedkey_ids": ["k1"],
		"styles": [{"name": "mine", "id": "s1", "type": "image"}],
		"kudos_details": {"accumulated": 10, "gifted": -5},
		"monthly_kudos": {"amount": 100, "last_received": "2024-01-02T03:04:05Z"},
		"records": {"usage": {"megapixelsteps": 12.5, "tokens": 3}, "request": {"image": 7}},
		"trusted": true,
		"account_age": 86400
	}`
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/find_user", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, raw)
	})

	// Act
	user, err := client.WhoAmI(context.Background())

	// Assert
	require.NoError(t, err)
	var want aihorde.UserDetails
	require.NoError(t, json.Unmarshal([]byte(raw), &want))
	assert.Equal(t, &want, user)
	assert.Equal(t, "db0#1", user.Username)
	assert.Equal(t, []string{"k1"}, user.SharedKeyIDs)
	require.Len(t, user.Styles, 1)
	assert.Equal(t, aihorde.StyleTypeImage, user.Styles[0].Type)
	assert.Equal(t, int64(7), user.Records.Request.Image)
}

// TestGetUser_Success tests GetUser with a trimmed numeric id.
func TestGetUser_Success(t *testing.T) {
	// Arrange
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/users/42", r.URL.Path)
		mustEncode(w, map[string]any{"username": "alice#42", "id": 42})
	})

	// Act
	user, err := client.GetUser(context.Background(), " 42 ")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(42), user.ID)
}

// TestGetUser_NotFound tests GetUser when the horde does not know the id.
//
// It verifies that:
//   - IsNotFound reports true
//   - The horde's rc is exposed through ErrorCodeOf
func TestGetUser_NotFound(t *testing.T) {
	// Arrange
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		writeRaw(w, http.StatusNotFound, `{"message":"User not found","rc":"UserNotFound"}`)
	})

	// Act
	_, err := client.GetUser(context.Background(), "999999")

	// Assert
	require.Error(t, err)
	assert.True(t, aihorde.IsNotFound(err))
	assert.Equal(t, aihorde.ErrorCodeUserNotFound, aihorde.ErrorCodeOf(err))
}

// TestGetUser_EmptyID verifies a blank id fails locally without a request.
func TestGetUser_EmptyID(t *testing.T) {
	// Arrange
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	})

	// Act
	_, err := client.GetUser(context.Background(), "  ")

	// Assert
	assert.ErrorIs(t, err, aihorde.ErrInvalidRequest)
	assert.Zero(t, calls.Load(), "no request should be sent")
}

// TestListUsers verifies the page and sort query for each sort order.
func TestListUsers(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		sort      aihorde.UserSort
		wantQuery string
	}{
		{"default sort", 1, "", "page=1&sort=kudos"},
		{"by age", 3, aihorde.SortByAge, "page=3&sort=age"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/v2/users", r.URL.Path)
				assert.Equal(t, tt.wantQuery, r.URL.RawQuery)
				mustEncode(w, []map[string]any{{"username": "a#1"}, {"username": "b#2"}})
			})

			users, err := client.ListUsers(context.Background(), tt.page, tt.sort)

			require.NoError(t, err)
			assert.Len(t, users, 2)
		})
	}
}

// TestListUsers_NegativePage verifies negative pages are rejected locally.
func TestListUsers_NegativePage(t *testing.T) {
	// Arrange
	client := aihorde.NewClient()

	// Act
	_, err := client.ListUsers(context.Background(), -1, aihorde.SortByKudos)

	// Assert
	assert.ErrorIs(t, err, aihorde.ErrInvalidRequest)
}

// TestSubmit_PromptOnly verifies that unset optional fields are left out of
// the request body entirely.
func TestSubmit_PromptOnly(t *testing.T) {
	// Arrange
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v2/generate/async", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"prompt":"a cat"}`, string(body))

		w.WriteHeader(http.StatusAccepted)
		mustEncode(w, map[string]any{"id": "req-1", "kudos": 10})
	})

	// Act
	handle, err := client.Submit(context.Background(), &aihorde.GenerationRequest{Prompt: "a cat"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "req-1", handle.ID)
	assert.Equal(t, 10.0, handle.Kudos)
}

// TestSubmit_FullBody tests Submit with nested params set.
//
// It verifies that:
//   - Enum values are sent as their wire strings
//   - Unset params such as steps are left out
func TestSubmit_FullBody(t *testing.T) {
	// Arrange
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		mustDecode(r, &body)

		assert.Equal(t, "a cat", body["prompt"])
		assert.Equal(t, false, body["nsfw"])
		assert.Equal(t, []any{"stable_diffusion"}, body["models"])

		params := body["params"].(map[string]any)
		assert.Equal(t, "k_dpmpp_2m", params["sampler_name"])
		assert.Equal(t, 512.0, params["width"])
		assert.Equal(t, []any{"RealESRGAN_x4plus", "CodeFormers"}, params["post_processing"])
		assert.Equal(t, []any{map[string]any{"name": "emb", "inject_ti": "negprompt", "strength": 0.5}}, params["tis"])
		assert.NotContains(t, params, "steps")

		mustEncode(w, map[string]any{"id": "req-2"})
	})

	// Act
	_, err := client.Submit(context.Background(), &aihorde.GenerationRequest{
		Prompt: "a cat",
		NSFW:   swag.Bool(false),
		Models: []string{"stable_diffusion"},
		Params: &aihorde.GenerationParams{
			Sampler:        aihorde.Ptr(aihorde.SamplerKDPMPP2M),
			Width:          swag.Int64(512),
			PostProcessing: []aihorde.PostProcessor{aihorde.PostProcessorRealESRGANx4plus, aihorde.PostProcessorCodeFormers},
			TIs: []aihorde.TextualInversion{{
				Name:     "emb",
				InjectTI: aihorde.Ptr(aihorde.InjectTINegPrompt),
				Strength: swag.Float64(0.5),
			}},
		},
	})

	// Assert
	require.NoError(t, err)
}

// TestSubmit_UnknownEnumFails verifies the catch-all cannot be sent.
func TestSubmit_UnknownEnumFails(t *testing.T) {
	// Arrange
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	})

	// Act
	_, err := client.Submit(context.Background(), &aihorde.GenerationRequest{
		Prompt: "a cat",
		Params: &aihorde.GenerationParams{Sampler: aihorde.Ptr(aihorde.SamplerUnknown)},
	})

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, aihorde.ErrInvalidRequest)
	var enumErr *aihorde.UnknownEnumError
	require.ErrorAs(t, err, &enumErr)
	assert.Equal(t, "Sampler", enumErr.Kind)
	assert.Zero(t, calls.Load())
}

// TestSubmit_DryRun verifies a dry run sends dry_run and returns only the
// kudos estimate.
func TestSubmit_DryRun(t *testing.T) {
	// Arrange
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		mustDecode(r, &body)
		assert.Equal(t, true, body["dry_run"])

		mustEncode(w, map[string]any{"kudos": 12.5})
	})

	// Act
	handle, err := client.Submit(context.Background(), &aihorde.GenerationRequest{
		Prompt: "a cat",
		DryRun: swag.Bool(true),
	})

	// Assert
	require.NoError(t, err)
	assert.Empty(t, handle.ID)
	assert.Equal(t, 12.5, handle.Kudos)
}

// TestSubmit_Warnings tests Submit when the horde attaches warnings.
//
// It verifies that:
//   - Known and unknown warning codes both decode
//   - Warnings are logged with the request id
func TestSubmit_Warnings(t *testing.T) {
	// Arrange
	var logged []string
	logger := funcr.New(func(prefix, args string) {
		logged = append(logged, args)
	}, funcr.Options{})

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		mustEncode(w, map[string]any{
			"id":    "req-3",
			"kudos": 5,
			"warnings": []map[string]any{
				{"code": "NoAvailableWorker", "message": "no worker right now"},
				{"code": "SomethingNew", "message": "future warning"},
			},
		})
	}, aihorde.WithLogger(logger))

	// Act
	handle, err := client.Submit(context.Background(), &aihorde.GenerationRequest{Prompt: "a cat"})

	// Assert
	require.NoError(t, err)
	require.Len(t, handle.Warnings, 2)
	assert.Equal(t, aihorde.WarningCodeNoAvailableWorker, handle.Warnings[0].Code)
	assert.Equal(t, aihorde.WarningCodeUnknown, handle.Warnings[1].Code)

	joined := strings.Join(logged, "\n")
	assert.Contains(t, joined, "NoAvailableWorker")
	assert.Contains(t, joined, "req-3")
}

// TestSubmit_NilRequest verifies a nil request fails locally.
func TestSubmit_NilRequest(t *testing.T) {
	// Arrange
	client := aihorde.NewClient()

	// Act
	_, err := client.Submit(context.Background(), nil)

	// Assert
	assert.ErrorIs(t, err, aihorde.ErrInvalidRequest)
}

// TestSubmit_RequestValidation verifies that local validation runs only when
// enabled.
func TestSubmit_RequestValidation(t *testing.T) {
	req := &aihorde.GenerationRequest{
		Prompt: "a cat",
		Params: &aihorde.GenerationParams{Width: swag.Int64(500)},
	}

	t.Run("enabled", func(t *testing.T) {
		var calls atomic.Int32
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
		}, aihorde.WithRequestValidation(true))

		_, err := client.Submit(context.Background(), req)

		require.Error(t, err)
		assert.ErrorIs(t, err, aihorde.ErrInvalidRequest)
		assert.Contains(t, err.Error(), "params.width")
		assert.Zero(t, calls.Load())
	})

	t.Run("disabled", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			mustEncode(w, map[string]any{"id": "req-4"})
		})

		handle, err := client.Submit(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, "req-4", handle.ID)
	})
}

// TestCheckStatus_Success tests CheckStatus with a request still in progress.
func TestCheckStatus_Success(t *testing.T) {
	// Arrange
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/generate/check/req-1", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)
		mustEncode(w, map[string]any{
			"finished": 1, "processing": 1, "restarted": 0, "waiting": 2,
			"done": false, "faulted": false, "wait_time": 30,
			"queue_position": 4, "kudos": 8.5, "is_possible": true,
		})
	})

	// Act
	status, err := client.CheckStatus(context.Background(), "req-1")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 1, status.Finished)
	assert.Equal(t, 2, status.Waiting)
	assert.Equal(t, 4, status.QueuePosition)
	assert.True(t, status.IsPossible)
	assert.False(t, status.Finalized())
}

// TestFullStatus_Success tests FullStatus with a finished request.
//
// It verifies that:
//   - Inline and URL generations are told apart
//   - Unknown metadata types and values decode to the catch-all
//   - Inline images decode to bytes
func TestFullStatus_Success(t *testing.T) {
	// Arrange
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/generate/status/req-1", r.URL.Path)
		mustEncode(w, map[string]any{
			"finished": 2, "done": true, "kudos": 20, "is_possible": true,
			"generations": []map[string]any{
				{
					"worker_id": "w1", "worker_name": "worker one", "model": "sdxl",
					"state": "ok", "img": "aGVsbG8=", "seed": "123", "id": "g1",
					"censored": false,
					"gen_metadata": []map[string]any{
						{"type": "lora", "value": "download_failed", "ref": "12345"},
						{"type": "brand_new", "value": "also_new"},
					},
				},
				{"id": "g2", "img": "https://r2.example/g2.webp", "state": "censored", "censored": true},
			},
			"shared": true,
		})
	})

	// Act
	status, err := client.FullStatus(context.Background(), "req-1")

	// Assert
	require.NoError(t, err)
	assert.True(t, status.Finalized())
	assert.True(t, status.Shared)
	require.Len(t, status.Generations, 2)

	g1 := status.Generations[0]
	assert.Equal(t, aihorde.GenerationStateOK, g1.State)
	require.Len(t, g1.Metadata, 2)
	assert.Equal(t, aihorde.MetadataTypeLora, g1.Metadata[0].Type)
	assert.Equal(t, aihorde.MetadataValueDownloadFailed, g1.Metadata[0].Value)
	assert.Equal(t, "12345", g1.Metadata[0].Ref)
	assert.Equal(t, aihorde.MetadataTypeUnknown, g1.Metadata[1].Type)
	assert.Equal(t, aihorde.MetadataValueUnknown, g1.Metadata[1].Value)

	img, err := g1.ImageBytes()
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), img)

	g2 := status.Generations[1]
	assert.True(t, g2.IsURL())
	assert.True(t, g2.Censored)
	_, err = g2.ImageBytes()
	assert.Error(t, err)
}

// TestCancel_Success verifies Cancel sends DELETE to the status endpoint and
// returns the partial result.
func TestCancel_Success(t *testing.T) {
	// Arrange
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/v2/generate/status/req-1", r.URL.Path)
		mustEncode(w, map[string]any{"finished": 1, "done": false, "faulted": false, "kudos": 4})
	})

	// Act
	status, err := client.Cancel(context.Background(), "req-1")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 1, status.Finished)
	assert.Equal(t, 4.0, status.Kudos)
}

// TestRequestID_Escaped verifies ids cannot escape their path segment.
func TestRequestID_Escaped(t *testing.T) {
	// Arrange
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/generate/check/a%2Fb", r.URL.EscapedPath())
		mustEncode(w, map[string]any{"done": true})
	})

	// Act
	_, err := client.CheckStatus(context.Background(), "a/b")

	// Assert
	require.NoError(t, err)
}

// TestRequestID_Empty verifies each request id operation rejects a blank id.
func TestRequestID_Empty(t *testing.T) {
	// Arrange
	client := aihorde.NewClient()
	ctx := context.Background()

	// Act
	_, checkErr := client.CheckStatus(ctx, "")
	_, statusErr := client.FullStatus(ctx, " ")
	_, cancelErr := client.Cancel(ctx, "")

	// Assert
	assert.ErrorIs(t, checkErr, aihorde.ErrInvalidRequest)
	assert.ErrorIs(t, statusErr, aihorde.ErrInvalidRequest)
	assert.ErrorIs(t, cancelErr, aihorde.ErrInvalidRequest)
}

// TestListActiveModels tests ListActiveModels with and without filters.
//
// It verifies that:
//   - Only set filters appear in the query
//   - Unknown model types decode to the catch-all
func TestListActiveModels(t *testing.T) {
	tests := []struct {
		name      string
		filter    aihorde.ModelFilter
		wantQuery string
	}{
		{"no filter", aihorde.ModelFilter{}, ""},
		{
			name: "all filters",
			filter: aihorde.ModelFilter{
				Type:     aihorde.Ptr(aihorde.ModelTypeImage),
				MinCount: swag.Int64(2),
				MaxCount: swag.Int64(50),
				State:    aihorde.Ptr(aihorde.ModelStateKnown),
			},
			wantQuery: "max_count=50&min_count=2&model_type=image&state=known",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/v2/status/models", r.URL.Path)
				assert.Equal(t, tt.wantQuery, r.URL.RawQuery)
				mustEncode(w, []map[string]any{
					{"name": "sdxl", "count": 12, "performance": 1.5, "queued": 100, "jobs": 3, "eta": 20, "type": "image"},
					{"name": "odd", "count": 1, "type": "video"},
				})
			})

			models, err := client.ListActiveModels(context.Background(), tt.filter)

			require.NoError(t, err)
			require.Len(t, models, 2)
			assert.Equal(t, "sdxl", models[0].Name)
			assert.Equal(t, 12, models[0].Count)
			assert.Equal(t, int64(20), models[0].ETA)
			assert.Equal(t, aihorde.ModelTypeImage, models[0].Type)
			assert.Equal(t, aihorde.ModelTypeUnknown, models[1].Type)
		})
	}
}

// TestListActiveModels_UnknownFilter verifies a catch-all filter value is
// rejected before sending.
func TestListActiveModels_UnknownFilter(t *testing.T) {
	// Arrange
	client := aihorde.NewClient()

	// Act
	_, err := client.ListActiveModels(context.Background(), aihorde.ModelFilter{
		State: aihorde.Ptr(aihorde.ModelStateUnknown),
	})

	// Assert
	assert.ErrorIs(t, err, aihorde.ErrInvalidRequest)
}

// TestHeartbeat_Success tests Heartbeat against a compatible horde version.
func TestHeartbeat_Success(t *testing.T) {
	// Arrange
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/status/heartbeat", r.URL.Path)
		mustEncode(w, map[string]any{"message": "OK", "version": "4.44.2"})
	})

	// Act
	hb, err := client.Heartbeat(context.Background())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "OK", hb.Message)
	assert.True(t, hb.Compatibility().IsCompatible())
}

// TestClient_ConcurrentUse exercises one client from many goroutines.
func TestClient_ConcurrentUse(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		mustEncode(w, map[string]any{"done": true})
	}, aihorde.WithLogger(logr.Discard()))

	errs := make(chan error, 20)
	for i := 0; i < 20; i++ {
		go func() {
			_, err := client.CheckStatus(context.Background(), "req")
			errs <- err
		}()
	}
	for i := 0; i < 20; i++ {
		assert.NoError(t, <-errs)
	}
	assert.Equal(t, int32(20), calls.Load())
}
