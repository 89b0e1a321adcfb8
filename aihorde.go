// Package aihorde provides a Go SDK for the AI Horde API.
//
// The AI Horde is a crowd-sourced cluster of workers that generate images
// and text for anyone with an API key, paid for in kudos. This SDK wraps
// the v2 REST API with typed requests, typed responses and typed errors.
//
// # Installation
//
//	go get github.com/lapismyt/aihorde-go
//
// # Quick Start
//
//	client := aihorde.NewClient(aihorde.WithAPIKey(os.Getenv("AI_HORDE_API_KEY")))
//
//	handle, err := client.Submit(ctx, &aihorde.GenerationRequest{
//	    Prompt: "A photo of a cat",
//	    Params: &aihorde.GenerationParams{
//	        Width:  swag.Int64(512),
//	        Height: swag.Int64(512),
//	    },
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	status, err := aihorde.WaitForCompletion(ctx, client, handle.ID, aihorde.WaitOptions{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, g := range status.Generations {
//	    fmt.Println(g.ID, g.WorkerName)
//	}
//
// # Client Configuration
//
// [NewClient] never fails. Functional options override the defaults:
//
//	client := aihorde.NewClient(
//	    aihorde.WithAPIKey(key),
//	    aihorde.WithBaseURL("https://stablehorde.net/api/v2"),
//	    aihorde.WithClientAgent("my-app:1.0:https://example.com"),
//	    aihorde.WithHTTPClient(&http.Client{Timeout: time.Minute}),
//	    aihorde.WithLogger(logger),
//	)
//
// # Error Handling
//
// Every method returns an [*Error] whose Kind says what went wrong:
//
//	handle, err := client.Submit(ctx, req)
//	switch {
//	case errors.Is(err, aihorde.ErrAPI):
//	    // the horde rejected the request; see aihorde.ErrorCodeOf(err)
//	case errors.Is(err, aihorde.ErrHTTPStatus):
//	    // non-horde failure, e.g. a proxy 502; the raw body is kept
//	case errors.Is(err, aihorde.ErrTransport):
//	    // network failure or cancelled context
//	}
//
// The SDK never retries. Retry and backoff policy belong to the caller.
//
// # Forward Compatibility
//
// Every enum has an Unknown member that absorbs values added to the API
// after this SDK was released. Decoding never fails on a new enum value;
// encoding the Unknown member does, since its wire value is not known.
//
// # Thread Safety
//
// The [Client] is safe for concurrent use by multiple goroutines.
// Each method call is independent and does not share state.
package aihorde
