package aihorde

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// StatusSnapshot is the cheap progress view returned by [Client.CheckStatus].
//
// Counts may be partial until Done is true.
type StatusSnapshot struct {
	Finished   int `json:"finished"`
	Processing int `json:"processing"`

	// Restarted counts jobs that timed out or were reported failed by a
	// worker and went back to the queue.
	Restarted int `json:"restarted"`
	Waiting   int `json:"waiting"`

	Done bool `json:"done"`

	// Faulted means the request hit an internal server error and will not
	// complete.
	Faulted bool `json:"faulted"`

	// WaitTime is the expected wait in seconds.
	WaitTime int `json:"wait_time"`

	QueuePosition int `json:"queue_position"`

	// Kudos consumed so far.
	Kudos float64 `json:"kudos"`

	// IsPossible is false when no current worker can serve the request.
	IsPossible bool `json:"is_possible"`
}

// Finalized reports whether polling can stop.
func (s *StatusSnapshot) Finalized() bool {
	return s.Done || s.Faulted
}

// RequestStatus is the full view returned by [Client.FullStatus], including
// finished generations. Generations are only stable once Done is true.
type RequestStatus struct {
	StatusSnapshot

	Generations []Generation `json:"generations,omitempty"`

	// Shared is true when the images were shared with LAION.
	Shared bool `json:"shared,omitempty"`
}

// Generation is one finished image.
type Generation struct {
	WorkerID   string `json:"worker_id,omitempty"`
	WorkerName string `json:"worker_name,omitempty"`
	Model      string `json:"model,omitempty"`

	// State is obsolete upstream; use Metadata.
	State GenerationState `json:"state,omitempty"`

	// Img is a base64 webp, or a download URL when the request set R2.
	Img string `json:"img,omitempty"`

	Seed string `json:"seed,omitempty"`
	ID   string `json:"id,omitempty"`

	// Censored is true when the worker's safety filter replaced the image.
	Censored bool `json:"censored,omitempty"`

	Metadata []GenerationMetadata `json:"gen_metadata,omitempty"`
}

// IsURL reports whether Img is a download link rather than inline data.
func (g *Generation) IsURL() bool {
	return strings.HasPrefix(g.Img, "https://") || strings.HasPrefix(g.Img, "http://")
}

// ImageBytes decodes an inline base64 image. It fails for R2 download links.
func (g *Generation) ImageBytes() ([]byte, error) {
	if g.IsURL() {
		return nil, fmt.Errorf("aihorde: generation %s is a download link", g.ID)
	}
	if g.Img == "" {
		return nil, fmt.Errorf("aihorde: generation %s has no image", g.ID)
	}
	return base64.StdEncoding.DecodeString(g.Img)
}

// GenerationMetadata records something notable about a generation, such as
// a LoRA that failed to download.
type GenerationMetadata struct {
	Type  MetadataType  `json:"type,omitempty"`
	Value MetadataValue `json:"value,omitempty"`

	// Ref optionally points at the subject, e.g. a LoRA id.
	Ref string `json:"ref,omitempty"`
}

// ActiveModel is one entry of [Client.ListActiveModels].
type ActiveModel struct {
	Name string `json:"name"`

	// Count is how many workers serve the model.
	Count int `json:"count"`

	// Performance is the average generation speed.
	Performance float64 `json:"performance"`

	// Queued is the amount of work waiting, in megapixelsteps or tokens.
	Queued float64 `json:"queued"`

	// Jobs is the number of waiting jobs.
	Jobs float64 `json:"jobs"`

	// ETA is the estimated seconds until the queue clears.
	ETA int64 `json:"eta"`

	Type ModelType `json:"type,omitempty"`
}

// ModelFilter narrows [Client.ListActiveModels]. Nil fields do not
// constrain the result.
type ModelFilter struct {
	Type     *ModelType
	MinCount *int64
	MaxCount *int64
	State    *ModelState
}

// ValidationError is the error envelope the horde uses for rejected
// requests.
type ValidationError struct {
	Message string            `json:"message,omitempty"`
	RC      ErrorCode         `json:"rc"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// Heartbeat is returned by [Client.Heartbeat].
type Heartbeat struct {
	Message string `json:"message"`

	// Version is the horde server version.
	Version string `json:"version"`
}

// Compatibility checks the server version against this SDK.
func (h *Heartbeat) Compatibility() CompatibilityResult {
	return CheckCompatibility(h.Version)
}
