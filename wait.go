package aihorde

import (
	"context"
	"time"
)

// DefaultPollInterval is used by [WaitForCompletion] when no interval is
// given. The check endpoint is cheap but still shared by every client.
const DefaultPollInterval = 5 * time.Second

// StatusPoller is the subset of [Client] used by [WaitForCompletion].
type StatusPoller interface {
	CheckStatus(ctx context.Context, id string) (*StatusSnapshot, error)
	FullStatus(ctx context.Context, id string) (*RequestStatus, error)
}

// WaitOptions tunes [WaitForCompletion].
type WaitOptions struct {
	// Interval between CheckStatus calls. Zero means DefaultPollInterval.
	Interval time.Duration

	// OnCheck, if set, is called with every snapshot.
	OnCheck func(*StatusSnapshot)
}

// WaitForCompletion polls CheckStatus until the request is done or faulted,
// then fetches the full status once.
//
// It is a convenience on top of the single-shot operations and does not
// retry: the first error ends the wait. Bound it with a context deadline:
//
//	ctx, cancel := context.WithTimeout(ctx, 10*time.Minute)
//	defer cancel()
//	status, err := aihorde.WaitForCompletion(ctx, client, handle.ID, aihorde.WaitOptions{})
func WaitForCompletion(ctx context.Context, p StatusPoller, id string, opts WaitOptions) (*RequestStatus, error) {
	interval := opts.Interval
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		snapshot, err := p.CheckStatus(ctx, id)
		if err != nil {
			return nil, err
		}
		if opts.OnCheck != nil {
			opts.OnCheck(snapshot)
		}
		if snapshot.Finalized() {
			return p.FullStatus(ctx, id)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}
