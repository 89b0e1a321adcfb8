package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"

	"github.com/lapismyt/aihorde-go"
	"github.com/lapismyt/aihorde-go/internal/history"
)

func runWhoAmI(ctx context.Context, a *app, args []string) error {
	if err := a.setup(a.flags("whoami"), args); err != nil {
		return err
	}
	user, err := a.client.WhoAmI(ctx)
	if err != nil {
		return err
	}
	return a.printJSON(user)
}

func runUser(ctx context.Context, a *app, args []string) error {
	fs := a.flags("user")
	if err := a.setup(fs, args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return usagef("expected exactly one user id")
	}
	user, err := a.client.GetUser(ctx, fs.Arg(0))
	if err != nil {
		return err
	}
	return a.printJSON(user)
}

func runUsers(ctx context.Context, a *app, args []string) error {
	fs := a.flags("users")
	page := fs.Int("page", 1, "page number")
	sort := fs.String("sort", string(aihorde.SortByKudos), "sort order: kudos or age")
	if err := a.setup(fs, args); err != nil {
		return err
	}
	users, err := a.client.ListUsers(ctx, *page, aihorde.UserSort(*sort))
	if err != nil {
		return err
	}
	return a.printJSON(users)
}

func runSubmit(ctx context.Context, a *app, args []string) error {
	fs := a.flags("submit")
	var (
		n        = fs.Int("n", 0, "number of images")
		width    = fs.Int("width", 0, "image width, a multiple of 64")
		height   = fs.Int("height", 0, "image height, a multiple of 64")
		steps    = fs.Int("steps", 0, "sampling steps")
		cfgScale = fs.Float64("cfg", 0, "classifier-free guidance scale")
		sampler  = fs.String("sampler", "", "sampler name, e.g. k_euler_a")
		seed     = fs.String("seed", "", "seed")
		models   = fs.String("models", "", "comma-separated allowed models")
		post     = fs.String("post", "", "comma-separated post-processors")
		nsfw     = fs.Bool("nsfw", false, "allow NSFW output")
		r2       = fs.Bool("r2", true, "return download links instead of inline images")
		dryRun   = fs.Bool("dry-run", false, "only estimate the kudos cost")
		check    = fs.Bool("validate", false, "check documented limits before sending")
		wait     = fs.Bool("wait", false, "wait for completion and print the full status")
		out      = fs.String("out", "", "with -wait, directory to save inline images to")
	)
	if err := a.setup(fs, args); err != nil {
		return err
	}
	prompt := strings.TrimSpace(strings.Join(fs.Args(), " "))
	if prompt == "" {
		return usagef("a prompt is required")
	}

	req := &aihorde.GenerationRequest{Prompt: prompt}
	params := &aihorde.GenerationParams{}
	paramsSet := false
	setInt := func(dst **int64, v int) {
		if v > 0 {
			*dst = swag.Int64(int64(v))
			paramsSet = true
		}
	}
	setInt(&params.N, *n)
	setInt(&params.Width, *width)
	setInt(&params.Height, *height)
	setInt(&params.Steps, *steps)
	if *cfgScale > 0 {
		params.CFGScale = swag.Float64(*cfgScale)
		paramsSet = true
	}
	if *seed != "" {
		params.Seed = swag.String(*seed)
		paramsSet = true
	}
	if *sampler != "" {
		s := aihorde.ParseSampler(*sampler)
		if !s.IsKnown() {
			return usagef("unknown sampler %q", *sampler)
		}
		params.Sampler = &s
		paramsSet = true
	}
	for _, name := range splitList(*post) {
		pp := aihorde.ParsePostProcessor(name)
		if !pp.IsKnown() {
			return usagef("unknown post-processor %q", name)
		}
		params.PostProcessing = append(params.PostProcessing, pp)
		paramsSet = true
	}
	if paramsSet {
		req.Params = params
	}
	req.Models = splitList(*models)
	if *nsfw {
		req.NSFW = swag.Bool(true)
	}
	req.R2 = swag.Bool(*r2)
	if *dryRun {
		req.DryRun = swag.Bool(true)
	}

	if *check {
		// Validate explicitly so flag mistakes show every violation at once.
		if err := req.Validate(strfmt.Default); err != nil {
			return usagef("%v", err)
		}
	}

	handle, err := a.client.Submit(ctx, req)
	if err != nil {
		return err
	}

	if store := a.openHistory(); store != nil && handle.ID != "" {
		if err := store.Record(ctx, history.Entry{ID: handle.ID, Prompt: prompt, Kudos: handle.Kudos}); err != nil {
			a.logger.Error(err, "recording request", "id", handle.ID)
		}
	}

	if !*wait || handle.ID == "" {
		return a.printJSON(handle)
	}
	return a.waitAndPrint(ctx, handle.ID, a.cfg.Interval(), *out)
}

func runCheck(ctx context.Context, a *app, args []string) error {
	fs := a.flags("check")
	if err := a.setup(fs, args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return usagef("expected exactly one request id")
	}
	status, err := a.client.CheckStatus(ctx, fs.Arg(0))
	if err != nil {
		return err
	}
	return a.printJSON(status)
}

func runStatus(ctx context.Context, a *app, args []string) error {
	fs := a.flags("status")
	out := fs.String("out", "", "directory to save inline images to")
	if err := a.setup(fs, args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return usagef("expected exactly one request id")
	}
	status, err := a.client.FullStatus(ctx, fs.Arg(0))
	if err != nil {
		return err
	}
	return a.finish(ctx, fs.Arg(0), status, *out)
}

func runCancel(ctx context.Context, a *app, args []string) error {
	fs := a.flags("cancel")
	if err := a.setup(fs, args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return usagef("expected exactly one request id")
	}
	status, err := a.client.Cancel(ctx, fs.Arg(0))
	if err != nil {
		return err
	}
	return a.finish(ctx, fs.Arg(0), status, "")
}

func runWait(ctx context.Context, a *app, args []string) error {
	fs := a.flags("wait")
	interval := fs.Duration("interval", 0, "poll interval (default from config)")
	timeout := fs.Duration("timeout", 20*time.Minute, "give up after this long")
	out := fs.String("out", "", "directory to save inline images to")
	if err := a.setup(fs, args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return usagef("expected exactly one request id")
	}
	if *interval <= 0 {
		*interval = a.cfg.Interval()
	}
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}
	return a.waitAndPrint(ctx, fs.Arg(0), *interval, *out)
}

func (a *app) waitAndPrint(ctx context.Context, id string, interval time.Duration, out string) error {
	status, err := aihorde.WaitForCompletion(ctx, a.client, id, aihorde.WaitOptions{
		Interval: interval,
		OnCheck: func(s *aihorde.StatusSnapshot) {
			a.logger.Info("waiting", "id", id, "queue", s.QueuePosition, "wait", s.WaitTime,
				"finished", s.Finished, "processing", s.Processing, "possible", s.IsPossible)
		},
	})
	if err != nil {
		return err
	}
	return a.finish(ctx, id, status, out)
}

// finish records the outcome, saves images and prints the status.
func (a *app) finish(ctx context.Context, id string, status *aihorde.RequestStatus, out string) error {
	if status.Finalized() {
		if store := a.openHistory(); store != nil {
			err := store.MarkFinished(ctx, id, status.Kudos, status.Faulted)
			if err != nil && !errors.Is(err, history.ErrNotFound) {
				a.logger.Error(err, "updating history", "id", id)
			}
		}
	}
	if out != "" {
		if err := saveImages(out, status.Generations); err != nil {
			return err
		}
	}
	return a.printJSON(status)
}

func saveImages(dir string, gens []aihorde.Generation) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for i := range gens {
		g := &gens[i]
		if g.IsURL() || g.Img == "" {
			continue
		}
		data, err := g.ImageBytes()
		if err != nil {
			return fmt.Errorf("decoding image %s: %w", g.ID, err)
		}
		name := g.ID
		if name == "" {
			name = fmt.Sprintf("image-%d", i)
		}
		if err := os.WriteFile(filepath.Join(dir, name+".webp"), data, 0o644); err != nil {
			return err
		}
		// Keep the printed status small.
		g.Img = filepath.Join(dir, name+".webp")
	}
	return nil
}

func runModels(ctx context.Context, a *app, args []string) error {
	fs := a.flags("models")
	modelType := fs.String("type", "", "image or text")
	minCount := fs.Int64("min", -1, "minimum worker count")
	maxCount := fs.Int64("max", -1, "maximum worker count")
	state := fs.String("state", "", "known, custom or all")
	if err := a.setup(fs, args); err != nil {
		return err
	}

	var filter aihorde.ModelFilter
	if *modelType != "" {
		t := aihorde.ParseModelType(*modelType)
		if !t.IsKnown() {
			return usagef("unknown model type %q", *modelType)
		}
		filter.Type = &t
	}
	if *state != "" {
		s := aihorde.ParseModelState(*state)
		if !s.IsKnown() {
			return usagef("unknown model state %q", *state)
		}
		filter.State = &s
	}
	if *minCount >= 0 {
		filter.MinCount = minCount
	}
	if *maxCount >= 0 {
		filter.MaxCount = maxCount
	}

	models, err := a.client.ListActiveModels(ctx, filter)
	if err != nil {
		return err
	}
	return a.printJSON(models)
}

func runHeartbeat(ctx context.Context, a *app, args []string) error {
	if err := a.setup(a.flags("heartbeat"), args); err != nil {
		return err
	}
	hb, err := a.client.Heartbeat(ctx)
	if err != nil {
		return err
	}
	compat := hb.Compatibility()
	return a.printJSON(map[string]any{
		"message":    hb.Message,
		"version":    hb.Version,
		"compatible": compat.IsCompatible(),
		"detail":     compat.Message,
	})
}

func runHistory(ctx context.Context, a *app, args []string) error {
	fs := a.flags("history")
	limit := fs.Int("limit", 20, "number of entries, 0 for all")
	if err := a.setup(fs, args); err != nil {
		return err
	}
	store := a.openHistory()
	if store == nil {
		return fmt.Errorf("history is disabled")
	}
	entries, err := store.List(ctx, *limit)
	if err != nil {
		return err
	}

	type row struct {
		ID          string    `json:"id"`
		Prompt      string    `json:"prompt"`
		Kudos       float64   `json:"kudos"`
		SubmittedAt time.Time `json:"submitted_at"`
		Done        bool      `json:"done"`
		Faulted     bool      `json:"faulted,omitempty"`
	}
	rows := make([]row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, row{e.ID, e.Prompt, e.Kudos, e.SubmittedAt, e.Done(), e.Faulted})
	}
	return a.printJSON(rows)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
