package aihorde

// GenerationRequest is the payload of [Client.Submit].
//
// Only Prompt is required. Every other field is optional; leave it nil (or
// empty for slices) to let the horde apply its default. Absent fields are
// left out of the JSON body entirely.
//
//	req := &aihorde.GenerationRequest{
//	    Prompt: "a lighthouse at dusk",
//	    NSFW:   swag.Bool(false),
//	    Params: &aihorde.GenerationParams{
//	        Sampler: aihorde.Ptr(aihorde.SamplerKEulerA),
//	        Steps:   swag.Int64(30),
//	    },
//	}
type GenerationRequest struct {
	// Prompt is sent to the model. Negative prompts follow a "###" separator.
	Prompt string `json:"prompt"`

	Params *GenerationParams `json:"params,omitempty"`

	// NSFW marks the request as NSFW, which skips censoring workers.
	NSFW *bool `json:"nsfw,omitempty"`

	// TrustedWorkers restricts the request to trusted workers.
	TrustedWorkers *bool `json:"trusted_workers,omitempty"`

	// ValidatedBackends restricts the request to backends validated by the
	// horde developers.
	ValidatedBackends *bool `json:"validated_backends,omitempty"`

	// SlowWorkers allows slower workers. Disabling it costs extra kudos.
	SlowWorkers *bool `json:"slow_workers,omitempty"`

	// ExtraSlowWorkers allows very slow workers.
	ExtraSlowWorkers *bool `json:"extra_slow_workers,omitempty"`

	// CensorNSFW asks workers to censor accidental NSFW output of a SFW
	// request.
	CensorNSFW *bool `json:"censor_nsfw,omitempty"`

	// Workers lists up to 5 worker ids allowed to serve the request.
	Workers []string `json:"workers,omitempty"`

	// WorkerBlacklist turns Workers into a blacklist.
	WorkerBlacklist *bool `json:"worker_blacklist,omitempty"`

	// Models restricts which models may be used.
	Models []string `json:"models,omitempty"`

	// SourceImage is a base64 webp (or URL) for img2img.
	SourceImage *string `json:"source_image,omitempty"`

	SourceProcessing *SourceProcessing `json:"source_processing,omitempty"`

	// SourceMask is the base64 webp inpainting mask. Without it the mask
	// must be embedded in the source image alpha channel.
	SourceMask *string `json:"source_mask,omitempty"`

	ExtraSourceImages []ExtraSourceImage `json:"extra_source_images,omitempty"`

	// R2 requests download URLs instead of inline base64 images.
	R2 *bool `json:"r2,omitempty"`

	// Shared shares the images with LAION for a kudos discount.
	Shared *bool `json:"shared,omitempty"`

	// ReplacementFilter sanitizes suspicious prompts instead of rejecting them.
	ReplacementFilter *bool `json:"replacement_filter,omitempty"`

	// DryRun only returns the kudos cost.
	DryRun *bool `json:"dry_run,omitempty"`

	// ProxiedAccount identifies the end user when a service account proxies
	// the request.
	ProxiedAccount *string `json:"proxied_account,omitempty"`

	// DisableBatching gives accurate seeds. Trusted users and patrons only.
	DisableBatching *bool `json:"disable_batching,omitempty"`

	// AllowDowngrade lets the horde lower steps and resolution instead of
	// demanding upfront kudos.
	AllowDowngrade *bool `json:"allow_downgrade,omitempty"`

	// Webhook receives a POST after each delivered generation.
	Webhook *string `json:"webhook,omitempty"`

	// Style is a horde style id or name.
	Style *string `json:"style,omitempty"`
}

// GenerationParams are the model parameters of a [GenerationRequest].
type GenerationParams struct {
	Sampler *Sampler `json:"sampler_name,omitempty"`

	CFGScale                  *float64 `json:"cfg_scale,omitempty"`
	DenoisingStrength         *float64 `json:"denoising_strength,omitempty"`
	HiresFixDenoisingStrength *float64 `json:"hires_fix_denoising_strength,omitempty"`

	// Height and Width must be multiples of 64.
	Height *int64 `json:"height,omitempty"`
	Width  *int64 `json:"width,omitempty"`

	// PostProcessing is applied in order.
	PostProcessing []PostProcessor `json:"post_processing,omitempty"`

	Karras   *bool `json:"karras,omitempty"`
	Tiling   *bool `json:"tiling,omitempty"`
	HiresFix *bool `json:"hires_fix,omitempty"`

	// ClipSkip is the number of CLIP layers to skip.
	ClipSkip *int64 `json:"clip_skip,omitempty"`

	FacefixerStrength *float64 `json:"facefixer_strength,omitempty"`

	Loras []Lora             `json:"loras,omitempty"`
	TIs   []TextualInversion `json:"tis,omitempty"`

	// Special carries model-specific payloads keyed by model name.
	Special map[string]map[string]any `json:"special,omitempty"`

	Workflow *Workflow `json:"workflow,omitempty"`

	// Transparent uses Layer Diffuse for a transparent background.
	Transparent *bool `json:"transparent,omitempty"`

	// Seed may be any text; the horde hashes non-numeric seeds.
	Seed *string `json:"seed,omitempty"`

	// SeedVariation increments the seed for each image when N > 1.
	SeedVariation *int64 `json:"seed_variation,omitempty"`

	ControlType *ControlType `json:"control_type,omitempty"`

	// ImageIsControl marks the source image as a ready control map.
	ImageIsControl *bool `json:"image_is_control,omitempty"`

	// ReturnControlMap returns the ControlNet map instead of an image.
	ReturnControlMap *bool `json:"return_control_map,omitempty"`

	ExtraTexts []ExtraText `json:"extra_texts,omitempty"`

	Steps *int64 `json:"steps,omitempty"`

	// N is the number of images to generate.
	N *int64 `json:"n,omitempty"`
}

// Lora references a LoRA adapter.
type Lora struct {
	// Name is the exact name or CivitAI model id, or a version id when
	// IsVersion is set.
	Name string `json:"name"`

	// Model is the strength applied to the diffusion model.
	Model *float64 `json:"model,omitempty"`

	// Clip is the strength applied to the CLIP model.
	Clip *float64 `json:"clip,omitempty"`

	// InjectTrigger picks a trigger word close to this text, or the first
	// one for "any", and adds it to the prompt.
	InjectTrigger *string `json:"inject_trigger,omitempty"`

	IsVersion *bool `json:"is_version,omitempty"`
}

// TextualInversion references a textual-inversion embedding.
type TextualInversion struct {
	Name string `json:"name"`

	// InjectTI adds the embedding to the prompt or negative prompt. When nil
	// the caller must reference it in the prompt manually.
	InjectTI *InjectTI `json:"inject_ti,omitempty"`

	// Strength is only used together with InjectTI.
	Strength *float64 `json:"strength,omitempty"`
}

type ExtraText struct {
	Text      string `json:"text"`
	Reference string `json:"reference"`
}

type ExtraSourceImage struct {
	// Image is a base64 webp or URL.
	Image    string   `json:"image"`
	Strength *float64 `json:"strength,omitempty"`
}

// RequestHandle is returned by [Client.Submit]. ID is empty for dry runs.
type RequestHandle struct {
	ID string `json:"id,omitempty"`

	// Kudos is the expected cost.
	Kudos float64 `json:"kudos,omitempty"`

	Message  string           `json:"message,omitempty"`
	Warnings []RequestWarning `json:"warnings,omitempty"`
}

// RequestWarning is a non-fatal remark about an accepted request.
type RequestWarning struct {
	Code    WarningCode `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
}

// Ptr returns a pointer to v. It fills the optional enum fields of
// [GenerationParams]; swag.String and friends cover the primitive ones.
func Ptr[T any](v T) *T {
	return &v
}
