package aihorde

import (
	"strconv"

	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/validate"
)

// Limits the horde documents for image requests.
const (
	MaxWorkers    = 5
	MaxLoras      = 5
	MaxTIs        = 20
	MaxImages     = 20
	MaxSteps      = 500
	MaxDimension  = 3072
	DimensionStep = 64
)

// Validate checks the request against the limits the horde documents. It
// is not called by [Client.Submit] unless [WithRequestValidation] is set.
// The returned error is a *errors.CompositeError listing every violation.
func (m *GenerationRequest) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.RequiredString("prompt", "body", m.Prompt); err != nil {
		res = append(res, err)
	}
	if err := validate.MaxItems("workers", "body", int64(len(m.Workers)), MaxWorkers); err != nil {
		res = append(res, err)
	}
	if m.SourceProcessing != nil && !m.SourceProcessing.IsKnown() {
		res = append(res, errors.InvalidType("source_processing", "body", "SourceProcessing", m.SourceProcessing.String()))
	}
	if m.SourceMask != nil && m.SourceImage == nil {
		res = append(res, errors.Required("source_image", "body", nil))
	}
	if m.Webhook != nil {
		if err := validate.FormatOf("webhook", "body", "uri", *m.Webhook, formats); err != nil {
			res = append(res, err)
		}
	}
	for i, img := range m.ExtraSourceImages {
		if err := validate.RequiredString("extra_source_images."+strconv.Itoa(i)+".image", "body", img.Image); err != nil {
			res = append(res, err)
		}
	}

	if m.Params != nil {
		if err := m.Params.Validate(formats); err != nil {
			if ce, ok := err.(*errors.CompositeError); ok {
				res = append(res, ce.Errors...)
			} else {
				res = append(res, err)
			}
		}
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// Validate checks the generation parameters.
func (m *GenerationParams) Validate(formats strfmt.Registry) error {
	var res []error

	add := func(err *errors.Validation) {
		if err != nil {
			res = append(res, err)
		}
	}

	if m.Height != nil {
		add(validate.MinimumInt("params.height", "body", *m.Height, DimensionStep, false))
		add(validate.MaximumInt("params.height", "body", *m.Height, MaxDimension, false))
		add(validate.MultipleOfInt("params.height", "body", *m.Height, DimensionStep))
	}
	if m.Width != nil {
		add(validate.MinimumInt("params.width", "body", *m.Width, DimensionStep, false))
		add(validate.MaximumInt("params.width", "body", *m.Width, MaxDimension, false))
		add(validate.MultipleOfInt("params.width", "body", *m.Width, DimensionStep))
	}
	if m.Steps != nil {
		add(validate.MinimumInt("params.steps", "body", *m.Steps, 1, false))
		add(validate.MaximumInt("params.steps", "body", *m.Steps, MaxSteps, false))
	}
	if m.N != nil {
		add(validate.MinimumInt("params.n", "body", *m.N, 1, false))
		add(validate.MaximumInt("params.n", "body", *m.N, MaxImages, false))
	}
	if m.ClipSkip != nil {
		add(validate.MinimumInt("params.clip_skip", "body", *m.ClipSkip, 1, false))
		add(validate.MaximumInt("params.clip_skip", "body", *m.ClipSkip, 12, false))
	}
	if m.SeedVariation != nil {
		add(validate.MinimumInt("params.seed_variation", "body", *m.SeedVariation, 1, false))
		add(validate.MaximumInt("params.seed_variation", "body", *m.SeedVariation, 1000, false))
	}
	if m.CFGScale != nil {
		add(validate.Minimum("params.cfg_scale", "body", *m.CFGScale, 0, false))
		add(validate.Maximum("params.cfg_scale", "body", *m.CFGScale, 100, false))
	}
	if m.DenoisingStrength != nil {
		add(validate.Minimum("params.denoising_strength", "body", *m.DenoisingStrength, 0.01, false))
		add(validate.Maximum("params.denoising_strength", "body", *m.DenoisingStrength, 1, false))
	}
	if m.FacefixerStrength != nil {
		add(validate.Minimum("params.facefixer_strength", "body", *m.FacefixerStrength, 0, false))
		add(validate.Maximum("params.facefixer_strength", "body", *m.FacefixerStrength, 1, false))
	}
	add(validate.MaxItems("params.loras", "body", int64(len(m.Loras)), MaxLoras))
	add(validate.MaxItems("params.tis", "body", int64(len(m.TIs)), MaxTIs))

	for i, l := range m.Loras {
		add(validate.RequiredString("params.loras."+strconv.Itoa(i)+".name", "body", l.Name))
		if l.Model != nil {
			add(validate.Minimum("params.loras."+strconv.Itoa(i)+".model", "body", *l.Model, -5, false))
			add(validate.Maximum("params.loras."+strconv.Itoa(i)+".model", "body", *l.Model, 5, false))
		}
	}
	for i, ti := range m.TIs {
		add(validate.RequiredString("params.tis."+strconv.Itoa(i)+".name", "body", ti.Name))
		if ti.Strength != nil && ti.InjectTI == nil {
			res = append(res, errors.Required("params.tis."+strconv.Itoa(i)+".inject_ti", "body", nil))
		}
	}

	if m.Sampler != nil && !m.Sampler.IsKnown() {
		res = append(res, errors.InvalidType("params.sampler_name", "body", "Sampler", m.Sampler.String()))
	}
	for i, pp := range m.PostProcessing {
		if !pp.IsKnown() {
			res = append(res, errors.InvalidType("params.post_processing."+strconv.Itoa(i), "body", "PostProcessor", pp.String()))
		}
	}
	if m.HiresFixDenoisingStrength != nil {
		add(validate.Minimum("params.hires_fix_denoising_strength", "body", *m.HiresFixDenoisingStrength, 0.01, false))
		add(validate.Maximum("params.hires_fix_denoising_strength", "body", *m.HiresFixDenoisingStrength, 1, false))
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}
