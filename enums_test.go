package aihorde

import (
	"encoding"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type wireEnum interface {
	encoding.TextMarshaler
	String() string
	IsKnown() bool
}

// catalog returns every known member of every enum, keyed by kind.
func catalog() map[string][]wireEnum {
	out := map[string][]wireEnum{}
	add := func(kind string, n int, at func(int) wireEnum) {
		for i := 0; i < n; i++ {
			out[kind] = append(out[kind], at(i))
		}
	}
	add("Sampler", len(Samplers()), func(i int) wireEnum { return Samplers()[i] })
	add("PostProcessor", len(PostProcessors()), func(i int) wireEnum { return PostProcessors()[i] })
	add("ControlType", len(ControlTypes()), func(i int) wireEnum { return ControlTypes()[i] })
	add("Workflow", len(Workflows()), func(i int) wireEnum { return Workflows()[i] })
	add("SourceProcessing", len(SourceProcessings()), func(i int) wireEnum { return SourceProcessings()[i] })
	add("ErrorCode", len(ErrorCodes()), func(i int) wireEnum { return ErrorCodes()[i] })
	add("WarningCode", len(WarningCodes()), func(i int) wireEnum { return WarningCodes()[i] })
	add("InjectTI", len(InjectTargets()), func(i int) wireEnum { return InjectTargets()[i] })
	add("GenerationState", len(GenerationStates()), func(i int) wireEnum { return GenerationStates()[i] })
	add("MetadataType", len(MetadataTypes()), func(i int) wireEnum { return MetadataTypes()[i] })
	add("MetadataValue", len(MetadataValues()), func(i int) wireEnum { return MetadataValues()[i] })
	add("ModelType", len(ModelTypes()), func(i int) wireEnum { return ModelTypes()[i] })
	add("StyleType", len(StyleTypes()), func(i int) wireEnum { return StyleTypes()[i] })
	add("ModelState", len(ModelStates()), func(i int) wireEnum { return ModelStates()[i] })
	return out
}

// TestEnums_WireStringsUnique verifies every known member encodes to its
// String form and no two members share a wire value.
func TestEnums_WireStringsUnique(t *testing.T) {
	for kind, members := range catalog() {
		t.Run(kind, func(t *testing.T) {
			require.NotEmpty(t, members)
			seen := map[string]bool{}
			for _, m := range members {
				assert.True(t, m.IsKnown())
				b, err := m.MarshalText()
				require.NoError(t, err)
				assert.Equal(t, m.String(), string(b))
				assert.False(t, seen[string(b)], "duplicate wire value %q", b)
				seen[string(b)] = true
			}
		})
	}
}

// TestEnums_RoundTrip verifies every known member survives encode and
// decode.
func TestEnums_RoundTrip(t *testing.T) {
	for _, s := range Samplers() {
		assert.Equal(t, s, ParseSampler(s.String()))
	}
	for _, c := range ErrorCodes() {
		assert.Equal(t, c, ParseErrorCode(c.String()))
	}
	for _, p := range PostProcessors() {
		var got PostProcessor
		require.NoError(t, got.UnmarshalText([]byte(p.String())))
		assert.Equal(t, p, got)
	}
}

// TestEnums_WireCasing pins values whose casing differs from their
// neighbours.
func TestEnums_WireCasing(t *testing.T) {
	tests := []struct {
		value wireEnum
		wire  string
	}{
		{SamplerDDIM, "DDIM"},
		{SamplerKDPMPP2M, "k_dpmpp_2m"},
		{SamplerKDPMPP2SA, "k_dpmpp_2s_a"},
		{SamplerKDPM2A, "k_dpm_2_a"},
		{PostProcessorAnimeSharp4x, "4x_AnimeSharp"},
		{PostProcessorRealESRGANx4plusAnime6B, "RealESRGAN_x4plus_anime_6B"},
		{PostProcessorStripBackground, "strip_background"},
		{SourceProcessingImg2Img, "img2img"},
		{WorkflowQRCode, "qr_code"},
		{InjectTINegPrompt, "negprompt"},
		{MetadataValueCSAM, "csam"},
		{ErrorCodeMissingPrompt, "MissingPrompt"},
		{WarningCodeNoAvailableWorker, "NoAvailableWorker"},
	}

	for _, tt := range tests {
		t.Run(tt.wire, func(t *testing.T) {
			b, err := tt.value.MarshalText()
			require.NoError(t, err)
			assert.Equal(t, tt.wire, string(b))
		})
	}
}

// TestEnums_UnknownDecodes verifies unrecognized wire values never fail to
// decode and land on the catch-all.
func TestEnums_UnknownDecodes(t *testing.T) {
	// Arrange
	var params struct {
		Sampler Sampler         `json:"sampler_name"`
		Post    []PostProcessor `json:"post_processing"`
		Code    ErrorCode       `json:"rc"`
	}

	// Act
	err := json.Unmarshal([]byte(`{
		"sampler_name": "k_brand_new",
		"post_processing": ["GFPGAN", "FutureUpscaler"],
		"rc": "NotYetInvented"
	}`), &params)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, SamplerUnknown, params.Sampler)
	assert.Equal(t, []PostProcessor{PostProcessorGFPGAN, PostProcessorUnknown}, params.Post)
	assert.Equal(t, ErrorCodeUnknown, params.Code)
	assert.False(t, params.Sampler.IsKnown())
	assert.Equal(t, "unknown", params.Sampler.String())
}

// TestEnums_CaseSensitive verifies wire values are matched exactly.
func TestEnums_CaseSensitive(t *testing.T) {
	assert.Equal(t, SamplerUnknown, ParseSampler("ddim"))
	assert.Equal(t, SamplerUnknown, ParseSampler("K_EULER_A"))
	assert.Equal(t, ModelTypeUnknown, ParseModelType("Image"))
}

// TestEnums_CatchAllDoesNotEncode verifies the catch-all and out-of-range
// values are rejected instead of sent.
func TestEnums_CatchAllDoesNotEncode(t *testing.T) {
	for _, v := range []wireEnum{SamplerUnknown, ControlTypeUnknown, ErrorCodeUnknown, Sampler(200)} {
		_, err := v.MarshalText()
		var enumErr *UnknownEnumError
		require.ErrorAs(t, err, &enumErr)
	}

	_, err := json.Marshal(GenerationParams{Sampler: Ptr(SamplerUnknown)})
	var enumErr *UnknownEnumError
	require.ErrorAs(t, err, &enumErr)
	assert.Equal(t, "Sampler", enumErr.Kind)
	assert.Contains(t, enumErr.Error(), "Sampler")
}

// TestEnums_Defaults pins the horde's default sampler and post processors.
func TestEnums_Defaults(t *testing.T) {
	assert.Equal(t, "k_euler_a", DefaultSampler.String())
	assert.Equal(t, "CodeFormers", DefaultPostProcessor.String())
	assert.Equal(t, "img2img", DefaultSourceProcessing.String())
	assert.Equal(t, "image", DefaultModelType.String())
	assert.Equal(t, "known", DefaultModelState.String())
}

// TestEnumSet_Values tests the enum table directly.
func TestEnumSet_Values(t *testing.T) {
	set := newEnumSet[uint8]("Test", "a", "b", "c")

	assert.Equal(t, []uint8{1, 2, 3}, set.values())
	assert.Equal(t, uint8(2), set.parse("b"))
	assert.Equal(t, uint8(0), set.parse("z"))
	assert.Equal(t, "unknown", set.name(0))
	assert.Equal(t, "unknown", set.name(9))
	assert.False(t, set.known(4))
}
