// Enum catalog. Wire strings must match the horde's casing for each enum
// exactly; scripts/enumcheck.go reports drift against the live API.

package aihorde

// Sampler is a sampling method understood by image workers. Wire values are
// mostly snake_case, with DDIM as the upper-case exception.
//
// The zero value, SamplerUnknown, is the catch-all for values this
// version does not recognise.
type Sampler uint8

const (
	SamplerUnknown Sampler = iota
	SamplerKDPMAdaptive
	SamplerKEulerA
	SamplerKDPMPP2M
	SamplerDDIM
	SamplerKDPM2
	SamplerKEuler
	SamplerKDPMPP2SA
	SamplerKLMS
	SamplerKDPMPPSDE
	SamplerKDPM2A
	SamplerKDPMFast
	SamplerKHeun
	SamplerLCM
	SamplerDPMSolver
)

// DefaultSampler is the value the horde assumes when the field is omitted.
const DefaultSampler = SamplerKEulerA

var samplers = newEnumSet[Sampler]("Sampler",
	"k_dpm_adaptive", "k_euler_a", "k_dpmpp_2m", "DDIM", "k_dpm_2", "k_euler",
	"k_dpmpp_2s_a", "k_lms", "k_dpmpp_sde", "k_dpm_2_a", "k_dpm_fast",
	"k_heun", "lcm", "dpmsolver",
)

// ParseSampler maps a wire string to a Sampler. It never fails.
func ParseSampler(v string) Sampler { return samplers.parse(v) }

// Samplers lists every known Sampler in catalog order.
func Samplers() []Sampler { return samplers.values() }

func (s Sampler) String() string { return samplers.name(s) }

// IsKnown reports whether s is a member other than the catch-all.
func (s Sampler) IsKnown() bool { return samplers.known(s) }

// MarshalText implements encoding.TextMarshaler.
func (s Sampler) MarshalText() ([]byte, error) { return samplers.marshal(s) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Sampler) UnmarshalText(b []byte) error {
	*s = samplers.parse(string(b))
	return nil
}

// PostProcessor is a post-processing step applied to a finished image.
//
// The zero value, PostProcessorUnknown, is the catch-all for values this
// version does not recognise.
type PostProcessor uint8

const (
	PostProcessorUnknown PostProcessor = iota
	PostProcessorGFPGAN
	PostProcessorRealESRGANx4plus
	PostProcessorRealESRGANx2plus
	PostProcessorRealESRGANx4plusAnime6B
	PostProcessorNMKDSiax
	PostProcessorAnimeSharp4x
	PostProcessorCodeFormers
	PostProcessorStripBackground
)

// DefaultPostProcessor is the value the horde assumes when the field is omitted.
const DefaultPostProcessor = PostProcessorCodeFormers

var postProcessors = newEnumSet[PostProcessor]("PostProcessor",
	"GFPGAN", "RealESRGAN_x4plus", "RealESRGAN_x2plus",
	"RealESRGAN_x4plus_anime_6B", "NMKD_Siax", "4x_AnimeSharp", "CodeFormers",
	"strip_background",
)

// ParsePostProcessor maps a wire string to a PostProcessor. It never fails.
func ParsePostProcessor(v string) PostProcessor { return postProcessors.parse(v) }

// PostProcessors lists every known PostProcessor in catalog order.
func PostProcessors() []PostProcessor { return postProcessors.values() }

func (p PostProcessor) String() string { return postProcessors.name(p) }

// IsKnown reports whether p is a member other than the catch-all.
func (p PostProcessor) IsKnown() bool { return postProcessors.known(p) }

// MarshalText implements encoding.TextMarshaler.
func (p PostProcessor) MarshalText() ([]byte, error) { return postProcessors.marshal(p) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *PostProcessor) UnmarshalText(b []byte) error {
	*p = postProcessors.parse(string(b))
	return nil
}

// ControlType selects the ControlNet map used for a generation.
//
// The zero value, ControlTypeUnknown, is the catch-all for values this
// version does not recognise.
type ControlType uint8

const (
	ControlTypeUnknown ControlType = iota
	ControlTypeCanny
	ControlTypeHed
	ControlTypeDepth
	ControlTypeNormal
	ControlTypeOpenpose
	ControlTypeSeg
	ControlTypeScribble
	ControlTypeFakescribbles
	ControlTypeHough
)

// DefaultControlType is the value the horde assumes when the field is omitted.
const DefaultControlType = ControlTypeNormal

var controlTypes = newEnumSet[ControlType]("ControlType",
	"canny", "hed", "depth", "normal", "openpose", "seg", "scribble",
	"fakescribbles", "hough",
)

// ParseControlType maps a wire string to a ControlType. It never fails.
func ParseControlType(v string) ControlType { return controlTypes.parse(v) }

// ControlTypes lists every known ControlType in catalog order.
func ControlTypes() []ControlType { return controlTypes.values() }

func (c ControlType) String() string { return controlTypes.name(c) }

// IsKnown reports whether c is a member other than the catch-all.
func (c ControlType) IsKnown() bool { return controlTypes.known(c) }

// MarshalText implements encoding.TextMarshaler.
func (c ControlType) MarshalText() ([]byte, error) { return controlTypes.marshal(c) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *ControlType) UnmarshalText(b []byte) error {
	*c = controlTypes.parse(string(b))
	return nil
}

// Workflow pins a specific horde-engine workflow.
//
// The zero value, WorkflowUnknown, is the catch-all for values this
// version does not recognise.
type Workflow uint8

const (
	WorkflowUnknown Workflow = iota
	WorkflowQRCode
)

// DefaultWorkflow is the value the horde assumes when the field is omitted.
const DefaultWorkflow = WorkflowQRCode

var workflows = newEnumSet[Workflow]("Workflow",
	"qr_code",
)

// ParseWorkflow maps a wire string to a Workflow. It never fails.
func ParseWorkflow(v string) Workflow { return workflows.parse(v) }

// Workflows lists every known Workflow in catalog order.
func Workflows() []Workflow { return workflows.values() }

func (w Workflow) String() string { return workflows.name(w) }

// IsKnown reports whether w is a member other than the catch-all.
func (w Workflow) IsKnown() bool { return workflows.known(w) }

// MarshalText implements encoding.TextMarshaler.
func (w Workflow) MarshalText() ([]byte, error) { return workflows.marshal(w) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (w *Workflow) UnmarshalText(b []byte) error {
	*w = workflows.parse(string(b))
	return nil
}

// SourceProcessing says how a source image is used.
//
// The zero value, SourceProcessingUnknown, is the catch-all for values this
// version does not recognise.
type SourceProcessing uint8

const (
	SourceProcessingUnknown SourceProcessing = iota
	SourceProcessingImg2Img
	SourceProcessingInpainting
	SourceProcessingOutpainting
	SourceProcessingRemix
)

// DefaultSourceProcessing is the value the horde assumes when the field is omitted.
const DefaultSourceProcessing = SourceProcessingImg2Img

var sourceProcessings = newEnumSet[SourceProcessing]("SourceProcessing",
	"img2img", "inpainting", "outpainting", "remix",
)

// ParseSourceProcessing maps a wire string to a SourceProcessing. It never fails.
func ParseSourceProcessing(v string) SourceProcessing { return sourceProcessings.parse(v) }

// SourceProcessings lists every known SourceProcessing in catalog order.
func SourceProcessings() []SourceProcessing { return sourceProcessings.values() }

func (s SourceProcessing) String() string { return sourceProcessings.name(s) }

// IsKnown reports whether s is a member other than the catch-all.
func (s SourceProcessing) IsKnown() bool { return sourceProcessings.known(s) }

// MarshalText implements encoding.TextMarshaler.
func (s SourceProcessing) MarshalText() ([]byte, error) { return sourceProcessings.marshal(s) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *SourceProcessing) UnmarshalText(b []byte) error {
	*s = sourceProcessings.parse(string(b))
	return nil
}

// ErrorCode is the rc value of a ValidationError returned by the horde.
//
// The zero value, ErrorCodeUnknown, is the catch-all for values this
// version does not recognise.
type ErrorCode uint16

const (
	ErrorCodeUnknown ErrorCode = iota
	ErrorCodeMissingPrompt
	ErrorCodeCorruptPrompt
	ErrorCodeKudosValidationError
	ErrorCodeNoValidActions
	ErrorCodeInvalidSize
	ErrorCodeInvalidPromptSize
	ErrorCodeTooManySteps
	ErrorCodeProfanity
	ErrorCodeProfaneWorkerName
	ErrorCodeProfaneBridgeAgent
	ErrorCodeProfaneWorkerInfo
	ErrorCodeProfaneUserName
	ErrorCodeProfaneUserContact
	ErrorCodeProfaneAdminComment
	ErrorCodeProfaneTeamName
	ErrorCodeProfaneTeamInfo
	ErrorCodeTooLong
	ErrorCodeTooLongWorkerName
	ErrorCodeTooLongUserName
	ErrorCodeNameAlreadyExists
	ErrorCodeWorkerNameAlreadyExists
	ErrorCodeTeamNameAlreadyExists
	ErrorCodePolymorphicNameConflict
	ErrorCodeImageValidationFailed
	ErrorCodeSourceImageResolutionExceeded
	ErrorCodeSourceImageSizeExceeded
	ErrorCodeSourceImageUrlInvalid
	ErrorCodeSourceImageUnreadable
	ErrorCodeInpaintingMissingMask
	ErrorCodeSourceMaskUnnecessary
	ErrorCodeUnsupportedSampler
	ErrorCodeUnsupportedModel
	ErrorCodeControlNetUnsupported
	ErrorCodeControlNetSourceMissing
	ErrorCodeControlNetInvalidPayload
	ErrorCodeSourceImageRequiredForModel
	ErrorCodeUnexpectedModelName
	ErrorCodeTooManyUpscalers
	ErrorCodeProcGenNotFound
	ErrorCodeInvalidAestheticAttempt
	ErrorCodeAestheticsNotCompleted
	ErrorCodeAestheticsNotPublic
	ErrorCodeAestheticsDuplicate
	ErrorCodeAestheticsMissing
	ErrorCodeAestheticsSolo
	ErrorCodeAestheticsConfused
	ErrorCodeAestheticsAlreadyExist
	ErrorCodeAestheticsServerRejected
	ErrorCodeAestheticsServerError
	ErrorCodeAestheticsServerDown
	ErrorCodeAestheticsServerTimeout
	ErrorCodeInvalidAPIKey
	ErrorCodeWrongCredentials
	ErrorCodeNotAdmin
	ErrorCodeNotModerator
	ErrorCodeNotOwner
	ErrorCodeNotPrivileged
	ErrorCodeAnonForbidden
	ErrorCodeAnonForbiddenWorker
	ErrorCodeAnonForbiddenUserMod
	ErrorCodeNotTrusted
	ErrorCodeUntrustedTeamCreation
	ErrorCodeUntrustedUnsafeIP
	ErrorCodeWorkerMaintenance
	ErrorCodeWorkerFlaggedMaintenance
	ErrorCodeTooManySameIPs
	ErrorCodeWorkerInviteOnly
	ErrorCodeUnsafeIP
	ErrorCodeTimeoutIP
	ErrorCodeTooManyNewIPs
	ErrorCodeKudosUpfront
	ErrorCodeSharedKeyEmpty
	ErrorCodeInvalidJobID
	ErrorCodeRequestNotFound
	ErrorCodeWorkerNotFound
	ErrorCodeTeamNotFound
	ErrorCodeFilterNotFound
	ErrorCodeUserNotFound
	ErrorCodeDuplicateGen
	ErrorCodeAbortedGen
	ErrorCodeRequestExpired
	ErrorCodeTooManyPrompts
	ErrorCodeNoValidWorkers
	ErrorCodeMaintenanceMode
	ErrorCodeTargetAccountFlagged
	ErrorCodeSourceAccountFlagged
	ErrorCodeFaultWhenKudosReceiving
	ErrorCodeFaultWhenKudosSending
	ErrorCodeTooFastKudosTransfers
	ErrorCodeKudosTransferToAnon
	ErrorCodeKudosTransferToSelf
	ErrorCodeKudosTransferNotEnough
	ErrorCodeNegativeKudosTransfer
	ErrorCodeKudosTransferFromAnon
	ErrorCodeInvalidAwardUsername
	ErrorCodeKudosAwardToAnon
	ErrorCodeNotAllowedAwards
	ErrorCodeNoWorkerModSelected
	ErrorCodeNoUserModSelected
	ErrorCodeNoHordeModSelected
	ErrorCodeNoTeamModSelected
	ErrorCodeNoFilterModSelected
	ErrorCodeNoSharedKeyModSelected
	ErrorCodeBadRequest
	ErrorCodeForbidden
	ErrorCodeLocked
	ErrorCodeControlNetInpaintingMismatch
	ErrorCodeHiResFixMismatch
	ErrorCodeTooManyLoras
	ErrorCodeBadLoraVersion
	ErrorCodeTooManyTIs
	ErrorCodeBetaAnonForbidden
	ErrorCodeBetaComparisonFault
	ErrorCodeBadCFGDecimals
	ErrorCodeBadCFGNumber
	ErrorCodeBannedClientAgent
	ErrorCodeSpecialMissingPayload
	ErrorCodeSpecialForbidden
	ErrorCodeSpecialMissingUsername
	ErrorCodeSpecialModelNeedsSpecialUser
	ErrorCodeSpecialFieldNeedsSpecialUser
	ErrorCodeImg2ImgMismatch
	ErrorCodeTilingMismatch
	ErrorCodeControlNetMismatch
	ErrorCodeHiResMismatch
	ErrorCodeEducationCannotSendKudos
	ErrorCodeInvalidPriorityUsername
	ErrorCodeSharedKeyExpired
	ErrorCodeSharedKeyInsufficientKudos
	ErrorCodeOnlyServiceAccountProxy
	ErrorCodeRequiresTrust
)

var errorCodes = newEnumSet[ErrorCode]("ErrorCode",
	"MissingPrompt", "CorruptPrompt", "KudosValidationError",
	"NoValidActions", "InvalidSize", "InvalidPromptSize", "TooManySteps",
	"Profanity", "ProfaneWorkerName", "ProfaneBridgeAgent",
	"ProfaneWorkerInfo", "ProfaneUserName", "ProfaneUserContact",
	"ProfaneAdminComment", "ProfaneTeamName", "ProfaneTeamInfo", "TooLong",
	"TooLongWorkerName", "TooLongUserName", "NameAlreadyExists",
	"WorkerNameAlreadyExists", "TeamNameAlreadyExists",
	"PolymorphicNameConflict", "ImageValidationFailed",
	"SourceImageResolutionExceeded", "SourceImageSizeExceeded",
	"SourceImageUrlInvalid", "SourceImageUnreadable", "InpaintingMissingMask",
	"SourceMaskUnnecessary", "UnsupportedSampler", "UnsupportedModel",
	"ControlNetUnsupported", "ControlNetSourceMissing",
	"ControlNetInvalidPayload", "SourceImageRequiredForModel",
	"UnexpectedModelName", "TooManyUpscalers", "ProcGenNotFound",
	"InvalidAestheticAttempt", "AestheticsNotCompleted",
	"AestheticsNotPublic", "AestheticsDuplicate", "AestheticsMissing",
	"AestheticsSolo", "AestheticsConfused", "AestheticsAlreadyExist",
	"AestheticsServerRejected", "AestheticsServerError",
	"AestheticsServerDown", "AestheticsServerTimeout", "InvalidAPIKey",
	"WrongCredentials", "NotAdmin", "NotModerator", "NotOwner",
	"NotPrivileged", "AnonForbidden", "AnonForbiddenWorker",
	"AnonForbiddenUserMod", "NotTrusted", "UntrustedTeamCreation",
	"UntrustedUnsafeIP", "WorkerMaintenance", "WorkerFlaggedMaintenance",
	"TooManySameIPs", "WorkerInviteOnly", "UnsafeIP", "TimeoutIP",
	"TooManyNewIPs", "KudosUpfront", "SharedKeyEmpty", "InvalidJobID",
	"RequestNotFound", "WorkerNotFound", "TeamNotFound", "FilterNotFound",
	"UserNotFound", "DuplicateGen", "AbortedGen", "RequestExpired",
	"TooManyPrompts", "NoValidWorkers", "MaintenanceMode",
	"TargetAccountFlagged", "SourceAccountFlagged", "FaultWhenKudosReceiving",
	"FaultWhenKudosSending", "TooFastKudosTransfers", "KudosTransferToAnon",
	"KudosTransferToSelf", "KudosTransferNotEnough", "NegativeKudosTransfer",
	"KudosTransferFromAnon", "InvalidAwardUsername", "KudosAwardToAnon",
	"NotAllowedAwards", "NoWorkerModSelected", "NoUserModSelected",
	"NoHordeModSelected", "NoTeamModSelected", "NoFilterModSelected",
	"NoSharedKeyModSelected", "BadRequest", "Forbidden", "Locked",
	"ControlNetInpaintingMismatch", "HiResFixMismatch", "TooManyLoras",
	"BadLoraVersion", "TooManyTIs", "BetaAnonForbidden",
	"BetaComparisonFault", "BadCFGDecimals", "BadCFGNumber",
	"BannedClientAgent", "SpecialMissingPayload", "SpecialForbidden",
	"SpecialMissingUsername", "SpecialModelNeedsSpecialUser",
	"SpecialFieldNeedsSpecialUser", "Img2ImgMismatch", "TilingMismatch",
	"ControlNetMismatch", "HiResMismatch", "EducationCannotSendKudos",
	"InvalidPriorityUsername", "SharedKeyExpired",
	"SharedKeyInsufficientKudos", "OnlyServiceAccountProxy", "RequiresTrust",
)

// ParseErrorCode maps a wire string to a ErrorCode. It never fails.
func ParseErrorCode(v string) ErrorCode { return errorCodes.parse(v) }

// ErrorCodes lists every known ErrorCode in catalog order.
func ErrorCodes() []ErrorCode { return errorCodes.values() }

func (e ErrorCode) String() string { return errorCodes.name(e) }

// IsKnown reports whether e is a member other than the catch-all.
func (e ErrorCode) IsKnown() bool { return errorCodes.known(e) }

// MarshalText implements encoding.TextMarshaler.
func (e ErrorCode) MarshalText() ([]byte, error) { return errorCodes.marshal(e) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *ErrorCode) UnmarshalText(b []byte) error {
	*e = errorCodes.parse(string(b))
	return nil
}

// WarningCode identifies a warning attached to an accepted request.
//
// The zero value, WarningCodeUnknown, is the catch-all for values this
// version does not recognise.
type WarningCode uint8

const (
	WarningCodeUnknown WarningCode = iota
	WarningCodeNoAvailableWorker
	WarningCodeClipSkipMismatch
	WarningCodeStepsTooFew
	WarningCodeStepsTooMany
	WarningCodeCfgScaleMismatch
	WarningCodeCfgScaleTooSmall
	WarningCodeCfgScaleTooLarge
	WarningCodeSamplerMismatch
	WarningCodeSchedulerMismatch
)

var warningCodes = newEnumSet[WarningCode]("WarningCode",
	"NoAvailableWorker", "ClipSkipMismatch", "StepsTooFew", "StepsTooMany",
	"CfgScaleMismatch", "CfgScaleTooSmall", "CfgScaleTooLarge",
	"SamplerMismatch", "SchedulerMismatch",
)

// ParseWarningCode maps a wire string to a WarningCode. It never fails.
func ParseWarningCode(v string) WarningCode { return warningCodes.parse(v) }

// WarningCodes lists every known WarningCode in catalog order.
func WarningCodes() []WarningCode { return warningCodes.values() }

func (w WarningCode) String() string { return warningCodes.name(w) }

// IsKnown reports whether w is a member other than the catch-all.
func (w WarningCode) IsKnown() bool { return warningCodes.known(w) }

// MarshalText implements encoding.TextMarshaler.
func (w WarningCode) MarshalText() ([]byte, error) { return warningCodes.marshal(w) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (w *WarningCode) UnmarshalText(b []byte) error {
	*w = warningCodes.parse(string(b))
	return nil
}

// InjectTI says where a textual inversion is injected.
//
// The zero value, InjectTIUnknown, is the catch-all for values this
// version does not recognise.
type InjectTI uint8

const (
	InjectTIUnknown InjectTI = iota
	InjectTIPrompt
	InjectTINegPrompt
)

// DefaultInjectTI is the value the horde assumes when the field is omitted.
const DefaultInjectTI = InjectTIPrompt

var injectTargets = newEnumSet[InjectTI]("InjectTI",
	"prompt", "negprompt",
)

// ParseInjectTI maps a wire string to a InjectTI. It never fails.
func ParseInjectTI(v string) InjectTI { return injectTargets.parse(v) }

// InjectTargets lists every known InjectTI in catalog order.
func InjectTargets() []InjectTI { return injectTargets.values() }

func (i InjectTI) String() string { return injectTargets.name(i) }

// IsKnown reports whether i is a member other than the catch-all.
func (i InjectTI) IsKnown() bool { return injectTargets.known(i) }

// MarshalText implements encoding.TextMarshaler.
func (i InjectTI) MarshalText() ([]byte, error) { return injectTargets.marshal(i) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *InjectTI) UnmarshalText(b []byte) error {
	*i = injectTargets.parse(string(b))
	return nil
}

// GenerationState is the legacy per-image state. Prefer GenerationMetadata.
//
// The zero value, GenerationStateUnknown, is the catch-all for values this
// version does not recognise.
type GenerationState uint8

const (
	GenerationStateUnknown GenerationState = iota
	GenerationStateOK
	GenerationStateCensored
)

// DefaultGenerationState is the value the horde assumes when the field is omitted.
const DefaultGenerationState = GenerationStateOK

var generationStates = newEnumSet[GenerationState]("GenerationState",
	"ok", "censored",
)

// ParseGenerationState maps a wire string to a GenerationState. It never fails.
func ParseGenerationState(v string) GenerationState { return generationStates.parse(v) }

// GenerationStates lists every known GenerationState in catalog order.
func GenerationStates() []GenerationState { return generationStates.values() }

func (g GenerationState) String() string { return generationStates.name(g) }

// IsKnown reports whether g is a member other than the catch-all.
func (g GenerationState) IsKnown() bool { return generationStates.known(g) }

// MarshalText implements encoding.TextMarshaler.
func (g GenerationState) MarshalText() ([]byte, error) { return generationStates.marshal(g) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (g *GenerationState) UnmarshalText(b []byte) error {
	*g = generationStates.parse(string(b))
	return nil
}

// MetadataType is the subject a GenerationMetadata entry refers to.
//
// The zero value, MetadataTypeUnknown, is the catch-all for values this
// version does not recognise.
type MetadataType uint8

const (
	MetadataTypeUnknown MetadataType = iota
	MetadataTypeLora
	MetadataTypeTI
	MetadataTypeCensorship
	MetadataTypeSourceImage
	MetadataTypeSourceMask
	MetadataTypeExtraSourceImages
	MetadataTypeBatchIndex
	MetadataTypeInformation
)

// DefaultMetadataType is the value the horde assumes when the field is omitted.
const DefaultMetadataType = MetadataTypeLora

var metadataTypes = newEnumSet[MetadataType]("MetadataType",
	"lora", "ti", "censorship", "source_image", "source_mask",
	"extra_source_images", "batch_index", "information",
)

// ParseMetadataType maps a wire string to a MetadataType. It never fails.
func ParseMetadataType(v string) MetadataType { return metadataTypes.parse(v) }

// MetadataTypes lists every known MetadataType in catalog order.
func MetadataTypes() []MetadataType { return metadataTypes.values() }

func (m MetadataType) String() string { return metadataTypes.name(m) }

// IsKnown reports whether m is a member other than the catch-all.
func (m MetadataType) IsKnown() bool { return metadataTypes.known(m) }

// MarshalText implements encoding.TextMarshaler.
func (m MetadataType) MarshalText() ([]byte, error) { return metadataTypes.marshal(m) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *MetadataType) UnmarshalText(b []byte) error {
	*m = metadataTypes.parse(string(b))
	return nil
}

// MetadataValue is the outcome recorded by a GenerationMetadata entry.
//
// The zero value, MetadataValueUnknown, is the catch-all for values this
// version does not recognise.
type MetadataValue uint8

const (
	MetadataValueUnknown MetadataValue = iota
	MetadataValueDownloadFailed
	MetadataValueParseFailed
	MetadataValueBaselineMismatch
	MetadataValueCSAM
	MetadataValueNSFW
	MetadataValueSeeRef
)

// DefaultMetadataValue is the value the horde assumes when the field is omitted.
const DefaultMetadataValue = MetadataValueDownloadFailed

var metadataValues = newEnumSet[MetadataValue]("MetadataValue",
	"download_failed", "parse_failed", "baseline_mismatch", "csam", "nsfw",
	"see_ref",
)

// ParseMetadataValue maps a wire string to a MetadataValue. It never fails.
func ParseMetadataValue(v string) MetadataValue { return metadataValues.parse(v) }

// MetadataValues lists every known MetadataValue in catalog order.
func MetadataValues() []MetadataValue { return metadataValues.values() }

func (m MetadataValue) String() string { return metadataValues.name(m) }

// IsKnown reports whether m is a member other than the catch-all.
func (m MetadataValue) IsKnown() bool { return metadataValues.known(m) }

// MarshalText implements encoding.TextMarshaler.
func (m MetadataValue) MarshalText() ([]byte, error) { return metadataValues.marshal(m) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *MetadataValue) UnmarshalText(b []byte) error {
	*m = metadataValues.parse(string(b))
	return nil
}

// ModelType is the category of a model served by the horde.
//
// The zero value, ModelTypeUnknown, is the catch-all for values this
// version does not recognise.
type ModelType uint8

const (
	ModelTypeUnknown ModelType = iota
	ModelTypeImage
	ModelTypeText
)

// DefaultModelType is the value the horde assumes when the field is omitted.
const DefaultModelType = ModelTypeImage

var modelTypes = newEnumSet[ModelType]("ModelType",
	"image", "text",
)

// ParseModelType maps a wire string to a ModelType. It never fails.
func ParseModelType(v string) ModelType { return modelTypes.parse(v) }

// ModelTypes lists every known ModelType in catalog order.
func ModelTypes() []ModelType { return modelTypes.values() }

func (m ModelType) String() string { return modelTypes.name(m) }

// IsKnown reports whether m is a member other than the catch-all.
func (m ModelType) IsKnown() bool { return modelTypes.known(m) }

// MarshalText implements encoding.TextMarshaler.
func (m ModelType) MarshalText() ([]byte, error) { return modelTypes.marshal(m) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *ModelType) UnmarshalText(b []byte) error {
	*m = modelTypes.parse(string(b))
	return nil
}

// StyleType is the category of a user-owned style.
//
// The zero value, StyleTypeUnknown, is the catch-all for values this
// version does not recognise.
type StyleType uint8

const (
	StyleTypeUnknown StyleType = iota
	StyleTypeImage
	StyleTypeText
)

// DefaultStyleType is the value the horde assumes when the field is omitted.
const DefaultStyleType = StyleTypeImage

var styleTypes = newEnumSet[StyleType]("StyleType",
	"image", "text",
)

// ParseStyleType maps a wire string to a StyleType. It never fails.
func ParseStyleType(v string) StyleType { return styleTypes.parse(v) }

// StyleTypes lists every known StyleType in catalog order.
func StyleTypes() []StyleType { return styleTypes.values() }

func (s StyleType) String() string { return styleTypes.name(s) }

// IsKnown reports whether s is a member other than the catch-all.
func (s StyleType) IsKnown() bool { return styleTypes.known(s) }

// MarshalText implements encoding.TextMarshaler.
func (s StyleType) MarshalText() ([]byte, error) { return styleTypes.marshal(s) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *StyleType) UnmarshalText(b []byte) error {
	*s = styleTypes.parse(string(b))
	return nil
}

// ModelState filters active models by their presence in the model reference.
//
// The zero value, ModelStateUnknown, is the catch-all for values this
// version does not recognise.
type ModelState uint8

const (
	ModelStateUnknown ModelState = iota
	ModelStateKnown
	ModelStateCustom
	ModelStateAll
)

// DefaultModelState is the value the horde assumes when the field is omitted.
const DefaultModelState = ModelStateKnown

var modelStates = newEnumSet[ModelState]("ModelState",
	"known", "custom", "all",
)

// ParseModelState maps a wire string to a ModelState. It never fails.
func ParseModelState(v string) ModelState { return modelStates.parse(v) }

// ModelStates lists every known ModelState in catalog order.
func ModelStates() []ModelState { return modelStates.values() }

func (m ModelState) String() string { return modelStates.name(m) }

// IsKnown reports whether m is a member other than the catch-all.
func (m ModelState) IsKnown() bool { return modelStates.known(m) }

// MarshalText implements encoding.TextMarshaler.
func (m ModelState) MarshalText() ([]byte, error) { return modelStates.marshal(m) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *ModelState) UnmarshalText(b []byte) error {
	*m = modelStates.parse(string(b))
	return nil
}
