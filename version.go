package aihorde

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Version is the current SDK version.
//
// This version follows semantic versioning (https://semver.org/).
// The version is incremented according to the following rules:
//   - MAJOR: Breaking changes to the public API
//   - MINOR: New features, backwards compatible
//   - PATCH: Bug fixes, backwards compatible
const Version = "0.1.0"

// APIVersion is the AI Horde server version this SDK was built against.
//
// Use [Client.Heartbeat] to check the actual server version at runtime.
const APIVersion = "4.44.0"

// APIVersionRange is the semver constraint of server versions this SDK
// supports. The horde keeps its v2 REST surface stable within a major
// version, so new enum members are the main source of drift; those decode
// to the catch-all members.
const APIVersionRange = ">=4.0.0-0, <5.0.0-0"

// CompatibilityStatus is the outcome of [CheckCompatibility].
type CompatibilityStatus int

const (
	// CompatibilityUnknown means the server version could not be parsed.
	CompatibilityUnknown CompatibilityStatus = iota

	// Compatible means the server version is inside APIVersionRange.
	Compatible

	// Incompatible means the server version is outside APIVersionRange.
	Incompatible
)

func (s CompatibilityStatus) String() string {
	switch s {
	case Compatible:
		return "compatible"
	case Incompatible:
		return "incompatible"
	default:
		return "unknown"
	}
}

// CompatibilityResult describes how a server version relates to this SDK.
type CompatibilityResult struct {
	Status           CompatibilityStatus
	ServerVersion    string
	SDKVersion       string
	TargetAPIVersion string
	SupportedRange   string
	Message          string
}

// IsCompatible returns true only for a known compatible server.
func (r CompatibilityResult) IsCompatible() bool {
	return r.Status == Compatible
}

var supportedRange = mustConstraint(APIVersionRange)

func mustConstraint(c string) *semver.Constraints {
	constraint, err := semver.NewConstraint(c)
	if err != nil {
		panic(fmt.Sprintf("aihorde: invalid APIVersionRange %q: %v", c, err))
	}
	return constraint
}

// CheckCompatibility compares a server version, as reported by
// [Client.Heartbeat], with APIVersionRange.
func CheckCompatibility(serverVersion string) CompatibilityResult {
	result := CompatibilityResult{
		ServerVersion:    serverVersion,
		SDKVersion:       Version,
		TargetAPIVersion: APIVersion,
		SupportedRange:   APIVersionRange,
	}

	v, err := semver.NewVersion(serverVersion)
	if err != nil {
		result.Status = CompatibilityUnknown
		result.Message = fmt.Sprintf("cannot parse server version %q: %v", serverVersion, err)
		return result
	}

	if supportedRange.Check(v) {
		result.Status = Compatible
		result.Message = fmt.Sprintf("server %s is compatible with aihorde-go %s", serverVersion, Version)
		return result
	}

	result.Status = Incompatible
	result.Message = fmt.Sprintf("server %s is not compatible with aihorde-go %s (supports %s)",
		serverVersion, Version, APIVersionRange)
	return result
}

// IsCompatible is shorthand for CheckCompatibility(v).IsCompatible().
func IsCompatible(serverVersion string) bool {
	return CheckCompatibility(serverVersion).IsCompatible()
}
