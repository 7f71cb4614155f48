package domain

import "strings"

const (
	// AfterCompileTarget is the target used by legacy .NET Framework projects.
	AfterCompileTarget = "AfterCompile"

	// PostBuildTarget is the target used by SDK-style projects.
	PostBuildTarget = "PostBuild"

	// PostBuildEvent is the MSBuild target the SDK-style post-build target runs after.
	PostBuildEvent = "PostBuildEvent"
)

// ProjectKind classifies a project by the MSBuild pipeline it uses.
type ProjectKind int

const (
	// KindSDK is an SDK-style project (.NET Core, .NET 5+, .NET Standard).
	KindSDK ProjectKind = iota
	// KindFramework is a legacy .NET Framework project.
	KindFramework
)

// String returns a human-readable name for the kind.
func (k ProjectKind) String() string {
	if k == KindFramework {
		return "framework"
	}
	return "sdk"
}

// TargetSpec identifies the build target that hosts the obfuscation steps.
type TargetSpec struct {
	Name string
	// AfterTargets is written only when non-empty.
	AfterTargets string
}

// TargetSpecFor returns the target used for the given project kind.
func TargetSpecFor(kind ProjectKind) TargetSpec {
	if kind == KindFramework {
		return TargetSpec{Name: AfterCompileTarget}
	}
	return TargetSpec{Name: PostBuildTarget, AfterTargets: PostBuildEvent}
}

// StepKey identifies an execution step by configuration and platform.
type StepKey struct {
	Configuration string
	Platform      string
}

// Sentinel returns the first line of a step's command. It is the step's
// identity inside the project file and must stay byte-stable.
func (k StepKey) Sentinel() string {
	return "echo " + k.Configuration + "@@" + k.Platform
}

// Prefix returns the text a matching step command starts with.
func (k StepKey) Prefix() string {
	return k.Sentinel() + CommandLineSeparator
}

// String returns the key as "config|platform".
func (k StepKey) String() string {
	return k.Configuration + "|" + k.Platform
}

// Step is an execution step to be stored under a target.
type Step struct {
	Key     StepKey
	Command string
}

// Matches reports whether the key is selected by sel. A selector is either a
// configuration name ("Release") or a full key ("Release|Any CPU"). The
// platform may be given in its property spelling ("AnyCPU").
func (k StepKey) Matches(sel string) bool {
	config, platform, full := strings.Cut(sel, "|")
	if strings.TrimSpace(config) != k.Configuration {
		return false
	}
	return !full || PlatformDisplay(strings.TrimSpace(platform)) == k.Platform
}
