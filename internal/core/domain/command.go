package domain

import (
	"fmt"
	"strings"
)

const (
	// CommandLineSeparator separates lines of a generated command.
	CommandLineSeparator = "\r\n"

	// DefaultObfuscatorPath is where the generated command expects the obfuscator.
	DefaultObfuscatorPath = `$(ProjectDir)_Obfuscar\Obfuscar.Console.exe`

	// AnyCPU is the platform name as shown to users.
	AnyCPU = "Any CPU"

	// AnyCPUProperty is the platform name as seen by MSBuild properties.
	AnyCPUProperty = "AnyCPU"
)

// Command renders the post-build command for one configuration/platform pair.
type Command struct {
	Key            StepKey
	ObfuscatorPath string
	ConfigXMLName  string
	OutputPath     string
}

// Render returns the command text. The first line is the key's sentinel; the
// platform in the MSBuild condition uses the property spelling of Any CPU.
func (c Command) Render() string {
	obfuscator := c.ObfuscatorPath
	if obfuscator == "" {
		obfuscator = DefaultObfuscatorPath
	}

	var b strings.Builder
	b.WriteString(c.Key.Sentinel())
	b.WriteString(CommandLineSeparator)
	fmt.Fprintf(&b, `if "$(ConfigurationName)" == "%s" (if "$(PlatformName)" == "%s" (`,
		c.Key.Configuration, PlatformProperty(c.Key.Platform))
	fmt.Fprintf(&b, `"%s" "$(ProjectDir)_Obfuscar\%s"`, obfuscator, c.ConfigXMLName)
	b.WriteString(CommandLineSeparator)
	fmt.Fprintf(&b, `copy /Y "$(ProjectDir)%s\Out\*" "$(ProjectDir)%s"`, c.OutputPath, c.OutputPath)
	b.WriteString("))")
	return b.String()
}

// Step returns the rendered command as a step for the synchronizer.
func (c Command) Step() Step {
	return Step{Key: c.Key, Command: c.Render()}
}

// PlatformProperty maps a display platform name to its $(PlatformName) value.
func PlatformProperty(platform string) string {
	if platform == AnyCPU {
		return AnyCPUProperty
	}
	return platform
}

// PlatformDisplay maps an MSBuild platform value to the name shown to users.
func PlatformDisplay(platform string) string {
	if platform == AnyCPUProperty {
		return AnyCPU
	}
	return platform
}

// RunConfigFileName returns the per-configuration config file name.
func RunConfigFileName(key StepKey) string {
	return fmt.Sprintf("obfuscar_%s_%s.xml",
		strings.ReplaceAll(key.Configuration, " ", "_"),
		strings.ReplaceAll(key.Platform, " ", "_"))
}
