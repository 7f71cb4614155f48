// Package style holds the colors, icons and lipgloss styles shared by the
// log handler and command output.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Accent = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
	Circle  = "○"
)

// Text styles.
var (
	Header   = lipgloss.NewStyle().Bold(true).Foreground(Accent)
	Muted    = lipgloss.NewStyle().Foreground(Slate)
	Enabled  = lipgloss.NewStyle().Foreground(Green)
	Disabled = lipgloss.NewStyle().Foreground(Slate)
)
