package render

import "github.com/charmbracelet/lipgloss"

// Theme defines colors and icons for terminal rendering.
type Theme struct {
	Name     string
	Primary  lipgloss.Style
	Success  lipgloss.Style
	Muted    lipgloss.Style
	Bold     lipgloss.Style
	Severity map[Bucket]lipgloss.Style
	Icons    ThemeIcons
}

// ThemeIcons defines the icon set for a theme.
type ThemeIcons struct {
	Pass   string
	Info   string
	Bullet string
}

// SeverityStyle returns the style for a severity string's bucket.
func (t Theme) SeverityStyle(severity string) lipgloss.Style {
	if s, ok := t.Severity[BucketOf(severity)]; ok {
		return s
	}
	return lipgloss.NewStyle()
}

// DefaultTheme returns a vibrant color theme.
func DefaultTheme() Theme {
	return Theme{
		Name:    "default",
		Primary: lipgloss.NewStyle().Foreground(lipgloss.Color("39")), // blue
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("34")), // green
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
		Bold:    lipgloss.NewStyle().Bold(true),
		Severity: map[Bucket]lipgloss.Style{
			BucketCritical:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
			BucketHigh:      lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
			BucketMedium:    lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
			BucketLow:       lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
			BucketUndefined: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		},
		Icons: ThemeIcons{
			Pass:   "✓",
			Info:   "●",
			Bullet: "·",
		},
	}
}

// MonoTheme returns a monochrome theme (no colors).
func MonoTheme() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Name:    "mono",
		Primary: plain,
		Success: plain,
		Muted:   plain,
		Bold:    lipgloss.NewStyle().Bold(true),
		Severity: map[Bucket]lipgloss.Style{
			BucketCritical:  plain,
			BucketHigh:      plain,
			BucketMedium:    plain,
			BucketLow:       plain,
			BucketUndefined: plain,
		},
		Icons: ThemeIcons{
			Pass:   "+",
			Info:   "*",
			Bullet: "-",
		},
	}
}

// Themes lists the accepted theme names.
func Themes() []string { return []string{"default", "mono"} }

// ThemeByName returns a theme by name, defaulting to DefaultTheme.
func ThemeByName(name string) Theme {
	if name == "mono" {
		return MonoTheme()
	}
	return DefaultTheme()
}
