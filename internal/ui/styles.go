package ui

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
// - Default (white/black): Primary text
// - Accent (soft purple #A78BFA): Highlights, paths, entity names
// - Muted (gray): Secondary info, hints
// - No colored success/error/warning - use unicode symbols only

const defaultAccent = "#A78BFA"

var (
	// Accent style for file paths, entity names, highlights
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color(defaultAccent))

	// Muted style for secondary info and hints
	Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))

	// Bold style for emphasis
	Bold = lipgloss.NewStyle().Bold(true)

	// AccentBold combines accent color with bold
	AccentBold = lipgloss.NewStyle().Foreground(lipgloss.Color(defaultAccent)).Bold(true)
)

var accentColor = defaultAccent

// ConfigureTheme applies the configured accent color to the shared
// styles. Values of "none", "off", or "default" disable the accent.
func ConfigureTheme(accent string) {
	color, ok := normalizeAccentColor(accent)
	if !ok {
		if isAccentDisabled(accent) {
			accentColor = ""
			Accent = lipgloss.NewStyle()
			AccentBold = lipgloss.NewStyle().Bold(true)
		}
		return
	}
	accentColor = color
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	AccentBold = lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true)
}

// AccentColor returns the active accent color, if one is configured.
func AccentColor() (string, bool) {
	if accentColor == "" {
		return "", false
	}
	return accentColor, true
}

var hexColorRe = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// normalizeAccentColor validates and canonicalizes a user-supplied
// color: ANSI codes 0-255 or hex #RGB/#RRGGBB (short form expanded).
func normalizeAccentColor(input string) (string, bool) {
	s := strings.TrimSpace(input)
	if s == "" || isAccentDisabled(s) {
		return "", false
	}

	if strings.HasPrefix(s, "#") {
		if !hexColorRe.MatchString(s) {
			return "", false
		}
		if len(s) == 4 {
			s = "#" + strings.Repeat(string(s[1]), 2) +
				strings.Repeat(string(s[2]), 2) +
				strings.Repeat(string(s[3]), 2)
		}
		return strings.ToLower(s), true
	}

	if code, err := strconv.Atoi(s); err == nil && code >= 0 && code <= 255 {
		return strconv.Itoa(code), true
	}
	return "", false
}

func isAccentDisabled(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "off", "default":
		return true
	}
	return false
}
