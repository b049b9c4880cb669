package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Name                                          string
	Title, Muted, Accent, Success, Error, Pending lipgloss.Style
	Selected, Done, Help                          lipgloss.Style
	Border                                        lipgloss.Border
	BorderColor, ActiveBorderColor                lipgloss.TerminalColor
	BoxUnchecked, BoxChecked                      string
	SymDone, SymPending, Cursor                   string
}

var themes = map[string]func() Theme{
	"classic": classicTheme,
	"neon":    neonTheme,
	"mono":    monoTheme,
}

var current = classicTheme()

// SetTheme switches the active theme. Unknown names fall back to classic.
func SetTheme(name string) {
	build, ok := themes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		build = classicTheme
	}
	current = build()
}

// Expose what renderers need
func Current() Theme { return current }

// ThemeNames lists the available presets in alphabetical order.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func classicTheme() Theme {
	return Theme{
		Name:              "classic",
		Title:             lipgloss.NewStyle().Bold(true),
		Muted:             lipgloss.NewStyle().Faint(true),
		Accent:            lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Success:           lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:             lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Pending:           lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Selected:          lipgloss.NewStyle().Bold(true).Reverse(true),
		Done:              lipgloss.NewStyle().Faint(true).Strikethrough(true),
		Help:              lipgloss.NewStyle().Faint(true),
		Border:            lipgloss.RoundedBorder(),
		BorderColor:       lipgloss.Color("8"),
		ActiveBorderColor: lipgloss.Color("12"),
		BoxUnchecked:      "☐",
		BoxChecked:        "☑",
		SymDone:           "✔",
		SymPending:        "•",
		Cursor:            "> ",
	}
}

func neonTheme() Theme {
	return Theme{
		Name:              "neon",
		Title:             lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
		Muted:             lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Accent:            lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Success:           lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Error:             lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Pending:           lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Selected:          lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
		Done:              lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Strikethrough(true),
		Help:              lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Border:            lipgloss.RoundedBorder(),
		BorderColor:       lipgloss.Color("5"),
		ActiveBorderColor: lipgloss.Color("13"),
		BoxUnchecked:      "◻",
		BoxChecked:        "◼",
		SymDone:           "✔",
		SymPending:        "•",
		Cursor:            "▸ ",
	}
}

func monoTheme() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Name:  "mono",
		Title: plain, Muted: plain, Accent: plain,
		Success: plain, Error: plain, Pending: plain,
		Selected: plain, Done: plain, Help: plain,
		Border:            lipgloss.ASCIIBorder(),
		BorderColor:       lipgloss.NoColor{},
		ActiveBorderColor: lipgloss.NoColor{},
		BoxUnchecked:      "[ ]",
		BoxChecked:        "[x]",
		SymDone:           "x",
		SymPending:        "-",
		Cursor:            "> ",
	}
}
