package viz

import "github.com/charmbracelet/lipgloss"

// Theme is a terminal color scheme for the player chrome. Atom and zone
// colors come from the visual config; themes only affect borders, text and
// status styling.
type Theme struct {
	Name    string
	Border  lipgloss.Color
	Heading lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Time    lipgloss.Color
	Playing lipgloss.Color
	Paused  lipgloss.Color
}

var Themes = []Theme{
	{
		Name:    "default",
		Border:  lipgloss.Color("#444466"),
		Heading: lipgloss.Color("86"),
		Text:    lipgloss.Color("252"),
		Muted:   lipgloss.Color("240"),
		Time:    lipgloss.Color("#00ccff"),
		Playing: lipgloss.Color("#00ff88"),
		Paused:  lipgloss.Color("#ffaa00"),
	},
	{
		Name:    "retro",
		Border:  lipgloss.Color("#004400"),
		Heading: lipgloss.Color("#88ff88"),
		Text:    lipgloss.Color("#00ff00"),
		Muted:   lipgloss.Color("#00cc00"),
		Time:    lipgloss.Color("#88ff88"),
		Playing: lipgloss.Color("#00ff00"),
		Paused:  lipgloss.Color("#88ff88"),
	},
	{
		Name:    "mono",
		Border:  lipgloss.Color("240"),
		Heading: lipgloss.Color("255"),
		Text:    lipgloss.Color("250"),
		Muted:   lipgloss.Color("240"),
		Time:    lipgloss.Color("255"),
		Playing: lipgloss.Color("255"),
		Paused:  lipgloss.Color("245"),
	},
}

// ApplyTheme restyles the package-level styles with the passed theme.
func ApplyTheme(t Theme) {
	CanvasStyle = CanvasStyle.BorderForeground(t.Border)
	SidebarStyle = SidebarStyle.BorderForeground(t.Muted)
	HeadingStyle = HeadingStyle.Foreground(t.Heading)
	EntryStyle = EntryStyle.Foreground(t.Text)
	TimeStyle = TimeStyle.Foreground(t.Time)
	StatusPlaying = StatusPlaying.Foreground(t.Playing)
	StatusPaused = StatusPaused.Foreground(t.Paused)
	HelpStyle = HelpStyle.Foreground(t.Muted)
}
