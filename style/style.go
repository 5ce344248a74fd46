package style

import "github.com/charmbracelet/lipgloss"

// Palette colors. SetTheme reassigns these and rebuilds the styles below.
var (
	Primary   lipgloss.TerminalColor = lipgloss.Color("#7C3AED") // violet-600
	Secondary lipgloss.TerminalColor = lipgloss.Color("#06B6D4") // cyan-500
	Success   lipgloss.TerminalColor = lipgloss.Color("#22C55E") // green-500
	Warning   lipgloss.TerminalColor = lipgloss.Color("#F59E0B") // amber-500
	Error     lipgloss.TerminalColor = lipgloss.Color("#EF4444") // red-500
	Muted     lipgloss.TerminalColor = lipgloss.Color("#6B7280") // gray-500
	Dim       lipgloss.TerminalColor = lipgloss.Color("#374151") // gray-700
)

// Named styles used across the UI. Rebuilt on every theme change.
var (
	Faint       lipgloss.Style
	WarnText    lipgloss.Style
	ErrorText   lipgloss.Style
	Placeholder lipgloss.Style

	// Banner
	BannerTitle  lipgloss.Style
	BannerDetail lipgloss.Style

	// Prompt
	PromptChar lipgloss.Style

	// Chat labels
	UserLabel  lipgloss.Style
	AgentLabel lipgloss.Style

	// Status line
	SpinnerStyle lipgloss.Style
	StatusBar    lipgloss.Style

	// Badge pills. BadgeFailure outranks tool pills, tool pills outrank
	// BadgeSuccess; precedence lives in model.DeriveBadges.
	BadgeSuccess lipgloss.Style
	BadgeFailure lipgloss.Style

	toolBadges map[string]lipgloss.Style
)

func init() { rebuild() }

// ToolBadge looks up the tool-specific pill for a derived style key
// (e.g. "google-search"). The second return reports whether one exists.
func ToolBadge(key string) (lipgloss.Style, bool) {
	s, ok := toolBadges[key]
	return s, ok
}

// HasToolBadge reports whether a tool-specific pill exists for key.
func HasToolBadge(key string) bool {
	_, ok := toolBadges[key]
	return ok
}

func rebuild() {
	Faint = lipgloss.NewStyle().Foreground(Muted)
	WarnText = lipgloss.NewStyle().Foreground(Warning)
	ErrorText = lipgloss.NewStyle().Foreground(Error).Bold(true)
	Placeholder = lipgloss.NewStyle().Foreground(Dim)

	BannerTitle = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)
	BannerDetail = lipgloss.NewStyle().
		Foreground(Muted)

	PromptChar = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	UserLabel = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)
	AgentLabel = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	SpinnerStyle = lipgloss.NewStyle().Foreground(Primary)
	StatusBar = lipgloss.NewStyle().
		Foreground(Muted).
		PaddingLeft(1)

	BadgeSuccess = pill(Success)
	BadgeFailure = pill(Error)

	// Tool identity colors stay fixed across themes; only the shared
	// success/failure pills track the palette.
	toolBadges = map[string]lipgloss.Style{
		"google-search":  pill(lipgloss.Color("#4285F4")),
		"browse-website": pill(Secondary),
		"read-email":     pill(lipgloss.Color("#A78BFA")),
		"send-email":     pill(lipgloss.Color("#34D399")),
	}
}

// pill builds the badge chip look: colored background, dark text, one cell
// of padding on each side.
func pill(c lipgloss.TerminalColor) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(c).
		Foreground(lipgloss.Color("#111827")).
		Padding(0, 1).
		Bold(true)
}
