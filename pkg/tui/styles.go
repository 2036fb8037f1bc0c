package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	ColorPurple      = lipgloss.Color("#7D56F4")
	ColorGreen       = lipgloss.Color("#25A065")
	ColorBlue        = lipgloss.Color("#4285F4")
	ColorRed         = lipgloss.Color("#E05252")
	ColorYellow      = lipgloss.Color("#E5C07B")
	ColorGray        = lipgloss.Color("#626262")
	ColorGrayDim     = lipgloss.Color("#404040")
	ColorWhite       = lipgloss.Color("#FFFFFF")
	ColorOffWhite    = lipgloss.Color("#D0D0D0")
	ColorSelectionBg = lipgloss.Color("#2D3B4D")
	ColorCyan        = lipgloss.Color("#56B6C2")
	ColorOrange      = lipgloss.Color("#D19A66")
)

// Header styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPurple)

	HeaderCountStyle = lipgloss.NewStyle().
				Foreground(ColorGray)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	StatusStyle = lipgloss.NewStyle().
			Foreground(ColorCyan)
)

// Mission state banners
var (
	FailedBannerStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorWhite).
				Background(ColorRed).
				Padding(0, 1)

	CompleteBannerStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorWhite).
				Background(ColorGreen).
				Padding(0, 1)

	LevelBadgeStyle = lipgloss.NewStyle().
			Foreground(ColorWhite).
			Background(ColorPurple).
			Padding(0, 1)
)

// Body list styles
var (
	SelectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorWhite).
			Background(ColorSelectionBg)

	NormalStyle = lipgloss.NewStyle()

	CurrentStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorCyan)

	VisitedStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	ReachableStyle = lipgloss.NewStyle().
			Foreground(ColorOffWhite)

	UnreachableStyle = lipgloss.NewStyle().
				Foreground(ColorGray)

	HazardStyle = lipgloss.NewStyle().
			Foreground(ColorRed)

	CostStyle = lipgloss.NewStyle().
			Foreground(ColorYellow)

	SectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorOrange)
)

// Panel styles
var (
	DetailPanelStyle = lipgloss.NewStyle().
				Padding(0, 1)

	CommsStyle = lipgloss.NewStyle().
			Foreground(ColorOffWhite)

	CommsDimStyle = lipgloss.NewStyle().
			Foreground(ColorGray)
)

// Modal styles
var (
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPurple).
			Padding(1, 2)

	ModalTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPurple)

	ModalLabelStyle = lipgloss.NewStyle().
			Foreground(ColorGray).
			Width(14)

	ModalValueStyle = lipgloss.NewStyle().
			Foreground(ColorWhite)
)

// Status icons
const (
	IconCurrent   = "●"
	IconVisited   = "✓"
	IconReachable = "→"
	IconTraveling = "»"
	IconHazard    = "⚠"
	IconLocked    = "🔒"
	IconTask      = "○"
	IconDone      = "✓"
)
