// Package styles provides shared lipgloss styles for the TUI.
package styles

import (
	glamouransi "github.com/charmbracelet/glamour/ansi"
	glamourstyles "github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
)

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Exported color aliases for convenience.
var (
	ColorPrimary    lipgloss.Color
	ColorSecondary  lipgloss.Color
	ColorForeground lipgloss.Color
	ColorMuted      lipgloss.Color
	ColorBackground lipgloss.Color
	ColorSurface    lipgloss.Color
	ColorSuccess    lipgloss.Color
	ColorWarning    lipgloss.Color
	ColorError      lipgloss.Color
)

// Style exports.
var (
	TitleStyle   lipgloss.Style
	HeaderStyle  lipgloss.Style
	DividerStyle lipgloss.Style
	HelpStyle    lipgloss.Style
	StatusStyle  lipgloss.Style

	// Risk tier styles, used for both sidebar entries and annotated
	// document lines.
	TierSafeStyle    lipgloss.Style
	TierCautionStyle lipgloss.Style
	TierHighStyle    lipgloss.Style

	// Matched-line emphasis in the document pane.
	MatchedCautionLineStyle lipgloss.Style
	MatchedHighLineStyle    lipgloss.Style
	PulseLineStyle          lipgloss.Style
	LineNumStyle            lipgloss.Style

	// Sidebar styles.
	SidebarBorderStyle   lipgloss.Style
	FindingStyle         lipgloss.Style
	FindingSelectedStyle lipgloss.Style
	FindingExpandedStyle lipgloss.Style
	SummaryStyle         lipgloss.Style
	FilterStyle          lipgloss.Style

	// Toast styles keyed by notice level.
	ToastInfoStyle  lipgloss.Style
	ToastWarnStyle  lipgloss.Style
	ToastErrorStyle lipgloss.Style

	// Form / upload step styles.
	FormTitleStyle lipgloss.Style
	FormHelpStyle  lipgloss.Style
	FormErrorStyle lipgloss.Style
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	ColorPrimary = p.Primary
	ColorSecondary = p.Secondary
	ColorForeground = p.Foreground
	ColorMuted = p.Muted
	ColorBackground = p.Background
	ColorSurface = p.Surface
	ColorSuccess = p.Success
	ColorWarning = p.Warning
	ColorError = p.Error

	TitleStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	HeaderStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true)
	DividerStyle = lipgloss.NewStyle().
		Foreground(ColorSurface)
	HelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	StatusStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Italic(true)

	TierSafeStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	TierCautionStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	TierHighStyle = lipgloss.NewStyle().Foreground(ColorError).Bold(true)

	MatchedCautionLineStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	MatchedHighLineStyle = lipgloss.NewStyle().Foreground(ColorError)
	PulseLineStyle = lipgloss.NewStyle().
		Background(ColorSurface).
		Foreground(ColorForeground).
		Bold(true)
	LineNumStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	SidebarBorderStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(ColorSurface).
		PaddingLeft(1)
	FindingStyle = lipgloss.NewStyle().Foreground(ColorForeground)
	FindingSelectedStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	FindingExpandedStyle = lipgloss.NewStyle().
		Foreground(ColorForeground).
		PaddingLeft(2)
	SummaryStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true)
	FilterStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Italic(true)

	ToastInfoStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(0, 1)
	ToastWarnStyle = ToastInfoStyle.BorderForeground(ColorWarning)
	ToastErrorStyle = ToastInfoStyle.BorderForeground(ColorError)

	FormTitleStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	FormHelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	FormErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError)
}

// TierStyle returns the sidebar style for a risk tier name.
func TierStyle(tier string) lipgloss.Style {
	switch tier {
	case "High":
		return TierHighStyle
	case "Caution":
		return TierCautionStyle
	default:
		return TierSafeStyle
	}
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}

func colorHexPtr(c lipgloss.Color) *string {
	if c == "" {
		return nil
	}
	hex := string(c)
	return &hex
}

// GlamourStyle returns a Glamour style config derived from the active theme.
func GlamourStyle() glamouransi.StyleConfig {
	cfg := glamourstyles.DarkStyleConfig

	fg := colorHexPtr(ColorForeground)
	primary := colorHexPtr(ColorPrimary)
	secondary := colorHexPtr(ColorSecondary)
	muted := colorHexPtr(ColorMuted)
	surface := colorHexPtr(ColorSurface)

	cfg.Document.Color = fg
	cfg.Paragraph.Color = fg

	cfg.Heading.Color = primary
	cfg.H1.Color = fg
	cfg.H1.BackgroundColor = surface
	cfg.H2.Color = primary
	cfg.H3.Color = primary

	cfg.BlockQuote.Color = muted
	cfg.HorizontalRule.Color = muted

	cfg.Link.Color = secondary
	cfg.LinkText.Color = secondary

	cfg.Code.Color = secondary
	cfg.CodeBlock.Color = muted

	return cfg
}
