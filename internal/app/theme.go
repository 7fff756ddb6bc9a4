package app

import (
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"

	"slate/internal/types"
)

var (
	tabStyle            = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236")).Padding(0, 1)
	tabActiveStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("239")).Bold(true).Padding(0, 1)
	tabDraggingStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("63")).Bold(true).Padding(0, 1)
	addControlStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Background(lipgloss.Color("236")).Padding(0, 1)
	tabOptionsStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Background(lipgloss.Color("237")).Padding(0, 1)
	extensionPanelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Background(lipgloss.Color("235")).Padding(0, 1)
	statusStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	toastInfoStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("29")).Bold(true)
	toastErrorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("160")).Bold(true)
	headingStyles       = map[int]lipgloss.Style{
		1: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		2: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69")),
		3: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("75")),
	}
	boldSpanStyle    = lipgloss.NewStyle().Bold(true)
	smallSpanStyle   = lipgloss.NewStyle().Faint(true)
	largeSpanStyle   = lipgloss.NewStyle().Bold(true)
	xlargeSpanStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	checkedTaskStyle = lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("243"))
	taskBoxStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("110"))
	bulletStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("110"))
	selectedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("236"))
	menuDropStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("235"))
	menuHeaderStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("251")).Background(lipgloss.Color("235")).Bold(true)
	dialogBorder     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("208"))
)

var noteColorValues = map[types.NoteColor]lipgloss.Color{
	types.NoteColorRed:    lipgloss.Color("203"),
	types.NoteColorOrange: lipgloss.Color("208"),
	types.NoteColorYellow: lipgloss.Color("179"),
	types.NoteColorGreen:  lipgloss.Color("114"),
	types.NoteColorBlue:   lipgloss.Color("75"),
	types.NoteColorPurple: lipgloss.Color("135"),
}

func noteColorValue(color types.NoteColor) (lipgloss.Color, bool) {
	v, ok := noteColorValues[color]
	return v, ok
}

func tabLabelStyle(color types.NoteColor, active, dragging bool) lipgloss.Style {
	style := tabStyle
	if active {
		style = tabActiveStyle
	}
	if dragging {
		style = tabDraggingStyle
	}
	if v, ok := noteColorValue(color); ok {
		style = style.Foreground(v)
	}
	return style
}

func lipglossSwatch(color types.NoteColor) lipgloss.Style {
	style := lipgloss.NewStyle()
	if v, ok := noteColorValue(color); ok {
		style = style.Background(v)
	}
	return style
}

func truncateToWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return xansi.Truncate(s, width, "…")
}

func padToWidth(s string, width int) string {
	for xansi.StringWidth(s) < width {
		s += " "
	}
	return s
}
