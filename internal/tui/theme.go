package tui

import (
	"image/color"
	"sort"

	"github.com/akyairhashvil/codefield/internal/models"
	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Name     string
	Base     lipgloss.Style
	Header   lipgloss.Style
	Status   lipgloss.Style
	Accepted lipgloss.Style
	Rejected lipgloss.Style
	Dim      lipgloss.Style

	// Field colors. A zero Background leaves the terminal background alone.
	Text       color.RGBA
	Border     color.RGBA
	Caret      color.RGBA
	Background color.RGBA
}

// Apply paints cfg with the theme's field colors.
func (t Theme) Apply(cfg models.FieldConfig) models.FieldConfig {
	cfg.TextColor = t.Text
	cfg.BorderColor = t.Border
	cfg.CaretColor = t.Caret
	cfg.BackgroundColor = t.Background
	return cfg
}

func rgb(r, g, b uint8) color.RGBA { return color.RGBA{R: r, G: g, B: b, A: 0xff} }

var Themes = map[string]Theme{
	"default": {
		Name:     "Default",
		Base:     lipgloss.NewStyle().Margin(1, 2),
		Header:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Accepted: lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		Rejected: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Text:     rgb(0xd0, 0xd0, 0xd0),
		Border:   rgb(0x5f, 0x5f, 0xff), // 63
		Caret:    rgb(0xff, 0x5f, 0xaf), // 205
	},
	"light": {
		Name:       "Light",
		Base:       lipgloss.NewStyle().Margin(1, 2),
		Header:     lipgloss.NewStyle().Foreground(lipgloss.Color("25")).Bold(true),
		Status:     lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
		Accepted:   lipgloss.NewStyle().Foreground(lipgloss.Color("28")).Bold(true),
		Rejected:   lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Bold(true),
		Dim:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Text:       models.NearBlack,
		Border:     models.LightGray,
		Caret:      models.Blue,
		Background: models.White,
	},
	"dracula": {
		Name:       "Dracula",
		Base:       lipgloss.NewStyle().Margin(1, 2),
		Header:     lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),  // Cyan
		Status:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")),            // White
		Accepted:   lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Bold(true), // Green
		Rejected:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true), // Red
		Dim:        lipgloss.NewStyle().Foreground(lipgloss.Color("60")),             // Comment
		Text:       rgb(0xf8, 0xf8, 0xf2),
		Border:     rgb(0x62, 0x72, 0xa4),
		Caret:      rgb(0xff, 0x79, 0xc6),
		Background: rgb(0x28, 0x2a, 0x36),
	},
}

// LookupTheme returns the named theme, or the default one and false.
func LookupTheme(name string) (Theme, bool) {
	if name == "" {
		return Themes["default"], true
	}
	t, ok := Themes[name]
	if !ok {
		return Themes["default"], false
	}
	return t, true
}

// ThemeNames lists the registered themes in sorted order.
func ThemeNames() []string {
	names := make([]string, 0, len(Themes))
	for name := range Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
