package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// ScaledTheme applies the user's font-scale preference to the text sizes
// while delegating everything else to the default theme.
type ScaledTheme struct {
	scale float32
}

// NewScaledTheme creates a theme scaling text by the given factor.
func NewScaledTheme(scale float64) fyne.Theme {
	return &ScaledTheme{scale: float32(scale)}
}

// Color returns theme colors
func (t *ScaledTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *ScaledTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *ScaledTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with the text sizes scaled
func (t *ScaledTheme) Size(name fyne.ThemeSizeName) float32 {
	size := theme.DefaultTheme().Size(name)
	switch name {
	case theme.SizeNameText, theme.SizeNameHeadingText, theme.SizeNameSubHeadingText:
		return size * t.scale
	}
	return size
}
