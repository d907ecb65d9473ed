package timerwindow

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// variantTheme pins the default theme to one variant regardless of the OS
// preference.
type variantTheme struct {
	fyne.Theme
	variant fyne.ThemeVariant
}

func (pinned variantTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	return pinned.Theme.Color(name, pinned.variant)
}

// ThemeFor returns the fyne theme for a preferences theme name. Anything
// other than "dark" is light.
func ThemeFor(name string) fyne.Theme {
	variant := theme.VariantLight
	if name == "dark" {
		variant = theme.VariantDark
	}
	return variantTheme{Theme: theme.DefaultTheme(), variant: variant}
}

// ApplyTheme installs the named theme on app and recolors the window text.
func (timerWindow *Window) ApplyTheme(app fyne.App, name string) {
	app.Settings().SetTheme(ThemeFor(name))
	timerWindow.RefreshColors()
}
