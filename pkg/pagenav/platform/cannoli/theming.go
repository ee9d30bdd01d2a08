// Package cannoli provides theming support for the Cannoli custom firmware.
// Cannoli is a community-developed CFW for retro handheld gaming devices.
package cannoli

import (
	"github.com/BrandonKowalski/pagenav/pkg/pagenav"
)

// Name is the preset name used by navigation files.
const Name = "cannoli"

// InitCannoliTheme creates a page theme with Cannoli's default colors and the specified font.
// Cannoli draws no status bar of its own.
func InitCannoliTheme(fontPath string) pagenav.Theme {
	t := pagenav.DefaultTheme()
	t.Name = Name
	t.FontPath = fontPath
	t.TitleFontPath = fontPath

	t.BackgroundColor = pagenav.HexToColor(0x000000)
	t.BackgroundLight = pagenav.HexToColor(0x1A1A1A)
	t.BackgroundDark = pagenav.HexToColor(0x0D0D0D)
	t.BorderColor = pagenav.HexToColor(0x008080)
	t.TextPrimaryColor = pagenav.HexToColor(0xFFFFFF)
	t.TextSecondaryColor = pagenav.HexToColor(0xB0B0B0)
	t.TextOnAccentColor = pagenav.HexToColor(0x000000)
	t.AccentColor = pagenav.HexToColor(0x008080)
	t.StatusBarHeight = 0
	return t
}
