package pagenav

import "image/color"

// Theme defines the visual configuration handed to pages.
// The navigation core only reads StatusBarHeight; everything else is for
// content builders.
type Theme struct {
	Name string

	FontPath      string // Path to the body font
	TitleFontPath string // Path to the title font
	IconFontPath  string // Path to the icon font
	MonoFontPath  string // Path to the monospace font
	FontSize      int
	TitleFontSize int

	BackgroundColor    color.RGBA // Page background
	BackgroundLight    color.RGBA // Cards, secondary panels
	BackgroundDark     color.RGBA // Pressed states
	BorderColor        color.RGBA
	TextPrimaryColor   color.RGBA
	TextSecondaryColor color.RGBA
	TextOnAccentColor  color.RGBA // Text drawn on AccentColor
	OverlayColor       color.RGBA // Dialog and loading scrims
	AccentColor        color.RGBA
	SuccessColor       color.RGBA
	DangerColor        color.RGBA
	WarningColor       color.RGBA

	CardRadius      int32
	ButtonRadius    int32
	DialogRadius    int32
	InputHeight     int32
	HorizontalPad   int32
	Gap             int32
	ShadowWidth     int32
	StatusBarHeight int32 // 0 = no status bar
}

var defaultTheme = Theme{
	Name:               "default",
	FontSize:           16,
	TitleFontSize:      22,
	BackgroundColor:    HexToColor(0xFFFFFF),
	BackgroundLight:    HexToColor(0xF0F0F0),
	BackgroundDark:     HexToColor(0xE0E0E0),
	BorderColor:        HexToColor(0xDDDDDD),
	TextPrimaryColor:   HexToColor(0x333333),
	TextSecondaryColor: HexToColor(0x666666),
	TextOnAccentColor:  HexToColor(0xFFFFFF),
	OverlayColor:       HexToColor(0x000000),
	AccentColor:        HexToColor(0x2196F3),
	SuccessColor:       HexToColor(0x4CAF50),
	DangerColor:        HexToColor(0xF44336),
	WarningColor:       HexToColor(0xFF9800),
	CardRadius:         8,
	ButtonRadius:       6,
	DialogRadius:       12,
	InputHeight:        36,
	HorizontalPad:      12,
	Gap:                6,
	ShadowWidth:        12,
	StatusBarHeight:    24,
}

// DefaultTheme returns a copy of the built-in theme.
func DefaultTheme() Theme {
	return defaultTheme
}

// HexToColor converts 0xRRGGBB into an opaque color.
func HexToColor(hex uint32) color.RGBA {
	return color.RGBA{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 0xFF,
	}
}
