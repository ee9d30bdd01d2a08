package sdlsurface

import "github.com/veandco/go-sdl2/sdl"

// WindowOptions selects the SDL window flags.
type WindowOptions struct {
	Borderless        bool // Remove window decorations (SDL_WINDOW_BORDERLESS)
	Resizable         bool // Allow window resizing (SDL_WINDOW_RESIZABLE)
	Fullscreen        bool // Fullscreen mode (SDL_WINDOW_FULLSCREEN)
	FullscreenDesktop bool // Fullscreen at desktop resolution (SDL_WINDOW_FULLSCREEN_DESKTOP)
	AlwaysOnTop       bool // Window stays above others (SDL_WINDOW_ALWAYS_ON_TOP)
	Hidden            bool // Start hidden (omits SDL_WINDOW_SHOWN)

	Width  int32 // Zero uses the current display mode
	Height int32

	BackgroundImagePath string // Optional image drawn under every page
}

func (wo WindowOptions) IsZero() bool {
	return wo == WindowOptions{}
}

// Flags returns the SDL window flags for wo.
func (wo WindowOptions) Flags() uint32 {
	var flags uint32

	set := func(on bool, flag uint32) {
		if on {
			flags |= flag
		}
	}

	set(!wo.Hidden, sdl.WINDOW_SHOWN)
	set(wo.Resizable, sdl.WINDOW_RESIZABLE)
	set(wo.Borderless, sdl.WINDOW_BORDERLESS)
	set(wo.Fullscreen, sdl.WINDOW_FULLSCREEN)
	set(wo.FullscreenDesktop, sdl.WINDOW_FULLSCREEN_DESKTOP)
	set(wo.AlwaysOnTop, sdl.WINDOW_ALWAYS_ON_TOP)

	return flags
}
