// Package config loads navigation files and runtime settings.
//
// A navigation file is TOML and describes the engine defaults, the theme and
// the edges between pages:
//
//	version = 1
//
//	[engine]
//	transition_duration = "250ms"
//	default_transition = "slide"
//	max_cached_pages = 4
//
//	[theme]
//	base = "cannoli"
//	accent_color = "#2196F3"
//
//	[page.home.left]
//	target = "settings"
//	direction = "left"
//
//	[page.list.right]
//	target = "detail"
//	transition = "slide_over"
package config

import (
	"errors"
	"fmt"
	"image/color"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/BrandonKowalski/pagenav/pkg/pagenav"
	"github.com/BrandonKowalski/pagenav/pkg/pagenav/constants"
	"github.com/BrandonKowalski/pagenav/pkg/pagenav/platform/cannoli"
	"github.com/BurntSushi/toml"
)

// CurrentVersion is the only navigation file version understood.
const CurrentVersion = 1

var (
	ErrUnsupportedVersion = errors.New("unsupported navigation file version")
	ErrUnknownKeys        = errors.New("unknown keys in navigation file")
)

// Duration is a time.Duration written as a Go duration string ("300ms").
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// File is a decoded navigation file.
type File struct {
	Version int                 `toml:"version"`
	Engine  Engine              `toml:"engine"`
	Theme   ThemeFile           `toml:"theme"`
	Pages   map[string]PageFile `toml:"page"`
}

// Engine holds manager settings. Unset fields keep the manager's values.
type Engine struct {
	TransitionDuration *Duration `toml:"transition_duration"`
	DefaultTransition  string    `toml:"default_transition"`
	MaxCachedPages     *int      `toml:"max_cached_pages"`
	Gestures           *bool     `toml:"gestures"`
}

// ThemeFile selects a base theme and overrides parts of it.
type ThemeFile struct {
	Base            string `toml:"base"` // "default" or "cannoli"
	FontPath        string `toml:"font_path"`
	BackgroundColor string `toml:"background_color"`
	TextColor       string `toml:"text_color"`
	AccentColor     string `toml:"accent_color"`
	BorderColor     string `toml:"border_color"`
	StatusBarHeight *int32 `toml:"status_bar_height"`
}

// PageFile lists the edges leaving one page.
type PageFile struct {
	Up    *EdgeFile `toml:"up"`
	Down  *EdgeFile `toml:"down"`
	Left  *EdgeFile `toml:"left"`
	Right *EdgeFile `toml:"right"`
}

// EdgeFile is one edge as written in a navigation file. Direction defaults to
// right and Transition to slide.
type EdgeFile struct {
	Target     string `toml:"target"`
	Direction  string `toml:"direction"`
	Transition string `toml:"transition"`
}

// Load reads and validates the navigation file at path.
func Load(path string) (*File, error) {
	var f File
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, fmt.Errorf("decode navigation file %s: %w", path, err)
	}
	if err := f.validate(md); err != nil {
		return nil, fmt.Errorf("navigation file %s: %w", path, err)
	}
	return &f, nil
}

// Decode parses and validates a navigation file held in memory.
func Decode(data string) (*File, error) {
	var f File
	md, err := toml.Decode(data, &f)
	if err != nil {
		return nil, fmt.Errorf("decode navigation file: %w", err)
	}
	if err := f.validate(md); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *File) validate(md toml.MetaData) error {
	if f.Version == 0 {
		f.Version = CurrentVersion
	}
	if f.Version != CurrentVersion {
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, f.Version)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("%w: %s", ErrUnknownKeys, strings.Join(keys, ", "))
	}

	if f.Engine.DefaultTransition != "" {
		if _, ok := constants.ParseTransition(f.Engine.DefaultTransition); !ok {
			return fmt.Errorf("engine: unknown transition %q", f.Engine.DefaultTransition)
		}
	}

	for _, id := range f.PageIDs() {
		if _, err := f.Pages[id].Navigation(); err != nil {
			return fmt.Errorf("page %q: %w", id, err)
		}
	}

	if _, err := f.Theme.Build(); err != nil {
		return fmt.Errorf("theme: %w", err)
	}
	return nil
}

// PageIDs returns the source pages that have edges, sorted.
func (f *File) PageIDs() []string {
	ids := make([]string, 0, len(f.Pages))
	for id := range f.Pages {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Apply configures m with the engine settings and navigation edges in f.
// The theme is applied separately through Theme.Build and Manager.Initialize.
func (f *File) Apply(m *pagenav.Manager) error {
	if d := f.Engine.TransitionDuration; d != nil {
		m.SetTransitionDuration(d.Duration)
	}
	if f.Engine.DefaultTransition != "" {
		t, ok := constants.ParseTransition(f.Engine.DefaultTransition)
		if !ok {
			return fmt.Errorf("engine: unknown transition %q", f.Engine.DefaultTransition)
		}
		m.SetTransitionType(t)
	}
	if n := f.Engine.MaxCachedPages; n != nil {
		m.SetMaxCachedPages(*n)
	}
	if g := f.Engine.Gestures; g != nil {
		m.EnableGesture(*g)
	}

	for _, id := range f.PageIDs() {
		nav, err := f.Pages[id].Navigation()
		if err != nil {
			return fmt.Errorf("page %q: %w", id, err)
		}
		m.SetNavigation(id, nav)
	}
	return nil
}

// Navigation converts the edges of p.
func (p PageFile) Navigation() (pagenav.Navigation, error) {
	var nav pagenav.Navigation
	var err error
	if nav.Up, err = p.Up.edge("up"); err != nil {
		return nav, err
	}
	if nav.Down, err = p.Down.edge("down"); err != nil {
		return nav, err
	}
	if nav.Left, err = p.Left.edge("left"); err != nil {
		return nav, err
	}
	if nav.Right, err = p.Right.edge("right"); err != nil {
		return nav, err
	}
	return nav, nil
}

func (e *EdgeFile) edge(gesture string) (pagenav.Edge, error) {
	if e == nil {
		return pagenav.Edge{}, nil
	}
	if e.Target == "" {
		return pagenav.Edge{}, fmt.Errorf("%s: missing target", gesture)
	}

	edge := pagenav.To(e.Target)
	if e.Direction != "" {
		dir, ok := constants.ParseDirection(e.Direction)
		if !ok {
			return pagenav.Edge{}, fmt.Errorf("%s: unknown direction %q", gesture, e.Direction)
		}
		edge = edge.Animate(dir)
	}
	if e.Transition != "" {
		t, ok := constants.ParseTransition(e.Transition)
		if !ok {
			return pagenav.Edge{}, fmt.Errorf("%s: unknown transition %q", gesture, e.Transition)
		}
		edge = edge.Using(t)
	}
	return edge, nil
}

// Build resolves the base theme and applies the overrides.
func (t ThemeFile) Build() (pagenav.Theme, error) {
	var theme pagenav.Theme
	switch strings.ToLower(t.Base) {
	case "", "default":
		theme = pagenav.DefaultTheme()
	case cannoli.Name:
		theme = cannoli.InitCannoliTheme(t.FontPath)
	default:
		return pagenav.Theme{}, fmt.Errorf("unknown base theme %q", t.Base)
	}

	if t.FontPath != "" {
		theme.FontPath = t.FontPath
	}

	overrides := []struct {
		raw string
		dst *color.RGBA
	}{
		{t.BackgroundColor, &theme.BackgroundColor},
		{t.TextColor, &theme.TextPrimaryColor},
		{t.AccentColor, &theme.AccentColor},
		{t.BorderColor, &theme.BorderColor},
	}
	for _, o := range overrides {
		if o.raw == "" {
			continue
		}
		c, err := ParseColor(o.raw)
		if err != nil {
			return pagenav.Theme{}, err
		}
		*o.dst = c
	}

	if t.StatusBarHeight != nil {
		theme.StatusBarHeight = *t.StatusBarHeight
	}
	return theme, nil
}

// ParseColor reads "#RRGGBB", "RRGGBB" or "0xRRGGBB".
func ParseColor(s string) (color.RGBA, error) {
	raw := strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(s), "#"), "0x")
	if len(raw) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(raw, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return pagenav.HexToColor(uint32(v)), nil
}
