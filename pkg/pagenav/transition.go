package pagenav

import (
	"log/slog"

	"github.com/BrandonKowalski/pagenav/pkg/pagenav/constants"
	"github.com/BrandonKowalski/pagenav/pkg/pagenav/toolkit"
)

// slideOffsets returns where the new page starts and where the old page ends
// for a slide in dir across a w x h container.
func slideOffsets(dir constants.Direction, w, h int32) (startX, startY, endX, endY int32) {
	switch dir {
	case constants.DirectionLeft:
		startX, endX = w, -w
	case constants.DirectionRight:
		startX, endX = -w, w
	case constants.DirectionUp:
		startY, endY = h, -h
	case constants.DirectionDown:
		startY, endY = -h, h
	}
	return
}

func setX(s toolkit.Surface, v int32) {
	_, y := s.Position()
	s.SetPosition(v, y)
}

func setY(s toolkit.Surface, v int32) {
	x, _ := s.Position()
	s.SetPosition(x, v)
}

func setOpacity(s toolkit.Surface, v int32) {
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	s.SetOpacity(uint8(v))
}

// axis picks the animated coordinate for dir.
func axis(dir constants.Direction, startX, startY int32) (int32, func(toolkit.Surface, int32)) {
	if dir.IsHorizontal() {
		return startX, setX
	}
	return startY, setY
}

// slide moves both pages; the old page's animation drives completion.
func (m *Manager) slide(old, target *Page, dir constants.Direction, log *slog.Logger) {
	w, h := m.container.Size()
	startX, startY, endX, endY := slideOffsets(dir, w, h)
	generation := m.generation

	newSurface := target.surface
	oldSurface := old.surface

	newSurface.SetPosition(startX, startY)
	newSurface.SetHidden(false)

	start, exec := axis(dir, startX, startY)
	m.provider.Animate(toolkit.Animation{
		Target:   newSurface,
		From:     start,
		To:       0,
		Duration: m.transitionDuration,
		Easing:   toolkit.EaseOut,
		Exec:     exec,
	})

	end, exec := axis(dir, endX, endY)
	m.provider.Animate(toolkit.Animation{
		Target:   oldSurface,
		From:     0,
		To:       end,
		Duration: m.transitionDuration,
		Easing:   toolkit.EaseOut,
		Exec:     exec,
		Done: func() {
			// Cached pages must come back at the origin.
			if old.surface != nil {
				old.surface.SetPosition(0, 0)
			}
			log.Debug("Slide complete")
			m.complete(generation, old, target)
		},
	})
}

// slideOver moves only the new page, stacked above the static old page.
func (m *Manager) slideOver(old, target *Page, dir constants.Direction, log *slog.Logger) {
	w, h := m.container.Size()
	startX, startY, _, _ := slideOffsets(dir, w, h)
	generation := m.generation

	newSurface := target.surface
	newSurface.SetPosition(startX, startY)
	newSurface.SetHidden(false)
	newSurface.MoveToFront()

	start, exec := axis(dir, startX, startY)
	m.provider.Animate(toolkit.Animation{
		Target:   newSurface,
		From:     start,
		To:       0,
		Duration: m.transitionDuration,
		Easing:   toolkit.EaseOut,
		Exec:     exec,
		Done: func() {
			log.Debug("Slide-over complete")
			m.complete(generation, old, target)
		},
	})
}

// fade cross-fades the two pages; the old page's animation drives completion.
func (m *Manager) fade(old, target *Page, log *slog.Logger) {
	generation := m.generation

	newSurface := target.surface
	newSurface.SetPosition(0, 0)
	newSurface.SetOpacity(constants.OpacityTransparent)
	newSurface.SetHidden(false)

	m.provider.Animate(toolkit.Animation{
		Target:   newSurface,
		From:     int32(constants.OpacityTransparent),
		To:       int32(constants.OpacityCover),
		Duration: m.transitionDuration,
		Easing:   toolkit.EaseInOut,
		Exec:     setOpacity,
	})

	m.provider.Animate(toolkit.Animation{
		Target:   old.surface,
		From:     int32(constants.OpacityCover),
		To:       int32(constants.OpacityTransparent),
		Duration: m.transitionDuration,
		Easing:   toolkit.EaseInOut,
		Exec:     setOpacity,
		Done: func() {
			// Cached pages must come back fully opaque.
			if old.surface != nil {
				old.surface.SetOpacity(constants.OpacityCover)
			}
			log.Debug("Fade complete")
			m.complete(generation, old, target)
		},
	})
}
