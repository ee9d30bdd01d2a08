package sdlsurface

import (
	"fmt"
	"image/color"

	"github.com/BrandonKowalski/pagenav/pkg/pagenav/toolkit"
	"github.com/veandco/go-sdl2/sdl"
)

const focusBorder = 2

// Draw renders the background and every visible surface into the back buffer.
func (p *Provider) Draw() {
	p.window.RenderBackground()
	focus := p.focused()
	p.drawChildren(&p.root.Node, 0, 0, 255, focus)
}

func (p *Provider) drawSurface(s *Surface, offX, offY int32, alpha uint8, focus *Surface) {
	if s.Hidden() || s.Deleted() || s.Opacity() == 0 {
		return
	}

	alpha = uint8(uint16(alpha) * uint16(s.Opacity()) / 255)
	sx, sy := s.Position()
	w, h := s.Size()
	rect := sdl.Rect{X: offX + sx, Y: offY + sy, W: w, H: h}
	r := p.window.Renderer

	if s.bg.A != 0 {
		r.SetDrawColor(s.bg.R, s.bg.G, s.bg.B, scale(s.bg.A, alpha))
		r.FillRect(&rect)
	}

	x, y := rect.X+s.pad, rect.Y+s.pad
	if s.icon != nil {
		_, _, iw, ih, err := s.icon.Query()
		if err == nil {
			s.icon.SetAlphaMod(alpha)
			r.Copy(s.icon, nil, &sdl.Rect{X: x, Y: y, W: iw, H: ih})
			x += iw + s.pad
		}
	}

	if p.font != nil {
		for _, line := range s.lines {
			if line == "" {
				y += int32(p.font.Height())
				continue
			}
			tex, w, h := p.textTexture(line, s.fg)
			if tex == nil {
				continue
			}
			tex.SetAlphaMod(alpha)
			r.Copy(tex, nil, &sdl.Rect{X: x, Y: y, W: w, H: h})
			y += h
		}
	}

	if s == focus {
		c := p.accent
		r.SetDrawColor(c.R, c.G, c.B, alpha)
		for i := int32(0); i < focusBorder; i++ {
			r.DrawRect(&sdl.Rect{X: rect.X + i, Y: rect.Y + i, W: rect.W - 2*i, H: rect.H - 2*i})
		}
	}

	p.drawChildren(&s.Node, rect.X, rect.Y, alpha, focus)
}

func (p *Provider) drawChildren(n *toolkit.Node, offX, offY int32, alpha uint8, focus *Surface) {
	for _, c := range n.Children() {
		p.drawSurface(c.Owner().(*Surface), offX, offY, alpha, focus)
	}
}

func (p *Provider) textTexture(text string, fg color.RGBA) (*sdl.Texture, int32, int32) {
	if fg.A == 0 {
		fg.A = 255
	}
	key := fmt.Sprintf("%s|%02x%02x%02x%02x", text, fg.R, fg.G, fg.B, fg.A)

	if tex := p.text.get(key); tex != nil {
		_, _, w, h, err := tex.Query()
		if err == nil {
			return tex, w, h
		}
	}

	surface, err := p.font.RenderUTF8Blended(text, sdl.Color{R: fg.R, G: fg.G, B: fg.B, A: fg.A})
	if err != nil {
		p.logger.Error("Failed to render text", "text", text, "error", err)
		return nil, 0, 0
	}
	defer surface.Free()

	tex, err := p.window.Renderer.CreateTextureFromSurface(surface)
	if err != nil {
		p.logger.Error("Failed to create text texture", "error", err)
		return nil, 0, 0
	}
	p.text.put(key, tex)
	return tex, surface.W, surface.H
}

func scale(a, alpha uint8) uint8 {
	return uint8(uint16(a) * uint16(alpha) / 255)
}
