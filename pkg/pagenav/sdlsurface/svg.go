package sdlsurface

import (
	"fmt"
	"image"
	"io"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/sdl"
)

// LoadSVG rasterizes the SVG at path into a size x size texture.
// The caller owns the texture.
func (p *Provider) LoadSVG(path string, size int) (*sdl.Texture, error) {
	icon, err := oksvg.ReadIcon(path, oksvg.WarnErrorMode)
	if err != nil {
		return nil, fmt.Errorf("read svg %s: %w", path, err)
	}
	return p.rasterize(icon, size)
}

// ReadSVG is LoadSVG for an SVG document held in r.
func (p *Provider) ReadSVG(r io.Reader, size int) (*sdl.Texture, error) {
	icon, err := oksvg.ReadIconStream(r, oksvg.WarnErrorMode)
	if err != nil {
		return nil, fmt.Errorf("read svg: %w", err)
	}
	return p.rasterize(icon, size)
}

func (p *Provider) rasterize(icon *oksvg.SvgIcon, size int) (*sdl.Texture, error) {
	icon.SetTarget(0, 0, float64(size), float64(size))

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(size, size, scanner), 1)

	surface, err := sdl.CreateRGBSurfaceWithFormat(0, int32(size), int32(size), 32, uint32(sdl.PIXELFORMAT_ABGR8888))
	if err != nil {
		return nil, fmt.Errorf("create surface: %w", err)
	}
	defer surface.Free()

	if err := surface.Lock(); err != nil {
		return nil, fmt.Errorf("lock surface: %w", err)
	}
	pixels := surface.Pixels()
	for row := 0; row < size; row++ {
		src := img.Pix[row*img.Stride : row*img.Stride+size*4]
		copy(pixels[row*int(surface.Pitch):], src)
	}
	surface.Unlock()

	tex, err := p.window.Renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, fmt.Errorf("create texture: %w", err)
	}
	tex.SetBlendMode(sdl.BLENDMODE_BLEND)
	return tex, nil
}
