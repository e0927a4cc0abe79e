package burst

import (
	"image"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oliverbestmann/byke"
	"github.com/oliverbestmann/byke/bykebiten"
	"github.com/oliverbestmann/byke/bykebiten/color"
)

var whitePixel = sync.OnceValue(func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
})

var emptyImage = sync.OnceValue(func() *ebiten.Image {
	return ebiten.NewImage(1, 1)
})

type renderScratch struct {
	vertices []ebiten.Vertex
	indices  []uint16
}

// quadIndices returns the shared index buffer for count quads.
func (r *renderScratch) quadIndices(count int) []uint16 {
	for quad := len(r.indices) / 6; quad < count; quad++ {
		base := uint16(quad * 4)
		r.indices = append(r.indices,
			base, base+1, base+2,
			base+1, base+3, base+2,
		)
	}

	return r.indices[:count*6]
}

func renderEffectsSystem(
	effects byke.Query[struct {
		Effect     *Effect
		Sprite     *bykebiten.Sprite
		Visibility bykebiten.ComputedVisibility
	}],
	scratch *byke.Local[renderScratch],
) {
	for item := range effects.Items() {
		e := item.Effect

		e.ensureCanvas(item.Sprite)
		e.canvas.Clear()

		if e.alive == 0 || !item.Visibility.Visible {
			continue
		}

		texture := e.Texture
		if texture == nil {
			texture = whitePixel()
		}

		vertices := appendQuads(scratch.Value.vertices[:0], e, texture)
		scratch.Value.vertices = vertices

		e.canvas.DrawTriangles(vertices, scratch.Value.quadIndices(e.alive), texture, &ebiten.DrawTrianglesOptions{})
	}
}

func (e *Effect) ensureCanvas(sprite *bykebiten.Sprite) {
	w := max(1, int(e.Bounds.X))
	h := max(1, int(e.Bounds.Y))

	if e.canvas == nil || e.canvas.Bounds().Dx() != w || e.canvas.Bounds().Dy() != h {
		e.canvas = ebiten.NewImage(w, h)
	}

	if sprite.Image != e.canvas {
		sprite.Image = e.canvas
	}
}

// appendQuads builds one textured quad per live particle, sized by the
// scale curve and colored by the color curve at the particle's age.
// Vertex positions are canvas coordinates, the effect origin maps to the
// canvas center.
func appendQuads(vertices []ebiten.Vertex, e *Effect, texture *ebiten.Image) []ebiten.Vertex {
	bounds := texture.Bounds()
	srcX0, srcY0 := float32(bounds.Min.X), float32(bounds.Min.Y)
	srcX1, srcY1 := float32(bounds.Max.X), float32(bounds.Max.Y)

	center := e.Bounds.Mul(0.5)

	for idx := range e.alive {
		p := &e.buffer[idx]
		t := p.Age / p.Lifetime

		size := e.BaseSize
		if e.ScaleCurve.HasValues() {
			size = size.Mul(e.ScaleCurve.ValueAt(t))
		}

		col := color.White
		if e.ColorCurve.HasValues() {
			col = e.ColorCurve.ValueAt(t)
		}

		r, g, b, a := col.PremultipliedValues()

		half := size.Mul(0.5)
		pos := p.Position.Add(center)

		x0 := float32(pos.X - half.X)
		y0 := float32(pos.Y - half.Y)
		x1 := float32(pos.X + half.X)
		y1 := float32(pos.Y + half.Y)

		vertices = append(vertices,
			ebiten.Vertex{DstX: x0, DstY: y0, SrcX: srcX0, SrcY: srcY0, ColorR: r, ColorG: g, ColorB: b, ColorA: a},
			ebiten.Vertex{DstX: x1, DstY: y0, SrcX: srcX1, SrcY: srcY0, ColorR: r, ColorG: g, ColorB: b, ColorA: a},
			ebiten.Vertex{DstX: x0, DstY: y1, SrcX: srcX0, SrcY: srcY1, ColorR: r, ColorG: g, ColorB: b, ColorA: a},
			ebiten.Vertex{DstX: x1, DstY: y1, SrcX: srcX1, SrcY: srcY1, ColorR: r, ColorG: g, ColorB: b, ColorA: a},
		)
	}

	return vertices
}
