package burst

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oliverbestmann/byke/bykebiten/color"
	"github.com/oliverbestmann/byke/gm"
	"github.com/oliverbestmann/byke-extras/curve"
	"github.com/stretchr/testify/require"
)

func TestQuadIndices(t *testing.T) {
	var scratch renderScratch

	indices := scratch.quadIndices(2)
	require.Equal(t, []uint16{
		0, 1, 2, 1, 3, 2,
		4, 5, 6, 5, 7, 6,
	}, indices)

	// shrinking reuses the shared buffer
	require.Equal(t, []uint16{0, 1, 2, 1, 3, 2}, scratch.quadIndices(1))
}

func TestAppendQuads(t *testing.T) {
	e := NewEffect(4, steadySpawner(0), Updater{})
	e.BaseSize = gm.VecSplat(10)
	e.Bounds = gm.Vec{X: 100, Y: 100}

	e.buffer[0] = Particle{Lifetime: 1}
	e.alive = 1

	texture := ebiten.NewImage(8, 8)

	vertices := appendQuads(nil, e, texture)
	require.Len(t, vertices, 4)

	// the particle sits at the effect origin, which maps to the canvas
	// center
	require.Equal(t, float32(45), vertices[0].DstX)
	require.Equal(t, float32(45), vertices[0].DstY)
	require.Equal(t, float32(55), vertices[3].DstX)
	require.Equal(t, float32(55), vertices[3].DstY)

	// texture coordinates span the full source image
	require.Equal(t, float32(0), vertices[0].SrcX)
	require.Equal(t, float32(8), vertices[3].SrcX)

	// default color is opaque white
	require.Equal(t, float32(1), vertices[0].ColorR)
	require.Equal(t, float32(1), vertices[0].ColorA)
}

func TestAppendQuadsSamplesCurves(t *testing.T) {
	e := NewEffect(4, steadySpawner(0), Updater{})
	e.BaseSize = gm.VecSplat(10)
	e.Bounds = gm.Vec{X: 100, Y: 100}
	e.ScaleCurve = curve.StaticValue(2.0)
	e.ColorCurve = curve.Curve[color.Color]{
		Lerper: curve.LerpColor,
		Values: []curve.Value[color.Color]{
			{Time: 0, Value: color.White},
			{Time: 1, Value: color.White.WithAlpha(0)},
		},
	}

	e.buffer[0] = Particle{Age: 0.5, Lifetime: 1}
	e.alive = 1

	vertices := appendQuads(nil, e, whitePixel())
	require.Len(t, vertices, 4)

	// scale curve doubles the quad size
	require.Equal(t, float32(40), vertices[0].DstX)
	require.Equal(t, float32(60), vertices[3].DstX)

	// half way through its lifetime the particle has faded to half alpha,
	// with premultiplied color channels
	require.InDelta(t, 0.5, vertices[0].ColorA, 1e-6)
	require.InDelta(t, 0.5, vertices[0].ColorR, 1e-6)
}

func steadyEffectForBench() *Effect {
	e := NewEffect(1000, steadySpawner(0), Updater{Gravity: gm.Vec{Y: 100}})
	e.EmitBurst(1000)
	e.spawn(1.0 / 60)
	return &e
}

func BenchmarkStep(b *testing.B) {
	e := steadyEffectForBench()

	b.ResetTimer()
	for range b.N {
		e.step(1.0 / 60)
	}
}

func BenchmarkAppendQuads(b *testing.B) {
	e := steadyEffectForBench()
	texture := whitePixel()

	var vertices []ebiten.Vertex

	b.ResetTimer()
	for range b.N {
		vertices = appendQuads(vertices[:0], e, texture)
	}
}
