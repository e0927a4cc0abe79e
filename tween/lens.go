package tween

import (
	"github.com/oliverbestmann/byke"
	"github.com/oliverbestmann/byke/bykebiten"
	"github.com/oliverbestmann/byke/bykebiten/color"
	"github.com/oliverbestmann/byke/gm"
	"github.com/oliverbestmann/byke-extras/curve"
)

// Lens writes an interpolated value into a subset of the fields of the
// target component. The ratio has already been sampled from the easing
// curve, the lens itself blends linearly between its endpoints.
type Lens[C byke.IsComponent[C]] interface {
	Lerp(target *C, ratio float64)
}

// LensFunc adapts a plain function to the Lens interface.
type LensFunc[C byke.IsComponent[C]] func(target *C, ratio float64)

func (fn LensFunc[C]) Lerp(target *C, ratio float64) {
	fn(target, ratio)
}

// TransformPositionLens animates the translation of a Transform.
type TransformPositionLens struct {
	Start, End gm.Vec
}

func (l TransformPositionLens) Lerp(target *bykebiten.Transform, ratio float64) {
	target.Translation = curve.LerpVec(ratio, l.Start, l.End)
}

// TransformRotationLens animates the rotation of a Transform along the
// shortest arc between the two angles.
type TransformRotationLens struct {
	Start, End gm.Rad
}

func (l TransformRotationLens) Lerp(target *bykebiten.Transform, ratio float64) {
	target.Rotation = curve.LerpAngle(ratio, l.Start, l.End)
}

// TransformScaleLens animates the scale of a Transform.
type TransformScaleLens struct {
	Start, End gm.Vec
}

func (l TransformScaleLens) Lerp(target *bykebiten.Transform, ratio float64) {
	target.Scale = curve.LerpVec(ratio, l.Start, l.End)
}

// ColorTintLens animates the ColorTint of an entity. Sprites, texts and
// meshes are all tinted through this component.
type ColorTintLens struct {
	Start, End color.Color
}

func (l ColorTintLens) Lerp(target *bykebiten.ColorTint, ratio float64) {
	target.Color = curve.LerpColor(ratio, l.Start, l.End)
}

// FillColorLens animates the fill color of a vector shape.
type FillColorLens struct {
	Start, End color.Color
}

func (l FillColorLens) Lerp(target *bykebiten.Fill, ratio float64) {
	target.Color = curve.LerpColor(ratio, l.Start, l.End)
}

// StrokeColorLens animates the stroke color of a vector shape.
type StrokeColorLens struct {
	Start, End color.Color
}

func (l StrokeColorLens) Lerp(target *bykebiten.Stroke, ratio float64) {
	target.Color = curve.LerpColor(ratio, l.Start, l.End)
}
