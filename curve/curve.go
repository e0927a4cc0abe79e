// Package curve provides keyframe curves and linear interpolation helpers
// shared by the tween and burst plugins.
package curve

import (
	"github.com/oliverbestmann/byke/bykebiten/color"
	"github.com/oliverbestmann/byke/gm"
)

// Lerper does a linear interpolation between lhs and rhs using
// the factor f. A value for f of 0 returns lhs, a value of 1 returns rhs.
type Lerper[T any] func(f float64, lhs, rhs T) T

func LerpFloat[T ~float32 | ~float64](f float64, lhs, rhs T) T {
	return (rhs-lhs)*T(f) + lhs
}

func LerpVec(f float64, lhs, rhs gm.Vec) gm.Vec {
	return lhs.Add(rhs.Sub(lhs).Mul(f))
}

func LerpColor(f float64, lhs, rhs color.Color) color.Color {
	return color.Color{
		R: LerpFloat(f, lhs.R, rhs.R),
		G: LerpFloat(f, lhs.G, rhs.G),
		B: LerpFloat(f, lhs.B, rhs.B),
		A: LerpFloat(f, lhs.A, rhs.A),
	}
}

// LerpAngle interpolates between two angles along the shortest arc.
func LerpAngle(f float64, lhs, rhs gm.Rad) gm.Rad {
	d := rhs.DifferenceTo(lhs)
	return lhs + gm.Rad(f)*d
}

// Curve is a piecewise linear curve over keyframe values with times
// normalized to the range [0, 1].
type Curve[T any] struct {
	// If the Lerper is nil, no lerping will be performed and the
	// nearest Value below is used. This is fine for static "one value"
	// curves.
	Lerper Lerper[T]

	Values []Value[T]
}

type Value[T any] struct {
	Time  float64
	Value T
}

// StaticValue returns a curve that evaluates to value everywhere.
func StaticValue[T any](value T) Curve[T] {
	return Curve[T]{
		Values: []Value[T]{{Value: value}},
	}
}

// Equidistant builds a curve with the given values spaced evenly over [0, 1].
func Equidistant[T any](lerper Lerper[T], firstValue, secondValue T, values ...T) Curve[T] {
	divider := float64(len(values) + 1)

	curveValues := make([]Value[T], 0, len(values)+2)

	curveValues = append(curveValues,
		Value[T]{Time: 0, Value: firstValue},
		Value[T]{Time: 1 / divider, Value: secondValue},
	)

	for idx, value := range values {
		curveValues = append(curveValues, Value[T]{
			Time:  float64(idx+2) / divider,
			Value: value,
		})
	}

	return Curve[T]{
		Lerper: lerper,
		Values: curveValues,
	}
}

func (c Curve[T]) HasValues() bool {
	return len(c.Values) > 0
}

// ValueAt samples the curve at time t. Times outside the keyed range
// clamp to the first or last value.
func (c Curve[T]) ValueAt(t float64) T {
	if len(c.Values) == 0 {
		var zeroValue T
		return zeroValue
	}

	if len(c.Values) == 1 {
		return c.Values[0].Value
	}

	if t <= c.Values[0].Time {
		return c.Values[0].Value
	}

	for idx := 0; idx < len(c.Values)-1; idx++ {
		lhs := c.Values[idx]
		rhs := c.Values[idx+1]
		if t >= rhs.Time {
			continue
		}

		if c.Lerper == nil {
			return lhs.Value
		}

		f := (t - lhs.Time) / (rhs.Time - lhs.Time)
		return c.Lerper(f, lhs.Value, rhs.Value)
	}

	return c.Values[len(c.Values)-1].Value
}
