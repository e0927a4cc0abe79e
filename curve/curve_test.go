package curve

import (
	"math"
	"testing"

	"github.com/oliverbestmann/byke/bykebiten/color"
	"github.com/oliverbestmann/byke/gm"
	"github.com/stretchr/testify/require"
)

func TestLerpFloat(t *testing.T) {
	require.Equal(t, 1.0, LerpFloat(0, 1.0, 3.0))
	require.Equal(t, 3.0, LerpFloat(1, 1.0, 3.0))
	require.Equal(t, 2.0, LerpFloat(0.5, 1.0, 3.0))
}

func TestLerpVec(t *testing.T) {
	lhs := gm.Vec{X: 0, Y: 10}
	rhs := gm.Vec{X: 10, Y: -10}
	require.Equal(t, lhs, LerpVec(0, lhs, rhs))
	require.Equal(t, rhs, LerpVec(1, lhs, rhs))
	require.Equal(t, gm.Vec{X: 5, Y: 0}, LerpVec(0.5, lhs, rhs))
}

func TestLerpColor(t *testing.T) {
	mid := LerpColor(0.5, color.Black, color.White)
	require.InDelta(t, 0.5, mid.R, 1e-6)
	require.InDelta(t, 0.5, mid.G, 1e-6)
	require.InDelta(t, 0.5, mid.B, 1e-6)
	require.InDelta(t, 1.0, mid.A, 1e-6)
}

func TestLerpAngleShortestArc(t *testing.T) {
	// crossing the -pi/pi seam must not take the long way around
	lhs := gm.Rad(math.Pi - 0.1)
	rhs := gm.Rad(-math.Pi + 0.1)
	mid := LerpAngle(0.5, lhs, rhs).Normalized()
	require.InDelta(t, math.Pi, math.Abs(mid.Radians()), 1e-6)
}

func TestCurveEmpty(t *testing.T) {
	var c Curve[float64]
	require.False(t, c.HasValues())
	require.Equal(t, 0.0, c.ValueAt(0.5))
}

func TestCurveStaticValue(t *testing.T) {
	c := StaticValue(4.0)
	require.True(t, c.HasValues())
	require.Equal(t, 4.0, c.ValueAt(0))
	require.Equal(t, 4.0, c.ValueAt(0.7))
	require.Equal(t, 4.0, c.ValueAt(1))
}

func TestCurveValueAt(t *testing.T) {
	c := Curve[float64]{
		Lerper: LerpFloat[float64],
		Values: []Value[float64]{
			{Time: 0, Value: 0},
			{Time: 0.5, Value: 1},
			{Time: 1, Value: 0},
		},
	}

	require.Equal(t, 0.0, c.ValueAt(0))
	require.InDelta(t, 0.5, c.ValueAt(0.25), 1e-6)
	require.InDelta(t, 1.0, c.ValueAt(0.5), 1e-6)
	require.InDelta(t, 0.5, c.ValueAt(0.75), 1e-6)
	require.Equal(t, 0.0, c.ValueAt(1))

	// out of range clamps
	require.Equal(t, 0.0, c.ValueAt(-1))
	require.Equal(t, 0.0, c.ValueAt(2))
}

func TestCurveNilLerperSteps(t *testing.T) {
	c := Curve[float64]{
		Values: []Value[float64]{
			{Time: 0, Value: 1},
			{Time: 0.5, Value: 2},
			{Time: 1, Value: 3},
		},
	}

	require.Equal(t, 1.0, c.ValueAt(0.25))
	require.Equal(t, 2.0, c.ValueAt(0.75))
	require.Equal(t, 3.0, c.ValueAt(1))
}

func TestCurveEquidistant(t *testing.T) {
	c := Equidistant(LerpFloat[float64], 0, 1, 2, 3)
	require.Len(t, c.Values, 4)
	require.Equal(t, 0.0, c.Values[0].Time)
	require.InDelta(t, 1.0/3, c.Values[1].Time, 1e-6)
	require.InDelta(t, 2.0/3, c.Values[2].Time, 1e-6)
	require.Equal(t, 1.0, c.Values[3].Time)

	require.InDelta(t, 0.5, c.ValueAt(1.0/6), 1e-6)
}
