package tween

import "math"

// EaseFunction maps a linear progress ratio in the range [0, 1] to an eased
// ratio. All functions map 0 to 0 and 1 to 1; Back and Elastic overshoot
// in between.
type EaseFunction func(t float64) float64

func Linear(t float64) float64 { return t }

func QuadraticIn(t float64) float64  { return t * t }
func QuadraticOut(t float64) float64 { return t * (2 - t) }
func QuadraticInOut(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - 2*(1-t)*(1-t)
}

func CubicIn(t float64) float64  { return t * t * t }
func CubicOut(t float64) float64 { return 1 - CubicIn(1-t) }
func CubicInOut(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - 4*(1-t)*(1-t)*(1-t)
}

func QuarticIn(t float64) float64  { return t * t * t * t }
func QuarticOut(t float64) float64 { return 1 - QuarticIn(1-t) }
func QuarticInOut(t float64) float64 {
	if t < 0.5 {
		return 8 * t * t * t * t
	}
	return 1 - 8*QuarticIn(1-t)
}

func QuinticIn(t float64) float64  { return t * t * t * t * t }
func QuinticOut(t float64) float64 { return 1 - QuinticIn(1-t) }
func QuinticInOut(t float64) float64 {
	if t < 0.5 {
		return 16 * t * t * t * t * t
	}
	return 1 - 16*QuinticIn(1-t)
}

func SineIn(t float64) float64  { return 1 - math.Cos(t*math.Pi/2) }
func SineOut(t float64) float64 { return math.Sin(t * math.Pi / 2) }
func SineInOut(t float64) float64 {
	return 0.5 * (1 - math.Cos(t*math.Pi))
}

func CircularIn(t float64) float64  { return 1 - math.Sqrt(1-t*t) }
func CircularOut(t float64) float64 { return math.Sqrt(1 - (t-1)*(t-1)) }
func CircularInOut(t float64) float64 {
	if t < 0.5 {
		return 0.5 * (1 - math.Sqrt(1-4*t*t))
	}
	return 0.5 * (1 + math.Sqrt(1-4*(t-1)*(t-1)))
}

func ExponentialIn(t float64) float64 {
	if t <= 0 {
		return 0
	}
	return math.Pow(2, 10*t-10)
}

func ExponentialOut(t float64) float64 {
	if t >= 1 {
		return 1
	}
	return 1 - math.Pow(2, -10*t)
}

func ExponentialInOut(t float64) float64 {
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	case t < 0.5:
		return 0.5 * math.Pow(2, 20*t-10)
	default:
		return 1 - 0.5*math.Pow(2, 10-20*t)
	}
}

func ElasticIn(t float64) float64 {
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	default:
		return -math.Pow(2, 10*t-10) * math.Sin((t*10-10.75)*(2*math.Pi/3))
	}
}

func ElasticOut(t float64) float64 {
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	default:
		return math.Pow(2, -10*t)*math.Sin((t*10-0.75)*(2*math.Pi/3)) + 1
	}
}

func ElasticInOut(t float64) float64 {
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	case t < 0.5:
		return -0.5 * math.Pow(2, 20*t-10) * math.Sin((20*t-11.125)*(2*math.Pi/4.5))
	default:
		return 0.5*math.Pow(2, 10-20*t)*math.Sin((20*t-11.125)*(2*math.Pi/4.5)) + 1
	}
}

const backOvershoot = 1.70158

func BackIn(t float64) float64 {
	return (backOvershoot+1)*t*t*t - backOvershoot*t*t
}

func BackOut(t float64) float64 {
	u := t - 1
	return 1 + (backOvershoot+1)*u*u*u + backOvershoot*u*u
}

func BackInOut(t float64) float64 {
	const c = backOvershoot * 1.525

	if t < 0.5 {
		u := 2 * t
		return 0.5 * (u * u * ((c+1)*u - c))
	}

	u := 2*t - 2
	return 0.5 * (u*u*((c+1)*u+c) + 2)
}

func BounceIn(t float64) float64 { return 1 - BounceOut(1-t) }

func BounceOut(t float64) float64 {
	const n = 7.5625
	const d = 2.75

	switch {
	case t < 1/d:
		return n * t * t
	case t < 2/d:
		t -= 1.5 / d
		return n*t*t + 0.75
	case t < 2.5/d:
		t -= 2.25 / d
		return n*t*t + 0.9375
	default:
		t -= 2.625 / d
		return n*t*t + 0.984375
	}
}

func BounceInOut(t float64) float64 {
	if t < 0.5 {
		return 0.5 * BounceIn(2*t)
	}
	return 0.5 + 0.5*BounceOut(2*t-1)
}
