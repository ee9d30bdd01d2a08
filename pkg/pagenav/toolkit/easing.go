package toolkit

// Easing maps linear progress in [0,1] to eased progress in [0,1].
type Easing func(t float64) float64

// Linear is the identity curve.
func Linear(t float64) float64 {
	return clamp01(t)
}

// EaseOut decelerates toward the end (cubic).
func EaseOut(t float64) float64 {
	t = clamp01(t)
	inv := 1 - t
	return 1 - inv*inv*inv
}

// EaseInOut accelerates then decelerates (cubic).
func EaseInOut(t float64) float64 {
	t = clamp01(t)
	if t < 0.5 {
		return 4 * t * t * t
	}
	f := -2*t + 2
	return 1 - f*f*f/2
}

// Interpolate returns the value between from and to at eased progress t.
func Interpolate(from, to int32, t float64, easing Easing) int32 {
	if easing == nil {
		easing = Linear
	}
	p := easing(t)
	return from + int32(float64(to-from)*p+copySign(0.5, float64(to-from)))
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

func copySign(v, sign float64) float64 {
	if sign < 0 {
		return -v
	}
	return v
}
