// Package ease provides easing functions for animation timing.
//
// An easing function maps normalized time t in [0, 1] to an eased progress
// value, usually also in [0, 1] though the back and elastic families
// deliberately overshoot. All functions are pure and safe for concurrent use.
package ease

import "math"

// A Func maps normalized time to eased progress. Inputs outside [0, 1] are
// not validated; callers clamp where it matters.
type Func func(t float64) float64

// Linear returns t unchanged.
func Linear(t float64) float64 { return t }

// None holds the start value until t reaches 1.
func None(t float64) float64 {
	if t < 1 {
		return 0
	}
	return 1
}

// Step jumps from 0 to 1 at the midpoint.
func Step(t float64) float64 {
	if t < 0.5 {
		return 0
	}
	return 1
}

// Smooth is the classic smoothstep curve, 3t²−2t³.
func Smooth(t float64) float64 { return t * t * (3 - 2*t) }

func InQuad(t float64) float64  { return t * t }
func OutQuad(t float64) float64 { return 1 - (1-t)*(1-t) }
func InOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - math.Pow(-2*t+2, 2)/2
}

func InCubic(t float64) float64  { return t * t * t }
func OutCubic(t float64) float64 { return 1 - math.Pow(1-t, 3) }
func InOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

func InQuart(t float64) float64  { return t * t * t * t }
func OutQuart(t float64) float64 { return 1 - math.Pow(1-t, 4) }
func InOutQuart(t float64) float64 {
	if t < 0.5 {
		return 8 * t * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 4)/2
}

func InQuint(t float64) float64  { return t * t * t * t * t }
func OutQuint(t float64) float64 { return 1 - math.Pow(1-t, 5) }
func InOutQuint(t float64) float64 {
	if t < 0.5 {
		return 16 * t * t * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 5)/2
}

func InSine(t float64) float64  { return 1 - math.Cos(t*math.Pi/2) }
func OutSine(t float64) float64 { return math.Sin(t * math.Pi / 2) }
func InOutSine(t float64) float64 {
	return -(math.Cos(math.Pi*t) - 1) / 2
}

func InExpo(t float64) float64 {
	if t == 0 {
		return 0
	}
	return math.Pow(2, 10*t-10)
}
func OutExpo(t float64) float64 {
	if t == 1 {
		return 1
	}
	return 1 - math.Pow(2, -10*t)
}
func InOutExpo(t float64) float64 {
	switch {
	case t == 0:
		return 0
	case t == 1:
		return 1
	case t < 0.5:
		return math.Pow(2, 20*t-10) / 2
	default:
		return (2 - math.Pow(2, -20*t+10)) / 2
	}
}

func InCirc(t float64) float64  { return 1 - math.Sqrt(1-t*t) }
func OutCirc(t float64) float64 { return math.Sqrt(1 - (t-1)*(t-1)) }
func InOutCirc(t float64) float64 {
	if t < 0.5 {
		return (1 - math.Sqrt(1-4*t*t)) / 2
	}
	return (math.Sqrt(1-math.Pow(-2*t+2, 2)) + 1) / 2
}

func InBack(t float64) float64 {
	const c1 = 1.70158
	const c3 = c1 + 1
	return c3*t*t*t - c1*t*t
}
func OutBack(t float64) float64 {
	const c1 = 1.70158
	const c3 = c1 + 1
	return 1 + c3*math.Pow(t-1, 3) + c1*math.Pow(t-1, 2)
}
func InOutBack(t float64) float64 {
	const c1 = 1.70158
	const c2 = c1 * 1.525
	if t < 0.5 {
		return (math.Pow(2*t, 2) * ((c2+1)*2*t - c2)) / 2
	}
	return (math.Pow(2*t-2, 2)*((c2+1)*(2*t-2)+c2) + 2) / 2
}

func InElastic(t float64) float64 {
	const c4 = 2 * math.Pi / 3
	switch t {
	case 0:
		return 0
	case 1:
		return 1
	}
	return -math.Pow(2, 10*t-10) * math.Sin((t*10-10.75)*c4)
}
func OutElastic(t float64) float64 {
	const c4 = 2 * math.Pi / 3
	switch t {
	case 0:
		return 0
	case 1:
		return 1
	}
	return math.Pow(2, -10*t)*math.Sin((t*10-0.75)*c4) + 1
}
func InOutElastic(t float64) float64 {
	const c5 = 2 * math.Pi / 4.5
	switch {
	case t == 0:
		return 0
	case t == 1:
		return 1
	case t < 0.5:
		return -(math.Pow(2, 20*t-10) * math.Sin((20*t-11.125)*c5)) / 2
	default:
		return (math.Pow(2, -20*t+10)*math.Sin((20*t-11.125)*c5))/2 + 1
	}
}

func InBounce(t float64) float64 { return 1 - OutBounce(1-t) }
func OutBounce(t float64) float64 {
	const n1 = 7.5625
	const d1 = 2.75
	switch {
	case t < 1/d1:
		return n1 * t * t
	case t < 2/d1:
		t -= 1.5 / d1
		return n1*t*t + 0.75
	case t < 2.5/d1:
		t -= 2.25 / d1
		return n1*t*t + 0.9375
	default:
		t -= 2.625 / d1
		return n1*t*t + 0.984375
	}
}
func InOutBounce(t float64) float64 {
	if t < 0.5 {
		return (1 - OutBounce(1-2*t)) / 2
	}
	return (1 + OutBounce(2*t-1)) / 2
}

var byName = map[string]Func{
	"linear":         Linear,
	"none":           None,
	"step":           Step,
	"smooth":         Smooth,
	"in_quad":        InQuad,
	"out_quad":       OutQuad,
	"in_out_quad":    InOutQuad,
	"in_cubic":       InCubic,
	"out_cubic":      OutCubic,
	"in_out_cubic":   InOutCubic,
	"in_quart":       InQuart,
	"out_quart":      OutQuart,
	"in_out_quart":   InOutQuart,
	"in_quint":       InQuint,
	"out_quint":      OutQuint,
	"in_out_quint":   InOutQuint,
	"in_sine":        InSine,
	"out_sine":       OutSine,
	"in_out_sine":    InOutSine,
	"in_expo":        InExpo,
	"out_expo":       OutExpo,
	"in_out_expo":    InOutExpo,
	"in_circ":        InCirc,
	"out_circ":       OutCirc,
	"in_out_circ":    InOutCirc,
	"in_back":        InBack,
	"out_back":       OutBack,
	"in_out_back":    InOutBack,
	"in_elastic":     InElastic,
	"out_elastic":    OutElastic,
	"in_out_elastic": InOutElastic,
	"in_bounce":      InBounce,
	"out_bounce":     OutBounce,
	"in_out_bounce":  InOutBounce,
}

// ForName looks up an easing function by its configuration name, e.g.
// "in_out_cubic". The second return is false for unknown names.
func ForName(name string) (Func, bool) {
	f, ok := byName[name]
	return f, ok
}

// Names returns the known easing function names, unsorted.
func Names() []string {
	names := make([]string, 0, len(byName))
	for n := range byName {
		names = append(names, n)
	}
	return names
}
