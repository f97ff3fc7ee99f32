package terrain

import (
	"errors"
	"fmt"
	"sort"

	"github.com/tanema/gween/ease"

	"github.com/Aleod-m/PGE/math"
)

// Curve redistributes a normalized height in [0, 1].
type Curve func(t float64) float64

var ErrUnknownCurve = errors.New("terrain: unknown curve")

var curves = map[string]ease.TweenFunc{
	"linear":    ease.Linear,
	"quad":      ease.InOutQuad,
	"cubic":     ease.InOutCubic,
	"sine":      ease.InOutSine,
	"plateau":   ease.OutCubic,
	"bounce":    ease.OutBounce,
	"elastic":   ease.OutElastic,
	"valley":    ease.InCubic,
	"ridge-out": ease.OutQuad,
}

// CurveNames lists the names accepted by LookupCurve, sorted.
func CurveNames() []string {
	names := make([]string, 0, len(curves))
	for name := range curves {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func LookupCurve(name string) (Curve, error) {
	fn, ok := curves[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (want one of %v)", ErrUnknownCurve, name, CurveNames())
	}
	return fromTween(fn), nil
}

// fromTween adapts an easing function to the unit interval: begin 0, change 1,
// duration 1.
func fromTween(fn ease.TweenFunc) Curve {
	return func(t float64) float64 {
		return float64(fn(float32(t), 0, 1, 1))
	}
}

// Reshape normalizes the map and passes every sample through c.
func (hm *HeightMap) Reshape(c Curve) {
	hm.Normalize()
	for i, v := range hm.Data {
		hm.Data[i] = c(math.Clamp(v, 0, 1))
	}
}
