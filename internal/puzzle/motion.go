package puzzle

import (
	"fmt"
	"math"
	"sort"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/fifteen/internal/config"
)

// Motion produces the travelled distance of a slide, one tick at a time.
type Motion interface {
	// Advance moves one tick and returns the distance travelled so far and
	// whether the slide has reached its end. The offset may overshoot the
	// slide distance on the final tick.
	Advance() (offset int, done bool)
}

// MotionFactory creates a Motion covering distance pixels.
type MotionFactory func(distance int) Motion

// stepMotion moves a fixed number of pixels per tick.
type stepMotion struct {
	step     int
	distance int
	offset   int
}

func (m *stepMotion) Advance() (int, bool) {
	m.offset += m.step
	return m.offset, m.offset >= m.distance
}

// StepMotion returns a factory for fixed-step motion.
func StepMotion(step int) MotionFactory {
	return func(distance int) Motion {
		return &stepMotion{step: step, distance: distance}
	}
}

// tweenMotion follows an easing curve over a fixed duration.
type tweenMotion struct {
	tween *gween.Tween
	dt    float32
}

func (m *tweenMotion) Advance() (int, bool) {
	v, finished := m.tween.Update(m.dt)
	return int(math.Round(float64(v))), finished
}

// TweenMotion returns a factory for eased motion lasting duration seconds,
// advanced at tickRate ticks per second.
func TweenMotion(duration float64, fn ease.TweenFunc, tickRate int) MotionFactory {
	dt := float32(1) / float32(tickRate)
	return func(distance int) Motion {
		return &tweenMotion{
			tween: gween.New(0, float32(distance), float32(duration), fn),
			dt:    dt,
		}
	}
}

var easings = map[string]ease.TweenFunc{
	"linear":       ease.Linear,
	"in_quad":      ease.InQuad,
	"out_quad":     ease.OutQuad,
	"in_out_quad":  ease.InOutQuad,
	"in_cubic":     ease.InCubic,
	"out_cubic":    ease.OutCubic,
	"in_out_cubic": ease.InOutCubic,
	"out_bounce":   ease.OutBounce,
}

// Easing looks up an easing function by name.
func Easing(name string) (ease.TweenFunc, error) {
	fn, ok := easings[name]
	if !ok {
		return nil, fmt.Errorf("unknown easing %q (known: %v)", name, EasingNames())
	}
	return fn, nil
}

// EasingNames returns the known easing names, sorted.
func EasingNames() []string {
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MotionFromConfig builds the factory selected by cfg.
func MotionFromConfig(cfg config.AnimationConfig, tickRate int) (MotionFactory, error) {
	switch cfg.Mode {
	case config.AnimationStep:
		return StepMotion(cfg.Step), nil
	case config.AnimationTween:
		fn, err := Easing(cfg.Easing)
		if err != nil {
			return nil, err
		}
		if tickRate <= 0 {
			return nil, fmt.Errorf("tick rate must be positive, got %d", tickRate)
		}
		return TweenMotion(cfg.Duration, fn, tickRate), nil
	default:
		return nil, fmt.Errorf("unknown animation mode %q", cfg.Mode)
	}
}
