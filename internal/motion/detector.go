// Package motion turns raw sensor tag readings into input events: a "shake" from the accelerometer
// and press events from the two buttons.
package motion

import "time"

const (
	DefaultFilterTau = 100 * time.Millisecond
	DefaultCooldown  = 1000 * time.Millisecond
	DefaultThreshold = 0.8
)

type Options struct {
	FilterTau time.Duration
	Cooldown  time.Duration
	// Threshold is the magnitude of the filtered acceleration, in g, above which a sample is a shake.
	Threshold float64
}

func DefaultOptions() Options {
	return Options{
		FilterTau: DefaultFilterTau,
		Cooldown:  DefaultCooldown,
		Threshold: DefaultThreshold,
	}
}

// Buttons reports which buttons went from released to pressed on the last update.
type Buttons struct {
	Left  bool
	Right bool
}

func (that Buttons) Any() bool {
	return that.Left || that.Right
}

// Detector is not safe for concurrent use.
type Detector struct {
	filter     *HighPassFilter
	cooldownMs int
	threshold  float64

	// sinceShakeMs starts saturated so that the very first qualifying sample counts.
	sinceShakeMs int

	leftPressed  bool
	rightPressed bool
}

func NewDetector(opts Options) *Detector {
	cooldownMs := int(opts.Cooldown.Milliseconds())

	return &Detector{
		filter:       NewHighPassFilter(opts.FilterTau),
		cooldownMs:   cooldownMs,
		threshold:    opts.Threshold,
		sinceShakeMs: cooldownMs,
	}
}

// OnSample feeds one accelerometer reading and reports whether it completes a shake. Within the
// cooldown after a shake samples are still filtered but their magnitude is not checked. Readings with
// a NaN or infinite axis are dropped without touching the filter.
func (that *Detector) OnSample(periodMs int, acc Vector) bool {
	if !acc.IsFinite() {
		return false
	}

	filtered := that.filter.Apply(periodMs, acc)

	if that.sinceShakeMs < that.cooldownMs {
		that.sinceShakeMs += periodMs
		return false
	}

	if filtered.Norm() > that.threshold {
		that.sinceShakeMs = 0
		return true
	}

	return false
}

// OnButtonState feeds the current button levels and returns the rising edges.
func (that *Detector) OnButtonState(left, right bool) Buttons {
	edges := Buttons{
		Left:  left && !that.leftPressed,
		Right: right && !that.rightPressed,
	}

	that.leftPressed = left
	that.rightPressed = right

	return edges
}

// Reset returns the detector to its initial state.
func (that *Detector) Reset() {
	that.filter.Reset()
	that.sinceShakeMs = that.cooldownMs
	that.leftPressed = false
	that.rightPressed = false
}
