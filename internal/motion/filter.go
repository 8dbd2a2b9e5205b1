package motion

import "time"

// HighPassFilter is a first-order high-pass filter applied per axis. It removes gravity and slow
// tilt from accelerometer readings, leaving sudden changes.
//
//	y[n] = k * (y[n-1] + x[n] - x[n-1]),  k = tau / (tau + T)
type HighPassFilter struct {
	tau         float64
	initialized bool
	lastInput   Vector
	lastOutput  Vector
}

func NewHighPassFilter(tau time.Duration) *HighPassFilter {
	return &HighPassFilter{tau: float64(tau.Milliseconds())}
}

// Apply feeds one sample taken periodMs after the previous one and returns the filtered value. The
// first sample only primes the filter and yields a zero vector.
func (that *HighPassFilter) Apply(periodMs int, x Vector) Vector {
	if !that.initialized {
		that.lastInput = x
		that.lastOutput = Vector{}
		that.initialized = true
	}

	k := that.tau / (that.tau + float64(periodMs))
	y := that.lastOutput.Add(x).Sub(that.lastInput).Scale(k)

	that.lastInput = x
	that.lastOutput = y

	return y
}

// Reset forgets the signal history so that the next sample primes the filter again.
func (that *HighPassFilter) Reset() {
	that.initialized = false
	that.lastInput = Vector{}
	that.lastOutput = Vector{}
}
