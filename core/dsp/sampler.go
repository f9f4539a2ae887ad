package dsp

import (
	"fmt"
	"math"

	"github.com/ftl/aliascope/core"
)

// sampleCountTolerance absorbs rounding in duration*sampleRate, e.g. 0.1s at 20kHz.
const sampleCountTolerance = 1e-9

// Sample the sine wave with the given frequency over the given duration. The continuous waveform
// has exactly continuousResolution points in [0, duration], the sampled waveform has one point
// every 1/sampleRate seconds in [0, duration).
func Sample(signalFrequency, sampleRate core.Frequency, duration float64, continuousResolution int) (continuous, sampled core.Waveform) {
	if sampleRate <= 0 {
		panic(fmt.Errorf("sample rate must be positive: %v", sampleRate))
	}
	if duration <= 0 {
		panic(fmt.Errorf("duration must be positive: %f", duration))
	}
	if continuousResolution <= 0 {
		panic(fmt.Errorf("continuous resolution must be positive: %d", continuousResolution))
	}

	return Continuous(signalFrequency, duration, continuousResolution), Sampled(signalFrequency, sampleRate, duration)
}

// Continuous returns resolution evenly spaced points of the sine wave, both ends of [0, duration] included.
func Continuous(signalFrequency core.Frequency, duration float64, resolution int) core.Waveform {
	result := core.Waveform{
		Time:      make([]float64, resolution),
		Amplitude: make([]float64, resolution),
	}
	if resolution == 1 {
		result.Amplitude[0] = sine(signalFrequency, 0)
		return result
	}

	step := duration / float64(resolution-1)
	for i := range result.Time {
		t := float64(i) * step
		if i == resolution-1 {
			t = duration
		}
		result.Time[i] = t
		result.Amplitude[i] = sine(signalFrequency, t)
	}
	return result
}

// Sampled returns the sine wave sampled at t = k/sampleRate for all t < duration.
func Sampled(signalFrequency, sampleRate core.Frequency, duration float64) core.Waveform {
	n := SampleCount(sampleRate, duration)
	result := core.Waveform{
		Time:      make([]float64, n),
		Amplitude: make([]float64, n),
	}
	for k := range result.Time {
		t := float64(k) / float64(sampleRate)
		result.Time[k] = t
		result.Amplitude[k] = sine(signalFrequency, t)
	}
	return result
}

// SampleCount returns the number of samples taken at the given rate over the given duration.
func SampleCount(sampleRate core.Frequency, duration float64) int {
	x := duration * float64(sampleRate)
	if x <= 0 {
		return 0
	}
	return int(math.Ceil(x - sampleCountTolerance))
}

func sine(f core.Frequency, t float64) float64 {
	return math.Sin(2 * math.Pi * float64(f) * t)
}
