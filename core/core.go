package core

import (
	"fmt"
	"math"
)

// Frequency represents a frequency in Hz.
type Frequency float64

func (f Frequency) String() string {
	return fmt.Sprintf("%.2fHz", f)
}

// FrequencyRange represents a range of frequencies.
type FrequencyRange struct {
	From, To Frequency
}

func (r FrequencyRange) String() string {
	return fmt.Sprintf("[%v,%v]", r.From, r.To)
}

// Width of the frequency range.
func (r FrequencyRange) Width() Frequency {
	return r.To - r.From
}

// Contains the given frequency.
func (r FrequencyRange) Contains(f Frequency) bool {
	return f >= r.From && f <= r.To
}

// Clamp the given frequency into this range.
func (r FrequencyRange) Clamp(f Frequency) Frequency {
	return Frequency(math.Max(float64(r.From), math.Min(float64(f), float64(r.To))))
}

// Parameter identifies one of the two adjustable parameters.
type Parameter int

// All parameters.
const (
	SignalFrequency Parameter = iota
	SampleRate
)

func (p Parameter) String() string {
	switch p {
	case SignalFrequency:
		return "signal frequency"
	case SampleRate:
		return "sample rate"
	default:
		return fmt.Sprintf("parameter(%d)", int(p))
	}
}

// ParameterChange is emitted by an input control when its value changes.
type ParameterChange struct {
	Parameter Parameter
	Value     Frequency
}

// Parameters of the demonstration.
type Parameters struct {
	SignalFrequency Frequency
	SampleRate      Frequency
}

// Nyquist frequency of the current sample rate.
func (p Parameters) Nyquist() Frequency {
	return p.SampleRate / 2
}

// Aliased reports if the signal lies above the Nyquist frequency.
func (p Parameters) Aliased() bool {
	return p.SampleRate < 2*p.SignalFrequency
}

// Waveform as parallel sequences of time (s) and amplitude.
type Waveform struct {
	Time      []float64
	Amplitude []float64
}

// Len returns the number of points.
func (w Waveform) Len() int {
	return len(w.Time)
}

// Spectrum as parallel sequences of frequency bins and magnitudes.
type Spectrum struct {
	Frequencies []Frequency
	Magnitudes  []float64
}

// Len returns the number of bins.
func (s Spectrum) Len() int {
	return len(s.Frequencies)
}

// MaxMagnitude of this spectrum, 0 for an empty spectrum.
func (s Spectrum) MaxMagnitude() float64 {
	result := 0.0
	for _, m := range s.Magnitudes {
		result = math.Max(result, m)
	}
	return result
}

// MarkerKind identifies a marker.
type MarkerKind int

// All marker kinds.
const (
	SignalMarker MarkerKind = iota
	SamplingMarker
	NyquistMarker
)

// Marker annotates the spectrum at a certain frequency.
type Marker struct {
	Kind      MarkerKind
	Frequency Frequency
	Label     string
}

// Markers of the signal, the sampling and the Nyquist frequency.
type Markers struct {
	Signal   Marker
	Sampling Marker
	Nyquist  Marker
}

// All markers in drawing order.
func (m Markers) All() []Marker {
	return []Marker{m.Nyquist, m.Sampling, m.Signal}
}

// Frame is the result of one full recomputation.
type Frame struct {
	Parameters Parameters
	Continuous Waveform
	Sampled    Waveform
	Spectrum   Spectrum
	Markers    Markers
}

// Configuration parameters of the application.
type Configuration struct {
	Duration             float64 // s
	ContinuousResolution int

	SignalFrequencyRange FrequencyRange
	SampleRateRange      FrequencyRange

	DefaultSignalFrequency Frequency
	DefaultSampleRate      Frequency

	CoarseStep Frequency
	FineStep   Frequency

	Window string
	FFT    string
}

// DefaultParameters returns the parameters at startup.
func (c Configuration) DefaultParameters() Parameters {
	return Parameters{
		SignalFrequency: c.SignalFrequencyRange.Clamp(c.DefaultSignalFrequency),
		SampleRate:      c.SampleRateRange.Clamp(c.DefaultSampleRate),
	}
}

// Range of the given parameter.
func (c Configuration) Range(p Parameter) FrequencyRange {
	if p == SampleRate {
		return c.SampleRateRange
	}
	return c.SignalFrequencyRange
}
