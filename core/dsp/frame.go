package dsp

import (
	"github.com/ftl/aliascope/core"
)

// Compute the full frame for the given parameters: both waveforms, the spectrum and the markers.
func (a *Analyzer) Compute(parameters core.Parameters, duration float64, continuousResolution int) core.Frame {
	continuous, sampled := Sample(parameters.SignalFrequency, parameters.SampleRate, duration, continuousResolution)
	return core.Frame{
		Parameters: parameters,
		Continuous: continuous,
		Sampled:    sampled,
		Spectrum:   a.Analyze(sampled, parameters.SampleRate),
		Markers:    Markers(parameters.SignalFrequency, parameters.SampleRate),
	}
}
