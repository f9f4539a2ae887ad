package dsp

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
	"gonum.org/v1/gonum/floats"

	"github.com/ftl/aliascope/core"
)

var labels = message.NewPrinter(language.English)

// hz formats a frequency value for a label, without digit grouping.
func hz(f core.Frequency) number.Formatter {
	return number.Decimal(float64(f), number.NoSeparator())
}

// Markers for the signal frequency, the sample rate and the Nyquist frequency.
func Markers(signalFrequency, sampleRate core.Frequency) core.Markers {
	nyquist := sampleRate / 2
	return core.Markers{
		Signal: core.Marker{
			Kind:      core.SignalMarker,
			Frequency: signalFrequency,
			Label:     labels.Sprintf("f = %.0f Hz", hz(signalFrequency)),
		},
		Sampling: core.Marker{
			Kind:      core.SamplingMarker,
			Frequency: sampleRate,
			Label:     labels.Sprintf("fs = %.0f Hz", hz(sampleRate)),
		},
		Nyquist: core.Marker{
			Kind:      core.NyquistMarker,
			Frequency: nyquist,
			Label:     labels.Sprintf("fs/2 = %.1f Hz", hz(nyquist)),
		},
	}
}

// AliasFrequency folds the signal frequency into (-sampleRate/2, sampleRate/2]. The absolute value
// of the result is the frequency at which the sampled signal appears in the spectrum.
func AliasFrequency(signalFrequency, sampleRate core.Frequency) core.Frequency {
	fs := float64(sampleRate)
	folded := math.Mod(float64(signalFrequency)+fs/2, fs)
	if folded < 0 {
		folded += fs
	}
	folded -= fs / 2
	if folded == -fs/2 {
		folded = fs / 2
	}
	return core.Frequency(folded)
}

// Peak in a spectrum.
type Peak struct {
	Bin       int
	Frequency core.Frequency
	Magnitude float64
}

// DominantPeak returns the bin with the largest magnitude, the DC bin excluded. The second
// result is false if the spectrum has no bins besides DC.
func DominantPeak(spectrum core.Spectrum) (Peak, bool) {
	if len(spectrum.Magnitudes) < 2 {
		return Peak{}, false
	}
	bin := floats.MaxIdx(spectrum.Magnitudes[1:]) + 1
	return Peak{
		Bin:       bin,
		Frequency: spectrum.Frequencies[bin],
		Magnitude: spectrum.Magnitudes[bin],
	}, true
}

// DC returns the magnitude of the DC component of the given samples.
func DC(samples []float64) float64 {
	return math.Abs(floats.Sum(samples))
}
