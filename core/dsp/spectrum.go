package dsp

import (
	"math/cmplx"
	"sort"

	"github.com/mjibson/go-dsp/dsputils"
	dsp "github.com/mjibson/go-dsp/fft"
	"github.com/mjibson/go-dsp/window"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/ftl/aliascope/core"
)

// Names of the available FFT implementations.
const (
	GoDSP = "go-dsp"
	Gonum = "gonum"
)

// Names of the available window functions.
const (
	Rectangular = "rectangular"
	Hann        = "hann"
	Hamming     = "hamming"
	Blackman    = "blackman"
	Bartlett    = "bartlett"
	FlatTop     = "flattop"
)

// Transform computes the discrete Fourier transform of a real sequence.
type Transform func([]float64) []complex128

// WindowFunction returns the window coefficients for a block of the given length.
type WindowFunction func(int) []float64

var transforms = map[string]Transform{
	GoDSP: goDSPTransform,
	Gonum: gonumTransform,
}

var windows = map[string]WindowFunction{
	Rectangular: window.Rectangular,
	Hann:        window.Hann,
	Hamming:     window.Hamming,
	Blackman:    window.Blackman,
	Bartlett:    window.Bartlett,
	FlatTop:     window.FlatTop,
}

// Transforms returns the names of all FFT implementations.
func Transforms() []string {
	return sortedKeys(transforms)
}

// Windows returns the names of all window functions.
func Windows() []string {
	return sortedKeys(windows)
}

// Analyzer computes the two-sided magnitude spectrum of a sampled waveform.
type Analyzer struct {
	transform Transform
	window    WindowFunction
}

// NewAnalyzer returns a new analyzer using the named FFT implementation and window function.
// Empty names select go-dsp and the rectangular window.
func NewAnalyzer(fftName, windowName string) (*Analyzer, error) {
	if fftName == "" {
		fftName = GoDSP
	}
	if windowName == "" {
		windowName = Rectangular
	}
	transform, ok := transforms[fftName]
	if !ok {
		return nil, errors.Errorf("unknown FFT implementation %q, use one of %v", fftName, Transforms())
	}
	windowFunction, ok := windows[windowName]
	if !ok {
		return nil, errors.Errorf("unknown window function %q, use one of %v", windowName, Windows())
	}

	return &Analyzer{
		transform: transform,
		window:    windowFunction,
	}, nil
}

// Analyze the given sampled waveform. The result has one bin per sample.
func (a *Analyzer) Analyze(sampled core.Waveform, sampleRate core.Frequency) core.Spectrum {
	n := len(sampled.Amplitude)
	result := core.Spectrum{
		Frequencies: FrequencyBins(n, sampleRate),
		Magnitudes:  make([]float64, n),
	}
	if n == 0 {
		return result
	}

	samples := make([]float64, n)
	copy(samples, sampled.Amplitude)
	if n > 1 {
		window.Apply(samples, a.window)
	}

	for k, v := range a.transform(samples) {
		result.Magnitudes[k] = cmplx.Abs(v)
	}
	return result
}

// FrequencyBins returns the center frequency of each of the n bins of a DFT at the given sample rate.
// The first ceil(n/2) bins are positive, the remaining bins wrap to negative frequencies.
func FrequencyBins(n int, sampleRate core.Frequency) []core.Frequency {
	result := make([]core.Frequency, n)
	positive := (n + 1) / 2
	for k := range result {
		i := k
		if k >= positive {
			i = k - n
		}
		result[k] = core.Frequency(float64(i) * float64(sampleRate) / float64(n))
	}
	return result
}

func goDSPTransform(samples []float64) []complex128 {
	return dsp.FFTReal(samples)
}

func gonumTransform(samples []float64) []complex128 {
	fft := fourier.NewCmplxFFT(len(samples))
	return fft.Coefficients(nil, dsputils.ToComplex(samples))
}

func sortedKeys[T any](m map[string]T) []string {
	result := make([]string, 0, len(m))
	for k := range m {
		result = append(result, k)
	}
	sort.Strings(result)
	return result
}
