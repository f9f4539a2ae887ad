package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ftl/aliascope/core"
	"github.com/ftl/aliascope/core/cfg"
)

func newTestController(t *testing.T) (*Controller, *recordingView) {
	configuration := cfg.Static()
	configuration.ContinuousResolution = 100
	controller, err := New(configuration)
	require.NoError(t, err)
	view := new(recordingView)
	controller.AddView(view)
	return controller, view
}

func TestStartupComputesInitialFrame(t *testing.T) {
	controller, view := newTestController(t)

	controller.Startup()

	require.Len(t, view.frames, 1)
	frame := view.frames[0]
	assert.Equal(t, core.Parameters{SignalFrequency: 1000, SampleRate: 20000}, frame.Parameters)
	assert.Equal(t, 100, frame.Continuous.Len())
	assert.Equal(t, 2000, frame.Sampled.Len())
	assert.Equal(t, 2000, frame.Spectrum.Len())
	assert.Equal(t, core.Frequency(10000), frame.Markers.Nyquist.Frequency)
	assert.Equal(t, Idle, controller.State())
	assert.Equal(t, frame, controller.Frame())
}

func TestParameterChangeRecomputes(t *testing.T) {
	controller, view := newTestController(t)

	controller.SetSignalFrequency(5000)
	controller.SetSampleRate(10000)

	require.Len(t, view.frames, 2)
	assert.Equal(t, core.Parameters{SignalFrequency: 5000, SampleRate: 20000}, view.frames[0].Parameters)
	assert.Equal(t, core.Parameters{SignalFrequency: 5000, SampleRate: 10000}, view.frames[1].Parameters)
	assert.Equal(t, 1000, view.frames[1].Sampled.Len())
	assert.Equal(t, core.Frequency(5000), view.frames[1].Markers.Signal.Frequency)
	assert.Equal(t, core.Frequency(5000), view.frames[1].Markers.Nyquist.Frequency)
}

func TestUnchangedValueIsNoChange(t *testing.T) {
	controller, view := newTestController(t)

	controller.SetSignalFrequency(1000)
	controller.SetSampleRate(20000)

	assert.Empty(t, view.frames)
}

func TestValuesAreClamped(t *testing.T) {
	tt := []struct {
		name     string
		change   core.ParameterChange
		expected core.Parameters
	}{
		{"negative frequency", core.ParameterChange{Parameter: core.SignalFrequency, Value: -1}, core.Parameters{SignalFrequency: 1, SampleRate: 20000}},
		{"frequency too high", core.ParameterChange{Parameter: core.SignalFrequency, Value: 1e6}, core.Parameters{SignalFrequency: 100000, SampleRate: 20000}},
		{"zero sample rate", core.ParameterChange{Parameter: core.SampleRate, Value: 0}, core.Parameters{SignalFrequency: 1000, SampleRate: 10}},
		{"sample rate too high", core.ParameterChange{Parameter: core.SampleRate, Value: 1e6}, core.Parameters{SignalFrequency: 1000, SampleRate: 50000}},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			controller, view := newTestController(t)

			controller.Handle(tc.change)

			assert.Equal(t, tc.expected, controller.Parameters())
			require.Len(t, view.frames, 1)
			assert.True(t, view.frames[0].Sampled.Len() > 0)
		})
	}
}

func TestSteps(t *testing.T) {
	controller, _ := newTestController(t)

	controller.SignalFrequencyUp()
	assert.Equal(t, core.Frequency(2000), controller.Parameters().SignalFrequency)
	controller.FineSignalFrequencyDown()
	assert.Equal(t, core.Frequency(1990), controller.Parameters().SignalFrequency)
	controller.FineSignalFrequencyUp()
	controller.SignalFrequencyDown()
	assert.Equal(t, core.Frequency(1000), controller.Parameters().SignalFrequency)

	controller.SampleRateUp()
	assert.Equal(t, core.Frequency(21000), controller.Parameters().SampleRate)
	controller.FineSampleRateDown()
	assert.Equal(t, core.Frequency(20990), controller.Parameters().SampleRate)
	controller.FineSampleRateUp()
	controller.SampleRateDown()
	assert.Equal(t, core.Frequency(20000), controller.Parameters().SampleRate)

	controller.SetSampleRate(50000)
	controller.SampleRateUp()
	assert.Equal(t, core.Frequency(50000), controller.Parameters().SampleRate)
}

func TestReset(t *testing.T) {
	controller, _ := newTestController(t)
	controller.SetSignalFrequency(30000)
	controller.SetSampleRate(100)

	controller.Reset()

	assert.Equal(t, core.Parameters{SignalFrequency: 1000, SampleRate: 20000}, controller.Parameters())
}

func TestChangeDuringRecomputationIsQueued(t *testing.T) {
	controller, view := newTestController(t)
	var states []State
	controller.OnFrameAvailable(func(frame core.Frame) {
		states = append(states, controller.State())
		if frame.Parameters == (core.Parameters{SignalFrequency: 5000, SampleRate: 20000}) {
			controller.SetSampleRate(12000)
			controller.SetSampleRate(12000)
			controller.SetSignalFrequency(7000)
		}
	})

	controller.SetSignalFrequency(5000)

	require.Len(t, view.frames, 3)
	assert.Equal(t, core.Parameters{SignalFrequency: 5000, SampleRate: 20000}, view.frames[0].Parameters)
	assert.Equal(t, core.Parameters{SignalFrequency: 5000, SampleRate: 12000}, view.frames[1].Parameters)
	assert.Equal(t, core.Parameters{SignalFrequency: 7000, SampleRate: 12000}, view.frames[2].Parameters)
	assert.Equal(t, []State{Recomputing, Recomputing, Recomputing}, states)
	assert.Equal(t, Idle, controller.State())
}

func TestIdenticalParametersGiveIdenticalFrames(t *testing.T) {
	controller, view := newTestController(t)

	controller.SetSignalFrequency(1234)
	controller.SetSignalFrequency(1000)
	controller.SetSignalFrequency(1234)

	require.Len(t, view.frames, 3)
	assert.Equal(t, view.frames[0], view.frames[2])
}

func TestNewRejectsUnknownFFT(t *testing.T) {
	configuration := cfg.Static()
	configuration.FFT = "fftw"

	_, err := New(configuration)

	assert.Error(t, err)
}

type recordingView struct {
	frames []core.Frame
}

func (v *recordingView) ShowFrame(frame core.Frame) {
	v.frames = append(v.frames, frame)
}
