package app

import (
	"github.com/rs/zerolog/log"

	"github.com/ftl/aliascope/core"
	"github.com/ftl/aliascope/core/dsp"
)

// State of the controller.
type State int

// All controller states.
const (
	Idle State = iota
	Recomputing
)

func (s State) String() string {
	if s == Recomputing {
		return "recomputing"
	}
	return "idle"
}

// View renders frames.
type View interface {
	ShowFrame(core.Frame)
}

// FrameAvailable is called when a new frame was computed.
type FrameAvailable func(core.Frame)

// New returns a new controller for the given configuration.
func New(configuration core.Configuration) (*Controller, error) {
	analyzer, err := dsp.NewAnalyzer(configuration.FFT, configuration.Window)
	if err != nil {
		return nil, err
	}

	return &Controller{
		configuration: configuration,
		analyzer:      analyzer,
		parameters:    configuration.DefaultParameters(),
	}, nil
}

// Controller owns the parameters and recomputes the frame whenever one of them changes.
type Controller struct {
	configuration core.Configuration
	analyzer      *dsp.Analyzer

	parameters core.Parameters
	state      State
	frame      core.Frame
	pending    []core.ParameterChange

	frameAvailableCallbacks []FrameAvailable
}

// AddView registers the given view to be notified about every new frame.
func (c *Controller) AddView(view View) {
	c.OnFrameAvailable(view.ShowFrame)
}

// OnFrameAvailable registers the given callback to be notified about every new frame.
func (c *Controller) OnFrameAvailable(f FrameAvailable) {
	c.frameAvailableCallbacks = append(c.frameAvailableCallbacks, f)
}

// Startup computes and publishes the initial frame.
func (c *Controller) Startup() {
	c.recompute()
}

// Handle the given parameter change.
func (c *Controller) Handle(change core.ParameterChange) {
	if c.state == Recomputing {
		c.pending = append(c.pending, change)
		return
	}
	if !c.apply(change) {
		return
	}
	c.recompute()
}

func (c *Controller) apply(change core.ParameterChange) bool {
	value := c.configuration.Range(change.Parameter).Clamp(change.Value)

	var current *core.Frequency
	switch change.Parameter {
	case core.SignalFrequency:
		current = &c.parameters.SignalFrequency
	case core.SampleRate:
		current = &c.parameters.SampleRate
	default:
		log.Warn().Int("parameter", int(change.Parameter)).Msg("unknown parameter")
		return false
	}

	if *current == value {
		return false
	}
	*current = value
	return true
}

func (c *Controller) recompute() {
	c.state = Recomputing
	defer func() { c.state = Idle }()

	for {
		c.frame = c.analyzer.Compute(c.parameters, c.configuration.Duration, c.configuration.ContinuousResolution)
		log.Debug().
			Float64("f", float64(c.parameters.SignalFrequency)).
			Float64("fs", float64(c.parameters.SampleRate)).
			Int("samples", c.frame.Sampled.Len()).
			Bool("aliased", c.parameters.Aliased()).
			Msg("frame computed")

		for _, frameAvailable := range c.frameAvailableCallbacks {
			frameAvailable(c.frame)
		}

		if !c.applyPending() {
			return
		}
	}
}

// applyPending applies the next queued change that actually modifies the parameters.
func (c *Controller) applyPending() bool {
	for len(c.pending) > 0 {
		change := c.pending[0]
		c.pending = c.pending[1:]
		if c.apply(change) {
			return true
		}
	}
	return false
}

// SetSignalFrequency to the given value.
func (c *Controller) SetSignalFrequency(f core.Frequency) {
	c.Handle(core.ParameterChange{Parameter: core.SignalFrequency, Value: f})
}

// SetSampleRate to the given value.
func (c *Controller) SetSampleRate(fs core.Frequency) {
	c.Handle(core.ParameterChange{Parameter: core.SampleRate, Value: fs})
}

// SignalFrequencyUp by one coarse step.
func (c *Controller) SignalFrequencyUp() {
	c.SetSignalFrequency(c.parameters.SignalFrequency + c.configuration.CoarseStep)
}

// SignalFrequencyDown by one coarse step.
func (c *Controller) SignalFrequencyDown() {
	c.SetSignalFrequency(c.parameters.SignalFrequency - c.configuration.CoarseStep)
}

// FineSignalFrequencyUp by one fine step.
func (c *Controller) FineSignalFrequencyUp() {
	c.SetSignalFrequency(c.parameters.SignalFrequency + c.configuration.FineStep)
}

// FineSignalFrequencyDown by one fine step.
func (c *Controller) FineSignalFrequencyDown() {
	c.SetSignalFrequency(c.parameters.SignalFrequency - c.configuration.FineStep)
}

// SampleRateUp by one coarse step.
func (c *Controller) SampleRateUp() {
	c.SetSampleRate(c.parameters.SampleRate + c.configuration.CoarseStep)
}

// SampleRateDown by one coarse step.
func (c *Controller) SampleRateDown() {
	c.SetSampleRate(c.parameters.SampleRate - c.configuration.CoarseStep)
}

// FineSampleRateUp by one fine step.
func (c *Controller) FineSampleRateUp() {
	c.SetSampleRate(c.parameters.SampleRate + c.configuration.FineStep)
}

// FineSampleRateDown by one fine step.
func (c *Controller) FineSampleRateDown() {
	c.SetSampleRate(c.parameters.SampleRate - c.configuration.FineStep)
}

// Reset both parameters to their defaults.
func (c *Controller) Reset() {
	defaults := c.configuration.DefaultParameters()
	c.SetSignalFrequency(defaults.SignalFrequency)
	c.SetSampleRate(defaults.SampleRate)
}

// Parameters currently in use.
func (c *Controller) Parameters() core.Parameters {
	return c.parameters
}

// Frame computed last.
func (c *Controller) Frame() core.Frame {
	return c.frame
}

// State of the controller.
func (c *Controller) State() State {
	return c.state
}

// Configuration of the controller.
func (c *Controller) Configuration() core.Configuration {
	return c.configuration
}
