package cfg

import (
	"os"

	"github.com/ftl/hamradio/cfg"
	"github.com/pkg/errors"

	"github.com/ftl/aliascope/core"
	"github.com/ftl/aliascope/core/dsp"
)

const (
	duration               cfg.Key = "aliascope.duration"
	continuousResolution   cfg.Key = "aliascope.continuousResolution"
	signalFrequencyFrom    cfg.Key = "aliascope.signalFrequency.from"
	signalFrequencyTo      cfg.Key = "aliascope.signalFrequency.to"
	signalFrequencyDefault cfg.Key = "aliascope.signalFrequency.default"
	sampleRateFrom         cfg.Key = "aliascope.sampleRate.from"
	sampleRateTo           cfg.Key = "aliascope.sampleRate.to"
	sampleRateDefault      cfg.Key = "aliascope.sampleRate.default"
	coarseStep             cfg.Key = "aliascope.step.coarse"
	fineStep               cfg.Key = "aliascope.step.fine"
	window                 cfg.Key = "aliascope.window"
	fft                    cfg.Key = "aliascope.fft"
)

// Load the configuration from the hamradio configuration file. Keys that are not set fall back
// to the static defaults. If the file does not exist, the returned error satisfies IsMissing.
func Load() (core.Configuration, error) {
	configuration, err := cfg.LoadDefault()
	if err != nil {
		return core.Configuration{}, errors.Wrap(err, "cannot load configuration")
	}
	return load(configuration)
}

// IsMissing reports whether the given error of Load means there is no configuration file.
func IsMissing(err error) bool {
	return err != nil && os.IsNotExist(errors.Cause(err))
}

func load(configuration cfg.Configuration) (core.Configuration, error) {
	defaults := Static()
	r := reader{configuration: configuration}
	result := core.Configuration{
		Duration:             r.number(duration, defaults.Duration),
		ContinuousResolution: int(r.number(continuousResolution, float64(defaults.ContinuousResolution))),
		SignalFrequencyRange: core.FrequencyRange{
			From: core.Frequency(r.number(signalFrequencyFrom, float64(defaults.SignalFrequencyRange.From))),
			To:   core.Frequency(r.number(signalFrequencyTo, float64(defaults.SignalFrequencyRange.To))),
		},
		SampleRateRange: core.FrequencyRange{
			From: core.Frequency(r.number(sampleRateFrom, float64(defaults.SampleRateRange.From))),
			To:   core.Frequency(r.number(sampleRateTo, float64(defaults.SampleRateRange.To))),
		},
		DefaultSignalFrequency: core.Frequency(r.number(signalFrequencyDefault, float64(defaults.DefaultSignalFrequency))),
		DefaultSampleRate:      core.Frequency(r.number(sampleRateDefault, float64(defaults.DefaultSampleRate))),
		CoarseStep:             core.Frequency(r.number(coarseStep, float64(defaults.CoarseStep))),
		FineStep:               core.Frequency(r.number(fineStep, float64(defaults.FineStep))),
		Window:                 r.text(window, defaults.Window),
		FFT:                    r.text(fft, defaults.FFT),
	}
	if r.err != nil {
		return core.Configuration{}, r.err
	}
	if err := Validate(result); err != nil {
		return core.Configuration{}, errors.Wrap(err, "invalid configuration")
	}
	return result, nil
}

// reader keeps the first type error of a sequence of Get calls.
type reader struct {
	configuration cfg.Configuration
	err           error
}

func (r *reader) number(key cfg.Key, defaultValue float64) float64 {
	value := r.configuration.Get(key, defaultValue)
	result, ok := value.(float64)
	if !ok {
		r.typeError(key, value, "a number")
		return defaultValue
	}
	return result
}

func (r *reader) text(key cfg.Key, defaultValue string) string {
	value := r.configuration.Get(key, defaultValue)
	result, ok := value.(string)
	if !ok {
		r.typeError(key, value, "a string")
		return defaultValue
	}
	return result
}

func (r *reader) typeError(key cfg.Key, value interface{}, expected string) {
	if r.err != nil {
		return
	}
	r.err = errors.Errorf("%s must be %s, got %v (%T)", key, expected, value, value)
}

// Static returns the built-in configuration.
func Static() core.Configuration {
	return core.Configuration{
		Duration:               0.1,
		ContinuousResolution:   50000,
		SignalFrequencyRange:   core.FrequencyRange{From: 1, To: 100000},
		SampleRateRange:        core.FrequencyRange{From: 10, To: 50000},
		DefaultSignalFrequency: 1000,
		DefaultSampleRate:      20000,
		CoarseStep:             1000,
		FineStep:               10,
		Window:                 dsp.Rectangular,
		FFT:                    dsp.GoDSP,
	}
}

// Validate the given configuration. A valid configuration guarantees that every parameter pair
// reachable through the slider ranges yields at least one sample.
func Validate(c core.Configuration) error {
	if c.Duration <= 0 {
		return errors.Errorf("duration must be positive: %f", c.Duration)
	}
	if c.ContinuousResolution <= 0 {
		return errors.Errorf("continuous resolution must be positive: %d", c.ContinuousResolution)
	}
	if err := validateRange(core.SignalFrequency, c.SignalFrequencyRange); err != nil {
		return err
	}
	if err := validateRange(core.SampleRate, c.SampleRateRange); err != nil {
		return err
	}
	if dsp.SampleCount(c.SampleRateRange.From, c.Duration) < 1 {
		return errors.Errorf("%v at the lowest sample rate %v yields no samples", c.Duration, c.SampleRateRange.From)
	}
	if c.CoarseStep <= 0 || c.FineStep <= 0 {
		return errors.Errorf("steps must be positive: coarse %v, fine %v", c.CoarseStep, c.FineStep)
	}
	if _, err := dsp.NewAnalyzer(c.FFT, c.Window); err != nil {
		return errors.Wrap(err, "invalid spectrum analysis")
	}
	return nil
}

func validateRange(p core.Parameter, r core.FrequencyRange) error {
	if r.From <= 0 {
		return errors.Errorf("%v range must be positive: %v", p, r)
	}
	if r.Width() < 0 {
		return errors.Errorf("%v range is reversed: %v", p, r)
	}
	return nil
}
