package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ftl/aliascope/core"
	coreapp "github.com/ftl/aliascope/core/app"
	"github.com/ftl/aliascope/core/cfg"
	"github.com/ftl/aliascope/core/dsp"
	uiapp "github.com/ftl/aliascope/ui/app"
)

const envPrefix = "ALIASCOPE"

var rootCmd = &cobra.Command{
	Use:   "aliascope",
	Short: "Interactive demonstration of aliasing",
	Long: `aliascope shows a sine wave, its sampled version and the spectrum of the samples.
Change the signal frequency and the sampling rate with the keyboard and watch the
spectral peak fold back below the Nyquist frequency once the signal exceeds it.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging(viper.GetString("log-level"))
	},
	RunE: runInteractive,
}

// Execute the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.Float64("signal-frequency", 0, "initial signal frequency in Hz (default from configuration)")
	flags.Float64("sample-rate", 0, "initial sampling rate in Hz (default from configuration)")
	flags.Float64("duration", 0, "signal duration in seconds (default from configuration)")
	flags.Int("resolution", 0, "number of points of the continuous waveform (default from configuration)")
	flags.String("window", "", fmt.Sprintf("window function, one of %v", dsp.Windows()))
	flags.String("fft", "", fmt.Sprintf("FFT implementation, one of %v", dsp.Transforms()))
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")

	bindFlags(flags, viper.GetViper())
}

func bindFlags(flags *pflag.FlagSet, v *viper.Viper) {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		panic(errors.Wrap(err, "cannot bind flags"))
	}
}

func setupLogging(level string) error {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		return errors.Wrapf(err, "invalid log level %q", level)
	}
	zerolog.SetGlobalLevel(parsed)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	return nil
}

// loadConfiguration layers flags and environment over the hamradio configuration file.
func loadConfiguration(v *viper.Viper) (core.Configuration, error) {
	result, err := cfg.Load()
	switch {
	case cfg.IsMissing(err):
		log.Warn().Err(err).Msg("no configuration file, using the static configuration")
		result = cfg.Static()
	case err != nil:
		return core.Configuration{}, err
	}

	if v.IsSet("signal-frequency") {
		result.DefaultSignalFrequency = core.Frequency(v.GetFloat64("signal-frequency"))
	}
	if v.IsSet("sample-rate") {
		result.DefaultSampleRate = core.Frequency(v.GetFloat64("sample-rate"))
	}
	if v.IsSet("duration") {
		result.Duration = v.GetFloat64("duration")
	}
	if v.IsSet("resolution") {
		result.ContinuousResolution = v.GetInt("resolution")
	}
	if v.IsSet("window") {
		result.Window = v.GetString("window")
	}
	if v.IsSet("fft") {
		result.FFT = v.GetString("fft")
	}

	if err := cfg.Validate(result); err != nil {
		return core.Configuration{}, errors.Wrap(err, "invalid configuration")
	}
	log.Debug().
		Float64("duration", result.Duration).
		Int("resolution", result.ContinuousResolution).
		Str("window", result.Window).
		Str("fft", result.FFT).
		Msg("configuration loaded")
	return result, nil
}

func newController() (*coreapp.Controller, error) {
	configuration, err := loadConfiguration(viper.GetViper())
	if err != nil {
		return nil, err
	}
	return coreapp.New(configuration)
}

func runInteractive(cmd *cobra.Command, args []string) error {
	controller, err := newController()
	if err != nil {
		return err
	}
	return uiapp.Run(controller)
}
