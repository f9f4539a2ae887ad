package cmd

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/ftl/aliascope/core"
	coreapp "github.com/ftl/aliascope/core/app"
	"github.com/ftl/aliascope/ui/report"
)

var sweepFlags = struct {
	parameter string
	from      float64
	to        float64
	step      float64
	interval  time.Duration
}{}

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Sweep one parameter and report the dominant spectral peak of every step",
	Long: `Sweep steps the signal frequency or the sampling rate through the given range and
prints one line per step: the parameters, the number of samples, the dominant
spectral peak and the frequency where the signal is expected to appear.`,
	RunE: runSweep,
}

func init() {
	sweepCmd.Flags().StringVar(&sweepFlags.parameter, "parameter", "signal", "parameter to sweep (signal, rate)")
	sweepCmd.Flags().Float64Var(&sweepFlags.from, "from", 1000, "first value in Hz")
	sweepCmd.Flags().Float64Var(&sweepFlags.to, "to", 50000, "last value in Hz")
	sweepCmd.Flags().Float64Var(&sweepFlags.step, "step", 1000, "step in Hz")
	sweepCmd.Flags().DurationVar(&sweepFlags.interval, "interval", 0, "pause between two steps")

	rootCmd.AddCommand(sweepCmd)
}

func parseParameter(s string) (core.Parameter, error) {
	switch s {
	case "signal", "f":
		return core.SignalFrequency, nil
	case "rate", "fs":
		return core.SampleRate, nil
	default:
		return 0, errors.Errorf("unknown parameter %q, use signal or rate", s)
	}
}

func runSweep(cmd *cobra.Command, args []string) error {
	parameter, err := parseParameter(sweepFlags.parameter)
	if err != nil {
		return err
	}
	controller, err := newController()
	if err != nil {
		return err
	}
	sweep, err := coreapp.NewSweep(parameter, core.Frequency(sweepFlags.from), core.Frequency(sweepFlags.to), core.Frequency(sweepFlags.step), sweepFlags.interval)
	if err != nil {
		return err
	}
	defer sweep.Close()

	view := report.New(cmd.OutOrStdout())
	controller.AddView(view)
	controller.Startup()

	stop := make(chan struct{})
	done := make(chan struct{})
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(signals)

	loop := coreapp.NewMainLoop(sweep, controller)
	go stopOnSignal(loop, signals, done, stop)
	loop.Run(stop)
	close(done)
	log.Info().Int("frames", view.Lines()).Msg("sweep done")
	return nil
}

// stopOnSignal closes stop from within the main loop when a signal arrives.
func stopOnSignal(loop *coreapp.MainLoop, signals <-chan os.Signal, done <-chan struct{}, stop chan<- struct{}) {
	var once sync.Once
	for {
		select {
		case s := <-signals:
			loop.Do(func() {
				once.Do(func() {
					log.Info().Stringer("signal", s).Msg("sweep interrupted")
					close(stop)
				})
			})
		case <-done:
			return
		}
	}
}
