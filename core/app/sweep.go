package app

import (
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/ftl/aliascope/core"
)

// NewSweep returns a source that steps the given parameter from from to to (inclusive), emitting
// one change every interval.
func NewSweep(parameter core.Parameter, from, to, step core.Frequency, interval time.Duration) (*Sweep, error) {
	if step <= 0 {
		return nil, errors.Errorf("sweep step must be positive: %v", step)
	}
	if to < from {
		return nil, errors.Errorf("sweep range is reversed: %v", core.FrequencyRange{From: from, To: to})
	}

	result := Sweep{
		changes: make(chan core.ParameterChange),
		done:    make(chan struct{}),
	}

	go func() {
		defer log.Debug().Stringer("parameter", parameter).Msg("sweep shutdown")
		defer close(result.changes)

		steps := int((to-from)/step + 1e-9)
		for i := 0; i <= steps; i++ {
			change := core.ParameterChange{
				Parameter: parameter,
				Value:     from + core.Frequency(i)*step,
			}
			select {
			case result.changes <- change:
			case <-result.done:
				return
			}
			if interval == 0 {
				continue
			}
			select {
			case <-time.After(interval):
			case <-result.done:
				return
			}
		}
	}()

	return &result, nil
}

// Sweep emits a stepped sequence of parameter changes.
type Sweep struct {
	changes chan core.ParameterChange
	done    chan struct{}
}

// Changes emitted by this sweep. The channel is closed after the last step.
func (s *Sweep) Changes() <-chan core.ParameterChange {
	return s.changes
}

// Close stops the sweep.
func (s *Sweep) Close() error {
	select {
	case <-s.done:
	default:
		close(s.done)
	}
	return nil
}
