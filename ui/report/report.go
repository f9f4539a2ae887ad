package report

import (
	"fmt"
	"io"
	"math"

	"github.com/rs/zerolog/log"

	"github.com/ftl/aliascope/core"
	"github.com/ftl/aliascope/core/dsp"
)

// Header of the report columns.
const Header = "        f         fs   samples       peak      alias  aliased"

// New returns a report view that writes one line per frame to the given writer.
func New(out io.Writer) *View {
	return &View{out: out}
}

// View writes a summary line for each frame.
type View struct {
	out   io.Writer
	lines int
}

// ShowFrame writes the summary of the given frame.
func (v *View) ShowFrame(frame core.Frame) {
	if v.lines == 0 {
		v.write(Header)
	}
	v.write(Line(frame))
}

// Lines written so far, the header excluded.
func (v *View) Lines() int {
	if v.lines == 0 {
		return 0
	}
	return v.lines - 1
}

func (v *View) write(line string) {
	if _, err := fmt.Fprintln(v.out, line); err != nil {
		log.Error().Err(err).Msg("cannot write report")
		return
	}
	v.lines++
}

// Line summarizes the given frame: parameters, sample count, dominant peak, expected alias.
func Line(frame core.Frame) string {
	p := frame.Parameters
	peak := math.NaN()
	if dominant, ok := dsp.DominantPeak(frame.Spectrum); ok {
		peak = math.Abs(float64(dominant.Frequency))
	}
	alias := math.Abs(float64(dsp.AliasFrequency(p.SignalFrequency, p.SampleRate)))
	aliased := "no"
	if p.Aliased() {
		aliased = "yes"
	}
	return fmt.Sprintf("%9.1f  %9.1f  %8d  %9.1f  %9.1f  %7s",
		float64(p.SignalFrequency), float64(p.SampleRate), frame.Sampled.Len(), peak, alias, aliased)
}
