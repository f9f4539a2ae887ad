package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ftl/aliascope/core"
	"github.com/ftl/aliascope/core/dsp"
)

func TestLine(t *testing.T) {
	analyzer, err := dsp.NewAnalyzer("", "")
	require.NoError(t, err)

	tt := []struct {
		parameters core.Parameters
		expected   string
	}{
		{core.Parameters{SignalFrequency: 1000, SampleRate: 20000}, "   1000.0    20000.0      2000     1000.0     1000.0       no"},
		{core.Parameters{SignalFrequency: 25000, SampleRate: 20000}, "  25000.0    20000.0      2000     5000.0     5000.0      yes"},
	}
	for _, tc := range tt {
		t.Run(tc.parameters.SignalFrequency.String(), func(t *testing.T) {
			frame := analyzer.Compute(tc.parameters, 0.1, 10)
			assert.Equal(t, tc.expected, Line(frame))
		})
	}
}

func TestViewWritesHeaderOnce(t *testing.T) {
	analyzer, err := dsp.NewAnalyzer("", "")
	require.NoError(t, err)
	out := new(bytes.Buffer)
	v := New(out)

	v.ShowFrame(analyzer.Compute(core.Parameters{SignalFrequency: 1000, SampleRate: 20000}, 0.1, 10))
	v.ShowFrame(analyzer.Compute(core.Parameters{SignalFrequency: 2000, SampleRate: 20000}, 0.1, 10))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, strings.TrimSpace(Header), strings.TrimSpace(lines[0]))
	assert.Equal(t, 2, v.Lines())
}

func TestLineWithoutPeak(t *testing.T) {
	frame := core.Frame{Parameters: core.Parameters{SignalFrequency: 1, SampleRate: 10}}

	assert.Contains(t, Line(frame), "NaN")
}
