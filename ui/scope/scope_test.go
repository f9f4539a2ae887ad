package scope

import (
	"strings"
	"testing"

	"github.com/NimbleMarkets/ntcharts/canvas/runes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ftl/aliascope/core"
	"github.com/ftl/aliascope/core/dsp"
)

func testFrame(t *testing.T, f, fs core.Frequency) core.Frame {
	analyzer, err := dsp.NewAnalyzer("", "")
	require.NoError(t, err)
	return analyzer.Compute(core.Parameters{SignalFrequency: f, SampleRate: fs}, 0.1, 5000)
}

func containsBraille(s string) bool {
	for _, r := range s {
		if runes.IsBraillePattern(r) && r != runes.BrailleBlockOffset {
			return true
		}
	}
	return false
}

func TestRenderWithoutFrame(t *testing.T) {
	v := New()

	_, ok := v.Frame()
	assert.False(t, ok)
	assert.Equal(t, "no data", v.Render(80, 10))
}

func TestTimeDomain(t *testing.T) {
	frame := testFrame(t, 1000, 20000)

	chart := TimeDomain(frame, 100, 11)
	rendered := chart.View()

	assert.Equal(t, 100, chart.Width())
	assert.Equal(t, 11, chart.Height())
	assert.Len(t, strings.Split(rendered, "\n"), 11)
	assert.True(t, strings.ContainsRune(rendered, SampleRune))
	assert.True(t, containsBraille(rendered))
	assert.Contains(t, rendered, "0.00ms")
	assert.Contains(t, rendered, "-1.1")
}

func TestFrequencyDomain(t *testing.T) {
	frame := testFrame(t, 1000, 20000)

	chart := FrequencyDomain(frame, 120, 12)
	rendered := chart.View()

	assert.True(t, strings.ContainsRune(rendered, runes.FullBlock))
	assert.True(t, strings.ContainsRune(rendered, MarkerRune))
	assert.Contains(t, rendered, frame.Markers.Signal.Label)
	assert.Contains(t, rendered, frame.Markers.Sampling.Label)
	assert.Contains(t, rendered, "-60kHz")
}

func TestFrequencyDomainSkipsMarkersOutsideTheRange(t *testing.T) {
	frame := testFrame(t, 99000, 40000)

	rendered := FrequencyDomain(frame, 120, 12).View()

	assert.NotContains(t, rendered, frame.Markers.Signal.Label)
	assert.Contains(t, rendered, frame.Markers.Sampling.Label)
}

func TestFrequencyDomainWithoutSignal(t *testing.T) {
	frame := testFrame(t, 30000, 20000)

	rendered := FrequencyDomain(frame, 80, 8).View()

	assert.False(t, strings.ContainsRune(rendered, runes.FullBlock))
	assert.Len(t, strings.Split(rendered, "\n"), 8)
}

func TestRender(t *testing.T) {
	v := New()
	frame := testFrame(t, 25000, 20000)
	v.ShowFrame(frame)

	rendered := v.Render(120, 8)
	shown, ok := v.Frame()

	assert.True(t, ok)
	assert.Equal(t, frame.Parameters, shown.Parameters)
	assert.Contains(t, rendered, "Time Domain")
	assert.Contains(t, rendered, "Frequency Domain (FFT)")
	assert.Contains(t, rendered, "-60kHz")
	assert.Contains(t, rendered, "0.00ms")
	assert.Equal(t, 2*8+3, len(strings.Split(rendered, "\n")))
}
