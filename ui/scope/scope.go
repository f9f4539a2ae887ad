package scope

import (
	"fmt"
	"math"
	"strings"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/canvas/graph"
	"github.com/NimbleMarkets/ntcharts/linechart"
	"github.com/charmbracelet/lipgloss"

	"github.com/ftl/aliascope/core"
)

// Visible ranges of the two plots.
var (
	TimeRange      = Range{From: 0, To: 0.001}
	AmplitudeRange = Range{From: -1.1, To: 1.1}
	FrequencyRange = core.FrequencyRange{From: -60e3, To: 60e3}
)

// Range of values on a plot axis.
type Range struct {
	From, To float64
}

// Contains the given value.
func (r Range) Contains(v float64) bool {
	return v >= r.From && v <= r.To
}

const (
	// SampleRune marks a discrete sample in the time domain.
	SampleRune = '●'
	// MarkerRune draws the vertical marker lines in the frequency domain.
	MarkerRune = '┊'

	// labelHeight is the relative height of the marker labels within the frequency plot.
	labelHeight = 0.9
	// noiseFloor is the largest spectrum magnitude that is still scaled as silence.
	noiseFloor = 1e-6

	xStep = 10
	yStep = 2
)

var styles = struct {
	trace   lipgloss.Style
	samples lipgloss.Style
	bars    lipgloss.Style
	markers lipgloss.Style
}{
	trace:   lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	samples: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	bars:    lipgloss.NewStyle().Foreground(lipgloss.Color("81")),
	markers: lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
}

// New returns a new scope view.
func New() *View {
	return &View{}
}

// View keeps the last frame and renders it as time domain and frequency domain plot.
type View struct {
	frame core.Frame
	valid bool
}

// ShowFrame sets the frame to render.
func (v *View) ShowFrame(frame core.Frame) {
	v.frame = frame
	v.valid = true
}

// Frame shown last; ok is false as long as no frame was shown.
func (v *View) Frame() (core.Frame, bool) {
	return v.frame, v.valid
}

// Render both plots into the given number of columns and rows per plot.
func (v *View) Render(width, height int) string {
	if !v.valid {
		return "no data"
	}
	timeDomain := TimeDomain(v.frame, width, height)
	frequencyDomain := FrequencyDomain(v.frame, width, height)
	return strings.Join([]string{
		"Time Domain",
		timeDomain.View(),
		"",
		"Frequency Domain (FFT)",
		frequencyDomain.View(),
	}, "\n")
}

// TimeDomain plots the continuous waveform as braille trace and the samples on top of it.
func TimeDomain(frame core.Frame, width, height int) linechart.Model {
	chart := linechart.New(width, height, TimeRange.From, TimeRange.To, AmplitudeRange.From, AmplitudeRange.To,
		linechart.WithXYSteps(xStep, yStep),
		linechart.WithXLabelFormatter(func(_ int, t float64) string { return fmt.Sprintf("%.2fms", t*1000) }),
		linechart.WithYLabelFormatter(func(_ int, a float64) string { return fmt.Sprintf("%.1f", a) }),
	)
	chart.DrawXYAxisAndLabel()

	trace := graph.NewBrailleGrid(chart.GraphWidth(), chart.GraphHeight(), chart.MinX(), chart.MaxX(), chart.MinY(), chart.MaxY())
	var previous canvas.Point
	for i, t := range frame.Continuous.Time {
		if !TimeRange.Contains(t) {
			continue
		}
		p := trace.GridPoint(canvas.Float64Point{X: t, Y: frame.Continuous.Amplitude[i]})
		if i == 0 || !TimeRange.Contains(frame.Continuous.Time[i-1]) {
			previous = p
		}
		for _, q := range graph.GetLinePoints(previous, p) {
			trace.Set(q)
		}
		previous = p
	}
	graph.DrawBraillePatterns(&chart.Canvas, canvas.Point{X: chart.Origin().X + 1, Y: 0}, trace.BraillePatterns(), styles.trace)

	for i, t := range frame.Sampled.Time {
		if TimeRange.Contains(t) {
			chart.DrawRuneWithStyle(canvas.Float64Point{X: t, Y: frame.Sampled.Amplitude[i]}, SampleRune, styles.samples)
		}
	}
	return chart
}

// FrequencyDomain plots the magnitude spectrum as bars, the markers as vertical lines and their labels.
func FrequencyDomain(frame core.Frame, width, height int) linechart.Model {
	top := frame.Spectrum.MaxMagnitude() * 1.05
	if top < noiseFloor {
		top = 1
	}
	chart := linechart.New(width, height, float64(FrequencyRange.From), float64(FrequencyRange.To), 0, top,
		linechart.WithXYSteps(xStep, yStep),
		linechart.WithXLabelFormatter(func(_ int, f float64) string { return fmt.Sprintf("%.0fkHz", f/1000) }),
		linechart.WithYLabelFormatter(func(_ int, m float64) string { return fmt.Sprintf("%.0f", m) }),
	)
	chart.DrawXYAxisAndLabel()

	markers := make([]core.Marker, 0, 3)
	for _, marker := range frame.Markers.All() {
		if FrequencyRange.Contains(marker.Frequency) {
			markers = append(markers, marker)
		}
	}

	for _, marker := range markers {
		f := float64(marker.Frequency)
		chart.DrawRuneLineWithStyle(canvas.Float64Point{X: f, Y: 0}, canvas.Float64Point{X: f, Y: top}, MarkerRune, styles.markers)
	}

	// several bins share one column, the column shows the largest of them
	columns := make(map[int]float64)
	for i, f := range frame.Spectrum.Frequencies {
		if !FrequencyRange.Contains(f) {
			continue
		}
		x := graphPoint(&chart, float64(f), 0).X
		columns[x] = math.Max(columns[x], frame.Spectrum.Magnitudes[i])
	}
	base := chart.Origin().Y - 1
	rows := float64(chart.GraphHeight())
	for x, magnitude := range columns {
		graph.DrawColumnBottomToTop(&chart.Canvas, canvas.Point{X: x, Y: base}, magnitude/top*rows, styles.bars)
	}

	for _, marker := range markers {
		chart.Canvas.SetString(graphPoint(&chart, float64(marker.Frequency), top*labelHeight), marker.Label)
	}
	return chart
}

// graphPoint converts data coordinates into the canvas cell inside the graphing area.
func graphPoint(chart *linechart.Model, x, y float64) canvas.Point {
	p := canvas.CanvasPointFromFloat64Point(chart.Origin(), chart.ScaleFloat64Point(canvas.Float64Point{X: x, Y: y}))
	p.X++
	p.Y--
	return p
}
