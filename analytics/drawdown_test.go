package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func curveWithEquities(eq ...float64) []Point {
	curve := make([]Point, len(eq))
	for i, e := range eq {
		curve[i] = Point{Equity: e}
	}
	return curve
}

func TestDrawdownSeriesNonMonotonic(t *testing.T) {
	t.Parallel()

	dd := DrawdownSeries(curveWithEquities(900, 950, 880))

	assert.Len(t, dd, 3)
	assert.InDelta(t, 0, dd[0].DD, 1e-9)
	assert.InDelta(t, 0, dd[1].DD, 1e-9)
	assert.InDelta(t, -70, dd[2].DD, 1e-9)

	assert.InDelta(t, -70, MaxDrawdown(dd), 1e-9)
}

func TestDrawdownSeriesMonotonicRiseIsFlat(t *testing.T) {
	t.Parallel()

	// Peak seeds from the first point, so a rising curve never draws down.
	dd := DrawdownSeries(curveWithEquities(950, 1050))

	assert.InDelta(t, 0, dd[0].DD, 1e-9)
	assert.InDelta(t, 0, dd[1].DD, 1e-9)
	assert.InDelta(t, 0, MaxDrawdown(dd), 1e-9)
}

func TestDrawdownValuesNeverPositive(t *testing.T) {
	t.Parallel()

	dd := DrawdownSeries(curveWithEquities(100, 90, 120, 80, 130, 70))
	for _, p := range dd {
		assert.LessOrEqual(t, p.DD, 0.0)
	}
}

func TestMaxDrawdownEmpty(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 0, MaxDrawdown(nil), 1e-9)
	assert.Empty(t, DrawdownSeries(nil))
}

func TestMaxDrawdownIsSeriesMinimum(t *testing.T) {
	t.Parallel()

	dd := DrawdownSeries(curveWithEquities(100, 60, 110, 40))

	min := 0.0
	for _, p := range dd {
		if p.DD < min {
			min = p.DD
		}
	}
	assert.InDelta(t, min, MaxDrawdown(dd), 1e-9)
	assert.InDelta(t, -70, MaxDrawdown(dd), 1e-9)
}
