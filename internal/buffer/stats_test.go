package buffer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStats_Push(t *testing.T) {

	l := 1001

	type test struct {
		transform func(i int) float64
		avg       float64
		count     int
		stDev     float64
		variance  float64
		sum       float64
		bounds    bool
		min       float64
		max       float64
	}

	tests := map[string]test{
		"monotonically-increasing-+": {
			transform: func(i int) float64 {
				return float64(i)
			},
			avg:      float64(l / 2),
			count:    l,
			sum:      float64(l) * 500,
			stDev:    289,
			variance: 83500,
			bounds:   true,
			min:      0,
			max:      1000,
		},
		"monotonically-increasing-0": {
			transform: func(i int) float64 {
				return float64(-1*l/2) + float64(i)
			},
			avg:   0,
			count: l,
			sum:   0,
			// NOTE : these are the same as the one above
			stDev:    289,
			variance: 83500,
			bounds:   true,
			min:      -500,
			max:      500,
		},
		"monotonically-decreasing--": {
			transform: func(i int) float64 {
				return -1 * float64(i)
			},
			avg:      -1 * float64(l/2),
			count:    l,
			sum:      -1 * float64(l) * 500,
			stDev:    289,
			variance: 83500,
			bounds:   true,
			min:      -1000,
			max:      0,
		},
		"abs-+": {
			transform: func(i int) float64 {
				return math.Abs(-1*float64(l/2) + float64(i))
			},
			avg:   float64(l / 4),
			count: l,
			sum:   250500,
			// NOTE : these are half of the monotonical case
			stDev:    289 / 2,
			variance: 83500 / 4,
			bounds:   true,
			min:      0,
			max:      500,
		},
		"sin": {
			transform: func(i int) float64 {
				return float64(l) * math.Sin(float64(i))
			},
			avg:      1, // very close to the expected '0' anyway
			count:    l,
			sum:      815,
			stDev:    708,    // NOTE : how much larger this is now
			variance: 500692, // NOTE : how much larger this is now
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			stats := NewStats()
			for i := 0; i < l; i++ {
				v := tt.transform(i)
				stats.Push(v)
			}
			assert.Equal(t, tt.avg, math.Round(stats.Avg()))
			assert.Equal(t, tt.count, stats.Count())
			assert.Equal(t, tt.sum, math.Round(stats.Sum()))
			assert.Equal(t, tt.stDev, math.Round(stats.StDev()))
			assert.Equal(t, tt.variance, math.Round(stats.Variance()))
			if tt.bounds {
				assert.Equal(t, tt.min, stats.Min())
				assert.Equal(t, tt.max, stats.Max())
			}
		})
	}
}

func TestStats_Summary(t *testing.T) {
	stats := NewStats()
	assert.Equal(t, Summary{}, stats.Summary())

	for _, v := range []float64{1, 2, 3, 4} {
		stats.Push(v)
	}
	s := stats.Summary()
	assert.Equal(t, 4, s.Count)
	assert.Equal(t, 2.5, s.Avg)
	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 4.0, s.Max)
	assert.InDelta(t, math.Sqrt(1.25), s.StDev, 1e-12)
}
