package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseScore(t *testing.T) {
	tests := []struct {
		name string
		f    Feature
		want float64
	}{
		{
			name: "maximum weights",
			f: Feature{
				Importance: ImportanceCritical,
				Impact:     ImpactVeryHigh,
				Effort:     EffortLow,
				Category:   CategoryEssential,
			},
			want: 230, // 100 + 50 + 30 + 50
		},
		{
			name: "effort weight is inverted",
			f: Feature{
				Importance: ImportanceLow,
				Impact:     ImpactLow,
				Effort:     EffortVeryHigh,
				Category:   CategoryEmergingTrends,
			},
			want: 50, // 25 + 10 + 5 + 10
		},
		{
			name: "unknown values contribute zero",
			f: Feature{
				Importance: "cosmic",
				Impact:     ImpactMediumHigh,
				Effort:     "",
				Category:   CategoryRevenueGrowth,
			},
			want: 70, // 0 + 35 + 0 + 35
		},
		{
			name: "zero value feature",
			f:    Feature{},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.f.BaseScore())
		})
	}
}

func TestCalculateGapScore(t *testing.T) {
	// Critical gaps weigh 3x: (3*2 + 3) / 10 * 100.
	assert.Equal(t, 90.0, CalculateGapScore(2, 3, 10))
	assert.Equal(t, 0.0, CalculateGapScore(0, 0, 10))
	assert.Equal(t, 0.0, CalculateGapScore(5, 5, 0))
}

func TestPlanTaskCount(t *testing.T) {
	p := DevelopmentPlan{
		Phases: []Phase{
			{Tasks: []Task{{Number: 1}, {Number: 2}}},
			{Tasks: []Task{{Number: 3}}},
			{},
		},
	}
	assert.Equal(t, 3, p.TaskCount())
}
