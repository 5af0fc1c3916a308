package patterns

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateTextConfidence(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{
			name: "empty text scores zero",
			text: "",
			want: 0,
		},
		{
			name: "section headers only",
			text: "Experience\nEducation\nSkills",
			want: 30,
		},
		{
			name: "email adds ten",
			text: "contact me at jane@example.com",
			want: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EstimateTextConfidence(tt.text))
		})
	}
}

func TestEstimateTextConfidence_Bounded(t *testing.T) {
	rich := strings.Repeat("experience education skills responsible managed developed implemented designed led collaborated 2015 2016 2017 jane@example.com 555-123-4567 ", 50)
	score := EstimateTextConfidence(rich)
	assert.LessOrEqual(t, score, 100)
	assert.GreaterOrEqual(t, score, 90)
}
