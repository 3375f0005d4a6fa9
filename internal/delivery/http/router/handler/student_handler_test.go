package handler

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseGPA(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{input: "3.5", want: 3.5},
		{input: " 4 ", want: 4},
		{input: "0", want: 0},
		{input: "-0.01", want: -0.01},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, parseGPA(tt.input), 1e-9, "input %q", tt.input)
	}

	for _, input := range []string{"", "high", "3,5"} {
		assert.True(t, math.IsNaN(parseGPA(input)), "input %q", input)
	}
}
