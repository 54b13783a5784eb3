package resultdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundSeconds(t *testing.T) {
	tests := []struct {
		name  string
		input float32
		want  float32
	}{
		{name: "three decimals unchanged", input: 12.346, want: 12.346},
		{name: "extra precision rounds", input: 12.34567, want: 12.346},
		{name: "rounds down", input: 10.5554, want: 10.555},
		{name: "whole seconds", input: 59, want: 59},
		{name: "zero", input: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RoundSeconds(tt.input))
		})
	}
}

func TestNewResultNormalizesSeconds(t *testing.T) {
	r := NewResult(12.34567, true, "1st")
	assert.Equal(t, RoundSeconds(12.34567), r.Seconds)
	assert.True(t, r.Finished)
	assert.Equal(t, "1st", r.Place)
}

func TestResultMatches(t *testing.T) {
	r := NewResult(12.34567, true, "1st")

	assert.True(t, r.Matches(12.34567, true, "1st"), "same raw input matches after normalization")
	assert.True(t, r.Matches(12.346, true, "1st"), "pre-rounded input matches")
	assert.False(t, r.Matches(12.3, true, "1st"))
	assert.False(t, r.Matches(12.34567, false, "1st"))
	assert.False(t, r.Matches(12.34567, true, "2nd"))
}
