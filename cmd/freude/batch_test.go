package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGrid(t *testing.T) {
	names, ranges, err := parseGrid([]string{"rho=20, 28", "beta=2.5"})
	require.NoError(t, err)
	assert.Equal(t, []string{"rho", "beta"}, names)
	assert.Equal(t, [][]float64{{20, 28}, {2.5}}, ranges)
}

func TestParseGridErrors(t *testing.T) {
	for _, spec := range []string{"rho", "rho=1,x", "rho="} {
		_, _, err := parseGrid([]string{spec})
		assert.Error(t, err, "parseGrid(%q)", spec)
	}
}
