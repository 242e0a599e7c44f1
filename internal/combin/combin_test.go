package combin

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestFactorial covers the empty product, small values, and the
// unguarded negative argument.
func TestFactorial(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want float64
	}{
		{name: "zero is the empty product", n: 0, want: 1},
		{name: "one", n: 1, want: 1},
		{name: "five", n: 5, want: 120},
		{name: "ten", n: 10, want: 3628800},
		{name: "negative returns one", n: -3, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Factorial(tt.n))
		})
	}
}

// TestFactorial_Overflow verifies that very large arguments saturate to
// +Inf rather than wrapping like an integer would.
func TestFactorial_Overflow(t *testing.T) {
	assert.True(t, math.IsInf(Factorial(200), 1))
}

// TestCombination checks known binomial coefficients.
func TestCombination(t *testing.T) {
	tests := []struct {
		name string
		p, n int
		want float64
	}{
		{name: "2 of 5", p: 2, n: 5, want: 10},
		{name: "0 of 4", p: 0, n: 4, want: 1},
		{name: "4 of 4", p: 4, n: 4, want: 1},
		{name: "3 of 6", p: 3, n: 6, want: 20},
		{name: "1 of 7", p: 1, n: 7, want: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Combination(tt.p, tt.n))
		})
	}
}

// TestCombination_Symmetry verifies C(p, n) == C(n-p, n) across a row of
// Pascal's triangle.
func TestCombination_Symmetry(t *testing.T) {
	const n = 12
	for p := 0; p <= n; p++ {
		assert.Equal(t, Combination(p, n), Combination(n-p, n), "p=%d", p)
	}
}

// TestCombination_OutOfDomain confirms that p > n does not panic. With
// n-p negative, Factorial(n-p) is 1, so the result is n!/p!.
func TestCombination_OutOfDomain(t *testing.T) {
	assert.NotPanics(t, func() {
		got := Combination(5, 3)
		assert.InDelta(t, 6.0/120.0, got, 1e-12)
	})
}
