package combin

// Factorial returns the product 1·2·…·n. Factorial(0) is 1 (the empty
// product). Negative n is outside the domain and also yields 1 because the
// loop body never runs; callers are expected not to pass it.
func Factorial(n int) float64 {
	result := 1.0
	for i := 1; i <= n; i++ {
		result *= float64(i)
	}
	return result
}

// Combination returns the binomial coefficient "n choose p",
// n! / (p! · (n-p)!).
//
// Arguments are not bounds checked. p > n or negative values produce a
// float result that has no combinatorial meaning, but never panic.
func Combination(p, n int) float64 {
	return Factorial(n) / (Factorial(p) * Factorial(n-p))
}
