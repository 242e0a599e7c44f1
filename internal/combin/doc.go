// Package combin provides factorial and binomial coefficient helpers.
//
// Results are float64 so that large arguments overflow to +Inf instead of
// wrapping around, and so that Combination composes directly with the
// point arithmetic in package geom.
package combin
