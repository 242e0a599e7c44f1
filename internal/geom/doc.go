// Package geom implements the 2D point helpers used when building shape
// outlines: scalar multiplication and division of points, wrapping of
// sequence indices into bounds, and Bezier sampling on top of both.
//
// All functions are pure. Invalid numeric input is not reported as an
// error; it produces IEEE-754 sentinels (NaN, ±Inf) exactly as the
// underlying float64 arithmetic does.
package geom
