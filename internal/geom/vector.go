package geom

import "github.com/shinji-kodama/tnoshape/internal/model"

// Mul returns p scaled by scalar. The input point is not modified.
func Mul(p model.Point, scalar float64) model.Point {
	return model.Point{X: p.X * scalar, Y: p.Y * scalar}
}

// Div returns p divided by scalar. Dividing by zero is not an error:
// the result holds ±Inf, or NaN for a zero coordinate.
func Div(p model.Point, scalar float64) model.Point {
	return model.Point{X: p.X / scalar, Y: p.Y / scalar}
}

// Add returns the component-wise sum of a and b.
func Add(a, b model.Point) model.Point {
	return model.Point{X: a.X + b.X, Y: a.Y + b.Y}
}
