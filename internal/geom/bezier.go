package geom

import "github.com/shinji-kodama/tnoshape/internal/model"

// Bezier evaluates the Bezier curve defined by the control polygon ctrl at
// parameter t with de Casteljau's algorithm: the polygon is repeatedly
// replaced by the points at t along each of its edges until one point is
// left. This gives the same curve as the Bernstein form
//
//	B(t) = Σ C(i, n) · (1-t)^(n-i) · t^i · P_i,   n = len(ctrl)-1
//
// but never forms a factorial, so it stays finite for polygons of any
// size.
//
// t is normally in [0, 1] but is not clamped. An empty control polygon
// yields the zero point. ctrl is not modified.
func Bezier(ctrl []model.Point, t float64) model.Point {
	if len(ctrl) == 0 {
		return model.Point{}
	}
	work := make([]model.Point, len(ctrl))
	copy(work, ctrl)
	for n := len(work) - 1; n > 0; n-- {
		for i := 0; i < n; i++ {
			work[i] = Add(Mul(work[i], 1-t), Mul(work[i+1], t))
		}
	}
	return work[0]
}

// Outline samples the curve at samples+1 evenly spaced parameters from 0
// to 1 inclusive. samples below 1 is treated as 1, which returns just the
// two endpoints.
func Outline(ctrl []model.Point, samples int) []model.Point {
	if samples < 1 {
		samples = 1
	}
	out := make([]model.Point, 0, samples+1)
	for s := 0; s <= samples; s++ {
		out = append(out, Bezier(ctrl, float64(s)/float64(samples)))
	}
	return out
}

// Closed returns a copy of ctrl with its first point appended, so that a
// curve through the result ends where it started. The wrap-around point is
// found with Index, i.e. ctrl[len(ctrl) mod len(ctrl)].
func Closed(ctrl []model.Point) []model.Point {
	if len(ctrl) == 0 {
		return nil
	}
	out := make([]model.Point, len(ctrl), len(ctrl)+1)
	copy(out, ctrl)
	return append(out, ctrl[Index(ctrl, len(ctrl))])
}
