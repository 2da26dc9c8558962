// Package geom has the bits of geometry the tools need: distances, the
// centre of a set of atoms and the box around them.
package geom

import (
	"math"

	"github.com/andrew-torda/pdbrw/pdb/cmmn"
)

// Error is a plain string error.
type Error string

func (e Error) Error() string { return string(e) }

// ErrEmpty is returned when there are no points to work on.
const ErrEmpty = Error("no coordinates")

// xyzDiff gets the difference of two vectors
func xyzDiff(start, end cmmn.Xyz) cmmn.Xyz {
	return cmmn.Xyz{X: end.X - start.X, Y: end.Y - start.Y, Z: end.Z - start.Z}
}

// Dist2 is the distance squared. It is what you want for comparing
// against a cutoff.
func Dist2(a, b cmmn.Xyz) float64 {
	d := xyzDiff(a, b)
	return d.X*d.X + d.Y*d.Y + d.Z*d.Z
}

// Dist is the distance between two points.
func Dist(a, b cmmn.Xyz) float64 { return math.Sqrt(Dist2(a, b)) }

// Centroid is the unweighted mean of the points.
func Centroid(xyz cmmn.XyzSl) (cmmn.Xyz, error) {
	if len(xyz) == 0 {
		return cmmn.Xyz{}, ErrEmpty
	}
	var sum cmmn.Xyz
	for _, p := range xyz {
		sum = sum.Add(p)
	}
	n := float64(len(xyz))
	return cmmn.Xyz{X: sum.X / n, Y: sum.Y / n, Z: sum.Z / n}, nil
}

// Bounds returns the corners of the smallest box, along the axes,
// holding all the points.
func Bounds(xyz cmmn.XyzSl) (lo, hi cmmn.Xyz, err error) {
	if len(xyz) == 0 {
		return lo, hi, ErrEmpty
	}
	lo, hi = xyz[0], xyz[0]
	for _, p := range xyz[1:] {
		lo = cmmn.Xyz{X: min(lo.X, p.X), Y: min(lo.Y, p.Y), Z: min(lo.Z, p.Z)}
		hi = cmmn.Xyz{X: max(hi.X, p.X), Y: max(hi.Y, p.Y), Z: max(hi.Z, p.Z)}
	}
	return lo, hi, nil
}
