// Package pdb/cmmn has common definitions for coordinates and
// pdb files
package cmmn

import (
	"math"
)

// Does our data come from a file or http source ?
const (
	FileSrc byte = iota
	HTTPSrc
)

// Xyz is one position in Ångström.
type Xyz struct{ X, Y, Z float64 }
type XyzSl []Xyz // xyz's are coordinates

// Ok says if all three components are finite numbers.
func (xyz Xyz) Ok() bool {
	return finite(xyz.X) && finite(xyz.Y) && finite(xyz.Z)
}

// Add returns the sum of two vectors.
func (xyz Xyz) Add(d Xyz) Xyz { return Xyz{xyz.X + d.X, xyz.Y + d.Y, xyz.Z + d.Z} }

// Finite is exported for the model, which checks occupancy and
// B-factors the same way as coordinates.
func Finite(f float64) bool { return finite(f) }

func finite(f float64) bool { return !math.IsInf(f, 0) && !math.IsNaN(f) }
