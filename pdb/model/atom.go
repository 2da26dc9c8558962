// Package model holds what we know about a structure after reading it
// from a pdb file, or before writing one.
// Nothing in here can hold an invalid value. Constructors refuse bad
// input and setters check again before they change anything, so
// copying an Atom is just a value copy.
package model

import (
	"cmp"
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/andrew-torda/pdbrw/pdb/cmmn"
	"github.com/andrew-torda/pdbrw/pdb/validate"
)

// maxCharge is the biggest magnitude that fits in the one digit of the
// charge column.
const maxCharge = 9

// Atom is one ATOM or HETATM record.
type Atom struct {
	hetero     bool
	serial     int
	name       string
	altLoc     string
	resName    string
	chainID    string
	resSeq     int
	iCode      string
	pos        cmmn.Xyz
	occupancy  float64
	tempFactor float64
	segID      string
	element    string
	charge     int
}

// AtomVals is everything one needs to build an Atom. It is checked by
// NewAtom. The optional fields (alternate location, insertion code,
// segment) have their own setters.
type AtomVals struct {
	Hetero     bool
	Serial     int
	Name       string
	ResName    string
	ChainID    string
	ResSeq     int
	Pos        cmmn.Xyz
	Occupancy  float64
	TempFactor float64
	Element    string
	Charge     int
}

// NewAtom checks v and returns an atom. If anything is wrong, we return
// the zero Atom and an *InvalidValueError naming the first bad field.
func NewAtom(v AtomVals) (Atom, error) {
	s := v.Serial
	switch {
	case s < 0:
		return Atom{}, atomErr(s, "serial number", strconv.Itoa(s), negative)
	case !validate.IsValidIdentifier(v.Name):
		return Atom{}, atomErr(s, "name", v.Name, badChars)
	case !validate.IsValidIdentifier(v.Element):
		return Atom{}, atomErr(s, "element", v.Element, badChars)
	case !validate.IsValidIdentifier(v.ResName):
		return Atom{}, atomErr(s, "residue name", v.ResName, badChars)
	case !validate.IsValidIdentifier(v.ChainID) || utf8.RuneCountInString(v.ChainID) > 1:
		return Atom{}, atomErr(s, "chain id", v.ChainID, "invalid character or length")
	case v.ResSeq < 0:
		return Atom{}, atomErr(s, "residue sequence number", strconv.Itoa(v.ResSeq), negative)
	case !v.Pos.Ok():
		return Atom{}, atomErr(s, "position", fmtXyz(v.Pos), notFinite)
	case !cmmn.Finite(v.Occupancy):
		return Atom{}, atomErr(s, "occupancy", fmtF(v.Occupancy), notFinite)
	case !cmmn.Finite(v.TempFactor):
		return Atom{}, atomErr(s, "temperature factor", fmtF(v.TempFactor), notFinite)
	case v.Charge < -maxCharge || v.Charge > maxCharge:
		return Atom{}, atomErr(s, "charge", strconv.Itoa(v.Charge), "more than one digit")
	}
	return Atom{
		hetero:     v.Hetero,
		serial:     v.Serial,
		name:       validate.Clean(v.Name),
		resName:    validate.Clean(v.ResName),
		chainID:    validate.Clean(v.ChainID),
		resSeq:     v.ResSeq,
		pos:        v.Pos,
		occupancy:  v.Occupancy,
		tempFactor: v.TempFactor,
		element:    validate.Clean(v.Element),
		charge:     v.Charge,
	}, nil
}

func fmtF(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }
func fmtXyz(x cmmn.Xyz) string {
	return "(" + fmtF(x.X) + ", " + fmtF(x.Y) + ", " + fmtF(x.Z) + ")"
}

func (a Atom) Hetero() bool { return a.hetero }
func (a Atom) Serial() int { return a.serial }
func (a Atom) Name() string { return a.name }
func (a Atom) AltLoc() string { return a.altLoc }
func (a Atom) ResName() string { return a.resName }
func (a Atom) ChainID() string { return a.chainID }
func (a Atom) ResSeq() int { return a.resSeq }
func (a Atom) ICode() string { return a.iCode }
func (a Atom) Pos() cmmn.Xyz { return a.pos }
func (a Atom) X() float64 { return a.pos.X }
func (a Atom) Y() float64 { return a.pos.Y }
func (a Atom) Z() float64 { return a.pos.Z }
func (a Atom) Occupancy() float64 { return a.occupancy }
func (a Atom) TempFactor() float64 { return a.tempFactor }
func (a Atom) SegID() string { return a.segID }
func (a Atom) Element() string { return a.element }
func (a Atom) Charge() int { return a.charge }
func (a *Atom) SetHetero(hetero bool) { a.hetero = hetero }

// SetSerial changes the serial number. We do not know about other atoms,
// so duplicates are the caller's problem.
func (a *Atom) SetSerial(n int) error {
	if n < 0 {
		return atomErr(a.serial, "serial number", strconv.Itoa(n), negative)
	}
	a.serial = n
	return nil
}

func (a *Atom) SetName(s string) error {
	if !validate.IsValidIdentifier(s) {
		return atomErr(a.serial, "name", s, badChars)
	}
	a.name = validate.Clean(s)
	return nil
}

// SetResName wants exactly three characters, counting blanks, so "A  "
// is fine and is stored as "A", but " ALA" is not.
func (a *Atom) SetResName(s string) error {
	if !validate.IsValidIdentifier(s) || len(s) != 3 {
		return atomErr(a.serial, "residue name", s, "invalid characters or length")
	}
	a.resName = validate.Clean(s)
	return nil
}

// SetChainID wants exactly one character. A single space is allowed and
// stored as an empty chain.
func (a *Atom) SetChainID(s string) error {
	if !validate.IsValidIdentifier(s) || len(s) != 1 {
		return atomErr(a.serial, "chain id", s, "invalid character or length")
	}
	a.chainID = validate.Clean(s)
	return nil
}

func (a *Atom) SetResSeq(n int) error {
	if n < 0 {
		return atomErr(a.serial, "residue sequence number", strconv.Itoa(n), negative)
	}
	a.resSeq = n
	return nil
}

func (a *Atom) SetPos(p cmmn.Xyz) error {
	if !p.Ok() {
		return atomErr(a.serial, "position", fmtXyz(p), notFinite)
	}
	a.pos = p
	return nil
}

// setFinite is the common part of the single float setters.
func (a *Atom) setFinite(dst *float64, field string, f float64) error {
	if !cmmn.Finite(f) {
		return atomErr(a.serial, field, fmtF(f), notFinite)
	}
	*dst = f
	return nil
}

func (a *Atom) SetX(f float64) error { return a.setFinite(&a.pos.X, "x", f) }
func (a *Atom) SetY(f float64) error { return a.setFinite(&a.pos.Y, "y", f) }
func (a *Atom) SetZ(f float64) error { return a.setFinite(&a.pos.Z, "z", f) }
func (a *Atom) SetOccupancy(f float64) error { return a.setFinite(&a.occupancy, "occupancy", f) }
func (a *Atom) SetTempFactor(f float64) error { return a.setFinite(&a.tempFactor, "temperature factor", f) }

func (a *Atom) SetElement(s string) error {
	if !validate.IsValidIdentifier(s) {
		return atomErr(a.serial, "element", s, badChars)
	}
	a.element = validate.Clean(s)
	return nil
}

// SetCharge takes a signed charge from -9 to 9.
func (a *Atom) SetCharge(n int) error {
	if n < -maxCharge || n > maxCharge {
		return atomErr(a.serial, "charge", strconv.Itoa(n), "more than one digit")
	}
	a.charge = n
	return nil
}

// setOneChar is for the optional single column fields. Empty clears them.
func (a *Atom) setOneChar(dst *string, field, s string) error {
	if !validate.IsValidIdentifier(s) || len(s) > 1 {
		return atomErr(a.serial, field, s, "invalid character or length")
	}
	*dst = validate.Clean(s)
	return nil
}

func (a *Atom) SetAltLoc(s string) error { return a.setOneChar(&a.altLoc, "alternate location", s) }
func (a *Atom) SetICode(s string) error { return a.setOneChar(&a.iCode, "insertion code", s) }

// SetSegID takes up to four characters. Empty clears it.
func (a *Atom) SetSegID(s string) error {
	if !validate.IsValidIdentifier(s) || len(s) > 4 {
		return atomErr(a.serial, "segment id", s, "invalid characters or length")
	}
	a.segID = validate.Clean(s)
	return nil
}

// Equal compares serial number, name, element, residue name, chain,
// position, occupancy and temperature factor. Nothing else.
func (a Atom) Equal(b Atom) bool {
	return a.serial == b.serial &&
		a.name == b.name &&
		a.element == b.element &&
		a.resName == b.resName &&
		a.chainID == b.chainID &&
		a.pos == b.pos &&
		a.occupancy == b.occupancy &&
		a.tempFactor == b.tempFactor
}

// Compare orders atoms by serial number only. It suits slices.SortFunc.
func (a Atom) Compare(b Atom) int { return cmp.Compare(a.serial, b.serial) }

func (a Atom) String() string {
	typ := "ATOM"
	if a.hetero {
		typ = "HETATM"
	}
	return fmt.Sprintf("%s %d %s element %s residue %s chain %s position (%g, %g, %g) occupancy %g temp_factor %g",
		typ, a.serial, a.name, a.element, a.resName, a.chainID,
		a.pos.X, a.pos.Y, a.pos.Z, a.occupancy, a.tempFactor)
}
