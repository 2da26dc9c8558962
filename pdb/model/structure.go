package model

import (
	"context"
	"iter"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/andrew-torda/matrix"
	"github.com/andrew-torda/pdbrw/pdb/cmmn"
	"github.com/andrew-torda/pdbrw/pdb/validate"
)

// MaxRemarkLen is the longest remark text we will store.
const MaxRemarkLen = 70

// remarkTypes are the registered REMARK categories.
var remarkTypes = map[int]struct{}{
	0: {}, 1: {}, 2: {}, 3: {}, 4: {}, 5: {}, 100: {}, 200: {}, 205: {}, 210: {},
	215: {}, 217: {}, 230: {}, 240: {}, 245: {}, 247: {}, 250: {}, 265: {}, 280: {},
	285: {}, 290: {}, 300: {}, 350: {}, 375: {}, 400: {}, 450: {}, 465: {}, 470: {},
	475: {}, 480: {}, 500: {}, 525: {}, 600: {}, 610: {}, 615: {}, 620: {}, 630: {},
	650: {}, 700: {}, 800: {}, 900: {}, 999: {},
}

// IsRemarkType says if n is one of the registered remark categories.
func IsRemarkType(n int) bool {
	_, ok := remarkTypes[n]
	return ok
}

// Remark is one REMARK record, its category and text.
type Remark struct {
	Type int
	Text string
}

// Structure is what comes from one pdb file. It only grows. There is
// no way to remove a remark or an atom.
// It is not safe for concurrent writers.
type Structure struct {
	ident   string // empty means not set
	remarks []Remark
	atoms   []Atom
}

// NewStructure returns an empty structure.
func NewStructure() *Structure { return &Structure{} }

func (s *Structure) structErr(field, value, reason string) *InvalidValueError {
	return &InvalidValueError{Entity: "structure", Ident: s.ident, Field: field, Value: value, Reason: reason}
}

// Identifier returns the identifier and whether one has been set.
func (s *Structure) Identifier() (string, bool) { return s.ident, s.ident != "" }

// SetIdentifier stores id trimmed and upper cased. It fails if id has
// a bad character or is blank.
func (s *Structure) SetIdentifier(id string) error {
	t, ok := validate.NormalizeIdentifier(id)
	if !ok {
		return s.structErr("identifier", id, blank)
	}
	s.ident = t
	return nil
}

// AddRemark appends a remark. The type has to be registered and the
// text may only have allowed characters. Trailing blanks are dropped,
// as they are when a remark is read, and what is left must be no longer
// than MaxRemarkLen characters.
func (s *Structure) AddRemark(typ int, text string) error {
	if !IsRemarkType(typ) {
		return s.structErr("remark type", strconv.Itoa(typ), "not a registered remark type")
	}
	if !validate.IsValidIdentifier(text) {
		return s.structErr("remark text", text, badChars)
	}
	text = strings.TrimRight(text, " ")
	if utf8.RuneCountInString(text) > MaxRemarkLen {
		return s.structErr("remark text", text, "longer than "+strconv.Itoa(MaxRemarkLen))
	}
	s.remarks = append(s.remarks, Remark{Type: typ, Text: text})
	return nil
}

// Remarks returns a copy of the remarks in the order they were added.
func (s *Structure) Remarks() []Remark { return slices.Clone(s.remarks) }

func (s *Structure) NRemark() int { return len(s.remarks) }

// AddAtom appends an atom. It has already been checked by NewAtom, so
// this cannot fail.
func (s *Structure) AddAtom(a Atom) { s.atoms = append(s.atoms, a) }

func (s *Structure) NAtom() int { return len(s.atoms) }

// Atom returns a copy of atom i. It panics if i is out of range, like
// a slice would.
func (s *Structure) Atom(i int) Atom { return s.atoms[i] }

// Atoms iterates over the atoms in file order.
func (s *Structure) Atoms() iter.Seq2[int, Atom] {
	return func(yield func(int, Atom) bool) {
		for i, a := range s.atoms {
			if !yield(i, a) {
				return
			}
		}
	}
}

// EditAtom gives fn a copy of atom i to change with the setters.
// The copy is only stored if fn returns nil, so a group of changes is
// applied all or nothing.
func (s *Structure) EditAtom(i int, fn func(*Atom) error) error {
	a := s.atoms[i]
	if err := fn(&a); err != nil {
		return err
	}
	s.atoms[i] = a
	return nil
}

// ParAtoms calls fn on every atom in parallel, using nWorker goroutines
// (one per cpu if nWorker < 1). It is only for reading. Do not call it
// while the structure is still being built.
func (s *Structure) ParAtoms(ctx context.Context, nWorker int, fn func(i int, a Atom) error) error {
	return parEach(ctx, s.atoms, nWorker, fn)
}

// Positions returns the coordinates of all atoms, in file order.
func (s *Structure) Positions() cmmn.XyzSl {
	xyz := make(cmmn.XyzSl, len(s.atoms))
	for i, a := range s.atoms {
		xyz[i] = a.pos
	}
	return xyz
}

// CoordMatrix returns an n x 3 matrix of coordinates, one row per atom,
// in float32 for the numerical code downstream.
func (s *Structure) CoordMatrix() *matrix.FMatrix2d {
	m := matrix.NewFMatrix2d(len(s.atoms), 3)
	for i, a := range s.atoms {
		m.Mat[i][0] = float32(a.pos.X)
		m.Mat[i][1] = float32(a.pos.Y)
		m.Mat[i][2] = float32(a.pos.Z)
	}
	return m
}

// Equal compares identifiers, remarks and atoms (using Atom.Equal).
func (s *Structure) Equal(t *Structure) bool {
	return s.ident == t.ident &&
		slices.Equal(s.remarks, t.remarks) &&
		slices.EqualFunc(s.atoms, t.atoms, Atom.Equal)
}
