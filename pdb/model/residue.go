package model

import (
	"cmp"
	"context"
	"fmt"
	"iter"
	"slices"
	"strconv"

	"github.com/andrew-torda/pdbrw/pdb/validate"
)

// Residue groups atoms under a name and number. A Structure does not
// use residues. If you collect atoms in residues, do not also add them
// to a Structure.
type Residue struct {
	name   string
	serial int
	atoms  []Atom
}

// NewResidue checks the name and serial number. Any atoms given are
// appended in order.
func NewResidue(name string, serial int, atoms ...Atom) (*Residue, error) {
	t, ok := validate.NormalizeIdentifier(name)
	if !ok {
		return nil, &InvalidValueError{Entity: "residue", Serial: serial, Field: "name", Value: name, Reason: blank}
	}
	if serial < 0 {
		return nil, &InvalidValueError{Entity: "residue", Serial: serial, Field: "serial number", Value: strconv.Itoa(serial), Reason: negative}
	}
	return &Residue{name: t, serial: serial, atoms: slices.Clone(atoms)}, nil
}

func (r *Residue) Name() string { return r.name }
func (r *Residue) Serial() int  { return r.serial }

func (r *Residue) SetName(name string) error {
	t, ok := validate.NormalizeIdentifier(name)
	if !ok {
		return &InvalidValueError{Entity: "residue", Serial: r.serial, Field: "name", Value: name, Reason: blank}
	}
	r.name = t
	return nil
}

func (r *Residue) SetSerial(n int) error {
	if n < 0 {
		return &InvalidValueError{Entity: "residue", Serial: r.serial, Field: "serial number", Value: strconv.Itoa(n), Reason: negative}
	}
	r.serial = n
	return nil
}

func (r *Residue) AddAtom(a Atom) { r.atoms = append(r.atoms, a) }
func (r *Residue) NAtom() int     { return len(r.atoms) }

// Atom returns atom i and false if there is no such atom.
func (r *Residue) Atom(i int) (Atom, bool) {
	if i < 0 || i >= len(r.atoms) {
		return Atom{}, false
	}
	return r.atoms[i], true
}

// Atoms iterates over the atoms in the order they were added.
func (r *Residue) Atoms() iter.Seq2[int, Atom] {
	return func(yield func(int, Atom) bool) {
		for i, a := range r.atoms {
			if !yield(i, a) {
				return
			}
		}
	}
}

// EditAtom works like Structure.EditAtom. It returns false if there is
// no atom i.
func (r *Residue) EditAtom(i int, fn func(*Atom) error) (bool, error) {
	if i < 0 || i >= len(r.atoms) {
		return false, nil
	}
	a := r.atoms[i]
	if err := fn(&a); err != nil {
		return true, err
	}
	r.atoms[i] = a
	return true, nil
}

// ParAtoms is the read only parallel loop over the atoms.
func (r *Residue) ParAtoms(ctx context.Context, nWorker int, fn func(i int, a Atom) error) error {
	return parEach(ctx, r.atoms, nWorker, fn)
}

// Equal compares name, serial number and the atoms.
func (r *Residue) Equal(o *Residue) bool {
	return r.name == o.name && r.serial == o.serial && slices.EqualFunc(r.atoms, o.atoms, Atom.Equal)
}

// Compare orders by serial number only.
func (r *Residue) Compare(o *Residue) int { return cmp.Compare(r.serial, o.serial) }

func (r *Residue) String() string {
	return fmt.Sprintf("Residue Number: %d, Name: %s, Atoms: %d", r.serial, r.name, len(r.atoms))
}
