// Package pdbedit applies a yaml script of changes to a structure. Every
// change goes through the model's checks and the writer refuses values
// that do not fit their columns, so a script cannot produce a file that
// would not read back. A shift that moves an atom out past x = 9999.999
// is an error and nothing is written.
package pdbedit

import (
	"fmt"

	"github.com/andrew-torda/pdbrw/pdb"
	"github.com/andrew-torda/pdbrw/pdb/cmmn"
	"github.com/andrew-torda/pdbrw/pdb/geom"
	"github.com/andrew-torda/pdbrw/pdb/model"
	"github.com/andrew-torda/pdbrw/pkg/common"
)

// CmdFlag is literally command line flags after parsing
type CmdFlag struct {
	Script   string // name of the yaml file
	AtomOnly bool
	LogFile  string
}

// editAtom applies the fields present in e to a.
func editAtom(a *model.Atom, e AtomEdit) error {
	if e.Hetero != nil {
		a.SetHetero(*e.Hetero)
	}
	type strSet struct {
		v  *string
		fn func(string) error
	}
	for _, s := range []strSet{
		{e.Name, a.SetName}, {e.Element, a.SetElement},
		{e.ResName, a.SetResName}, {e.Chain, a.SetChainID},
	} {
		if s.v == nil {
			continue
		}
		if err := s.fn(*s.v); err != nil {
			return err
		}
	}
	type fltSet struct {
		v  *float64
		fn func(float64) error
	}
	for _, f := range []fltSet{
		{e.X, a.SetX}, {e.Y, a.SetY}, {e.Z, a.SetZ},
		{e.Occupancy, a.SetOccupancy}, {e.TempFactor, a.SetTempFactor},
	} {
		if f.v == nil {
			continue
		}
		if err := f.fn(*f.v); err != nil {
			return err
		}
	}
	if e.Charge != nil {
		return a.SetCharge(*e.Charge)
	}
	return nil
}

// moveAll adds d to every position.
func moveAll(s *model.Structure, d cmmn.Xyz) error {
	for i := range s.NAtom() {
		err := s.EditAtom(i, func(a *model.Atom) error { return a.SetPos(a.Pos().Add(d)) })
		if err != nil {
			return err
		}
	}
	return nil
}

// Apply makes the changes in sc to s. It returns the number of atoms
// changed by the atom edits. If an edit fails, the atom it was working
// on is unchanged, but earlier edits have been done.
func Apply(s *model.Structure, sc *Script) (int, error) {
	if sc.Identifier != "" {
		if err := s.SetIdentifier(sc.Identifier); err != nil {
			return 0, err
		}
	}
	for _, r := range sc.Remarks {
		if err := s.AddRemark(*r.Type, r.Text); err != nil {
			return 0, err
		}
	}
	nEdit := 0
	for _, e := range sc.Atoms {
		found := false
		for i, a := range s.Atoms() {
			if a.Serial() != *e.Serial {
				continue
			}
			found = true
			if err := s.EditAtom(i, func(a *model.Atom) error { return editAtom(a, e) }); err != nil {
				return nEdit, err
			}
			nEdit++
		}
		if !found {
			return nEdit, fmt.Errorf("no atom with serial number %d", *e.Serial)
		}
	}
	if sc.Centre {
		c, err := geom.Centroid(s.Positions())
		if err != nil {
			return nEdit, fmt.Errorf("centre: %w", err)
		}
		if err := moveAll(s, cmmn.Xyz{X: -c.X, Y: -c.Y, Z: -c.Z}); err != nil {
			return nEdit, err
		}
	}
	if sc.Shift != nil {
		if err := moveAll(s, *sc.Shift); err != nil {
			return nEdit, err
		}
	}
	return nEdit, nil
}

// Mymain is the top level main, after parsing the command line.
func Mymain(flags *CmdFlag, infile, outfile string) error {
	outlog, logfp, err := common.LogWhere(flags.LogFile)
	if err != nil {
		return err
	}
	if logfp != nil {
		defer logfp.Close()
	}
	sc, err := ReadScript(flags.Script)
	if err != nil {
		return err
	}
	s, err := pdb.ReadFile(infile)
	if err != nil {
		return err
	}
	n, err := Apply(s, sc)
	if err != nil {
		return fmt.Errorf("applying %s: %w", flags.Script, err)
	}
	if err := pdb.WriteFile(s, outfile, flags.AtomOnly); err != nil {
		return err
	}
	outlog.Println(infile, "->", outfile, n, "atoms edited")
	return nil
}
