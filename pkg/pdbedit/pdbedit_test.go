package pdbedit_test

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andrew-torda/pdbrw/pdb"
	"github.com/andrew-torda/pdbrw/pdb/cmmn"
	"github.com/andrew-torda/pdbrw/pdb/model"
	"github.com/andrew-torda/pdbrw/pdb/record"
	. "github.com/andrew-torda/pdbrw/pkg/pdbedit"
)

const input = `HEADER    LIGASE                                  01-JAN-00   7xyz
ATOM      1  N   GLY A   1       1.000   2.000   3.000  1.00 10.00           N
ATOM      2  CA  GLY A   1       3.000   4.000   5.000  1.00 11.00           C
HETATM    3 ZN    ZN A 100       5.000   6.000   7.000  1.00 12.00          ZN
`

func structure(t *testing.T) *model.Structure {
	t.Helper()
	s, err := pdb.Read(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func script(t *testing.T, y string) *Script {
	t.Helper()
	sc, err := DecodeScript(strings.NewReader(y))
	if err != nil {
		t.Fatal(err)
	}
	return sc
}

const fullScript = `
identifier: 9abc
remarks:
  - type: 3
    text: REFINED BY HAND
atoms:
  - serial: 2
    name: CB
    element: c
    tempfactor: 33.5
  - serial: 3
    charge: 2
    hetero: true
shift: {x: 1, y: -1, z: 0.5}
`

func TestApply(t *testing.T) {
	s := structure(t)
	n, err := Apply(s, script(t, fullScript))
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Error("wanted 2 atoms edited, got", n)
	}
	if id, _ := s.Identifier(); id != "9ABC" {
		t.Error("identifier", id)
	}
	if r := s.Remarks(); len(r) != 1 || r[0] != (model.Remark{Type: 3, Text: "REFINED BY HAND"}) {
		t.Error("remarks", r)
	}
	cb := s.Atom(1)
	if cb.Name() != "CB" || cb.Element() != "C" || cb.TempFactor() != 33.5 || cb.ResName() != "GLY" {
		t.Error("atom 2 not edited properly", cb)
	}
	if zn := s.Atom(2); zn.Charge() != 2 {
		t.Error("charge", zn.Charge())
	}
	if p := s.Atom(0).Pos(); p != (cmmn.Xyz{X: 2, Y: 1, Z: 3.5}) {
		t.Error("shift gave", p)
	}
}

func TestCentre(t *testing.T) {
	s := structure(t)
	if _, err := Apply(s, script(t, "centre: true\n")); err != nil {
		t.Fatal(err)
	}
	var sum cmmn.Xyz
	for _, a := range s.Atoms() {
		sum = sum.Add(a.Pos())
	}
	if math.Abs(sum.X)+math.Abs(sum.Y)+math.Abs(sum.Z) > 1e-9 {
		t.Error("centroid not at origin", sum)
	}
	if p := s.Atom(0).Pos(); p != (cmmn.Xyz{X: -2, Y: -2, Z: -2}) {
		t.Error("first atom at", p)
	}
}

// A bad value leaves that atom alone, even if other fields were fine.
func TestApplyBadValue(t *testing.T) {
	s := structure(t)
	before := s.Atom(1)
	_, err := Apply(s, script(t, "atoms:\n  - serial: 2\n    name: CB\n    resname: GLYCINE\n"))
	var ive *model.InvalidValueError
	if err == nil || !errors.As(err, &ive) || ive.Field != "residue name" {
		t.Fatal("wanted residue name error, got", err)
	}
	if after := s.Atom(1); !after.Equal(before) || after.Name() != "CA" {
		t.Error("atom changed despite error", after)
	}
	if _, err = Apply(s, script(t, "atoms:\n  - serial: 77\n    name: CB\n")); err == nil {
		t.Error("missing serial accepted")
	}
}

func TestScriptCheck(t *testing.T) {
	bad := []string{
		"",
		"identifier: '   '\n",
		"centre: false\n",
		"remarks:\n  - text: no type\n",
		"remarks:\n  - type: 998\n    text: unregistered\n",
		"atoms:\n  - name: CB\n",
		"atoms:\n  - serial: 1\n",
		"colour: blue\n",
		"atoms:\n  - serial: 1\n    nmae: CB\n",
		"shift: {x: .nan, y: 0, z: 0}\n",
		"identifier: [not, a, string]\n",
	}
	for _, y := range bad {
		if _, err := DecodeScript(strings.NewReader(y)); err == nil {
			t.Errorf("script %q should fail", y)
		}
	}
}

func TestMymain(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.pdb")
	out := filepath.Join(dir, "out.pdb.gz")
	scr := filepath.Join(dir, "edit.yaml")
	logf := filepath.Join(dir, "log")
	if err := os.WriteFile(in, []byte(input), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(scr, []byte(fullScript), 0o644); err != nil {
		t.Fatal(err)
	}
	flags := CmdFlag{Script: scr, LogFile: logf}
	if err := Mymain(&flags, in, out); err != nil {
		t.Fatal(err)
	}
	s, err := pdb.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if id, _ := s.Identifier(); id != "9ABC" || s.Atom(1).Name() != "CB" {
		t.Error("edits lost on the way to the file")
	}
	if b, _ := os.ReadFile(logf); !strings.Contains(string(b), "2 atoms edited") {
		t.Errorf("log has %q", b)
	}
	flags.Script = filepath.Join(dir, "missing.yaml")
	if err := Mymain(&flags, in, out); err == nil {
		t.Error("missing script accepted")
	}
}

func TestApplyBadRemark(t *testing.T) {
	s := structure(t)
	_, err := Apply(s, script(t, "remarks:\n  - type: 3\n    text: \"hi\\nHETATM junk\"\n"))
	var ive *model.InvalidValueError
	if !errors.As(err, &ive) || ive.Field != "remark text" {
		t.Error("wanted remark text error, got", err)
	}
	if s.NRemark() != 0 {
		t.Error("bad remark was stored")
	}
}

// Shifting atoms past the edge of their columns must not give a file.
func TestMymainOverflow(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.pdb")
	out := filepath.Join(dir, "out.pdb")
	scr := filepath.Join(dir, "edit.yaml")
	if err := os.WriteFile(in, []byte(input), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(scr, []byte("shift: {x: 20000, y: 0, z: 0}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	err := Mymain(&CmdFlag{Script: scr}, in, out)
	var oe *record.OverflowError
	if !errors.As(err, &oe) || oe.Field != "x" {
		t.Error("wanted x overflow, got", err)
	}
	if _, err := os.Stat(out); !errors.Is(err, os.ErrNotExist) {
		t.Error("output file left behind", err)
	}
}
