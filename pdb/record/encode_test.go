package record_test

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/andrew-torda/pdbrw/pdb/cmmn"
	"github.com/andrew-torda/pdbrw/pdb/model"
	. "github.com/andrew-torda/pdbrw/pdb/record"
)

func newAtom(t *testing.T, v model.AtomVals) model.Atom {
	t.Helper()
	a, err := model.NewAtom(v)
	if err != nil {
		t.Fatal(err)
	}
	return a
}

func encode(t *testing.T, a model.Atom) string {
	t.Helper()
	line, err := EncodeAtom(a)
	if err != nil {
		t.Fatal(err)
	}
	return line
}

var nitrogen = model.AtomVals{
	Serial: 1, Name: "N", ResName: "ALA", ChainID: "A", ResSeq: 1,
	Pos: cmmn.Xyz{X: 11.104, Y: 13.207, Z: 2.123}, Occupancy: 1, TempFactor: 20,
	Element: "N",
}

func TestEncodeAtom(t *testing.T) {
	line := encode(t, newAtom(t, nitrogen))
	want := "ATOM      1  N   ALA A1         11.104  13.207   2.123  1.00 20.00           N"
	if line != want {
		t.Errorf("got\n%q\nwanted\n%q", line, want)
	}
	padded := Pad(line)
	if n := utf8.RuneCountInString(padded); n < MinLineLen {
		t.Error("padded line too short", n)
	}
	if !strings.HasSuffix(strings.TrimRight(padded, " "), " N") {
		t.Error("uncharged atom should end in its element:", padded)
	}

	v := nitrogen
	v.Hetero = true
	v.Charge = -2
	v.Element = "O"
	line = encode(t, newAtom(t, v))
	if !strings.HasPrefix(line, "HETATM") || !strings.HasSuffix(line, " O2-") {
		t.Errorf("bad hetero line %q", line)
	}
}

// Whatever we write, we can read back.
func TestEncodeDecodeAtom(t *testing.T) {
	v := model.AtomVals{
		Hetero: true, Serial: 9876, Name: "FE", ResName: "HEM", ChainID: "",
		ResSeq: 301, Pos: cmmn.Xyz{X: -1.5, Y: 999.999, Z: -99.125},
		Occupancy: 0.5, TempFactor: 45.67, Element: "FE", Charge: 3,
	}
	a := newAtom(t, v)
	if err := a.SetAltLoc("B"); err != nil {
		t.Fatal(err)
	}
	rec, err := Decode(Pad(encode(t, a)), 1)
	if err != nil {
		t.Fatal(err)
	}
	r := rec.Atom
	if !r.Hetero || r.Serial != 9876 || strings.TrimSpace(r.Name) != "FE" ||
		r.ResName != "HEM" || r.ChainID != " " || r.ResSeq != 301 ||
		r.X != -1.5 || r.Y != 999.999 || r.Z != -99.125 ||
		r.Occupancy != 0.5 || r.TempFactor != 45.67 ||
		r.Element != "FE" || r.Charge != 3 || r.AltLoc != "B" {
		t.Errorf("read back %+v", r)
	}
}

func TestCentre(t *testing.T) {
	tcases := map[string]string{
		"":       "    ",
		"N":      " N  ",
		"CA":     " CA ",
		"CB1":    "CB1 ",
		"HG12":   "HG12",
		"LONGER": "LONGER",
	}
	for in, want := range tcases {
		if got := Centre(in, 4); got != want {
			t.Errorf("centre(%q) gave %q wanted %q", in, got, want)
		}
	}
}

func TestChargeStr(t *testing.T) {
	tcases := map[int]string{0: "", 1: "1+", 9: "9+", -1: "1-", -9: "9-"}
	for c, want := range tcases {
		if got := ChargeStr(c); got != want {
			t.Errorf("charge %d gave %q wanted %q", c, got, want)
		}
	}
}

func TestPad(t *testing.T) {
	if s := Pad(TerLine); len(s) != MinLineLen || !strings.HasPrefix(s, "TER ") {
		t.Errorf("bad TER line %q", s)
	}
	long := strings.Repeat("x", MinLineLen+3)
	if Pad(long) != long {
		t.Error("long line changed")
	}
	if s := Pad("ÅÅ"); utf8.RuneCountInString(s) != MinLineLen {
		t.Error("padding counts bytes, not characters")
	}
}

func TestEncodeHeaderRemark(t *testing.T) {
	for _, id := range []string{"1ABC", "9X"} {
		line, err := EncodeHeader(id)
		if err != nil {
			t.Fatal(err)
		}
		rec, err := Decode(Pad(line), 1)
		if err != nil {
			t.Fatal(err)
		}
		if rec.Kind != Header || strings.TrimSpace(rec.Header.Ident) != id {
			t.Errorf("identifier %q came back as %+v", id, rec.Header)
		}
	}
	longest := strings.Repeat("x", 69)
	for _, r := range []model.Remark{{Type: 3, Text: "RESOLUTION."}, {Type: 900, Text: ""}, {Type: 2, Text: "RESOLUTION. 1.74 ANGSTROMS."}, {Type: 999, Text: longest}} {
		line, err := EncodeRemark(r)
		if err != nil {
			t.Fatal(err)
		}
		rec, err := Decode(Pad(line), 1)
		if err != nil {
			t.Fatal(line, err)
		}
		if *rec.Remark != (RemarkRec{Type: r.Type, Text: r.Text}) {
			t.Errorf("remark %+v came back as %+v", r, rec.Remark)
		}
	}
	if s, _ := EncodeRemark(model.Remark{Type: 3, Text: "RESOLUTION."}); s != "REMARK   3 RESOLUTION." {
		t.Errorf("bad remark line %q", s)
	}
}

func TestEncodeHeaderRemarkOverflow(t *testing.T) {
	var oe *OverflowError
	line, err := EncodeHeader("ABCDE")
	if !errors.As(err, &oe) || oe.Field != "identifier" || oe.Width != 4 || line != "" {
		t.Errorf("long identifier gave %q %v", line, err)
	}
	// 70 characters is allowed in a structure, but the line would be 81 long
	line, err = EncodeRemark(model.Remark{Type: 3, Text: strings.Repeat("x", 70)})
	if !errors.As(err, &oe) || oe.Record != "REMARK" || oe.Width != 69 || line != "" {
		t.Errorf("long remark gave %q %v", line, err)
	}
}

// Values at the edge of their columns are written and read back.
// One step further and we get an error instead of a shifted line.
func TestEncodeAtomOverflow(t *testing.T) {
	tcases := []struct {
		edit  func(v *model.AtomVals)
		field string // empty if the value fits
	}{
		{func(v *model.AtomVals) { v.Serial = 99999 }, ""},
		{func(v *model.AtomVals) { v.Serial = 100000 }, "serial number"},
		{func(v *model.AtomVals) { v.ResSeq = 9999 }, ""},
		{func(v *model.AtomVals) { v.ResSeq = 10000 }, "residue sequence number"},
		{func(v *model.AtomVals) { v.Pos.X = 9999.999 }, ""},
		{func(v *model.AtomVals) { v.Pos.X = 10000 }, "x"},
		{func(v *model.AtomVals) { v.Pos.X = 9999.9996 }, "x"},
		{func(v *model.AtomVals) { v.Pos.X = -999.999 }, ""},
		{func(v *model.AtomVals) { v.Pos.X = -1000.5 }, "x"},
		{func(v *model.AtomVals) { v.Pos.Y = -1000 }, "y"},
		{func(v *model.AtomVals) { v.Pos.Z = 12345.5 }, "z"},
		{func(v *model.AtomVals) { v.Occupancy = 999.99 }, ""},
		{func(v *model.AtomVals) { v.Occupancy = 1000 }, "occupancy"},
		{func(v *model.AtomVals) { v.TempFactor = -99.99 }, ""},
		{func(v *model.AtomVals) { v.TempFactor = -100 }, "temperature factor"},
		{func(v *model.AtomVals) { v.Name = "HG12" }, ""},
		{func(v *model.AtomVals) { v.Name = "HG123" }, "atom name"},
		{func(v *model.AtomVals) { v.Element = "FE" }, ""},
		{func(v *model.AtomVals) { v.Element = "FEX" }, "element"},
		{func(v *model.AtomVals) { v.ResName = "HEM" }, ""},
		{func(v *model.AtomVals) { v.ResName = "HEME" }, "residue name"},
	}
	for i, tc := range tcases {
		v := nitrogen
		tc.edit(&v)
		a := newAtom(t, v)
		line, err := EncodeAtom(a)
		if tc.field != "" {
			var oe *OverflowError
			if !errors.As(err, &oe) {
				t.Errorf("case %d: wanted OverflowError, got %v and line %q", i, err, line)
				continue
			}
			if oe.Field != tc.field || oe.Serial != v.Serial || oe.Record != "ATOM" || line != "" {
				t.Errorf("case %d: wrong error %+v", i, oe)
			}
			continue
		}
		if err != nil {
			t.Errorf("case %d: %v", i, err)
			continue
		}
		rec, err := Decode(Pad(line), 1)
		if err != nil {
			t.Errorf("case %d: %v", i, err)
			continue
		}
		r := rec.Atom
		if r.Serial != a.Serial() || r.ResSeq != a.ResSeq() ||
			r.X != a.X() || r.Y != a.Y() || r.Z != a.Z() ||
			r.Occupancy != a.Occupancy() || r.TempFactor != a.TempFactor() ||
			strings.TrimSpace(r.Name) != a.Name() || strings.TrimSpace(r.Element) != a.Element() ||
			r.ResName != a.ResName() {
			t.Errorf("case %d: %v read back as %+v", i, a, r)
		}
	}
}
