package record

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/andrew-torda/pdbrw/pdb/model"
)

// MinLineLen is the width every line we write is padded to.
const MinLineLen = 70

// TerLine ends the atoms. It gets padded like everything else.
const TerLine = "TER"

const atomFmt = "%s%5s %s%-1s%-4s%-1s%-4s%-1s   %8s%8s%8s%6s%6s          %2s%s"

// OverflowError says a value is too wide for its columns. Writing it
// anyway would shift everything after it and the line would read back
// with different numbers.
type OverflowError struct {
	Record string // "ATOM", "HETATM", "HEADER" or "REMARK"
	Serial int    // of the atom, zero for other records
	Field  string
	Value  string
	Width  int
}

func (e *OverflowError) Error() string {
	owner := e.Record
	if e.Record == strings.TrimSpace(tagAtom) || e.Record == tagHetatm {
		owner += " " + strconv.Itoa(e.Serial)
	}
	return fmt.Sprintf("%s: %s %q does not fit in %d columns", owner, e.Field, e.Value, e.Width)
}

// filler checks fields against the column table as a line is built.
// The first field that does not fit sticks.
type filler struct {
	record string
	serial int
	err    *OverflowError
}

func (f *filler) put(col colSpan, s string) string {
	w := col.end - col.start
	if f.err == nil && utf8.RuneCountInString(s) > w {
		f.err = &OverflowError{Record: f.record, Serial: f.serial, Field: col.name, Value: s, Width: w}
	}
	return s
}

func (f *filler) int(col colSpan, n int) string { return f.put(col, strconv.Itoa(n)) }

func (f *filler) float(col colSpan, x float64, prec int) string {
	return f.put(col, strconv.FormatFloat(x, 'f', prec, 64))
}

// Pad fills s with spaces on the right out to MinLineLen characters.
// Longer lines are left alone.
func Pad(s string) string {
	n := utf8.RuneCountInString(s)
	if n >= MinLineLen {
		return s
	}
	return s + strings.Repeat(" ", MinLineLen-n)
}

// centre puts s in the middle of a field of width w. If the padding is
// odd, the extra space goes on the right. Nothing is cut off.
func centre(s string, w int) string {
	n := utf8.RuneCountInString(s)
	if n >= w {
		return s
	}
	left := (w - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", w-n-left)
}

// chargeStr is the inverse of the decoder. No charge is written as
// nothing at all, not as "0+".
func chargeStr(c int) string {
	switch {
	case c > 0:
		return strconv.Itoa(c) + "+"
	case c < 0:
		return strconv.Itoa(-c) + "-"
	}
	return ""
}

// EncodeAtom gives the ATOM or HETATM line for a, without padding or
// newline. A value too wide for its columns, like a serial over 99999
// or x below -999.999, gives an *OverflowError and no line.
func EncodeAtom(a model.Atom) (string, error) {
	tag := tagAtom
	if a.Hetero() {
		tag = tagHetatm
	}
	f := filler{record: strings.TrimSpace(tag), serial: a.Serial()}
	p := a.Pos()
	line := fmt.Sprintf(atomFmt, tag,
		f.int(atomCols.serial, a.Serial()),
		centre(f.put(atomCols.name, a.Name()), 4),
		f.put(atomCols.altLoc, a.AltLoc()),
		f.put(atomCols.resName, a.ResName()),
		f.put(atomCols.chainID, a.ChainID()),
		f.int(atomCols.resSeq, a.ResSeq()),
		f.put(atomCols.iCode, a.ICode()),
		f.float(atomCols.x, p.X, 3),
		f.float(atomCols.y, p.Y, 3),
		f.float(atomCols.z, p.Z, 3),
		f.float(atomCols.occupancy, a.Occupancy(), 2),
		f.float(atomCols.tempFactor, a.TempFactor(), 2),
		f.put(atomCols.element, a.Element()),
		f.put(atomCols.charge, chargeStr(a.Charge())))
	if f.err != nil {
		return "", f.err
	}
	return line, nil
}

// EncodeHeader puts the identifier where the decoder looks for it, at
// column 62.
func EncodeHeader(ident string) (string, error) {
	f := filler{record: tagHeader}
	f.put(headerCols.ident, ident)
	if f.err != nil {
		return "", f.err
	}
	return tagHeader + strings.Repeat(" ", headerCols.ident.start-tagLen) + ident, nil
}

// EncodeRemark gives a REMARK line with the type right justified in
// columns 7-10. The text may not run past the last remark column.
func EncodeRemark(r model.Remark) (string, error) {
	f := filler{record: tagRemark}
	line := fmt.Sprintf("%s %3s %s", tagRemark, f.int(remarkCols.typ, r.Type), f.put(remarkCols.text, r.Text))
	if f.err != nil {
		return "", f.err
	}
	return line, nil
}
