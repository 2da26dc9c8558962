package record

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/andrew-torda/pdbrw/pkg/white"
)

// Record names in the first six columns.
const (
	tagHeader = "HEADER"
	tagRemark = "REMARK"
	tagHetatm = "HETATM"
	tagAtom   = "ATOM  "
	tagTer    = "TER   "
	tagEnd    = "END   "
	tagLen    = 6
)

// Decode looks at one line, without its newline, and returns what it
// is. lineNum is only used for error messages.
// Lines longer than six characters are matched on the full six column
// tag. Anything else, including short lines like a bare "TER", is
// checked for a TER or END word at the start. Everything else is
// Ignorable, which is not an error.
func Decode(line string, lineNum int) (Record, error) {
	rl := []rune(line)
	if len(rl) > tagLen {
		switch string(rl[:tagLen]) {
		case tagHeader:
			return decodeHeader(rl, lineNum)
		case tagRemark:
			return decodeRemark(rl, lineNum)
		case tagHetatm:
			return decodeAtom(rl, lineNum, true)
		case tagAtom:
			return decodeAtom(rl, lineNum, false)
		case tagTer:
			return Record{Kind: ChainTerminator}, nil
		case tagEnd:
			return Record{Kind: End}, nil
		}
	}
	if len(rl) > 2 {
		switch {
		case isWord(rl, "TER"):
			return Record{Kind: ChainTerminator}, nil
		case isWord(rl, "END"):
			return Record{Kind: End}, nil
		}
	}
	return Record{Kind: Ignorable}, nil
}

// isWord is true if the line starts with w, followed by nothing or a
// blank. This stops ENDMDL from looking like END.
func isWord(rl []rune, w string) bool {
	n := len(w)
	if len(rl) < n || string(rl[:n]) != w {
		return false
	}
	return len(rl) == n || rl[n] == ' '
}

// cutter slices fields out of one line. The first error sticks and
// later calls do nothing, so a decode function can read all its fields
// and check once at the end.
type cutter struct {
	line []rune
	n    int // line number
	err  *ParseError
}

func (c *cutter) fail(kind ErrKind, col colSpan, raw, desc string, err error) {
	if c.err != nil {
		return
	}
	c.err = &ParseError{
		Line: c.n, Kind: kind, Field: col.name, Raw: raw,
		Inline: string(c.line), Desc: desc, Err: err,
	}
}

func (c *cutter) text(col colSpan) string {
	if !col.present(len(c.line)) {
		return ""
	}
	return col.cut(c.line)
}

// optional gives a trimmed field, empty if it is blank or missing.
func (c *cutter) optional(col colSpan) string { return strings.TrimSpace(c.text(col)) }

// uint parses an unsigned decimal after squashing out all white space.
func (c *cutter) uint(col colSpan) int {
	if c.err != nil {
		return 0
	}
	raw := col.cut(c.line)
	n, err := strconv.ParseUint(white.String(raw), 10, 31)
	if err != nil {
		c.fail(BadNumber, col, raw, "cannot parse as unsigned integer", err)
		return 0
	}
	return int(n)
}

// float parses a float after squashing white space. If the line is too
// short for the field, we get the field's default.
func (c *cutter) float(col colSpan) float64 {
	if c.err != nil {
		return 0
	}
	if !col.present(len(c.line)) {
		return col.dflt
	}
	raw := col.cut(c.line)
	f, err := strconv.ParseFloat(white.String(raw), 64)
	if err != nil {
		c.fail(BadNumber, col, raw, "cannot parse as float", err)
		return 0
	}
	return f
}

// charge is a digit followed by a sign, like "2+". Two blanks mean no
// charge. The sign is applied, so "2-" gives -2.
func (c *cutter) charge() int {
	col := atomCols.charge
	if c.err != nil || !col.present(len(c.line)) {
		return 0
	}
	d, s := c.line[col.start], c.line[col.start+1]
	if unicode.IsSpace(d) && unicode.IsSpace(s) {
		return 0
	}
	raw := string([]rune{d, s})
	if d < '0' || d > '9' {
		c.fail(BadCharge, col, raw, "atom charge is not numeric ([0-9][+-])", nil)
		return 0
	}
	n := int(d - '0')
	switch s {
	case '+':
		return n
	case '-':
		return -n
	}
	c.fail(BadCharge, col, raw, "atom charge is not properly signed ([0-9][+-])", nil)
	return 0
}

// columnErr is for a line that is too short or too long for its record.
func columnErr(rl []rune, n int, desc string) *ParseError {
	return &ParseError{Line: n, Kind: ColumnViolation, Inline: string(rl), Desc: desc}
}

func decodeHeader(rl []rune, n int) (Record, error) {
	if len(rl) < headerMinLen {
		return Record{}, columnErr(rl, n, "Header is too short, need "+strconv.Itoa(headerMinLen)+" characters")
	}
	c := cutter{line: rl, n: n}
	h := HeaderRec{
		Title: c.text(headerCols.title),
		Date:  c.text(headerCols.date),
		Ident: c.text(headerCols.ident),
	}
	return Record{Kind: Header, Header: &h}, nil
}

func decodeRemark(rl []rune, n int) (Record, error) {
	if len(rl) > remarkMaxLen {
		return Record{}, columnErr(rl, n, "Remark is too long, limit is "+strconv.Itoa(remarkMaxLen)+" characters")
	}
	if len(rl) < remarkMinLen {
		return Record{}, columnErr(rl, n, "Remark is too short for its type field")
	}
	c := cutter{line: rl, n: n}
	r := RemarkRec{Type: c.uint(remarkCols.typ)}
	if c.err != nil {
		return Record{}, c.err
	}
	r.Text = strings.TrimRightFunc(remarkCols.text.cut(rl), unicode.IsSpace)
	return Record{Kind: Remark, Remark: &r}, nil
}

func decodeAtom(rl []rune, n int, hetero bool) (Record, error) {
	if len(rl) < atomMinLen {
		return Record{}, columnErr(rl, n, "Atom line is too short, need "+strconv.Itoa(atomMinLen)+" characters")
	}
	c := cutter{line: rl, n: n}
	a := AtomRec{
		Hetero:     hetero,
		Serial:     c.uint(atomCols.serial),
		Name:       c.text(atomCols.name),
		AltLoc:     c.optional(atomCols.altLoc),
		ResName:    c.text(atomCols.resName),
		ChainID:    c.text(atomCols.chainID),
		ResSeq:     c.uint(atomCols.resSeq),
		ICode:      c.optional(atomCols.iCode),
		X:          c.float(atomCols.x),
		Y:          c.float(atomCols.y),
		Z:          c.float(atomCols.z),
		Occupancy:  c.float(atomCols.occupancy),
		TempFactor: c.float(atomCols.tempFactor),
		SegID:      c.optional(atomCols.segID),
		Element:    c.text(atomCols.element),
		Charge:     c.charge(),
	}
	if c.err != nil {
		return Record{}, c.err
	}
	return Record{Kind: Atom, Atom: &a}, nil
}
