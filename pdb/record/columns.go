package record

// The column layout of the records we read. Offsets count characters
// from zero and the end is exclusive, so serial {6, 11} is what the
// format documents call columns 7-11.
// need is the shortest line that carries the field. Lines shorter than
// need get dflt (numbers) or "" (text). need == 0 means the field is
// always there, because the record has a minimum length that covers it.

type colSpan struct {
	name       string
	start, end int
	need       int
	dflt       float64
}

const (
	headerMinLen = 66
	remarkMaxLen = 80
	remarkMinLen = 10
	atomMinLen   = 54
	chargeNeed   = 80
)

var headerCols = struct {
	title, date, ident colSpan
}{
	title: colSpan{name: "title", start: 10, end: 50},
	date:  colSpan{name: "date", start: 50, end: 59},
	ident: colSpan{name: "identifier", start: 62, end: 66},
}

var remarkCols = struct {
	typ, text colSpan
}{
	typ:  colSpan{name: "remark type", start: 7, end: 10},
	text: colSpan{name: "remark text", start: 11, end: remarkMaxLen},
}

var atomCols = struct {
	serial, name, altLoc, resName, chainID, resSeq, iCode,
	x, y, z, occupancy, tempFactor, segID, element, charge colSpan
}{
	serial:     colSpan{name: "serial number", start: 6, end: 11},
	name:       colSpan{name: "atom name", start: 12, end: 16},
	altLoc:     colSpan{name: "alternate location", start: 16, end: 17},
	resName:    colSpan{name: "residue name", start: 17, end: 20},
	chainID:    colSpan{name: "chain id", start: 21, end: 22},
	resSeq:     colSpan{name: "residue sequence number", start: 22, end: 26},
	iCode:      colSpan{name: "insertion code", start: 26, end: 27},
	x:          colSpan{name: "x", start: 30, end: 38},
	y:          colSpan{name: "y", start: 38, end: 46},
	z:          colSpan{name: "z", start: 46, end: 54},
	occupancy:  colSpan{name: "occupancy", start: 54, end: 60, need: 60, dflt: 1.0},
	tempFactor: colSpan{name: "temperature factor", start: 60, end: 66, need: 66, dflt: 0.0},
	segID:      colSpan{name: "segment id", start: 72, end: 76, need: 76},
	element:    colSpan{name: "element", start: 76, end: 78, need: 77},
	charge:     colSpan{name: "charge", start: 78, end: 80, need: chargeNeed},
}

// present says if a line of n characters carries the field.
func (c colSpan) present(n int) bool { return n >= c.need }

// cut returns the text of the field, clipped to the end of the line.
func (c colSpan) cut(line []rune) string {
	if c.start >= len(line) {
		return ""
	}
	return string(line[c.start:min(c.end, len(line))])
}
