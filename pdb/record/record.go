// Package record turns one line of a pdb file into a typed record and
// turns atoms, headers and remarks back into lines.
// It knows nothing about a whole file. That is the job of package pdb.
//
// Every line is looked at as characters (runes), not bytes, so a
// stray non-ascii character does not shift the columns after it.
// The model will then refuse the character, but the error message
// names the right field.
package record

// Kind says which of the record types a line turned out to be.
type Kind byte

const (
	Ignorable Kind = iota // anything we do not handle
	Header
	Remark
	Atom // ATOM and HETATM
	ChainTerminator
	End
)

var kindNames = [...]string{"ignorable", "HEADER", "REMARK", "ATOM", "TER", "END"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// HeaderRec has the raw text of the columns in a HEADER line.
// Only the identifier is used when building a structure.
type HeaderRec struct {
	Title string // classification, columns 11-50
	Date  string // deposition date, columns 51-59
	Ident string // id code, columns 63-66
}

// RemarkRec is one REMARK line. Text is right trimmed.
type RemarkRec struct {
	Type int
	Text string
}

// AtomRec is everything we take from an ATOM or HETATM line.
// Strings are as they were in the columns, not trimmed, except the
// optional ones which are empty when blank.
type AtomRec struct {
	Hetero     bool
	Serial     int
	Name       string
	AltLoc     string
	ResName    string
	ChainID    string
	ResSeq     int
	ICode      string
	X, Y, Z    float64
	Occupancy  float64
	TempFactor float64
	SegID      string
	Element    string
	Charge     int
}

// Record is the result of decoding one line. Kind says which, if any,
// of the pointers is set.
type Record struct {
	Kind   Kind
	Header *HeaderRec
	Remark *RemarkRec
	Atom   *AtomRec
}
