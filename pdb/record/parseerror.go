// An error implementation that saves the line number and the
// line we were trying to read.
package record

import (
	"strconv"
)

const maxMsgLen = 70

// ErrKind separates the ways a line can be broken.
type ErrKind byte

const (
	ColumnViolation ErrKind = iota // line too short or too long for its record type
	BadNumber                      // a numeric column would not parse
	BadCharge                      // the charge columns are not digit and sign
)

// ParseError is returned for any line we cannot decode. It is about
// the file, not about the values in it. Values that decode but are not
// allowed give a model.InvalidValueError instead.
type ParseError struct {
	Line   int    // 1-based line number
	Kind   ErrKind
	Field  string // name of the column, if one is to blame
	Raw    string // the text of that column
	Inline string // the line that provoked the error
	Desc   string
	Err    error // from strconv, if that is where it came from
}

func firstPart(s string) string {
	r := []rune(s)
	if len(r) > maxMsgLen {
		r = r[:maxMsgLen]
	}
	return string(r)
}

// Error gives the line number, the description and the start of the
// offending line.
func (e *ParseError) Error() string {
	var errmsg string
	if e.Line != 0 {
		errmsg = "Line: " + strconv.Itoa(e.Line) + " "
	}
	errmsg += e.Desc
	if e.Field != "" {
		errmsg += " in " + e.Field + " " + strconv.Quote(e.Raw)
	}
	if e.Line != 0 {
		errmsg += "\nLine starting with\n" + firstPart(e.Inline)
	}
	return errmsg
}

func (e *ParseError) Unwrap() error { return e.Err }
