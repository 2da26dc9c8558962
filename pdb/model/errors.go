package model

import (
	"strconv"
)

// InvalidValueError is what every constructor and setter in this package
// returns when it refuses a value. Nothing has been changed when one of
// these comes back.
type InvalidValueError struct {
	Entity string // "atom", "residue" or "structure"
	Serial int    // serial number of the owning atom or residue
	Ident  string // identifier of the owning structure
	Field  string // which field was being set
	Value  string // the rejected value, formatted
	Reason string
}

func (e *InvalidValueError) Error() string {
	owner := e.Entity
	switch {
	case e.Entity == "structure" && e.Ident != "":
		owner += " " + e.Ident
	case e.Entity != "structure":
		owner += " " + strconv.Itoa(e.Serial)
	}
	msg := "invalid " + e.Field + " for " + owner + ": " + strconv.Quote(e.Value)
	if e.Reason != "" {
		msg += " (" + e.Reason + ")"
	}
	return msg
}

// Reasons shared by atoms and residues.
const (
	badChars  = "invalid characters"
	notFinite = "not finite"
	negative  = "negative"
	blank     = "invalid characters or blank"
)

func atomErr(serial int, field, value, reason string) *InvalidValueError {
	return &InvalidValueError{Entity: "atom", Serial: serial, Field: field, Value: value, Reason: reason}
}
