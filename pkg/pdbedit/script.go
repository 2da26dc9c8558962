package pdbedit

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/andrew-torda/pdbrw/pdb/cmmn"
	"github.com/andrew-torda/pdbrw/pdb/model"
	"gopkg.in/yaml.v3"
)

// Script is what is in an edit file. Every part is optional, but an
// empty script is an error, since it is probably a mistake.
type Script struct {
	// Identifier replaces the one from the HEADER
	Identifier string `yaml:"identifier"`

	// Remarks are appended after the ones in the file
	Remarks []RemarkEdit `yaml:"remarks"`

	// Atoms are changes to atoms picked by serial number
	Atoms []AtomEdit `yaml:"atoms"`

	// Centre moves the centroid of all atoms to the origin
	Centre bool `yaml:"centre"`

	// Shift is added to every position, after centring
	Shift *cmmn.Xyz `yaml:"shift"`
}

// RemarkEdit is one remark to add.
type RemarkEdit struct {
	Type *int   `yaml:"type"`
	Text string `yaml:"text"`
}

// AtomEdit changes every atom with the given serial number. Fields that
// are not in the script are left alone, which is why they are pointers.
type AtomEdit struct {
	Serial     *int     `yaml:"serial"`
	Name       *string  `yaml:"name"`
	Element    *string  `yaml:"element"`
	ResName    *string  `yaml:"resname"`
	Chain      *string  `yaml:"chain"`
	Hetero     *bool    `yaml:"hetero"`
	X          *float64 `yaml:"x"`
	Y          *float64 `yaml:"y"`
	Z          *float64 `yaml:"z"`
	Occupancy  *float64 `yaml:"occupancy"`
	TempFactor *float64 `yaml:"tempfactor"`
	Charge     *int     `yaml:"charge"`
}

// ReadScript opens and decodes the script file and calls Check.
func ReadScript(fname string) (*Script, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	sc, err := DecodeScript(fp)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return sc, nil
}

// DecodeScript reads yaml from r. Unknown keys are an error, so a typo
// does not get silently ignored.
func DecodeScript(r io.Reader) (*Script, error) {
	var sc Script
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&sc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty script")
		}
		return nil, err
	}
	if err := sc.Check(); err != nil {
		return nil, fmt.Errorf("Check: %w", err)
	}
	return &sc, nil
}

// Check looks for mistakes that can be seen without a structure. The
// values themselves are checked by the model when they are applied.
func (sc *Script) Check() error {
	if sc.Identifier == "" && len(sc.Remarks) == 0 && len(sc.Atoms) == 0 && !sc.Centre && sc.Shift == nil {
		return errors.New("script does nothing")
	}
	if sc.Identifier != "" && strings.TrimSpace(sc.Identifier) == "" {
		return errors.New("identifier is blank")
	}
	for i, r := range sc.Remarks {
		if r.Type == nil {
			return fmt.Errorf("remark %d has no type", i+1)
		}
		if !model.IsRemarkType(*r.Type) {
			return fmt.Errorf("remark %d: %d is not a registered remark type", i+1, *r.Type)
		}
	}
	for i, a := range sc.Atoms {
		if a.Serial == nil {
			return fmt.Errorf("atom edit %d has no serial number", i+1)
		}
		if a == (AtomEdit{Serial: a.Serial}) {
			return fmt.Errorf("atom edit %d for serial %d changes nothing", i+1, *a.Serial)
		}
	}
	if sc.Shift != nil && !sc.Shift.Ok() {
		return errors.New("shift is not finite")
	}
	return nil
}
