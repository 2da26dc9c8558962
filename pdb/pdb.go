// Package pdb reads and writes structures in the old fixed column PDB
// format. Lines are decoded by package record and folded into a
// model.Structure, one line at a time. The first error stops the read
// and no partial structure comes back.
package pdb

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/andrew-torda/pdbrw/pdb/cmmn"
	"github.com/andrew-torda/pdbrw/pdb/model"
	"github.com/andrew-torda/pdbrw/pdb/record"
)

// Reader holds the settings for reading one file.
type Reader struct {
	rdr       io.Reader
	stopAtEnd bool
	logger    *log.Logger
}

// NewReader returns a reader that is lenient about END. Call DoFile to
// do the work.
func NewReader(rdr io.Reader) *Reader { return &Reader{rdr: rdr} }

// SetStopAtEnd true means we stop at the first END record. Everything
// after it is not even decoded. By default we read to the end of the
// input and TER and END have no effect.
func (r *Reader) SetStopAtEnd(b bool) { r.stopAtEnd = b }

// SetLogger sets where the one line summary of a read goes. nil
// means nowhere.
func (r *Reader) SetLogger(l *log.Logger) { r.logger = l }

// Read is NewReader(rdr).DoFile() for the common case.
func Read(rdr io.Reader) (*model.Structure, error) { return NewReader(rdr).DoFile() }

// DoFile reads lines until the input is finished and returns the
// structure. Decoding errors are *record.ParseError. Values that decode
// but are not allowed come back as a *model.InvalidValueError wrapped
// with the line number.
func (r *Reader) DoFile() (*model.Structure, error) {
	s := model.NewStructure()
	br := bufio.NewReader(r.rdr)
	nLine := 0
	for {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("could not read line %d: %w", nLine+1, err)
		}
		if line == "" && err == io.EOF {
			break
		}
		nLine++
		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
		rec, derr := record.Decode(line, nLine)
		if derr != nil {
			return nil, derr
		}
		if rec.Kind == record.End && r.stopAtEnd {
			break
		}
		if ferr := fold(s, rec); ferr != nil {
			return nil, fmt.Errorf("line %d: %w", nLine, ferr)
		}
		if err == io.EOF {
			break
		}
	}
	if r.logger != nil {
		id, _ := s.Identifier()
		r.logger.Printf("%q %d lines %d atoms %d remarks", id, nLine, s.NAtom(), s.NRemark())
	}
	return s, nil
}

// fold puts one record into the structure. Alternate location,
// insertion code and segment are dropped here.
func fold(s *model.Structure, rec record.Record) error {
	switch rec.Kind {
	case record.Header:
		return s.SetIdentifier(rec.Header.Ident)
	case record.Remark:
		return s.AddRemark(rec.Remark.Type, rec.Remark.Text)
	case record.Atom:
		ar := rec.Atom
		a, err := model.NewAtom(model.AtomVals{
			Hetero:     ar.Hetero,
			Serial:     ar.Serial,
			Name:       ar.Name,
			ResName:    ar.ResName,
			ChainID:    ar.ChainID,
			ResSeq:     ar.ResSeq,
			Pos:        cmmn.Xyz{X: ar.X, Y: ar.Y, Z: ar.Z},
			Occupancy:  ar.Occupancy,
			TempFactor: ar.TempFactor,
			Element:    ar.Element,
			Charge:     ar.Charge,
		})
		if err != nil {
			return err
		}
		s.AddAtom(a)
	}
	return nil
}

// Write puts s on w. With atomOnly, the header and remarks are left
// out. Every line is padded to record.MinLineLen and the atoms are
// followed by one TER line.
// The whole file is formatted before anything goes to w, so a value that
// does not fit its columns (*record.OverflowError) means nothing is
// written.
func Write(s *model.Structure, w io.Writer, atomOnly bool) error {
	var buf bytes.Buffer
	put := func(line string, err error) error {
		if err != nil {
			return err
		}
		buf.WriteString(record.Pad(line))
		buf.WriteByte('\n')
		return nil
	}
	if !atomOnly {
		if id, ok := s.Identifier(); ok {
			if err := put(record.EncodeHeader(id)); err != nil {
				return err
			}
		}
		for _, rmk := range s.Remarks() {
			if err := put(record.EncodeRemark(rmk)); err != nil {
				return err
			}
		}
	}
	for _, a := range s.Atoms() {
		if err := put(record.EncodeAtom(a)); err != nil {
			return err
		}
	}
	put(record.TerLine, nil)
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("writing structure: %w", err)
	}
	return nil
}
