package pdb

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/andrew-torda/pdbrw/pdb/cmmn"
	"github.com/andrew-torda/pdbrw/pdb/model"
	"github.com/andrew-torda/pdbrw/pdb/zwrap"
	"github.com/andrew-torda/pdbrw/pkg/common"
	"github.com/edsrzf/mmap-go"
)

const (
	oldFmt byte = iota
	mmcifFmt
	unkFmt
)

// ErrMmcif comes back if we are handed an mmcif file. We only read the
// old format.
var ErrMmcif = errors.New("mmcif format is not handled, only old pdb format")

// sniffLen is how much of a file we look at to guess its format.
const sniffLen = 8192

var (
	pdbWords   = []string{"HEADER", "TITLE", "COMPND", "SOURCE", "REMARK", "SEQRES", "CRYST1", "MODEL", "HETATM", "ATOM", "TER", "END"}
	mmcifWords = []string{"data_", "_entry.id", "loop_"}
)

// sniff looks at the start of the text in br, without consuming it, and
// guesses if it is in old PDB format or in mmcif. Empty input counts as
// old format, since it reads as an empty structure.
func sniff(br *bufio.Reader) byte {
	b, _ := br.Peek(sniffLen)
	if len(bytes.TrimSpace(b)) == 0 {
		return oldFmt
	}
	for _, s := range strings.Split(string(b), "\n") {
		for _, w := range mmcifWords {
			if strings.HasPrefix(s, w) {
				return mmcifFmt
			}
		}
		for _, w := range pdbWords {
			if strings.HasPrefix(s, w) {
				return oldFmt
			}
		}
	}
	return unkFmt
}

// nameFmt decides from the file name. We cannot use the function from
// filepath to get the file type, since it will return .gz if we feed it
// a.pdb.gz.
func nameFmt(fname string) byte {
	s := filepath.Base(fname)
	i := strings.IndexByte(s, '.')
	if i == -1 {
		return unkFmt
	}
	s = strings.ToLower(s[i+1:])
	switch {
	case strings.Contains(s, "cif"):
		return mmcifFmt
	case strings.Contains(s, "pdb"), strings.Contains(s, "ent"):
		return oldFmt
	}
	return unkFmt
}

// ReadFile memory maps fname and reads it, gzipped or not.
func ReadFile(fname string) (*model.Structure, error) {
	return readFile(fname, nil)
}

// readFile is ReadFile with the settings of a Reader, which may be nil.
func readFile(fname string, settings *Reader) (*model.Structure, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	info, err := fp.Stat()
	if err != nil {
		return nil, err
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%s is not a regular file", fname)
	}
	if info.Size() == 0 { // mmap refuses empty files
		return model.NewStructure(), nil
	}
	m, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("mapping %s: %w", fname, err)
	}
	defer m.Unmap()
	return readFrom(io.NopCloser(bytes.NewReader(m)), fname, settings)
}

// readFrom unwraps gzip, checks the format and reads.
func readFrom(rc io.ReadCloser, name string, settings *Reader) (*model.Structure, error) {
	zr, err := zwrap.WrapMaybe(rc)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	defer zr.Close()
	br := bufio.NewReader(zr)
	switch sniff(br) {
	case mmcifFmt:
		return nil, fmt.Errorf("%s: %w", name, ErrMmcif)
	case unkFmt:
		return nil, errors.New(name + ": cannot recognise format")
	}
	r := NewReader(br)
	if settings != nil {
		r.stopAtEnd, r.logger = settings.stopAtEnd, settings.logger
	}
	s, err := r.DoFile()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return s, nil
}

// WriteFile writes s to fname, gzipped if the name ends in .gz. If
// anything goes wrong, the file is removed.
func WriteFile(s *model.Structure, fname string, atomOnly bool) (err error) {
	fp, err := os.Create(fname)
	if err != nil {
		return err
	}
	wc := zwrap.WrapWriter(fp, strings.HasSuffix(fname, ".gz"))
	defer func() {
		if cerr := wc.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("closing %s: %w", fname, cerr)
		}
		if err != nil {
			os.Remove(fname)
		}
	}()
	return Write(s, wc, atomOnly)
}

// ReadCoord takes a file name or a four letter accession code and reads
// the structure. srcType is cmmn.FileSrc or cmmn.HTTPSrc.
// A summary of what was read goes to a log. If outinfo is "", it will
// be trashed. If outinfo is "stdout", we write to standard output.
// Anything else is a file we append to.
// mmcif sources are recognised and refused with ErrMmcif.
func ReadCoord(src string, srcType byte, outinfo string, stopAtEnd bool) (*model.Structure, error) {
	outlog, logfp, err := common.LogWhere(outinfo)
	if err != nil {
		return nil, err
	}
	if logfp != nil {
		defer logfp.Close()
	}
	settings := &Reader{stopAtEnd: stopAtEnd, logger: outlog}
	switch srcType {
	case cmmn.FileSrc:
		if nameFmt(src) == mmcifFmt {
			return nil, fmt.Errorf("%s: %w", src, ErrMmcif)
		}
		return readFile(src, settings)
	case cmmn.HTTPSrc:
		body, err := getAnyHTTP(src)
		if err != nil {
			return nil, err
		}
		return readFrom(body, src, settings)
	}
	return nil, fmt.Errorf("unknown source type %d", srcType)
}
