// Package pdbcat reads a pdb file, from disk, stdin or the web, checks
// every line and writes it out again in a clean form.
package pdbcat

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/andrew-torda/pdbrw/pdb"
	"github.com/andrew-torda/pdbrw/pdb/cmmn"
	"github.com/andrew-torda/pdbrw/pdb/model"
	"github.com/andrew-torda/pdbrw/pdb/zwrap"
	"github.com/andrew-torda/pdbrw/pkg/common"
)

// CmdFlag is literally command line flags after parsing
type CmdFlag struct {
	AtomOnly  bool   // no header or remarks on output
	Gzip      bool   // compress output, even if the name does not end in .gz
	Web       bool   // infile is an accession code to download
	StopAtEnd bool   // ignore everything after the first END
	LogFile   string // "" for none, "stdout" or a file name
}

// stdinOrFile says if a name means standard input or output.
func stdinOrFile(name string) bool { return name == "" || name == "-" }

// nopWC is stdout, which we do not want to close.
type nopWC struct{ io.Writer }

func (nopWC) Close() error { return nil }

// readStdin reads from standard input, decompressing if need be.
func readStdin(flags *CmdFlag) (*model.Structure, error) {
	outlog, logfp, err := common.LogWhere(flags.LogFile)
	if err != nil {
		return nil, err
	}
	if logfp != nil {
		defer logfp.Close()
	}
	zr, err := zwrap.WrapMaybe(io.NopCloser(os.Stdin))
	if err != nil {
		return nil, fmt.Errorf("stdin: %w", err)
	}
	defer zr.Close()
	r := pdb.NewReader(zr)
	r.SetLogger(outlog)
	r.SetStopAtEnd(flags.StopAtEnd)
	return r.DoFile()
}

// read gets the structure from wherever the flags say.
func read(flags *CmdFlag, infile string) (*model.Structure, error) {
	switch {
	case flags.Web:
		return pdb.ReadCoord(infile, cmmn.HTTPSrc, flags.LogFile, flags.StopAtEnd)
	case stdinOrFile(infile):
		return readStdin(flags)
	}
	return pdb.ReadCoord(infile, cmmn.FileSrc, flags.LogFile, flags.StopAtEnd)
}

// write sends s to outfile, or stdout.
func write(flags *CmdFlag, s *model.Structure, outfile string) (err error) {
	var wc io.WriteCloser = nopWC{os.Stdout}
	compress := flags.Gzip
	if !stdinOrFile(outfile) {
		fp, err := os.Create(outfile)
		if err != nil {
			return err
		}
		wc = fp
		compress = compress || strings.HasSuffix(outfile, ".gz")
	}
	zw := zwrap.WrapWriter(wc, compress)
	defer func() {
		if cerr := zw.Close(); err == nil {
			err = cerr
		}
	}()
	return pdb.Write(s, zw, flags.AtomOnly)
}

// Mymain is the top level main, after parsing the command line.
func Mymain(flags *CmdFlag, infile, outfile string) error {
	if flags.Web && stdinOrFile(infile) {
		return fmt.Errorf("need an accession code to download")
	}
	s, err := read(flags, infile)
	if err != nil {
		return err
	}
	if err := write(flags, s, outfile); err != nil {
		return fmt.Errorf("writing %s: %w", outfile, err)
	}
	return nil
}
