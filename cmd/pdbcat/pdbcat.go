package main

import (
	"flag"
	"fmt"
	"os"
	"path"

	. "github.com/andrew-torda/pdbrw/pkg/common"
	"github.com/andrew-torda/pdbrw/pkg/pdbcat"
)

// usage
func usage() {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "[opts] [infile [outfile]]")
	flag.PrintDefaults()
}

func main() {
	var flags pdbcat.CmdFlag
	flag.Usage = usage
	flag.BoolVar(&flags.AtomOnly, "a", false, "atoms only")
	flag.BoolVar(&flags.Gzip, "z", false, "gzip output")
	flag.BoolVar(&flags.Web, "w", false, "infile is an accession code to download")
	flag.BoolVar(&flags.StopAtEnd, "e", false, "stop reading at the first END")
	flag.StringVar(&flags.LogFile, "l", "", "log file, or \"stdout\"")
	flag.Parse()
	if flag.NArg() > 2 {
		usage()
		os.Exit(ExitUsageError)
	}
	if err := pdbcat.Mymain(&flags, flag.Arg(0), flag.Arg(1)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}
