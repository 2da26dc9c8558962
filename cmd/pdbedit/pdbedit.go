package main

import (
	"flag"
	"fmt"
	"os"
	"path"

	. "github.com/andrew-torda/pdbrw/pkg/common"
	"github.com/andrew-torda/pdbrw/pkg/pdbedit"
)

// usage
func usage() {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "-s script.yaml [opts] infile outfile")
	flag.PrintDefaults()
}

func main() {
	var flags pdbedit.CmdFlag
	flag.Usage = usage
	flag.StringVar(&flags.Script, "s", "", "yaml edit script")
	flag.BoolVar(&flags.AtomOnly, "a", false, "atoms only on output")
	flag.StringVar(&flags.LogFile, "l", "", "log file, or \"stdout\"")
	flag.Parse()
	if flags.Script == "" || flag.NArg() != 2 {
		usage()
		os.Exit(ExitUsageError)
	}
	if err := pdbedit.Mymain(&flags, flag.Arg(0), flag.Arg(1)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}
