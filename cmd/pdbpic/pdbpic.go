package main

import (
	"flag"
	"fmt"
	"os"
	"path"

	. "github.com/andrew-torda/pdbrw/pkg/common"
	"github.com/andrew-torda/pdbrw/pkg/pdbpic"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "[opts] infile outfile.png")
	flag.PrintDefaults()
}

func main() {
	var flags pdbpic.CmdFlag
	flag.Usage = usage
	flag.IntVar(&flags.Size, "s", 512, "picture size in pixels")
	flag.StringVar(&flags.Plane, "p", "xy", "projection plane, xy, xz or yz")
	flag.Float64Var(&flags.FontSize, "f", 0, "label font size, 0 for no labels")
	flag.BoolVar(&flags.Bonds, "b", false, "draw bonds")
	flag.IntVar(&flags.NWorker, "n", 0, "workers for the bond search, 0 for one per cpu")
	flag.StringVar(&flags.LogFile, "l", "", "log file, or \"stdout\"")
	flag.Parse()
	if flag.NArg() != 2 {
		usage()
		os.Exit(ExitUsageError)
	}
	if err := pdbpic.Mymain(&flags, flag.Arg(0), flag.Arg(1)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}
