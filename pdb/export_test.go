package pdb

// Export some internal functions for testing

var Sniff = sniff
var NameFmt = nameFmt

const (
	OldFmt   = oldFmt
	MmcifFmt = mmcifFmt
	UnkFmt   = unkFmt
)
