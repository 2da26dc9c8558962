/*
Pdbcat reads a structure in the old fixed column pdb format and writes
it out again.

Every line is checked on the way in. If anything is wrong, you get the
line number and the start of the line, and nothing is written.
On the way out, each line is padded to 70 characters and the atoms
are followed by a TER record. Anything we do not handle, like SEQRES or
CONECT, is dropped.

Usage:

	pdbcat [-a] [-z] [-w] [-e] [-l logfile] [infile [outfile]]

If no input file is given, or it is "-", stdin will be used.
If no output file is given, stdout will be used.
Input may be gzipped. This is noticed from the contents, not the name.
Output is gzipped if its name ends in .gz or -z is given.

Flags:

	-a  atoms only, no HEADER or REMARK records
	-z  gzip output
	-w  the input is a four letter accession code. Download it.
	-e  stop at the first END record
	-l  write a summary of what was read to logfile ("stdout" works)

Example:

	pdbcat -w 1abc 1abc.pdb.gz
*/
package main
