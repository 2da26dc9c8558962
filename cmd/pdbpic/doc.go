/*
Pdbpic draws a pdb file as a png picture.

Usage:

	pdbpic [-s size] [-p plane] [-f fontsize] [-b] [-l logfile] infile outfile.png

Atoms are projected onto the xy, xz or yz plane and drawn as dots,
coloured by element. With -b, atoms closer than 1.9 Å are joined by a
line. A font size above zero labels every atom with its name.
*/
package main
