/*
Pdbedit makes small changes to a pdb file, driven by a yaml script.

Usage:

	pdbedit -s script.yaml [-a] [-l logfile] infile outfile

The script may have any of these keys:

	identifier: 1abc        # replaces the HEADER identifier
	remarks:                # appended to the remarks in the file
	  - type: 3
	    text: REFINED BY HAND
	atoms:                  # changes to every atom with this serial number
	  - serial: 12
	    name: CB
	    element: C
	    resname: ALA
	    chain: B
	    hetero: false
	    x: 1.5
	    y: 2.5
	    z: 3.5
	    occupancy: 0.5
	    tempfactor: 20
	    charge: -1
	centre: true            # move the centroid to the origin
	shift: {x: 1, y: 0, z: 0}

Unknown keys are an error. Every value goes through the same checks as
a value read from a file, so a residue name must be three characters,
coordinates must be finite and so on. If a change to an atom fails,
that atom is left as it was and nothing is written.
Output is gzipped if its name ends in .gz.
*/
package main
