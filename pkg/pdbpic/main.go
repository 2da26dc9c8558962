// Package pdbpic draws a flat picture of a structure. Atoms are
// projected onto one of the coordinate planes, drawn as dots and
// optionally labelled. Atoms close enough to be bonded get a line.
package pdbpic

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"strings"
	"sync"

	"github.com/andrew-torda/pdbrw/pdb"
	"github.com/andrew-torda/pdbrw/pdb/geom"
	"github.com/andrew-torda/pdbrw/pdb/model"
	"github.com/andrew-torda/pdbrw/pkg/common"
	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
)

// CmdFlag is literally command line flags after parsing
type CmdFlag struct {
	Size     int     // pixels, the picture is square
	Plane    string  // "xy", "xz" or "yz"
	FontSize float64 // points, 0 for no labels
	Bonds    bool    // draw lines between close atoms
	NWorker  int     // for the bond search, < 1 for one per cpu
	LogFile  string
}

const (
	bondCut  = 1.9 // Å, longer than any covalent bond to hydrogen or in a protein
	dotRad   = 2   // pixels
	minSize  = 16
	maxBonds = 20000 // atoms, above this the bond search is too slow
	dpi      = 72
)

// planes maps a plane name to the matrix columns that become the
// horizontal and vertical axes.
var planes = map[string][2]int{"xy": {0, 1}, "xz": {0, 2}, "yz": {1, 2}}

// elemColour is the usual colour scheme. Anything else is black.
var elemColour = map[string]color.RGBA{
	"C": {0x70, 0x70, 0x70, 0xff},
	"N": {0x30, 0x50, 0xf8, 0xff},
	"O": {0xff, 0x0d, 0x0d, 0xff},
	"S": {0xe0, 0xc0, 0x30, 0xff},
	"P": {0xff, 0x80, 0x00, 0xff},
}

var (
	fontOnce sync.Once
	theFont  *truetype.Font
	fontErr  error
)

func getFont() (*truetype.Font, error) {
	fontOnce.Do(func() { theFont, fontErr = freetype.ParseFont(goregular.TTF) })
	return theFont, fontErr
}

// Check looks at the flags before we do any work.
func (f *CmdFlag) Check() error {
	if _, ok := planes[strings.ToLower(f.Plane)]; !ok {
		return fmt.Errorf("plane must be xy, xz or yz, not %q", f.Plane)
	}
	if f.Size < minSize {
		return fmt.Errorf("size %d is too small, minimum %d", f.Size, minSize)
	}
	if f.FontSize < 0 {
		return errors.New("negative font size")
	}
	return nil
}

// projection turns coordinates into pixels.
type projection struct {
	h, v   int // matrix columns
	lo     [2]float32
	scale  float32
	margin int
	size   int
}

func newProjection(s *model.Structure, flags *CmdFlag) (projection, error) {
	cols := planes[strings.ToLower(flags.Plane)]
	lo, hi, err := geom.Bounds(s.Positions())
	if err != nil {
		return projection{}, err
	}
	loA, hiA := [3]float64{lo.X, lo.Y, lo.Z}, [3]float64{hi.X, hi.Y, hi.Z}
	p := projection{h: cols[0], v: cols[1], size: flags.Size, margin: flags.Size / 20}
	p.lo = [2]float32{float32(loA[p.h]), float32(loA[p.v])}
	extent := max(hiA[p.h]-loA[p.h], hiA[p.v]-loA[p.v])
	p.scale = 1
	if extent > 0 {
		p.scale = float32(float64(p.size-2*p.margin-1) / extent)
	}
	return p, nil
}

// pixel gives image coordinates for one row of the coordinate matrix.
// The vertical axis points up, so it is flipped.
func (p projection) pixel(row []float32) image.Point {
	x := p.margin + int((row[p.h]-p.lo[0])*p.scale+0.5)
	y := p.size - 1 - p.margin - int((row[p.v]-p.lo[1])*p.scale+0.5)
	return image.Pt(x, y)
}

// findBonds returns, for each atom, the later atoms within bondCut.
// Each worker only writes to the slots of its own atoms.
func findBonds(s *model.Structure, nWorker int) ([][]int, error) {
	pos := s.Positions()
	bonds := make([][]int, len(pos))
	const cut2 = bondCut * bondCut
	err := s.ParAtoms(context.Background(), nWorker, func(i int, a model.Atom) error {
		for j := i + 1; j < len(pos); j++ {
			if geom.Dist2(a.Pos(), pos[j]) < cut2 {
				bonds[i] = append(bonds[i], j)
			}
		}
		return nil
	})
	return bonds, err
}

// line is a plain dda line, good enough for one pixel wide bonds.
func line(img draw.Image, a, b image.Point, c color.Color) {
	dx, dy := b.X-a.X, b.Y-a.Y
	n := max(abs(dx), abs(dy))
	if n == 0 {
		img.Set(a.X, a.Y, c)
		return
	}
	for k := 0; k <= n; k++ {
		img.Set(a.X+dx*k/n, a.Y+dy*k/n, c)
	}
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}

// Render draws the structure. The picture is flags.Size square with a
// white background.
func Render(s *model.Structure, flags *CmdFlag) (*image.RGBA, error) {
	if err := flags.Check(); err != nil {
		return nil, err
	}
	img := image.NewRGBA(image.Rect(0, 0, flags.Size, flags.Size))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	if s.NAtom() == 0 {
		return img, nil
	}
	proj, err := newProjection(s, flags)
	if err != nil {
		return nil, err
	}
	coords := s.CoordMatrix()
	pix := make([]image.Point, s.NAtom())
	for i := range pix {
		pix[i] = proj.pixel(coords.Mat[i])
	}

	if flags.Bonds && s.NAtom() <= maxBonds {
		bonds, err := findBonds(s, flags.NWorker)
		if err != nil {
			return nil, err
		}
		for i, bb := range bonds {
			for _, j := range bb {
				line(img, pix[i], pix[j], color.Gray{0xa0})
			}
		}
	}
	for i, a := range s.Atoms() {
		c, ok := elemColour[a.Element()]
		if !ok {
			c = color.RGBA{0, 0, 0, 0xff}
		}
		r := image.Rect(pix[i].X-dotRad, pix[i].Y-dotRad, pix[i].X+dotRad+1, pix[i].Y+dotRad+1)
		draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Src)
	}
	if flags.FontSize > 0 {
		if err := label(img, s, pix, flags.FontSize); err != nil {
			return nil, err
		}
	}
	return img, nil
}

// label writes each atom's name just to the right of its dot.
func label(img *image.RGBA, s *model.Structure, pix []image.Point, size float64) error {
	f, err := getFont()
	if err != nil {
		return fmt.Errorf("parsing font: %w", err)
	}
	ctx := freetype.NewContext()
	ctx.SetDPI(dpi)
	ctx.SetFont(f)
	ctx.SetFontSize(size)
	ctx.SetClip(img.Bounds())
	ctx.SetDst(img)
	ctx.SetSrc(image.Black)
	for i, a := range s.Atoms() {
		pt := freetype.Pt(pix[i].X+dotRad+1, pix[i].Y+dotRad+1)
		if _, err := ctx.DrawString(a.Name(), pt); err != nil {
			return fmt.Errorf("labelling atom %d: %w", a.Serial(), err)
		}
	}
	return nil
}

// Mymain is the top level main, after parsing the command line.
func Mymain(flags *CmdFlag, infile, outfile string) (err error) {
	if err := flags.Check(); err != nil {
		return err
	}
	outlog, logfp, err := common.LogWhere(flags.LogFile)
	if err != nil {
		return err
	}
	if logfp != nil {
		defer logfp.Close()
	}
	s, err := pdb.ReadFile(infile)
	if err != nil {
		return err
	}
	img, err := Render(s, flags)
	if err != nil {
		return err
	}
	fp, err := os.Create(outfile)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fp.Close(); err == nil {
			err = cerr
		}
	}()
	if err = png.Encode(fp, img); err != nil {
		return fmt.Errorf("writing %s: %w", outfile, err)
	}
	outlog.Println(infile, "->", outfile, s.NAtom(), "atoms", flags.Plane, "plane")
	return nil
}
