// Package brokenio wraps readers and writers so they fail. It is for
// testing the reading and writing of pdb files when the file system or
// the network lets us down.
// Typical use: You get a file pointer, a reader from a compressed
// source or an http source. You write
// reader = brokenio.NewReader(reader) to wrap the old reader. Everything
// then functions as before, but with artificial errors.
// Failures can be random (probFail and fracFail) or come after a fixed
// number of bytes, which is what the tests of other packages want.
package brokenio

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
)

// ErrBroken is returned by a deliberate failure.
var ErrBroken = errors.New("brokenio: deliberate failure")

// never means the byte limit is not set.
const never = -1

// Reader is modelled on the various Readers in the standard library,
// but with variables controlling the frequency of errors.
// probFail is the fraction of reads that go wrong, so a value of 0.05
// means failure in 5% of the cases. fracFail is how much of the buffer
// is wiped when they do.
// If verbose is true, print out the amount of data when the file is closed.
type Reader struct {
	rdrOrig   io.Reader
	failAfter int
	probFail  float32
	fracFail  float32
	nCalled   int
	nByte     int
	verbose   bool
}

// NewReader returns a wrapper around rIn which, until told otherwise,
// does not fail.
func NewReader(rIn io.Reader) *Reader {
	return &Reader{rdrOrig: rIn, failAfter: never, fracFail: 0.5}
}

// SetVerbose sets the verbosity flag to true or false
func (r *Reader) SetVerbose(newV bool) { r.verbose = newV }

// SetFracFail sets the amount of the bytes which will be trashed
func (r *Reader) SetFracFail(frac float32) { r.fracFail = frac }

// SetProbFail set the probability of a read failure.
// It must be between zero and 1. We do not check.
func (r *Reader) SetProbFail(prob float32) { r.probFail = prob }

// SetFailAfter makes every read fail with ErrBroken once n bytes have
// been handed out. n = 0 gives a source that is broken from the start.
func (r *Reader) SetFailAfter(n int) { r.failAfter = n }

// trashSlice wipes out the second part of a slice.
// The amount to wipe out is given by a fraction, so 0.3
// will wipe out the second 30 % of a slice
func trashSlice(p []byte, frac float32) (int, error) {
	nkeep := int(float32(len(p)) * (1. - frac))
	if nkeep == len(p) {
		return nkeep, nil
	}
	err := fmt.Errorf("%w: wiped out last %d of %d", ErrBroken, len(p)-nkeep, len(p))
	clear(p[nkeep:])
	return nkeep, err
}

// Read passes on reads to the original reader and sums up the amount
// of data that has gone through.
func (r *Reader) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	r.nCalled++
	if r.failAfter != never {
		left := r.failAfter - r.nByte
		if left <= 0 {
			return 0, ErrBroken
		}
		p = p[:min(len(p), left)]
	}
	n, err = r.rdrOrig.Read(p)
	r.nByte += n
	if r.probFail > 0 && r.fracFail > 0 && rand.Float32() < r.probFail {
		return trashSlice(p[:n], r.fracFail)
	}
	return n, err
}

// Close closes the original, if it can be closed.
func (r *Reader) Close() error {
	if r.verbose {
		fmt.Println("Closing", r.nCalled, "calls and", r.nByte, "bytes")
	}
	if c, ok := r.rdrOrig.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Writer accepts failAfter bytes and then fails. It is for a disk that
// fills up.
type Writer struct {
	wrtOrig   io.Writer
	failAfter int
	nByte     int
}

// NewWriter wraps w. After failAfter bytes every Write returns
// ErrBroken. A Write that crosses the limit writes what fits.
func NewWriter(w io.Writer, failAfter int) *Writer {
	return &Writer{wrtOrig: w, failAfter: failAfter}
}

func (w *Writer) Write(p []byte) (int, error) {
	left := w.failAfter - w.nByte
	if left <= 0 {
		return 0, ErrBroken
	}
	short := len(p) > left
	if short {
		p = p[:left]
	}
	n, err := w.wrtOrig.Write(p)
	w.nByte += n
	if err == nil && short {
		err = ErrBroken
	}
	return n, err
}

// NByte is how much has got through.
func (w *Writer) NByte() int { return w.nByte }
