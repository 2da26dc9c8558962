// Package zwrap takes a file pointer and optionally wraps it so upon
// calling Close, the decompressor will be closed, followed by the
// underlying file. It does the same for writing.
// pdb files come from the archive gzipped, so most reads go through here.
package zwrap

import (
	"bufio"
	"errors"
	"io"

	"github.com/klauspost/compress/gzip"
)

// gzMagic is the first two bytes of every gzip stream.
var gzMagic = [2]byte{0x1f, 0x8b}

// RdCloser is what we return when reading. If zrdr is nil, we are
// reading plain text through the buffer.
type RdCloser struct {
	fp   io.ReadCloser
	buf  *bufio.Reader
	zrdr *gzip.Reader
}

// Close closes the decompressor, then the underlying readCloser.
// It should work if the source is a file or an http stream.
func (rc *RdCloser) Close() error {
	var zerr error
	if rc.zrdr != nil {
		zerr = rc.zrdr.Close()
	}
	return errors.Join(zerr, rc.fp.Close())
}

// Read makes sure we read from the decompressed stream and not the
// underlying file stream.
func (rc *RdCloser) Read(p []byte) (int, error) {
	if rc.zrdr != nil {
		return rc.zrdr.Read(p)
	}
	return rc.buf.Read(p)
}

// Compressed says if we are decompressing.
func (rc *RdCloser) Compressed() bool { return rc.zrdr != nil }

// Wrap insists that fp is gzipped and returns an error if it is not.
func Wrap(fp io.ReadCloser) (*RdCloser, error) {
	zrdr, err := gzip.NewReader(fp)
	if err != nil {
		return nil, err
	}
	return &RdCloser{fp: fp, zrdr: zrdr}, nil
}

// WrapMaybe looks at the first two bytes of fp and decides if it is
// compressed. It does not need to seek, so an http body is fine.
// An empty source is not an error. It just reads as empty.
func WrapMaybe(fp io.ReadCloser) (*RdCloser, error) {
	rc := &RdCloser{fp: fp, buf: bufio.NewReader(fp)}
	magic, err := rc.buf.Peek(len(gzMagic))
	if err != nil && err != io.EOF {
		return nil, err
	}
	if len(magic) < len(gzMagic) || [2]byte(magic) != gzMagic {
		return rc, nil
	}
	if rc.zrdr, err = gzip.NewReader(rc.buf); err != nil {
		return nil, err
	}
	return rc, nil
}

// WrtCloser is the writing side. If zwrt is nil, writes go straight
// to the underlying writer.
type WrtCloser struct {
	fp   io.WriteCloser
	zwrt *gzip.Writer
}

// WrapWriter returns a WriteCloser that compresses if compress is true.
// Close flushes the compressor and then closes fp.
func WrapWriter(fp io.WriteCloser, compress bool) *WrtCloser {
	wc := &WrtCloser{fp: fp}
	if compress {
		wc.zwrt = gzip.NewWriter(fp)
	}
	return wc
}

func (wc *WrtCloser) Write(p []byte) (int, error) {
	if wc.zwrt != nil {
		return wc.zwrt.Write(p)
	}
	return wc.fp.Write(p)
}

// Close must be called, or a compressed file will be truncated.
func (wc *WrtCloser) Close() error {
	var zerr error
	if wc.zwrt != nil {
		zerr = wc.zwrt.Close()
	}
	return errors.Join(zerr, wc.fp.Close())
}
