package brokenio_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/andrew-torda/pdbrw/brokenio"
)

var tochop = []string{"", "a", "abc", "abcdefghij", "abcdefghijklmn"}

var longstring = "0123456789012345678901234567890123456789"

// lenNonNull returns the length of byte array up to first null
func lenNonNull(a []byte) int {
	if i := bytes.IndexByte(a, 0); i >= 0 {
		return i
	}
	return len(a)
}

// testFrac - wipe out different fractions of the input buffer.
func testFrac(t *testing.T, inb string, frac float32) {
	s := make([]byte, len(inb))
	rdr := brokenio.NewReader(strings.NewReader(inb))
	rdr.SetProbFail(1)
	rdr.SetFracFail(frac)
	n, err := rdr.Read(s)
	if k := lenNonNull(s); inb[:k] != string(s[:k]) {
		t.Error("contents of strings changed with string", inb, "frac", frac)
	}
	switch frac {
	case 0.0:
		if bytes.IndexByte(s, 0) >= 0 {
			t.Error("want no null bytes, got", s)
		}
		if err != nil && len(inb) > 0 {
			t.Errorf("error reading from string %q", inb)
		}
	case 1.0:
		if n != 0 || bytes.Count(s, []byte{0}) != len(s) {
			t.Errorf("wanted all nulls, got %q", s)
		}
		if len(s) > 0 && !errors.Is(err, brokenio.ErrBroken) {
			t.Error("did not get error reading from", inb)
		}
	default:
		if len(inb) > 3 && n == len(inb) {
			t.Errorf("nothing wiped in %q", s)
		}
	}
}

// TestTrashing takes strings and removes parts of them
func TestTrashing(t *testing.T) {
	for _, frac := range []float32{0, 0.3, 1} {
		for _, inb := range tochop {
			testFrac(t, inb, frac)
		}
	}
}

func TestReaderSimple(t *testing.T) {
	rdr := brokenio.NewReader(strings.NewReader(longstring))
	b, err := io.ReadAll(rdr)
	if err != nil || string(b) != longstring {
		t.Errorf("simple read fail got %q wanted %q", b, longstring)
	}
}

func TestFailAfter(t *testing.T) {
	for _, n := range []int{0, 1, 7, 39} {
		rdr := brokenio.NewReader(strings.NewReader(longstring))
		rdr.SetFailAfter(n)
		b, err := io.ReadAll(rdr)
		if !errors.Is(err, brokenio.ErrBroken) {
			t.Error("no failure after", n, err)
		}
		if string(b) != longstring[:n] {
			t.Errorf("after %d got %q", n, b)
		}
	}
	rdr := brokenio.NewReader(strings.NewReader(longstring))
	rdr.SetFailAfter(len(longstring) + 1)
	if _, err := io.ReadAll(rdr); err != nil {
		t.Error("limit past the end should not fail", err)
	}
}

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	w := brokenio.NewWriter(&buf, 5)
	if n, err := w.Write([]byte("abc")); n != 3 || err != nil {
		t.Error("first write", n, err)
	}
	if n, err := w.Write([]byte("defg")); n != 2 || !errors.Is(err, brokenio.ErrBroken) {
		t.Error("crossing write", n, err)
	}
	if n, err := w.Write([]byte("h")); n != 0 || err == nil {
		t.Error("write after limit", n, err)
	}
	if buf.String() != "abcde" || w.NByte() != 5 {
		t.Errorf("got %q %d", buf.String(), w.NByte())
	}
}

func Example_setVerbose() {
	rdr := brokenio.NewReader(strings.NewReader(longstring))
	rdr.SetVerbose(true)
	tmp := make([]byte, len(longstring))
	rdr.Read(tmp)
	rdr.Close()
	// Output: Closing 1 calls and 40 bytes
}
