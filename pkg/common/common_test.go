package common_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/andrew-torda/pdbrw/pkg/common"
)

func TestWrtTemp(t *testing.T) {
	const s = "ATOM\nTER\n"
	fname, err := WrtTemp(s)
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(fname)
	b, err := os.ReadFile(fname)
	if err != nil || string(b) != s {
		t.Errorf("got %q, %v", b, err)
	}
}

func TestLogWhere(t *testing.T) {
	lg, c, err := LogWhere("")
	if err != nil || c != nil {
		t.Fatal("discard logger", err)
	}
	lg.Println("nowhere")

	fname := filepath.Join(t.TempDir(), "log")
	for i := 0; i < 2; i++ {
		lg, c, err = LogWhere(fname)
		if err != nil || c == nil {
			t.Fatal("file logger", err)
		}
		lg.Println("line", i)
		c.Close()
	}
	b, _ := os.ReadFile(fname)
	if n := strings.Count(string(b), "common_test.go"); n != 2 {
		t.Errorf("wanted two appended lines, got %q", b)
	}
	if _, _, err = LogWhere(filepath.Join(t.TempDir(), "no", "such", "dir")); err == nil {
		t.Error("expected error for impossible log file")
	}
}
