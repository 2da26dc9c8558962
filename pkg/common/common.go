// Package common has the bits shared by the command line tools and
// their tests.
package common

import (
	"fmt"
	"io"
	"log"
	"os"
)

const (
	ExitSuccess = iota
	ExitFailure
	ExitUsageError
)

// LogWhere decides where to send logged output. outinfo "" means
// throw it away and "stdout" means standard output. Anything else is
// a file name which we append to. The returned io.Closer is non-nil
// only if we opened a file.
func LogWhere(outinfo string) (*log.Logger, io.Closer, error) {
	var iowriter io.Writer
	var closer io.Closer
	switch outinfo {
	case "":
		iowriter = io.Discard
	case "stdout":
		iowriter = os.Stdout
	default:
		fp, err := os.OpenFile(outinfo, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("creating log file: %w", err)
		}
		iowriter, closer = fp, fp
	}
	return log.New(iowriter, "", log.Lshortfile), closer, nil
}

// WrtTemp writes a string to a temporary file and returns
// the filename. It is used all over the place in testing.
func WrtTemp(s string) (string, error) {
	fTmp, err := os.CreateTemp("", "_del_me_testing")
	if err != nil {
		return "", fmt.Errorf("tempfile fail: %w", err)
	}
	defer fTmp.Close()
	if _, err := io.WriteString(fTmp, s); err != nil {
		return "", fmt.Errorf("writing string to temp file %v: %w", fTmp.Name(), err)
	}
	return fTmp.Name(), nil
}
