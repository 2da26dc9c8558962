package pdb

// Go to a pdb website and download coordinates in the old format.
// The main point is to visit the web page and return a reader that
// can be used like the file readers.

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Mirror is one place to get files from. The url is
// URLBase + accession code + URLSuffix.
type Mirror struct {
	URLBase   string
	URLSuffix string
	Lower     bool // wants the code in lower case
}

// Mirrors are tried in order by ReadCoord. Sites return normal or
// gzipped data and we do not care which.
var Mirrors = []Mirror{
	{"https://files.rcsb.org/download/", ".pdb.gz", false},
	{"https://www.ebi.ac.uk/pdbe/entry-files/download/pdb", ".ent", true},
	{"https://ftp.pdbj.org/pub/pdb/data/structures/all/pdb/pdb", ".ent.gz", true},
}

var httpClient = &http.Client{Timeout: 60 * time.Second}

// getHTTP is given a four letter pdb code and fetches it from
// Mirrors[siteNum]. If siteNum is too big, we use a modulo to wrap
// it around, rather than generate an error. This makes it easier to
// cycle through them.
func getHTTP(acqCode string, siteNum int) (io.ReadCloser, error) {
	if len(acqCode) != 4 {
		return nil, errors.New("acq code should be four char, not " + acqCode)
	}
	if len(Mirrors) == 0 {
		return nil, errors.New("no pdb mirrors configured")
	}
	m := Mirrors[siteNum%len(Mirrors)]
	code := strings.ToUpper(acqCode)
	if m.Lower {
		code = strings.ToLower(acqCode)
	}
	url := m.URLBase + code + m.URLSuffix
	resp, err := httpClient.Get(url)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("wanted %s using %s, got %s", acqCode, url, resp.Status)
	}
	return resp.Body, nil
}

// getAnyHTTP tries each mirror in turn and returns the first body it
// gets. If they all fail, we get all the errors.
func getAnyHTTP(acqCode string) (io.ReadCloser, error) {
	if len(Mirrors) == 0 {
		return nil, errors.New("no pdb mirrors configured")
	}
	var errs []error
	for i := range Mirrors {
		body, err := getHTTP(acqCode, i)
		if err == nil {
			return body, nil
		}
		errs = append(errs, err)
	}
	return nil, errors.Join(errs...)
}
