//
// Copyright 2020 nexB Inc. and others. All rights reserved.
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.
//

package fetchcode

import (
	"fmt"
	"net/url"
	"os"
	"path"

	log "github.com/sirupsen/logrus"
)

// Fetch retrieves the content at reqURL and saves it in a newly created
// temporary file. It is equivalent to FetchTo(reqURL, "").
func Fetch(reqURL string) (*Result, error) {
	return FetchTo(reqURL, "")
}

// FetchTo retrieves the content at reqURL, saves it at location and returns
// a Result describing what was written.
//
// If location is an existing directory, a filename is derived from the
// server response or from the URL and the file is created inside that
// directory. If location is empty, a new uniquely named temporary file is
// created and used as the destination; it is not removed if the fetch
// later fails.
//
// Supported schemes are http, https and ftp. Any other scheme fails with
// an *UnsupportedSchemeError before any network access. Transport and
// filesystem errors are returned as-is; there are no retries and a partial
// file may be left at the destination on failure.
func FetchTo(reqURL string, location string) (*Result, error) {
	u, err := url.Parse(reqURL)
	if err != nil {
		return nil, fmt.Errorf("parsing URL: %w", err)
	}

	var fetcher func(string, *url.URL, string) (*Result, error)
	switch u.Scheme {
	case "http", "https":
		fetcher = fetchHTTP
	case "ftp":
		fetcher = fetchFTP
	default:
		return nil, &UnsupportedSchemeError{Scheme: u.Scheme}
	}

	if location == "" {
		location, err = makeTempFile("", "fetch")
		if err != nil {
			return nil, err
		}
	}

	log.Debugf("fetch: %s -> %s", reqURL, location)
	return fetcher(reqURL, u, location)
}

// makeTempFile creates a new empty file in dir (or in the system temporary
// directory if dir is empty) and returns its path.
func makeTempFile(dir string, pattern string) (string, error) {
	tmp, err := os.CreateTemp(dir, pattern)
	if err != nil {
		return "", fmt.Errorf("creating temporary file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("closing temporary file: %w", err)
	}
	return tmp.Name(), nil
}

// isDir returns true if a directory with the given path exists.
func isDir(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.IsDir()
}

// urlLeaf returns the last segment of a URL path, or "" if the path has no
// filename component (empty, "/", or ending in a separator).
func urlLeaf(p string) string {
	name := path.Base(p)
	if name == "/" || name == "." {
		return ""
	}
	return name
}
