//
// Copyright 2020 nexB Inc. and others. All rights reserved.
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.
//

package fetchcode

import (
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"github.com/flytam/filenamify"
	log "github.com/sirupsen/logrus"
)

// fetchHTTP performs a GET request with the default client and writes the
// whole response body to location. The response status is not inspected:
// whatever body the server returned is what gets saved.
func fetchHTTP(reqURL string, u *url.URL, location string) (*Result, error) {
	log.Debugf("get: %s", reqURL)
	resp, err := http.Get(reqURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if isDir(location) {
		location, err = resolveHTTPFilename(u, resp.Header, location)
		if err != nil {
			return nil, err
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	if err := os.WriteFile(location, body, 0644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", location, err)
	}

	res := &Result{URL: reqURL, Location: location}
	if ct := resp.Header.Get("Content-Type"); ct != "" {
		res.ContentType = &ct
	}
	// resp.ContentLength carries the Content-Length header value, -1 when
	// the server sent none.
	if resp.ContentLength >= 0 {
		size := resp.ContentLength
		res.Size = &size
	}
	return res, nil
}

// resolveHTTPFilename picks the file to create inside dir. Candidates are
// evaluated in order, first non-empty name wins: the filename suggested by
// the Content-Disposition header (RFC 6266, decoded extended syntax takes
// precedence over the plain parameter), then the last segment of the URL
// path. When neither yields a name the content goes to a fresh temporary
// file inside dir.
func resolveHTTPFilename(u *url.URL, header http.Header, dir string) (string, error) {
	candidates := []func() string{
		func() string { return dispositionFilename(header.Get("Content-Disposition")) },
		func() string { return urlLeaf(u.Path) },
	}
	for _, candidate := range candidates {
		name := candidate()
		if name == "" {
			continue
		}
		safe, err := filenamify.Filenamify(name, filenamify.Options{})
		if err != nil {
			return "", fmt.Errorf("sanitizing filename %q: %w", name, err)
		}
		return filepath.Join(dir, safe), nil
	}
	return makeTempFile(dir, "fetch")
}

// dispositionFilename extracts the filename parameter from a
// Content-Disposition header value, or "" if the header is missing,
// malformed or carries no filename.
func dispositionFilename(disposition string) string {
	if disposition == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(disposition)
	if err != nil {
		return ""
	}
	return params["filename"]
}
