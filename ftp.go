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
	"net/url"
	"os"
	"path"
	"path/filepath"

	"github.com/flytam/filenamify"
	"github.com/jlaffaye/ftp"
	log "github.com/sirupsen/logrus"
)

// fetchFTP retrieves an FTP URL with an anonymous login and writes the
// received content to location. Size comes from the server's SIZE reply and
// the content type is guessed from the filename extension; either may be
// absent from the Result without failing the fetch.
func fetchFTP(reqURL string, u *url.URL, location string) (*Result, error) {
	remoteDir := path.Dir(u.Path)
	leaf := urlLeaf(u.Path)

	if isDir(location) {
		if leaf == "" {
			return nil, &NoFilenameError{URL: reqURL}
		}
		safe, err := filenamify.Filenamify(leaf, filenamify.Options{})
		if err != nil {
			return nil, fmt.Errorf("sanitizing filename %q: %w", leaf, err)
		}
		location = filepath.Join(location, safe)
	}

	addr := u.Host
	if u.Port() == "" {
		addr += ":21"
	}

	log.Debugf("ftp: connecting to %s", addr)
	conn, err := ftp.Dial(addr)
	if err != nil {
		return nil, err
	}
	// The control connection is closed on every exit path, including a
	// failed transfer.
	defer func() {
		if err := conn.Quit(); err != nil {
			log.Debugf("ftp: closing control connection: %v", err)
		}
	}()

	if err := conn.Login("anonymous", "anonymous"); err != nil {
		return nil, err
	}

	res := &Result{URL: reqURL, Location: location}
	if size, err := conn.FileSize(u.Path); err == nil {
		res.Size = &size
	}
	if ct := mime.TypeByExtension(path.Ext(leaf)); ct != "" {
		res.ContentType = &ct
	}

	if err := conn.ChangeDir(remoteDir); err != nil {
		return nil, err
	}

	log.Debugf("ftp: retr %s", leaf)
	r, err := conn.Retr(leaf)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	f, err := os.Create(location)
	if err != nil {
		return nil, fmt.Errorf("opening %s for writing: %w", location, err)
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("writing %s: %w", location, err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("closing %s: %w", location, err)
	}

	return res, nil
}
