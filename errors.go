//
// Copyright 2020 nexB Inc. and others. All rights reserved.
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.
//

package fetchcode

import "fmt"

// UnsupportedSchemeError is returned when the URL scheme is not one of
// http, https or ftp. It is reported before any network access happens.
type UnsupportedSchemeError struct {
	Scheme string
}

func (e *UnsupportedSchemeError) Error() string {
	return fmt.Sprintf("unsupported URL scheme %q", e.Scheme)
}

// NoFilenameError is returned when the destination is a directory and the
// URL path has no filename component to derive a name from.
type NoFilenameError struct {
	URL string
}

func (e *NoFilenameError) Error() string {
	return fmt.Sprintf("cannot derive a filename from %q", e.URL)
}
