//
// Copyright 2020 nexB Inc. and others. All rights reserved.
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.
//

package fetchcode

// Result describes a completed fetch.
type Result struct {
	// URL is the fetched URL as passed by the caller.
	URL string
	// Location is the local path the content was written to.
	Location string
	// ContentType is the MIME type of the content, or nil when it could
	// not be determined. For HTTP it is the Content-Type response header
	// verbatim; for FTP it is guessed from the filename extension.
	ContentType *string
	// Size is the content size in bytes as reported by the server, or nil
	// when the server did not report one. It is never derived from the
	// number of bytes actually written.
	Size *int64
}
