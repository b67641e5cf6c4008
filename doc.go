//
// Copyright 2020 nexB Inc. and others. All rights reserved.
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.
//

// Package fetchcode fetches a remote resource over HTTP, HTTPS or FTP and
// saves its content to a local file, reporting where the bytes landed and
// what the server said about them.
package fetchcode
