//
// Copyright 2020 nexB Inc. and others. All rights reserved.
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.
//

package fetchcode

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// newFixture starts an HTTP test server answering every request with the
// given body and extra headers.
func newFixture(t *testing.T, body []byte, header map[string]string) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for k, v := range header {
			w.Header().Set(k, v)
		}
		_, _ = w.Write(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestUnsupportedScheme(t *testing.T) {
	for _, u := range []string{
		"gopher://example.com/file.txt",
		"sftp://user@example.com/file.txt",
		"file:///etc/passwd",
		"example.com/file.txt",
	} {
		res, err := Fetch(u)
		require.Error(t, err, u)
		require.Nil(t, res, u)

		var schemeErr *UnsupportedSchemeError
		require.ErrorAs(t, err, &schemeErr, u)
	}
}

func TestFetchToTemporaryFile(t *testing.T) {
	body := []byte("temporary file content")
	srv := newFixture(t, body, nil)

	res, err := Fetch(srv.URL + "/blob")
	require.NoError(t, err)
	defer os.Remove(res.Location)

	require.Equal(t, srv.URL+"/blob", res.URL)
	saved, err := os.ReadFile(res.Location)
	require.NoError(t, err)
	require.Equal(t, body, saved)
}

func TestURLLeaf(t *testing.T) {
	require.Equal(t, "data.csv", urlLeaf("/files/data.csv"))
	require.Equal(t, "pub", urlLeaf("/pub/"))
	require.Equal(t, "", urlLeaf("/"))
	require.Equal(t, "", urlLeaf(""))
}

func TestSchemeCheckPrecedesTempFileCreation(t *testing.T) {
	// An unsupported scheme must fail before the default temporary
	// destination is created.
	before := tempEntries(t)
	_, err := Fetch("gopher://example.com/file.txt")
	require.Error(t, err)
	require.Equal(t, before, tempEntries(t))
}

func tempEntries(t *testing.T) int {
	entries, err := os.ReadDir(os.TempDir())
	require.NoError(t, err)
	n := 0
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "fetch") {
			n++
		}
	}
	return n
}
