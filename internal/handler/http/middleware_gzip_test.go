// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 FCS Project Authors

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipEchoHandler(t *testing.T) http.Handler {
	t.Helper()
	return withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		if len(body) == 0 {
			w.Write([]byte("Hello, World!"))
			return
		}
		w.Write(append([]byte("Processed: "), body...))
	}))
}

func gzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func gunzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	zr, err := gzip.NewReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer zr.Close()
	out, err := io.ReadAll(zr)
	require.NoError(t, err)
	return out
}

func TestWithGZip_CompressesResponseForGzipClient(t *testing.T) {
	handler := gzipEchoHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "deflate, gzip, br")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	assert.Equal(t, []byte("Hello, World!"), gunzipBytes(t, rec.Body.Bytes()))
}

func TestWithGZip_NoCompressionWithoutAcceptEncoding(t *testing.T) {
	handler := gzipEchoHandler(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	assert.Equal(t, "Hello, World!", rec.Body.String())
}

func TestWithGZip_DecompressesRequestBody(t *testing.T) {
	handler := gzipEchoHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(gzipBytes(t, []byte("Request data"))))
	req.Header.Set("Content-Encoding", "gzip")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Processed: Request data", rec.Body.String())
}

func TestWithGZip_RoundTrip(t *testing.T) {
	handler := gzipEchoHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(gzipBytes(t, []byte("Request data"))))
	req.Header.Set("Content-Encoding", "gzip")
	req.Header.Set("Accept-Encoding", "gzip")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []byte("Processed: Request data"), gunzipBytes(t, rec.Body.Bytes()))
}

func TestWithGZip_InvalidGzipBody(t *testing.T) {
	handler := gzipEchoHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte("definitely not gzip")))
	req.Header.Set("Content-Encoding", "gzip")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
