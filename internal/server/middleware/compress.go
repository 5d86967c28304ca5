// Package middleware provides HTTP middleware for the server.
package middleware

import (
	"compress/gzip"
	"net/http"
	"strings"
)

// CompressMiddleware applies gzip compression to the response.
// Responses without a body are sent uncompressed.
func CompressMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Add("Vary", "Accept-Encoding")
		grw := &gzipResponseWriter{ResponseWriter: w}
		defer grw.Close()

		next.ServeHTTP(grw, r)
	})
}

type gzipResponseWriter struct {
	http.ResponseWriter
	writer *gzip.Writer
	status int
}

// WriteHeader holds the status back until it is known whether a body follows.
func (w *gzipResponseWriter) WriteHeader(code int) {
	if w.status == 0 {
		w.status = code
	}
}

func (w *gzipResponseWriter) Write(b []byte) (int, error) {
	if w.writer == nil {
		if w.status == 0 {
			w.status = http.StatusOK
		}
		w.Header().Set("Content-Encoding", "gzip")
		w.Header().Del("Content-Length")
		w.ResponseWriter.WriteHeader(w.status)
		w.writer = gzip.NewWriter(w.ResponseWriter)
	}
	return w.writer.Write(b)
}

func (w *gzipResponseWriter) Close() error {
	if w.writer != nil {
		return w.writer.Close()
	}
	if w.status != 0 {
		w.ResponseWriter.WriteHeader(w.status)
	}
	return nil
}
