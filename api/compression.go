package api

import (
	"compress/gzip"
	"context"
	"net/http"
	"strings"

	"github.com/fulldump/box"
)

// compressMinSize is the smallest response body worth gzipping.
const compressMinSize = 1024

// Compression gzips response bodies of at least compressMinSize bytes for
// clients sending Accept-Encoding: gzip. Smaller bodies go out untouched.
func Compression(next box.H) box.H {
	return func(ctx context.Context) {
		r := box.GetRequest(ctx)
		w := box.GetResponse(ctx)

		w.Header().Add("Vary", "Accept-Encoding")
		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next(ctx)
			return
		}

		cw := &compressWriter{ResponseWriter: w}
		defer cw.Close()
		box.GetBoxContext(ctx).Response = cw
		next(ctx)
	}
}

// compressWriter holds back the status and the first bytes of the body until
// it knows whether the response reaches compressMinSize.
type compressWriter struct {
	http.ResponseWriter
	status int
	buf    []byte
	gz     *gzip.Writer
}

func (w *compressWriter) WriteHeader(status int) {
	if w.status == 0 {
		w.status = status
	}
}

func (w *compressWriter) Write(b []byte) (int, error) {
	if w.gz != nil {
		return w.gz.Write(b)
	}

	w.buf = append(w.buf, b...)
	if len(w.buf) < compressMinSize {
		return len(b), nil
	}

	h := w.Header()
	h.Set("Content-Encoding", "gzip")
	h.Del("Content-Length")
	w.writeHeader()

	w.gz = gzip.NewWriter(w.ResponseWriter)
	buf := w.buf
	w.buf = nil
	if _, err := w.gz.Write(buf); err != nil {
		return 0, err
	}
	return len(b), nil
}

// Close flushes whatever is pending, compressed or not.
func (w *compressWriter) Close() error {
	if w.gz != nil {
		return w.gz.Close()
	}

	w.writeHeader()
	if len(w.buf) == 0 {
		return nil
	}
	buf := w.buf
	w.buf = nil
	_, err := w.ResponseWriter.Write(buf)
	return err
}

func (w *compressWriter) writeHeader() {
	if w.status != 0 {
		w.ResponseWriter.WriteHeader(w.status)
	}
}
