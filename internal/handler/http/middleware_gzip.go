package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/MKhiriev/go-engineer-hub/internal/utils"
)

var (
	gzipWriterPool = sync.Pool{New: func() any { return gzip.NewWriter(io.Discard) }}
	gzipReaderPool = sync.Pool{New: func() any { return new(gzip.Reader) }}
)

// withGZip inflates gzip request bodies and compresses responses for
// clients that accept gzip. Bodiless responses (204, 304) are sent as is.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") && r.Body != nil {
			body, err := inflate(r.Body)
			if err != nil {
				_, _ = utils.WriteMessage(w, ErrInvalidRequestBody.Error(), http.StatusBadRequest)
				return
			}
			r.Body = body
			r.Header.Del("Content-Encoding")
		}

		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		gw := &gzipResponseWriter{ResponseWriter: w}
		defer gw.finish()

		next.ServeHTTP(gw, r)
	})
}

// pooledReader returns its gzip.Reader to the pool on Close.
type pooledReader struct {
	*gzip.Reader
	src io.Closer
}

func inflate(body io.ReadCloser) (io.ReadCloser, error) {
	zr := gzipReaderPool.Get().(*gzip.Reader)
	if err := zr.Reset(body); err != nil {
		gzipReaderPool.Put(zr)
		return nil, err
	}
	return &pooledReader{Reader: zr, src: body}, nil
}

func (p *pooledReader) Close() error {
	err := p.Reader.Close()
	gzipReaderPool.Put(p.Reader)
	if srcErr := p.src.Close(); err == nil {
		err = srcErr
	}
	return err
}

type gzipResponseWriter struct {
	http.ResponseWriter
	zw          *gzip.Writer
	wroteHeader bool
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true

	if statusCode != http.StatusNoContent && statusCode != http.StatusNotModified {
		w.zw = gzipWriterPool.Get().(*gzip.Writer)
		w.zw.Reset(w.ResponseWriter)
		w.Header().Set("Content-Encoding", "gzip")
		w.Header().Del("Content-Length")
	}
	w.ResponseWriter.WriteHeader(statusCode)
}

// Write sends an implicit 200 first when no status was written yet.
func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	if w.zw == nil {
		return w.ResponseWriter.Write(data)
	}
	return w.zw.Write(data)
}

// finish flushes the gzip stream, if one was started, and pools the writer.
func (w *gzipResponseWriter) finish() {
	if w.zw == nil {
		return
	}
	_ = w.zw.Close()
	w.zw.Reset(io.Discard)
	gzipWriterPool.Put(w.zw)
	w.zw = nil
}
