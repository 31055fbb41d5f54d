package middlewares

import (
	"bufio"
	"bytes"
	"net"
	"net/http"
)

// responseRecorder wraps http.ResponseWriter to observe the response while
// writing it through: status code, bytes written, and optionally a copy of
// the body up to maxBody bytes.
type responseRecorder struct {
	http.ResponseWriter
	body     bytes.Buffer
	status   int
	size     int64
	maxBody  int64
	overflow bool
	written  bool
}

// newResponseRecorder creates a recorder. maxBody is the body-capture budget
// in bytes; zero disables capture entirely.
func newResponseRecorder(w http.ResponseWriter, maxBody int64) *responseRecorder {
	return &responseRecorder{
		ResponseWriter: w,
		status:         http.StatusOK,
		maxBody:        maxBody,
	}
}

// WriteHeader sends an HTTP response header with the provided status code.
func (w *responseRecorder) WriteHeader(code int) {
	if w.written {
		return
	}
	w.written = true
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// Write writes the data through to the client, copying it into the capture
// buffer while under budget.
func (w *responseRecorder) Write(b []byte) (int, error) {
	if !w.written {
		w.written = true
		w.ResponseWriter.WriteHeader(w.status)
	}

	if w.maxBody > 0 && !w.overflow {
		if int64(w.body.Len())+int64(len(b)) > w.maxBody {
			// Oversized responses are passed through but never cached.
			w.overflow = true
			w.body.Reset()
		} else {
			w.body.Write(b)
		}
	}

	n, err := w.ResponseWriter.Write(b)
	w.size += int64(n)
	return n, err
}

// Status returns the HTTP status code of the response.
func (w *responseRecorder) Status() int {
	return w.status
}

// Size returns the number of bytes written to the response body.
func (w *responseRecorder) Size() int64 {
	return w.size
}

// Body returns the captured body, or nil if capture was disabled or the
// budget was exceeded.
func (w *responseRecorder) Body() []byte {
	if w.overflow {
		return nil
	}
	return w.body.Bytes()
}

// Flush implements the http.Flusher interface.
func (w *responseRecorder) Flush() {
	if flusher, ok := w.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

// Hijack implements the http.Hijacker interface.
func (w *responseRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	if hijacker, ok := w.ResponseWriter.(http.Hijacker); ok {
		return hijacker.Hijack()
	}
	return nil, nil, http.ErrNotSupported
}

// Unwrap returns the underlying ResponseWriter.
func (w *responseRecorder) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
