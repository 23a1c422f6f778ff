package api

import (
	"log"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// securityHeaders sets baseline hardening headers on every response.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "no-referrer")
		next.ServeHTTP(w, r)
	})
}

// requestLogger records method, path and client address when a request
// arrives, and method, path, status and wall-clock duration when the
// response completes. Purely observational.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("[http] --> %s %s from %s", r.Method, r.URL.Path, r.RemoteAddr)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		log.Printf("[http] <-- %s %s %d in %s", r.Method, r.URL.Path, ww.Status(), time.Since(start))
	})
}

// maxBody caps the readable request body at limit bytes. Oversized bodies
// surface as decode errors in the handlers, which report VALIDATION_ERROR.
func maxBody(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}

// recoverer is the last-resort supervisor for request handling: any panic is
// logged with method, path, message and stack, then converted into the JSON
// error contract. A panic carrying an *Error keeps its declared status and
// code; anything else becomes a 500. The stack is included in the response
// body only outside production.
func recoverer(production bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				stack := debug.Stack()

				apiErr, ok := rec.(*Error)
				if !ok {
					apiErr = &Error{
						Status:  http.StatusInternalServerError,
						Code:    CodeInternal,
						Message: "An internal error occurred",
					}
				}

				log.Printf("[http] ERROR %s %s: %v\n%s", r.Method, r.URL.Path, rec, stack)

				if production || apiErr.Status < http.StatusInternalServerError {
					respondError(w, apiErr)
					return
				}

				// Development mode: include the stack for debugging.
				respondJSON(w, apiErr.Status, map[string]string{
					"error":   apiErr.Code,
					"message": apiErr.Message,
					"stack":   string(stack),
				})
			}()

			next.ServeHTTP(w, r)
		})
	}
}
