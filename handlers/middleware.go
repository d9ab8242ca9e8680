package handlers

import (
	"net/http"

	"code.cloudfoundry.org/lager/v3"
	"github.com/cloudfoundry/dropsonde"
)

var filteredHeaders = map[string]bool{
	"Authorization": true,
	"Cookie":        true,
	"Set-Cookie":    true,
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Flush() {
	if flusher, ok := r.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

func LogWrap(handler http.Handler, logger lager.Logger) http.HandlerFunc {
	handler = dropsonde.InstrumentedHandler(handler)

	return func(w http.ResponseWriter, r *http.Request) {
		requestLog := logger.Session("request", lager.Data{
			"method":  r.Method,
			"request": r.URL.String(),
		})

		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		requestLog.Debug("serving", lager.Data{"request-headers": filter(r.Header)})
		handler.ServeHTTP(recorder, r)
		requestLog.Debug("done", lager.Data{
			"status":           recorder.status,
			"response-headers": filter(w.Header()),
		})
	}
}

func filter(header http.Header) http.Header {
	filtered := make(http.Header)
	for k, v := range header {
		if !filteredHeaders[http.CanonicalHeaderKey(k)] {
			filtered[k] = v
		}
	}
	return filtered
}
