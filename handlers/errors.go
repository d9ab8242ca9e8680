package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"code.cloudfoundry.org/lager/v3"
	console "code.doorsys.dev/console"
	"code.doorsys.dev/console/notify"
)

type errorData struct {
	Status  int
	Message string
}

type notFoundData struct {
	Path string
}

func (r *renderer) handleBadRequest(w http.ResponseWriter, req *http.Request, err error, log lager.Logger) {
	log.Info("bad-request", lager.Data{"reason": err.Error()})
	r.render(w, req, r.errorPage, http.StatusBadRequest, "Bad Request", errorData{
		Status:  http.StatusBadRequest,
		Message: err.Error(),
	})
}

func (r *renderer) handleNotFound(w http.ResponseWriter, req *http.Request) {
	r.render(w, req, r.notFoundPage, http.StatusNotFound, "Not Found", notFoundData{Path: req.URL.Path})
}

// handleAPIError renders the page matching a failed backend call: the
// not-found page for missing resources and a 502 page with an error notice
// for everything else.
func (r *renderer) handleAPIError(w http.ResponseWriter, req *http.Request, err error, log lager.Logger) {
	if console.IsNotFound(err) {
		log.Info("resource-not-found", lager.Data{"reason": err.Error()})
		r.handleNotFound(w, req)
		return
	}

	log.Error("api-request-failed", err)

	errType := console.APIError
	var apiErr console.Error
	if errors.As(err, &apiErr) {
		errType = apiErr.Type
	}
	if r.errors != nil {
		r.errors.IncrementAPIError(errType)
	}

	message := fmt.Sprintf("Failed to reach API: %s", err.Error())
	r.notify(w, req, notify.Error, message)
	r.render(w, req, r.errorPage, http.StatusBadGateway, "Bad Gateway", errorData{
		Status:  http.StatusBadGateway,
		Message: message,
	})
}

// isRejected reports whether the backend refused the submitted input, as
// opposed to failing outright.
func isRejected(err error) bool {
	var apiErr console.Error
	return errors.As(err, &apiErr) && apiErr.Type == console.ProcessRequestError
}
