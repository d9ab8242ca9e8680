package handlers

import (
	"net/http"

	"code.cloudfoundry.org/lager/v3"
	"code.doorsys.dev/console/views"
)

const aboutTemplate = "about.html"

type aboutData struct {
	APIBaseURL string
}

type AboutHandler struct {
	*renderer
	apiBaseURL string
	page       *views.Page
}

func NewAboutHandler(apiBaseURL string, templates *views.TemplateSet, notices Notifier, logger lager.Logger) (*AboutHandler, error) {
	r, err := newRenderer(templates, notices, nil, logger)
	if err != nil {
		return nil, err
	}

	page, err := templates.Page(aboutTemplate)
	if err != nil {
		return nil, err
	}

	return &AboutHandler{renderer: r, apiBaseURL: apiBaseURL, page: page}, nil
}

func (h *AboutHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	h.render(w, req, h.page, http.StatusOK, "About", aboutData{APIBaseURL: h.apiBaseURL})
}

// NotFoundHandler answers every path the route table does not know.
type NotFoundHandler struct {
	*renderer
}

func NewNotFoundHandler(templates *views.TemplateSet, notices Notifier, logger lager.Logger) (*NotFoundHandler, error) {
	r, err := newRenderer(templates, notices, nil, logger)
	if err != nil {
		return nil, err
	}
	return &NotFoundHandler{renderer: r}, nil
}

func (h *NotFoundHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	h.logger.Debug("not-found", lager.Data{"path": req.URL.Path})
	h.handleNotFound(w, req)
}
