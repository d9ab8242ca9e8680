package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"code.cloudfoundry.org/lager/v3"
	"code.doorsys.dev/console/notify"
	"code.doorsys.dev/console/views"
	"github.com/tedsuo/rata"
)

const (
	errorPageTemplate    = "error.html"
	notFoundPageTemplate = "not_found.html"
	maxFormBytes         = 64 * 1024
)

type Notifier interface {
	Push(session string, level notify.Level, message string) (notify.Notice, error)
	Active(session string) []notify.Notice
}

type ErrorCounter interface {
	IncrementAPIError(errType string)
}

// renderer carries what every view needs to answer a request.
type renderer struct {
	templates    *views.TemplateSet
	errorPage    *views.Page
	notFoundPage *views.Page
	notices      Notifier
	errors       ErrorCounter
	logger       lager.Logger
}

func newRenderer(templates *views.TemplateSet, notices Notifier, errs ErrorCounter, logger lager.Logger) (*renderer, error) {
	errorPage, err := templates.Page(errorPageTemplate)
	if err != nil {
		return nil, err
	}

	notFoundPage, err := templates.Page(notFoundPageTemplate)
	if err != nil {
		return nil, err
	}

	return &renderer{
		templates:    templates,
		errorPage:    errorPage,
		notFoundPage: notFoundPage,
		notices:      notices,
		errors:       errs,
		logger:       logger,
	}, nil
}

func (r *renderer) session(w http.ResponseWriter, req *http.Request) string {
	session, err := notify.Session(w, req)
	if err != nil {
		r.logger.Error("failed-to-establish-session", err)
	}
	return session
}

func (r *renderer) render(w http.ResponseWriter, req *http.Request, page *views.Page, status int, title string, data any) {
	session := r.session(w, req)

	err := page.Render(w, status, views.PageData{
		Title:   title,
		Notices: r.notices.Active(session),
		Data:    data,
	})
	if err != nil {
		r.logger.Error("failed-to-render-page", err, lager.Data{"page": page.Name()})
	}
}

func (r *renderer) notify(w http.ResponseWriter, req *http.Request, level notify.Level, message string) {
	session := r.session(w, req)
	if session == "" {
		return
	}

	_, err := r.notices.Push(session, level, message)
	if err != nil && !errors.Is(err, notify.ErrDisabled) {
		r.logger.Error("failed-to-push-notice", err)
	}
}

// redirect answers a form post by sending the browser to a console path.
func (r *renderer) redirect(w http.ResponseWriter, req *http.Request, path string) {
	http.Redirect(w, req, r.templates.Path(path), http.StatusSeeOther)
}

func (r *renderer) parseForm(w http.ResponseWriter, req *http.Request) error {
	req.Body = http.MaxBytesReader(w, req.Body, maxFormBytes)
	return req.ParseForm()
}

var errInvalidID = errors.New("Resource id must be a positive integer")

func idParam(req *http.Request) (int64, error) {
	id, err := strconv.ParseInt(rata.Param(req, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}
