package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"code.cloudfoundry.org/lager/v3"
	console "code.doorsys.dev/console"
	"code.doorsys.dev/console/models"
	"code.doorsys.dev/console/notify"
	"code.doorsys.dev/console/views"
	"github.com/tedsuo/rata"
)

var errInvalidCode = errors.New("Code must contain only digits")

// CodesHandler answers the access code forms on the user detail page.
type CodesHandler struct {
	*renderer
	client    console.Client
	validator FormValidator
}

func NewCodesHandler(client console.Client, templates *views.TemplateSet, validator FormValidator, notices Notifier, errs ErrorCounter, logger lager.Logger) (*CodesHandler, error) {
	r, err := newRenderer(templates, notices, errs, logger)
	if err != nil {
		return nil, err
	}

	return &CodesHandler{
		renderer:  r,
		client:    client,
		validator: validator,
	}, nil
}

func userPath(userID int64) string {
	return fmt.Sprintf("/users/%d", userID)
}

func codeParam(req *http.Request) (string, error) {
	code := rata.Param(req, "code")
	if models.ValidateCodeValue(code) != nil {
		return "", errInvalidCode
	}
	return code, nil
}

func (h *CodesHandler) Create(w http.ResponseWriter, req *http.Request) {
	log := h.logger.Session("create-code")

	userID, err := idParam(req)
	if err != nil {
		h.handleBadRequest(w, req, err, log)
		return
	}

	err = h.parseForm(w, req)
	if err != nil {
		h.handleBadRequest(w, req, err, log)
		return
	}

	newCode, err := h.validator.Code(req.PostForm, userID)
	if err != nil {
		h.notify(w, req, notify.Warning, err.Error())
		h.redirect(w, req, userPath(userID))
		return
	}

	code, err := h.client.CreateCode(req.Context(), newCode)
	if err != nil {
		if isRejected(err) {
			h.notify(w, req, notify.Warning, err.Error())
			h.redirect(w, req, userPath(userID))
			return
		}
		h.handleAPIError(w, req, err, log)
		return
	}

	log.Info("created", lager.Data{"user-id": userID, "type": code.CodeType})
	h.notify(w, req, notify.Success, fmt.Sprintf("%s code %s added", code.CodeType, code.Code))
	h.redirect(w, req, userPath(userID))
}

// Update replaces the code named in the path with the submitted one.
func (h *CodesHandler) Update(w http.ResponseWriter, req *http.Request) {
	log := h.logger.Session("update-code")

	userID, oldCode, ok := h.codeTarget(w, req, log)
	if !ok {
		return
	}

	err := h.parseForm(w, req)
	if err != nil {
		h.handleBadRequest(w, req, err, log)
		return
	}

	newCode, err := h.validator.CodeValue(req.PostForm)
	if err != nil {
		h.notify(w, req, notify.Warning, err.Error())
		h.redirect(w, req, userPath(userID))
		return
	}

	code, err := h.client.UpdateCode(req.Context(), oldCode, newCode)
	if err != nil {
		if isRejected(err) {
			h.notify(w, req, notify.Warning, err.Error())
			h.redirect(w, req, userPath(userID))
			return
		}
		h.handleAPIError(w, req, err, log)
		return
	}

	h.notify(w, req, notify.Success, fmt.Sprintf("Code %s replaced by %s", oldCode, code.Code))
	h.redirect(w, req, userPath(userID))
}

func (h *CodesHandler) Delete(w http.ResponseWriter, req *http.Request) {
	log := h.logger.Session("delete-code")

	userID, code, ok := h.codeTarget(w, req, log)
	if !ok {
		return
	}

	err := h.client.DeleteCode(req.Context(), code)
	if err != nil {
		h.handleAPIError(w, req, err, log)
		return
	}

	log.Info("deleted", lager.Data{"user-id": userID})
	h.notify(w, req, notify.Success, fmt.Sprintf("Code %s removed", code))
	h.redirect(w, req, userPath(userID))
}

func (h *CodesHandler) codeTarget(w http.ResponseWriter, req *http.Request, log lager.Logger) (int64, string, bool) {
	userID, err := idParam(req)
	if err != nil {
		h.handleBadRequest(w, req, err, log)
		return 0, "", false
	}

	code, err := codeParam(req)
	if err != nil {
		h.handleBadRequest(w, req, err, log)
		return 0, "", false
	}

	return userID, code, true
}
