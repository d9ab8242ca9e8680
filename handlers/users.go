package handlers

import (
	"fmt"
	"net/http"

	"code.cloudfoundry.org/lager/v3"
	console "code.doorsys.dev/console"
	"code.doorsys.dev/console/models"
	"code.doorsys.dev/console/notify"
	"code.doorsys.dev/console/views"
)

const (
	userListTemplate   = "users.html"
	userDetailTemplate = "user.html"
)

type userListData struct {
	Users []models.User
}

type userDetailData struct {
	User  models.User
	Codes []models.Code
}

type UsersHandler struct {
	*renderer
	client     console.Client
	validator  FormValidator
	listPage   *views.Page
	detailPage *views.Page
}

func NewUsersHandler(client console.Client, templates *views.TemplateSet, validator FormValidator, notices Notifier, errs ErrorCounter, logger lager.Logger) (*UsersHandler, error) {
	r, err := newRenderer(templates, notices, errs, logger)
	if err != nil {
		return nil, err
	}

	listPage, err := templates.Page(userListTemplate)
	if err != nil {
		return nil, err
	}

	detailPage, err := templates.Page(userDetailTemplate)
	if err != nil {
		return nil, err
	}

	return &UsersHandler{
		renderer:   r,
		client:     client,
		validator:  validator,
		listPage:   listPage,
		detailPage: detailPage,
	}, nil
}

func (h *UsersHandler) List(w http.ResponseWriter, req *http.Request) {
	log := h.logger.Session("list-users")

	users, err := h.client.Users(req.Context())
	if err != nil {
		h.handleAPIError(w, req, err, log)
		return
	}

	h.render(w, req, h.listPage, http.StatusOK, "Users", userListData{Users: users})
}

func (h *UsersHandler) Create(w http.ResponseWriter, req *http.Request) {
	log := h.logger.Session("create-user")

	err := h.parseForm(w, req)
	if err != nil {
		h.handleBadRequest(w, req, err, log)
		return
	}

	newUser, err := h.validator.User(req.PostForm)
	if err != nil {
		h.notify(w, req, notify.Warning, err.Error())
		h.redirect(w, req, "/users")
		return
	}

	user, err := h.client.CreateUser(req.Context(), newUser)
	if err != nil {
		if isRejected(err) {
			h.notify(w, req, notify.Warning, err.Error())
			h.redirect(w, req, "/users")
			return
		}
		h.handleAPIError(w, req, err, log)
		return
	}

	log.Info("created", lager.Data{"id": user.ID})
	h.notify(w, req, notify.Success, fmt.Sprintf("User %s created", user.Name))
	h.redirect(w, req, fmt.Sprintf("/users/%d", user.ID))
}

func (h *UsersHandler) Show(w http.ResponseWriter, req *http.Request) {
	log := h.logger.Session("show-user")

	id, err := idParam(req)
	if err != nil {
		h.handleBadRequest(w, req, err, log)
		return
	}

	user, err := h.client.User(req.Context(), id)
	if err != nil {
		h.handleAPIError(w, req, err, log)
		return
	}

	codes, err := h.client.Codes(req.Context(), id)
	if err != nil {
		h.handleAPIError(w, req, err, log)
		return
	}

	h.render(w, req, h.detailPage, http.StatusOK, user.Name, userDetailData{User: user, Codes: codes})
}

func (h *UsersHandler) Update(w http.ResponseWriter, req *http.Request) {
	log := h.logger.Session("update-user")

	id, err := idParam(req)
	if err != nil {
		h.handleBadRequest(w, req, err, log)
		return
	}

	err = h.parseForm(w, req)
	if err != nil {
		h.handleBadRequest(w, req, err, log)
		return
	}

	detailPath := fmt.Sprintf("/users/%d", id)

	update, err := h.validator.User(req.PostForm)
	if err != nil {
		h.notify(w, req, notify.Warning, err.Error())
		h.redirect(w, req, detailPath)
		return
	}

	user, err := h.client.UpdateUser(req.Context(), id, update)
	if err != nil {
		if isRejected(err) {
			h.notify(w, req, notify.Warning, err.Error())
			h.redirect(w, req, detailPath)
			return
		}
		h.handleAPIError(w, req, err, log)
		return
	}

	h.notify(w, req, notify.Success, fmt.Sprintf("User %s saved", user.Name))
	h.redirect(w, req, detailPath)
}
