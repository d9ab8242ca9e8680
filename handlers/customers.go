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
	customerListTemplate   = "customers.html"
	customerDetailTemplate = "customer.html"
)

type customerListData struct {
	Customers []models.Customer
	Active    string
}

type customerDetailData struct {
	Customer models.Customer
	Staff    []models.Staff
}

type CustomersHandler struct {
	*renderer
	client     console.Client
	validator  FormValidator
	listPage   *views.Page
	detailPage *views.Page
}

func NewCustomersHandler(client console.Client, templates *views.TemplateSet, validator FormValidator, notices Notifier, errs ErrorCounter, logger lager.Logger) (*CustomersHandler, error) {
	r, err := newRenderer(templates, notices, errs, logger)
	if err != nil {
		return nil, err
	}

	listPage, err := templates.Page(customerListTemplate)
	if err != nil {
		return nil, err
	}

	detailPage, err := templates.Page(customerDetailTemplate)
	if err != nil {
		return nil, err
	}

	return &CustomersHandler{
		renderer:   r,
		client:     client,
		validator:  validator,
		listPage:   listPage,
		detailPage: detailPage,
	}, nil
}

func (h *CustomersHandler) List(w http.ResponseWriter, req *http.Request) {
	log := h.logger.Session("list-customers")

	filter, err := h.validator.CustomerFilter(req.URL.Query())
	if err != nil {
		h.handleBadRequest(w, req, err, log)
		return
	}

	customers, err := h.client.Customers(req.Context(), filter)
	if err != nil {
		h.handleAPIError(w, req, err, log)
		return
	}

	h.render(w, req, h.listPage, http.StatusOK, "Customers", customerListData{
		Customers: customers,
		Active:    req.URL.Query().Get("active"),
	})
}

func (h *CustomersHandler) Create(w http.ResponseWriter, req *http.Request) {
	log := h.logger.Session("create-customer")

	err := h.parseForm(w, req)
	if err != nil {
		h.handleBadRequest(w, req, err, log)
		return
	}

	newCustomer, err := h.validator.Customer(req.PostForm)
	if err != nil {
		h.notify(w, req, notify.Warning, err.Error())
		h.redirect(w, req, "/customers")
		return
	}

	customer, err := h.client.CreateCustomer(req.Context(), newCustomer)
	if err != nil {
		if isRejected(err) {
			h.notify(w, req, notify.Warning, err.Error())
			h.redirect(w, req, "/customers")
			return
		}
		h.handleAPIError(w, req, err, log)
		return
	}

	log.Info("created", lager.Data{"id": customer.ID})
	h.notify(w, req, notify.Success, fmt.Sprintf("Customer %s created", customer.Name))
	h.redirect(w, req, fmt.Sprintf("/customers/%d", customer.ID))
}

func (h *CustomersHandler) Show(w http.ResponseWriter, req *http.Request) {
	log := h.logger.Session("show-customer")

	id, err := idParam(req)
	if err != nil {
		h.handleBadRequest(w, req, err, log)
		return
	}

	customer, err := h.client.Customer(req.Context(), id)
	if err != nil {
		h.handleAPIError(w, req, err, log)
		return
	}

	staff, err := h.client.Staff(req.Context(), id)
	if err != nil {
		h.handleAPIError(w, req, err, log)
		return
	}

	h.render(w, req, h.detailPage, http.StatusOK, customer.Name, customerDetailData{
		Customer: customer,
		Staff:    staff,
	})
}

func (h *CustomersHandler) Update(w http.ResponseWriter, req *http.Request) {
	log := h.logger.Session("update-customer")

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

	detailPath := fmt.Sprintf("/customers/%d", id)

	update, err := h.validator.Customer(req.PostForm)
	if err != nil {
		h.notify(w, req, notify.Warning, err.Error())
		h.redirect(w, req, detailPath)
		return
	}

	customer, err := h.client.UpdateCustomer(req.Context(), id, update)
	if err != nil {
		if isRejected(err) {
			h.notify(w, req, notify.Warning, err.Error())
			h.redirect(w, req, detailPath)
			return
		}
		h.handleAPIError(w, req, err, log)
		return
	}

	h.notify(w, req, notify.Success, fmt.Sprintf("Customer %s saved", customer.Name))
	h.redirect(w, req, detailPath)
}

func (h *CustomersHandler) UpdateStatus(w http.ResponseWriter, req *http.Request) {
	log := h.logger.Session("update-customer-status")

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

	active, err := h.validator.Active(req.PostForm)
	if err != nil {
		h.handleBadRequest(w, req, err, log)
		return
	}

	customer, err := h.client.UpdateCustomerStatus(req.Context(), id, active)
	if err != nil {
		h.handleAPIError(w, req, err, log)
		return
	}

	status := "deactivated"
	if customer.Active {
		status = "activated"
	}
	log.Info("status-changed", lager.Data{"id": id, "active": customer.Active})
	h.notify(w, req, notify.Success, fmt.Sprintf("Customer %s %s", customer.Name, status))
	h.redirect(w, req, fmt.Sprintf("/customers/%d", id))
}
