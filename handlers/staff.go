package handlers

import (
	"fmt"
	"net/http"

	"code.cloudfoundry.org/lager/v3"
	console "code.doorsys.dev/console"
	"code.doorsys.dev/console/notify"
	"code.doorsys.dev/console/views"
)

// StaffHandler answers the staff forms on the customer detail page. Every
// action ends on that page.
type StaffHandler struct {
	*renderer
	client    console.Client
	validator FormValidator
}

func NewStaffHandler(client console.Client, templates *views.TemplateSet, validator FormValidator, notices Notifier, errs ErrorCounter, logger lager.Logger) (*StaffHandler, error) {
	r, err := newRenderer(templates, notices, errs, logger)
	if err != nil {
		return nil, err
	}

	return &StaffHandler{
		renderer:  r,
		client:    client,
		validator: validator,
	}, nil
}

func customerPath(customerID int64) string {
	return fmt.Sprintf("/customers/%d", customerID)
}

func formatPin(pin int) string {
	return fmt.Sprintf("%06d", pin)
}

// Create adds staff to the customer named in the path.
func (h *StaffHandler) Create(w http.ResponseWriter, req *http.Request) {
	log := h.logger.Session("create-staff")

	customerID, err := idParam(req)
	if err != nil {
		h.handleBadRequest(w, req, err, log)
		return
	}

	err = h.parseForm(w, req)
	if err != nil {
		h.handleBadRequest(w, req, err, log)
		return
	}

	newStaff, err := h.validator.Staff(req.PostForm, customerID)
	if err != nil {
		h.notify(w, req, notify.Warning, err.Error())
		h.redirect(w, req, customerPath(customerID))
		return
	}

	staff, err := h.client.CreateStaff(req.Context(), newStaff)
	if err != nil {
		if isRejected(err) {
			h.notify(w, req, notify.Warning, err.Error())
			h.redirect(w, req, customerPath(customerID))
			return
		}
		h.handleAPIError(w, req, err, log)
		return
	}

	log.Info("created", lager.Data{"id": staff.ID, "customer-id": customerID})
	h.notify(w, req, notify.Success, fmt.Sprintf("Staff %s added with PIN %s", staff.Name, formatPin(staff.Pin)))
	h.redirect(w, req, customerPath(customerID))
}

func (h *StaffHandler) Update(w http.ResponseWriter, req *http.Request) {
	log := h.logger.Session("update-staff")

	id, customerID, ok := h.staffTarget(w, req, log)
	if !ok {
		return
	}

	update, err := h.validator.Staff(req.PostForm, customerID)
	if err != nil {
		h.notify(w, req, notify.Warning, err.Error())
		h.redirect(w, req, customerPath(customerID))
		return
	}

	staff, err := h.client.UpdateStaff(req.Context(), id, update)
	if err != nil {
		if isRejected(err) {
			h.notify(w, req, notify.Warning, err.Error())
			h.redirect(w, req, customerPath(customerID))
			return
		}
		h.handleAPIError(w, req, err, log)
		return
	}

	h.notify(w, req, notify.Success, fmt.Sprintf("Staff %s saved", staff.Name))
	h.redirect(w, req, customerPath(customerID))
}

func (h *StaffHandler) ResetPin(w http.ResponseWriter, req *http.Request) {
	log := h.logger.Session("reset-staff-pin")

	id, customerID, ok := h.staffTarget(w, req, log)
	if !ok {
		return
	}

	staff, err := h.client.ResetStaffPin(req.Context(), id)
	if err != nil {
		h.handleAPIError(w, req, err, log)
		return
	}

	log.Info("pin-reset", lager.Data{"id": id})
	h.notify(w, req, notify.Success, fmt.Sprintf("New PIN for %s: %s", staff.Name, formatPin(staff.Pin)))
	h.redirect(w, req, customerPath(customerID))
}

func (h *StaffHandler) Delete(w http.ResponseWriter, req *http.Request) {
	log := h.logger.Session("delete-staff")

	id, customerID, ok := h.staffTarget(w, req, log)
	if !ok {
		return
	}

	err := h.client.DeleteStaff(req.Context(), id)
	if err != nil {
		h.handleAPIError(w, req, err, log)
		return
	}

	log.Info("deleted", lager.Data{"id": id})
	h.notify(w, req, notify.Success, "Staff member removed")
	h.redirect(w, req, customerPath(customerID))
}

// staffTarget reads the staff id from the path and the owning customer from
// the form, answering 400 when either is missing.
func (h *StaffHandler) staffTarget(w http.ResponseWriter, req *http.Request, log lager.Logger) (int64, int64, bool) {
	id, err := idParam(req)
	if err != nil {
		h.handleBadRequest(w, req, err, log)
		return 0, 0, false
	}

	err = h.parseForm(w, req)
	if err != nil {
		h.handleBadRequest(w, req, err, log)
		return 0, 0, false
	}

	customerID, err := h.validator.CustomerID(req.PostForm)
	if err != nil {
		h.handleBadRequest(w, req, err, log)
		return 0, 0, false
	}

	return id, customerID, true
}
