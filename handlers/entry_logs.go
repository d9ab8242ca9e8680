package handlers

import (
	"net/http"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	console "code.doorsys.dev/console"
	"code.doorsys.dev/console/models"
	"code.doorsys.dev/console/views"
)

const entryLogsTemplate = "logs.html"

type entryLogsData struct {
	Entries  []models.EntryLog
	Devices  []models.Device
	Start    string
	End      string
	Device   string
	Customer string
}

type EntryLogsHandler struct {
	*renderer
	client    console.Client
	validator FormValidator
	clock     clock.Clock
	page      *views.Page
}

func NewEntryLogsHandler(client console.Client, templates *views.TemplateSet, validator FormValidator, clk clock.Clock, notices Notifier, errs ErrorCounter, logger lager.Logger) (*EntryLogsHandler, error) {
	r, err := newRenderer(templates, notices, errs, logger)
	if err != nil {
		return nil, err
	}

	page, err := templates.Page(entryLogsTemplate)
	if err != nil {
		return nil, err
	}

	return &EntryLogsHandler{
		renderer:  r,
		client:    client,
		validator: validator,
		clock:     clk,
		page:      page,
	}, nil
}

func (h *EntryLogsHandler) List(w http.ResponseWriter, req *http.Request) {
	log := h.logger.Session("list-entry-logs")

	query := req.URL.Query()
	filter, err := h.validator.EntryLogFilter(query, h.clock.Now())
	if err != nil {
		h.handleBadRequest(w, req, err, log)
		return
	}

	entries, err := h.client.EntryLogs(req.Context(), filter)
	if err != nil {
		h.handleAPIError(w, req, err, log)
		return
	}

	devices, err := h.client.Devices(req.Context())
	if err != nil {
		h.handleAPIError(w, req, err, log)
		return
	}

	h.render(w, req, h.page, http.StatusOK, "Entry logs", entryLogsData{
		Entries:  entries,
		Devices:  devices,
		Start:    h.validator.FormatTime(filter.Start),
		End:      h.validator.FormatTime(filter.End),
		Device:   query.Get("device"),
		Customer: query.Get("customer"),
	})
}
