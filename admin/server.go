package admin

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"code.cloudfoundry.org/lager/v3"
	"code.doorsys.dev/console"
	"code.doorsys.dev/console/handlers"
	"code.doorsys.dev/console/web"
	"github.com/tedsuo/ifrit"
	"github.com/tedsuo/ifrit/http_server"
	"github.com/tedsuo/rata"
)

const (
	ViewsRoute  = "Views"
	HealthRoute = "Health"

	healthTimeout = 5 * time.Second
)

var AdminRoutes = rata.Routes{
	{Path: "/views", Method: "GET", Name: ViewsRoute},
	{Path: "/health", Method: "GET", Name: HealthRoute},
}

type ViewSource interface {
	Table() web.Table
	Loaded() []string
}

type View struct {
	Name     string `json:"name"`
	Method   string `json:"method"`
	Path     string `json:"path"`
	Redirect string `json:"redirect,omitempty"`
	Loaded   bool   `json:"loaded"`
}

type ViewsResponse struct {
	Variant web.Variant `json:"variant"`
	Views   []View      `json:"views"`
}

type HealthResponse struct {
	Healthy bool   `json:"healthy"`
	BaseURL string `json:"base_url"`
	Error   string `json:"error,omitempty"`
}

func NewHandler(views ViewSource, client console.Client, logger lager.Logger) (http.Handler, error) {
	actions := rata.Handlers{
		ViewsRoute:  &viewsHandler{views: views},
		HealthRoute: &healthHandler{client: client, logger: logger.Session("health")},
	}
	handler, err := rata.NewRouter(AdminRoutes, actions)
	if err != nil {
		return nil, err
	}

	return handlers.LogWrap(handler, logger), nil
}

func NewServer(socket string, views ViewSource, client console.Client, logger lager.Logger) (ifrit.Runner, error) {
	handler, err := NewHandler(views, client, logger)
	if err != nil {
		logger.Error("failed-to-create-router", err)
		return nil, err
	}

	return http_server.NewUnixServer(socket, handler), nil
}

type viewsHandler struct {
	views ViewSource
}

func (h *viewsHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	loaded := map[string]bool{}
	for _, name := range h.views.Loaded() {
		loaded[name] = true
	}

	table := h.views.Table()
	response := ViewsResponse{Variant: table.Variant, Views: []View{}}
	for _, e := range table.Entries {
		response.Views = append(response.Views, View{
			Name:     e.Name,
			Method:   e.Method,
			Path:     e.Path,
			Redirect: e.Redirect,
			Loaded:   loaded[e.Name],
		})
	}

	writeJSON(w, http.StatusOK, response)
}

type healthHandler struct {
	client console.Client
	logger lager.Logger
}

func (h *healthHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), healthTimeout)
	defer cancel()

	response := HealthResponse{Healthy: true, BaseURL: h.client.BaseURL()}
	if err := h.client.Health(ctx); err != nil {
		h.logger.Error("api-unhealthy", err, lager.Data{"base-url": response.BaseURL})
		response.Healthy = false
		response.Error = err.Error()
		writeJSON(w, http.StatusBadGateway, response)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
