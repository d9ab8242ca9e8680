package web

import (
	"errors"
	"net/http"
	"path"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"code.cloudfoundry.org/lager/v3"
	"github.com/tedsuo/rata"
)

// Router serves a Table. Redirect entries answer with 302 Found and view
// entries are built by their Loader on first activation.
type Router struct {
	table    Table
	deps     Dependencies
	views    map[string]*lazyView
	notFound http.Handler
	handler  http.Handler
	logger   lager.Logger
}

func (t Table) Handler(deps Dependencies) (*Router, error) {
	r := &Router{
		table:  t,
		deps:   deps,
		views:  map[string]*lazyView{},
		logger: deps.Logger.Session("router", lager.Data{"variant": t.Variant}),
	}

	var routes rata.Routes
	handlers := rata.Handlers{}
	for _, e := range t.Entries {
		if e.IsRedirect() {
			continue
		}
		if e.Load == nil {
			return nil, errors.New("view " + e.Name + " has no loader")
		}

		view := newLazyView(e.Name, e.Load, deps, r.logger)
		r.views[e.Name] = view
		routes = append(routes, rata.Route{Name: e.Name, Method: e.Method, Path: e.Path})
		handlers[e.Name] = view
	}

	handler, err := rata.NewRouter(routes, handlers)
	if err != nil {
		return nil, err
	}
	r.handler = handler
	r.notFound = newLazyView("NotFound", LoadNotFound, deps, r.logger)

	return r, nil
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	p := req.URL.Path
	if len(p) > 1 && strings.HasSuffix(p, "/") {
		target := r.deps.Templates.Path(path.Clean(p))
		if req.URL.RawQuery != "" {
			target += "?" + req.URL.RawQuery
		}
		http.Redirect(w, req, target, http.StatusMovedPermanently)
		return
	}

	entry, _, err := r.table.Resolve(req.Method, p)
	switch {
	case errors.Is(err, ErrMethodNotAllowed):
		w.Header().Set("Allow", strings.Join(r.table.allowed(p), ", "))
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	case err != nil:
		r.notFound.ServeHTTP(w, req)
		return
	}

	if entry.IsRedirect() {
		http.Redirect(w, req, r.deps.Templates.Path(entry.Redirect), http.StatusFound)
		return
	}

	r.handler.ServeHTTP(w, req)
}

// Loaded lists the views that have been activated, sorted by name.
func (r *Router) Loaded() []string {
	var loaded []string
	for name, view := range r.views {
		if view.Loaded() {
			loaded = append(loaded, name)
		}
	}
	sort.Strings(loaded)
	return loaded
}

func (r *Router) LoadedCount() int {
	return len(r.Loaded())
}

func (r *Router) Table() Table {
	return r.table
}

type lazyView struct {
	name   string
	load   Loader
	deps   Dependencies
	logger lager.Logger

	once    sync.Once
	loaded  atomic.Bool
	handler http.Handler
	err     error
}

func newLazyView(name string, load Loader, deps Dependencies, logger lager.Logger) *lazyView {
	return &lazyView{
		name:   name,
		load:   load,
		deps:   deps,
		logger: logger,
	}
}

func (v *lazyView) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	v.once.Do(func() {
		v.logger.Info("loading-view", lager.Data{"view": v.name})
		v.handler, v.err = v.load(v.deps)
		if v.err != nil {
			v.logger.Error("failed-to-load-view", v.err, lager.Data{"view": v.name})
			return
		}
		v.loaded.Store(true)
	})

	if v.err != nil {
		http.Error(w, "The "+v.name+" view failed to load", http.StatusInternalServerError)
		return
	}
	v.handler.ServeHTTP(w, req)
}

func (v *lazyView) Loaded() bool {
	return v.loaded.Load()
}
