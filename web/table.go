package web

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	console "code.doorsys.dev/console"
	"code.doorsys.dev/console/notify"
	"code.doorsys.dev/console/views"
	"github.com/tedsuo/rata"
)

type Variant string

const (
	CustomersVariant Variant = "customers"
	UsersVariant     Variant = "users"
)

var (
	ErrNoRoute          = errors.New("no route matches the request")
	ErrMethodNotAllowed = errors.New("method not allowed")
)

// APIErrorCounter records failed backend calls.
type APIErrorCounter interface {
	IncrementAPIError(errType string)
}

// Dependencies is the single injection point shared by every view.
type Dependencies struct {
	Client    console.Client
	Templates *views.TemplateSet
	Notices   *notify.Board
	Errors    APIErrorCounter
	Clock     clock.Clock
	Logger    lager.Logger
}

// Loader builds a view on its first activation.
type Loader func(deps Dependencies) (http.Handler, error)

type Entry struct {
	Name     string
	Path     string
	Method   string
	Redirect string
	Load     Loader
}

func (e Entry) IsRedirect() bool {
	return e.Redirect != ""
}

type Table struct {
	Variant Variant
	Nav     []views.NavLink
	Entries []Entry
}

func TableFor(variant Variant) (Table, error) {
	switch variant {
	case CustomersVariant:
		return CustomersTable(), nil
	case UsersVariant:
		return UsersTable(), nil
	default:
		return Table{}, fmt.Errorf("Unknown variant %q", variant)
	}
}

func (t Table) Routes() rata.Routes {
	routes := make(rata.Routes, 0, len(t.Entries))
	for _, e := range t.Entries {
		routes = append(routes, rata.Route{Name: e.Name, Method: e.Method, Path: e.Path})
	}
	return routes
}

// Resolve returns the first entry matching the request, in table order.
func (t Table) Resolve(method, path string) (Entry, rata.Params, error) {
	pathMatched := false
	for _, e := range t.Entries {
		params, ok := match(e.Path, path)
		if !ok {
			continue
		}
		if e.Method != method {
			pathMatched = true
			continue
		}
		return e, params, nil
	}

	if pathMatched {
		return Entry{}, nil, ErrMethodNotAllowed
	}
	return Entry{}, nil, ErrNoRoute
}

func (t Table) allowed(path string) []string {
	var methods []string
	for _, e := range t.Entries {
		if _, ok := match(e.Path, path); ok {
			methods = append(methods, e.Method)
		}
	}
	return methods
}

func match(pattern, path string) (rata.Params, bool) {
	patternSegments := strings.Split(strings.Trim(pattern, "/"), "/")
	pathSegments := strings.Split(strings.Trim(path, "/"), "/")
	if len(patternSegments) != len(pathSegments) {
		return nil, false
	}

	params := rata.Params{}
	for i, segment := range patternSegments {
		if strings.HasPrefix(segment, ":") {
			if pathSegments[i] == "" {
				return nil, false
			}
			params[segment[1:]] = pathSegments[i]
			continue
		}
		if segment != pathSegments[i] {
			return nil, false
		}
	}
	return params, true
}
