package app

import (
	"errors"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"

	"code.cloudfoundry.org/lager/v3"
)

// NewAPIProxy forwards requests below basePath to upstream with the prefix
// removed, so /api/customers reaches <upstream>/customers.
func NewAPIProxy(basePath, upstream string, logger lager.Logger) (http.Handler, error) {
	target, err := url.Parse(upstream)
	if err != nil {
		return nil, err
	}
	if !target.IsAbs() {
		return nil, errors.New("api upstream must be an absolute URL")
	}

	logger = logger.Session("api-proxy", lager.Data{"upstream": target.String()})
	proxy := &httputil.ReverseProxy{
		Rewrite: func(r *httputil.ProxyRequest) {
			r.SetURL(target)
			r.SetXForwarded()
		},
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			logger.Error("failed-to-proxy", err, lager.Data{"path": r.URL.Path})
			w.WriteHeader(http.StatusBadGateway)
		},
	}

	return http.StripPrefix(strings.TrimRight(basePath, "/"), proxy), nil
}
