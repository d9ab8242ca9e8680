package app

import (
	"crypto/tls"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	"code.cloudfoundry.org/tlsconfig"
	"code.doorsys.dev/console"
	"code.doorsys.dev/console/config"
	"code.doorsys.dev/console/handlers"
	"code.doorsys.dev/console/metrics"
	"code.doorsys.dev/console/notify"
	"code.doorsys.dev/console/views"
	"code.doorsys.dev/console/web"
	"github.com/tedsuo/ifrit"
	"github.com/tedsuo/ifrit/http_server"
)

var (
	ErrAlreadyMounted    = errors.New("console is already mounted")
	ErrInvalidMountPoint = errors.New("mount point must be a path starting with /")
)

const (
	NotificationsPath = "/notifications/events"
	DismissPath       = "/notifications/dismiss"
	AssetsPath        = "/assets/"
)

type Option func(*App)

func WithClock(clk clock.Clock) Option {
	return func(a *App) { a.clock = clk }
}

func WithStatsd(stats metrics.PartialStatsdClient) Option {
	return func(a *App) { a.stats = stats }
}

// WithClient replaces the API client built from the configuration.
func WithClient(client console.Client) Option {
	return func(a *App) { a.client = client }
}

// App owns everything built at startup: the shared API client, the
// notification board, the route table and, once mounted, the root handler.
type App struct {
	cfg    config.Config
	logger lager.Logger
	clock  clock.Clock
	stats  metrics.PartialStatsdClient

	client   console.Client
	board    *notify.Board
	table    web.Table
	reporter *metrics.MetricsReporter
	proxy    http.Handler

	mountLock sync.Mutex
	mounted   atomic.Pointer[mount]
}

type mount struct {
	path   string
	router *web.Router
	root   http.Handler
}

func New(cfg config.Config, logger lager.Logger, opts ...Option) (*App, error) {
	a := &App{
		cfg:    cfg,
		logger: logger.Session("console"),
		clock:  clock.NewClock(),
	}
	for _, opt := range opts {
		opt(a)
	}

	table, err := web.TableFor(cfg.Variant)
	if err != nil {
		return nil, err
	}
	a.table = table

	if a.client == nil {
		a.client, err = console.NewClient(clientConfig(cfg))
		if err != nil {
			a.logger.Error("failed-to-create-client", err, lager.Data{"base-url": cfg.API.BaseURL})
			return nil, err
		}
	}

	if cfg.RelativeBaseURL() {
		a.proxy, err = NewAPIProxy(cfg.API.BaseURL, cfg.API.Upstream, a.logger)
		if err != nil {
			return nil, err
		}
	}

	a.board = notify.NewBoard(notify.Config{
		Enabled:  cfg.Notifications.Enabled,
		Position: cfg.Notifications.Position,
		Timeout:  cfg.Notifications.Timeout,
	}, a.clock, a.logger)

	if a.stats != nil {
		var notices metrics.NoticeCounter
		if a.board.Enabled() {
			notices = a.board
		}
		a.reporter = metrics.NewMetricsReporter(a, notices, a.stats, a.clock, cfg.MetricsReportingInterval, a.logger)
	}

	a.logger.Info("created", lager.Data{
		"variant":       cfg.Variant,
		"base-url":      a.client.BaseURL(),
		"notifications": a.board.Enabled(),
	})
	return a, nil
}

func clientConfig(cfg config.Config) console.ClientConfig {
	clientCfg := console.ClientConfig{
		BaseURL:           cfg.API.BaseURL,
		Origin:            origin(cfg),
		RequestTimeout:    cfg.API.RequestTimeout,
		SkipSSLValidation: cfg.API.SkipSSLValidation,
		CACertPath:        cfg.API.CACertPath,
		MaxResponseSize:   cfg.API.MaxResponseSize,
		Instrumented:      true,
	}
	if cfg.API.OAuth != nil {
		clientCfg.OAuth = &console.OAuthConfig{
			TokenURL:     cfg.API.OAuth.TokenEndpoint,
			ClientID:     cfg.API.OAuth.ClientName,
			ClientSecret: cfg.API.OAuth.ClientSecret,
			Scopes:       cfg.API.OAuth.Scopes,
		}
	}
	return clientCfg
}

// origin is the console's own address, against which a relative API base
// URL resolves.
func origin(cfg config.Config) string {
	scheme := "http"
	if cfg.TLS != nil {
		scheme = "https"
	}
	return fmt.Sprintf("%s://127.0.0.1:%d", scheme, cfg.ListenPort)
}

// Mount attaches the console below mountPath. It succeeds once per App.
func (a *App) Mount(mountPath string) error {
	if mountPath == "" || !strings.HasPrefix(mountPath, "/") {
		return ErrInvalidMountPoint
	}
	if a.proxy != nil && config.MountOverlapsAPI(mountPath, a.cfg.API.BaseURL) {
		return fmt.Errorf("%w: %s overlaps the API proxy at %s", ErrInvalidMountPoint, mountPath, a.cfg.API.BaseURL)
	}

	a.mountLock.Lock()
	defer a.mountLock.Unlock()

	if a.mounted.Load() != nil {
		return ErrAlreadyMounted
	}

	prefix := strings.TrimRight(mountPath, "/")
	templates, err := views.NewTemplateSet(prefix, a.table.Nav, a.board.Config())
	if err != nil {
		a.logger.Error("failed-to-parse-layout", err)
		return err
	}

	deps := web.Dependencies{
		Client:    a.client,
		Templates: templates,
		Notices:   a.board,
		Clock:     a.clock,
		Logger:    a.logger,
	}
	if a.reporter != nil {
		deps.Errors = a.reporter
	}

	router, err := a.table.Handler(deps)
	if err != nil {
		a.logger.Error("failed-to-build-router", err)
		return err
	}

	consoleMux := http.NewServeMux()
	consoleMux.Handle(AssetsPath, templates.Assets())
	consoleMux.Handle(NotificationsPath, notify.NewStreamHandler(a.board, a.logger))
	consoleMux.Handle(DismissPath, notify.NewDismissHandler(a.board, a.logger))
	consoleMux.Handle("/", router)

	rootMux := http.NewServeMux()
	if a.proxy != nil {
		base := strings.TrimRight(a.cfg.API.BaseURL, "/")
		rootMux.Handle(base+"/", a.proxy)
	}
	if prefix == "" {
		rootMux.Handle("/", consoleMux)
	} else {
		rootMux.Handle(prefix+"/", http.StripPrefix(prefix, consoleMux))
		rootMux.Handle(prefix, http.RedirectHandler(prefix+"/", http.StatusMovedPermanently))
	}

	a.mounted.Store(&mount{
		path:   mountPath,
		router: router,
		root:   handlers.LogWrap(rootMux, a.logger),
	})
	a.logger.Info("mounted", lager.Data{"mount-path": mountPath})
	return nil
}

// Handler serves the mounted console and answers 404 until Mount succeeds.
func (a *App) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m := a.mounted.Load()
		if m == nil {
			http.NotFound(w, r)
			return
		}
		m.root.ServeHTTP(w, r)
	})
}

func (a *App) Runner() (ifrit.Runner, error) {
	addr := fmt.Sprintf(":%d", a.cfg.ListenPort)
	if a.cfg.TLS == nil {
		return http_server.New(addr, a.Handler()), nil
	}

	tlsConfig, err := serverTLSConfig(a.cfg.TLS)
	if err != nil {
		a.logger.Error("failed-to-build-tls-config", err)
		return nil, err
	}
	return http_server.NewTLSServer(addr, a.Handler(), tlsConfig), nil
}

func serverTLSConfig(cfg *config.TLSConfig) (*tls.Config, error) {
	return tlsconfig.Build(
		tlsconfig.WithInternalServiceDefaults(),
		tlsconfig.WithIdentityFromFile(cfg.CertPath, cfg.KeyPath),
	).Server()
}

func (a *App) Client() console.Client {
	return a.client
}

func (a *App) Notices() *notify.Board {
	return a.board
}

// Router is nil until the console is mounted.
func (a *App) Router() *web.Router {
	if m := a.mounted.Load(); m != nil {
		return m.router
	}
	return nil
}

// Metrics is nil unless a statsd client was supplied.
func (a *App) Metrics() *metrics.MetricsReporter {
	return a.reporter
}

func (a *App) Pruner() ifrit.Runner {
	return notify.NewPruner(a.board, a.clock, a.cfg.Notifications.PruneInterval, a.logger)
}

func (a *App) LoadedCount() int {
	if r := a.Router(); r != nil {
		return r.LoadedCount()
	}
	return 0
}
