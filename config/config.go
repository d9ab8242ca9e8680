package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"code.doorsys.dev/console/web"
	"github.com/docker/go-units"
	"gopkg.in/yaml.v2"
)

const (
	DefaultListenPort           = 8080
	DefaultBaseURL              = "http://localhost:3000/"
	DefaultMountPath            = "/"
	DefaultRequestTimeout       = 15 * time.Second
	DefaultMaxResponseSize      = "4MiB"
	DefaultNotificationPosition = "top-right"
	DefaultNotificationTimeout  = 2000 * time.Millisecond
	DefaultPruneInterval        = 5 * time.Second
	DefaultMetricsInterval      = 30 * time.Second
	DefaultStatsdEndpoint       = "localhost:8125"
)

var notificationPositions = map[string]bool{
	"top-right":     true,
	"top-left":      true,
	"top-center":    true,
	"bottom-right":  true,
	"bottom-left":   true,
	"bottom-center": true,
}

type MetronConfig struct {
	Address string `yaml:"address"`
	Port    string `yaml:"port"`
}

type OAuthConfig struct {
	TokenEndpoint string   `yaml:"token_endpoint"`
	ClientName    string   `yaml:"client_name"`
	ClientSecret  string   `yaml:"client_secret"`
	Scopes        []string `yaml:"scopes"`
}

type APIConfig struct {
	BaseURL           string        `yaml:"base_url"`
	Upstream          string        `yaml:"upstream"`
	RequestTimeout    time.Duration `yaml:"-"`
	SkipSSLValidation bool          `yaml:"skip_ssl_validation"`
	CACertPath        string        `yaml:"ca_cert_path"`
	MaxResponseSize   int64         `yaml:"-"`
	OAuth             *OAuthConfig  `yaml:"oauth"`
}

type NotificationsConfig struct {
	Enabled       bool          `yaml:"enabled"`
	Position      string        `yaml:"position"`
	Timeout       time.Duration `yaml:"-"`
	PruneInterval time.Duration `yaml:"-"`
}

type TLSConfig struct {
	CertPath string `yaml:"cert_path"`
	KeyPath  string `yaml:"key_path"`
}

type Config struct {
	Variant                   web.Variant         `yaml:"variant"`
	ListenPort                int                 `yaml:"listen_port"`
	MountPath                 string              `yaml:"mount_path"`
	AdminSocket               string              `yaml:"admin_socket"`
	DebugAddress              string              `yaml:"debug_address"`
	LogGuid                   string              `yaml:"log_guid"`
	MetronConfig              MetronConfig        `yaml:"metron_config"`
	StatsdEndpoint            string              `yaml:"statsd_endpoint"`
	StatsdClientFlushInterval time.Duration       `yaml:"-"`
	MetricsReportingInterval  time.Duration       `yaml:"-"`
	TLS                       *TLSConfig          `yaml:"tls"`
	API                       APIConfig           `yaml:"-"`
	Notifications             NotificationsConfig `yaml:"-"`
}

// rawConfig mirrors the file layout; durations and sizes arrive as strings.
type rawConfig struct {
	Config `yaml:",inline"`

	StatsdClientFlushInterval string `yaml:"statsd_client_flush_interval"`
	MetricsReportingInterval  string `yaml:"metrics_reporting_interval"`

	API struct {
		APIConfig       `yaml:",inline"`
		RequestTimeout  string `yaml:"request_timeout"`
		MaxResponseSize string `yaml:"max_response_size"`
	} `yaml:"api"`

	Notifications struct {
		NotificationsConfig `yaml:",inline"`
		Timeout             string `yaml:"timeout"`
		PruneInterval       string `yaml:"prune_interval"`
	} `yaml:"notifications"`
}

func NewConfigFromFile(configFile string) (Config, error) {
	c, err := os.ReadFile(configFile)
	if err != nil {
		return Config{}, err
	}

	return NewConfigFromBytes(c)
}

func NewConfigFromBytes(bytes []byte) (Config, error) {
	raw := rawConfig{}
	err := yaml.Unmarshal(bytes, &raw)
	if err != nil {
		return Config{}, err
	}

	config := raw.Config
	config.API = raw.API.APIConfig
	config.Notifications = raw.Notifications.NotificationsConfig

	config.StatsdClientFlushInterval, err = parseDuration("statsd_client_flush_interval", raw.StatsdClientFlushInterval, 300*time.Millisecond)
	if err != nil {
		return Config{}, err
	}
	config.MetricsReportingInterval, err = parseDuration("metrics_reporting_interval", raw.MetricsReportingInterval, DefaultMetricsInterval)
	if err != nil {
		return Config{}, err
	}
	config.API.RequestTimeout, err = parseDuration("api.request_timeout", raw.API.RequestTimeout, DefaultRequestTimeout)
	if err != nil {
		return Config{}, err
	}
	config.Notifications.Timeout, err = parseDuration("notifications.timeout", raw.Notifications.Timeout, DefaultNotificationTimeout)
	if err != nil {
		return Config{}, err
	}
	config.Notifications.PruneInterval, err = parseDuration("notifications.prune_interval", raw.Notifications.PruneInterval, DefaultPruneInterval)
	if err != nil {
		return Config{}, err
	}

	maxResponseSize := raw.API.MaxResponseSize
	if maxResponseSize == "" {
		maxResponseSize = DefaultMaxResponseSize
	}
	config.API.MaxResponseSize, err = units.RAMInBytes(maxResponseSize)
	if err != nil {
		return Config{}, fmt.Errorf("invalid api.max_response_size: %w", err)
	}

	config.applyDefaults()

	err = config.validate()
	if err != nil {
		return Config{}, err
	}

	return config, nil
}

func parseDuration(key, value string, defaultValue time.Duration) (time.Duration, error) {
	if value == "" {
		return defaultValue, nil
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be greater than 0", key)
	}
	return d, nil
}

func (cfg *Config) applyDefaults() {
	if cfg.Variant == "" {
		cfg.Variant = web.CustomersVariant
	}
	if cfg.ListenPort == 0 {
		cfg.ListenPort = DefaultListenPort
	}
	if cfg.MountPath == "" {
		cfg.MountPath = DefaultMountPath
	}
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = DefaultBaseURL
	}
	if cfg.StatsdEndpoint == "" {
		cfg.StatsdEndpoint = DefaultStatsdEndpoint
	}
	if cfg.Notifications.Position == "" {
		cfg.Notifications.Position = DefaultNotificationPosition
	}
}

func (cfg *Config) validate() error {
	if _, err := web.TableFor(cfg.Variant); err != nil {
		return err
	}

	if cfg.ListenPort < 1 || cfg.ListenPort > 65535 {
		return fmt.Errorf("Invalid listen_port %d", cfg.ListenPort)
	}

	if !strings.HasPrefix(cfg.MountPath, "/") {
		return errors.New("mount_path must start with /")
	}

	base, err := url.Parse(cfg.API.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid api.base_url: %w", err)
	}
	if !base.IsAbs() {
		if !strings.HasPrefix(cfg.API.BaseURL, "/") {
			return errors.New("api.base_url must be an absolute URL or start with /")
		}
		if cfg.API.Upstream == "" {
			return errors.New("api.upstream is required when api.base_url is relative")
		}
		upstream, err := url.Parse(cfg.API.Upstream)
		if err != nil || !upstream.IsAbs() {
			return errors.New("api.upstream must be an absolute URL")
		}
		if MountOverlapsAPI(cfg.MountPath, cfg.API.BaseURL) {
			return fmt.Errorf("mount_path %q overlaps api.base_url %q", cfg.MountPath, cfg.API.BaseURL)
		}
	}

	if cfg.API.OAuth != nil {
		if cfg.API.OAuth.TokenEndpoint == "" {
			return errors.New("No token_endpoint specified for api.oauth")
		}
		if cfg.API.OAuth.ClientName == "" {
			return errors.New("No client_name specified for api.oauth")
		}
	}

	if cfg.Notifications.Enabled && !notificationPositions[cfg.Notifications.Position] {
		return fmt.Errorf("Unknown notifications.position %q", cfg.Notifications.Position)
	}

	if cfg.TLS != nil && (cfg.TLS.CertPath == "" || cfg.TLS.KeyPath == "") {
		return errors.New("tls requires both cert_path and key_path")
	}

	return nil
}

// MountOverlapsAPI reports whether a console mounted at mountPath would sit on
// or below the proxied API base path. A root mount never overlaps a non-root
// base.
func MountOverlapsAPI(mountPath, apiBase string) bool {
	mount := strings.TrimRight(mountPath, "/")
	base := strings.TrimRight(apiBase, "/")
	return mount == base || strings.HasPrefix(mount, base+"/")
}

// RelativeBaseURL reports whether API calls are routed through the console's
// own /api proxy.
func (cfg Config) RelativeBaseURL() bool {
	return strings.HasPrefix(cfg.API.BaseURL, "/")
}
