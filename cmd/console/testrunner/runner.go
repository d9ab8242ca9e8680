package testrunner

import (
	"os"
	"os/exec"
	"time"

	"code.doorsys.dev/console/config"
	ginkgomon "github.com/tedsuo/ifrit/ginkgomon_v2"
	"gopkg.in/yaml.v2"
)

type Args struct {
	ConfigPath string
}

func (args Args) ArgSlice() []string {
	return []string{
		"-config", args.ConfigPath,
		"-logLevel=debug",
	}
}

func (args Args) Port() int {
	cfg, err := config.NewConfigFromFile(args.ConfigPath)
	if err != nil {
		panic(err.Error())
	}

	return cfg.ListenPort
}

// Settings are the knobs the integration tests turn; everything else keeps
// its default.
type Settings struct {
	Variant       string
	ListenPort    int
	MountPath     string
	AdminSocket   string
	BaseURL       string
	Upstream      string
	Notifications bool
}

func NewArgs(settings Settings) (Args, error) {
	configPath, err := createConfig(settings)
	if err != nil {
		return Args{}, err
	}
	return Args{ConfigPath: configPath}, nil
}

func New(binPath string, args Args) *ginkgomon.Runner {
	cmd := exec.Command(binPath, args.ArgSlice()...)
	return ginkgomon.New(ginkgomon.Config{
		Name:              "doorsys-console",
		Command:           cmd,
		StartCheck:        "doorsys-console.started",
		StartCheckTimeout: 10 * time.Second,
	})
}

func createConfig(settings Settings) (string, error) {
	raw := map[string]interface{}{
		"variant":     settings.Variant,
		"listen_port": settings.ListenPort,
		"mount_path":  settings.MountPath,
		"log_guid":    "doorsys_console",
		"metron_config": map[string]string{
			"address": "127.0.0.1",
			"port":    "3457",
		},
		"statsd_client_flush_interval": "10ms",
		"metrics_reporting_interval":   "100ms",
		"api": map[string]string{
			"base_url": settings.BaseURL,
			"upstream": settings.Upstream,
		},
		"notifications": map[string]interface{}{
			"enabled":        settings.Notifications,
			"prune_interval": "100ms",
		},
	}
	if settings.AdminSocket != "" {
		raw["admin_socket"] = settings.AdminSocket
	}

	configBytes, err := yaml.Marshal(raw)
	if err != nil {
		return "", err
	}

	configFile, err := os.CreateTemp("", "doorsys-console-config")
	if err != nil {
		return "", err
	}
	defer configFile.Close()

	_, err = configFile.Write(configBytes)
	if err != nil {
		return "", err
	}
	return configFile.Name(), nil
}
