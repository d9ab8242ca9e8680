package main

import (
	"errors"
	"flag"
	"os"

	"code.cloudfoundry.org/debugserver"
	"code.cloudfoundry.org/lager/v3"
	"code.cloudfoundry.org/lager/v3/lagerflags"
	"code.doorsys.dev/console/admin"
	"code.doorsys.dev/console/app"
	"code.doorsys.dev/console/config"
	"github.com/cactus/go-statsd-client/v5/statsd"
	"github.com/cloudfoundry/dropsonde"
	"github.com/tedsuo/ifrit"
	"github.com/tedsuo/ifrit/grouper"
	"github.com/tedsuo/ifrit/sigmon"
)

const statsPrefix = "doorsys_console"

var configPath = flag.String("config", "", "Configuration for the doorsys console")

func main() {
	lagerflags.AddFlags(flag.CommandLine)
	flag.Parse()

	logger, reconfigurableSink := lagerflags.New("doorsys-console")

	if *configPath == "" {
		logger.Error("failed-check-flags", errors.New("No configuration file provided"))
		os.Exit(1)
	}

	cfg, err := config.NewConfigFromFile(*configPath)
	if err != nil {
		logger.Error("failed-load-config", err)
		os.Exit(1)
	}

	err = dropsonde.Initialize(cfg.MetronConfig.Address+":"+cfg.MetronConfig.Port, cfg.LogGuid)
	if err != nil {
		logger.Error("failed-initialize-dropsonde", err)
		os.Exit(1)
	}

	if cfg.DebugAddress != "" {
		_, err := debugserver.Run(cfg.DebugAddress, reconfigurableSink)
		if err != nil {
			logger.Error("failed-debug-server", err, lager.Data{"debug_address": cfg.DebugAddress})
		}
	}

	statsdClient, err := statsd.NewClientWithConfig(&statsd.ClientConfig{
		Address:       cfg.StatsdEndpoint,
		Prefix:        statsPrefix,
		UseBuffered:   true,
		FlushInterval: cfg.StatsdClientFlushInterval,
	})
	if err != nil {
		logger.Error("failed-to-create-statsd-client", err)
		os.Exit(1)
	}
	defer func() {
		err := statsdClient.Close()
		if err != nil {
			logger.Error("failed-to-close-statsd-client", err)
		}
	}()

	console, err := app.New(cfg, logger, app.WithStatsd(statsdClient))
	if err != nil {
		logger.Error("failed-to-create-console", err)
		os.Exit(1)
	}

	err = console.Mount(cfg.MountPath)
	if err != nil {
		logger.Error("failed-to-mount-console", err, lager.Data{"mount-path": cfg.MountPath})
		os.Exit(1)
	}

	consoleServer, err := console.Runner()
	if err != nil {
		logger.Error("failed-to-create-console-server", err)
		os.Exit(1)
	}

	members := grouper.Members{
		grouper.Member{Name: "console-server", Runner: consoleServer},
	}

	if cfg.AdminSocket != "" {
		adminServer, err := admin.NewServer(cfg.AdminSocket, console.Router(), console.Client(), logger.Session("admin-server"))
		if err != nil {
			logger.Error("failed-to-create-admin-server", err)
			os.Exit(1)
		}
		members = append(members, grouper.Member{Name: "admin-server", Runner: adminServer})
	}

	if console.Notices().Enabled() {
		members = append(members, grouper.Member{Name: "notice-pruner", Runner: console.Pruner()})
	}
	members = append(members, grouper.Member{Name: "metrics", Runner: console.Metrics()})

	group := grouper.NewOrdered(os.Interrupt, members)
	process := ifrit.Invoke(sigmon.New(group))

	// This is used by the testrunner to signal ready for tests.
	logger.Info("started", lager.Data{"port": cfg.ListenPort, "variant": cfg.Variant})

	errChan := process.Wait()
	err = <-errChan
	if err != nil {
		logger.Error("shutdown-error", err)
		os.Exit(1)
	}
	logger.Info("exited")
}
