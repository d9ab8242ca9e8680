package main

import (
	"flag"
	"log"

	"code.doorsys.dev/console/config"
)

var configFile string

func main() {
	flag.StringVar(&configFile, "config", "", "Configuration File")
	flag.Parse()

	cfg, err := config.NewConfigFromFile(configFile)
	if err != nil {
		log.Fatal("failed-to-load-config: ", err)
	}
	log.Printf("config-loaded-successfully variant=%s base_url=%s", cfg.Variant, cfg.API.BaseURL)
}
