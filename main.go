package main

import (
	"flag"
	"log"

	"github.com/candinya/translate-layer/app"
	"github.com/candinya/translate-layer/types"
)

var configPath string

func init() {
	flag.StringVar(&configPath, "config", "config.yml", "path to config file")
}

func main() {
	flag.Parse()

	// Read config
	cfg, err := types.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Start application
	err = app.Start(cfg)
	if err != nil {
		log.Printf("app stop: %v", err)
	}
}
