package main

import (
	"fmt"
	"os"

	"github.com/beka-birhanu/vinom-mapgen/config"
	logger "github.com/beka-birhanu/vinom-mapgen/infrastruture/logger"
	"github.com/beka-birhanu/vinom-mapgen/service"
	"github.com/beka-birhanu/vinom-mapgen/service/i"
)

// Global variables for dependencies
var (
	cfg        config.Config
	appLogger  i.Logger
	mapService *service.MapService
)

func initConfig() {
	var err error
	cfg, err = config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "[APP] [FATAL] Loading configuration: %v\n", err)
		os.Exit(1)
	}
}

func initLogger() {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[APP] [FATAL] %v\n", err)
		os.Exit(1)
	}

	// Logs go to stderr so stdout only carries the map.
	appLogger, err = logger.New("MAPGEN", config.ColorCyan, os.Stderr, logger.WithLevel(level))
	if err != nil {
		fmt.Fprintf(os.Stderr, "[APP] [FATAL] Creating logger: %v\n", err)
		os.Exit(1)
	}

	if !cfg.EnvFileLoaded {
		appLogger.Debug(".env file not found or could not be loaded")
	}
}

func initMapService() {
	var err error
	mapService, err = service.NewMapService(os.Stdout, appLogger, nil)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating map service: %v", err))
		os.Exit(1)
	}
}

func main() {
	initConfig()
	initLogger()
	initMapService()

	if err := mapService.Run(cfg); err != nil {
		os.Exit(1)
	}
}
