// cmd/composer/main.go
package main

import (
	"errors"
	"flag"
	"fmt"
	stlog "log" // Use standard log for FATAL errors before logger is ready
	"os"

	"github.com/bethropolis/composer/internal/app"
	"github.com/bethropolis/composer/internal/config"
	"github.com/bethropolis/composer/internal/logger"
)

var version = "dev"

func main() {
	// --- Argument & Flag Parsing ---
	flags := config.NewFlags(flag.CommandLine)
	args, err := flags.Parse(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}
	if *flags.Version {
		fmt.Printf("%s %s\n", config.AppName, version)
		return
	}
	filePath := ""
	if len(args) > 0 {
		filePath = args[0]
	}

	// --- Configuration ---
	cfg, err := config.LoadConfig(*flags.ConfigFilePath, flags)
	if err != nil {
		stlog.Printf("Warning: %v (using defaults)", err)
	}
	if cfg.Logger.LogFilePath == "" {
		// The terminal belongs to the TUI, so logs go to a file by default.
		cfg.Logger.LogFilePath = config.DefaultLogFileName
	}

	// --- Logger Initialization ---
	logger.DebugFilter(*flags.DebugLog)
	if err := logger.InitWithConfig(cfg.Logger); err != nil {
		stlog.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Close()

	logger.Infof("Starting %s %s", config.AppName, version)
	logger.Debugf("Log level set to: %s", cfg.Logger.LogLevel)
	if filePath != "" {
		logger.Debugf("File path specified: %s", filePath)
	} else {
		logger.Debugf("No file specified, starting empty.")
	}

	// --- Create and Run App ---
	composer, err := app.NewApp(filePath, cfg)
	if err != nil {
		logger.Errorf("Error initializing application: %v", err)
		os.Exit(1)
	}

	if err := composer.Run(); err != nil && !errors.Is(err, app.ErrQuit) {
		logger.Errorf("Application exited with error: %v", err)
		os.Exit(1)
	}

	logger.Infof("%s finished.", config.AppName)
}
