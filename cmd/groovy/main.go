// cmd/groovy/main.go
package main

import (
	stlog "log" // For fatal errors before the logger is ready
	"os"

	"github.com/mutablevalue/Code-Editor/internal/app"
	"github.com/mutablevalue/Code-Editor/internal/config"
	"github.com/mutablevalue/Code-Editor/internal/logger"
)

func main() {
	// --- Flag & Config Parsing ---
	flags := &config.Flags{}
	args := flags.ParseFlags()

	fileArg := ""
	if len(args) > 0 {
		fileArg = args[0]
	}

	cfg, err := config.Load(*flags.ConfigFilePath, flags)
	if err != nil {
		stlog.Printf("Warning: config load problem, continuing with defaults: %v", err)
	}

	// --- Logger Initialization ---
	logWriter := os.Stderr
	logFilePath := cfg.Logger.File
	if logFilePath == "" {
		logFilePath = config.DefaultLogFileName
	}
	if logFilePath != "-" {
		logFile, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			stlog.Fatalf("Failed to open log file '%s': %v", logFilePath, err)
		}
		defer logFile.Close()
		logWriter = logFile
	}
	logger.Init(logger.ParseLevel(cfg.Logger.Level), logWriter)

	logger.Infof("Starting %s...", config.AppName)
	logger.Debugf("Log level: %s, log file: %s", cfg.Logger.Level, logFilePath)
	if fileArg != "" {
		logger.Debugf("File argument: %s", fileArg)
	} else if cfg.Editor.DefaultFile != "" {
		logger.Debugf("Loading default file: %s", cfg.Editor.DefaultFile)
	} else {
		logger.Debugf("No file specified, starting with a new document")
	}

	// --- Create and Run App ---
	editorApp, err := app.New(cfg, fileArg)
	if err != nil {
		logger.Errorf("Error initializing application: %v", err)
		os.Exit(1)
	}

	if err := editorApp.Run(); err != nil {
		logger.Errorf("Application exited with error: %v", err)
		os.Exit(1)
	}

	logger.Infof("%s finished.", config.AppName)
}
