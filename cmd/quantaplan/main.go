package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dshills/quantaplan/internal/catalog"
	"github.com/dshills/quantaplan/internal/config"
	"github.com/dshills/quantaplan/internal/log"
	"github.com/dshills/quantaplan/internal/shell"
)

var (
	version = "0.1.0"
	commit  = "unknown"
)

func main() {
	var (
		configFile  = flag.String("config", "", "Path to configuration file (yaml, json or toml)")
		showVersion = flag.Bool("version", false, "Show version information")
		logLevel    = flag.String("log-level", "", "Log level (debug, info, warn, error)")
		execute     = flag.String("e", "", "Execute one statement and exit")
	)

	flag.Parse()

	if *showVersion {
		fmt.Printf("quantaplan v%s (commit: %s)\n", version, commit)
		os.Exit(0)
	}

	// Load configuration
	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Override config with command-line flags
	cfg.LoadFromFlags(*logLevel)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := log.Configure(cfg.Log)

	opts, err := cfg.StorageOptions()
	if err != nil {
		logger.Fatal("Invalid storage configuration", log.Err(err))
	}

	logger.Info("Starting quantaplan",
		"version", version,
		"commit", commit,
		"config", *configFile,
		"compression", opts.Compression.String())

	schema := catalog.NewSchema(opts)
	sh := shell.New(schema, cfg.Shell, os.Stdout, logger)

	if *execute != "" {
		if err := sh.Exec(*execute); err != nil {
			sh.Report(err)
			os.Exit(1)
		}
		return
	}

	if err := sh.Run(); err != nil {
		logger.Fatal("Shell failed", log.Err(err))
	}
}
