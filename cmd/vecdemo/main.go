package main

import (
	"flag"
	"fmt"
	"os"

	"physvec/internal/config"
	"physvec/internal/demo"
	"physvec/internal/observability/log"
)

var (
	configPath  = flag.String("config", "", "Path to a YAML config file")
	logLevel    = flag.String("log-level", "", "Log level override (debug, info, warn, error)")
	logEncoding = flag.String("log-encoding", "", "Log encoding override (json, console)")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "vecdemo: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	// Flags win over the config file
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if *logEncoding != "" {
		cfg.Log.Encoding = *logEncoding
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger, err := log.New(cfg.LoggerOptions())
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("starting vector demo",
		log.String("config", *configPath),
		log.Int("extra_vectors", len(cfg.Demo.Extra)),
	)

	if _, err := demo.New(os.Stdout, logger).Run(cfg.Demo); err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	return nil
}
