package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/Robin-3/data-structures/internal/demo"
	"go.uber.org/zap"
)

func main() {
	cfg, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg, os.Stdout, logger); err != nil {
		logger.Error("Demo failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(cfg Config, out io.Writer, logger *zap.Logger) error {
	if cfg.List {
		for _, d := range demo.Registry {
			fmt.Fprintf(out, "%-20s %s\n", d.Name, d.Title)
		}
		return nil
	}

	selected, err := demo.Select(cfg.Demos...)
	if err != nil {
		return err
	}

	logger.Debug("Running demos", zap.Int("count", len(selected)))
	for _, d := range selected {
		logger.Debug("Starting demo", zap.String("demo", d.Name))
		if err := d.Run(out); err != nil {
			return fmt.Errorf("demo %s: %w", d.Name, err)
		}
	}
	logger.Info("Demos finished", zap.Int("count", len(selected)))
	return nil
}
