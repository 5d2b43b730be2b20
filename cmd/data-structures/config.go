package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/Robin-3/data-structures/internal/demo"
	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	Demos      []string
	List       bool
	LogLevel   string
	LogFormat  string
	LogFile    string
	LogMaxSize int
}

func parseFlags(fs *flag.FlagSet, args []string) (Config, error) {
	demos := fs.String("demos", "", "Comma separated demos to run (default: all)")
	list := fs.Bool("list", false, "List available demos and exit")
	logLevel := fs.String("log-level", "info", "Log level: debug, info, warn, error")
	logFormat := fs.String("log-format", "console", "Log format: console, json")
	logFile := fs.String("log-file", "", "Also write logs to this file, rotated by size")
	logMaxSize := fs.Int("log-max-size", 10, "Maximum log file size in megabytes before rotation")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Config{
		List:       *list,
		LogLevel:   *logLevel,
		LogFormat:  *logFormat,
		LogFile:    *logFile,
		LogMaxSize: *logMaxSize,
	}
	for _, name := range strings.Split(*demos, ",") {
		if name = strings.TrimSpace(name); name != "" {
			cfg.Demos = append(cfg.Demos, name)
		}
	}
	return cfg, cfg.Validate()
}

// Validate reports every problem at once.
func (c Config) Validate() error {
	var err error

	var level zapcore.Level
	if levelErr := level.UnmarshalText([]byte(c.LogLevel)); levelErr != nil {
		err = multierr.Append(err, fmt.Errorf("invalid -log-level %q", c.LogLevel))
	}

	switch c.LogFormat {
	case "console", "json":
	default:
		err = multierr.Append(err, fmt.Errorf("invalid -log-format %q: want console or json", c.LogFormat))
	}

	if c.LogFile != "" && c.LogMaxSize <= 0 {
		err = multierr.Append(err, fmt.Errorf("invalid -log-max-size %d: must be positive", c.LogMaxSize))
	}

	if _, selectErr := demo.Select(c.Demos...); selectErr != nil {
		err = multierr.Append(err, selectErr)
	}

	return err
}
