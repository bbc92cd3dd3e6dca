package main

import (
	"fmt"
	"os"

	"github.com/HerbHall/specmatch/internal/catalog"
	"github.com/HerbHall/specmatch/internal/config"
	"github.com/HerbHall/specmatch/internal/version"
	pkgcatalog "github.com/HerbHall/specmatch/pkg/catalog"
	"go.uber.org/zap"
)

func main() {
	args := os.Args[1:]
	cmd := "serve"
	if len(args) > 0 && args[0] != "" && args[0][0] != '-' {
		cmd, args = args[0], args[1:]
	}

	switch cmd {
	case "serve":
		runServe(args)
	case "query":
		os.Exit(runQuery(args, os.Stdout))
	case "version":
		fmt.Println(version.Info())
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\nusage: specmatch [serve|query|version] [flags]\n", cmd)
		os.Exit(2)
	}
}

// app holds what every subcommand needs after startup.
type app struct {
	settings config.Settings
	logger   *zap.Logger
	engine   *catalog.Engine
}

// bootstrap loads configuration, builds the logger and the catalogue. An
// invalid catalogue is fatal.
func bootstrap(configPath string) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	settings, err := config.Decode(cfg)
	if err != nil {
		return nil, err
	}
	logger, err := config.NewLogger(settings.Log)
	if err != nil {
		return nil, err
	}

	cat, err := pkgcatalog.Load(settings.Catalog.Path)
	if err != nil {
		_ = logger.Sync()
		return nil, fmt.Errorf("load catalogue: %w", err)
	}
	logger.Debug("catalogue loaded",
		zap.Int("products", cat.Len()),
		zap.Strings("brands", cat.Brands()),
		zap.String("source", catalogSource(settings.Catalog.Path)),
	)

	return &app{
		settings: settings,
		logger:   logger,
		engine:   catalog.NewEngine(cat, logger),
	}, nil
}

func catalogSource(path string) string {
	if path == "" {
		return "embedded"
	}
	return path
}
