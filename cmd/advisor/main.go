package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"k8s.io/klog/v2"

	"github.com/abcu-edu/advising-assistant/pkg/adapters/csvfile"
	"github.com/abcu-edu/advising-assistant/pkg/adapters/postgres"
	"github.com/abcu-edu/advising-assistant/pkg/application"
	"github.com/abcu-edu/advising-assistant/pkg/config"
	"github.com/abcu-edu/advising-assistant/pkg/domain"
	"github.com/abcu-edu/advising-assistant/pkg/menu"
	"github.com/abcu-edu/advising-assistant/pkg/ports"
	"github.com/abcu-edu/advising-assistant/pkg/utils"
)

func main() {
	var (
		configPath = flag.String("config", "", "Path to advisor.yml (optional)")
		sourceKind = flag.String("source", "", "Course source (csv or postgres); overrides config")
		filePath   = flag.String("file", "", "Course CSV file path; overrides config")
		dbURL      = flag.String("db-url", "", "Postgres connection URL; overrides config")
	)
	klog.InitFlags(nil)
	flag.Parse()
	defer klog.Flush()

	logger := utils.NewKlogLogger()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to load config: %v", err))
		os.Exit(1)
	}
	if *sourceKind != "" {
		cfg.Source = *sourceKind
	}
	if *filePath != "" {
		cfg.CSV.Path = *filePath
	}
	if *dbURL != "" {
		cfg.Postgres.URL = *dbURL
	}
	if err := cfg.Validate(); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}

	ctx := context.Background()

	var source ports.RowSource
	switch cfg.Source {
	case config.SourcePostgres:
		pg, err := postgres.New(ctx, postgres.Config{URL: cfg.Postgres.URL})
		if err != nil {
			logger.Error(fmt.Sprintf("Failed to initialize database source: %v", err))
			os.Exit(1)
		}
		defer pg.Close()
		source = pg
	default:
		source = csvfile.New(csvfile.Config{Path: cfg.CSV.Path})
	}

	catalog := domain.NewCatalog(logger)
	cmdHandler := application.NewCommandHandler(catalog, logger)
	queryHandler := application.NewQueryHandler(catalog, logger)

	session := menu.NewSession(os.Stdin, os.Stdout, source, cmdHandler, queryHandler)
	if err := session.Run(ctx); err != nil {
		logger.Error(fmt.Sprintf("Session ended with error: %v", err))
		os.Exit(1)
	}
}
