// cmd/inventoryctl/main.go
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/inventorypro/insights/internal/analysis"
	"github.com/inventorypro/insights/internal/config"
	"github.com/inventorypro/insights/internal/report"
	"github.com/inventorypro/insights/internal/repository"
	"github.com/inventorypro/insights/internal/storage"
	"github.com/inventorypro/insights/internal/store"
	"github.com/inventorypro/insights/pkg/logger"
)

func main() {
	app := &cli.App{
		Name:  "inventoryctl",
		Usage: "operational tooling for the inventory insights service",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Value: "info",
				Usage: "zerolog level (debug, info, warn, error)",
			},
		},
		Before: func(c *cli.Context) error {
			logger.SetLevel(c.String("log-level"))
			if config.Load().Log.Format == "json" {
				logger.UseJSON()
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:   "seed",
				Usage:  "write a deterministic demo dataset into the configured store",
				Action: runSeed,
			},
			{
				Name:  "export",
				Usage: "render a report into the export directory",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "type",
						Value: string(report.TypeFullInventory),
						Usage: "low-stock, full-inventory, sold-items or consolidated-inventory",
					},
					&cli.StringFlag{
						Name:  "format",
						Value: "",
						Usage: "pdf or xlsx; empty renders both",
					},
					&cli.BoolFlag{
						Name:  "archive",
						Usage: "mirror the rendered files to the S3-compatible bucket",
					},
				},
				Action: runExport,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Log.Fatal().Err(err).Msg("command failed")
	}
}

func openRepo(cfg *config.Config) (*repository.Inventory, error) {
	kv, err := store.Open(cfg.Store)
	if err != nil {
		return nil, err
	}
	return repository.NewInventory(kv), nil
}

func runSeed(c *cli.Context) error {
	cfg := config.Load()
	repo, err := openRepo(cfg)
	if err != nil {
		return err
	}
	ctx := c.Context

	items, categories, sold := demoDataset()
	if err := repo.SaveItems(ctx, items); err != nil {
		return err
	}
	if err := repo.SaveCategories(ctx, categories); err != nil {
		return err
	}
	if err := repo.SaveSoldItems(ctx, sold); err != nil {
		return err
	}

	logger.Log.Info().
		Int("items", len(items)).
		Int("categories", len(categories)).
		Int("sold_items", len(sold)).
		Str("backend", cfg.Store.Backend).
		Msg("demo dataset written")
	return nil
}

// staticHealth feeds a one-shot health result into the exporter so the
// consolidated report can be rendered outside the running server.
type staticHealth struct {
	result *analysis.HealthReportResult
}

func (s staticHealth) HealthResult() *analysis.HealthReportResult { return s.result }

// consolidatedHealth resolves the health section for a consolidated export.
// An empty inventory yields a neutral result without contacting the analysis
// service; there is nothing to assess and no request worth paying for.
func consolidatedHealth(ctx context.Context, repo *repository.Inventory, cfg config.AnalysisConfig) (*analysis.HealthReportResult, error) {
	items, err := repo.Items(ctx)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return &analysis.HealthReportResult{}, nil
	}
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("consolidated export needs ANALYSIS_BASE_URL configured")
	}
	analyzer := analysis.NewHTTPAnalyzer(cfg)
	result, err := analyzer.AnalyzeInventoryHealth(ctx, analysis.BuildInputs(items))
	if err != nil {
		return nil, fmt.Errorf("health analysis: %w", err)
	}
	return result, nil
}

func runExport(c *cli.Context) error {
	cfg := config.Load()
	repo, err := openRepo(cfg)
	if err != nil {
		return err
	}
	ctx := c.Context

	reportType, err := report.ParseType(c.String("type"))
	if err != nil {
		return err
	}

	health := staticHealth{}
	if reportType == report.TypeConsolidated {
		result, err := consolidatedHealth(ctx, repo, cfg.Analysis)
		if err != nil {
			return err
		}
		health.result = result
	}

	exporter := report.NewExporter(repo, health, cfg.Export)
	if c.Bool("archive") {
		archive, err := storage.NewMinioClient(cfg.Archive)
		if err != nil {
			return err
		}
		exporter = exporter.WithArchive(archive)
	}

	var docs []*report.Document
	switch c.String("format") {
	case "":
		pdfDoc, xlsxDoc, err := exporter.ExportBoth(ctx, reportType)
		if err != nil {
			return err
		}
		docs = append(docs, pdfDoc, xlsxDoc)
	default:
		format, err := report.ParseFormat(c.String("format"))
		if err != nil {
			return err
		}
		doc, err := exporter.Export(ctx, reportType, format)
		if err != nil {
			return err
		}
		docs = append(docs, doc)
	}

	for _, doc := range docs {
		path, err := report.WriteFile(cfg.Export.OutputDir, doc)
		if err != nil {
			return err
		}
		logger.Log.Info().Str("path", path).Int("bytes", len(doc.Data)).Msg("report written")
	}
	return nil
}
