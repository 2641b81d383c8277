package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/sgunwal/capreports/internal/analysis/gemini"
	"github.com/sgunwal/capreports/internal/common"
	"github.com/sgunwal/capreports/internal/export"
	"github.com/sgunwal/capreports/internal/extract"
	"github.com/sgunwal/capreports/internal/ingest"
	"github.com/sgunwal/capreports/internal/pipeline"
	"github.com/sgunwal/capreports/internal/prompts"
)

func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		dir = flag.String("dir", "", "directory containing report PDFs (required)")
		out = flag.String("out", "analysis_output_excel", "output subdirectory name")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}

	pdfs, err := ingest.ListPDFs(*dir)
	if err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}
	if len(pdfs) == 0 {
		printError("No PDF files found in %s\n", *dir)
		os.Exit(1)
	}

	outDir, err := ingest.EnsureOutputDir(*dir, *out)
	if err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("starting emissions extraction", "dir", *dir, "files", len(pdfs), "output", outDir)

	client, err := gemini.NewClient(ctx, gemini.Config{
		APIKey:          cfg.Gemini.APIKey,
		Model:           cfg.Gemini.Model,
		Temperature:     cfg.Gemini.Temperature,
		Timeout:         cfg.Gemini.Timeout,
		PollInterval:    cfg.Gemini.PollInterval,
		MaxPollAttempts: cfg.Gemini.MaxPollAttempts,
	}, logger)
	if err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}

	runner := pipeline.NewRunner(client, logger)
	schema := extract.BuildEmissionsSchema()

	// All structured records across the batch feed one combined workbook.
	var combined []map[string]any
	processed := 0
	fallbacks := 0
	failures := 0

	for _, path := range pdfs {
		logger.Info("processing file", "path", path, "pages", ingest.PageCount(path, logger))
		res := runner.ProcessDocument(ctx, path, prompts.ScopeEmissions)
		stem := ingest.Stem(path)

		switch {
		case res.Err != nil:
			logger.Error("document failed", "path", path, "error", res.Err)
			failures++
		case res.Structured:
			if err := extract.ValidateRecords(schema, res.Records); err != nil {
				logger.Warn("records failed schema validation", "path", path, "error", err)
			}
			cols, rows := extract.RecordsToTable(res.Records, extract.EmissionsColumns)
			xlsxPath := filepath.Join(outDir, stem+"_emissions.xlsx")
			if err := export.WriteXLSX(xlsxPath, "Emissions", cols, rows, logger); err != nil {
				logger.Error("xlsx write failed", "path", xlsxPath, "error", err)
				failures++
				continue
			}
			combined = append(combined, res.Records...)
			processed++
		default:
			rawPath := filepath.Join(outDir, stem+"_RAW.txt")
			if err := export.WriteRaw(rawPath, res.RawText); err != nil {
				logger.Error("raw fallback write failed", "path", rawPath, "error", err)
			}
			fallbacks++
		}
	}

	if len(combined) > 0 {
		cols, rows := extract.RecordsToTable(combined, extract.EmissionsColumns)
		summaryPath := filepath.Join(outDir, "emissions_summary.xlsx")
		if err := export.WriteXLSX(summaryPath, "Emissions", cols, rows, logger); err != nil {
			logger.Error("summary write failed", "path", summaryPath, "error", err)
		} else {
			logger.Info("combined summary written", "path", summaryPath, "records", len(combined))
		}
	}

	logger.Info("batch complete",
		"files", len(pdfs), "processed", processed, "fallbacks", fallbacks, "failures", failures)

	fmt.Printf("Emissions extraction complete!\n")
	fmt.Printf("- Files scanned: %d\n", len(pdfs))
	fmt.Printf("- Structured outputs: %d\n", processed)
	fmt.Printf("- Raw fallbacks: %d\n", fallbacks)
	fmt.Printf("- Failures: %d\n", failures)
	fmt.Printf("- Output: %s\n", outDir)
}
