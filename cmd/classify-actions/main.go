package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/sgunwal/capreports/internal/analysis/gemini"
	"github.com/sgunwal/capreports/internal/common"
	"github.com/sgunwal/capreports/internal/export"
	"github.com/sgunwal/capreports/internal/extract"
	"github.com/sgunwal/capreports/internal/prompts"
)

func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		in     = flag.String("in", "", "input XLSX with extracted actions (required)")
		out    = flag.String("out", "", "output XLSX path (required)")
		column = flag.String("column", "Action Description", "column holding the action text")
	)
	flag.Parse()

	if *in == "" || *out == "" {
		printError("Error: --in and --out are required\n")
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

	header, rows, err := export.ReadSheet(*in)
	if err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}
	actionCol := -1
	for i, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), *column) {
			actionCol = i
			break
		}
	}
	if actionCol < 0 {
		printError("Error: no %q column found in %s\n", *column, *in)
		os.Exit(1)
	}
	logger.Info("classifying actions", "input", *in, "rows", len(rows))

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

	outHeader := append(append([]string{}, header...), "GHG Protocol Category", "Justification")
	outRows := make([][]any, 0, len(rows))
	classified := 0
	failures := 0

	for idx, row := range rows {
		action := strings.TrimSpace(row[actionCol])

		category := "Other"
		justification := "No action provided."
		if action != "" {
			resp, err := client.CompleteText(ctx, prompts.ClassifyAction(action), "")
			if err != nil {
				logger.Error("classification failed", "row", idx+1, "error", err)
				justification = "Error in classification."
				failures++
			} else if resp != "" {
				// First line is the category, the rest is the justification.
				lines := strings.Split(extract.StripCodeFence(resp), "\n")
				category = strings.TrimSpace(lines[0])
				if len(lines) > 1 {
					justification = strings.TrimSpace(strings.Join(lines[1:], " "))
				} else {
					justification = "No justification provided."
				}
				classified++
				logger.Info("action classified", "row", idx+1, "category", category)
			}
			// Fixed pause between rows to stay under provider rate limits.
			time.Sleep(cfg.Batch.RequestPause)
		}

		outRow := make([]any, 0, len(outHeader))
		for _, v := range row {
			outRow = append(outRow, v)
		}
		outRow = append(outRow, category, justification)
		outRows = append(outRows, outRow)
	}

	if err := export.WriteXLSX(*out, "Classified Actions", outHeader, outRows, logger); err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}

	logger.Info("classification complete", "rows", len(rows), "classified", classified, "failures", failures)

	fmt.Printf("Classification complete!\n")
	fmt.Printf("- Rows: %d\n", len(rows))
	fmt.Printf("- Classified: %d\n", classified)
	fmt.Printf("- Failures: %d\n", failures)
	fmt.Printf("- Output: %s\n", *out)
}
