package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"paymerge/internal/config"
	"paymerge/internal/dataprocessing"
	"paymerge/internal/exporter"
	"paymerge/internal/infrastructure"
)

func main() {
	payrollPath := flag.String("payroll", "", "payroll export file (.xls, .xlsx, .csv)")
	commissionPath := flag.String("commission", "", "commission export file (.xls, .xlsx, .csv)")
	location := flag.String("location", "", "location label stamped onto the payload (overrides config)")
	payloadOut := flag.String("payload", "", "payload JSON output path (stdout when empty)")
	recordsOut := flag.String("records", "", "canonical records CSV output path (skipped when empty)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	logger := infrastructure.NewLogger(cfg.Logging, nil)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, logger, cfg, *payrollPath, *commissionPath, *location, *payloadOut, *recordsOut); err != nil {
		logger.Error("Ingest failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, cfg *config.Config, payrollPath, commissionPath, location, payloadOut, recordsOut string) error {
	payrollData, payrollName, err := readUpload(payrollPath)
	if err != nil {
		return fmt.Errorf("read payroll file: %w", err)
	}
	commissionData, commissionName, err := readUpload(commissionPath)
	if err != nil {
		return fmt.Errorf("read commission file: %w", err)
	}

	if location == "" {
		location = cfg.Parsing.Location
	}

	processor := dataprocessing.NewProcessor(logger, dataprocessing.ProcessorConfig{
		MaxBreakdownRows: cfg.Parsing.MaxBreakdownRows,
		ExtraAliases:     cfg.Parsing.ExtraAliases,
	})

	result, err := processor.Ingest(ctx, payrollData, payrollName, commissionData, commissionName, location)
	if err != nil {
		return fmt.Errorf("ingest: %w", err)
	}

	if err := writePayload(payloadOut, result.Payload); err != nil {
		return fmt.Errorf("write payload: %w", err)
	}

	if recordsOut != "" {
		if err := writeRecordsCSV(recordsOut, result); err != nil {
			return fmt.Errorf("write records: %w", err)
		}
		logger.Info("Records CSV written",
			slog.String("path", recordsOut),
			slog.Int("record_count", len(result.Records)))
	}

	return nil
}

// readUpload loads a whole export into memory. An empty path is a valid
// "no upload" input and yields an empty buffer, matching how a missing
// export flows through the pipeline.
func readUpload(path string) ([]byte, string, error) {
	if path == "" {
		return nil, "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}
	return data, filepath.Base(path), nil
}

func writePayload(path string, payload any) error {
	out, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	out = append(out, '\n')

	if path == "" {
		_, err = os.Stdout.Write(out)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, out, 0o644)
}

func writeRecordsCSV(path string, result *dataprocessing.IngestResult) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := exporter.WriteRecords(f, result.Records, exporter.WriteOptions{BOMPrefix: true}); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
