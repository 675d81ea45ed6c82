// Command spectrumconvert finds Ocean Insight UV-VIS ASCII exports in a
// directory and converts each to CSV and/or XLSX in the reports directory.
//
// Usage:
//
//	spectrumconvert [-dir data] [-format csv|xlsx|both] [-workers 4]
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"uvviscli/internal/config"
	"uvviscli/internal/dataprocessing"
	"uvviscli/internal/exporter"
	"uvviscli/internal/files"
	"uvviscli/internal/infrastructure"
)

func main() {
	dir := flag.String("dir", "", "directory containing .txt spectrum exports (defaults to the configured data dir)")
	format := flag.String("format", "", "output format: csv | xlsx | both (defaults to the configured format)")
	workers := flag.Int("workers", 0, "number of files converted concurrently (defaults to the configured count)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogger()
	logger = logger.With(slog.String("run_id", uuid.NewString()))

	paths, err := config.NewPaths("", cfg.Paths)
	if err != nil {
		logger.Error("failed to resolve paths", "error", err)
		os.Exit(1)
	}
	if err := paths.EnsureDirectories(); err != nil {
		logger.Error("failed to create required directories", "error", err)
		os.Exit(1)
	}

	if *dir == "" {
		*dir = paths.DataDir
	}
	if *format == "" {
		*format = cfg.Export.Format
	}
	if *workers <= 0 {
		*workers = cfg.Export.Workers
	}

	discovery := files.NewDiscovery(paths.BaseDir)
	found, err := discovery.FindSpectrumFiles(*dir)
	if err != nil {
		logger.Error("file discovery failed", "error", err)
		os.Exit(1)
	}
	if len(found) == 0 {
		logger.Info("no spectrum files found", slog.String("dir", *dir))
		return
	}
	logger.Info("converting spectrum files",
		slog.Int("count", len(found)),
		slog.String("format", *format),
		slog.Int("workers", *workers))

	csvWriter := exporter.NewCSVWriter(paths, cfg.Export.BOMPrefix)
	xlsxWriter := exporter.NewXLSXWriter(paths)

	var g errgroup.Group
	g.SetLimit(*workers)
	for _, file := range found {
		file := file
		g.Go(func() error {
			return convertOne(logger, file, *format, csvWriter, xlsxWriter)
		})
	}
	if err := g.Wait(); err != nil {
		logger.Error("conversion failed", "error", err)
		fmt.Fprintf(os.Stderr, "spectrumconvert: %v\n", err)
		os.Exit(1)
	}
	logger.Info("conversion complete", slog.Int("files", len(found)))
}

// convertOne parses a single export and writes the requested outputs. Each
// file gets its own Spectrum, so concurrent conversions never share state.
func convertOne(logger *slog.Logger, file files.FileInfo, format string, csvWriter *exporter.CSVWriter, xlsxWriter *exporter.XLSXWriter) error {
	spectrum, err := dataprocessing.Load(file.Path)
	if err != nil {
		return fmt.Errorf("parse %s: %w", file.Name, err)
	}

	base := strings.TrimSuffix(file.Name, filepath.Ext(file.Name))
	if format == "csv" || format == "both" {
		if err := csvWriter.WriteTable(base+".csv", spectrum.Data()); err != nil {
			return fmt.Errorf("export %s: %w", file.Name, err)
		}
	}
	if format == "xlsx" || format == "both" {
		if err := xlsxWriter.WriteSpectrum(base+".xlsx", spectrum.Metadata(), spectrum.Data()); err != nil {
			return fmt.Errorf("export %s: %w", file.Name, err)
		}
	}

	logger.Info("converted spectrum",
		slog.String("file", file.Name),
		slog.Int("data_rows", spectrum.Data().Len()),
		slog.Int("metadata_entries", spectrum.Metadata().Len()))
	return nil
}
