// Command spectruminfo parses one Ocean Insight UV-VIS ASCII export and
// prints its metadata as JSON, or its raw header lines.
//
// Usage:
//
//	spectruminfo [-header] [-out file] spectrum.txt
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"uvviscli/internal/config"
	"uvviscli/internal/dataprocessing"
	"uvviscli/internal/errors"
	"uvviscli/internal/infrastructure"
)

func main() {
	out := flag.String("out", "", "write output to this file instead of stdout")
	header := flag.Bool("header", false, "print the raw header lines instead of metadata JSON")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: spectruminfo [-header] [-out file] <spectrum.txt>")
		os.Exit(2)
	}
	path := flag.Arg(0)

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("failed to load config, using defaults", "error", err)
		cfg = &config.Config{
			Logging: config.LoggingConfig{Level: "info", Output: "console"},
		}
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogger()
	logger = logger.With(slog.String("run_id", uuid.NewString()))

	logger.Info("parsing spectrum file", slog.String("path", path))

	spectrum, err := dataprocessing.Load(path)
	if err != nil {
		reportAndExit(logger, err)
	}

	var output string
	if *header {
		for _, h := range spectrum.Header() {
			output += h.Raw + "\n"
		}
	} else {
		js, err := spectrum.MetadataJSON()
		if err != nil {
			reportAndExit(logger, err)
		}
		output = js + "\n"
	}

	if *out != "" {
		if err := os.WriteFile(*out, []byte(output), 0644); err != nil {
			logger.Error("failed to write output file", "error", err)
			os.Exit(1)
		}
		logger.Info("wrote output",
			slog.String("file", *out),
			slog.Int("data_rows", spectrum.Data().Len()))
		return
	}
	fmt.Print(output)
}

// reportAndExit logs the failure with its category and exits non-zero.
func reportAndExit(logger *slog.Logger, err error) {
	category := "internal"
	switch {
	case errors.IsFile(err):
		category = string(errors.CategoryFile)
	case errors.IsEncoding(err):
		category = string(errors.CategoryEncoding)
	case errors.IsFormat(err):
		category = string(errors.CategoryFormat)
	case errors.IsSerialization(err):
		category = string(errors.CategorySerialization)
	}
	logger.Error("spectrum parse failed",
		slog.String("category", category),
		slog.Int("line", errors.LineOf(err)),
		"error", err)
	fmt.Fprintf(os.Stderr, "spectruminfo: %s error: %v\n", category, err)
	os.Exit(1)
}
