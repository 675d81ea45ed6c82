package exporter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"uvviscli/internal/config"
	"uvviscli/pkg/contracts/domain"
)

// CSVWriter writes spectral data tables as CSV files.
type CSVWriter struct {
	paths *config.Paths
	bom   bool
}

// NewCSVWriter creates a CSV writer that resolves relative output paths
// against the configured reports directory. When bom is set, files start
// with a UTF-8 BOM so Excel opens them correctly.
func NewCSVWriter(paths *config.Paths, bom bool) *CSVWriter {
	return &CSVWriter{paths: paths, bom: bom}
}

// WriteTable writes one data table to filePath: a header row of column
// names followed by one record per spectral row.
func (w *CSVWriter) WriteTable(filePath string, table *domain.DataTable) error {
	fullPath := w.resolvePath(filePath)

	slog.Debug("writing CSV file",
		slog.String("path", fullPath),
		slog.Int("rows", table.Len()),
		slog.Int("columns", table.ColumnCount()))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	if w.bom {
		if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return fmt.Errorf("failed to write BOM: %w", err)
		}
	}

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(table.ColumnNames()); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, row := range table.Rows() {
		record := make([]string, len(row.Values))
		for j, v := range row.Values {
			record[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}
	return writer.Error()
}

// resolvePath anchors relative paths at the reports directory.
func (w *CSVWriter) resolvePath(filePath string) string {
	if filepath.IsAbs(filePath) || w.paths == nil {
		return filePath
	}
	return w.paths.GetReportPath(filePath)
}
