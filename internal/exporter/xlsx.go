package exporter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"uvviscli/internal/config"
	"uvviscli/pkg/contracts/domain"
)

// Workbook sheet names.
const (
	MetadataSheet = "Metadata"
	DataSheet     = "Spectral Data"
)

// XLSXWriter writes spectra as Excel workbooks with a metadata sheet and a
// spectral data sheet.
type XLSXWriter struct {
	paths *config.Paths
}

// NewXLSXWriter creates an XLSX writer that resolves relative output paths
// against the configured reports directory.
func NewXLSXWriter(paths *config.Paths) *XLSXWriter {
	return &XLSXWriter{paths: paths}
}

// WriteSpectrum writes the metadata mapping and data table of one spectrum
// to filePath as a two-sheet workbook.
func (w *XLSXWriter) WriteSpectrum(filePath string, metadata *domain.Metadata, table *domain.DataTable) error {
	fullPath := w.resolvePath(filePath)

	slog.Debug("writing XLSX file",
		slog.String("path", fullPath),
		slog.Int("metadata_entries", metadata.Len()),
		slog.Int("rows", table.Len()))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet(MetadataSheet); err != nil {
		return fmt.Errorf("failed to create metadata sheet: %w", err)
	}
	if err := writeMetadataSheet(f, metadata); err != nil {
		return err
	}

	if _, err := f.NewSheet(DataSheet); err != nil {
		return fmt.Errorf("failed to create data sheet: %w", err)
	}
	if err := writeDataSheet(f, table); err != nil {
		return err
	}

	f.DeleteSheet("Sheet1")

	if err := f.SaveAs(fullPath); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// writeMetadataSheet lays out the metadata as Key/Value/Kind columns.
func writeMetadataSheet(f *excelize.File, metadata *domain.Metadata) error {
	headers := []string{"Key", "Value", "Kind"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("failed to name header cell: %w", err)
		}
		if err := f.SetCellValue(MetadataSheet, cell, h); err != nil {
			return fmt.Errorf("failed to write header cell: %w", err)
		}
	}

	for row, key := range metadata.Keys() {
		value, _ := metadata.Get(key)
		cells := []interface{}{key, value.Interface(), value.Kind.String()}
		for col, v := range cells {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return fmt.Errorf("failed to name cell: %w", err)
			}
			if err := f.SetCellValue(MetadataSheet, cell, v); err != nil {
				return fmt.Errorf("failed to write metadata for %q: %w", key, err)
			}
		}
	}
	return nil
}

// writeDataSheet lays out the data table with column names on row 1.
func writeDataSheet(f *excelize.File, table *domain.DataTable) error {
	for i, name := range table.ColumnNames() {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("failed to name header cell: %w", err)
		}
		if err := f.SetCellValue(DataSheet, cell, name); err != nil {
			return fmt.Errorf("failed to write column name: %w", err)
		}
	}

	for i, row := range table.Rows() {
		for j, v := range row.Values {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return fmt.Errorf("failed to name cell: %w", err)
			}
			if err := f.SetCellValue(DataSheet, cell, v); err != nil {
				return fmt.Errorf("failed to write data cell: %w", err)
			}
		}
	}
	return nil
}

// resolvePath anchors relative paths at the reports directory.
func (w *XLSXWriter) resolvePath(filePath string) string {
	if filepath.IsAbs(filePath) || w.paths == nil {
		return filePath
	}
	return w.paths.GetReportPath(filePath)
}
