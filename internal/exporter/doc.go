// Package exporter writes parsed spectra to formats downstream tools can
// consume.
//
// Two writers are provided:
//
// CSVWriter: spectral data table as CSV, with an optional UTF-8 BOM so
// Excel recognizes the encoding.
//
// XLSXWriter: a two-sheet Excel workbook, one sheet for the typed metadata
// and one for the spectral data.
//
// Relative output paths are resolved against the configured reports
// directory; absolute paths are used as given.
package exporter
