// Package dataprocessing reads Ocean Insight UV-VIS spectrum files saved in
// the "ASCII (with header data)" text format and turns them into structured
// spectra.
//
// # File format
//
// An export file is UTF-8 text in two sections. The header section is a run
// of free-form lines, most of them shaped like "key: value" (occasionally
// "key=value"), carrying instrument and acquisition settings. The sections
// are separated by a sentinel line:
//
//	>>>>>Begin Spectral Data<<<<<
//
// Everything after the sentinel is the data section: one spectral sample
// per line, two or more tab- or space-separated floating point columns
// (wavelength first, then intensity channels). An optional closing sentinel
//
//	>>>>>End Spectral Data<<<<<
//
// terminates the data section early; anything after it is ignored.
//
// # Usage
//
//	spec, err := dataprocessing.Load("sample.txt")
//	if err != nil {
//	    // errors.IsFile / IsEncoding / IsFormat tell the categories apart
//	}
//	wl, _ := spec.Data().ColumnByName("wavelength")
//	js, _ := spec.MetadataJSON()
//
// A Spectrum can be re-read any number of times; a failed re-read reports
// an error and leaves the previously loaded contents untouched.
//
// # Error handling
//
// All failures are *errors.ParseError values from uvviscli/internal/errors,
// carrying a category, a stable code and, for format and encoding failures,
// the one-based file line. Nothing here retries or logs; malformed input is
// deterministic, so every error is surfaced to the caller exactly once.
package dataprocessing
