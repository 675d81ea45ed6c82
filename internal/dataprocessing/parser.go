package dataprocessing

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"uvviscli/internal/errors"
	"uvviscli/pkg/contracts/domain"
)

// Sentinel lines separating the header block from the spectral data block.
// Matched against the trimmed line content, byte for byte.
const (
	BeginSentinel = ">>>>>Begin Spectral Data<<<<<"
	EndSentinel   = ">>>>>End Spectral Data<<<<<"
)

// parseResult holds the three views of one fully parsed file. It is only
// assembled when the whole file parsed cleanly, so a Spectrum can adopt it
// wholesale.
type parseResult struct {
	header   []domain.HeaderLine
	metadata *domain.Metadata
	table    *domain.DataTable
}

// ParseFile reads one spectrum export file into a fresh Spectrum.
func ParseFile(path string) (*Spectrum, error) {
	return Load(path)
}

// parsePath opens and parses path. File-level failures are classified
// before any content is inspected.
func parsePath(path string) (*parseResult, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.FileNotFound(path, err)
		}
		return nil, errors.FileUnreadable(path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.FileUnreadable(path, err)
	}
	return parseBytes(data)
}

// parseBytes runs the two-phase line scan over the file contents:
// header lines until BeginSentinel, then numeric rows until EOF or
// EndSentinel.
func parseBytes(data []byte) (*parseResult, error) {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var (
		header   []domain.HeaderLine
		rows     []domain.SpectralRow
		width    int
		inData   bool
		fileLine int // one-based
	)

	for scanner.Scan() {
		fileLine++
		raw := scanner.Bytes()
		// Exports written on Windows carry CRLF endings.
		raw = bytes.TrimSuffix(raw, []byte{'\r'})
		if !utf8.Valid(raw) {
			return nil, errors.InvalidEncoding(fileLine)
		}
		line := string(raw)
		trimmed := strings.TrimSpace(line)

		if !inData {
			if trimmed == BeginSentinel {
				inData = true
				continue
			}
			header = append(header, domain.HeaderLine{Index: fileLine - 1, Raw: line})
			continue
		}

		if trimmed == EndSentinel {
			// Trailing content after the closing sentinel is ignored.
			break
		}
		if trimmed == "" {
			continue
		}

		values, err := parseRow(trimmed, fileLine)
		if err != nil {
			return nil, err
		}
		if width == 0 {
			if len(values) < 2 {
				return nil, errors.RaggedRow(fileLine, len(values), 2)
			}
			width = len(values)
		} else if len(values) != width {
			return nil, errors.RaggedRow(fileLine, len(values), width)
		}
		rows = append(rows, domain.SpectralRow{Values: values, Line: fileLine})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}
	if !inData {
		return nil, errors.SentinelMissing(BeginSentinel)
	}

	metadata := extractMetadata(header)
	deriveWavelengthBounds(metadata, rows)

	table, err := domain.NewDataTable(columnNames(metadata, width), rows)
	if err != nil {
		return nil, fmt.Errorf("assemble data table: %w", err)
	}

	return &parseResult{header: header, metadata: metadata, table: table}, nil
}

// parseRow splits one non-blank data line on whitespace and parses every
// token as a float64.
func parseRow(line string, fileLine int) ([]float64, error) {
	tokens := strings.Fields(line)
	values := make([]float64, len(tokens))
	for i, tok := range tokens {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, errors.BadNumber(fileLine, tok, err)
		}
		values[i] = v
	}
	return values, nil
}

// columnNames resolves positional column names for a table of the given
// width. Column 0 takes its label from the "XAxis mode" header when one is
// present; "Wavelengths" mode (the usual case) and absence both map to
// "wavelength". Column 1 is "intensity", further channels are numbered.
func columnNames(metadata *domain.Metadata, width int) []string {
	xLabel := "wavelength"
	if v, ok := metadata.Get(keyXAxisMode); ok && v.Kind == domain.KindText {
		mode := strings.TrimSpace(v.Text)
		if mode != "" && !strings.EqualFold(mode, "Wavelengths") {
			xLabel = mode
		}
	}

	names := make([]string, width)
	for i := range names {
		switch i {
		case 0:
			names[i] = xLabel
		case 1:
			names[i] = "intensity"
		default:
			names[i] = fmt.Sprintf("channel_%d", i)
		}
	}
	return names
}
