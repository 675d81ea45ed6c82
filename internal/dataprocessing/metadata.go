package dataprocessing

import (
	"strconv"
	"strings"
	"time"

	"uvviscli/pkg/contracts/domain"
)

// Header keys with special handling.
const (
	keyDescription = "Description"
	keyXAxisMode   = "XAxis mode"
	keyDate        = "Date"

	// Derived entries, computed from the data block rather than read from
	// a header line. Their source line index is -1.
	keyLowestWavelength  = "lowest-observed-wavelength"
	keyHighestWavelength = "highest-observed-wavelength"
	keyAcquisitionDate   = "acquisition-date"
)

// oceanDateLayout matches the acquisition timestamp Ocean Insight software
// writes, e.g. "Thu Feb 27 15:05:24 GMT 2020".
const oceanDateLayout = "Mon Jan 2 15:04:05 MST 2006"

// extractMetadata derives the typed metadata mapping from the raw header
// lines. The first line of the file is free text and stored under
// "Description"; later lines are interpreted as "key: value" or
// "key=value" pairs where they match that shape, and skipped otherwise.
func extractMetadata(header []domain.HeaderLine) *domain.Metadata {
	metadata := domain.NewMetadata()

	for i, h := range header {
		if i == 0 {
			if strings.TrimSpace(h.Raw) != "" {
				metadata.Set(keyDescription, domain.TextValue(strings.TrimSpace(h.Raw), h.Index))
			}
			continue
		}
		key, rawValue, ok := splitKeyValue(h.Raw)
		if !ok {
			continue
		}
		metadata.Set(key, coerceValue(rawValue, h.Index))
	}

	if v, ok := metadata.Get(keyDate); ok && v.Kind == domain.KindTime {
		metadata.Set(keyAcquisitionDate, domain.TextValue(v.Time.Format(time.RFC3339), v.Line))
	}

	return metadata
}

// splitKeyValue recognizes the "key: value" and "key=value" header shapes.
// Whichever separator occurs first in the line wins, so timestamps in
// values keep their colons. Lines without a separator, or with an empty
// key, are not metadata.
func splitKeyValue(line string) (key, value string, ok bool) {
	colon := strings.Index(line, ":")
	equals := strings.Index(line, "=")

	sep := colon
	if sep < 0 || (equals >= 0 && equals < sep) {
		sep = equals
	}
	if sep < 0 {
		return "", "", false
	}

	key = strings.TrimSpace(line[:sep])
	if key == "" {
		return "", "", false
	}
	return key, strings.TrimSpace(line[sep+1:]), true
}

// coerceValue maps a raw header value onto the closed value variant using
// a fixed trial order: integer, float, boolean, acquisition timestamp,
// then plain text. The first parse that succeeds decides the kind.
func coerceValue(raw string, line int) domain.MetadataValue {
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return domain.IntValue(i, line)
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return domain.FloatValue(f, line)
	}
	switch strings.ToLower(raw) {
	case "true":
		return domain.BoolValue(true, line)
	case "false":
		return domain.BoolValue(false, line)
	}
	if t, err := time.Parse(oceanDateLayout, raw); err == nil {
		return domain.TimeValue(t, line)
	}
	return domain.TextValue(raw, line)
}

// deriveWavelengthBounds records the first and last abscissa values of the
// data block as metadata, matching what the vendor files themselves never
// state outright.
func deriveWavelengthBounds(metadata *domain.Metadata, rows []domain.SpectralRow) {
	if len(rows) == 0 {
		return
	}
	metadata.Set(keyLowestWavelength, domain.FloatValue(rows[0].Values[0], -1))
	metadata.Set(keyHighestWavelength, domain.FloatValue(rows[len(rows)-1].Values[0], -1))
}
