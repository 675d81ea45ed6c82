package dataprocessing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uvviscli/pkg/contracts/domain"
)

func TestSplitKeyValue(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		key     string
		value   string
		matches bool
	}{
		{"colon", "Spectrometer: USB2000+", "Spectrometer", "USB2000+", true},
		{"equals", "Boxcar width=0", "Boxcar width", "0", true},
		{"colon in value", "Date: Thu Feb 27 15:05:24 GMT 2020", "Date", "Thu Feb 27 15:05:24 GMT 2020", true},
		{"first separator wins", "a=b: c", "a", "b: c", true},
		{"no separator", "just some text", "", "", false},
		{"empty key", ": value", "", "", false},
		{"blank", "", "", "", false},
		{"empty value", "Comment:", "Comment", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, value, ok := splitKeyValue(tt.line)
			assert.Equal(t, tt.matches, ok)
			assert.Equal(t, tt.key, key)
			assert.Equal(t, tt.value, value)
		})
	}
}

func TestCoerceValue(t *testing.T) {
	acq, err := time.Parse(oceanDateLayout, "Thu Feb 27 15:05:24 GMT 2020")
	require.NoError(t, err)

	tests := []struct {
		name string
		raw  string
		want domain.MetadataValue
	}{
		{"integer", "20000", domain.IntValue(20000, 7)},
		{"negative integer", "-3", domain.IntValue(-3, 7)},
		{"float", "3.14", domain.FloatValue(3.14, 7)},
		{"scientific float", "1.000000E-1", domain.FloatValue(0.1, 7)},
		{"bool true", "true", domain.BoolValue(true, 7)},
		{"bool mixed case", "False", domain.BoolValue(false, 7)},
		{"timestamp", "Thu Feb 27 15:05:24 GMT 2020", domain.TimeValue(acq, 7)},
		{"text", "USB2000+", domain.TextValue("USB2000+", 7)},
		{"empty", "", domain.TextValue("", 7)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := coerceValue(tt.raw, 7)
			assert.True(t, tt.want.Equal(got), "want %+v, got %+v", tt.want, got)
		})
	}
}

func TestExtractMetadataSkipsNonMatchingLines(t *testing.T) {
	header := []domain.HeaderLine{
		{Index: 0, Raw: "Free text description"},
		{Index: 1, Raw: ""},
		{Index: 2, Raw: "no separator on this line"},
		{Index: 3, Raw: "Scans to average: 1"},
	}

	metadata := extractMetadata(header)

	assert.Equal(t, 2, metadata.Len(), "only Description and the key/value line produce entries")
	_, ok := metadata.Get("no separator on this line")
	assert.False(t, ok)
	scans, ok := metadata.Get("Scans to average")
	require.True(t, ok)
	assert.True(t, domain.IntValue(1, 3).Equal(scans))
}

func TestDeriveWavelengthBounds(t *testing.T) {
	metadata := domain.NewMetadata()
	rows := []domain.SpectralRow{
		{Values: []float64{400.0, 1.0}, Line: 3},
		{Values: []float64{400.5, 2.0}, Line: 4},
		{Values: []float64{401.0, 3.0}, Line: 5},
	}

	deriveWavelengthBounds(metadata, rows)

	low, ok := metadata.Get("lowest-observed-wavelength")
	require.True(t, ok)
	assert.Equal(t, 400.0, low.Float)
	high, ok := metadata.Get("highest-observed-wavelength")
	require.True(t, ok)
	assert.Equal(t, 401.0, high.Float)
}

func TestDeriveWavelengthBoundsEmptyData(t *testing.T) {
	metadata := domain.NewMetadata()
	deriveWavelengthBounds(metadata, nil)
	assert.Equal(t, 0, metadata.Len())
}

func TestColumnNamesFromXAxisMode(t *testing.T) {
	tests := []struct {
		name  string
		mode  string
		set   bool
		want0 string
	}{
		{"wavelengths mode", "Wavelengths", true, "wavelength"},
		{"other mode", "Pixels", true, "Pixels"},
		{"absent", "", false, "wavelength"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metadata := domain.NewMetadata()
			if tt.set {
				metadata.Set(keyXAxisMode, domain.TextValue(tt.mode, 2))
			}
			names := columnNames(metadata, 2)
			assert.Equal(t, []string{tt.want0, "intensity"}, names)
		})
	}
}
