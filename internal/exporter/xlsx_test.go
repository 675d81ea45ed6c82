package exporter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"uvviscli/pkg/contracts/domain"
)

func sampleMetadata() *domain.Metadata {
	m := domain.NewMetadata()
	m.Set("Spectrometer", domain.TextValue("USB2E2041", 4))
	m.Set("Scans to average", domain.IntValue(1, 7))
	return m
}

func TestWriteSpectrum(t *testing.T) {
	paths := setupPaths(t)
	writer := NewXLSXWriter(paths)

	require.NoError(t, writer.WriteSpectrum("sample.xlsx", sampleMetadata(), sampleTable(t)))

	f, err := excelize.OpenFile(paths.GetReportPath("sample.xlsx"))
	require.NoError(t, err)
	defer f.Close()

	assert.NotContains(t, f.GetSheetList(), "Sheet1")

	metaRows, err := f.GetRows(MetadataSheet)
	require.NoError(t, err)
	require.Len(t, metaRows, 3)
	assert.Equal(t, []string{"Key", "Value", "Kind"}, metaRows[0])
	assert.Equal(t, []string{"Spectrometer", "USB2E2041", "text"}, metaRows[1])
	assert.Equal(t, []string{"Scans to average", "1", "int"}, metaRows[2])

	dataRows, err := f.GetRows(DataSheet)
	require.NoError(t, err)
	require.Len(t, dataRows, 3)
	assert.Equal(t, []string{"wavelength", "intensity"}, dataRows[0])
	assert.Equal(t, "400", dataRows[1][0])
	assert.Equal(t, "123.4", dataRows[1][1])
}

func TestWriteSpectrumEmptyTable(t *testing.T) {
	paths := setupPaths(t)
	writer := NewXLSXWriter(paths)

	table, err := domain.NewDataTable(nil, nil)
	require.NoError(t, err)

	require.NoError(t, writer.WriteSpectrum("empty.xlsx", domain.NewMetadata(), table))

	f, err := excelize.OpenFile(paths.GetReportPath("empty.xlsx"))
	require.NoError(t, err)
	defer f.Close()

	assert.Contains(t, f.GetSheetList(), MetadataSheet)
	assert.Contains(t, f.GetSheetList(), DataSheet)
}
