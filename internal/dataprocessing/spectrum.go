package dataprocessing

import (
	"encoding/json"

	"uvviscli/internal/errors"
	"uvviscli/pkg/contracts/domain"
)

// Spectrum is one UV-VIS spectrum loaded from an Ocean Insight ASCII
// export: the raw header lines, the typed metadata derived from them, and
// the numeric data table. A zero Spectrum from New is empty; Read fills
// all three views atomically.
//
// A Spectrum is not safe for concurrent mutation; confine it to one
// goroutine while Read is in flight. The accessors return copies or
// immutable views, so results remain valid across later reads.
type Spectrum struct {
	filename string
	header   []domain.HeaderLine
	metadata *domain.Metadata
	table    *domain.DataTable
}

// New returns an empty, unread Spectrum.
func New() *Spectrum {
	table, _ := domain.NewDataTable(nil, nil)
	return &Spectrum{
		metadata: domain.NewMetadata(),
		table:    table,
	}
}

// Load constructs a Spectrum and immediately reads path into it.
func Load(path string) (*Spectrum, error) {
	s := New()
	if err := s.Read(path); err != nil {
		return nil, err
	}
	return s, nil
}

// Read parses the file at path and replaces the Spectrum's contents with
// the result. The replacement is all-or-nothing: on any failure the error
// is returned and the previously loaded contents, including the filename,
// stay exactly as they were.
func (s *Spectrum) Read(path string) error {
	result, err := parsePath(path)
	if err != nil {
		return err
	}
	s.filename = path
	s.header = result.header
	s.metadata = result.metadata
	s.table = result.table
	return nil
}

// Filename returns the path of the last successful Read, or "" if none
// has succeeded yet.
func (s *Spectrum) Filename() string {
	return s.filename
}

// Header returns the raw header lines in file order.
func (s *Spectrum) Header() []domain.HeaderLine {
	out := make([]domain.HeaderLine, len(s.header))
	copy(out, s.header)
	return out
}

// Metadata returns the typed metadata mapping.
func (s *Spectrum) Metadata() *domain.Metadata {
	return s.metadata.Clone()
}

// Data returns the numeric data table.
func (s *Spectrum) Data() *domain.DataTable {
	return s.table
}

// MetadataJSON serializes the metadata mapping to an indented UTF-8 JSON
// object. Numbers serialize as JSON numbers, booleans as JSON booleans,
// timestamps as RFC 3339 strings.
func (s *Spectrum) MetadataJSON() (string, error) {
	b, err := json.MarshalIndent(s.metadata, "", "    ")
	if err != nil {
		return "", errors.Unrepresentable("metadata", err)
	}
	return string(b), nil
}
