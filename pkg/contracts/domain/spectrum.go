package domain

import (
	"time"
)

// HeaderLine is one raw line from the header block of an Ocean Insight
// "ASCII (with header data)" export, kept verbatim for provenance.
type HeaderLine struct {
	Index int    `json:"index" validate:"min=0"` // zero-based line index in the file
	Raw   string `json:"raw"`
}

// ValueKind identifies which variant a MetadataValue holds.
type ValueKind int

const (
	KindText ValueKind = iota
	KindInt
	KindFloat
	KindBool
	KindTime
)

// String returns the lower-case name of the kind.
func (k ValueKind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindTime:
		return "time"
	default:
		return "text"
	}
}

// MetadataValue is a typed scalar derived from a header line. Exactly one
// of the value fields is meaningful, selected by Kind. Line is the
// zero-based index of the header line the value came from.
type MetadataValue struct {
	Kind  ValueKind
	Int   int64
	Float float64
	Bool  bool
	Time  time.Time
	Text  string
	Line  int
}

// TextValue builds a text metadata value.
func TextValue(s string, line int) MetadataValue {
	return MetadataValue{Kind: KindText, Text: s, Line: line}
}

// IntValue builds an integer metadata value.
func IntValue(i int64, line int) MetadataValue {
	return MetadataValue{Kind: KindInt, Int: i, Line: line}
}

// FloatValue builds a floating-point metadata value.
func FloatValue(f float64, line int) MetadataValue {
	return MetadataValue{Kind: KindFloat, Float: f, Line: line}
}

// BoolValue builds a boolean metadata value.
func BoolValue(b bool, line int) MetadataValue {
	return MetadataValue{Kind: KindBool, Bool: b, Line: line}
}

// TimeValue builds a timestamp metadata value.
func TimeValue(t time.Time, line int) MetadataValue {
	return MetadataValue{Kind: KindTime, Time: t, Line: line}
}

// Interface returns the held value as its natural Go type. Timestamps come
// back as RFC 3339 strings so the result is always JSON-representable.
func (v MetadataValue) Interface() interface{} {
	switch v.Kind {
	case KindInt:
		return v.Int
	case KindFloat:
		return v.Float
	case KindBool:
		return v.Bool
	case KindTime:
		return v.Time.Format(time.RFC3339)
	default:
		return v.Text
	}
}

// Equal reports whether two values hold the same kind and content.
// The source line index is not compared.
func (v MetadataValue) Equal(o MetadataValue) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindInt:
		return v.Int == o.Int
	case KindFloat:
		return v.Float == o.Float
	case KindBool:
		return v.Bool == o.Bool
	case KindTime:
		return v.Time.Equal(o.Time)
	default:
		return v.Text == o.Text
	}
}

// SpectralRow is one record of the numeric data block. Values are aligned
// to the file's fixed column order: index 0 is the abscissa (typically
// wavelength in nm), index 1 the first intensity channel.
type SpectralRow struct {
	Values []float64 `json:"values" validate:"required,min=2"`
	Line   int       `json:"line"` // one-based file line the row came from
}
