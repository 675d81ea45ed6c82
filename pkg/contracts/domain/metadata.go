package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Metadata is an ordered mapping of header-derived keys to typed values.
// Lookup is by key; iteration with Keys follows header order in the file.
type Metadata struct {
	keys   []string
	values map[string]MetadataValue
}

// NewMetadata returns an empty metadata mapping.
func NewMetadata() *Metadata {
	return &Metadata{values: make(map[string]MetadataValue)}
}

// Set inserts or replaces the value for key. Keys keep their first
// insertion position.
func (m *Metadata) Set(key string, value MetadataValue) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value for key and whether it is present.
func (m *Metadata) Get(key string) (MetadataValue, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (m *Metadata) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Len returns the number of entries.
func (m *Metadata) Len() int {
	return len(m.keys)
}

// Clone returns a deep copy of the mapping.
func (m *Metadata) Clone() *Metadata {
	c := NewMetadata()
	for _, k := range m.keys {
		c.Set(k, m.values[k])
	}
	return c
}

// Equal reports whether both mappings hold the same keys, in the same
// order, with equal values.
func (m *Metadata) Equal(o *Metadata) bool {
	if m.Len() != o.Len() {
		return false
	}
	for i, k := range m.keys {
		if o.keys[i] != k {
			return false
		}
		if !m.values[k].Equal(o.values[k]) {
			return false
		}
	}
	return true
}

// MarshalJSON serializes the mapping as a JSON object with keys in
// insertion order. Integers and floats become JSON numbers, booleans JSON
// booleans, timestamps RFC 3339 strings, text JSON strings.
func (m *Metadata) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, fmt.Errorf("marshal key %q: %w", k, err)
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(m.values[k].Interface())
		if err != nil {
			return nil, fmt.Errorf("marshal value for %q: %w", k, err)
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
