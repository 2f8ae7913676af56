package headers

import (
	"bytes"
	"encoding/json"
	"iter"
	"slices"
)

// Entry is a single name/value pair.
type Entry struct {
	Name  string
	Value string
}

// Map is an insertion-ordered string mapping. The zero value is ready to use.
// A Map is not safe for concurrent mutation; request handlers build one and
// only read it afterwards.
type Map struct {
	entries []Entry
	index   map[string]int
}

// NewMap returns an empty Map with room for n entries.
func NewMap(n int) *Map {
	return &Map{
		entries: make([]Entry, 0, n),
		index:   make(map[string]int, n),
	}
}

// Set stores value under name. An existing entry keeps its position.
func (m *Map) Set(name, value string) {
	if m.index == nil {
		m.index = make(map[string]int)
	}
	if i, ok := m.index[name]; ok {
		m.entries[i].Value = value
		return
	}
	m.index[name] = len(m.entries)
	m.entries = append(m.entries, Entry{Name: name, Value: value})
}

// Append stores value under name at the end of the map, moving an existing
// entry if there is one.
func (m *Map) Append(name, value string) {
	m.Delete(name)
	m.Set(name, value)
}

// Get returns the value stored under name.
func (m *Map) Get(name string) (string, bool) {
	if m == nil {
		return "", false
	}
	i, ok := m.index[name]
	if !ok {
		return "", false
	}
	return m.entries[i].Value, true
}

// Has reports whether name is present.
func (m *Map) Has(name string) bool {
	_, ok := m.Get(name)
	return ok
}

// Delete removes name from the map.
func (m *Map) Delete(name string) {
	i, ok := m.index[name]
	if !ok {
		return
	}
	m.entries = slices.Delete(m.entries, i, i+1)
	delete(m.index, name)
	for j := i; j < len(m.entries); j++ {
		m.index[m.entries[j].Name] = j
	}
}

// Len returns the number of entries.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// Keys returns entry names in order.
func (m *Map) Keys() []string {
	keys := make([]string, 0, m.Len())
	for _, e := range m.Entries() {
		keys = append(keys, e.Name)
	}
	return keys
}

// Entries returns a copy of the entries in order. Templates range over it.
func (m *Map) Entries() []Entry {
	if m == nil {
		return nil
	}
	return slices.Clone(m.entries)
}

// All iterates over name/value pairs in order.
func (m *Map) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if m == nil {
			return
		}
		for _, e := range m.entries {
			if !yield(e.Name, e.Value) {
				return
			}
		}
	}
}

// MarshalJSON encodes the map as a JSON object in insertion order. HTML
// characters are not escaped.
func (m *Map) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	buf.WriteByte('{')
	for i, e := range m.Entries() {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := encodeString(enc, &buf, e.Name); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := encodeString(enc, &buf, e.Value); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// encodeString writes s as a JSON string without the encoder's trailing newline.
func encodeString(enc *json.Encoder, buf *bytes.Buffer, s string) error {
	if err := enc.Encode(s); err != nil {
		return err
	}
	buf.Truncate(buf.Len() - 1)
	return nil
}
