// Package jsonmap provides a string-keyed map that keeps insertion order
// when encoded to and decoded from JSON.
package jsonmap

import (
	"bytes"
	"encoding/json"
	"fmt"
	"iter"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Map is an insertion-ordered map from string keys to values of type V.
// The zero value is ready to use.
type Map[V any] struct {
	om *orderedmap.OrderedMap[string, V]
}

// New returns an empty Map.
func New[V any]() *Map[V] {
	return &Map[V]{om: orderedmap.New[string, V]()}
}

func (m *Map[V]) init() {
	if m.om == nil {
		m.om = orderedmap.New[string, V]()
	}
}

// Set binds key to value.
// Setting an existing key replaces its value and keeps its position.
func (m *Map[V]) Set(key string, value V) {
	m.init()
	m.om.Set(key, value)
}

// Get returns the value bound to key.
func (m *Map[V]) Get(key string) (V, bool) {
	if m.om == nil {
		var zero V
		return zero, false
	}
	return m.om.Get(key)
}

// Len returns the number of keys.
func (m *Map[V]) Len() int {
	return m.om.Len()
}

// Keys returns the keys in insertion order.
func (m *Map[V]) Keys() []string {
	keys := make([]string, 0, m.Len())
	for k := range m.All() {
		keys = append(keys, k)
	}
	return keys
}

// All iterates over key/value pairs in insertion order.
func (m *Map[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for p := m.om.Oldest(); p != nil; p = p.Next() {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

// MarshalJSON implements [json.Marshaler].
//
// The pairs are encoded here rather than by the ordered map, whose encoder
// escapes <, > and & in keys and values.
func (m *Map[V]) MarshalJSON() ([]byte, error) {
	buf := new(bytes.Buffer)
	buf.WriteByte('{')
	first := true
	for k, v := range m.All() {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		if err := encode(buf, k); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := encode(buf, v); err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// encode writes v without HTML escaping and without the trailing newline
// that json.Encoder appends.
func encode(buf *bytes.Buffer, v any) error {
	je := json.NewEncoder(buf)
	je.SetEscapeHTML(false)
	if err := je.Encode(v); err != nil {
		return err
	}
	buf.Truncate(buf.Len() - 1)
	return nil
}

// UnmarshalJSON implements [json.Unmarshaler].
// Keys are appended in the order they appear in data.
func (m *Map[V]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	m.init()
	if err := m.om.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("jsonmap: %w", err)
	}
	return nil
}
