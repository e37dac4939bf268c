package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Entry is a single key/value pair in document order.
type Entry struct {
	Key   string
	Value string
}

// Document is an insertion-ordered map of string keys to string values.
// The zero value is not usable; call NewDocument.
type Document struct {
	keys   []string
	values map[string]string
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{values: make(map[string]string)}
}

// Len returns the number of entries.
func (d *Document) Len() int { return len(d.keys) }

// Keys returns the keys in document order.
func (d *Document) Keys() []string {
	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}

// Has reports whether key is present.
func (d *Document) Has(key string) bool {
	_, ok := d.values[key]
	return ok
}

// Get returns the value for key and whether it was present.
func (d *Document) Get(key string) (string, bool) {
	v, ok := d.values[key]
	return v, ok
}

// Set drops any existing entry for key and appends the new one at the end.
func (d *Document) Set(key, value string) {
	d.Remove(key)
	d.keys = append(d.keys, key)
	d.values[key] = value
}

// Remove deletes key and reports whether it was present.
func (d *Document) Remove(key string) bool {
	if _, ok := d.values[key]; !ok {
		return false
	}
	delete(d.values, key)
	for i, k := range d.keys {
		if k == key {
			d.keys = append(d.keys[:i], d.keys[i+1:]...)
			break
		}
	}
	return true
}

// Entries returns every key/value pair in document order.
func (d *Document) Entries() []Entry {
	out := make([]Entry, 0, len(d.keys))
	for _, k := range d.keys {
		out = append(out, Entry{Key: k, Value: d.values[k]})
	}
	return out
}

// MarshalJSON encodes the document as a JSON object with keys in document order.
func (d *Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range d.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeString(&buf, k); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := writeString(&buf, d.values[k]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object into the document, replacing its
// contents. Non-string values keep their compact JSON text.
func (d *Document) UnmarshalJSON(data []byte) error {
	doc, err := decodeDocument(data)
	if err != nil {
		return err
	}
	*d = *doc
	return nil
}

func writeString(buf *bytes.Buffer, s string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	// Encode appends a newline.
	buf.Truncate(buf.Len() - 1)
	return nil
}

// decodeDocument parses data, distinguishing malformed JSON from JSON whose
// root is not an object.
func decodeDocument(data []byte) (*Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, malformed(err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, ErrNotAnObject
	}

	doc := NewDocument()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, malformed(err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: unexpected object key %v", ErrMalformed, tok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, malformed(err)
		}
		value, err := stringValue(raw)
		if err != nil {
			return nil, malformed(err)
		}
		if doc.Has(key) {
			doc.values[key] = value
			continue
		}
		doc.keys = append(doc.keys, key)
		doc.values[key] = value
	}
	if _, err := dec.Token(); err != nil {
		return nil, malformed(err)
	}
	// Only whitespace may follow the closing brace.
	if dec.More() {
		return nil, fmt.Errorf("%w: data after top-level object", ErrMalformed)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: data after top-level object", ErrMalformed)
	}
	return doc, nil
}

func malformed(err error) error {
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return fmt.Errorf("%w: %v", ErrMalformed, err)
}

// stringValue coerces a raw JSON value to the string stored in a document.
func stringValue(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", err
		}
		return s, nil
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return "", err
	}
	return buf.String(), nil
}
