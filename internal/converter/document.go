package converter

import (
	"encoding/json"
	"time"
)

// Document is a loosely typed backend document. Upstream collections are
// not consistent about field spelling (some documents carry snake_case
// keys, some camelCase), so all entity converters read through Document
// and accept both spellings here, in one place.
type Document map[string]json.RawMessage

func ParseDocument(raw json.RawMessage) (Document, error) {
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// field returns the raw value for the first present key
func (d Document) field(keys ...string) (json.RawMessage, bool) {
	for _, key := range keys {
		if v, ok := d[key]; ok && string(v) != "null" {
			return v, true
		}
	}
	return nil, false
}

// String decodes the first present key as a string, empty if absent or
// not a string
func (d Document) String(keys ...string) string {
	raw, ok := d.field(keys...)
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// Bool decodes the first present key as a bool, false if absent
func (d Document) Bool(keys ...string) bool {
	raw, ok := d.field(keys...)
	if !ok {
		return false
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err != nil {
		return false
	}
	return b
}

// Strings decodes the first present key as a string slice, nil if absent
func (d Document) Strings(keys ...string) []string {
	raw, ok := d.field(keys...)
	if !ok {
		return nil
	}
	var values []string
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil
	}
	return values
}

// Time decodes the first present key as an RFC 3339 timestamp, zero time
// if absent or malformed
func (d Document) Time(keys ...string) time.Time {
	s := d.String(keys...)
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// TimePtr is like Time but returns nil for absent or malformed values
func (d Document) TimePtr(keys ...string) *time.Time {
	t := d.Time(keys...)
	if t.IsZero() {
		return nil
	}
	return &t
}
