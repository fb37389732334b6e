// SPDX-License-Identifier: MIT
//
// File: visitor.go
// Role: Record-backed Visitor implementations (writer and reader) and number coercion.

package persist

import (
	"fmt"
	"math"
)

// writer copies object fields into a record.
type writer struct {
	fields map[string]any
}

func newWriter() *writer { return &writer{fields: make(map[string]any)} }

func (w *writer) Loading() bool { return false }
func (w *writer) Err() error    { return nil }

func (w *writer) Int(key string, v *int64)     { w.fields[key] = *v }
func (w *writer) Float(key string, v *float64) { w.fields[key] = *v }
func (w *writer) String(key string, v *string) { w.fields[key] = *v }

// reader copies record fields into an object.
type reader struct {
	tag    string
	fields map[string]any
	err    error
}

func newReader(tag string, fields map[string]any) *reader {
	return &reader{tag: tag, fields: fields}
}

func (r *reader) Loading() bool { return true }
func (r *reader) Err() error    { return r.err }

func (r *reader) Int(key string, v *int64) {
	raw, ok := r.lookup(key)
	if !ok {
		return
	}
	n, ok := asInt(raw)
	if !ok {
		r.fail(ErrFieldType, key, raw)
		return
	}
	*v = n
}

func (r *reader) Float(key string, v *float64) {
	raw, ok := r.lookup(key)
	if !ok {
		return
	}
	f, ok := asFloat(raw)
	if !ok {
		r.fail(ErrFieldType, key, raw)
		return
	}
	*v = f
}

func (r *reader) String(key string, v *string) {
	raw, ok := r.lookup(key)
	if !ok {
		return
	}
	s, ok := raw.(string)
	if !ok {
		r.fail(ErrFieldType, key, raw)
		return
	}
	*v = s
}

func (r *reader) lookup(key string) (any, bool) {
	if r.err != nil {
		return nil, false
	}
	raw, ok := r.fields[key]
	if !ok {
		r.err = fmt.Errorf("%w: %s.%s", ErrMissingField, r.tag, key)
		return nil, false
	}

	return raw, true
}

func (r *reader) fail(sentinel error, key string, raw any) {
	r.err = fmt.Errorf("%w: %s.%s is %T", sentinel, r.tag, key, raw)
}

// asInt accepts every integer kind the YAML decoder may produce, plus
// integral floats.
func asInt(raw any) (int64, bool) {
	switch x := raw.(type) {
	case int:
		return int64(x), true
	case int64:
		return x, true
	case uint64:
		if x > math.MaxInt64 {
			return 0, false
		}
		return int64(x), true
	case float64:
		if x != math.Trunc(x) || math.IsInf(x, 0) {
			return 0, false
		}
		return int64(x), true
	}

	return 0, false
}

// asFloat accepts floats and integers; YAML writes 2.0 as 2.
func asFloat(raw any) (float64, bool) {
	switch x := raw.(type) {
	case float64:
		return x, true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint64:
		return float64(x), true
	}

	return 0, false
}
