// Package report implements the configurable projection layer used by the
// sysprobe facade and its capability layers. Entities render themselves into
// an ordered, null-suppressing Document; a Config of dotted boolean keys
// decides which field groups are included.
package report

import (
	"bytes"
	"encoding/json"
	"reflect"
)

// Field is a single named value inside a Document.
type Field struct {
	Name  string
	Value any
}

// Document is an ordered set of named fields. Field order is insertion
// order, which is preserved when marshaling to JSON. Absent values are never
// stored: adding nil, an empty string, an empty slice/map or an empty nested
// Document is a no-op, so a Document only ever contains data that is actually
// present.
//
// Documents are built fresh per projection call and should not be mutated
// after being handed to a caller.
type Document struct {
	fields []Field
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{}
}

// Add appends a field to the document, unless the value counts as absent
// (see absent()). Adding a name that already exists replaces the previous
// value in place, keeping its original position. Returns the document for
// chaining.
func (d *Document) Add(name string, value any) *Document {
	if absent(value) {
		return d
	}
	for i := range d.fields {
		if d.fields[i].Name == name {
			d.fields[i].Value = value
			return d
		}
	}
	d.fields = append(d.fields, Field{Name: name, Value: value})
	return d
}

// AddDocument attaches a nested document under name. Empty or nil child
// documents are suppressed like any other absent value.
func (d *Document) AddDocument(name string, child *Document) *Document {
	return d.Add(name, child)
}

// Len returns the number of fields present.
func (d *Document) Len() int {
	if d == nil {
		return 0
	}
	return len(d.fields)
}

// Get returns the value stored under name and whether it is present.
func (d *Document) Get(name string) (any, bool) {
	if d == nil {
		return nil, false
	}
	for _, f := range d.fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// Has reports whether a field with the given name is present.
func (d *Document) Has(name string) bool {
	_, ok := d.Get(name)
	return ok
}

// Fields returns the fields in insertion order. The returned slice is a copy;
// mutating it does not affect the document.
func (d *Document) Fields() []Field {
	if d == nil {
		return nil
	}
	out := make([]Field, len(d.fields))
	copy(out, d.fields)
	return out
}

// MarshalJSON renders the document as a JSON object, fields in insertion
// order. Nested *Document values marshal recursively.
func (d *Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range d.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		val, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// absent reports whether a value should be suppressed instead of stored.
// nil (typed or untyped), empty strings, empty slices/maps and empty nested
// documents are absent. Zero numbers and false booleans are present values;
// 0% CPU load is still data.
func absent(v any) bool {
	if v == nil {
		return true
	}
	switch x := v.(type) {
	case string:
		return x == ""
	case *Document:
		return x == nil || x.Len() == 0
	case Document:
		return x.Len() == 0
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() == 0
	}
	return false
}
