package jsondoc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Doc is an immutable view over a parsed JSON document.
//
// Accessors take a path of object keys from the document root. Absent paths
// and type mismatches yield the zero value; use Exists to distinguish a
// missing field from a zero one. Numbers are kept as json.Number internally
// so integer fields never round-trip through float64.
type Doc struct {
	root any
}

// Parse decodes raw JSON into a Doc.
// Returns an error if the text is not well-formed JSON.
func Parse(raw string) (*Doc, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(raw)))
	dec.UseNumber()

	var root any
	if err := dec.Decode(&root); err != nil {
		return nil, fmt.Errorf("parse json document: %w", err)
	}

	return &Doc{root: root}, nil
}

// Exists reports whether the path resolves to any value, including null.
func (d *Doc) Exists(path ...string) bool {
	_, ok := d.lookup(path)
	return ok
}

// String returns the string at path, coercing numbers and booleans to their
// literal text. Absent paths and nulls return "".
func (d *Doc) String(path ...string) string {
	v, ok := d.lookup(path)
	if !ok {
		return ""
	}
	switch val := v.(type) {
	case string:
		return val
	case json.Number:
		return val.String()
	case bool:
		return strconv.FormatBool(val)
	default:
		return ""
	}
}

// Int returns the integer at path. Numeric strings are coerced; fractional
// numbers, absent paths, and non-numeric values return 0.
func (d *Doc) Int(path ...string) int64 {
	v, ok := d.lookup(path)
	if !ok {
		return 0
	}
	switch val := v.(type) {
	case json.Number:
		n, err := val.Int64()
		if err != nil {
			return 0
		}
		return n
	case string:
		n, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

// Bool returns the boolean at path. The strings "true" and "false" are
// coerced; everything else, including absence, returns false.
func (d *Doc) Bool(path ...string) bool {
	v, ok := d.lookup(path)
	if !ok {
		return false
	}
	switch val := v.(type) {
	case bool:
		return val
	case string:
		b, err := strconv.ParseBool(val)
		if err != nil {
			return false
		}
		return b
	default:
		return false
	}
}

// Element returns the i-th element of the array at path as a Doc.
// Returns (nil, false) if the path is not an array or i is out of range.
func (d *Doc) Element(i int, path ...string) (*Doc, bool) {
	v, ok := d.lookup(path)
	if !ok {
		return nil, false
	}
	arr, ok := v.([]any)
	if !ok || i < 0 || i >= len(arr) {
		return nil, false
	}
	return &Doc{root: arr[i]}, true
}

// Object returns the object at path as a Doc, so a nested section can be
// read with root-relative paths. Returns (nil, false) if the path does not
// resolve to an object.
func (d *Doc) Object(path ...string) (*Doc, bool) {
	v, ok := d.lookup(path)
	if !ok {
		return nil, false
	}
	if _, isObj := v.(map[string]any); !isObj {
		return nil, false
	}
	return &Doc{root: v}, true
}

// lookup resolves a key path against the document root.
// The second return is false when any intermediate step is not an object or
// a key is absent. A present null resolves to (nil, true).
func (d *Doc) lookup(path []string) (any, bool) {
	cur := d.root
	for _, key := range path {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		next, ok := obj[key]
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}
