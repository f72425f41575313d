package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Document is the generic string-keyed shape the store produces and
// consumes. bson.M satisfies it directly.
type Document = map[string]interface{}

// missingField builds the malformed-document error for a required field.
func missingField(record, field string) error {
	return fmt.Errorf("%w: %s missing required field %q", ErrMalformedDocument, record, field)
}

// docString reads a string field. The driver only ever hands back string
// for string-typed values, so no coercion is needed.
func docString(doc Document, key string) (string, bool) {
	v, ok := doc[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// docInt reads an integer field, accepting the numeric shapes the driver
// decodes into an interface value (int32/int64 from BSON, float64 and int
// from plain JSON documents).
func docInt(doc Document, key string) (int, bool) {
	v, ok := doc[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}

func docBool(doc Document, key string) (bool, bool) {
	v, ok := doc[key]
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

// docTime reads a timestamp field as time.Time or the driver's
// primitive.DateTime.
func docTime(doc Document, key string) (time.Time, bool) {
	v, ok := doc[key]
	if !ok {
		return time.Time{}, false
	}
	switch t := v.(type) {
	case time.Time:
		return t, true
	case primitive.DateTime:
		return t.Time(), true
	}
	return time.Time{}, false
}

// docStringSlice reads a list of strings; missing is reported as absent,
// a present list with non-string members is reported as present with the
// bad members dropped.
func docStringSlice(doc Document, key string) ([]string, bool) {
	v, ok := doc[key]
	if !ok {
		return nil, false
	}
	items, ok := docSlice(v)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out, true
}

// docBoolMap reads a string-to-bool mapping (the progress map shape).
func docBoolMap(doc Document, key string) (map[string]bool, bool) {
	v, ok := doc[key]
	if !ok {
		return nil, false
	}
	raw, ok := docMap(v)
	if !ok {
		return nil, false
	}
	out := make(map[string]bool, len(raw))
	for k, rv := range raw {
		if b, ok := rv.(bool); ok {
			out[k] = b
		}
	}
	return out, true
}

// docDocSlice reads a list of nested documents.
func docDocSlice(doc Document, key string) ([]Document, bool) {
	v, ok := doc[key]
	if !ok {
		return nil, false
	}
	items, ok := docSlice(v)
	if !ok {
		return nil, false
	}
	out := make([]Document, 0, len(items))
	for _, item := range items {
		if d, ok := docMap(item); ok {
			out = append(out, d)
		}
	}
	return out, true
}

// docSlice normalizes the two list shapes the driver produces.
func docSlice(v interface{}) ([]interface{}, bool) {
	switch s := v.(type) {
	case []interface{}:
		return s, true
	case primitive.A:
		return s, true
	}
	return nil, false
}

// docMap normalizes the two nested-document shapes: plain maps from JSON
// decoding and primitive.M from the driver.
func docMap(v interface{}) (Document, bool) {
	switch m := v.(type) {
	case map[string]interface{}:
		return m, true
	case primitive.M:
		return m, true
	}
	return nil, false
}
