package envelope

import (
	"bytes"
	"errors"
	"io"
	"strconv"

	json "github.com/goccy/go-json"
)

// Value is any decoded JSON value: Object, []any, string, json.Number, bool or nil.
type Value = any

// Object is a decoded JSON object.
type Object = map[string]any

// ErrNotObject is returned by DecodeObject when the document root is valid JSON
// but not an object.
var ErrNotObject = errors.New("json document root is not an object")

// ErrTrailingData is returned by Decode when the document holds more than one
// JSON value, e.g. a valid object followed by an HTML error page.
var ErrTrailingData = errors.New("unexpected data after json value")

// Decode parses a JSON document, keeping numbers as json.Number.
// The document must consist of exactly one value; anything but whitespace
// after it is rejected with ErrTrailingData.
func Decode(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v Value
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}

	var extra Value
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, ErrTrailingData
	}
	return v, nil
}

// DecodeObject parses a JSON document whose root must be an object.
func DecodeObject(data []byte) (Object, error) {
	v, err := Decode(data)
	if err != nil {
		return nil, err
	}
	obj, ok := v.(Object)
	if !ok {
		return nil, ErrNotObject
	}
	return obj, nil
}

// Path walks v through the given object keys.
// It reports false as soon as a step is missing or the current value is not an object.
// With no keys, Path returns v itself.
func Path(v Value, keys ...string) (Value, bool) {
	cur := v
	for _, k := range keys {
		obj, ok := cur.(Object)
		if !ok {
			return nil, false
		}
		next, ok := obj[k]
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// ObjectAt returns the object found at keys, or an empty object when the path
// is missing or does not end at an object.
func ObjectAt(v Value, keys ...string) Object {
	found, ok := Path(v, keys...)
	if !ok {
		return Object{}
	}
	obj, ok := found.(Object)
	if !ok {
		return Object{}
	}
	return obj
}

// ListAt returns the objects found at keys, normalized with ToList.
// A missing path yields an empty list.
func ListAt(v Value, keys ...string) []Object {
	found, ok := Path(v, keys...)
	if !ok {
		return []Object{}
	}
	return ToList(found)
}

// ToList coerces an API value into a list of objects.
// A bare object becomes a one-element list, an array keeps its object elements
// in order, and anything else (null, scalars) becomes an empty list.
func ToList(v Value) []Object {
	switch t := v.(type) {
	case Object:
		return []Object{t}
	case []any:
		out := make([]Object, 0, len(t))
		for _, item := range t {
			if obj, ok := item.(Object); ok {
				out = append(out, obj)
			}
		}
		return out
	default:
		return []Object{}
	}
}

// Text returns the value stored under key rendered as text.
// Strings are returned as-is and numbers in their decimal form.
// It reports false when the key is absent, null, or holds an object or array.
func Text(obj Object, key string) (string, bool) {
	v, ok := obj[key]
	if !ok {
		return "", false
	}
	return scalarText(v)
}

// OptText is Text with an empty-string default.
func OptText(obj Object, key string) string {
	s, _ := Text(obj, key)
	return s
}

// TextAt returns the scalar found at keys rendered as text.
func TextAt(v Value, keys ...string) (string, bool) {
	if len(keys) == 0 {
		return "", false
	}
	found, ok := Path(v, keys...)
	if !ok {
		return "", false
	}
	return scalarText(found)
}

// OptTextAt is TextAt with an empty-string default.
func OptTextAt(v Value, keys ...string) string {
	s, _ := TextAt(v, keys...)
	return s
}

func scalarText(v Value) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case json.Number:
		return t.String(), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case bool:
		return strconv.FormatBool(t), true
	default:
		return "", false
	}
}
