// Package codec converts plain values to and from canonical JSON text.
//
// Encoding is deterministic: encoding/json emits map keys in ascending
// lexicographic order. Decoding is prototype-driven: the caller supplies a
// value of the desired type and receives a freshly constructed instance of
// that type populated from the parsed text.
package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrSerialize wraps encoding failures: cyclic values and value kinds
	// the encoder does not support (funcs, channels, ...).
	ErrSerialize = errors.New("value cannot be serialized")

	// ErrParse wraps decoding failures on malformed text.
	ErrParse = errors.New("text cannot be parsed")
)

// Encode returns the canonical JSON encoding of v.
func Encode(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerialize, err)
	}
	return data, nil
}

// Decode parses data and returns a new instance of proto's type (as a
// pointer) populated from the parsed top-level keys. proto itself is never
// modified; it only supplies the type.
func Decode(proto any, data []byte) (any, error) {
	if proto == nil {
		return nil, errors.New("codec: nil prototype")
	}
	t := reflect.TypeOf(proto)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	out := reflect.New(t)
	if err := json.Unmarshal(data, out.Interface()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return out.Interface(), nil
}
