// Package jsonutil provides thin wrappers around sonic that mirror the
// encoding/json surface used elsewhere in the module.
package jsonutil

import (
	"io"

	"github.com/bytedance/sonic"
)

// Marshal serialises v using sonic with encoding/json compatible behaviour.
func Marshal(v any) ([]byte, error) {
	return sonic.ConfigStd.Marshal(v)
}

// MarshalIndent serialises v with the supplied prefix and indentation.
func MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	return sonic.ConfigStd.MarshalIndent(v, prefix, indent)
}

// Unmarshal parses data into v.
func Unmarshal(data []byte, v any) error {
	return sonic.ConfigStd.Unmarshal(data, v)
}

// Encode writes the JSON encoding of v to w, followed by a newline.
func Encode(w io.Writer, v any) error {
	return sonic.ConfigStd.NewEncoder(w).Encode(v)
}

// Decode reads a JSON value from r into v.
func Decode(r io.Reader, v any) error {
	return sonic.ConfigStd.NewDecoder(r).Decode(v)
}
