package seqio

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Codec converts elements of type T to and from byte slices.
type Codec[T any] interface {
	Encode(T) ([]byte, error)
	Decode([]byte) (T, error)
}

// StringCodec stores strings as their UTF-8 bytes.
type StringCodec struct{}

// Encode returns the bytes of s.
func (StringCodec) Encode(s string) ([]byte, error) {
	return []byte(s), nil
}

// Decode returns b as a string.
func (StringCodec) Decode(b []byte) (string, error) {
	return string(b), nil
}

var _ Codec[string] = StringCodec{}

// JSONCodec encodes elements as JSON documents.
type JSONCodec[T any] struct{}

func (JSONCodec[T]) Encode(e T) ([]byte, error) {
	return json.Marshal(e)
}

func (JSONCodec[T]) Decode(b []byte) (T, error) {
	var e T
	err := json.Unmarshal(b, &e)
	return e, err
}

// YAMLCodec encodes elements as YAML documents.
type YAMLCodec[T any] struct{}

func (YAMLCodec[T]) Encode(e T) ([]byte, error) {
	return yaml.Marshal(e)
}

func (YAMLCodec[T]) Decode(b []byte) (T, error) {
	var e T
	err := yaml.Unmarshal(b, &e)
	return e, err
}
