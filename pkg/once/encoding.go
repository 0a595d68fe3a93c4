package once

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// wire is the encoded form of a container. Value is nil when the container
// is unset, and points at the committed value otherwise.
type wire[T any] struct {
	Name  string `json:"name" yaml:"name"`
	Set   bool   `json:"set" yaml:"set"`
	Value *T     `json:"value,omitempty" yaml:"value,omitempty"`
}

func encode[T any](c Container[T]) wire[T] {
	w := wire[T]{Name: c.Name()}
	if v, err := c.Get(); err == nil {
		w.Set = true
		w.Value = &v
	}
	return w
}

// restore commits a decoded payload into c.
func restore[T any](r *rules[T], c Container[T], w wire[T]) error {
	if err := r.adopt(w.Name); err != nil {
		return err
	}
	if !w.Set {
		return nil
	}
	var v T
	if w.Value != nil {
		v = *w.Value
	}
	return c.Commit(v)
}

func decodeError(name, format string, err error) error {
	if name == "" {
		return fmt.Errorf("cannot decode container from %s: %w", format, err)
	}
	return fmt.Errorf("%s: cannot decode from %s: %w", name, format, err)
}

// MarshalJSON implements json.Marshaler.
func (f *Field[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(encode[T](f))
}

// UnmarshalJSON implements json.Unmarshaler. The decoded value goes through
// Commit, so it must satisfy the field's requirements and the field must be
// unset. A zero Field takes the encoded name.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	var w wire[T]
	if err := json.Unmarshal(data, &w); err != nil {
		return decodeError(f.name, "JSON", err)
	}
	return restore(&f.rules, f, w)
}

// MarshalYAML implements yaml.Marshaler.
func (f *Field[T]) MarshalYAML() (interface{}, error) {
	return encode[T](f), nil
}

// UnmarshalYAML implements yaml.Unmarshaler with the semantics of UnmarshalJSON.
func (f *Field[T]) UnmarshalYAML(node *yaml.Node) error {
	var w wire[T]
	if err := node.Decode(&w); err != nil {
		return decodeError(f.name, "YAML", err)
	}
	return restore(&f.rules, f, w)
}

// MarshalJSON implements json.Marshaler.
func (s *SharedField[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(encode[T](s))
}

// UnmarshalJSON implements json.Unmarshaler. Decoding into a zero
// SharedField sets its name and must not run concurrently with other calls.
func (s *SharedField[T]) UnmarshalJSON(data []byte) error {
	var w wire[T]
	if err := json.Unmarshal(data, &w); err != nil {
		return decodeError(s.name, "JSON", err)
	}
	return restore(&s.rules, s, w)
}

// MarshalYAML implements yaml.Marshaler.
func (s *SharedField[T]) MarshalYAML() (interface{}, error) {
	return encode[T](s), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *SharedField[T]) UnmarshalYAML(node *yaml.Node) error {
	var w wire[T]
	if err := node.Decode(&w); err != nil {
		return decodeError(s.name, "YAML", err)
	}
	return restore(&s.rules, s, w)
}
