package nonempty

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalJSON encodes the sequence as a plain JSON array of its
// elements, with no wrapper metadata. A Seq field serializes exactly
// like a slice field would.
func (s Seq[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.items)
}

// UnmarshalJSON decodes a JSON array and re-validates the non-empty
// guarantee. Decoding an empty array fails with an error wrapping
// ErrEmpty rather than constructing an invalid value, so
// round-tripping can never produce a zero-length sequence.
func (s *Seq[T]) UnmarshalJSON(data []byte) error {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	if len(items) == 0 {
		return fmt.Errorf("nonempty: cannot unmarshal empty array: %w", ErrEmpty)
	}
	s.items = items
	return nil
}

// MarshalYAML encodes the sequence as a plain YAML sequence node.
func (s Seq[T]) MarshalYAML() (any, error) {
	return s.items, nil
}

// UnmarshalYAML decodes a YAML sequence with the same empty-rejection
// contract as UnmarshalJSON.
func (s *Seq[T]) UnmarshalYAML(node *yaml.Node) error {
	var items []T
	if err := node.Decode(&items); err != nil {
		return err
	}
	if len(items) == 0 {
		return fmt.Errorf("nonempty: cannot unmarshal empty sequence: %w", ErrEmpty)
	}
	s.items = items
	return nil
}
