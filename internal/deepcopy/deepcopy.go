package deepcopy

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/jsonc"
)

// Copy returns a new value of type T that is structurally equal to src and
// shares no memory with it.
func Copy[T any](src T) (T, error) {
	var dst T
	data, err := json.Marshal(src)
	if err != nil {
		return dst, fmt.Errorf("failed to serialize value for copy: %w", err)
	}
	if err := json.Unmarshal(data, &dst); err != nil {
		return dst, fmt.Errorf("failed to deserialize copied value: %w", err)
	}
	return dst, nil
}

// Value copies src into the generic JSON shapes: map[string]any, []any,
// float64, string, bool and nil. Struct types come back as maps keyed by
// their JSON field names.
func Value(src any) (any, error) {
	return Copy[any](src)
}

// FromJSONC decodes a JSON or JSONC document into the generic JSON shapes.
// Comments and trailing commas are removed first.
func FromJSONC(data []byte) (any, error) {
	var v any
	if err := json.Unmarshal(jsonc.ToJSON(data), &v); err != nil {
		return nil, fmt.Errorf("failed to parse JSON document: %w", err)
	}
	return v, nil
}
