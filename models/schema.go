package models

import (
	"encoding/json"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
)

// DocumentSchema returns the JSON Schema of the durable document form, for
// downstream validation tooling. The schema is derived from the
// serialization intermediates, so it describes exactly what Marshal emits.
func DocumentSchema() ([]byte, error) {
	schema, err := jsonschema.For[documentSer](nil)
	if err != nil {
		return nil, fmt.Errorf("derive document schema: %w", err)
	}
	out, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("render document schema: %w", err)
	}
	return out, nil
}
