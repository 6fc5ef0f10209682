package store

import (
	"encoding/json"
	"errors"
	"fmt"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/idilsaglam/todocli/internal/model"
)

const stateSchemaURL = "state.schema.json"

// stateSchema describes the on-disk layout:
// {"entries":{"<name>":{"checked":<bool>}}}. Unknown fields are allowed.
const stateSchema = `{
  "type": "object",
  "required": ["entries"],
  "properties": {
    "entries": {
      "type": "object",
      "additionalProperties": {
        "type": "object",
        "required": ["checked"],
        "properties": {
          "checked": {"type": "boolean"}
        }
      }
    }
  }
}`

var compiledSchema = jsonschema.MustCompileString(stateSchemaURL, stateSchema)

// Encode serializes a state to its compact persisted form.
func Encode(s *model.State) ([]byte, error) {
	if s == nil {
		return nil, errors.New("nil state")
	}
	s.Normalize()
	b, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("json marshal: %w", err)
	}
	return b, nil
}

// Decode parses persisted content, validating its shape first.
func Decode(b []byte) (*model.State, error) {
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	if err := compiledSchema.Validate(doc); err != nil {
		return nil, schemaError(err)
	}
	var s model.State
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	s.Normalize()
	return &s, nil
}

// schemaError reduces a validation tree to its first leaf.
func schemaError(err error) error {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return fmt.Errorf("schema: %w", err)
	}
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	loc := ve.InstanceLocation
	if loc == "" {
		loc = "/"
	}
	return fmt.Errorf("schema: %s: %s", loc, ve.Message)
}
