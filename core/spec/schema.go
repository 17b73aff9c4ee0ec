package spec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"spec-sync/core/errors"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// endpointSpecSchema describes the wire shape of an EndpointSpec.
// Sections and status codes may be absent or null.
const endpointSpecSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "$defs": {
    "field": {
      "type": "object",
      "required": ["name", "type", "required"],
      "properties": {
        "name": {"type": "string", "minLength": 1},
        "type": {"enum": ["string", "number", "boolean", "object", "array"]},
        "required": {"type": "boolean"},
        "description": {"type": ["string", "null"]}
      }
    },
    "fields": {
      "type": ["array", "null"],
      "items": {"$ref": "#/$defs/field"}
    }
  },
  "properties": {
    "parameters": {"$ref": "#/$defs/fields"},
    "requestBody": {"$ref": "#/$defs/fields"},
    "responseBody": {"$ref": "#/$defs/fields"},
    "headers": {"$ref": "#/$defs/fields"},
    "statusCodes": {
      "type": ["array", "null"],
      "items": {"type": "integer", "minimum": 100, "exclusiveMaximum": 600}
    },
    "description": {"type": ["string", "null"]},
    "definedBy": {"enum": ["frontend", "backend", "", null]}
  }
}`

const schemaResource = "endpoint-spec.json"

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	var doc any
	if err := json.Unmarshal([]byte(endpointSpecSchema), &doc); err != nil {
		return nil, fmt.Errorf("failed to parse JSON schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaResource, doc); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}
	return c.Compile(schemaResource)
})

// ValidateJSON checks a raw EndpointSpec payload against the embedded schema.
// It returns a *errors.ValidationError describing the first violation.
func ValidateJSON(raw []byte) error {
	schema, err := compiledSchema()
	if err != nil {
		return err
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return errors.NewValidationError("spec", nil, "malformed JSON: "+err.Error())
	}

	if err := schema.Validate(inst); err != nil {
		return errors.NewValidationError("spec", nil, err.Error())
	}
	return nil
}

// Decode validates raw against the schema, decodes it and applies ValidateSpec.
func Decode(raw []byte) (EndpointSpec, error) {
	var s EndpointSpec
	if err := ValidateJSON(raw); err != nil {
		return s, err
	}
	if err := json.Unmarshal(raw, &s); err != nil {
		return s, errors.NewValidationError("spec", nil, err.Error())
	}
	if !ValidateSpec(s) {
		return s, errors.NewValidationError("spec", nil, "spec failed validation")
	}
	return s, nil
}
