package answer

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// JSON Schemas for the documented list shapes. Shape constraints beyond
// these (exact length, value ranges) belong to the evaluators, which can
// name the specific violation.
var (
	intListSchema = &shapeSchema{
		name: "int-list",
		definition: map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "integer"},
		},
	}
	pairListSchema = &shapeSchema{
		name: "pair-list",
		definition: map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "integer"},
				"minItems": 2,
				"maxItems": 2,
			},
		},
	}
)

type shapeSchema struct {
	name       string
	definition map[string]any
}

// schemaCache caches compiled schemas by name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

// validate checks a parsed JSON value against a shape schema.
func validate(s *shapeSchema, payload any) error {
	compiled, err := compiled(s)
	if err != nil {
		return err
	}
	return compiled.Validate(payload)
}

// compiled returns the cached compiled schema, compiling it on first use.
func compiled(s *shapeSchema) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(s.name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The jsonschema library expects a parsed JSON value, not Go literals.
	// Round-trip the definition to get a clean representation.
	defBytes, err := json.Marshal(s.definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", s.name)
	if err := c.AddResource(url, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", s.name, err)
	}

	schemaCache.Store(s.name, compiled)
	return compiled, nil
}
