package predict

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// schemaCache caches compiled JSON schemas by name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

// validateResponse checks raw service output against the response
// schema and the classification invariant, then decodes it. The
// invariant: the classification label must be a key of the probability
// map, because downstream severity/color mapping looks the label up
// there.
func validateResponse(raw json.RawMessage) (*Result, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, &ErrInvalidResponse{
			Content: raw,
			Err:     fmt.Errorf("invalid JSON: %w", err),
		}
	}

	compiled, err := getCompiledSchema(responseSchema)
	if err != nil {
		return nil, &ErrInvalidResponse{
			Content: raw,
			Err:     fmt.Errorf("compile schema %q: %w", responseSchema.Name, err),
		}
	}

	if err := compiled.Validate(parsed); err != nil {
		return nil, &ErrInvalidResponse{
			Content: raw,
			Err:     fmt.Errorf("schema validation failed: %w", err),
		}
	}

	var result Result
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, &ErrInvalidResponse{Content: raw, Err: err}
	}

	if _, ok := result.Probabilities[string(result.Prediction)]; !ok {
		return nil, &ErrInvalidResponse{
			Content: raw,
			Err:     fmt.Errorf("label %q missing from probability map", result.Prediction),
		}
	}

	return &result, nil
}

// getCompiledSchema returns a cached compiled schema or compiles and
// caches it.
func getCompiledSchema(schema *schemaDef) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(schema.Name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The jsonschema library expects a parsed JSON value (any), not raw
	// bytes. Marshal then unmarshal to get a clean any representation.
	defBytes, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", schema.Name)
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}

	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(schema.Name, compiled)
	return compiled, nil
}
