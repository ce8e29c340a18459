package extract

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/zawlinnaung/slip-tracker/constants"
)

// buildRulesetSchema returns a JSON-Schema (draft 2020-12 subset) as a generic
// map, constraining synonym-override files to known fields and non-empty
// label lists.
func buildRulesetSchema() map[string]any {
	fieldProps := map[string]any{}
	for _, k := range constants.AllFieldKinds {
		fieldProps[string(k)] = map[string]any{
			"type":     "array",
			"minItems": 1,
			"items":    map[string]any{"type": "string", "minLength": 1},
		}
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"synonyms": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties":           fieldProps,
			},
		},
		"required": []string{"synonyms"},
	}
}

// ValidateRulesetJSON validates a synonym-override document against the
// ruleset schema.
func ValidateRulesetJSON(data []byte) error {
	b, err := json.Marshal(buildRulesetSchema())
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("ruleset.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("ruleset.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal ruleset: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("ruleset does not match schema: %w", err)
	}
	return nil
}
