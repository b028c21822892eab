package config

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// Schema returns the JSON schema of config.toml.
func Schema() ([]byte, error) {
	r := &jsonschema.Reflector{
		FieldNameTag:              "toml",
		DoNotReference:            true,
		AllowAdditionalProperties: true,
	}
	schema := r.Reflect(&Config{})

	schema.ID = "https://github.com/bnema/duopane/config.schema.json"
	schema.Title = "duopane configuration"
	schema.Description = "Application configuration for duopane, a two-pane web container"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}
