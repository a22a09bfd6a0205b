// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package openapi

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/getkin/kin-openapi/openapi3"
	"go.yaml.in/yaml/v3"
)

// WriteJSON serializes the description to an indented JSON file at path.
func WriteJSON(spec *openapi3.T, path string) error {
	data, err := json.MarshalIndent(spec, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// WriteYAML serializes the description to a YAML file at path. The JSON
// form is the canonical serialization for openapi3 types, so the YAML view
// goes through a JSON round trip to keep both files structurally identical.
func WriteYAML(spec *openapi3.T, path string) error {
	data, err := MarshalYAML(spec)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// MarshalYAML renders the description as YAML bytes.
func MarshalYAML(spec *openapi3.T) ([]byte, error) {
	jsonData, err := json.Marshal(spec)
	if err != nil {
		return nil, fmt.Errorf("marshaling spec: %w", err)
	}
	var tree map[string]any
	if err := json.Unmarshal(jsonData, &tree); err != nil {
		return nil, fmt.Errorf("decoding spec for YAML: %w", err)
	}
	data, err := yaml.Marshal(tree)
	if err != nil {
		return nil, fmt.Errorf("marshaling YAML: %w", err)
	}
	return data, nil
}
