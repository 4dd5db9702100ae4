package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/gopak/minigrep/internal/assets"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

var schemaJSON = assets.ConfigSchema

// ValidateAgainstSchema checks merged settings against the embedded schema.
func ValidateAgainstSchema(s Settings) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return validateJSON(b)
}

// ValidateDocument checks a raw YAML settings document. Unknown keys and
// wrongly typed values are rejected. An empty document is valid.
func ValidateDocument(doc []byte) error {
	var raw map[string]any
	if err := yaml.Unmarshal(doc, &raw); err != nil {
		return err
	}
	if raw == nil {
		return nil
	}
	b, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("convert to json: %w", err)
	}
	return validateJSON(b)
}

func validateJSON(b []byte) error {
	if len(schemaJSON) == 0 {
		return errors.New("schema not embedded")
	}
	schemaLoader := gojsonschema.NewBytesLoader(schemaJSON)
	docLoader := gojsonschema.NewBytesLoader(b)
	res, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}
	var msgs []string
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return errors.New("schema validation failed: " + strings.Join(msgs, "; "))
}
