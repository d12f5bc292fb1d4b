package parser

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

type yamlParser struct{}

func (yamlParser) CanParse(filename string) bool {
	return hasSuffix(filename, ".yaml", ".yml")
}

func (yamlParser) Parse(content []byte) ([]Record, error) {
	var doc any
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if doc == nil {
		return nil, &FieldError{Field: "document", Msg: "empty"}
	}
	if err := validateDocument(doc); err != nil {
		return nil, err
	}
	return recordsFromDocument(doc)
}
