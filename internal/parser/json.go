package parser

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type jsonParser struct{}

func (jsonParser) CanParse(filename string) bool {
	return hasSuffix(filename, ".json")
}

func (jsonParser) Parse(content []byte) ([]Record, error) {
	dec := json.NewDecoder(bytes.NewReader(content))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	if err := validateDocument(doc); err != nil {
		return nil, err
	}
	return recordsFromDocument(doc)
}
