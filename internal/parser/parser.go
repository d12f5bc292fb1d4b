package parser

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Jaron-S/body-fat-calculator/internal/bodyfat"
)

// Record is one decoded calculation request. Label comes from an optional
// name/id field and is empty otherwise.
type Record struct {
	Label string
	Input bodyfat.Input
}

// Parser decodes measurement files of one format.
type Parser interface {
	CanParse(filename string) bool
	Parse(content []byte) ([]Record, error)
}

var registry []Parser

// Register adds a parser implementation to the registry.
func Register(p Parser) {
	registry = append(registry, p)
}

// ErrUnsupported indicates a format is not supported.
var ErrUnsupported = errors.New("unsupported input format")

// FieldError reports a bad value in a decoded record.
type FieldError struct {
	Record int // 1-based; 0 when the file holds a single record
	Field  string
	Msg    string
}

func (e *FieldError) Error() string {
	if e.Record > 0 {
		return fmt.Sprintf("record %d: %s: %s", e.Record, e.Field, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

// SchemaError lists the schema violations of a JSON or YAML document.
type SchemaError struct {
	Problems []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("input does not match schema: %s", strings.Join(e.Problems, "; "))
}

// ParseFile selects a parser based on filename, decodes the records and
// applies defaultGender to records that omit one.
func ParseFile(path string, defaultGender bodyfat.Gender) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	for _, p := range registry {
		if !p.CanParse(path) {
			continue
		}
		recs, err := p.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
		}
		if err := applyGender(recs, defaultGender); err != nil {
			return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
		}
		return recs, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupported, filepath.Ext(path))
}

// Supported reports whether some registered parser accepts filename.
func Supported(filename string) bool {
	for _, p := range registry {
		if p.CanParse(filename) {
			return true
		}
	}
	return false
}

func applyGender(recs []Record, def bodyfat.Gender) error {
	for i := range recs {
		g := string(recs[i].Input.Gender)
		if strings.TrimSpace(g) == "" {
			if !def.Valid() {
				return &FieldError{Record: recordIndex(recs, i), Field: "gender", Msg: "missing and no default configured"}
			}
			recs[i].Input.Gender = def
			continue
		}
		parsed, err := bodyfat.ParseGender(g)
		if err != nil {
			return &FieldError{Record: recordIndex(recs, i), Field: "gender", Msg: err.Error()}
		}
		recs[i].Input.Gender = parsed
	}
	return nil
}

func recordIndex(recs []Record, i int) int {
	if len(recs) == 1 {
		return 0
	}
	return i + 1
}

func hasSuffix(filename string, exts ...string) bool {
	name := strings.ToLower(filename)
	for _, ext := range exts {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

func init() {
	Register(jsonParser{})
	Register(yamlParser{})
	Register(csvParser{})
}
