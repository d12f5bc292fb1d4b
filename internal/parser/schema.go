package parser

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/Jaron-S/body-fat-calculator/internal/bodyfat"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema.json
var inputSchema string

var schemaLoader = gojsonschema.NewStringLoader(inputSchema)

// validateDocument checks a decoded JSON or YAML document against the
// input schema.
func validateDocument(doc any) error {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}
	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return &SchemaError{Problems: errs}
	}
	return nil
}

// recordsFromDocument converts a validated document (one object or a list
// of objects) into records.
func recordsFromDocument(doc any) ([]Record, error) {
	switch v := doc.(type) {
	case map[string]any:
		rec, err := recordFromMap(v, 0)
		if err != nil {
			return nil, err
		}
		return []Record{rec}, nil
	case []any:
		recs := make([]Record, 0, len(v))
		for i, item := range v {
			m, ok := item.(map[string]any)
			if !ok {
				return nil, &FieldError{Record: i + 1, Field: "record", Msg: "expected an object"}
			}
			rec, err := recordFromMap(m, i+1)
			if err != nil {
				return nil, err
			}
			recs = append(recs, rec)
		}
		return recs, nil
	}
	return nil, &FieldError{Field: "document", Msg: fmt.Sprintf("unexpected %T", doc)}
}

func recordFromMap(m map[string]any, idx int) (Record, error) {
	var rec Record
	for key, raw := range m {
		switch key {
		case "name", "id":
			s, err := text(raw)
			if err != nil {
				return rec, &FieldError{Record: idx, Field: key, Msg: err.Error()}
			}
			if rec.Label == "" || key == "name" {
				rec.Label = s
			}
		case "gender":
			s, err := text(raw)
			if err != nil {
				return rec, &FieldError{Record: idx, Field: key, Msg: err.Error()}
			}
			rec.Input.Gender = bodyfat.Gender(s)
		case "age", "weight":
			s, err := text(raw)
			if err != nil {
				return rec, &FieldError{Record: idx, Field: key, Msg: err.Error()}
			}
			if key == "age" {
				rec.Input.Age = s
			} else {
				rec.Input.Weight = s
			}
		default:
			site, ok := bodyfat.ParseSite(key)
			if !ok {
				return rec, &FieldError{Record: idx, Field: key, Msg: "unknown field"}
			}
			r, err := readings(raw)
			if err != nil {
				return rec, &FieldError{Record: idx, Field: key, Msg: err.Error()}
			}
			rec.Input.SetReadings(site, r)
		}
	}
	return rec, nil
}

func readings(raw any) (bodyfat.Readings, error) {
	list, ok := raw.([]any)
	if !ok {
		s, err := text(raw)
		if err != nil {
			return nil, err
		}
		return bodyfat.Readings{s}, nil
	}
	out := make(bodyfat.Readings, 0, len(list))
	for _, item := range list {
		s, err := text(item)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// text renders a scalar the way the user typed it so it can be parsed as a
// reading later.
func text(raw any) (string, error) {
	switch v := raw.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case json.Number:
		return v.String(), nil
	}
	return "", fmt.Errorf("unexpected value of type %T", raw)
}
