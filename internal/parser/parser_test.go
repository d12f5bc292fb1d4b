package parser

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Jaron-S/body-fat-calculator/internal/bodyfat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestParseJSONSingle(t *testing.T) {
	p := writeFile(t, "in.json", `{"name":"alice","gender":"m","waist":[34,"34.5"],"height":70,"age":30,"weight":180.5}`)
	recs, err := ParseFile(p, bodyfat.Female)
	require.NoError(t, err)
	require.Len(t, recs, 1)

	r := recs[0]
	assert.Equal(t, "alice", r.Label)
	assert.Equal(t, bodyfat.Male, r.Input.Gender)
	assert.Equal(t, bodyfat.Readings{"34", "34.5"}, r.Input.Waist)
	assert.Equal(t, bodyfat.Readings{"70"}, r.Input.Height)
	assert.Equal(t, "30", r.Input.Age)
	assert.Equal(t, "180.5", r.Input.Weight)
}

func TestParseJSONArrayAppliesDefaultGender(t *testing.T) {
	p := writeFile(t, "in.json", `[{"id":"a","waist":30},{"id":"b","gender":"male","hip":[null,"40"]}]`)
	recs, err := ParseFile(p, bodyfat.Female)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, bodyfat.Female, recs[0].Input.Gender)
	assert.Equal(t, bodyfat.Male, recs[1].Input.Gender)
	assert.Equal(t, bodyfat.Readings{"", "40"}, recs[1].Input.Hip)
	assert.Equal(t, "b", recs[1].Label)
}

func TestParseJSONSchemaViolations(t *testing.T) {
	tests := []struct {
		name, body string
	}{
		{"unknown field", `{"gender":"m","bicep":12}`},
		{"too many readings", `{"gender":"m","waist":[1,2,3,4]}`},
		{"object reading", `{"gender":"m","waist":{"a":1}}`},
		{"array age", `{"gender":"m","age":[30]}`},
		{"empty list", `[]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := writeFile(t, "in.json", tt.body)
			_, err := ParseFile(p, bodyfat.Male)
			var se *SchemaError
			require.True(t, errors.As(err, &se), "got %v", err)
			assert.NotEmpty(t, se.Problems)
		})
	}
}

func TestParseYAML(t *testing.T) {
	p := writeFile(t, "in.yml", `
name: bob
gender: F
waist: [30, 30.5]
hip: 40
neck: "13"
height: 64
`)
	recs, err := ParseFile(p, bodyfat.Male)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	r := recs[0]
	assert.Equal(t, "bob", r.Label)
	assert.Equal(t, bodyfat.Female, r.Input.Gender)
	assert.Equal(t, bodyfat.Readings{"30", "30.5"}, r.Input.Waist)
	assert.Equal(t, bodyfat.Readings{"40"}, r.Input.Hip)
	assert.Equal(t, bodyfat.Readings{"13"}, r.Input.Neck)

	res := bodyfat.Calculate(r.Input)
	assert.NotNil(t, res.Estimates.Navy)
}

func TestParseCSV(t *testing.T) {
	p := writeFile(t, "batch.csv", "Name,Gender,Height (in),waist_1,Waist2,neck,age,Weight [lbs],notes\n"+
		"alice,m,70,34,34.5,15,30,180,fine\n"+
		"bob,,64,30,,13,,,\n")
	recs, err := ParseFile(p, bodyfat.Female)
	require.NoError(t, err)
	require.Len(t, recs, 2)

	assert.Equal(t, "alice", recs[0].Label)
	assert.Equal(t, bodyfat.Male, recs[0].Input.Gender)
	assert.Equal(t, bodyfat.Readings{"70"}, recs[0].Input.Height)
	assert.Equal(t, bodyfat.Readings{"34", "34.5"}, recs[0].Input.Waist)
	assert.Equal(t, "180", recs[0].Input.Weight)

	assert.Equal(t, bodyfat.Female, recs[1].Input.Gender)
	assert.Equal(t, bodyfat.Readings{"30"}, recs[1].Input.Waist)
	assert.Nil(t, recs[1].Input.Hip)
	assert.Empty(t, recs[1].Input.Age)
}

func TestParseCSVSemicolonAndTab(t *testing.T) {
	for name, body := range map[string]string{
		"semi.csv": "gender;thigh_mm;thigh_2\nf;20;22\n",
		"tabs.tsv": "gender\tthigh (mm)\tthigh_2\nf\t20\t22\n",
	} {
		t.Run(name, func(t *testing.T) {
			recs, err := ParseFile(writeFile(t, name, body), bodyfat.Male)
			require.NoError(t, err)
			require.Len(t, recs, 1)
			assert.Equal(t, bodyfat.Readings{"20", "22"}, recs[0].Input.Thigh)
		})
	}
}

func TestParseCSVErrors(t *testing.T) {
	tests := []struct {
		name, body string
	}{
		{"bad unit", "gender,waist (cm)\nm,80\n"},
		{"bad gender", "gender,waist\nx,30\n"},
		{"no rows", "gender,waist\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFile(writeFile(t, "in.csv", tt.body), bodyfat.Male)
			var fe *FieldError
			assert.True(t, errors.As(err, &fe), "got %v", err)
		})
	}
}

func TestParseFileMissingGenderWithoutDefault(t *testing.T) {
	p := writeFile(t, "in.json", `{"waist":30}`)
	_, err := ParseFile(p, "")
	var fe *FieldError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "gender", fe.Field)
}

func TestParseFileUnsupported(t *testing.T) {
	p := writeFile(t, "in.txt", "waist=30")
	_, err := ParseFile(p, bodyfat.Male)
	assert.ErrorIs(t, err, ErrUnsupported)
	assert.False(t, Supported("in.txt"))
	assert.True(t, Supported("IN.YAML"))
}

func TestSplitUnits(t *testing.T) {
	tests := []struct{ in, name, unit string }{
		{"Waist (in)", "Waist", "in"},
		{"thigh [mm]", "thigh", "mm"},
		{"weight_lbs", "weight", "lbs"},
		{"waist_1", "waist_1", ""},
		{"suprailiac", "suprailiac", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			n, u := splitUnits(tt.in)
			assert.Equal(t, tt.name, n)
			assert.Equal(t, tt.unit, u)
		})
	}
}
