package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/Jaron-S/body-fat-calculator/internal/bodyfat"
	"github.com/Jaron-S/body-fat-calculator/internal/utils"
)

type jsonEntry struct {
	Label string `json:"label,omitempty"`
	bodyfat.Result
}

type batchJSON struct {
	Records []jsonEntry `json:"records"`
	Summary Summary     `json:"summary"`
}

func toJSONEntry(e Entry) jsonEntry {
	return jsonEntry{Label: e.Label, Result: e.Result}
}

func writeJSON(w io.Writer, v any) error {
	b, err := utils.PrettyJSON(v)
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}

// CSVHeader is the column layout of CSV output.
var CSVHeader = []string{
	"label", "gender", "rfm", "navy", "jackson_pollock", "military",
	"adjusted", "outlier", "ffmi", "normalized_ffmi",
}

func writeCSV(w io.Writer, entries []Entry, opt Options) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, e := range entries {
		r := e.Result
		row := []string{e.Label, string(r.Gender)}
		for _, m := range methods() {
			row = append(row, csvValue(r.Estimates.Get(m), opt.Precision))
		}
		row = append(row,
			csvValue(r.Adjusted, opt.Precision),
			string(r.Outlier),
			csvValue(r.FFMI, opt.Precision),
			csvValue(r.NormalizedFFMI, opt.Precision),
		)
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// csvValue leaves absent values empty.
func csvValue(v *float64, prec int) string {
	if v == nil {
		return ""
	}
	return formatValue(v, prec)
}
