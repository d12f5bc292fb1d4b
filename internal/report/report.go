package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Jaron-S/body-fat-calculator/internal/bodyfat"
)

// Options controls rendering.
type Options struct {
	Format    string // text|markdown|json|csv
	Precision int    // decimals for percentages, site averages and FFMI
	Color     bool
}

// Entry is one rendered calculation. Label is optional.
type Entry struct {
	Label  string
	Result bodyfat.Result
}

// Render writes a single detailed report.
func Render(w io.Writer, e Entry, opt Options) error {
	switch strings.ToLower(opt.Format) {
	case "", "text":
		return writeText(w, e, opt)
	case "markdown", "md":
		_, err := io.WriteString(w, Markdown(e, opt))
		return err
	case "json":
		return writeJSON(w, toJSONEntry(e))
	case "csv":
		return writeCSV(w, []Entry{e}, opt)
	}
	return fmt.Errorf("unknown format: %s", opt.Format)
}

// RenderBatch writes one row per entry followed by a summary.
func RenderBatch(w io.Writer, entries []Entry, opt Options) error {
	sum := Summarize(entries)
	switch strings.ToLower(opt.Format) {
	case "", "text":
		return writeBatchText(w, entries, sum, opt)
	case "markdown", "md":
		_, err := io.WriteString(w, BatchMarkdown(entries, sum, opt))
		return err
	case "json":
		out := batchJSON{Records: make([]jsonEntry, len(entries)), Summary: sum}
		for i, e := range entries {
			out.Records[i] = toJSONEntry(e)
		}
		return writeJSON(w, out)
	case "csv":
		return writeCSV(w, entries, opt)
	}
	return fmt.Errorf("unknown format: %s", opt.Format)
}

// formatValue renders v with the given decimals, or "n/a" when absent.
func formatValue(v *float64, prec int) string {
	if v == nil {
		return "n/a"
	}
	return strconv.FormatFloat(*v, 'f', prec, 64)
}

func formatPercent(v *float64, prec int) string {
	if v == nil {
		return "n/a"
	}
	return formatValue(v, prec) + "%"
}

// siteRow is one line of the averages listing.
type siteRow struct {
	name, value, unit string
}

// averageRows lists the supplied averages. Age and weight have no decimals.
func averageRows(a bodyfat.Averages, prec int) []siteRow {
	var rows []siteRow
	for _, s := range bodyfat.Sites {
		if v := a.Site(s); v != nil {
			rows = append(rows, siteRow{string(s), formatValue(v, prec), s.Unit()})
		}
	}
	if a.Age != nil {
		rows = append(rows, siteRow{"age", formatValue(a.Age, 0), "yrs"})
	}
	if a.Weight != nil {
		rows = append(rows, siteRow{"weight", formatValue(a.Weight, 0), "lbs"})
	}
	return rows
}

// methodStatus is the note shown next to a method estimate.
func methodStatus(r bodyfat.Result, m bodyfat.Method) string {
	switch {
	case r.Outlier == m:
		return "outlier"
	case m == bodyfat.MethodMilitary:
		return "informational"
	}
	return ""
}

func methods() []bodyfat.Method {
	return append(append([]bodyfat.Method{}, bodyfat.ReconciledMethods...), bodyfat.MethodMilitary)
}

const ffmiNote = "Normalized FFMI above 25 is difficult to achieve naturally"

func exceedsNatural(r bodyfat.Result) bool {
	return r.NormalizedFFMI != nil && *r.NormalizedFFMI > bodyfat.NaturalFFMILimit
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
