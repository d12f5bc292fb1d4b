package report

import (
	"fmt"
	"strings"
)

// Markdown renders a single result as a sectioned plain-text report.
func Markdown(e Entry, opt Options) string {
	r := e.Result
	var b strings.Builder
	b.WriteString("[BODY FAT REPORT]\n")
	if e.Label != "" {
		b.WriteString(fmt.Sprintf("Record: %s\n", e.Label))
	}
	b.WriteString(fmt.Sprintf("Gender: %s\n\n", r.Gender))

	b.WriteString("[ESTIMATES]\n")
	for _, m := range methods() {
		b.WriteString(fmt.Sprintf("- %s: %s", m.Label(), formatPercent(r.Estimates.Get(m), opt.Precision)))
		if st := methodStatus(r, m); st != "" {
			b.WriteString(fmt.Sprintf(" (%s)", st))
		}
		b.WriteString("\n")
	}
	b.WriteString(fmt.Sprintf("- Adjusted: %s\n\n", formatPercent(r.Adjusted, opt.Precision)))

	if r.FFMI != nil {
		b.WriteString("[MUSCULARITY]\n")
		b.WriteString(fmt.Sprintf("- FFMI: %s\n", formatValue(r.FFMI, opt.Precision)))
		b.WriteString(fmt.Sprintf("- Normalized FFMI: %s\n", formatValue(r.NormalizedFFMI, opt.Precision)))
		if exceedsNatural(r) {
			b.WriteString(fmt.Sprintf("- Note: %s\n", ffmiNote))
		}
		b.WriteString("\n")
	}

	if rows := averageRows(r.Averages, opt.Precision); len(rows) > 0 {
		b.WriteString("[AVERAGES]\n")
		for _, row := range rows {
			b.WriteString(fmt.Sprintf("- %s: %s %s\n", titleCase(row.name), row.value, row.unit))
		}
		b.WriteString("\n")
	}

	if len(r.Advisories) > 0 {
		b.WriteString("[ADVISORIES]\n")
		for _, a := range r.Advisories {
			b.WriteString(fmt.Sprintf("- %s\n", a))
		}
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}

// BatchMarkdown renders a batch as a markdown table plus summary.
func BatchMarkdown(entries []Entry, sum Summary, opt Options) string {
	var b strings.Builder
	b.WriteString("[BATCH SUMMARY]\n")
	b.WriteString(fmt.Sprintf("Records: %d\n", sum.Records))
	b.WriteString(fmt.Sprintf("With estimate: %d\n", sum.WithEstimate))
	b.WriteString(fmt.Sprintf("Mean adjusted body fat: %s\n", formatPercent(sum.MeanAdjusted, opt.Precision)))
	b.WriteString(fmt.Sprintf("Mean normalized FFMI: %s\n\n", formatValue(sum.MeanNormalizedFFMI, opt.Precision)))

	b.WriteString("[RECORDS]\n")
	b.WriteString("| # | Record | Gender | Adjusted | Outlier | Normalized FFMI |\n")
	b.WriteString("|---|---|---|---|---|---|\n")
	for i, e := range entries {
		r := e.Result
		outlier := ""
		if r.Outlier != "" {
			outlier = r.Outlier.Label()
		}
		b.WriteString(fmt.Sprintf("| %d | %s | %s | %s | %s | %s |\n",
			i+1, safeCell(e.Label), r.Gender, formatPercent(r.Adjusted, opt.Precision), outlier, formatValue(r.NormalizedFFMI, opt.Precision)))
	}
	return b.String()
}

func safeCell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
