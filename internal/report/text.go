package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

var (
	outlierColor  = color.New(color.FgRed, color.Bold)
	adjustedColor = color.New(color.FgGreen, color.Bold)
	noteColor     = color.New(color.FgYellow)
	infoColor     = color.New(color.FgHiBlack)
)

// paint applies c when coloring is enabled.
func paint(opt Options, c *color.Color, s string) string {
	if !opt.Color || s == "" {
		return s
	}
	return c.Sprint(s)
}

func statusLabel(opt Options, status string) string {
	switch status {
	case "outlier":
		return paint(opt, outlierColor, status)
	case "informational":
		return paint(opt, infoColor, status)
	}
	return status
}

func writeText(w io.Writer, e Entry, opt Options) error {
	r := e.Result
	if e.Label != "" {
		fmt.Fprintf(w, "Record: %s\n", e.Label)
	}
	fmt.Fprintf(w, "Gender: %s\n\n", r.Gender)

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Method", "Body Fat", "Status"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})
	var data [][]string
	for _, m := range methods() {
		data = append(data, []string{m.Label(), formatPercent(r.Estimates.Get(m), opt.Precision), statusLabel(opt, methodStatus(r, m))})
	}
	data = append(data, []string{"Adjusted", paint(opt, adjustedColor, formatPercent(r.Adjusted, opt.Precision)), ""})
	if err := table.Bulk(data); err != nil {
		return fmt.Errorf("table bulk: %w", err)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("table render: %w", err)
	}

	if r.FFMI != nil {
		fmt.Fprintf(w, "\nFFMI: %s  Normalized FFMI: %s\n", formatValue(r.FFMI, opt.Precision), formatValue(r.NormalizedFFMI, opt.Precision))
		if exceedsNatural(r) {
			fmt.Fprintln(w, paint(opt, noteColor, ffmiNote))
		}
	}

	if rows := averageRows(r.Averages, opt.Precision); len(rows) > 0 {
		fmt.Fprintln(w)
		avg := tablewriter.NewWriter(w)
		avg.Header([]string{"Site", "Average", "Unit"})
		avg.Configure(func(cfg *tablewriter.Config) {
			cfg.Row.Alignment.Global = tw.AlignRight
		})
		var data [][]string
		for _, row := range rows {
			data = append(data, []string{row.name, row.value, row.unit})
		}
		if err := avg.Bulk(data); err != nil {
			return fmt.Errorf("table bulk: %w", err)
		}
		if err := avg.Render(); err != nil {
			return fmt.Errorf("table render: %w", err)
		}
	}

	if len(r.Advisories) > 0 {
		fmt.Fprintln(w, "\nAdvisories:")
		for _, a := range r.Advisories {
			fmt.Fprintf(w, "  - %s\n", a)
		}
	}
	return nil
}

func writeBatchText(w io.Writer, entries []Entry, sum Summary, opt Options) error {
	table := tablewriter.NewWriter(w)
	headers := []string{"#", "Record", "Gender"}
	for _, m := range methods() {
		headers = append(headers, m.Label())
	}
	headers = append(headers, "Adjusted", "Outlier", "Norm FFMI")
	table.Header(headers)
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for i, e := range entries {
		r := e.Result
		row := []string{strconv.Itoa(i + 1), e.Label, string(r.Gender)}
		for _, m := range methods() {
			row = append(row, formatPercent(r.Estimates.Get(m), opt.Precision))
		}
		outlier := ""
		if r.Outlier != "" {
			outlier = paint(opt, outlierColor, r.Outlier.Label())
		}
		row = append(row, formatPercent(r.Adjusted, opt.Precision), outlier, formatValue(r.NormalizedFFMI, opt.Precision))
		data = append(data, row)
	}
	if err := table.Bulk(data); err != nil {
		return fmt.Errorf("table bulk: %w", err)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("table render: %w", err)
	}

	fmt.Fprintf(w, "\nRecords: %d  With estimate: %d\n", sum.Records, sum.WithEstimate)
	fmt.Fprintf(w, "Mean adjusted body fat: %s", formatPercent(sum.MeanAdjusted, opt.Precision))
	if sum.StdDevAdjusted != nil {
		fmt.Fprintf(w, " (sd %s)", formatValue(sum.StdDevAdjusted, opt.Precision))
	}
	fmt.Fprintf(w, "\nMean normalized FFMI: %s\n", formatValue(sum.MeanNormalizedFFMI, opt.Precision))
	return nil
}
