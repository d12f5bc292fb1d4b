package cmd

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"

	"github.com/Jaron-S/body-fat-calculator/internal/bodyfat"
	"github.com/Jaron-S/body-fat-calculator/internal/parser"
	"github.com/Jaron-S/body-fat-calculator/internal/report"
	"github.com/Jaron-S/body-fat-calculator/internal/utils"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	batchGender    string
	batchFormat    string
	batchPrecision int
	batchOutput    string
	batchQuiet     bool
)

var batchCmd = &cobra.Command{
	Use:   "batch <files...>",
	Short: "Calculate body fat for every record in JSON, YAML or CSV files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		files := utils.ExpandGlobs(args)
		if len(files) == 0 {
			return fmt.Errorf("no input files matched")
		}
		sort.Strings(files)

		format, precision, err := outputSettings(cmd, batchFormat, batchPrecision)
		if err != nil {
			return err
		}
		// An unusable default leaves gender-less records to fail individually.
		gender, _ := bodyfat.ParseGender(cfg.DefaultGender)
		if batchGender != "" {
			if gender, err = bodyfat.ParseGender(batchGender); err != nil {
				return err
			}
		}

		var entries []report.Entry
		var failed int
		total := len(files)
		for i, path := range files {
			if !batchQuiet {
				fmt.Fprintf(cmd.ErrOrStderr(), "[%d/%d] Processing %s...\n", i+1, total, filepath.Base(path))
			}
			recs, err := parser.ParseFile(path, gender)
			if err != nil {
				failed++
				zlog.Warn("skipping file", zap.String("path", path), zap.Error(err))
				fmt.Fprintf(cmd.ErrOrStderr(), "⚠ Skipped %s: %v\n", path, err)
				continue
			}
			for j, rec := range recs {
				label := rec.Label
				if label == "" {
					label = fmt.Sprintf("%s#%d", filepath.Base(path), j+1)
				}
				entries = append(entries, report.Entry{Label: label, Result: bodyfat.Calculate(rec.Input)})
			}
		}
		if len(entries) == 0 {
			return fmt.Errorf("no records calculated (%d of %d files failed)", failed, total)
		}
		zlog.Info("batch complete", zap.Int("files", total), zap.Int("failed", failed), zap.Int("records", len(entries)))

		opt := report.Options{Format: format, Precision: precision, Color: cfg.Color && batchOutput == ""}
		return writeOutput(cmd, batchOutput, func(w io.Writer) error {
			return report.RenderBatch(w, entries, opt)
		})
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)
	f := batchCmd.Flags()
	f.StringVarP(&batchGender, "gender", "g", "", "gender for records that omit one (default from config)")
	f.StringVarP(&batchFormat, "format", "f", "", "output format: text, markdown, json or csv (default from config)")
	f.IntVar(&batchPrecision, "precision", 1, "decimals for percentages and averages (default from config)")
	f.StringVarP(&batchOutput, "output", "o", "", "write the report to a file instead of stdout")
	f.BoolVarP(&batchQuiet, "quiet", "q", false, "suppress progress output")
}
