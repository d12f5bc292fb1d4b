package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/Jaron-S/body-fat-calculator/internal/bodyfat"
	"github.com/Jaron-S/body-fat-calculator/internal/parser"
	"github.com/Jaron-S/body-fat-calculator/internal/profile"
	"github.com/Jaron-S/body-fat-calculator/internal/report"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	calcGender    string
	calcSites     = map[bodyfat.Site]*[]string{}
	calcAge       string
	calcWeight    string
	calcInput     string
	calcFormat    string
	calcPrecision int
	calcOutput    string
	calcProfile   string
	calcLast      bool
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Calculate body fat from measurements given as flags or a file",
	Example: `  bodyfat calc --gender male --height 70 --waist 34 --waist 34.5 --neck 15 --weight 180
  bodyfat calc --input measurements.yaml --format json
  bodyfat calc --profile alice --last`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, precision, err := outputSettings(cmd, calcFormat, calcPrecision)
		if err != nil {
			return err
		}
		opt := report.Options{Format: format, Precision: precision, Color: cfg.Color && calcOutput == ""}

		var p *profile.Profile
		if calcProfile != "" {
			if err := profile.ValidName(calcProfile); err != nil {
				return err
			}
			base, err := defaultProfilesDir()
			if err != nil {
				return err
			}
			p, err = profile.Load(profile.Dir(base, calcProfile))
			if err != nil {
				if errors.Is(err, profile.ErrNotFound) {
					return fmt.Errorf("profile %q does not exist (run: bodyfat profile init %s)", calcProfile, calcProfile)
				}
				return err
			}
		}

		records, err := calcRecords(cmd, p)
		if err != nil {
			return err
		}
		zlog.Debug("input decoded", zap.String("source", inputSource()), zap.Int("records", len(records)))

		entries := make([]report.Entry, len(records))
		for i, rec := range records {
			res := bodyfat.Calculate(rec.Input)
			zlog.Debug("calculated",
				zap.String("label", rec.Label),
				zap.String("gender", string(res.Gender)),
				zap.Any("estimates", res.Estimates),
				zap.Any("adjusted", res.Adjusted),
				zap.String("outlier", string(res.Outlier)),
			)
			for _, a := range res.Advisories {
				zlog.Debug("method unavailable", zap.String("label", rec.Label), zap.String("advisory", a))
			}
			entries[i] = report.Entry{Label: rec.Label, Result: res}
		}

		if p != nil && !calcLast {
			if len(records) != 1 {
				return fmt.Errorf("--profile stores one measurement at a time; %s holds %d records", calcInput, len(records))
			}
			snap := p.AddSnapshot(records[0].Input, entries[0].Result)
			if err := p.Save(); err != nil {
				return err
			}
			zlog.Info("snapshot saved", zap.String("profile", p.Name), zap.String("id", snap.ID))
			fmt.Fprintf(cmd.ErrOrStderr(), "✓ Saved snapshot %s to profile %s\n", snap.ID, p.Name)
		}

		return writeOutput(cmd, calcOutput, func(w io.Writer) error {
			if len(entries) == 1 {
				return report.Render(w, entries[0], opt)
			}
			return report.RenderBatch(w, entries, opt)
		})
	},
}

// calcRecords collects the inputs from --last, --input or the measurement flags.
func calcRecords(cmd *cobra.Command, p *profile.Profile) ([]parser.Record, error) {
	gender, err := resolveGender(p)
	if err != nil {
		return nil, err
	}
	switch {
	case calcLast:
		if p == nil {
			return nil, errors.New("--last requires --profile")
		}
		if calcInput != "" || measurementFlagsSet(cmd) {
			return nil, errors.New("--last cannot be combined with --input or measurement flags")
		}
		snap, err := p.Last()
		if err != nil {
			return nil, err
		}
		return []parser.Record{{Label: p.Name, Input: snap.Input}}, nil
	case calcInput != "":
		if measurementFlagsSet(cmd) {
			return nil, errors.New("--input cannot be combined with measurement flags")
		}
		recs, err := parser.ParseFile(calcInput, gender)
		if err != nil {
			return nil, err
		}
		return recs, nil
	}

	if !measurementFlagsSet(cmd) {
		return nil, errors.New("no measurements given (use flags such as --waist, or --input <file>)")
	}
	in := bodyfat.Input{Gender: gender, Age: calcAge, Weight: calcWeight}
	for _, site := range bodyfat.Sites {
		vals := *calcSites[site]
		if len(vals) > bodyfat.MaxReadings {
			return nil, fmt.Errorf("--%s accepts at most %d readings, got %d", site, bodyfat.MaxReadings, len(vals))
		}
		if len(vals) > 0 {
			in.SetReadings(site, append(bodyfat.Readings{}, vals...))
		}
	}
	label := ""
	if p != nil {
		label = p.Name
	}
	return []parser.Record{{Label: label, Input: in}}, nil
}

func inputSource() string {
	switch {
	case calcLast:
		return "profile"
	case calcInput != "":
		return calcInput
	}
	return "flags"
}

// resolveGender picks --gender, then the profile default, then the config default.
func resolveGender(p *profile.Profile) (bodyfat.Gender, error) {
	if calcGender != "" {
		return bodyfat.ParseGender(calcGender)
	}
	if p != nil && p.DefaultGender != "" {
		return p.DefaultGender, nil
	}
	return bodyfat.ParseGender(cfg.DefaultGender)
}

func measurementFlagsSet(cmd *cobra.Command) bool {
	f := cmd.Flags()
	if f.Changed("age") || f.Changed("weight") {
		return true
	}
	for _, site := range bodyfat.Sites {
		if f.Changed(string(site)) {
			return true
		}
	}
	return false
}

func init() {
	rootCmd.AddCommand(calcCmd)
	f := calcCmd.Flags()
	f.StringVarP(&calcGender, "gender", "g", "", "male or female (default from profile or config)")
	for _, site := range bodyfat.Sites {
		vals := new([]string)
		calcSites[site] = vals
		f.StringArrayVar(vals, string(site), nil, fmt.Sprintf("%s reading in %s (repeat up to %d times)", site, site.Unit(), bodyfat.MaxReadings))
	}
	f.StringVar(&calcAge, "age", "", "age in years")
	f.StringVar(&calcWeight, "weight", "", "weight in pounds")
	f.StringVarP(&calcInput, "input", "i", "", "read measurements from a JSON, YAML or CSV file")
	f.StringVarP(&calcFormat, "format", "f", "", "output format: text, markdown, json or csv (default from config)")
	f.IntVar(&calcPrecision, "precision", 1, "decimals for percentages and averages (default from config)")
	f.StringVarP(&calcOutput, "output", "o", "", "write the report to a file instead of stdout")
	f.StringVarP(&calcProfile, "profile", "p", "", "store the result in this profile")
	f.BoolVar(&calcLast, "last", false, "rerun the last measurement stored in --profile")
}
