package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/Jaron-S/body-fat-calculator/internal/bodyfat"
	"github.com/Jaron-S/body-fat-calculator/internal/profile"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"
)

var (
	profileDescription string
	profileGender      string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage stored measurement profiles",
}

var profileInitCmd = &cobra.Command{
	Use:   "init <name>",
	Short: "Create a new profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if err := profile.ValidName(name); err != nil {
			return err
		}
		base, err := defaultProfilesDir()
		if err != nil {
			return err
		}
		dir := profile.Dir(base, name)
		// Refuse to overwrite an existing profile.
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			if _, err := os.Stat(filepath.Join(dir, "profile.json")); err == nil {
				return fmt.Errorf("profile already exists at %s", dir)
			}
			entries, err := os.ReadDir(dir)
			if err != nil {
				return fmt.Errorf("inspect profile directory: %w", err)
			}
			if len(entries) > 0 {
				return fmt.Errorf("directory %s already exists and is not empty; refusing to initialize profile", dir)
			}
		} else if err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("stat profile directory: %w", err)
		}

		p := profile.New(name, profileDescription, dir)
		if profileGender != "" {
			g, err := bodyfat.ParseGender(profileGender)
			if err != nil {
				return err
			}
			p.DefaultGender = g
		}
		if err := p.Save(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Profile initialized: %s\n", dir)
		return nil
	},
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List profiles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		base, err := defaultProfilesDir()
		if err != nil {
			return err
		}
		ps, err := profile.List(base)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(ps) == 0 {
			fmt.Fprintln(out, "(no profiles)")
			return nil
		}
		for _, p := range ps {
			fmt.Fprintf(out, "- %s (%d snapshots)", p.Name, len(p.Snapshots))
			if p.Description != "" {
				fmt.Fprintf(out, ": %s", p.Description)
			}
			fmt.Fprintln(out)
		}
		return nil
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a profile and its measurement history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := profile.ValidName(args[0]); err != nil {
			return err
		}
		base, err := defaultProfilesDir()
		if err != nil {
			return err
		}
		p, err := profile.Load(profile.Dir(base, args[0]))
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Profile: %s\n", p.Name)
		if p.Description != "" {
			fmt.Fprintf(out, "Description: %s\n", p.Description)
		}
		if p.DefaultGender != "" {
			fmt.Fprintf(out, "Default gender: %s\n", p.DefaultGender)
		}
		fmt.Fprintf(out, "Created: %s\n", p.CreatedAt.Format("2006-01-02 15:04"))
		if len(p.Snapshots) == 0 {
			fmt.Fprintln(out, "(no snapshots)")
			return nil
		}
		fmt.Fprintln(out)

		prec := cfg.Precision
		table := tablewriter.NewWriter(out)
		table.Header([]string{"#", "Recorded", "Adjusted", "Outlier", "Norm FFMI", "ID"})
		table.Configure(func(cfg *tablewriter.Config) {
			cfg.Row.Alignment.Global = tw.AlignRight
		})
		var data [][]string
		for i, s := range p.Snapshots {
			outlier := ""
			if s.Result.Outlier != "" {
				outlier = s.Result.Outlier.Label()
			}
			data = append(data, []string{
				strconv.Itoa(i + 1),
				s.RecordedAt.Format("2006-01-02 15:04"),
				formatOptional(s.Result.Adjusted, prec, "%"),
				outlier,
				formatOptional(s.Result.NormalizedFFMI, prec, ""),
				shortID(s.ID),
			})
		}
		if err := table.Bulk(data); err != nil {
			return fmt.Errorf("table bulk: %w", err)
		}
		return table.Render()
	},
}

func formatOptional(v *float64, prec int, suffix string) string {
	if v == nil {
		return "n/a"
	}
	return strconv.FormatFloat(*v, 'f', prec, 64) + suffix
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileInitCmd, profileListCmd, profileShowCmd)
	profileInitCmd.Flags().StringVarP(&profileDescription, "desc", "d", "", "profile description")
	profileInitCmd.Flags().StringVarP(&profileGender, "gender", "g", "", "default gender for this profile")
}
