package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	cfgpkg "github.com/Jaron-S/body-fat-calculator/internal/config"
	"github.com/Jaron-S/body-fat-calculator/internal/logger"
	"github.com/Jaron-S/body-fat-calculator/internal/utils"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	cfgFile string
	debug   bool

	// Loaded configuration
	cfg *cfgpkg.Global
	zlog = logger.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "bodyfat",
	Short: "Estimate body-fat percentage from tape and caliper measurements",
	Long: `bodyfat averages repeated tape-measure and skinfold readings, runs the RFM,
U.S. Navy and Jackson & Pollock formulas, reconciles them into one adjusted
estimate and derives the fat-free mass index.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute is the entry point called by main.main()
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.bodyfat/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

// setup loads configuration and builds the logger before any subcommand runs.
func setup(cmd *cobra.Command, args []string) error {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		return err
	}
	cfg = c

	level := cfg.LogLevel
	if debug {
		level = "debug"
	}
	l, err := logger.New(level, cfg.LogFormat)
	if err != nil {
		return err
	}
	zlog = l
	zlog.Debug("config loaded",
		zap.String("file", cfgFile),
		zap.String("default_gender", cfg.DefaultGender),
		zap.Int("precision", cfg.Precision),
		zap.String("output_format", cfg.OutputFormat),
	)
	return nil
}

// defaultProfilesDir resolves and creates the configured profiles directory.
func defaultProfilesDir() (string, error) {
	dir, err := utils.ExpandHome(cfg.ProfilesDir)
	if err != nil {
		return "", err
	}
	if err := utils.EnsureDir(dir); err != nil {
		return "", err
	}
	return dir, nil
}

// outputSettings resolves --format and --precision against the config.
func outputSettings(cmd *cobra.Command, format string, precision int) (string, int, error) {
	if !cmd.Flags().Changed("format") || format == "" {
		format = cfg.OutputFormat
	}
	format = strings.ToLower(format)
	if format == "md" {
		format = "markdown"
	}
	if !cfgpkg.ValidFormat(format) {
		return "", 0, fmt.Errorf("invalid --format: %s (use %s)", format, strings.Join(cfgpkg.Formats, ", "))
	}
	if !cmd.Flags().Changed("precision") {
		precision = cfg.Precision
	}
	if precision < 0 || precision > 4 {
		return "", 0, fmt.Errorf("invalid --precision: %d (use 0-4)", precision)
	}
	return format, precision, nil
}

// writeOutput renders to stdout, or atomically to path when set.
func writeOutput(cmd *cobra.Command, path string, render func(io.Writer) error) error {
	if path == "" {
		return render(cmd.OutOrStdout())
	}
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		return err
	}
	if err := utils.EnsureDir(filepath.Dir(path)); err != nil {
		return fmt.Errorf("ensure output dir: %w", err)
	}
	if err := utils.SafeWriteFile(path, buf.Bytes()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "✓ Wrote report to %s\n", path)
	return nil
}
