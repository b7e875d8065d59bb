package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/san-kum/oscheck/internal/config"
	"github.com/san-kum/oscheck/internal/dataset"
	"github.com/san-kum/oscheck/internal/export"
	"github.com/san-kum/oscheck/internal/report"
	"github.com/san-kum/oscheck/internal/tui"
	"github.com/san-kum/oscheck/internal/validate"
	"github.com/san-kum/oscheck/internal/viz"
)

var (
	dataDir    string
	configFile string

	phaseWidth  int
	phaseHeight int
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "oscheck",
		Short:        "validate damped harmonic oscillator trajectories",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "directory with resultados_b*.dat files")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")

	validateCmd := &cobra.Command{
		Use:   "validate [b...]",
		Short: "run every check across the coefficient sweep",
		Long: "Run the full check pipeline for each damping coefficient.\n" +
			"A coefficient whose data file is missing is skipped; the rest\n" +
			"still run and report.",
		RunE: runValidate,
	}

	filesCmd := &cobra.Command{
		Use:   "files",
		Short: "strict check that every data file exists",
		RunE:  runFiles,
	}

	classifyCmd := &cobra.Command{
		Use:   "classify [b...]",
		Short: "report the damping regime per coefficient",
		RunE:  runClassify,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [b]",
		Short: "terminal plots for one coefficient",
		Args:  cobra.ExactArgs(1),
		RunE:  runPlot,
	}
	plotCmd.Flags().IntVar(&phaseWidth, "width", 70, "phase portrait width")
	plotCmd.Flags().IntVar(&phaseHeight, "height", 20, "phase portrait height")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [b]",
		Short: "export a trajectory and its check results as json",
		Args:  cobra.ExactArgs(1),
		RunE:  runExportJSON,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [b]",
		Short: "export a trajectory as csv",
		Args:  cobra.ExactArgs(1),
		RunE:  runExportCSV,
	}

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the default config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return config.Save(args[0], config.Default())
		},
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive results browser",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return tui.Run(cfg)
		},
	}

	rootCmd.AddCommand(validateCmd, filesCmd, classifyCmd, plotCmd, exportJSONCmd, exportCSVCmd, initCmd, tuiCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	return cfg, nil
}

// coefficients parses positional b arguments, defaulting to the
// configured sweep set.
func coefficients(cfg *config.Config, args []string) ([]float64, error) {
	if len(args) == 0 {
		return cfg.Coefficients, nil
	}
	bs := make([]float64, 0, len(args))
	for _, a := range args {
		b, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("bad damping coefficient %q", a)
		}
		bs = append(bs, b)
	}
	return bs, nil
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	bs, err := coefficients(cfg, args)
	if err != nil {
		return err
	}
	cfg.Coefficients = bs

	runner := validate.NewRunner(cfg)
	rep := report.New(os.Stdout)
	rep.Header(cfg)

	all := runner.Constants()
	rep.Results(all)
	fmt.Println()

	outcomes, err := runner.Sweep()
	if err != nil {
		return err
	}
	for _, o := range outcomes {
		if o.Skipped {
			rep.Skip(o.B, o.Reason)
			continue
		}
		fmt.Printf("b=%.2f:\n", o.B)
		rep.Results(o.Results)
		fmt.Println()
		all = append(all, o.Results...)
	}

	rep.Summary(all)

	if report.Failed(all) {
		return fmt.Errorf("validation failed")
	}
	return nil
}

func runFiles(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := validate.CheckFilesExist(cfg); err != nil {
		return err
	}
	fmt.Printf("all %d data files present in %s\n", len(cfg.Coefficients), cfg.DataDir)
	return nil
}

func runClassify(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	bs, err := coefficients(cfg, args)
	if err != nil {
		return err
	}

	classifier := validate.NewRegimeClassifier(cfg)
	for _, b := range bs {
		tr, err := dataset.LoadCoefficient(cfg.DataDir, cfg.FilePattern, b)
		if err != nil {
			fmt.Printf("b=%.2f: skipped (%v)\n", b, err)
			continue
		}
		regime, oscillations := classifier.Classify(tr.X)
		fmt.Printf("b=%.2f: %d oscillations -> %s\n", b, oscillations, regime)
	}
	return nil
}

func loadOne(arg string) (*config.Config, *dataset.Trajectory, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	b, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return nil, nil, fmt.Errorf("bad damping coefficient %q", arg)
	}
	tr, err := dataset.LoadCoefficient(cfg.DataDir, cfg.FilePattern, b)
	if err != nil {
		return nil, nil, err
	}
	return cfg, tr, nil
}

func runPlot(cmd *cobra.Command, args []string) error {
	_, tr, err := loadOne(args[0])
	if err != nil {
		return err
	}
	viz.Series(os.Stdout, tr)
	viz.PhasePortrait(os.Stdout, tr, phaseWidth, phaseHeight)
	return nil
}

func runExportJSON(cmd *cobra.Command, args []string) error {
	cfg, tr, err := loadOne(args[0])
	if err != nil {
		return err
	}
	results := validate.NewRunner(cfg).Trajectory(tr)
	return export.JSON(os.Stdout, tr, results)
}

func runExportCSV(cmd *cobra.Command, args []string) error {
	_, tr, err := loadOne(args[0])
	if err != nil {
		return err
	}
	return export.CSV(os.Stdout, tr)
}
