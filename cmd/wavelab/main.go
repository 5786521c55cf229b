package main

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"syscall"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/wavelab/internal/config"
	"github.com/san-kum/wavelab/internal/metrics"
	"github.com/san-kum/wavelab/internal/sim"
	"github.com/san-kum/wavelab/internal/storage"
	"github.com/san-kum/wavelab/internal/tui"
	"github.com/san-kum/wavelab/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	steps      int
	frameRate  int
	parallel   bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "wavelab",
		Short: "2D wave equation simulation in your terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLive(cmd, args)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".wavelab", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a simulation headless and store the result",
		RunE:  runSimulation,
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run with the interactive live view",
		RunE:  runLive,
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "run with the plain ANSI renderer",
		RunE:  runTUI,
	}

	for _, c := range []*cobra.Command{runCmd, liveCmd, tuiCmd} {
		c.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
		c.Flags().StringVar(&preset, "preset", "", "use preset configuration")
		c.Flags().IntVar(&steps, "steps", 0, "override step count")
		c.Flags().BoolVar(&parallel, "parallel", false, "parallelize the interior stencil pass")
	}
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")
	tuiCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a run's metric series",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a run's metric series to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a run to JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return storage.New(dataDir).ExportJSONStdout(args[0])
		},
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark stepping across grid sizes",
		RunE:  benchGrids,
	}
	benchCmd.Flags().BoolVar(&parallel, "parallel", false, "parallelize the interior stencil pass")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, tuiCmd, listCmd, plotCmd, exportCSVCmd, exportJSONCmd, benchCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if steps > 0 {
		cfg.Steps = steps
	}
	return cfg, cfg.Validate()
}

func newDriver(cfg *config.Config) (*sim.Driver, error) {
	driver, err := sim.New(cfg)
	if err != nil {
		return nil, err
	}
	driver.SetParallel(parallel)
	driver.AddMetric(metrics.NewAmplitude())
	driver.AddMetric(metrics.NewPeak())
	driver.AddMetric(metrics.NewEnergy(cfg.Dx, cfg.Dy))
	return driver, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	driver, err := newDriver(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("running %dx%d grid for %d steps...\n", cfg.Nx(), cfg.Ny(), cfg.Steps)
	start := time.Now()

	result, err := driver.Run(ctx)
	if err != nil {
		return err
	}

	runID, err := st.Save(driver.Coeffs(), result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", time.Since(start))
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", result.StepsTaken)
	fmt.Println("\nmetrics:")

	names := make([]string, 0, len(result.Metrics))
	for name := range result.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %s: %.6g\n", name, result.Metrics[name])
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	m, err := viz.NewModel(cfg, frameRate)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m)
	_, err = p.Run()
	return err
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	driver, err := sim.New(cfg)
	if err != nil {
		return err
	}
	driver.SetParallel(parallel)

	r := tui.NewLiveRenderer(os.Stdout, frameRate)
	driver.AddObserver(r)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r.Start()
	defer r.Stop()

	if _, err := driver.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	runs, err := storage.New(dataDir).List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tGRID\tSTEPS\tDT")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%dx%d\t%d\t%.4g\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Nx, run.Ny,
			run.Steps,
			run.Dt,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	_, series, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("grid: %dx%d, dt: %.4g\n\n", meta.Nx, meta.Ny, meta.Dt)

	names := make([]string, 0, len(series))
	for name := range series {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if len(series[name]) < 2 {
			continue
		}
		graph := asciigraph.Plot(series[name],
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(name),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	times, series, err := storage.New(dataDir).LoadSeries(args[0])
	if err != nil {
		return err
	}

	names := make([]string, 0, len(series))
	for name := range series {
		names = append(names, name)
	}
	sort.Strings(names)

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write(append([]string{"time"}, names...)); err != nil {
		return err
	}
	for i, t := range times {
		row := []string{strconv.FormatFloat(t, 'g', 12, 64)}
		for _, name := range names {
			v := 0.0
			if i < len(series[name]) {
				v = series[name][i]
			}
			row = append(row, strconv.FormatFloat(v, 'g', 12, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func benchGrids(cmd *cobra.Command, args []string) error {
	sizes := []int{64, 128, 256}
	benchSteps := 200

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "GRID\tSTEPS\tTIME\tSTEPS/SEC")

	for _, n := range sizes {
		cfg := &config.Config{
			Lx: 1.0, Ly: 1.0,
			Dx: 1.0 / float64(n-1), Dy: 1.0 / float64(n-1),
			WaveSpeed: 1.0,
			Steps:     benchSteps,
			Source: config.SourceConfig{
				I: n / 2, J: n / 2, Amplitude: 1.0,
				Width: 0.1, Wavelength: 0.25, Onset: 0.05,
			},
		}

		driver, err := newDriver(cfg)
		if err != nil {
			return err
		}
		driver.SetParallel(parallel)

		start := time.Now()
		result, err := driver.Run(cmd.Context())
		if err != nil {
			return err
		}
		elapsed := time.Since(start)

		fmt.Fprintf(w, "%dx%d\t%d\t%v\t%.0f\n",
			n, n, result.StepsTaken, elapsed,
			float64(result.StepsTaken)/elapsed.Seconds())
	}
	return w.Flush()
}
