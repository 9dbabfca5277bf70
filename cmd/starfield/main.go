package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/starfield/internal/config"
	"github.com/san-kum/starfield/internal/field"
	"github.com/san-kum/starfield/internal/gui"
	"github.com/san-kum/starfield/internal/metrics"
	"github.com/san-kum/starfield/internal/viz"
)

var (
	configFile string
	preset     string
	width      int
	height     int
	duration   float64
	sampleRate float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "starfield",
		Short: "generative spiral display",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return gui.Run(cfg)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use a named preset")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "open the display window",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return gui.Run(cfg)
		},
	}
	guiCmd.Flags().IntVar(&width, "width", config.DefaultWidth, "window width")
	guiCmd.Flags().IntVar(&height, "height", config.DefaultHeight, "window height")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run the display in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return viz.Run(cfg)
		},
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run the simulation headless and report metrics",
		RunE:  runHeadless,
	}
	runCmd.Flags().Float64Var(&duration, "time", 30.0, "simulated seconds")

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "plot retained stars and spawn-angle velocity over time",
		RunE:  plotRun,
	}
	plotCmd.Flags().Float64Var(&duration, "time", 30.0, "simulated seconds")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv",
		Short: "stream sampled star states to stdout as CSV",
		RunE:  exportCSV,
	}
	exportCSVCmd.Flags().Float64Var(&duration, "time", 10.0, "simulated seconds")
	exportCSVCmd.Flags().Float64Var(&sampleRate, "sample-rate", 10.0, "samples per simulated second")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark the renderer across window sizes",
		RunE:  benchRenderer,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			names := config.ListPresets()
			sort.Strings(names)
			for _, name := range names {
				fmt.Println(name)
			}
		},
	}

	rootCmd.AddCommand(guiCmd, liveCmd, runCmd, plotCmd, exportCSVCmd, benchCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig layers preset, config file, and command-line flags, in that
// order of increasing precedence.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			names := config.ListPresets()
			sort.Strings(names)
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, names)
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("width") {
		cfg.Window.Width = width
	}
	if cmd.Flags().Changed("height") {
		cfg.Window.Height = height
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// headless advances a fresh world for the given simulated duration against
// the configured window bounds, calling observe after every tick.
func headless(cfg *config.Config, seconds float64, observe func(w *field.World)) *field.World {
	w := field.NewWorld(cfg.FieldParams())
	bounds := field.CenteredBounds(float64(cfg.Window.Width), float64(cfg.Window.Height))
	ticks := int(seconds * float64(cfg.Sim.TicksPerSecond))
	for i := 0; i < ticks; i++ {
		w.Advance(bounds)
		if observe != nil {
			observe(w)
		}
	}
	return w
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ms := metrics.Defaults()
	fmt.Printf("running %.1fs of simulated time...\n", duration)
	start := time.Now()
	w := headless(cfg, duration, func(w *field.World) {
		for _, m := range ms {
			m.Observe(w)
		}
	})
	elapsed := time.Since(start)

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("ticks: %d\n", w.Ticks)
	fmt.Printf("spawned: %d\n", w.Spawned)
	fmt.Println("\nmetrics:")

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, m := range ms {
		fmt.Fprintf(tw, "  %s\t%.4f\n", m.Name(), m.Value())
	}
	return tw.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	var counts, angleVels []float64
	headless(cfg, duration, func(w *field.World) {
		counts = append(counts, float64(len(w.Stars)))
		angleVels = append(angleVels, w.AngleVel)
	})
	if len(counts) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Println(asciigraph.Plot(downsample(counts, 400),
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("stars retained"),
	))
	fmt.Println()
	fmt.Println(asciigraph.Plot(downsample(angleVels, 400),
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("spawn-angle velocity (rad/tick)"),
	))
	return nil
}

// downsample thins data to at most n points, keeping every k-th sample.
func downsample(data []float64, n int) []float64 {
	if len(data) <= n {
		return data
	}
	step := len(data) / n
	out := make([]float64, 0, n)
	for i := 0; i < len(data); i += step {
		out = append(out, data[i])
	}
	return out
}

func exportCSV(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if sampleRate <= 0 {
		return fmt.Errorf("sample-rate must be positive, got %f", sampleRate)
	}
	every := int(float64(cfg.Sim.TicksPerSecond) / sampleRate)
	if every < 1 {
		every = 1
	}

	cw := csv.NewWriter(os.Stdout)
	defer cw.Flush()
	if err := cw.Write([]string{"time", "star", "x", "y", "r", "g", "b"}); err != nil {
		return err
	}

	var writeErr error
	headless(cfg, duration, func(w *field.World) {
		if writeErr != nil || w.Ticks%int64(every) != 0 {
			return
		}
		now := w.Now()
		for i, s := range w.Stars {
			c := s.ColorAt(now)
			row := []string{
				strconv.FormatFloat(now, 'f', 4, 64),
				strconv.Itoa(i),
				strconv.FormatFloat(s.Pos.X, 'f', 4, 64),
				strconv.FormatFloat(s.Pos.Y, 'f', 4, 64),
				strconv.FormatFloat(c.R, 'f', 4, 64),
				strconv.FormatFloat(c.G, 'f', 4, 64),
				strconv.FormatFloat(c.B, 'f', 4, 64),
			}
			if err := cw.Write(row); err != nil {
				writeErr = err
				return
			}
		}
	})
	return writeErr
}

func benchRenderer(cmd *cobra.Command, args []string) error {
	const iters = 200
	opts := field.DefaultOptions()
	opts.Secondary = true

	fmt.Println("benchmarking renderer (lines mode, both connectors)")
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "STARS\tPRIMITIVES\tITERS\tTOTAL\tPER-FRAME")

	for _, n := range []int{50, 100, 200, 400, 800} {
		stars := syntheticSpiral(n)

		prims := field.Render(stars, 0, opts)
		start := time.Now()
		for i := 0; i < iters; i++ {
			field.Render(stars, 0, opts)
		}
		elapsed := time.Since(start)

		fmt.Fprintf(tw, "%d\t%d\t%d\t%v\t%v\n",
			n, len(prims), iters, elapsed, elapsed/iters)
	}
	return tw.Flush()
}

// syntheticSpiral lays n stars on an Archimedean spiral, the same shape the
// live simulation settles into.
func syntheticSpiral(n int) []field.Star {
	w := field.NewWorld(field.DefaultParams())
	w.AngleVel = 0.3
	bounds := field.CenteredBounds(1e6, 1e6)
	for int64(len(w.Stars)) < int64(n) {
		w.Advance(bounds)
	}
	return w.Stars[:n]
}
