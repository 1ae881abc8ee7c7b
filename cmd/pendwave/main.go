package main

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/pendwave/internal/config"
	"github.com/san-kum/pendwave/internal/gui"
	"github.com/san-kum/pendwave/internal/viz"
	"github.com/san-kum/pendwave/internal/wave"
)

var (
	configFile string
	preset     string
	count      int
	period     float64
	baseOsc    int
	amplitude  float64
	width      int
	height     int
	// sample
	sampleAt float64
	// plot
	plotSeconds float64
	plotWidth   int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pendwave",
		Short: "pendulum wave simulator",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return gui.Run(cfg)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.IntVar(&count, "count", config.DefaultCount, "number of pendulums")
	pf.Float64Var(&period, "period", config.DefaultTotalPeriodS, "total wave cycle (s)")
	pf.IntVar(&baseOsc, "base", config.DefaultBaseOscillations, "oscillations of the slowest pendulum per cycle")
	pf.Float64Var(&amplitude, "amplitude", config.DefaultMaxAmplitudeDeg, "swing amplitude (deg)")
	pf.IntVar(&width, "width", config.DefaultScreenWidth, "screen width (px)")
	pf.IntVar(&height, "height", config.DefaultScreenHeight, "screen height (px)")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "run the windowed simulation",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return gui.Run(cfg)
		},
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run the simulation in the terminal",
		RunE:  runLive,
	}

	sampleCmd := &cobra.Command{
		Use:   "sample",
		Short: "print per-pendulum parameters and positions at a time",
		RunE:  runSample,
	}
	sampleCmd.Flags().Float64Var(&sampleAt, "at", 0, "simulated time to sample (s)")

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "plot angle traces over the wave cycle",
		RunE:  runPlot,
	}
	plotCmd.Flags().Float64Var(&plotSeconds, "seconds", 0, "trace length (default: one full cycle)")
	plotCmd.Flags().IntVar(&plotWidth, "plot-width", 80, "plot width (chars)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	rootCmd.AddCommand(guiCmd, liveCmd, sampleCmd, plotCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig resolves the startup configuration: defaults, then preset,
// then config file, then explicit flags. A flag the user actually set
// always wins.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("count") {
		cfg.Count = count
	}
	if flags.Changed("period") {
		cfg.TotalPeriodS = period
	}
	if flags.Changed("base") {
		cfg.BaseOscillations = baseOsc
	}
	if flags.Changed("amplitude") {
		cfg.MaxAmplitudeDeg = amplitude
	}
	if flags.Changed("width") {
		cfg.ScreenWidth = width
	}
	if flags.Changed("height") {
		cfg.ScreenHeight = height
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	m, err := viz.NewModel(cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func runSample(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	field, err := wave.NewField(cfg.Tuning())
	if err != nil {
		return err
	}
	field.Update(sampleAt)

	fmt.Printf("t = %.3fs, pivot (%.1f, %.1f)\n\n", sampleAt, field.Pivot.X, field.Pivot.Y)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "IDX\tPERIOD\tFREQ\tLENGTH\tANGLE\tX\tY\tCOLOR")

	for i := range field.Oscillators {
		o := &field.Oscillators[i]
		fmt.Fprintf(w, "%d\t%.4fs\t%.4f\t%.1fpx\t%+.4f\t%.1f\t%.1f\t#%02x%02x%02x\n",
			i,
			2*math.Pi/o.AngularFrequency,
			o.AngularFrequency,
			o.VisualLength,
			o.CurrentAngle,
			o.Position.X,
			o.Position.Y,
			o.Color.R, o.Color.G, o.Color.B,
		)
	}

	return w.Flush()
}

func runPlot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	tuning := cfg.Tuning()
	if err := tuning.Validate(); err != nil {
		return err
	}
	if tuning.Count == 0 {
		fmt.Println("no pendulums to plot")
		return nil
	}

	seconds := plotSeconds
	if seconds <= 0 {
		seconds = tuning.TotalPeriodS
	}

	// First, middle and last pendulum show the phase spread best.
	indices := []int{0}
	if tuning.Count > 2 {
		indices = append(indices, tuning.Count/2)
	}
	if tuning.Count > 1 {
		indices = append(indices, tuning.Count-1)
	}

	samples := plotWidth * 4
	for _, idx := range indices {
		p := tuning.Derive(idx)
		var o wave.Oscillator
		o.Setup(p, tuning)

		data := make([]float64, samples)
		for s := 0; s < samples; s++ {
			o.Update(seconds * float64(s) / float64(samples-1))
			data[s] = o.CurrentAngle
		}

		graph := asciigraph.Plot(data,
			asciigraph.Height(8),
			asciigraph.Width(plotWidth),
			asciigraph.Caption(fmt.Sprintf("pendulum %d angle over %.0fs", idx, seconds)),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}
