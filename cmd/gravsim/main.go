package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/celmech/gravsim/internal/body"
	"github.com/celmech/gravsim/internal/config"
	"github.com/celmech/gravsim/internal/export"
	"github.com/celmech/gravsim/internal/force"
	"github.com/celmech/gravsim/internal/integrators"
	"github.com/celmech/gravsim/internal/metrics"
	"github.com/celmech/gravsim/internal/scenario"
	"github.com/celmech/gravsim/internal/sim"
	"github.com/celmech/gravsim/internal/viz"
)

var (
	dt         float64
	duration   float64
	gravity    float64
	epsilon    float64
	theta      float64
	bodies     int
	seed       int64
	sample     int
	forceName  string
	integName  string
	configFile string
	preset     string
	jsonPath   string
	csvPath    string
	svgPath    string
	verbose    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gravsim",
		Short: "2d gravitational n-body simulator",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			} else {
				logrus.SetLevel(logrus.WarnLevel)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	runCmd := &cobra.Command{
		Use:   "run [scenario]",
		Short: "run a simulation",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSimulation,
	}
	addRunFlags(runCmd)
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	runCmd.Flags().StringVar(&jsonPath, "json", "", "write run data to JSON file")
	runCmd.Flags().StringVar(&csvPath, "csv", "", "write trajectory to CSV file")
	runCmd.Flags().StringVar(&svgPath, "svg", "", "write body 0 trajectory to SVG file")

	liveCmd := &cobra.Command{
		Use:   "live [scenario]",
		Short: "run with live terminal visualization",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	addRunFlags(liveCmd)

	plotCmd := &cobra.Command{
		Use:   "plot [scenario]",
		Short: "run and plot trajectories in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  plotRun,
	}
	addRunFlags(plotCmd)

	compareCmd := &cobra.Command{
		Use:   "compare [scenario] [integrator...]",
		Short: "compare integrators on the same initial conditions",
		Args:  cobra.MinimumNArgs(1),
		RunE:  compareIntegrators,
	}
	addRunFlags(compareCmd)

	benchCmd := &cobra.Command{
		Use:   "bench [scenario]",
		Short: "benchmark force model and integrator",
		Args:  cobra.MaximumNArgs(1),
		RunE:  benchRun,
	}
	addRunFlags(benchCmd)

	scenariosCmd := &cobra.Command{
		Use:   "scenarios",
		Short: "list available scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tDESCRIPTION")
			for _, name := range scenario.Names() {
				s, err := scenario.Get(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%s\n", s.Name, s.Description)
			}
			return w.Flush()
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset configurations",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSCENARIO\tFORCE\tINTEGRATOR\tDT\tDURATION\tBODIES")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%g\t%g\t%d\n",
					name, p.Scenario, p.Force, p.Integrator, p.Dt, p.Duration, p.Bodies)
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, plotCmd, compareCmd, benchCmd, scenariosCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	cmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration")
	cmd.Flags().Float64Var(&gravity, "g", config.DefaultG, "gravitational constant")
	cmd.Flags().Float64Var(&epsilon, "eps", config.DefaultEpsilon, "softening length")
	cmd.Flags().Float64Var(&theta, "theta", config.DefaultTheta, "barnes-hut opening angle")
	cmd.Flags().IntVar(&bodies, "bodies", config.DefaultBodies, "body count for generated scenarios")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	cmd.Flags().IntVar(&sample, "sample", 10, "record a frame every N steps")
	cmd.Flags().StringVar(&forceName, "force", "direct", "force model (direct, barneshut)")
	cmd.Flags().StringVar(&integName, "integrator", "leapfrog", "integrator (euler, leapfrog, pefrl, rk8)")
}

// resolveConfig merges preset, config file and flags. Flags that were
// set explicitly win over both.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
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

	if len(args) > 0 {
		cfg.Scenario = args[0]
	}
	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("time") {
		cfg.Duration = duration
	}
	if cmd.Flags().Changed("g") {
		cfg.G = gravity
	}
	if cmd.Flags().Changed("eps") {
		cfg.Epsilon = epsilon
	}
	if cmd.Flags().Changed("theta") {
		cfg.Theta = theta
	}
	if cmd.Flags().Changed("bodies") {
		cfg.Bodies = bodies
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("sample") {
		cfg.Sample = sample
	}
	if cmd.Flags().Changed("force") {
		cfg.Force = forceName
	}
	if cmd.Flags().Changed("integrator") {
		cfg.Integrator = integName
	}

	return cfg, cfg.Validate()
}

type setup struct {
	cfg   *config.Config
	sys   *body.System
	force force.Model
	integ integrators.Integrator
}

func buildSetup(cmd *cobra.Command, args []string) (*setup, error) {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return nil, err
	}

	sc, err := scenario.Get(cfg.Scenario)
	if err != nil {
		return nil, err
	}
	sys, err := sc.Generate(cfg.Bodies, cfg.Seed)
	if err != nil {
		return nil, err
	}

	f, err := force.New(cfg.Force, cfg.G, cfg.Epsilon, cfg.Theta)
	if err != nil {
		return nil, err
	}
	integ, err := integrators.New(cfg.Integrator)
	if err != nil {
		return nil, err
	}

	return &setup{cfg: cfg, sys: sys, force: f, integ: integ}, nil
}

func simConfig(cfg *config.Config) sim.Config {
	return sim.Config{
		Dt:            cfg.Dt,
		Duration:      cfg.Duration,
		G:             cfg.G,
		Epsilon:       cfg.Epsilon,
		SampleEvery:   cfg.Sample,
		ValidateState: true,
	}
}

func runSimulation(cmd *cobra.Command, args []string) error {
	s, err := buildSetup(cmd, args)
	if err != nil {
		return err
	}

	simulator := sim.New(s.force, s.integ)
	simulator.AddMetric(metrics.NewEnergyDrift(s.cfg.G, s.cfg.Epsilon))
	simulator.AddMetric(metrics.NewMomentumDrift())
	simulator.AddMetric(metrics.NewAngularMomentumDrift())

	fmt.Printf("running %s: %d bodies, %s + %s\n", s.cfg.Scenario, s.sys.N(), s.force.Name(), s.integ.Name())
	start := time.Now()

	result, err := simulator.Run(context.Background(), s.sys, simConfig(s.cfg))
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("steps: %d (%.0f steps/sec)\n", result.StepsTaken, float64(result.StepsTaken)/elapsed.Seconds())
	fmt.Printf("energy drift: %.3e\n", result.EnergyDrift)
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6e\n", name, val)
	}
	for _, err := range result.Errors {
		fmt.Printf("warning: %v\n", err)
	}

	meta := export.Meta{
		Force:      s.cfg.Force,
		Integrator: s.cfg.Integrator,
		Scenario:   s.cfg.Scenario,
		Dt:         s.cfg.Dt,
		Duration:   s.cfg.Duration,
	}
	if jsonPath != "" {
		if err := export.JSON(jsonPath, meta, result); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", jsonPath)
	}
	if csvPath != "" {
		if err := export.CSV(csvPath, result); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", csvPath)
	}
	if svgPath != "" {
		svg := export.TrajectoryToSVG(export.BodyTrack(result.Frames, 0), 800, 600, "#00ff00")
		if err := os.WriteFile(svgPath, []byte(svg), 0644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", svgPath)
	}

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	s, err := buildSetup(cmd, args)
	if err != nil {
		return err
	}

	m := viz.NewModel(s.sys, s.force, s.integ, s.cfg.Dt, s.cfg.G, s.cfg.Epsilon, s.cfg.Scenario)
	p := tea.NewProgram(m)
	_, err = p.Run()
	return err
}

func plotRun(cmd *cobra.Command, args []string) error {
	s, err := buildSetup(cmd, args)
	if err != nil {
		return err
	}

	simulator := sim.New(s.force, s.integ)
	result, err := simulator.Run(context.Background(), s.sys, simConfig(s.cfg))
	if err != nil {
		return err
	}

	fmt.Printf("%s: %d frames\n\n", s.cfg.Scenario, len(result.Frames))
	fmt.Println(viz.TrajectoryPlot(result.Frames, 80, 24))
	if chart := viz.EnergyChart(result.Energy, 80, 10); chart != "" {
		fmt.Println(chart)
	}
	return nil
}

func compareIntegrators(cmd *cobra.Command, args []string) error {
	s, err := buildSetup(cmd, args[:1])
	if err != nil {
		return err
	}

	names := args[1:]
	if len(names) == 0 {
		names = integrators.Names()
	}
	integs := make([]integrators.Integrator, 0, len(names))
	for _, name := range names {
		integ, err := integrators.New(name)
		if err != nil {
			return err
		}
		integs = append(integs, integ)
	}

	fmt.Printf("comparing integrators on %s (dt=%g, duration=%g)\n\n", s.cfg.Scenario, s.cfg.Dt, s.cfg.Duration)

	start := time.Now()
	results, err := sim.NewComparison(s.force, integs).Run(context.Background(), s.sys, simConfig(s.cfg))
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "INTEGRATOR\tSTEPS\tENERGY_DRIFT")
	for _, integ := range integs {
		r := results[integ.Name()]
		fmt.Fprintf(w, "%s\t%d\t%.3e\n", integ.Name(), r.StepsTaken, r.EnergyDrift)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("\ntotal wall time: %v\n", elapsed)
	return nil
}

func benchRun(cmd *cobra.Command, args []string) error {
	s, err := buildSetup(cmd, args)
	if err != nil {
		return err
	}

	forces := make([]force.Model, 0, 2)
	for _, name := range []string{"direct", "barneshut"} {
		f, err := force.New(name, s.cfg.G, s.cfg.Epsilon, s.cfg.Theta)
		if err != nil {
			return err
		}
		forces = append(forces, f)
	}
	dts := []float64{0.01, 0.001}

	fmt.Printf("benchmarking %s on %s (%d bodies)\n\n",
		s.integ.Name(), s.cfg.Scenario, s.sys.N())

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FORCE\tDT\tSTEPS\tTIME\tSTEPS/SEC")

	for _, f := range forces {
		for _, step := range dts {
			cfg := simConfig(s.cfg)
			cfg.Dt = step
			cfg.Duration = 1.0
			cfg.SampleEvery = 1 << 30 // timing only

			simulator := sim.New(f, s.integ)
			start := time.Now()
			result, err := simulator.Run(context.Background(), s.sys.Clone(), cfg)
			if err != nil {
				return err
			}
			elapsed := time.Since(start)

			fmt.Fprintf(w, "%s\t%g\t%d\t%v\t%.0f\n",
				f.Name(), step, result.StepsTaken, elapsed.Round(time.Microsecond),
				float64(result.StepsTaken)/elapsed.Seconds())
		}
	}

	return w.Flush()
}
