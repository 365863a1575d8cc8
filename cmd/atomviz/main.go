package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/atomviz/internal/anim"
	"github.com/san-kum/atomviz/internal/config"
	"github.com/san-kum/atomviz/internal/export"
	"github.com/san-kum/atomviz/internal/program"
	"github.com/san-kum/atomviz/internal/storage"
	"github.com/san-kum/atomviz/internal/tui"
	"github.com/san-kum/atomviz/internal/viz"
)

var (
	machineFile string
	visualFile  string
	dataDir     string

	atTime    float64
	fps       float64
	format    string
	outPath   string
	atomIndex int
	samples   int
	verbose   bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "atomviz",
		Short: "neutral-atom program animator",
	}

	rootCmd.PersistentFlags().StringVar(&machineFile, "machine", "", "machine config file (yaml) or builtin preset name")
	rootCmd.PersistentFlags().StringVar(&visualFile, "visual", "", "visual config file (yaml)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".atomviz", "data directory")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "report unknown atom/zone references")

	playCmd := &cobra.Command{
		Use:   "play [program]",
		Short: "play the animation interactively",
		Args:  cobra.ExactArgs(1),
		RunE:  runPlay,
	}

	renderCmd := &cobra.Command{
		Use:   "render [program]",
		Short: "render a single frame to the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  runRender,
	}
	renderCmd.Flags().Float64Var(&atTime, "time", 0, "time to sample")

	exportCmd := &cobra.Command{
		Use:   "export [program]",
		Short: "export sampled frames (svg, csv, json)",
		Args:  cobra.ExactArgs(1),
		RunE:  runExport,
	}
	exportCmd.Flags().StringVar(&format, "format", "csv", "output format: svg, csv, json")
	exportCmd.Flags().StringVar(&outPath, "out", "", "output file (csv/json) or directory (svg)")
	exportCmd.Flags().Float64Var(&fps, "fps", 30, "sampling frame rate")

	plotCmd := &cobra.Command{
		Use:   "plot [program]",
		Short: "plot one atom's trajectory",
		Args:  cobra.ExactArgs(1),
		RunE:  runPlot,
	}
	plotCmd.Flags().IntVar(&atomIndex, "atom", 0, "atom index")
	plotCmd.Flags().IntVar(&samples, "samples", 200, "number of samples")

	infoCmd := &cobra.Command{
		Use:   "info [program]",
		Short: "show program summary",
		Args:  cobra.ExactArgs(1),
		RunE:  runInfo,
	}

	saveCmd := &cobra.Command{
		Use:   "save [program]",
		Short: "sample the animation and save it as a run",
		Args:  cobra.ExactArgs(1),
		RunE:  runSave,
	}
	saveCmd.Flags().Float64Var(&fps, "fps", 30, "sampling frame rate")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  runList,
	}

	machinesCmd := &cobra.Command{
		Use:   "machines",
		Short: "list builtin machine presets",
		RunE:  runMachines,
	}

	rootCmd.AddCommand(playCmd, renderCmd, exportCmd, plotCmd, infoCmd, saveCmd, listCmd, machinesCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// load reads configs and the program and constructs the animator.
func load(programPath string) (*anim.Animator, program.Instructions, error) {
	machine := config.DefaultMachine()
	if machineFile != "" {
		if preset := config.GetPreset(machineFile); preset != nil {
			machine = preset
		} else {
			var err error
			if machine, err = config.LoadMachine(machineFile); err != nil {
				return nil, program.Instructions{}, err
			}
		}
	}
	visual := config.DefaultVisual()
	if visualFile != "" {
		var err error
		if visual, err = config.LoadVisual(visualFile); err != nil {
			return nil, program.Instructions{}, err
		}
	}
	ins, err := program.Load(programPath)
	if err != nil {
		return nil, program.Instructions{}, err
	}

	var opts []anim.Option
	if verbose {
		opts = append(opts, anim.WithDiagnostics(func(kind, id string) {
			fmt.Fprintf(os.Stderr, "warning: unknown %s %q\n", kind, id)
		}))
	}
	return anim.New(machine, visual, ins, opts...), ins, nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	a, _, err := load(args[0])
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(tui.NewPlayer(a), tea.WithAltScreen()).Run()
	return err
}

func runRender(cmd *cobra.Command, args []string) error {
	a, _, err := load(args[0])
	if err != nil {
		return err
	}
	renderer := viz.NewRenderer(a.Config(), 72, 22)
	fmt.Println(renderer.Frame(a.State(atTime)))
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	a, _, err := load(args[0])
	if err != nil {
		return err
	}

	switch format {
	case "svg":
		dir := outPath
		if dir == "" {
			dir = "frames"
		}
		n, err := export.WriteSVGFrames(cmd.Context(), a, dir, export.FrameOptions{
			FPS:    fps,
			Width:  800,
			Height: 600,
		})
		if err != nil {
			return err
		}
		fmt.Printf("wrote %d frames to %s\n", n, dir)
		return nil
	case "csv", "json":
		out := os.Stdout
		if outPath != "" {
			f, err := os.Create(outPath)
			if err != nil {
				return err
			}
			defer f.Close()
			out = f
		}
		if format == "csv" {
			return export.WriteCSV(out, a, fps)
		}
		return export.WriteJSON(out, a, fps)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func runPlot(cmd *cobra.Command, args []string) error {
	a, _, err := load(args[0])
	if err != nil {
		return err
	}
	graph, err := viz.TrajectoryPlot(a, atomIndex, samples, 70, 10)
	if err != nil {
		return err
	}
	fmt.Println(graph)
	return nil
}

func runInfo(cmd *cobra.Command, args []string) error {
	a, ins, err := load(args[0])
	if err != nil {
		return err
	}

	steps := 0
	for _, entry := range ins.Timeline {
		steps += len(entry.Group)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "targets:\t%s\n", strings.Join(ins.Targets, ", "))
	fmt.Fprintf(w, "atoms:\t%d\n", a.Atoms())
	fmt.Fprintf(w, "instruction groups:\t%d\n", len(ins.Timeline))
	fmt.Fprintf(w, "instructions:\t%d\n", steps)
	fmt.Fprintf(w, "duration:\t%.2f\n", a.Duration())
	return w.Flush()
}

func runSave(cmd *cobra.Command, args []string) error {
	a, _, err := load(args[0])
	if err != nil {
		return err
	}
	store := storage.New(dataDir)
	if err := store.Init(); err != nil {
		return err
	}
	name := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
	runID, err := store.Save(name, machineFile, a, fps)
	if err != nil {
		return err
	}
	fmt.Printf("saved run %s\n", runID)
	return nil
}

func runMachines(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tNAME\tPROFILE\tZONES")
	for _, name := range config.ListPresets() {
		m := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", name, m.Name, m.Movement.Profile, len(m.Zones))
	}
	return w.Flush()
}

func runList(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	runs, err := store.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no saved runs")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPROGRAM\tATOMS\tDURATION\tFPS\tTIME")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%.2f\t%.0f\t%s\n",
			r.ID, r.Program, r.Atoms, r.Duration, r.FPS, r.Timestamp.Format("2006-01-02 15:04"))
	}
	return w.Flush()
}
