package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/alexshd/bigobench"
)

type opts struct {
	size     int
	samples  int
	minDur   time.Duration
	maxLoops int
	analyze  bool
	verbose  bool
}

func main() {
	var o opts

	root := &cobra.Command{
		Use:   "bigobench [workload]...",
		Short: "Empirical runtime-complexity profiler demo",
		Long: `bigobench profiles built-in demonstration workloads: it times each one
across a geometric ladder of input sizes and reports which asymptotic
growth model best fits the measured per-call times.

Available workloads:

` + workloadHelp() + `
With no arguments every workload runs.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(o, args)
		},
	}

	root.Flags().IntVarP(&o.size, "size", "n", 0, "natural input size (0 = workload default)")
	root.Flags().IntVarP(&o.samples, "samples", "s", 7, "number of sizes to sample (min 3)")
	root.Flags().DurationVar(&o.minDur, "min-duration", 50*time.Millisecond, "target batch duration per size")
	root.Flags().IntVar(&o.maxLoops, "max-loops", 256, "batch-doubling cap per size")
	root.Flags().BoolVar(&o.analyze, "analyze", true, "run complexity analysis (off = single-shot timing)")
	root.Flags().BoolVarP(&o.verbose, "verbose", "v", false, "log each sampled size")

	if err := root.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func workloadHelp() string {
	var b strings.Builder
	for _, w := range workloads {
		fmt.Fprintf(&b, "  %-8s %s (expect %s)\n", w.Name, w.Desc, w.Expected)
	}
	return b.String()
}

func run(o opts, names []string) error {
	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: "15:04:05",
		}),
	))

	selected := workloads
	if len(names) > 0 {
		selected = selected[:0:0]
		for _, name := range names {
			w, ok := findWorkload(name)
			if !ok {
				return fmt.Errorf("unknown workload %q", name)
			}
			selected = append(selected, w)
		}
	}

	for _, w := range selected {
		if err := profile(o, w); err != nil {
			return fmt.Errorf("workload %s: %w", w.Name, err)
		}
	}
	return nil
}

func profile(o opts, w workload) error {
	size := o.size
	if size <= 0 {
		size = w.Size
	}

	cfg := bigobench.DefaultConfig()
	cfg.Label = w.Name
	cfg.AnalyzeComplexity = o.analyze
	cfg.SampleCount = o.samples
	cfg.MinSampleDuration = o.minDur
	cfg.MaxLoopsPerSize = o.maxLoops

	slog.Debug("profiling workload", "name", w.Name, "size", size)

	res, err := bigobench.Measure(w.Fn, cfg, w.Args(size)...)
	if err != nil {
		return err
	}

	if len(res.Sizes) > 0 {
		printSeries(res)
		printErrors(res)
		fmt.Printf("selected %s (expected %s)\n\n", res.Complexity, w.Expected)
	}
	return nil
}

func printSeries(res *bigobench.Result) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SIZE\tPER-CALL (s)")
	for i, n := range res.Sizes {
		fmt.Fprintf(tw, "%d\t%.9f\n", n, res.PerCall[i])
	}
	tw.Flush()
	fmt.Println()
}

func printErrors(res *bigobench.Result) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "MODEL\tRMSE")
	for _, label := range bigobench.Candidates() {
		marker := ""
		if label == res.Complexity {
			marker = "  <-- best fit"
		}
		fmt.Fprintf(tw, "%s\t%.3e%s\n", label, res.Errors[label], marker)
	}
	tw.Flush()
	fmt.Println()
}
