package bigobench

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"runtime"
	"strings"
	"time"
)

// Config controls timing and analysis.
type Config struct {
	// Label tags the report line (default "Elapsed").
	Label string

	// AnalyzeComplexity enables the sized sampling sweep and model fit.
	AnalyzeComplexity bool

	// SampleCount is how many sizes the sweep samples (default 7,
	// clamped to at least 3).
	SampleCount int

	// MinSampleDuration is the target duration floor for one batch at
	// one size (default 50ms). Batches double until they clear it.
	MinSampleDuration time.Duration

	// MaxLoopsPerSize caps batch doubling at one size (default 256).
	MaxLoopsPerSize int

	// PrintResult emits the human-readable report line (default true).
	PrintResult bool

	// Output receives the report line (default os.Stdout).
	Output io.Writer
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Label:             "Elapsed",
		AnalyzeComplexity: false,
		SampleCount:       7,
		MinSampleDuration: 50 * time.Millisecond,
		MaxLoopsPerSize:   256,
		PrintResult:       true,
		Output:            os.Stdout,
	}
}

// normalize fills zero values with defaults and clamps the sample count.
func (c Config) normalize() Config {
	def := DefaultConfig()
	if c.Label == "" {
		c.Label = def.Label
	}
	if c.SampleCount < 3 {
		c.SampleCount = def.SampleCount
	}
	if c.MinSampleDuration <= 0 {
		c.MinSampleDuration = def.MinSampleDuration
	}
	if c.MaxLoopsPerSize < 1 {
		c.MaxLoopsPerSize = def.MaxLoopsPerSize
	}
	if c.Output == nil {
		c.Output = def.Output
	}
	return c
}

// Result is what a measured invocation produced.
type Result struct {
	// Value is the operation's own return value from the single timed
	// invocation.
	Value any

	// Elapsed is the single-shot wall-clock duration.
	Elapsed time.Duration

	// Complexity is the selected growth class, Unknown when analysis
	// was requested but skipped, None when it was not requested.
	Complexity Complexity

	// Sizes and PerCall hold the sampled series when analysis ran,
	// aligned index for index; PerCall is seconds per invocation.
	Sizes   []int
	PerCall []float64

	// Errors maps every candidate to its fit RMSE when analysis ran.
	Errors map[Complexity]float64
}

// Stopwatch times a scoped block of code. Start it, run the block, and
// Stop it; the elapsed duration stays readable afterward.
type Stopwatch struct {
	cfg     Config
	start   time.Time
	stopped bool
	elapsed time.Duration
}

// Start begins a scoped measurement.
func Start(cfg Config) *Stopwatch {
	return &Stopwatch{cfg: cfg.normalize(), start: now()}
}

// Stop ends the measurement, optionally prints the report line, and
// returns the elapsed duration. Repeated calls return the first
// measurement.
func (s *Stopwatch) Stop() time.Duration {
	if !s.stopped {
		s.elapsed = elapsed(s.start, now())
		s.stopped = true
		if s.cfg.PrintResult {
			fmt.Fprintf(s.cfg.Output, "%s: %.6f seconds\n", s.cfg.Label, s.elapsed.Seconds())
		}
	}
	return s.elapsed
}

// Elapsed returns the measured duration after Stop. Before Stop it
// reports the time since Start.
func (s *Stopwatch) Elapsed() time.Duration {
	if s.stopped {
		return s.elapsed
	}
	return elapsed(s.start, now())
}

// Measure invokes fn once for real, timing it, and returns the
// operation's value with the measurement. With AnalyzeComplexity set it
// then runs the sized sweep and model fit, provided some argument
// exposes a usable problem size; otherwise the result degrades to
// single-shot with Complexity Unknown rather than failing.
//
// An error from fn — during the real invocation or a sampling batch —
// is returned exactly as fn produced it, with no Result.
func Measure(fn Func, cfg Config, args ...Arg) (*Result, error) {
	cfg = cfg.normalize()

	vals := argValues(args)
	start := now()
	value, err := fn(vals...)
	single := elapsed(start, now())
	if err != nil {
		return nil, err
	}

	res := &Result{Value: value, Elapsed: single, Complexity: None}

	if cfg.AnalyzeComplexity {
		res.Complexity = Unknown
		if index, maxSize, ok := locateSizable(args); ok && maxSize >= cfg.SampleCount {
			sizes := SizeSchedule(maxSize, cfg.SampleCount)
			perCall, err := sampleSweep(fn, args, index, sizes, cfg.MinSampleDuration, cfg.MaxLoopsPerSize)
			if err != nil {
				return nil, err
			}
			res.Sizes = sizes
			res.PerCall = perCall
			res.Errors = FitGrowth(sizes, perCall)
			res.Complexity = SelectGrowth(res.Errors)
		}
	}

	if cfg.PrintResult {
		report(cfg, funcName(fn), res)
	}
	return res, nil
}

// Wrap returns a callable that measures fn on every invocation with the
// given configuration.
func Wrap(fn Func, cfg Config) func(args ...Arg) (*Result, error) {
	return func(args ...Arg) (*Result, error) {
		return Measure(fn, cfg, args...)
	}
}

// report writes the human-readable line:
//
//	<label> (<op>): 0.123456 seconds            analysis off
//	<label> (<op>): 0.123456 seconds, ~ O(n)    analysis ran
//	<label> (<op>): 0.123456 seconds, ~ (size unknown)
func report(cfg Config, op string, res *Result) {
	line := fmt.Sprintf("%s (%s): %.6f seconds", cfg.Label, op, res.Elapsed.Seconds())
	switch res.Complexity {
	case None:
	case Unknown:
		line += ", ~ (size unknown)"
	default:
		line += fmt.Sprintf(", ~ %s", res.Complexity)
	}
	fmt.Fprintln(cfg.Output, line)
}

// funcName recovers a short name for the operation; anonymous or
// unresolvable functions report as "func".
func funcName(fn Func) string {
	f := runtime.FuncForPC(reflect.ValueOf(fn).Pointer())
	if f == nil {
		return "func"
	}
	name := f.Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.Index(name, "."); i >= 0 {
		name = name[i+1:]
	}
	name = strings.TrimSuffix(name, "-fm")
	if name == "" {
		return "func"
	}
	return name
}
