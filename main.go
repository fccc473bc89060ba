package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"gopkg.microglot.org/recursion.go/internal/exc"
	"gopkg.microglot.org/recursion.go/internal/fibonacci"
)

type opts struct {
	Count    int
	Seed     string
	Reseed   string
	Strategy string
	Format   string
	Only     string
	Verbose  bool
}

const (
	formatText = "text"
	formatYAML = "yaml"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout io.Writer, stderr io.Writer) int {
	op := &opts{}
	flags := pflag.NewFlagSet("recursion", pflag.ContinueOnError)
	// Parse errors are reported below with an exception code; only usage is
	// written by pflag.
	flags.SetOutput(io.Discard)
	flags.Usage = func() {
		fmt.Fprintf(stderr, "Usage of recursion:\n%s", flags.FlagUsages())
	}
	flags.IntVar(&op.Count, "count", 10, "Number of terms to print before and after reseeding.")
	flags.StringVar(&op.Seed, "seed", fibonacci.Start.String(), "Initial pair of terms as x,y.")
	flags.StringVar(&op.Reseed, "reseed", "1,2", "Pair to restart the sequence from as x,y. Empty to skip.")
	flags.StringVar(&op.Strategy, "strategy", string(fibonacci.StrategyCopy), "Recursion strategy: copy, clone or twice.")
	flags.StringVar(&op.Format, "format", formatText, "Output format: text or yaml.")
	flags.StringVar(&op.Only, "only", string(fibonacci.ParityAll), "Keep only even or odd terms among the first count: all, even or odd.")
	flags.BoolVar(&op.Verbose, "verbose", false, "Log every reseed and exhaustion to STDERR.")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, exc.Wrap("", exc.CodeInvalidFlags, err).Error())
		return 2
	}

	level := slog.LevelWarn
	if op.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := op.validate()
	if err != nil {
		fail(stderr, err)
		return 1
	}

	out, err := generate(cfg, logger)
	if err != nil {
		fail(stderr, err)
		return 1
	}

	switch cfg.format {
	case formatYAML:
		enc := yaml.NewEncoder(stdout)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			fail(stderr, err)
			return 1
		}
		if err := enc.Close(); err != nil {
			fail(stderr, err)
			return 1
		}
	default:
		writeText(stdout, cfg, out)
	}
	return 0
}

// fail writes one line per exception. Errors without a code are reported as
// unknown.
func fail(stderr io.Writer, err error) {
	var me exc.MultiException
	if errors.As(err, &me) {
		for _, e := range me {
			fmt.Fprintln(stderr, e.Error())
		}
		return
	}
	var e exc.Exception
	if !errors.As(err, &e) {
		e = exc.WrapUnknown("", err)
	}
	fmt.Fprintln(stderr, e.Error())
}

type config struct {
	count    int
	seed     fibonacci.Pair
	reseed   *fibonacci.Pair
	strategy fibonacci.Strategy
	format   string
	only     fibonacci.Parity
}

// validate checks every flag and reports all problems together.
func (op *opts) validate() (*config, error) {
	reporter := exc.NewReporter(nil)
	cfg := &config{
		count:    op.Count,
		strategy: fibonacci.Strategy(op.Strategy),
		format:   op.Format,
		only:     fibonacci.Parity(op.Only),
	}
	report := func(e exc.Exception) error {
		if fatal := reporter.Report(e); fatal != nil {
			return fatal
		}
		return nil
	}

	if op.Count < 1 {
		if err := report(exc.Newf("count", exc.CodeInvalidCount, "must be at least 1, got %d", op.Count)); err != nil {
			return nil, err
		}
	}
	seed, err := fibonacci.ParsePair(op.Seed)
	if err != nil {
		if err := report(exc.Wrap("seed", exc.CodeInvalidPair, err)); err != nil {
			return nil, err
		}
	}
	cfg.seed = seed
	if op.Reseed != "" {
		reseed, err := fibonacci.ParsePair(op.Reseed)
		if err != nil {
			if err := report(exc.Wrap("reseed", exc.CodeInvalidPair, err)); err != nil {
				return nil, err
			}
		}
		cfg.reseed = &reseed
	}
	known := false
	for _, s := range fibonacci.Strategies {
		if s == cfg.strategy {
			known = true
		}
	}
	if !known {
		if err := report(exc.Newf("strategy", exc.CodeUnknownStrategy, "unknown strategy %q", op.Strategy)); err != nil {
			return nil, err
		}
	}
	if op.Format != formatText && op.Format != formatYAML {
		if err := report(exc.Newf("format", exc.CodeUnknownFormat, "unknown format %q", op.Format)); err != nil {
			return nil, err
		}
	}

	switch cfg.only {
	case fibonacci.ParityAll, fibonacci.ParityEven, fibonacci.ParityOdd:
	default:
		if err := report(exc.Newf("only", exc.CodeUnknownParity, "unknown parity %q", op.Only)); err != nil {
			return nil, err
		}
	}

	if err := reporter.Err(); err != nil {
		return nil, err
	}
	return cfg, nil
}

type output struct {
	Strategy string          `yaml:"strategy"`
	Seed     fibonacci.Pair  `yaml:"seed"`
	Values   terms           `yaml:"values"`
	Reseed   *fibonacci.Pair `yaml:"reseed,omitempty"`
	Reseeded terms           `yaml:"reseeded,omitempty"`
}

// terms are decimal strings that may exceed 64 bits. They are written as YAML
// integers rather than quoted strings.
type terms []string

func (t terms) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode}
	for _, v := range t {
		node.Content = append(node.Content, &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!int",
			Value: v,
		})
	}
	return node, nil
}

func generate(cfg *config, logger *slog.Logger) (*output, error) {
	gen, err := fibonacci.NewGenerator(cfg.strategy, cfg.seed)
	if err != nil {
		return nil, err
	}
	out := &output{
		Strategy: string(cfg.strategy),
		Seed:     cfg.seed,
	}
	logger.Debug("generating", "strategy", cfg.strategy, "seed", cfg.seed.String(), "count", cfg.count, "only", cfg.only)
	if out.Values, err = take(gen, cfg, logger); err != nil {
		return nil, err
	}
	if cfg.reseed != nil {
		gen.Reseed(*cfg.reseed)
		logger.Debug("reseeded", "seed", cfg.reseed.String())
		out.Reseed = cfg.reseed
		if out.Reseeded, err = take(gen, cfg, logger); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func take(gen fibonacci.Generator, cfg *config, logger *slog.Logger) (terms, error) {
	values, drawn, err := fibonacci.Take(gen, cfg.count, cfg.only)
	if err != nil {
		return nil, err
	}
	if drawn < cfg.count {
		logger.Warn("sequence exhausted", "requested", cfg.count, "produced", drawn)
	}
	return values, nil
}

func writeText(w io.Writer, cfg *config, out *output) {
	fmt.Fprintf(w, "The first %d fibonacci numbers from (F_0=%d, F_1=%d) are:\n", cfg.count, cfg.seed.X, cfg.seed.Y)
	fmt.Fprintln(w, strings.Join(out.Values, " "))
	if out.Reseed == nil {
		return
	}
	fmt.Fprintf(w, "Reseeded to (F_0=%d, F_1=%d)\n", out.Reseed.X, out.Reseed.Y)
	fmt.Fprintf(w, "The first %d altered fibonacci numbers are:\n", cfg.count)
	fmt.Fprintln(w, strings.Join(out.Reseeded, " "))
}
