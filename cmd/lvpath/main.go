// Command lvpath loads or generates a weighted directed graph and prints
// single-source shortest paths.
//
//	lvpath -graph roads.yaml -from A -to F
//	lvpath -graph roads.csv -from A -all
//	lvpath -generate grid:10 -from 0 -to 99 -metrics
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/lvpath/builder"
	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/dijkstra"
	"github.com/katalvlaran/lvpath/graphfile"
	"github.com/katalvlaran/lvpath/metrics"
)

// errUsage marks errors caused by bad flags; main exits with 2 for them.
var errUsage = errors.New("usage")

type config struct {
	graphPath string
	generate  string
	seed      int64
	from      string
	to        string
	all       bool
	metrics   bool
	logLevel  string
	logFormat string
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, "lvpath:", err)
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("lvpath", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.graphPath, "graph", "", "graph file (.yaml, .yml or .csv)")
	fs.StringVar(&cfg.generate, "generate", "", "generate a graph instead of loading one: kind:n (path, cycle, star, complete, grid, random)")
	fs.Int64Var(&cfg.seed, "seed", 1, "seed for generated weights and random graphs")
	fs.StringVar(&cfg.from, "from", "", "start node label")
	fs.StringVar(&cfg.to, "to", "", "end node label")
	fs.BoolVar(&cfg.all, "all", false, "compute distances to every node")
	fs.BoolVar(&cfg.metrics, "metrics", false, "dump Prometheus metrics to stderr on exit")
	fs.StringVar(&cfg.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	fs.StringVar(&cfg.logFormat, "log-format", "text", "log format: text or json")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	switch {
	case cfg.graphPath == "" && cfg.generate == "":
		return cfg, fmt.Errorf("%w: one of -graph or -generate is required", errUsage)
	case cfg.graphPath != "" && cfg.generate != "":
		return cfg, fmt.Errorf("%w: -graph and -generate are mutually exclusive", errUsage)
	case cfg.from == "":
		return cfg, fmt.Errorf("%w: -from is required", errUsage)
	case !cfg.all && cfg.to == "":
		return cfg, fmt.Errorf("%w: -to is required unless -all is set", errUsage)
	}

	return cfg, nil
}

func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("%w: -log-level: %v", errUsage, err)
	}
	hopts := &slog.HandlerOptions{Level: lvl}

	switch strings.ToLower(format) {
	case "text":
		return slog.New(slog.NewTextHandler(w, hopts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, hopts)), nil
	default:
		return nil, fmt.Errorf("%w: -log-format %q: want text or json", errUsage, format)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	logger, err := newLogger(stderr, cfg.logLevel, cfg.logFormat)
	if err != nil {
		return err
	}
	logger = logger.With(slog.String("run_id", uuid.NewString()))

	g, err := loadGraph(cfg)
	if err != nil {
		return err
	}
	logger.Info("graph loaded", slog.Int("nodes", g.Len()), slog.Int("edges", g.EdgeCount()))

	start, ok := g.NodeByLabel(cfg.from)
	if !ok {
		return fmt.Errorf("start node %q not found", cfg.from)
	}

	reg := prometheus.NewRegistry()
	rec := metrics.NewRecorder(reg)
	engine := dijkstra.New[string](dijkstra.WithLogger(logger), rec.Option())

	if cfg.all {
		if err = engine.FindAllShortestPaths(g, start); err != nil {
			return err
		}
		err = printAll(stdout, engine, g)
	} else {
		end, found := g.NodeByLabel(cfg.to)
		if !found {
			return fmt.Errorf("end node %q not found", cfg.to)
		}
		if err = engine.FindShortestPath(g, start, end); err != nil {
			return err
		}
		err = printOne(stdout, engine, end)
	}
	if err != nil {
		return err
	}

	st := engine.Stats()
	logger.Info("run complete",
		slog.String("mode", string(st.Mode)),
		slog.Int("settled", st.Settled),
		slog.Int("relaxed", st.Relaxed),
		slog.Duration("elapsed", st.Elapsed),
	)

	if cfg.metrics {
		return dumpMetrics(stderr, reg)
	}

	return nil
}

func loadGraph(cfg config) (*core.WeightedGraph[string], error) {
	if cfg.graphPath != "" {
		return graphfile.LoadFile(cfg.graphPath)
	}

	cons, err := generator(cfg.generate)
	if err != nil {
		return nil, err
	}

	return builder.BuildGraph([]builder.BuilderOption{
		builder.WithSeed(cfg.seed),
		builder.WithWeightFn(builder.IntegerWeightFn(1, 9)),
	}, cons)
}

// generator parses "kind:n". For grid, n is the side length.
func generator(arg string) (builder.Constructor, error) {
	kind, size, ok := strings.Cut(arg, ":")
	if !ok {
		return nil, fmt.Errorf("%w: -generate %q: want kind:n", errUsage, arg)
	}
	n, err := strconv.Atoi(size)
	if err != nil {
		return nil, fmt.Errorf("%w: -generate %q: %v", errUsage, arg, err)
	}

	switch strings.ToLower(kind) {
	case "path":
		return builder.Path(n), nil
	case "cycle":
		return builder.Cycle(n), nil
	case "star":
		return builder.Star(n), nil
	case "complete":
		return builder.Complete(n), nil
	case "grid":
		return builder.Grid(n, n), nil
	case "random":
		return builder.RandomSparse(n, 0.1), nil
	default:
		return nil, fmt.Errorf("%w: -generate: unknown kind %q", errUsage, kind)
	}
}

func formatDistance(d float64) string {
	if d == dijkstra.Unreached {
		return "unreachable"
	}

	return strconv.FormatFloat(d, 'g', -1, 64)
}

func formatPath(path []*core.Node[string]) string {
	labels := make([]string, len(path))
	for i, n := range path {
		labels[i] = n.Label()
	}

	return "[" + strings.Join(labels, " ") + "]"
}

func printOne(w io.Writer, e *dijkstra.Engine[string], end *core.Node[string]) error {
	d, err := e.Distance(end)
	if err != nil {
		return err
	}
	if d == dijkstra.Unreached {
		_, err = fmt.Fprintf(w, "distance: %s\n", formatDistance(d))
		return err
	}
	path, err := e.Path(end)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "distance: %s\npath: %s\n", formatDistance(d), formatPath(path))

	return err
}

func printAll(w io.Writer, e *dijkstra.Engine[string], g *core.WeightedGraph[string]) error {
	for _, n := range g.Nodes() {
		d, err := e.Distance(n)
		if err != nil {
			return err
		}
		line := fmt.Sprintf("%s\t%s", n.Label(), formatDistance(d))
		if d != dijkstra.Unreached {
			path, err := e.Path(n)
			if err != nil {
				return err
			}
			line += "\t" + formatPath(path)
		}
		if _, err = fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}

func dumpMetrics(w io.Writer, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err = expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	return nil
}
