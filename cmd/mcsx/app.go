package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/katalvlaran/mcsx/mcs"
	"github.com/katalvlaran/mcsx/mcsdomain"
	"github.com/katalvlaran/mcsx/mcsgraph"
	"github.com/katalvlaran/mcsx/mcsgraph/gformat"
	"github.com/katalvlaran/mcsx/mcslog"
	"github.com/urfave/cli/v2"
)

var log = mcslog.NewLogger("INFO", "mcsx")

// newApp builds the mcsx cli.App, following the Flags:[]cli.Flag{...},
// Action: run shape used throughout 0xsoniclabs-aida/cmd/*/main.go.
func newApp() *cli.App {
	return &cli.App{
		Name:      "mcsx",
		HelpName:  "mcsx",
		Usage:     "find the maximum common (induced) subgraph across two or more graphs",
		ArgsUsage: "<graph-file>...",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "format", Value: "D", Usage: "graph file format: D (DIMACS), L (LAD), B/E (binary), I (IOI)"},
			&cli.StringFlag{Name: "heuristic", Value: "min_max", Usage: "min_max|min_min|min_sum|min_product"},
			&cli.BoolFlag{Name: "connected", Usage: "restrict branching to domains adjacent to the current mapping"},
			&cli.BoolFlag{Name: "directed", Usage: "parse graphs as directed"},
			&cli.BoolFlag{Name: "labelled", Usage: "preserve parsed edge and vertex labels"},
			&cli.BoolFlag{Name: "vertex-labelled", Usage: "preserve parsed vertex labels"},
			&cli.BoolFlag{Name: "big-first", Usage: "search for the largest solution first, descending"},
			&cli.BoolFlag{Name: "verbose", Usage: "enable debug logging"},
			&cli.BoolFlag{Name: "quiet", Usage: "suppress table rendering; print the plain-text contract only"},
			&cli.DurationFlag{Name: "timeout", Usage: "overall search timeout, 0 disables it"},
			&cli.IntFlag{Name: "threads", Value: runtime.NumCPU(), Usage: "total thread count (caller plus helper-pool workers); 1 runs sequentially"},
		},
		Action: run,
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	switch {
	case c.Bool("verbose"):
		log = mcslog.NewLogger("DEBUG", "mcsx")
	case c.Bool("quiet"):
		log = mcslog.NewLogger("WARNING", "mcsx")
	}

	paths := c.Args().Slice()
	if len(paths) < 2 {
		return errors.Newf("mcsx: need at least two graph file paths, got %d", len(paths))
	}

	heuristic, err := parseHeuristic(c.String("heuristic"))
	if err != nil {
		return errors.Wrap(err, "mcsx: parsing --heuristic")
	}

	readOpts := gformat.ReadOptions{
		Directed:       c.Bool("directed"),
		EdgeLabelled:   c.Bool("labelled"),
		VertexLabelled: c.Bool("vertex-labelled") || c.Bool("labelled"),
	}
	formatStr := c.String("format")
	if len(formatStr) != 1 {
		return errors.Newf("mcsx: --format must be a single byte, got %q", formatStr)
	}
	format := gformat.Format(formatStr[0])

	graphs := make([]*mcsgraph.Graph, len(paths))
	for i, p := range paths {
		g, err := loadGraph(p, format, readOpts)
		if err != nil {
			return errors.Wrapf(err, "mcsx: loading graph file %q", p)
		}
		graphs[i] = g
	}

	opts, err := mcs.NewOptions(len(graphs),
		mcs.WithHeuristic(heuristic),
		mcs.WithConnected(c.Bool("connected")),
		mcs.WithBigFirst(c.Bool("big-first")),
		mcs.WithThreads(c.Int("threads")),
		mcs.WithTimeout(c.Duration("timeout")),
		mcs.WithLogger(log),
	)
	if err != nil {
		return errors.Wrap(err, "mcsx: building search options")
	}

	log.Debugf("starting search over %d graphs", len(graphs))
	start := time.Now()
	solution, stats, err := mcs.Solve(context.Background(), graphs, opts)
	elapsed := time.Since(start)
	if err != nil {
		return errors.Wrap(err, "mcsx: search failed")
	}
	if stats.TimedOut {
		log.Warningf("search timed out after %s, returning best incumbent of size %d", elapsed, solution.Size)
	}

	renderResult(c.Bool("quiet"), len(graphs), solution, stats, elapsed)

	return nil
}

func loadGraph(path string, format gformat.Format, opts gformat.ReadOptions) (*mcsgraph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := gformat.ReadGraph(f, format, opts)
	if err != nil {
		return nil, err
	}
	g.SetName(path)
	g.Freeze()

	return g, nil
}

func parseHeuristic(s string) (mcsdomain.Heuristic, error) {
	switch strings.ToLower(s) {
	case "min_max":
		return mcsdomain.HeuristicMinMax, nil
	case "min_min":
		return mcsdomain.HeuristicMinMin, nil
	case "min_sum":
		return mcsdomain.HeuristicMinSum, nil
	case "min_product":
		return mcsdomain.HeuristicMinProduct, nil
	default:
		return 0, errors.Newf("unknown heuristic %q", s)
	}
}

// renderResult prints the §6 output contract lines unconditionally, then
// (unless quiet) a go-pretty table of the same data for human consumption.
func renderResult(quiet bool, k int, sol mcs.Solution, stats mcs.Stats, elapsed time.Duration) {
	hours, minutes, seconds := mcslog.ParseTime(elapsed)

	fmt.Printf("Solution size %d\n", sol.Size)
	fmt.Println(formatTuples(sol.Mapping, k))
	fmt.Printf("nodes %d\n", stats.Nodes)
	fmt.Printf("wall-clock %02d:%02d:%02d\n", hours, minutes, seconds)
	if stats.TimedOut {
		fmt.Println("TIMEOUT")
	}
	fmt.Printf(">>> %d - %d - %.3f\n", sol.Size, stats.Nodes, elapsed.Seconds())

	if quiet {
		return
	}

	t := table.NewWriter()
	header := make(table.Row, 0, k)
	for axis := 0; axis < k; axis++ {
		header = append(header, fmt.Sprintf("graph %d", axis))
	}
	t.AppendHeader(header)
	for _, tup := range sol.Mapping {
		row := make(table.Row, 0, k)
		for axis := 0; axis < k; axis++ {
			row = append(row, tup[axis])
		}
		t.AppendRow(row)
	}
	fmt.Println(t.Render())
}

func formatTuples(mapping []mcsdomain.VertexTuple, k int) string {
	if len(mapping) == 0 {
		return "()"
	}
	sorted := append([]mcsdomain.VertexTuple(nil), mapping...)
	sort.Slice(sorted, func(a, b int) bool { return sorted[a][0] < sorted[b][0] })
	parts := make([]string, len(sorted))
	for i, tup := range sorted {
		parts[i] = fmt.Sprintf("(%s)", joinTuple(tup, k))
	}

	return strings.Join(parts, " ")
}

func joinTuple(tup mcsdomain.VertexTuple, k int) string {
	fields := make([]string, k)
	for i := 0; i < k; i++ {
		fields[i] = fmt.Sprintf("%d", tup[i])
	}

	return strings.Join(fields, " -> ")
}
