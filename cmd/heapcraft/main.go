// Command heapcraft runs the scenarios described by a TOML file through the
// library's public packages and reports every result as a structured log
// event. It exists as an end-to-end exercise of the whole module, not as a
// product surface.
//
// Usage:
//
//	heapcraft -config scenario.toml
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/heapcraft/dijkstra"
	"github.com/katalvlaran/heapcraft/heapsort"
	"github.com/katalvlaran/heapcraft/kway"
	"github.com/katalvlaran/heapcraft/logger"
	"github.com/katalvlaran/heapcraft/median"
	"github.com/katalvlaran/heapcraft/pqueue"
	"github.com/katalvlaran/heapcraft/topk"
)

const defaultConfigPath = "scenario.toml"

var configPath string

func init() {
	flag.StringVar(
		&configPath, "config",
		defaultConfigPath,
		"path to the TOML scenario file")
}

func main() {
	flag.Parse()

	sc, err := unmarshalScenario(configPath)
	if err != nil {
		log := logger.Logger()
		log.Error().Err(err).Str("path", configPath).Msg("scenario not loaded")
		os.Exit(1)
	}

	applyLogLevel(sc.Logging.Level)

	if err := run(sc); err != nil {
		log := logger.Logger()
		log.Error().Err(err).Msg("scenario failed")
		os.Exit(1)
	}
}

// applyLogLevel narrows the global logger to the configured level; an empty
// level keeps the default, an unknown one is reported and ignored.
func applyLogLevel(level string) {
	if level == "" {
		return
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		log := logger.Logger()
		log.Warn().Str("level", level).Msg("unknown logging level, keeping default")
		return
	}
	logger.Set(logger.Logger().Level(lvl))
}

// run executes every section of the scenario file in a fixed order and
// stops at the first failure.
func run(sc *scenarioFile) error {
	log := logger.Logger()

	for _, s := range sc.Sort {
		if err := runSort(log, s); err != nil {
			return err
		}
	}
	for _, s := range sc.TopK {
		if err := runTopK(log, s); err != nil {
			return err
		}
	}
	for _, s := range sc.Queue {
		if err := runQueue(log, s); err != nil {
			return err
		}
	}
	for _, s := range sc.Merge {
		runMerge(log, s)
	}
	for _, s := range sc.Median {
		if err := runMedian(log, s); err != nil {
			return err
		}
	}
	for _, s := range sc.Dijkstra {
		if err := runDijkstra(log, s); err != nil {
			return err
		}
	}

	return nil
}

func runSort(log zerolog.Logger, s sortScenario) error {
	dir, err := parseDirection(s.Direction)
	if err != nil {
		return fmt.Errorf("sort %q: %w", s.Name, err)
	}

	out := heapsort.Sort(s.Input, dir)
	log.Info().
		Str("scenario", s.Name).
		Str("direction", dir.String()).
		Ints64("output", out).
		Msg("sort")

	return nil
}

func runTopK(log zerolog.Logger, s topkScenario) error {
	var out []int64
	switch s.Kind {
	case "", "largest":
		out = topk.Largest(s.Input, s.K)
	case "smallest":
		out = topk.Smallest(s.Input, s.K)
	default:
		return fmt.Errorf("topk %q: unknown kind %q", s.Name, s.Kind)
	}

	log.Info().
		Str("scenario", s.Name).
		Int("k", s.K).
		Ints64("output", out).
		Msg("topk")

	return nil
}

func runQueue(log zerolog.Logger, s queueScenario) error {
	var q *pqueue.Queue[string, int64]
	switch s.Order {
	case "", "max":
		q = pqueue.New[string, int64]()
	case "min":
		q = pqueue.NewMin[string, int64]()
	default:
		return fmt.Errorf("queue %q: unknown order %q", s.Name, s.Order)
	}

	for _, it := range s.Item {
		q.Push(it.Payload, it.Priority)
	}
	out := make([]string, 0, q.Len())
	for !q.IsEmpty() {
		v, _ := q.Pop()
		out = append(out, v)
	}

	log.Info().
		Str("scenario", s.Name).
		Strs("order", out).
		Msg("queue")

	return nil
}

func runMerge(log zerolog.Logger, s mergeScenario) {
	out := kway.Merge(s.Sources...)
	log.Info().
		Str("scenario", s.Name).
		Int("sources", len(s.Sources)).
		Ints64("output", out).
		Msg("merge")
}

func runMedian(log zerolog.Logger, s medianScenario) error {
	tr := median.New[int64]()
	medians := make([]float64, 0, len(s.Samples))
	for _, v := range s.Samples {
		tr.Add(v)
		m, err := tr.Median()
		if err != nil {
			return fmt.Errorf("median %q: %w", s.Name, err)
		}
		medians = append(medians, m)
	}

	log.Info().
		Str("scenario", s.Name).
		Floats64("medians", medians).
		Msg("median")

	return nil
}

func runDijkstra(log zerolog.Logger, s dijkstraScenario) error {
	g, err := dijkstra.NewGraph(s.Vertices)
	if err != nil {
		return fmt.Errorf("dijkstra %q: %w", s.Name, err)
	}
	for _, e := range s.Edges {
		if len(e) != 3 {
			return fmt.Errorf("dijkstra %q: edge %v must be [from, to, weight]", s.Name, e)
		}
		if err := g.AddEdge(int(e[0]), int(e[1]), e[2]); err != nil {
			return fmt.Errorf("dijkstra %q: %w", s.Name, err)
		}
	}

	var opts []dijkstra.Option
	if s.ReturnPath {
		opts = append(opts, dijkstra.WithReturnPath())
	}
	if s.MaxDistance != nil {
		opts = append(opts, dijkstra.WithMaxDistance(*s.MaxDistance))
	}

	res, err := dijkstra.ShortestPaths(g, s.Source, opts...)
	if err != nil {
		return fmt.Errorf("dijkstra %q: %w", s.Name, err)
	}

	ev := log.Info().
		Str("scenario", s.Name).
		Int("source", s.Source).
		Ints64("dist", res.Dist)
	if s.Target != nil {
		ev = ev.Ints("path", res.PathTo(*s.Target))
	}
	ev.Msg("dijkstra")

	return nil
}

// parseDirection maps the scenario spelling onto a heapsort.Direction.
func parseDirection(s string) (heapsort.Direction, error) {
	switch s {
	case "", "ascending":
		return heapsort.Ascending, nil
	case "descending":
		return heapsort.Descending, nil
	default:
		return 0, fmt.Errorf("unknown direction %q", s)
	}
}
