// config.go declares the TOML scenario file structure and its loader.
//
// A scenario file carries any number of sort, topk, queue, merge, median and
// dijkstra sections; the runner executes them in that order. Optional knobs
// use pointer fields so that "absent" and "zero" stay distinguishable.
package main

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// scenarioFile is the root of the TOML document.
type scenarioFile struct {
	Logging  loggingConfig
	Sort     []sortScenario
	TopK     []topkScenario `toml:"topk"`
	Queue    []queueScenario
	Merge    []mergeScenario
	Median   []medianScenario
	Dijkstra []dijkstraScenario
}

type loggingConfig struct {
	Level string // zerolog level name: debug, info, warn, error, disabled
}

type sortScenario struct {
	Name      string
	Input     []int64
	Direction string // "ascending" (default) or "descending"
}

type topkScenario struct {
	Name  string
	Input []int64
	K     int
	Kind  string // "largest" (default) or "smallest"
}

type queueScenario struct {
	Name  string
	Order string // "max" (default) or "min"
	Item  []queueItem
}

type queueItem struct {
	Payload  string
	Priority int64
}

type mergeScenario struct {
	Name    string
	Sources [][]int64
}

type medianScenario struct {
	Name    string
	Samples []int64
}

type dijkstraScenario struct {
	Name        string
	Vertices    int
	Source      int
	Edges       [][]int64 // triples: from, to, weight
	ReturnPath  bool      `toml:"return_path"`
	MaxDistance *int64    `toml:"max_distance"` // nil means no cap
	Target      *int      // vertex to print a path for, nil to skip
}

// unmarshalScenario reads and decodes the scenario file at path.
func unmarshalScenario(path string) (*scenarioFile, error) {
	sc := new(scenarioFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, sc); err != nil {
		return nil, fmt.Errorf("unable to unmarshal %s: %w", path, err)
	}

	return sc, nil
}
