package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/cadimo/pathcore/cablefilter"
	"github.com/cadimo/pathcore/core"
	"github.com/cadimo/pathcore/ioformat"
	"github.com/cadimo/pathcore/orchestrator"
)

// commonFlags holds the graph/cable/forbidden/tolerance flags shared by
// every subcommand.
type commonFlags struct {
	graphPath  string
	tramoPath  string
	forbidPath string
	cable      string
	tolerance  float64
}

func (c *commonFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&c.graphPath, "graph", "", "path to tagged-graph JSON (required)")
	fs.StringVar(&c.tramoPath, "tramo-map", "", "path to tramo-map JSON (optional)")
	fs.StringVar(&c.forbidPath, "forbidden", "", "path to forbidden-section JSON (optional)")
	fs.StringVar(&c.cable, "cable", "A", "cable type: A | B | C")
	fs.Float64Var(&c.tolerance, "tolerance", 0, "resolver tolerance override (0 = default)")
}

func (c *commonFlags) load(cmd *cobra.Command) (*orchestrator.Orchestrator, orchestrator.Request, error) {
	if c.graphPath == "" {
		return nil, orchestrator.Request{}, fmt.Errorf("--graph is required")
	}

	graphData, err := os.ReadFile(c.graphPath)
	if err != nil {
		return nil, orchestrator.Request{}, err
	}
	nodes, edges, err := ioformat.DecodeTaggedGraph(graphData)
	if err != nil {
		return nil, orchestrator.Request{}, err
	}

	var tramoMap map[string]uint64
	if c.tramoPath != "" {
		tramoData, rerr := os.ReadFile(c.tramoPath)
		if rerr != nil {
			return nil, orchestrator.Request{}, rerr
		}
		tramoMap, rerr = ioformat.DecodeTramoMap(tramoData, len(edges))
		if rerr != nil {
			return nil, orchestrator.Request{}, rerr
		}
	}

	g, err := core.LoadTaggedGraph(nodes, edges, tramoMap)
	if err != nil {
		return nil, orchestrator.Request{}, err
	}

	forbidden := map[uint64]struct{}{}
	if c.forbidPath != "" {
		forbidData, rerr := os.ReadFile(c.forbidPath)
		if rerr != nil {
			return nil, orchestrator.Request{}, rerr
		}
		forbidden, rerr = ioformat.DecodeForbiddenSet(forbidData)
		if rerr != nil {
			return nil, orchestrator.Request{}, rerr
		}
	}

	req := orchestrator.Request{
		Cable:     cablefilter.CableType(c.cable),
		Forbidden: forbidden,
		Tolerance: c.tolerance,
	}

	return orchestrator.New(g), req, nil
}

// parseFloat3 parses "x,y,z" into an r3.Vec and the canonical key text
// preserved verbatim for the CLI's own round-trip (the point's Key is
// otherwise unused unless it happens to match an existing node exactly).
func parseFloat3(flagName, raw string) (core.Point, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 3 {
		return core.Point{}, fmt.Errorf("--%s expects \"x,y,z\", got %q", flagName, raw)
	}

	var v [3]float64
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
		f, err := strconv.ParseFloat(parts[i], 64)
		if err != nil {
			return core.Point{}, fmt.Errorf("--%s: %w", flagName, err)
		}
		v[i] = f
	}

	vec := r3.Vec{X: v[0], Y: v[1], Z: v[2]}
	return core.Point{Key: "(" + strings.Join(parts, ", ") + ")", Vec: vec}, nil
}
