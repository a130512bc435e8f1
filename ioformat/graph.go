// File: graph.go
// Role: the tagged-graph wire format and its decode into
// core.NodeSpec/core.EdgeSpec.
package ioformat

import (
	"fmt"

	"github.com/cadimo/pathcore/core"
)

// taggedNodeDoc is one entry of the tagged-graph "nodes" object.
type taggedNodeDoc struct {
	Sys string `json:"sys"`
}

// taggedEdgeDoc is one entry of the tagged-graph "edges" array.
type taggedEdgeDoc struct {
	From string `json:"from"`
	To   string `json:"to"`
	Sys  string `json:"sys"`
}

// taggedGraphDoc is the top-level tagged-graph document.
type taggedGraphDoc struct {
	Nodes map[string]taggedNodeDoc `json:"nodes"`
	Edges []taggedEdgeDoc          `json:"edges"`
}

// DecodeTaggedGraph parses the tagged-graph JSON format into the
// core.NodeSpec/core.EdgeSpec slices core.LoadTaggedGraph expects. Node
// keys are kept verbatim; their coordinates are recovered by parsing the
// canonical "(x, y, z)" text, never by reformatting it.
func DecodeTaggedGraph(data []byte) ([]core.NodeSpec, []core.EdgeSpec, error) {
	var doc taggedGraphDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("ioformat: decoding tagged graph: %w", err)
	}

	nodes := make([]core.NodeSpec, 0, len(doc.Nodes))
	for key, n := range doc.Nodes {
		vec, err := parseCanonicalKey(key)
		if err != nil {
			return nil, nil, err
		}
		nodes = append(nodes, core.NodeSpec{Key: key, Sys: core.SystemTag(n.Sys), Vec: vec})
	}

	edges := make([]core.EdgeSpec, 0, len(doc.Edges))
	for _, e := range doc.Edges {
		edges = append(edges, core.EdgeSpec{From: e.From, To: e.To, Sys: core.SystemTag(e.Sys)})
	}

	return nodes, edges, nil
}
