// File: pathresult.go
// Role: emit a result.PathResult as JSON at full float precision.
package ioformat

import (
	"fmt"

	"github.com/cadimo/pathcore/result"
)

// pathResultDoc mirrors result.PathResult's JSON shape explicitly rather
// than relying on default struct tags, so the wire format stays stable if
// the Go field names ever change.
type pathResultDoc struct {
	Points        []string     `json:"points"`
	TotalDistance float64      `json:"total_distance"`
	NodesExplored int          `json:"nodes_explored"`
	Legs          []legInfoDoc `json:"legs"`
	Meta          metaDoc      `json:"meta"`
}

type legInfoDoc struct {
	From          string   `json:"from"`
	To            string   `json:"to"`
	PointsCount   int      `json:"points_count"`
	NodesExplored int      `json:"nodes_explored"`
	Distance      float64  `json:"distance"`
	TramoIDs      []uint64 `json:"tramo_ids"`
}

type metaDoc struct {
	RequestID      string   `json:"request_id"`
	Cable          string   `json:"cable"`
	AllowedSystems []string `json:"allowed_systems"`
	ForbiddenCount int      `json:"forbidden_count"`
}

// EncodePathResult renders r as JSON at full float precision.
func EncodePathResult(r result.PathResult) ([]byte, error) {
	doc := pathResultDoc{
		Points:        r.Points,
		TotalDistance: r.TotalDistance,
		NodesExplored: r.NodesExplored,
		Meta: metaDoc{
			RequestID:      r.Meta.RequestID,
			Cable:          r.Meta.Cable,
			ForbiddenCount: r.Meta.ForbiddenCount,
		},
	}
	for _, sys := range r.Meta.AllowedSystems {
		doc.Meta.AllowedSystems = append(doc.Meta.AllowedSystems, string(sys))
	}
	for _, leg := range r.Legs {
		doc.Legs = append(doc.Legs, legInfoDoc{
			From:          leg.From,
			To:            leg.To,
			PointsCount:   leg.PointsCount,
			NodesExplored: leg.NodesExplored,
			Distance:      leg.Distance,
			TramoIDs:      leg.TramoIDs,
		})
	}

	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("ioformat: encoding path result: %w", err)
	}

	return out, nil
}
