// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/pathsearch/core"
)

// addVertices inserts idFn(0..n-1) with their attributes, in index order.
// Complexity: O(n) time, O(1) extra space.
func addVertices(method string, g *core.Graph, cfg builderConfig, n int) error {
	for i := 0; i < n; i++ {
		if err := addVertex(method, g, cfg, i, cfg.idFn(i)); err != nil {
			return err
		}
	}

	return nil
}

func addVertex(method string, g *core.Graph, cfg builderConfig, idx int, id string) error {
	var opts []core.VertexOption
	if cfg.attrFn != nil {
		opts = append(opts, core.WithAttrs(cfg.attrFn(idx, cfg.rng)))
	}
	if err := g.AddVertex(id, opts...); err != nil {
		return fmt.Errorf("%s: AddVertex(%s): %w: %w", method, id, err, ErrConstructFailed)
	}

	return nil
}

// connect adds u→v. The edge is unknown with probability cfg.unknownRatio,
// otherwise it carries cfg.weightFn(cfg.rng). The unknown draw happens before
// the weight draw so both stay reproducible per seed.
func connect(method string, g *core.Graph, cfg builderConfig, u, v string) error {
	var opts []core.EdgeOption
	unknown := false
	if cfg.unknownRatio > 0 {
		if cfg.rng == nil {
			return fmt.Errorf("%s: unknown ratio %g: %w", method, cfg.unknownRatio, ErrNeedRandSource)
		}
		unknown = cfg.rng.Float64() < cfg.unknownRatio
	}
	if !unknown {
		opts = append(opts, core.WithWeight(cfg.weightFn(cfg.rng)))
	}
	if _, err := g.AddEdge(u, v, opts...); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s): %w: %w", method, u, v, err, ErrConstructFailed)
	}

	return nil
}

// gridVertexID formats a 2D grid coordinate as "r,c".
func gridVertexID(r, c int) string {
	return strconv.Itoa(r) + "," + strconv.Itoa(c)
}
