package postman

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/postman/core"
	"github.com/katalvlaran/postman/dijkstra"
)

// pathTable answers matching.Oracle queries between odd vertices from one
// precomputed Dijkstra run per source. It checks ctx on every query so that a
// cancelled solve stops the matching enumeration early.
type pathTable struct {
	ctx   context.Context
	index map[int]int        // source vertex → position in runs
	runs  []*dijkstra.Result // runs[i] measured from sources[i]
}

// buildPathTable runs Dijkstra from every source with at most workers
// goroutines. The graph is only read, under its read lock.
func buildPathTable(ctx context.Context, g *core.Graph, sources []int, workers int) (*pathTable, error) {
	t := &pathTable{
		ctx:   ctx,
		index: make(map[int]int, len(sources)),
		runs:  make([]*dijkstra.Result, len(sources)),
	}
	for i, s := range sources {
		t.index[s] = i
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, s := range sources {
		i, s := i, s
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			res, err := dijkstra.Dijkstra(g, s)
			if err != nil {
				return fmt.Errorf("shortest paths from %d: %w", s, err)
			}
			t.runs[i] = res

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return t, nil
}

// Distance implements matching.Oracle.
func (t *pathTable) Distance(u, v int) (int64, error) {
	run, err := t.from(u)
	if err != nil {
		return dijkstra.Infinity, err
	}

	return run.Distance(v)
}

// Path implements matching.Oracle; the path runs u → v.
func (t *pathTable) Path(u, v int) ([]int, error) {
	run, err := t.from(u)
	if err != nil {
		return nil, err
	}

	return run.PathTo(v)
}

func (t *pathTable) from(u int) (*dijkstra.Result, error) {
	if err := t.ctx.Err(); err != nil {
		return nil, err
	}
	i, ok := t.index[u]
	if !ok {
		return nil, fmt.Errorf("%w: %d is not a table source", dijkstra.ErrVertexNotFound, u)
	}

	return t.runs[i], nil
}
