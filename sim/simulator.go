package sim

import (
	"io"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/cellab/golife/model"
	"github.com/cellab/golife/rules"
)

// Result reports why a Run loop stopped.
type Result int

const (
	// ResultStable means a generation produced no change at all.
	ResultStable Result = iota
	// ResultHalted means the per-generation callback asked to stop.
	ResultHalted
)

func (r Result) String() string {
	switch r {
	case ResultStable:
		return "stable"
	case ResultHalted:
		return "halted"
	}
	return "unknown"
}

// Simulator advances grids generation by generation.
type Simulator struct {
	pool    *model.GridPool
	workers int
	log     *slog.Logger
}

// NewSimulator returns a simulator with its own grid pool. A nil logger
// discards all output.
func NewSimulator(logger *slog.Logger) *Simulator {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Simulator{
		pool:    model.NewGridPool(),
		workers: runtime.NumCPU(),
		log:     logger,
	}
}

// AdvanceGeneration advances the grid by one generation. The next generation
// is computed in full into a scratch buffer before any cell of the current
// grid changes, so every neighbor count reads a consistent generation. The
// error return cannot fire for a grid built through NewGrid.
func (s *Simulator) AdvanceGeneration(g *model.Grid) error {
	var (
		width  = g.GetWidth()
		height = g.GetHeight()
		next   = s.pool.Get(width, height)
	)

	var (
		eg            errgroup.Group
		rowsPerWorker = (height + s.workers - 1) / s.workers // Ceiling division
	)
	for i := 0; i < s.workers; i++ {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, height)
		)
		if startRow >= height {
			break
		}

		eg.Go(func() error {
			for y := startRow; y < endRow; y++ {
				for x := 0; x < width; x++ {
					neighbors, err := g.LivingNeighborCount(x, y)
					if err != nil {
						return err
					}
					alive, err := g.Get(x, y)
					if err != nil {
						return err
					}
					if rules.Next(neighbors, alive) {
						if err = next.Set(x, y, true); err != nil {
							return err
						}
					}
				}
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		s.pool.Put(next)
		return err
	}

	// Promote the finished buffer and recycle the old storage.
	if err := g.Swap(next); err != nil {
		s.pool.Put(next)
		return err
	}
	s.pool.Put(next)
	return nil
}

// Run advances the grid until a generation produces no change, invoking
// onGeneration with each resulting snapshot. The callback's return value
// decides whether to keep going; Run itself imposes no iteration cap, so an
// oscillating or growing pattern runs until the callback stops it.
func (s *Simulator) Run(g *model.Grid, onGeneration func(model.Snapshot) bool) (Result, error) {
	for generation := 1; ; generation++ {
		before := g.Snapshot()
		if err := s.AdvanceGeneration(g); err != nil {
			return ResultHalted, err
		}
		after := g.Snapshot()

		keepGoing := true
		if onGeneration != nil {
			keepGoing = onGeneration(after)
		}

		if after.Equal(before) {
			s.log.Debug("grid stable", "generation", generation)
			return ResultStable, nil
		}
		if !keepGoing {
			s.log.Debug("run halted by caller", "generation", generation)
			return ResultHalted, nil
		}
		s.log.Debug("generation advanced", "generation", generation, "living", g.CountLivingCells())
	}
}
