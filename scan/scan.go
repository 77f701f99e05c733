package scan

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/getsentry/sentry-go"
	"github.com/oomph-ac/blocksupport/oerror"
	"github.com/oomph-ac/blocksupport/support"
	"github.com/oomph-ac/blocksupport/worker"
	"github.com/oomph-ac/blocksupport/world"
	"github.com/oomph-ac/blocksupport/world/block"
	"github.com/samber/lo"
)

// Report is the outcome of validating a single cell.
type Report struct {
	Pos       cube.Pos
	Type      block.Type
	Face      cube.Face
	Supported bool
	// Err is set if the rule of the cell panicked. Supported is false in that case.
	Err error
}

func (r Report) String() string {
	if r.Err != nil {
		return fmt.Sprintf("%s at %v: %v", r.Type.Name(), r.Pos, r.Err)
	}
	return fmt.Sprintf("%s at %v (face %v): supported=%v", r.Type.Name(), r.Pos, r.Face, r.Supported)
}

// Placement returns true if t would be supported when placed at pos, attached to face. The world is not
// modified.
func Placement(reg *support.Registry, w *world.World, t block.Type, pos cube.Pos, face cube.Face) bool {
	return reg.IsSupported(t, w.Block(pos), face)
}

// Neighbours validates the blocks around pos after it changed and returns those that are no longer
// supported. Blocks without a rule are skipped. Removing them is left to the caller.
func Neighbours(reg *support.Registry, w *world.World, pos cube.Pos) []Report {
	var reports []Report
	for _, f := range cube.Faces() {
		b := w.Block(pos.Side(f))
		if block.IsAir(b) {
			continue
		}
		if _, ok := reg.Rule(b); !ok {
			continue
		}
		if r := check(reg, b); !r.Supported {
			reports = append(reports, r)
		}
	}
	return reports
}

// Sweep validates every block of the world that has a rule, running the checks on pool. The reports are
// ordered by position. A rule that panics only fails its own cell. If ctx is cancelled, the reports gathered
// so far are returned with the context error.
func Sweep(ctx context.Context, reg *support.Registry, w *world.World, pool *worker.Pool) ([]Report, error) {
	blocks := lo.Filter(w.Blocks(), func(b world.Block, _ int) bool {
		_, ok := reg.Rule(b)
		return ok
	})

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		reports = make([]Report, 0, len(blocks))
		err     error
	)
	for _, b := range blocks {
		wg.Add(1)
		if err = pool.Submit(ctx, func() {
			defer wg.Done()
			r := check(reg, b)

			mu.Lock()
			reports = append(reports, r)
			mu.Unlock()
		}); err != nil {
			wg.Done()
			break
		}
	}
	wg.Wait()

	slices.SortFunc(reports, func(a, b Report) int {
		return world.ComparePos(a.Pos, b.Pos)
	})
	return reports, err
}

// Unsupported returns the reports of blocks that are not supported, including those whose rule failed.
func Unsupported(reports []Report) []Report {
	return lo.Filter(reports, func(r Report, _ int) bool {
		return !r.Supported
	})
}

// check runs the rule of b. A panic in the rule is turned into Report.Err and reported to sentry.
func check(reg *support.Registry, b world.Block) (r Report) {
	r = Report{Pos: b.Pos(), Type: b.Type, Face: b.Face()}
	defer func() {
		if v := recover(); v != nil {
			r.Supported = false
			r.Err = oerror.New("support rule of %s at %v panicked: %v", b.Name(), b.Pos(), v)
			sentry.CurrentHub().Clone().CaptureException(r.Err)
		}
	}()
	r.Supported = reg.IsSupported(b.Type, b, b.Face())
	return r
}
