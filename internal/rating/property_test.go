package rating

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestLikelihoodRangeMonotonic verifies both ends of the likelihood range
// never decrease as either slider moves up.
func TestLikelihoodRangeMonotonic(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("raising sensitivity never lowers likelihood", prop.ForAll(
		func(sens, dist int) bool {
			a := ComputeLikelihoodRange(sens, dist)
			b := ComputeLikelihoodRange(sens+1, dist)
			return b.Lo >= a.Lo && b.Hi >= a.Hi
		},
		gen.IntRange(0, MaxSensitivityPosition-1),
		gen.IntRange(0, MaxDistributionPosition),
	))

	properties.Property("raising distribution never lowers likelihood", prop.ForAll(
		func(sens, dist int) bool {
			a := ComputeLikelihoodRange(sens, dist)
			b := ComputeLikelihoodRange(sens, dist+1)
			return b.Lo >= a.Lo && b.Hi >= a.Hi
		},
		gen.IntRange(0, MaxSensitivityPosition),
		gen.IntRange(0, MaxDistributionPosition-1),
	))

	properties.TestingRun(t)
}

// TestMaxDangerIsCovered verifies the max level is one of the covered levels
// and no covered level exceeds it.
func TestMaxDangerIsCovered(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("max danger bounds covered levels", prop.ForAll(
		func(l0, l1, s0, s1 int) bool {
			lik := IndexRange{Lo: min(l0, l1), Hi: max(l0, l1)}
			size := IndexRange{Lo: min(s0, s1), Hi: max(s0, s1)}
			levels, err := CoveredLevels(lik, size, DefaultGrid())
			if err != nil {
				return false
			}
			top, err := ComputeMaxDanger(lik, size, DefaultGrid())
			if err != nil {
				return false
			}
			for _, lvl := range levels {
				if lvl > top {
					return false
				}
			}
			return levels[len(levels)-1] == top
		},
		gen.IntRange(0, MaxLikelihoodIndex),
		gen.IntRange(0, MaxLikelihoodIndex),
		gen.IntRange(0, MaxSizeIndex),
		gen.IntRange(0, MaxSizeIndex),
	))

	properties.TestingRun(t)
}

// TestDragOrderIndependent verifies swapping a box's corners never changes
// the resulting slider positions.
func TestDragOrderIndependent(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("likelihood drag ignores corner order", prop.ForAll(
		func(x0, x1, y0, y1 float64) bool {
			cur := DefaultSelection()
			a, _ := ApplyLikelihoodDrag(DragBox{X0: &x0, X1: &x1, Y0: &y0, Y1: &y1}, cur)
			b, _ := ApplyLikelihoodDrag(DragBox{X0: &x1, X1: &x0, Y0: &y1, Y1: &y0}, cur)
			return a == b
		},
		gen.Float64Range(-0.5, 3.5),
		gen.Float64Range(-0.5, 3.5),
		gen.Float64Range(-0.5, 2.5),
		gen.Float64Range(-0.5, 2.5),
	))

	properties.Property("danger drag ignores corner order", prop.ForAll(
		func(x0, x1 float64) bool {
			cur := DefaultSelection()
			a, _ := ApplyDangerDrag(DragBox{X0: &x0, X1: &x1}, cur)
			b, _ := ApplyDangerDrag(DragBox{X0: &x1, X1: &x0}, cur)
			return a == b && a.Size.Lo <= a.Size.Hi
		},
		gen.Float64Range(-0.5, 8.5),
		gen.Float64Range(-0.5, 8.5),
	))

	properties.TestingRun(t)
}

// TestSetCellThenResetRestoresDefaults checks reset idempotence after any
// single edit, valid or not.
func TestSetCellThenResetRestoresDefaults(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	names := make([]interface{}, 0, 8)
	for _, lvl := range DangerLevels() {
		names = append(names, lvl.String())
	}
	names = append(names, "Bogus", "")

	properties.Property("reset after edit reproduces defaults", prop.ForAll(
		func(row, col int, value string) bool {
			s := NewGridStore(DefaultGrid())
			s.Reset()
			s.SetCell(CellEdit{Row: row, Col: col, Value: value})
			s.Reset()
			return s.Grid() == DefaultGrid()
		},
		gen.IntRange(0, GridSize-1),
		gen.IntRange(0, GridSize-1),
		gen.OneConstOf(names...),
	))

	properties.TestingRun(t)
}
