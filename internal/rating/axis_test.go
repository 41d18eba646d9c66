package rating

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }

func TestToRange(t *testing.T) {
	tests := []struct {
		name     string
		position int
		count    int
		want     IndexRange
	}{
		{"sensitivity unreactive", 0, SensitivityCount, IndexRange{0, 0}},
		{"sensitivity between unreactive and stubborn", 1, SensitivityCount, IndexRange{0, 1}},
		{"sensitivity reactive", 4, SensitivityCount, IndexRange{2, 2}},
		{"sensitivity touchy", 6, SensitivityCount, IndexRange{3, 3}},
		{"distribution between specific and widespread", 3, DistributionCount, IndexRange{1, 2}},
		{"clamped high", 9, DistributionCount, IndexRange{2, 2}},
		{"clamped low", -3, DistributionCount, IndexRange{0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToRange(tt.position, tt.count))
		})
	}
}

func TestToRange_EvenSingleOddAdjacent(t *testing.T) {
	check := func(maxPos, count int) {
		for p := 0; p <= maxPos; p++ {
			r := ToRange(p, count)
			if p%2 == 0 {
				assert.Equal(t, r.Lo, r.Hi, "position %d", p)
			} else {
				assert.Equal(t, r.Lo+1, r.Hi, "position %d", p)
			}
		}
	}
	check(MaxSensitivityPosition, SensitivityCount)
	check(MaxDistributionPosition, DistributionCount)
}

func TestFromContinuous(t *testing.T) {
	assert.Equal(t, 0, FromContinuous(-0.4, 6))
	assert.Equal(t, 3, FromContinuous(1.5, 6))
	assert.Equal(t, 2, FromContinuous(1.1, 6))
	assert.Equal(t, 6, FromContinuous(3.4, 6))
	assert.Equal(t, 4, FromContinuous(2.9, 4))
	// 0.25*2 = 0.5 rounds half to even.
	assert.Equal(t, 0, FromContinuous(0.25, 6))
	assert.Equal(t, 2, FromContinuous(0.75, 6))
}

func TestSnapInt(t *testing.T) {
	assert.Equal(t, 0, SnapInt(-1, 8))
	assert.Equal(t, 3, SnapInt(3.2, 8))
	assert.Equal(t, 8, SnapInt(12.7, 8))
	assert.Equal(t, 2, SnapInt(2.5, 8))
	assert.Equal(t, 4, SnapInt(3.5, 8))
}

func TestSnapping_HugeCoordinatesClampToBounds(t *testing.T) {
	assert.Equal(t, 6, FromContinuous(1e300, 6))
	assert.Equal(t, 0, FromContinuous(-1e300, 6))
	assert.Equal(t, 6, FromContinuous(math.Inf(1), 6))
	assert.Equal(t, 0, FromContinuous(math.Inf(-1), 6))
	assert.Equal(t, 0, FromContinuous(math.NaN(), 6))

	assert.Equal(t, 8, SnapInt(1e19, 8))
	assert.Equal(t, 8, SnapInt(1e300, 8))
	assert.Equal(t, 0, SnapInt(-1e300, 8))
	assert.Equal(t, 8, SnapInt(math.Inf(1), 8))
}

func TestDrag_HugeCoordinatesSelectMaximum(t *testing.T) {
	cur := DefaultSelection()

	next, ok := ApplyLikelihoodDrag(DragBox{X0: f(1e300), X1: f(1e300), Y0: f(1e300), Y1: f(1e300)}, cur)
	require.True(t, ok)
	assert.Equal(t, MaxSensitivityPosition, next.Sensitivity)
	assert.Equal(t, MaxDistributionPosition, next.Distribution)

	next, ok = ApplyDangerDrag(DragBox{X0: f(1e19), X1: f(2e19)}, cur)
	require.True(t, ok)
	assert.Equal(t, IndexRange{Lo: MaxSizeIndex, Hi: MaxSizeIndex}, next.Size)
}

func TestSelectionClamp(t *testing.T) {
	got := Selection{Sensitivity: 11, Distribution: -2, Size: IndexRange{Lo: 12, Hi: 3}}.Clamp()
	assert.Equal(t, Selection{Sensitivity: 6, Distribution: 0, Size: IndexRange{Lo: 3, Hi: 8}}, got)
}

func TestIndexRangeJSON(t *testing.T) {
	b, err := json.Marshal(IndexRange{Lo: 1, Hi: 4})
	require.NoError(t, err)
	assert.JSONEq(t, `[1,4]`, string(b))

	var r IndexRange
	require.NoError(t, json.Unmarshal([]byte(`[2,7]`), &r))
	assert.Equal(t, IndexRange{Lo: 2, Hi: 7}, r)

	require.Error(t, json.Unmarshal([]byte(`[2]`), &r))
	require.Error(t, json.Unmarshal([]byte(`"x"`), &r))
}

func TestApplyLikelihoodDrag(t *testing.T) {
	cur := DefaultSelection()

	next, ok := ApplyLikelihoodDrag(DragBox{X0: f(0.55), X1: f(2.45), Y0: f(-0.45), Y1: f(0.45)}, cur)
	require.True(t, ok)
	assert.Equal(t, 3, next.Sensitivity)
	assert.Equal(t, 0, next.Distribution)
	assert.Equal(t, cur.Size, next.Size)
}

func TestApplyLikelihoodDrag_ReversedMatchesOrdered(t *testing.T) {
	cur := DefaultSelection()
	a, okA := ApplyLikelihoodDrag(DragBox{X0: f(2.9), X1: f(1.2), Y0: f(1.8), Y1: f(0.1)}, cur)
	b, okB := ApplyLikelihoodDrag(DragBox{X0: f(1.2), X1: f(2.9), Y0: f(0.1), Y1: f(1.8)}, cur)
	require.True(t, okA)
	require.True(t, okB)
	assert.Equal(t, a, b)
}

func TestApplyLikelihoodDrag_Incomplete(t *testing.T) {
	cur := Selection{Sensitivity: 5, Distribution: 3, Size: IndexRange{Lo: 0, Hi: 2}}
	next, ok := ApplyLikelihoodDrag(DragBox{X0: f(0), X1: f(1), Y0: f(1)}, cur)
	assert.False(t, ok)
	assert.Equal(t, cur, next)

	next, ok = ApplyLikelihoodDrag(DragBox{}, cur)
	assert.False(t, ok)
	assert.Equal(t, cur, next)
}

func TestApplyDangerDrag(t *testing.T) {
	cur := DefaultSelection()

	next, ok := ApplyDangerDrag(DragBox{X0: f(1.5), X1: f(5.5)}, cur)
	require.True(t, ok)
	assert.Equal(t, IndexRange{Lo: 2, Hi: 5}, next.Size)
	assert.Equal(t, cur.Sensitivity, next.Sensitivity)

	reversed, ok := ApplyDangerDrag(DragBox{X0: f(5.5), X1: f(1.5)}, cur)
	require.True(t, ok)
	assert.Equal(t, next, reversed)
}

func TestApplyDangerDrag_NarrowBoxCollapses(t *testing.T) {
	next, ok := ApplyDangerDrag(DragBox{X0: f(3.9), X1: f(4.1)}, DefaultSelection())
	require.True(t, ok)
	assert.Equal(t, IndexRange{Lo: 4, Hi: 4}, next.Size)
}

func TestApplyDangerDrag_Incomplete(t *testing.T) {
	cur := DefaultSelection()
	next, ok := ApplyDangerDrag(DragBox{X0: f(1), Y0: f(0), Y1: f(3)}, cur)
	assert.False(t, ok)
	assert.Equal(t, cur, next)
}
