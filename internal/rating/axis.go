package rating

import (
	"encoding/json"
	"math"

	"github.com/m-mizutani/goerr/v2"
)

// IndexRange is a closed, ordered index interval. It encodes to JSON as
// [lo, hi].
type IndexRange struct {
	Lo int
	Hi int
}

func (r IndexRange) Single() bool {
	return r.Lo == r.Hi
}

func (r IndexRange) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{r.Lo, r.Hi})
}

func (r *IndexRange) UnmarshalJSON(b []byte) error {
	var pair []int
	if err := json.Unmarshal(b, &pair); err != nil {
		return goerr.Wrap(err, "failed to decode index range")
	}
	if len(pair) != 2 {
		return goerr.New("index range needs exactly two values", goerr.V("count", len(pair)))
	}
	r.Lo, r.Hi = pair[0], pair[1]
	return nil
}

// ToRange expands a half-step slider position into the named-index range it
// covers. Even positions hit one category; odd positions straddle two
// adjacent ones. Both ends are clamped to [0, count-1].
func ToRange(position, count int) IndexRange {
	half := float64(position) / 2
	return IndexRange{
		Lo: clamp(int(math.Floor(half)), 0, count-1),
		Hi: clamp(int(math.Ceil(half)), 0, count-1),
	}
}

// FromContinuous converts a matrix coordinate into the nearest half-step
// slider position in [0, maxPosition].
func FromContinuous(coord float64, maxPosition int) int {
	return roundClamped(coord*2, maxPosition)
}

// SnapInt rounds a matrix coordinate to the nearest index in [0, maxIndex].
func SnapInt(coord float64, maxIndex int) int {
	return roundClamped(coord, maxIndex)
}

// roundClamped clamps before converting so huge or infinite coordinates land
// on the boundary instead of overflowing int.
func roundClamped(v float64, hi int) int {
	r := math.RoundToEven(v)
	switch {
	case math.IsNaN(r), r <= 0:
		return 0
	case r >= float64(hi):
		return hi
	}
	return int(r)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Selection is the slider state of one dashboard session.
type Selection struct {
	Sensitivity  int        `json:"sensitivity"`
	Distribution int        `json:"distribution"`
	Size         IndexRange `json:"size"`
}

// DefaultSelection is "Stubborn", "between Isolated and Specific", sizes 1.5 to 3.
func DefaultSelection() Selection {
	return Selection{
		Sensitivity:  2,
		Distribution: 1,
		Size:         IndexRange{Lo: 1, Hi: 4},
	}
}

// Clamp forces every field into its slider range and orders the size range.
// Out-of-range input from the client is clamped rather than rejected.
func (s Selection) Clamp() Selection {
	s.Sensitivity = clamp(s.Sensitivity, 0, MaxSensitivityPosition)
	s.Distribution = clamp(s.Distribution, 0, MaxDistributionPosition)
	lo := clamp(s.Size.Lo, 0, MaxSizeIndex)
	hi := clamp(s.Size.Hi, 0, MaxSizeIndex)
	if lo > hi {
		lo, hi = hi, lo
	}
	s.Size = IndexRange{Lo: lo, Hi: hi}
	return s
}

// DragBox is a rectangle drawn on one of the matrices, in data coordinates.
// Nil fields were not reported by the client.
type DragBox struct {
	X0 *float64 `json:"x0"`
	X1 *float64 `json:"x1"`
	Y0 *float64 `json:"y0"`
	Y1 *float64 `json:"y1"`
}

func ordered(a, b *float64) (lo, hi float64, ok bool) {
	if a == nil || b == nil {
		return 0, 0, false
	}
	lo, hi = *a, *b
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo, hi, true
}

// ApplyLikelihoodDrag moves the sensitivity and distribution sliders to the
// centre of a box drawn on the likelihood matrix (x = sensitivity,
// y = distribution). An incomplete box leaves cur unchanged and ok false.
func ApplyLikelihoodDrag(box DragBox, cur Selection) (next Selection, ok bool) {
	x0, x1, okX := ordered(box.X0, box.X1)
	y0, y1, okY := ordered(box.Y0, box.Y1)
	if !okX || !okY {
		return cur, false
	}
	next = cur
	next.Sensitivity = FromContinuous((x0+x1)/2, MaxSensitivityPosition)
	next.Distribution = FromContinuous((y0+y1)/2, MaxDistributionPosition)
	return next, true
}

// ApplyDangerDrag sets the size range from the horizontal extent of a box
// drawn on the danger matrix. Cell centres sit on integer coordinates, so
// each edge is pulled half a cell inwards before snapping.
func ApplyDangerDrag(box DragBox, cur Selection) (next Selection, ok bool) {
	x0, x1, okX := ordered(box.X0, box.X1)
	if !okX {
		return cur, false
	}
	lo := SnapInt(x0+0.5, MaxSizeIndex)
	hi := SnapInt(x1-0.5, MaxSizeIndex)
	if lo > hi {
		lo, hi = hi, lo
	}
	next = cur
	next.Size = IndexRange{Lo: lo, Hi: hi}
	return next, true
}
