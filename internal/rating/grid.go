package rating

import (
	"errors"

	"github.com/m-mizutani/goerr/v2"
)

var ErrMalformedGrid = errors.New("malformed danger grid")

// DangerGrid is indexed [likelihood][size]. It is a value type: assigning or
// passing it copies every cell.
type DangerGrid [GridSize][GridSize]DangerLevel

// At returns the level for a likelihood and size index.
func (g DangerGrid) At(likelihood, size int) DangerLevel {
	return g[likelihood][size]
}

// Validate reports the first cell holding an unrecognized level.
func (g DangerGrid) Validate() error {
	for r := range g {
		for c := range g[r] {
			if !g[r][c].Valid() {
				return goerr.Wrap(ErrMalformedGrid, "invalid cell",
					goerr.V("row", r), goerr.V("col", c), goerr.V("ordinal", int(g[r][c])))
			}
		}
	}
	return nil
}

// Encode packs the grid row-major as one ordinal digit per cell, for
// compact storage in a session cookie.
func (g DangerGrid) Encode() string {
	buf := make([]byte, 0, GridSize*GridSize)
	for r := range g {
		for c := range g[r] {
			buf = append(buf, byte('0'+int(g[r][c])))
		}
	}
	return string(buf)
}

// DecodeGrid reverses Encode.
func DecodeGrid(s string) (DangerGrid, error) {
	var g DangerGrid
	if len(s) != GridSize*GridSize {
		return g, goerr.Wrap(ErrMalformedGrid, "wrong encoded length", goerr.V("length", len(s)))
	}
	for i := 0; i < len(s); i++ {
		lvl := DangerLevel(int(s[i]) - '0')
		if !lvl.Valid() {
			return g, goerr.Wrap(ErrMalformedGrid, "invalid encoded cell", goerr.V("offset", i))
		}
		g[i/GridSize][i%GridSize] = lvl
	}
	return g, nil
}

// CellEdit is a single danger grid edit as received from the dashboard.
type CellEdit struct {
	Row   int    `json:"row"`
	Col   int    `json:"col"`
	Value string `json:"value"`
}

// GridStore owns one session's editable danger grid. It is not safe for
// concurrent use; a session's interactions are serialized.
type GridStore struct {
	grid     DangerGrid
	defaults DangerGrid
}

// NewGridStore starts from defaults, which also become the Reset target.
func NewGridStore(defaults DangerGrid) *GridStore {
	return &GridStore{grid: defaults, defaults: defaults}
}

// RestoreGridStore resumes a store whose grid has already been edited.
func RestoreGridStore(current, defaults DangerGrid) *GridStore {
	return &GridStore{grid: current, defaults: defaults}
}

func (s *GridStore) Grid() DangerGrid {
	return s.grid
}

// SetCell replaces exactly one cell. Edits with an out-of-range position or
// an unrecognized level are ignored and leave the grid untouched; ok reports
// whether the edit was applied and previous holds the replaced level.
func (s *GridStore) SetCell(e CellEdit) (previous DangerLevel, ok bool) {
	if e.Row < 0 || e.Row >= GridSize || e.Col < 0 || e.Col >= GridSize {
		return NoRating, false
	}
	lvl, err := ParseDangerLevel(e.Value)
	if err != nil {
		return NoRating, false
	}
	previous = s.grid[e.Row][e.Col]
	s.grid[e.Row][e.Col] = lvl
	return previous, true
}

// Reset discards every edit and restores the configured default grid: the
// one the store was created with, which is a loaded grid profile when one is
// configured and the built-in table otherwise.
func (s *GridStore) Reset() {
	s.grid = s.defaults
}
