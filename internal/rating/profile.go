package rating

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
)

// gridProfile is a forecast center's replacement for the built-in grid.
//
//	name = "CNFAC"
//	rows = [
//	  ["Low", "Low", ...],   # Unlikely
//	  ...
//	]
type gridProfile struct {
	Name string     `toml:"name"`
	Rows [][]string `toml:"rows"`
}

// ParseGridProfile decodes a TOML grid profile. Row 0 is the Unlikely row,
// column 0 is size 1.
func ParseGridProfile(data []byte) (DangerGrid, error) {
	var g DangerGrid
	var p gridProfile
	if err := toml.Unmarshal(data, &p); err != nil {
		return g, goerr.Wrap(err, "failed to decode grid profile")
	}
	if len(p.Rows) != GridSize {
		return g, goerr.Wrap(ErrMalformedGrid, "grid profile needs 9 rows",
			goerr.V("name", p.Name), goerr.V("rows", len(p.Rows)))
	}
	for r, row := range p.Rows {
		if len(row) != GridSize {
			return g, goerr.Wrap(ErrMalformedGrid, "grid profile row needs 9 cells",
				goerr.V("name", p.Name), goerr.V("row", r), goerr.V("cells", len(row)))
		}
		for c, name := range row {
			lvl, err := ParseDangerLevel(name)
			if err != nil {
				return g, goerr.Wrap(err, "invalid grid profile cell",
					goerr.V("name", p.Name), goerr.V("row", r), goerr.V("col", c))
			}
			g[r][c] = lvl
		}
	}
	return g, nil
}

// LoadGridProfile reads a profile from disk. An empty path yields the
// built-in grid.
func LoadGridProfile(path string) (DangerGrid, error) {
	if path == "" {
		return DefaultGrid(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return DangerGrid{}, goerr.Wrap(err, "failed to read grid profile", goerr.V("path", path))
	}
	g, err := ParseGridProfile(data)
	if err != nil {
		return DangerGrid{}, goerr.Wrap(err, "failed to load grid profile", goerr.V("path", path))
	}
	return g, nil
}
