package rating

import (
	"errors"
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

const (
	// SensitivityCount is the number of named sensitivity categories.
	SensitivityCount = 4
	// DistributionCount is the number of named distribution categories.
	DistributionCount = 3
	// GridSize is the number of likelihood steps and of size steps.
	GridSize = 9

	MaxSensitivityPosition  = 2 * (SensitivityCount - 1)
	MaxDistributionPosition = 2 * (DistributionCount - 1)
	MaxSizeIndex            = GridSize - 1
	MaxLikelihoodIndex      = GridSize - 1
)

var (
	SensitivityLabels = []string{"Unreactive", "Stubborn", "Reactive", "Touchy"}
	// SensitivitySliderLabels covers every half-step position 0..6.
	SensitivitySliderLabels = []string{
		"Unreactive",
		"Unr.–Stub.",
		"Stubborn",
		"Stub.–React.",
		"Reactive",
		"React.–Touchy",
		"Touchy",
	}

	DistributionLabels = []string{"Isolated", "Specific", "Widespread"}
	// DistributionSliderLabels covers every half-step position 0..4.
	DistributionSliderLabels = []string{
		"Isolated",
		"Isol.–Specific",
		"Specific",
		"Spec.–Widespread",
		"Widespread",
	}

	SizeLabels = []string{"1", "1.5", "2", "2.5", "3", "3.5", "4", "4.5", "5"}

	// LikelihoodLabels interleaves the five named steps with four "between" steps.
	LikelihoodLabels = []string{
		"Unlikely",
		"Unlikely–Possible",
		"Possible",
		"Possible–Likely",
		"Likely",
		"Likely–Very Likely",
		"Very Likely",
		"Very Likely–Almost Certain",
		"Almost Certain",
	}
)

// ErrUnknownLevel is returned when a string does not name a danger level.
var ErrUnknownLevel = errors.New("unknown danger level")

// DangerLevel is an ordinal avalanche danger rating. NoRating is the lowest.
type DangerLevel int

const (
	NoRating DangerLevel = iota
	Low
	Moderate
	Considerable
	High
	Extreme
)

type dangerStyle struct {
	name   string
	abbrev string
	color  string
	text   string
}

var dangerStyles = [...]dangerStyle{
	NoRating:     {name: "No Rating", abbrev: "—", color: "#444444", text: "#cccccc"},
	Low:          {name: "Low", abbrev: "Low", color: "#50B848", text: "#111111"},
	Moderate:     {name: "Moderate", abbrev: "Mod", color: "#FFF200", text: "#111111"},
	Considerable: {name: "Considerable", abbrev: "Con", color: "#F7941E", text: "#111111"},
	High:         {name: "High", abbrev: "High", color: "#ED1C24", text: "#ffffff"},
	Extreme:      {name: "Extreme", abbrev: "Ext", color: "#231F20", text: "#ffffff"},
}

// DangerLevels returns every level in ascending order.
func DangerLevels() []DangerLevel {
	return []DangerLevel{NoRating, Low, Moderate, Considerable, High, Extreme}
}

func (d DangerLevel) Valid() bool {
	return d >= NoRating && d <= Extreme
}

func (d DangerLevel) String() string {
	if !d.Valid() {
		return "DangerLevel(" + strconv.Itoa(int(d)) + ")"
	}
	return dangerStyles[d].name
}

// Color is the official background color for the level.
func (d DangerLevel) Color() string {
	if !d.Valid() {
		return ""
	}
	return dangerStyles[d].color
}

// TextColor contrasts with Color.
func (d DangerLevel) TextColor() string {
	if !d.Valid() {
		return ""
	}
	return dangerStyles[d].text
}

func (d DangerLevel) Abbrev() string {
	if !d.Valid() {
		return ""
	}
	return dangerStyles[d].abbrev
}

// ParseDangerLevel matches a level by its display name. Matching is exact;
// the names come from our own dropdowns and grid profiles.
func ParseDangerLevel(s string) (DangerLevel, error) {
	for i, st := range dangerStyles {
		if st.name == s {
			return DangerLevel(i), nil
		}
	}
	return NoRating, goerr.Wrap(ErrUnknownLevel, "failed to parse danger level", goerr.V("value", s))
}

func (d DangerLevel) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, goerr.Wrap(ErrUnknownLevel, "failed to marshal danger level", goerr.V("ordinal", int(d)))
	}
	return []byte(d.String()), nil
}

func (d *DangerLevel) UnmarshalText(b []byte) error {
	lvl, err := ParseDangerLevel(strings.TrimSpace(string(b)))
	if err != nil {
		return err
	}
	*d = lvl
	return nil
}
