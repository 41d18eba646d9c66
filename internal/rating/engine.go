package rating

import (
	"errors"

	"github.com/m-mizutani/goerr/v2"
)

// ErrIndexOutOfRange marks a likelihood or size range that escapes the
// danger grid. Callers clamp slider input first, so this is a bug upstream.
var ErrIndexOutOfRange = errors.New("index out of range")

// ComputeLikelihoodRange returns the min and max likelihood over every matrix
// cell touched by the two half-step positions. The full block is scanned
// because the matrix need not be monotonic along a diagonal.
func ComputeLikelihoodRange(sensitivityPos, distributionPos int) IndexRange {
	sens := ToRange(sensitivityPos, SensitivityCount)
	dist := ToRange(distributionPos, DistributionCount)

	out := IndexRange{Lo: MaxLikelihoodIndex, Hi: 0}
	for d := dist.Lo; d <= dist.Hi; d++ {
		for s := sens.Lo; s <= sens.Hi; s++ {
			v := likelihoodMatrix[d][s]
			out.Lo = min(out.Lo, v)
			out.Hi = max(out.Hi, v)
		}
	}
	return out
}

func checkGridRange(name string, r IndexRange) error {
	if r.Lo < 0 || r.Hi > GridSize-1 || r.Lo > r.Hi {
		return goerr.Wrap(ErrIndexOutOfRange, "invalid "+name+" range",
			goerr.V("lo", r.Lo), goerr.V("hi", r.Hi))
	}
	return nil
}

// CoveredLevels returns the distinct danger levels inside the rectangle
// likelihood × size, in ascending order.
func CoveredLevels(likelihood, size IndexRange, g DangerGrid) ([]DangerLevel, error) {
	if err := checkGridRange("likelihood", likelihood); err != nil {
		return nil, err
	}
	if err := checkGridRange("size", size); err != nil {
		return nil, err
	}

	var seen [Extreme + 1]bool
	for l := likelihood.Lo; l <= likelihood.Hi; l++ {
		for s := size.Lo; s <= size.Hi; s++ {
			lvl := g[l][s]
			if !lvl.Valid() {
				return nil, goerr.Wrap(ErrMalformedGrid, "invalid cell",
					goerr.V("row", l), goerr.V("col", s))
			}
			seen[lvl] = true
		}
	}

	levels := make([]DangerLevel, 0, len(seen))
	for i, ok := range seen {
		if ok {
			levels = append(levels, DangerLevel(i))
		}
	}
	return levels, nil
}

// ComputeMaxDanger returns the highest danger level inside the rectangle
// likelihood × size.
func ComputeMaxDanger(likelihood, size IndexRange, g DangerGrid) (DangerLevel, error) {
	levels, err := CoveredLevels(likelihood, size, g)
	if err != nil {
		return NoRating, err
	}
	return levels[len(levels)-1], nil
}

// Assessment is everything the dashboard renders for one selection.
type Assessment struct {
	Selection          Selection     `json:"selection"`
	SensitivityRange   IndexRange    `json:"sensitivity_range"`
	DistributionRange  IndexRange    `json:"distribution_range"`
	LikelihoodRange    IndexRange    `json:"likelihood_range"`
	CoveredLevels      []DangerLevel `json:"covered_levels"`
	MaxDanger          DangerLevel   `json:"max_danger"`
	SensitivityLabel   string        `json:"sensitivity_label"`
	DistributionLabel  string        `json:"distribution_label"`
	LikelihoodLabel    string        `json:"likelihood_label"`
	SizeLabel          string        `json:"size_label"`
	MaxDangerColor     string        `json:"max_danger_color"`
	MaxDangerTextColor string        `json:"max_danger_text_color"`
}

// Evaluate runs the full derivation for a selection against a grid. The
// selection is clamped first.
func Evaluate(sel Selection, g DangerGrid) (Assessment, error) {
	sel = sel.Clamp()

	likelihood := ComputeLikelihoodRange(sel.Sensitivity, sel.Distribution)
	levels, err := CoveredLevels(likelihood, sel.Size, g)
	if err != nil {
		return Assessment{}, goerr.Wrap(err, "failed to evaluate selection",
			goerr.V("sensitivity", sel.Sensitivity), goerr.V("distribution", sel.Distribution))
	}
	maxDanger := levels[len(levels)-1]

	return Assessment{
		Selection:          sel,
		SensitivityRange:   ToRange(sel.Sensitivity, SensitivityCount),
		DistributionRange:  ToRange(sel.Distribution, DistributionCount),
		LikelihoodRange:    likelihood,
		CoveredLevels:      levels,
		MaxDanger:          maxDanger,
		SensitivityLabel:   SensitivitySliderLabels[sel.Sensitivity],
		DistributionLabel:  DistributionSliderLabels[sel.Distribution],
		LikelihoodLabel:    RangeLabel(LikelihoodLabels, likelihood),
		SizeLabel:          RangeLabel(SizeLabels, sel.Size),
		MaxDangerColor:     maxDanger.Color(),
		MaxDangerTextColor: maxDanger.TextColor(),
	}, nil
}

// RangeLabel renders "A" for a single step and "A → B" otherwise.
func RangeLabel(labels []string, r IndexRange) string {
	if r.Single() {
		return labels[r.Lo]
	}
	return labels[r.Lo] + " → " + labels[r.Hi]
}
