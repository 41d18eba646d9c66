// Package rating evaluates avalanche danger from avalanche-problem attributes.
//
// Two fixed lookup tables drive the evaluation. The likelihood matrix maps a
// spatial distribution and a sensitivity to triggers onto a likelihood step;
// the danger grid maps a likelihood step and a destructive size onto a danger
// level. Sensitivity and distribution are addressed at half-step granularity:
// an odd slider position sits between two named categories and widens the
// lookup to cover both of them.
//
// Evaluation order:
//
//  1. Expand the sensitivity and distribution positions into named-index
//     ranges (ToRange).
//  2. Collect every likelihood matrix cell in the cross product of those
//     ranges and reduce to a min/max likelihood range.
//  3. Collect every danger grid cell in the rectangle spanned by the
//     likelihood range and the selected size range.
//  4. Report the highest danger level found.
//
// The likelihood matrix is immutable. The danger grid is a value type; a
// GridStore owns one mutable copy per dashboard session.
package rating
