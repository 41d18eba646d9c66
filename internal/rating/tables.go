package rating

// likelihoodMatrix rows are distribution (Isolated, Specific, Widespread),
// columns are sensitivity (Unreactive, Stubborn, Reactive, Touchy). Cells are
// likelihood indices; only the named steps 0,2,4,6,8 appear.
var likelihoodMatrix = [DistributionCount][SensitivityCount]int{
	{0, 0, 2, 4}, // Unlikely, Unlikely, Possible, Likely
	{0, 2, 4, 6}, // Unlikely, Possible, Likely, Very Likely
	{0, 2, 6, 8}, // Unlikely, Possible, Very Likely, Almost Certain
}

// LikelihoodMatrix returns a copy of the likelihood lookup table.
func LikelihoodMatrix() [DistributionCount][SensitivityCount]int {
	return likelihoodMatrix
}

// defaultGrid rows are likelihood 0..8, columns are size 0..8.
var defaultGrid = DangerGrid{
	{Low, Low, Low, Low, Low, Low, Low, Low, Low},
	{Low, Low, Low, Low, Moderate, Moderate, Considerable, Considerable, Considerable},
	{Low, Low, Moderate, Moderate, Moderate, Considerable, Considerable, High, High},
	{Low, Low, Moderate, Moderate, Considerable, Considerable, High, High, Extreme},
	{Low, Moderate, Moderate, Considerable, Considerable, High, High, Extreme, Extreme},
	{Low, Moderate, Considerable, Considerable, High, High, Extreme, Extreme, Extreme},
	{Low, Moderate, Considerable, High, High, Extreme, Extreme, Extreme, Extreme},
	{Low, Moderate, High, High, Extreme, Extreme, Extreme, Extreme, Extreme},
	{Low, Moderate, High, High, Extreme, Extreme, Extreme, Extreme, Extreme},
}

// DefaultGrid returns the built-in danger grid.
func DefaultGrid() DangerGrid {
	return defaultGrid
}
