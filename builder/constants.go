// Package builder defines shared constants used by grid generators, ensuring
// consistent defaults and validation across all constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodRandomGrid is the canonical name for the RandomGrid constructor.
	MethodRandomGrid = "RandomGrid"
	// MethodFull is the canonical name for the Full constructor.
	MethodFull = "Full"
	// MethodEmpty is the canonical name for the Empty constructor.
	MethodEmpty = "Empty"
	// MethodCheckerboard is the canonical name for the Checkerboard constructor.
	MethodCheckerboard = "Checkerboard"
	// MethodFromRows is the canonical name for the FromRows constructor.
	MethodFromRows = "FromRows"
)

//-----------------------------------------------------------------------------
// Occupancy policy
//-----------------------------------------------------------------------------

const (
	// EmptyThreshold is the draw below which a cell stays empty.
	// A draw in [EmptyThreshold, 1) marks the cell occupied.
	EmptyThreshold = 0.3

	// OccupancyProbability is the chance that a cell is occupied under the
	// default threshold.
	OccupancyProbability = 1 - EmptyThreshold

	// MinGridSize is the smallest accepted side length.
	MinGridSize = 1
)

//-----------------------------------------------------------------------------
// Probability bounds
//-----------------------------------------------------------------------------

const (
	// MinProbability is the lowest valid probability value.
	MinProbability = 0.0
	// MaxProbability is the highest valid probability value.
	MaxProbability = 1.0
)
