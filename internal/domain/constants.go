package domain

// Default lot configuration values
const (
	DefaultBillingUnitSeconds = 3600 // 1 hour
)

// Business validation constants
const (
	MinLevels             = 1
	MaxLevels             = 50
	MaxSpotsPerLevel      = 1000
	MaxLicensePlateLength = 16
	MaxNotesLength        = 500
)

// Spot ID layout: level number * SpotIDLevelStride + 1-based ordinal within
// the level, so level 1 holds spots 101, 102, ... by default.
const SpotIDLevelStride = 100
