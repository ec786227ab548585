package domain

// SpotType classifies a parking spot. The set is open: lot configuration may
// introduce new spot types without code changes.
type SpotType string

const (
	SpotCompact     SpotType = "compact"
	SpotLarge       SpotType = "large"
	SpotHandicapped SpotType = "handicapped"
)

// VehicleType classifies an incoming vehicle. Like SpotType, the set is open
// and driven by the lot compatibility configuration.
type VehicleType string

const (
	VehicleBike  VehicleType = "bike"
	VehicleCar   VehicleType = "car"
	VehicleTruck VehicleType = "truck"
)

// Spot represents a single parking spot on a level.
// Occupied transitions only false->true (allocation) and true->false
// (release); the structure itself never changes after lot construction.
type Spot struct {
	ID          int64
	LevelNumber int
	Type        SpotType
	Occupied    bool
}

// Level represents one parking level with its ordered spots.
type Level struct {
	Number int
	Spots  []*Spot
}

// LevelAvailability holds per-level availability counts for a vehicle type.
type LevelAvailability struct {
	LevelNumber int
	Available   int
	Total       int
}
