package domain

// CompatRule decides whether a vehicle type may occupy a spot type.
// Built once from lot configuration and immutable afterwards, so it is safe
// to share across concurrent requests. New taxonomies are introduced purely
// through configuration.
type CompatRule struct {
	wildcard map[SpotType]bool
	allowed  map[VehicleType]map[SpotType]bool
}

// NewCompatRule builds a rule from a list of wildcard spot types (accepting
// any vehicle) and a vehicle -> allowed spot types matrix.
func NewCompatRule(wildcardSpots []SpotType, matrix map[VehicleType][]SpotType) *CompatRule {
	rule := &CompatRule{
		wildcard: make(map[SpotType]bool, len(wildcardSpots)),
		allowed:  make(map[VehicleType]map[SpotType]bool, len(matrix)),
	}

	for _, st := range wildcardSpots {
		rule.wildcard[st] = true
	}

	for vt, spotTypes := range matrix {
		spots := make(map[SpotType]bool, len(spotTypes))
		for _, st := range spotTypes {
			spots[st] = true
		}
		rule.allowed[vt] = spots
	}

	return rule
}

// DefaultCompatRule returns the standard lot matrix: handicapped spots accept
// any vehicle, bikes use compact spots, cars use compact or large, trucks
// large only.
func DefaultCompatRule() *CompatRule {
	return NewCompatRule(
		[]SpotType{SpotHandicapped},
		map[VehicleType][]SpotType{
			VehicleBike:  {SpotCompact},
			VehicleCar:   {SpotCompact, SpotLarge},
			VehicleTruck: {SpotLarge},
		},
	)
}

// Fits reports whether a vehicle of type vt may occupy a spot of type st.
func (r *CompatRule) Fits(st SpotType, vt VehicleType) bool {
	if r.wildcard[st] {
		return true
	}
	return r.allowed[vt][st]
}
