package industry

const (
	// MaxMELevel is the highest researchable material-efficiency level
	MaxMELevel = 10

	// MaxTELevel is the highest researchable time-efficiency level
	MaxTELevel = 20
)

// OwnedBlueprintLevels are the research levels of a blueprint copy a
// character actually owns. When present they supersede whatever levels
// the caller supplied for that blueprint.
type OwnedBlueprintLevels struct {
	MELevel int
	TELevel int
}

// EfficiencyState is an immutable pair of research levels supplied by
// the caller for a resolve() invocation.
type EfficiencyState struct {
	MELevel int
	TELevel int
}

// NewEfficiencyState creates an efficiency state with range validation
func NewEfficiencyState(meLevel, teLevel int) (EfficiencyState, error) {
	if meLevel < 0 || meLevel > MaxMELevel {
		return EfficiencyState{}, &ErrInvalidInput{
			Field:   "meLevel",
			Value:   meLevel,
			Message: "material efficiency must be between 0 and 10",
		}
	}
	if teLevel < 0 || teLevel > MaxTELevel {
		return EfficiencyState{}, &ErrInvalidInput{
			Field:   "teLevel",
			Value:   teLevel,
			Message: "time efficiency must be between 0 and 20",
		}
	}
	return EfficiencyState{MELevel: meLevel, TELevel: teLevel}, nil
}

// Override returns the state produced by applying an owner-specific
// blueprint copy on top of the caller-supplied levels. A nil override
// leaves the state untouched.
func (e EfficiencyState) Override(owned *OwnedBlueprintLevels) EfficiencyState {
	if owned == nil {
		return e
	}
	return EfficiencyState{MELevel: owned.MELevel, TELevel: owned.TELevel}
}
