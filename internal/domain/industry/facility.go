package industry

import "fmt"

// SecurityZone classifies the space a facility is anchored in
type SecurityZone string

const (
	SecurityHigh SecurityZone = "HIGH"
	SecurityLow  SecurityZone = "LOW"
	// SecurityNull covers both null-sec and wormhole space; they share
	// the same rig multiplier.
	SecurityNull SecurityZone = "NULL"
)

// ParseSecurityZone converts a stored zone string into a SecurityZone
func ParseSecurityZone(s string) (SecurityZone, error) {
	switch s {
	case "HIGH", "high":
		return SecurityHigh, nil
	case "LOW", "low":
		return SecurityLow, nil
	case "NULL", "null", "WORMHOLE", "wormhole":
		return SecurityNull, nil
	default:
		return "", fmt.Errorf("unknown security zone: %q", s)
	}
}

// RigMultiplier returns the step-function multiplier applied to rig
// bonuses in this zone. It scales rig bonuses only, never the base
// structure bonus.
func (z SecurityZone) RigMultiplier() float64 {
	switch z {
	case SecurityLow:
		return 1.9
	case SecurityNull:
		return 2.1
	default:
		return 1.0
	}
}

// Facility is an anchored structure where jobs are installed. RigTypeIDs
// reference rig definitions in the catalog; the structure type references
// the fixed structure-tier bonus set.
type Facility struct {
	FacilityID      string
	Name            string
	StructureTypeID int64
	SolarSystemID   int64
	SecurityZone    SecurityZone
	RigTypeIDs      []int64
	TaxRate         float64 // facility owner's installation tax, as a fraction
}

// NewFacility creates a facility with validation
func NewFacility(facilityID string, structureTypeID, solarSystemID int64, zone SecurityZone, taxRate float64) (*Facility, error) {
	if facilityID == "" {
		return nil, &ErrInvalidInput{Field: "facilityID", Value: facilityID, Message: "facility id cannot be empty"}
	}
	if taxRate < 0 {
		return nil, &ErrInvalidInput{Field: "taxRate", Value: taxRate, Message: "tax rate cannot be negative"}
	}
	return &Facility{
		FacilityID:      facilityID,
		StructureTypeID: structureTypeID,
		SolarSystemID:   solarSystemID,
		SecurityZone:    zone,
		TaxRate:         taxRate,
		RigTypeIDs:      make([]int64, 0),
	}, nil
}

// AddRig installs a rig on the facility
func (f *Facility) AddRig(rigTypeID int64) {
	f.RigTypeIDs = append(f.RigTypeIDs, rigTypeID)
}
