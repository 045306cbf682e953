package industry

import "fmt"

// Activity identifies the production activity a blueprint is used for.
// It determines which catalog table and which bonus rules apply.
type Activity string

const (
	// ActivityManufacturing is standard item production from a blueprint
	ActivityManufacturing Activity = "MANUFACTURING"

	// ActivityReaction is moon-material and composite reaction processing
	ActivityReaction Activity = "REACTION"

	// ActivityInvention produces a tech-II blueprint copy from a tech-I prototype
	ActivityInvention Activity = "INVENTION"
)

// ParseActivity converts a user-supplied string into an Activity.
// Matching is case-insensitive on the common spellings.
func ParseActivity(s string) (Activity, error) {
	switch s {
	case "manufacturing", "MANUFACTURING":
		return ActivityManufacturing, nil
	case "reaction", "REACTION":
		return ActivityReaction, nil
	case "invention", "INVENTION":
		return ActivityInvention, nil
	default:
		return "", fmt.Errorf("unknown activity: %q", s)
	}
}

// IsValid reports whether the activity is one of the known variants
func (a Activity) IsValid() bool {
	switch a {
	case ActivityManufacturing, ActivityReaction, ActivityInvention:
		return true
	}
	return false
}
