package logic

import "knighty/internal/domain"

// SheetStore provides read access to catalog entries in display order
type SheetStore interface {
	GetSheet(id string) *domain.Cheatsheet
	GetAllSheets() []domain.Cheatsheet
	Resolve(ref string) (domain.Cheatsheet, error)
	Count() int
}

// ResetPolicy decides whether changing one query axis resets the others
type ResetPolicy int

const (
	// ResetSingleFocus clears the other axes whenever one changes
	ResetSingleFocus ResetPolicy = iota
	// ResetIndependent leaves the other axes untouched
	ResetIndependent
)

// String returns the config spelling of the policy
func (p ResetPolicy) String() string {
	switch p {
	case ResetIndependent:
		return "independent"
	default:
		return "single-focus"
	}
}

// ParseResetPolicy maps a config value to a policy; unknown values fall
// back to ResetSingleFocus
func ParseResetPolicy(s string) ResetPolicy {
	switch s {
	case "independent":
		return ResetIndependent
	default:
		return ResetSingleFocus
	}
}
