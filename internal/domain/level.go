package domain

import (
	"math"
	"strings"

	apperrors "github.com/spec-kit/developer-service/pkg/util/errorutil"
)

// DeveloperLevel is the seniority band governing the allowed experience range.
type DeveloperLevel string

const (
	DeveloperLevelJunior DeveloperLevel = "JUNIOR"
	DeveloperLevelMid    DeveloperLevel = "MID"
	DeveloperLevelSenior DeveloperLevel = "SENIOR"

	// legacyMidLevel is the spelling older clients still send for MID.
	legacyMidLevel = "JUNGNIOR"
)

// ExperienceRange is an inclusive [Min, Max] range of experience years.
type ExperienceRange struct {
	Min int
	Max int
}

// Contains reports whether years lies inside the range, bounds included.
func (r ExperienceRange) Contains(years int) bool {
	return years >= r.Min && years <= r.Max
}

// Adjacent bands share their boundary value: 4 and 10 are valid for both neighbours.
var experienceRanges = map[DeveloperLevel]ExperienceRange{
	DeveloperLevelJunior: {Min: 0, Max: 4},
	DeveloperLevelMid:    {Min: 4, Max: 10},
	DeveloperLevelSenior: {Min: 10, Max: math.MaxInt},
}

// Levels lists the known levels from least to most senior.
func Levels() []DeveloperLevel {
	return []DeveloperLevel{DeveloperLevelJunior, DeveloperLevelMid, DeveloperLevelSenior}
}

// ParseDeveloperLevel normalizes a client supplied level, accepting the legacy MID alias.
func ParseDeveloperLevel(raw string) (DeveloperLevel, bool) {
	value := strings.ToUpper(strings.TrimSpace(raw))
	if value == legacyMidLevel {
		return DeveloperLevelMid, true
	}
	level := DeveloperLevel(value)
	return level, level.Valid()
}

// ExperienceRange returns the allowed experience years for the level.
func (l DeveloperLevel) ExperienceRange() (ExperienceRange, bool) {
	r, ok := experienceRanges[l]
	return r, ok
}

// Valid reports whether l is a known level.
func (l DeveloperLevel) Valid() bool {
	_, ok := experienceRanges[l]
	return ok
}

// ValidateExperienceYears fails with LEVEL_EXPERIENCE_YEARS_NOT_MATCHED unless years
// lies within the inclusive range of level.
func ValidateExperienceYears(level DeveloperLevel, years int) error {
	r, ok := level.ExperienceRange()
	if !ok || !r.Contains(years) {
		return apperrors.NewLevelExperienceMismatch(string(level), years)
	}
	return nil
}
