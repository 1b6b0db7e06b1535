package domain

import "time"

// DeveloperSkillType enumerates the developer's primary area.
type DeveloperSkillType string

const (
	DeveloperSkillTypeBackEnd   DeveloperSkillType = "BACK_END"
	DeveloperSkillTypeFrontEnd  DeveloperSkillType = "FRONT_END"
	DeveloperSkillTypeFullStack DeveloperSkillType = "FULL_STACK"
)

// Valid reports whether t is a known skill type.
func (t DeveloperSkillType) Valid() bool {
	switch t {
	case DeveloperSkillTypeBackEnd, DeveloperSkillTypeFrontEnd, DeveloperSkillTypeFullStack:
		return true
	}
	return false
}

// StatusCode captures the employment lifecycle.
type StatusCode string

const (
	StatusCodeEmployed StatusCode = "EMPLOYED"
	StatusCodeRetired  StatusCode = "RETIRED"
)

// Developer is an active or retired developer record keyed by MemberID.
type Developer struct {
	ID                 int64
	MemberID           string
	Name               string
	Age                int
	DeveloperLevel     DeveloperLevel
	DeveloperSkillType DeveloperSkillType
	ExperienceYears    int
	StatusCode         StatusCode
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// DeveloperProfile holds the fields an edit may change.
type DeveloperProfile struct {
	DeveloperLevel     DeveloperLevel
	DeveloperSkillType DeveloperSkillType
	ExperienceYears    int
}

// WithProfile returns a copy of d carrying the given level, skill type and experience.
func (d Developer) WithProfile(p DeveloperProfile) Developer {
	d.DeveloperLevel = p.DeveloperLevel
	d.DeveloperSkillType = p.DeveloperSkillType
	d.ExperienceYears = p.ExperienceYears
	return d
}

// Retired returns a copy of d with status RETIRED.
func (d Developer) Retired() Developer {
	d.StatusCode = StatusCodeRetired
	return d
}

// Archive builds the archive entry recorded when d retires.
func (d Developer) Archive() RetiredDeveloper {
	return RetiredDeveloper{MemberID: d.MemberID, Name: d.Name}
}

// RetiredDeveloper is an append-only archive entry written at retirement.
type RetiredDeveloper struct {
	ID        int64
	MemberID  string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
