package dto

import (
	"strings"
	"time"

	"github.com/spec-kit/developer-service/internal/domain"
)

// CreateDeveloperRequest payload.
type CreateDeveloperRequest struct {
	DeveloperLevel     string `json:"developerLevel" validate:"required,oneof=JUNIOR MID JUNGNIOR SENIOR"`
	DeveloperSkillType string `json:"developerSkillType" validate:"required,oneof=BACK_END FRONT_END FULL_STACK"`
	ExperienceYears    *int   `json:"experienceYears" validate:"required,gte=0"`
	MemberID           string `json:"memberId" validate:"required,min=3,max=50"`
	Name               string `json:"name" validate:"required,min=3,max=20"`
	Age                *int   `json:"age" validate:"required,gte=18"`
}

// EditDeveloperRequest payload.
type EditDeveloperRequest struct {
	DeveloperLevel     string `json:"developerLevel" validate:"required,oneof=JUNIOR MID JUNGNIOR SENIOR"`
	DeveloperSkillType string `json:"developerSkillType" validate:"required,oneof=BACK_END FRONT_END FULL_STACK"`
	ExperienceYears    *int   `json:"experienceYears" validate:"required,gte=0"`
}

// Normalize trims identifiers and upper-cases enum fields before validation.
func (r *CreateDeveloperRequest) Normalize() {
	r.DeveloperLevel = normalizeEnum(r.DeveloperLevel)
	r.DeveloperSkillType = normalizeEnum(r.DeveloperSkillType)
	r.MemberID = strings.TrimSpace(r.MemberID)
	r.Name = strings.TrimSpace(r.Name)
}

// Normalize upper-cases enum fields before validation.
func (r *EditDeveloperRequest) Normalize() {
	r.DeveloperLevel = normalizeEnum(r.DeveloperLevel)
	r.DeveloperSkillType = normalizeEnum(r.DeveloperSkillType)
}

func normalizeEnum(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// CreateDeveloperResponse echoes the registered profile.
type CreateDeveloperResponse struct {
	DeveloperLevel     domain.DeveloperLevel     `json:"developerLevel"`
	DeveloperSkillType domain.DeveloperSkillType `json:"developerSkillType"`
	ExperienceYears    int                       `json:"experienceYears"`
	MemberID           string                    `json:"memberId"`
}

// DeveloperSummary is a list entry.
type DeveloperSummary struct {
	DeveloperLevel     domain.DeveloperLevel     `json:"developerLevel"`
	DeveloperSkillType domain.DeveloperSkillType `json:"developerSkillType"`
	MemberID           string                    `json:"memberId"`
}

// DeveloperDetailResponse provides full developer info.
type DeveloperDetailResponse struct {
	DeveloperLevel     domain.DeveloperLevel     `json:"developerLevel"`
	DeveloperSkillType domain.DeveloperSkillType `json:"developerSkillType"`
	ExperienceYears    int                       `json:"experienceYears"`
	MemberID           string                    `json:"memberId"`
	Name               string                    `json:"name"`
	Age                int                       `json:"age"`
	StatusCode         domain.StatusCode         `json:"statusCode"`
}

// RetiredDeveloperResponse is an archive entry.
type RetiredDeveloperResponse struct {
	MemberID  string    `json:"memberId"`
	Name      string    `json:"name"`
	RetiredAt time.Time `json:"retiredAt"`
}

// NewCreateDeveloperResponse maps a stored developer.
func NewCreateDeveloperResponse(dev domain.Developer) CreateDeveloperResponse {
	return CreateDeveloperResponse{
		DeveloperLevel:     dev.DeveloperLevel,
		DeveloperSkillType: dev.DeveloperSkillType,
		ExperienceYears:    dev.ExperienceYears,
		MemberID:           dev.MemberID,
	}
}

// NewDeveloperSummary maps a stored developer.
func NewDeveloperSummary(dev domain.Developer) DeveloperSummary {
	return DeveloperSummary{
		DeveloperLevel:     dev.DeveloperLevel,
		DeveloperSkillType: dev.DeveloperSkillType,
		MemberID:           dev.MemberID,
	}
}

// NewDeveloperDetailResponse maps a stored developer.
func NewDeveloperDetailResponse(dev domain.Developer) DeveloperDetailResponse {
	return DeveloperDetailResponse{
		DeveloperLevel:     dev.DeveloperLevel,
		DeveloperSkillType: dev.DeveloperSkillType,
		ExperienceYears:    dev.ExperienceYears,
		MemberID:           dev.MemberID,
		Name:               dev.Name,
		Age:                dev.Age,
		StatusCode:         dev.StatusCode,
	}
}

// NewRetiredDeveloperResponse maps an archive row.
func NewRetiredDeveloperResponse(retired domain.RetiredDeveloper) RetiredDeveloperResponse {
	return RetiredDeveloperResponse{
		MemberID:  retired.MemberID,
		Name:      retired.Name,
		RetiredAt: retired.CreatedAt,
	}
}
