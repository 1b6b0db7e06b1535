package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"

	"github.com/spec-kit/developer-service/internal/api/dto"
	"github.com/spec-kit/developer-service/internal/api/validation"
	"github.com/spec-kit/developer-service/internal/domain"
	"github.com/spec-kit/developer-service/internal/service"
	apperrors "github.com/spec-kit/developer-service/pkg/util/errorutil"
)

// DevelopersHandler exposes the developer lifecycle endpoints.
type DevelopersHandler struct {
	service   *service.DeveloperService
	validator *validation.RequestValidator
}

// NewDevelopersHandler constructs handler.
func NewDevelopersHandler(developerService *service.DeveloperService, validator *validation.RequestValidator) *DevelopersHandler {
	return &DevelopersHandler{service: developerService, validator: validator}
}

// ListDevelopers GET /developers.
func (h *DevelopersHandler) ListDevelopers(c *fiber.Ctx) error {
	devs, err := h.service.ListEmployedDevelopers(c.UserContext())
	if err != nil {
		return err
	}
	items := lo.Map(devs, func(dev domain.Developer, _ int) dto.DeveloperSummary {
		return dto.NewDeveloperSummary(dev)
	})
	return c.JSON(fiber.Map{"data": items})
}

// GetDeveloperDetail GET /developer/:memberId.
func (h *DevelopersHandler) GetDeveloperDetail(c *fiber.Ctx) error {
	dev, err := h.service.GetDeveloperDetail(c.UserContext(), c.Params("memberId"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewDeveloperDetailResponse(*dev)})
}

// CreateDeveloper POST /create-developer.
func (h *DevelopersHandler) CreateDeveloper(c *fiber.Ctx) error {
	var req dto.CreateDeveloperRequest
	if err := h.validator.BindAndValidate(c, &req); err != nil {
		return err
	}
	profile, err := parseProfile(req.DeveloperLevel, req.DeveloperSkillType, *req.ExperienceYears)
	if err != nil {
		return err
	}

	dev, err := h.service.CreateDeveloper(c.UserContext(), service.CreateDeveloperInput{
		MemberID:           req.MemberID,
		Name:               req.Name,
		Age:                *req.Age,
		DeveloperLevel:     profile.DeveloperLevel,
		DeveloperSkillType: profile.DeveloperSkillType,
		ExperienceYears:    profile.ExperienceYears,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewCreateDeveloperResponse(*dev)})
}

// EditDeveloper PUT /developer/:memberId.
func (h *DevelopersHandler) EditDeveloper(c *fiber.Ctx) error {
	var req dto.EditDeveloperRequest
	if err := h.validator.BindAndValidate(c, &req); err != nil {
		return err
	}
	profile, err := parseProfile(req.DeveloperLevel, req.DeveloperSkillType, *req.ExperienceYears)
	if err != nil {
		return err
	}

	dev, err := h.service.EditDeveloper(c.UserContext(), c.Params("memberId"), profile)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewDeveloperDetailResponse(*dev)})
}

// RetireDeveloper DELETE /developer/:memberId.
func (h *DevelopersHandler) RetireDeveloper(c *fiber.Ctx) error {
	dev, err := h.service.RetireDeveloper(c.UserContext(), c.Params("memberId"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewDeveloperDetailResponse(*dev)})
}

// ListRetiredDevelopers GET /retired-developers.
func (h *DevelopersHandler) ListRetiredDevelopers(c *fiber.Ctx) error {
	retired, err := h.service.ListRetiredDevelopers(c.UserContext())
	if err != nil {
		return err
	}
	items := lo.Map(retired, func(r domain.RetiredDeveloper, _ int) dto.RetiredDeveloperResponse {
		return dto.NewRetiredDeveloperResponse(r)
	})
	return c.JSON(fiber.Map{"data": items})
}

func parseProfile(rawLevel, rawSkill string, years int) (domain.DeveloperProfile, error) {
	level, ok := domain.ParseDeveloperLevel(rawLevel)
	if !ok {
		return domain.DeveloperProfile{}, apperrors.NewValidationError("validation failed",
			map[string]any{"developerLevel": "unknown developer level"})
	}
	skill := domain.DeveloperSkillType(rawSkill)
	if !skill.Valid() {
		return domain.DeveloperProfile{}, apperrors.NewValidationError("validation failed",
			map[string]any{"developerSkillType": "unknown developer skill type"})
	}
	return domain.DeveloperProfile{
		DeveloperLevel:     level,
		DeveloperSkillType: skill,
		ExperienceYears:    years,
	}, nil
}
