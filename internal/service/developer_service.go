package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/developer-service/internal/domain"
	"github.com/spec-kit/developer-service/internal/events"
	"github.com/spec-kit/developer-service/internal/repository"
	apperrors "github.com/spec-kit/developer-service/pkg/util/errorutil"
)

// DeveloperService coordinates the developer lifecycle.
type DeveloperService struct {
	store      repository.Transactor
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// DeveloperDependencies bundles collaborators for the developer service.
type DeveloperDependencies struct {
	Store      repository.Transactor
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// CreateDeveloperInput describes a developer registration.
type CreateDeveloperInput struct {
	MemberID           string
	Name               string
	Age                int
	DeveloperLevel     domain.DeveloperLevel
	DeveloperSkillType domain.DeveloperSkillType
	ExperienceYears    int
}

// NewDeveloperService constructs the service.
func NewDeveloperService(deps DeveloperDependencies) *DeveloperService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DeveloperService{
		store:      deps.Store,
		dispatcher: deps.Dispatcher,
		logger:     logger.With(zap.String("component", "developer_service")),
	}
}

// CreateDeveloper registers a new EMPLOYED developer.
func (s *DeveloperService) CreateDeveloper(ctx context.Context, input CreateDeveloperInput) (*domain.Developer, error) {
	if err := domain.ValidateExperienceYears(input.DeveloperLevel, input.ExperienceYears); err != nil {
		return nil, err
	}

	dev := domain.Developer{
		MemberID:           input.MemberID,
		Name:               input.Name,
		Age:                input.Age,
		DeveloperLevel:     input.DeveloperLevel,
		DeveloperSkillType: input.DeveloperSkillType,
		ExperienceYears:    input.ExperienceYears,
		StatusCode:         domain.StatusCodeEmployed,
	}

	err := s.store.WithinTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
		if _, err := repos.Developers.GetByMemberID(ctx, input.MemberID); err == nil {
			return apperrors.NewDuplicatedMemberID(input.MemberID, nil)
		} else if !errors.Is(err, pgx.ErrNoRows) {
			return err
		}
		return repos.Developers.Create(ctx, &dev)
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateMemberID) {
			return nil, apperrors.NewDuplicatedMemberID(input.MemberID, err)
		}
		return nil, apperrors.MapError(err)
	}

	s.publishEvent(ctx, events.NewEvent(events.EventDeveloperCreated, dev.MemberID, events.DeveloperCreatedPayload{
		Name:               dev.Name,
		DeveloperLevel:     dev.DeveloperLevel,
		DeveloperSkillType: dev.DeveloperSkillType,
		ExperienceYears:    dev.ExperienceYears,
	}))
	return &dev, nil
}

// ListEmployedDevelopers returns every developer whose status is EMPLOYED.
func (s *DeveloperService) ListEmployedDevelopers(ctx context.Context) ([]domain.Developer, error) {
	var result []domain.Developer
	err := s.store.WithinTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
		var err error
		result, err = repos.Developers.ListByStatus(ctx, domain.StatusCodeEmployed)
		return err
	})
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return result, nil
}

// GetDeveloperDetail fetches a developer by member id.
func (s *DeveloperService) GetDeveloperDetail(ctx context.Context, memberID string) (*domain.Developer, error) {
	var dev *domain.Developer
	err := s.store.WithinTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
		var err error
		dev, err = getDeveloperByMemberID(ctx, repos, memberID)
		return err
	})
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return dev, nil
}

// EditDeveloper replaces the level, skill type and experience of a developer.
func (s *DeveloperService) EditDeveloper(ctx context.Context, memberID string, profile domain.DeveloperProfile) (*domain.Developer, error) {
	if err := domain.ValidateExperienceYears(profile.DeveloperLevel, profile.ExperienceYears); err != nil {
		return nil, err
	}

	var before, after domain.Developer
	err := s.store.WithinTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
		current, err := getDeveloperByMemberID(ctx, repos, memberID)
		if err != nil {
			return err
		}
		before = *current
		after = current.WithProfile(profile)
		return repos.Developers.Update(ctx, &after)
	})
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publishEvent(ctx, events.NewEvent(events.EventDeveloperUpdated, memberID, events.DeveloperUpdatedPayload{
		Old: events.SnapshotOf(before),
		New: events.SnapshotOf(after),
	}))
	return &after, nil
}

// RetireDeveloper flips a developer to RETIRED and archives it.
func (s *DeveloperService) RetireDeveloper(ctx context.Context, memberID string) (*domain.Developer, error) {
	var (
		retired domain.Developer
		archive domain.RetiredDeveloper
	)
	err := s.store.WithinTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
		current, err := getDeveloperByMemberID(ctx, repos, memberID)
		if err != nil {
			return err
		}
		retired = current.Retired()
		if err := repos.Developers.Update(ctx, &retired); err != nil {
			return err
		}
		archive = retired.Archive()
		return repos.RetiredDevelopers.Create(ctx, &archive)
	})
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publishEvent(ctx, events.NewEvent(events.EventDeveloperRetired, memberID, events.DeveloperRetiredPayload{
		Name:      archive.Name,
		RetiredAt: archive.CreatedAt,
	}))
	return &retired, nil
}

// ListRetiredDevelopers returns the retirement archive, oldest first.
func (s *DeveloperService) ListRetiredDevelopers(ctx context.Context) ([]domain.RetiredDeveloper, error) {
	var result []domain.RetiredDeveloper
	err := s.store.WithinTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
		var err error
		result, err = repos.RetiredDevelopers.List(ctx)
		return err
	})
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return result, nil
}

func getDeveloperByMemberID(ctx context.Context, repos repository.Repositories, memberID string) (*domain.Developer, error) {
	dev, err := repos.Developers.GetByMemberID(ctx, memberID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NewNoDeveloper(memberID)
	}
	if err != nil {
		return nil, err
	}
	return dev, nil
}

func (s *DeveloperService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("publish event failed",
			zap.String("event_type", string(event.Type)),
			zap.String("member_id", event.MemberID),
			zap.Error(err))
	}
}
