package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/developer-service/internal/domain"
	"github.com/spec-kit/developer-service/internal/repository"
)

// InMemoryStore is a transactional in-memory implementation of repository.Transactor.
// Each unit of work runs against a copy of the tables that is kept only on success.
type InMemoryStore struct {
	mu        sync.Mutex
	snapshot  tables
	nextID    int64
	clock     func() time.Time
	commits   int
	rollbacks int
}

type tables struct {
	developers map[string]domain.Developer
	retired    []domain.RetiredDeveloper
}

func (t tables) clone() tables {
	out := tables{
		developers: make(map[string]domain.Developer, len(t.developers)),
		retired:    append([]domain.RetiredDeveloper(nil), t.retired...),
	}
	for k, v := range t.developers {
		out.developers[k] = v
	}
	return out
}

// NewInMemoryStore creates an empty store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		snapshot: tables{developers: make(map[string]domain.Developer)},
		clock:    func() time.Time { return time.Now().UTC() },
	}
}

// WithinTx implements repository.Transactor.
func (s *InMemoryStore) WithinTx(ctx context.Context, fn func(ctx context.Context, repos repository.Repositories) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.snapshot.clone()
	tx := &inMemoryTx{store: s, tables: &work}
	if err := fn(ctx, repository.Repositories{
		Developers:        &inMemoryDeveloperRepo{tx: tx},
		RetiredDevelopers: &inMemoryRetiredRepo{tx: tx},
	}); err != nil {
		s.rollbacks++
		return err
	}
	s.snapshot = work
	s.commits++
	return nil
}

// Seed stores developers directly, bypassing the service.
func (s *InMemoryStore) Seed(devs ...domain.Developer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, dev := range devs {
		s.nextID++
		dev.ID = s.nextID
		s.snapshot.developers[dev.MemberID] = dev
	}
}

// Developers returns the committed developer rows ordered by id.
func (s *InMemoryStore) Developers() []domain.Developer {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Developer, 0, len(s.snapshot.developers))
	for _, dev := range s.snapshot.developers {
		out = append(out, dev)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// RetiredDevelopers returns the committed archive rows.
func (s *InMemoryStore) RetiredDevelopers() []domain.RetiredDeveloper {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.RetiredDeveloper(nil), s.snapshot.retired...)
}

// Commits returns how many units of work were committed.
func (s *InMemoryStore) Commits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commits
}

// Rollbacks returns how many units of work were discarded.
func (s *InMemoryStore) Rollbacks() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rollbacks
}

type inMemoryTx struct {
	store  *InMemoryStore
	tables *tables
}

type inMemoryDeveloperRepo struct {
	tx *inMemoryTx
}

func (r *inMemoryDeveloperRepo) Create(_ context.Context, dev *domain.Developer) error {
	if _, exists := r.tx.tables.developers[dev.MemberID]; exists {
		return repository.ErrDuplicateMemberID
	}
	r.tx.store.nextID++
	now := r.tx.store.clock()
	dev.ID = r.tx.store.nextID
	dev.CreatedAt = now
	dev.UpdatedAt = now
	r.tx.tables.developers[dev.MemberID] = *dev
	return nil
}

func (r *inMemoryDeveloperRepo) Update(_ context.Context, dev *domain.Developer) error {
	existing, ok := r.tx.tables.developers[dev.MemberID]
	if !ok {
		return pgx.ErrNoRows
	}
	existing.DeveloperLevel = dev.DeveloperLevel
	existing.DeveloperSkillType = dev.DeveloperSkillType
	existing.ExperienceYears = dev.ExperienceYears
	existing.StatusCode = dev.StatusCode
	existing.UpdatedAt = r.tx.store.clock()
	dev.UpdatedAt = existing.UpdatedAt
	r.tx.tables.developers[dev.MemberID] = existing
	return nil
}

func (r *inMemoryDeveloperRepo) GetByMemberID(_ context.Context, memberID string) (*domain.Developer, error) {
	dev, ok := r.tx.tables.developers[memberID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &dev, nil
}

func (r *inMemoryDeveloperRepo) ListByStatus(_ context.Context, status domain.StatusCode) ([]domain.Developer, error) {
	var out []domain.Developer
	for _, dev := range r.tx.tables.developers {
		if dev.StatusCode == status {
			out = append(out, dev)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type inMemoryRetiredRepo struct {
	tx *inMemoryTx
}

func (r *inMemoryRetiredRepo) Create(_ context.Context, retired *domain.RetiredDeveloper) error {
	r.tx.store.nextID++
	now := r.tx.store.clock()
	retired.ID = r.tx.store.nextID
	retired.CreatedAt = now
	retired.UpdatedAt = now
	r.tx.tables.retired = append(r.tx.tables.retired, *retired)
	return nil
}

func (r *inMemoryRetiredRepo) List(context.Context) ([]domain.RetiredDeveloper, error) {
	return append([]domain.RetiredDeveloper(nil), r.tx.tables.retired...), nil
}
