package usecase

import (
	"context"
	"strings"
	"sync"
	"time"

	"job-board/internal/domain/job"
	"job-board/internal/domain/user"
	"job-board/internal/search"

	"github.com/google/uuid"
)

type mockSearcher struct {
	res   search.Result
	err   error
	calls int
	texts []bool
}

func (m *mockSearcher) Search(_ context.Context, _ search.Query, useTextSearch bool) (search.Result, error) {
	m.calls++
	m.texts = append(m.texts, useTextSearch)
	return m.res, m.err
}

type mockCache struct {
	mu       sync.Mutex
	items    map[string]any
	deleted  []string
	setCalls int

	// deleteErrs are returned by successive DeleteByPattern calls.
	deleteErrs []error
}

func newMockCache() *mockCache {
	return &mockCache{items: map[string]any{}}
}

func (m *mockCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.items[key]
	if !ok {
		return false, nil
	}
	if dst, ok := out.(*search.Result); ok {
		*dst = v.(search.Result)
	}
	return true, nil
}

func (m *mockCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setCalls++
	m.items[key] = value
	return nil
}

func (m *mockCache) DeleteByPattern(_ context.Context, pattern string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleted = append(m.deleted, pattern)
	if len(m.deleteErrs) > 0 {
		err := m.deleteErrs[0]
		m.deleteErrs = m.deleteErrs[1:]
		if err != nil {
			return err
		}
	}
	prefix := strings.TrimSuffix(pattern, "*")
	for k := range m.items {
		if strings.HasPrefix(k, prefix) {
			delete(m.items, k)
		}
	}
	return nil
}

type mockJobRepo struct {
	items     map[uuid.UUID]job.Posting
	err       error
	deleted   []uuid.UUID
	setActive map[uuid.UUID]bool
}

func newMockJobRepo(items ...job.Posting) *mockJobRepo {
	m := &mockJobRepo{items: map[uuid.UUID]job.Posting{}, setActive: map[uuid.UUID]bool{}}
	for _, it := range items {
		m.items[it.ID] = it
	}
	return m
}

func (m *mockJobRepo) GetByID(_ context.Context, id uuid.UUID) (job.Posting, error) {
	if m.err != nil {
		return job.Posting{}, m.err
	}
	p, ok := m.items[id]
	if !ok {
		return job.Posting{}, job.ErrNotFound
	}
	return p, nil
}

func (m *mockJobRepo) Create(_ context.Context, p job.Posting) (job.Posting, error) {
	if m.err != nil {
		return job.Posting{}, m.err
	}
	p.CreatedAt = time.Now().UTC()
	m.items[p.ID] = p
	return p, nil
}

func (m *mockJobRepo) Update(_ context.Context, p job.Posting) (job.Posting, error) {
	if _, ok := m.items[p.ID]; !ok {
		return job.Posting{}, job.ErrNotFound
	}
	m.items[p.ID] = p
	return p, nil
}

func (m *mockJobRepo) SetActive(_ context.Context, id uuid.UUID, active bool) error {
	m.setActive[id] = active
	return nil
}

func (m *mockJobRepo) Delete(_ context.Context, id uuid.UUID) error {
	m.deleted = append(m.deleted, id)
	delete(m.items, id)
	return nil
}

type notification struct {
	action string
	id     uuid.UUID
}

type mockNotifier struct {
	events []notification
}

func (m *mockNotifier) NotifyJobsUpdated(action string, id uuid.UUID) {
	m.events = append(m.events, notification{action: action, id: id})
}

type mockUserRepo struct {
	byID      map[uuid.UUID]user.User
	profiles  map[uuid.UUID]user.Profile
	createErr error
	getErr    error
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{byID: map[uuid.UUID]user.User{}, profiles: map[uuid.UUID]user.Profile{}}
}

func (m *mockUserRepo) Create(_ context.Context, u user.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	for _, existing := range m.byID {
		if existing.Email == u.Email {
			return user.ErrEmailTaken
		}
	}
	u.CreatedAt = time.Now().UTC()
	m.byID[u.ID] = u
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	if m.getErr != nil {
		return user.User{}, m.getErr
	}
	u, ok := m.byID[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	if m.getErr != nil {
		return user.User{}, m.getErr
	}
	for _, u := range m.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (m *mockUserRepo) GetProfile(_ context.Context, id uuid.UUID) (user.Profile, error) {
	if _, ok := m.byID[id]; !ok {
		return user.Profile{}, user.ErrNotFound
	}
	p := m.profiles[id]
	p.UserID = id
	return p, nil
}

func (m *mockUserRepo) UpdateProfile(_ context.Context, p user.Profile) error {
	if _, ok := m.byID[p.UserID]; !ok {
		return user.ErrNotFound
	}
	m.profiles[p.UserID] = p
	return nil
}
