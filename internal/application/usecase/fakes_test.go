package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/waste3d/course-admin/internal/domain"

	"github.com/google/uuid"
)

type fakeProjects struct {
	mu       sync.Mutex
	projects map[string]*domain.Project
}

func newFakeProjects(ps ...*domain.Project) *fakeProjects {
	f := &fakeProjects{projects: map[string]*domain.Project{}}
	for _, p := range ps {
		f.projects[p.Slug] = p
	}
	return f
}

func (f *fakeProjects) GetBySlug(_ context.Context, slug string) (*domain.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.projects[slug]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProjects) List(_ context.Context, limit, offset int) ([]domain.Project, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Project
	for _, p := range f.projects {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (f *fakeProjects) Create(_ context.Context, p *domain.Project) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.projects[p.Slug]; ok {
		return domain.ErrAlreadyExists
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	f.projects[p.Slug] = p
	return nil
}

type fakeContents struct {
	mu    sync.Mutex
	rows  []domain.ContentRecord
	calls int
	err   error

	// afterRead runs once the rows are read, outside the lock.
	afterRead func()
}

func (f *fakeContents) ListByProject(_ context.Context, projectID uuid.UUID) ([]domain.ContentRecord, error) {
	f.mu.Lock()
	f.calls++
	if f.err != nil {
		f.mu.Unlock()
		return nil, f.err
	}
	var out []domain.ContentRecord
	for _, r := range f.rows {
		if r.ProjectID == projectID {
			out = append(out, r)
		}
	}
	hook := f.afterRead
	f.mu.Unlock()

	if hook != nil {
		hook()
	}
	return out, nil
}

func (f *fakeContents) Create(_ context.Context, c *domain.ContentRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows = append(f.rows, *c)
	return nil
}

func (f *fakeContents) Delete(_ context.Context, projectID, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, r := range f.rows {
		if r.ProjectID == projectID && r.ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeContents) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeCache struct {
	mu          sync.Mutex
	gens        map[string]int64
	entries     map[string]*domain.CourseContent
	invalidated []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{gens: map[string]int64{}, entries: map[string]*domain.CourseContent{}}
}

func cacheKey(slug string, gen int64) string {
	return fmt.Sprintf("%s:%d", slug, gen)
}

func (c *fakeCache) Generation(_ context.Context, slug string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gens[slug], nil
}

func (c *fakeCache) Get(_ context.Context, slug string, gen int64) (*domain.CourseContent, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[cacheKey(slug, gen)]
	return v, ok, nil
}

func (c *fakeCache) Set(_ context.Context, slug string, gen int64, content *domain.CourseContent) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[cacheKey(slug, gen)] = content
	return nil
}

func (c *fakeCache) Invalidate(_ context.Context, slug string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gens[slug]++
	c.invalidated = append(c.invalidated, slug)
	return nil
}

type fakePersonas struct {
	rows []domain.AudienceProfile
}

func (f *fakePersonas) List(_ context.Context, projectID *uuid.UUID, _ string) ([]domain.AudienceProfile, error) {
	var out []domain.AudienceProfile
	for _, p := range f.rows {
		if projectID == nil || (p.ProjectID != nil && *p.ProjectID == *projectID) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePersonas) GetBySlug(_ context.Context, slug string) (*domain.AudienceProfile, error) {
	for i := range f.rows {
		if f.rows[i].Slug == slug {
			return &f.rows[i], nil
		}
	}
	return nil, domain.ErrPersonaNotFound
}

func (f *fakePersonas) Create(_ context.Context, p *domain.AudienceProfile) error {
	f.rows = append(f.rows, *p)
	return nil
}

type fakeCompleter struct {
	answer string
	err    error
	prompt string
	schema map[string]any
}

func (f *fakeCompleter) CompleteJSON(_ context.Context, prompt string, schema map[string]any) (json.RawMessage, error) {
	f.prompt = prompt
	f.schema = schema
	if f.err != nil {
		return nil, f.err
	}
	return json.RawMessage(f.answer), nil
}
