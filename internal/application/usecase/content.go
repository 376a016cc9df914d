package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/waste3d/course-admin/internal/application/view"
	"github.com/waste3d/course-admin/internal/domain"
	"github.com/waste3d/course-admin/internal/hierarchy"
	"github.com/waste3d/course-admin/internal/platform/logger"

	"github.com/google/uuid"
)

type ProjectStore interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Project, error)
}

type ContentStore interface {
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]domain.ContentRecord, error)
	Create(ctx context.Context, c *domain.ContentRecord) error
	Delete(ctx context.Context, projectID, id uuid.UUID) error
}

// ContentCache stores content per slug and generation. Invalidate must
// move the slug to a new generation.
type ContentCache interface {
	Generation(ctx context.Context, slug string) (int64, error)
	Get(ctx context.Context, slug string, gen int64) (*domain.CourseContent, bool, error)
	Set(ctx context.Context, slug string, gen int64, content *domain.CourseContent) error
	Invalidate(ctx context.Context, slug string) error
}

type ContentUseCase struct {
	projects ProjectStore
	contents ContentStore
	cache    ContentCache
	views    *view.Store[domain.CourseContent]
	log      *logger.Logger
}

// NewContentUseCase wires the content pipeline. cache may be nil.
func NewContentUseCase(projects ProjectStore, contents ContentStore, cache ContentCache, log *logger.Logger) *ContentUseCase {
	if log == nil {
		log = logger.Nop()
	}
	uc := &ContentUseCase{
		projects: projects,
		contents: contents,
		cache:    cache,
		log:      log.With("component", "content"),
	}
	uc.views = view.NewStore(uc.load)
	return uc
}

// Fetch returns the reconstructed content of a project. Concurrent callers
// for the same slug share one load.
func (uc *ContentUseCase) Fetch(ctx context.Context, slug string) (*domain.CourseContent, error) {
	res, release := uc.views.Acquire(slug)
	defer release()
	return res.Load(ctx)
}

// Refetch skips every cached copy and rebuilds the content from the store.
func (uc *ContentUseCase) Refetch(ctx context.Context, slug string) (*domain.CourseContent, error) {
	uc.invalidateCache(ctx, slug)
	res, release := uc.views.Acquire(slug)
	defer release()
	return res.Refetch(ctx)
}

// Watch hands out the shared view of a project for consumers that keep
// it around between reads. The caller must invoke release when done.
func (uc *ContentUseCase) Watch(slug string) (res *view.Resource[domain.CourseContent], release func()) {
	return uc.views.Acquire(slug)
}

func (uc *ContentUseCase) load(ctx context.Context, slug string) (*domain.CourseContent, error) {
	// the generation is read before the store so a write landing during
	// the load leaves the result under a generation nobody reads
	gen, cacheable := uc.cacheGeneration(ctx, slug)
	if cacheable {
		cached, ok, err := uc.cache.Get(ctx, slug, gen)
		if err != nil {
			uc.log.Warn("content cache read failed", "slug", slug, "error", err)
		}
		if ok {
			return cached, nil
		}
	}

	project, err := uc.projects.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	rows, err := uc.contents.ListByProject(ctx, project.ID)
	if err != nil {
		return nil, fmt.Errorf("load content of %q: %w", slug, err)
	}

	content := hierarchy.Reconstruct(*project, rows)
	if n := len(content.Unclassified); n > 0 {
		uc.log.Warn("content rows with unknown type", "slug", slug, "count", n)
	}

	if cacheable {
		if err := uc.cache.Set(ctx, slug, gen, content); err != nil {
			uc.log.Warn("content cache write failed", "slug", slug, "error", err)
		}
	}
	return content, nil
}

func (uc *ContentUseCase) cacheGeneration(ctx context.Context, slug string) (int64, bool) {
	if uc.cache == nil {
		return 0, false
	}
	gen, err := uc.cache.Generation(ctx, slug)
	if err != nil {
		uc.log.Warn("content cache generation read failed", "slug", slug, "error", err)
		return 0, false
	}
	return gen, true
}

type CreateContentInput struct {
	Slug            string         `json:"slug"`
	Title           string         `json:"title" binding:"required"`
	ContentType     string         `json:"contentType" binding:"required"`
	SequenceOrder   int            `json:"sequenceOrder"`
	ParentContentID string         `json:"parentContentId"`
	Status          string         `json:"status"`
	FidelityScore   *float64       `json:"fidelityScore"`
	Metadata        map[string]any `json:"metadata"`
}

func (in CreateContentInput) validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("%w: title is required", domain.ErrInvalidArgument)
	}
	if strings.TrimSpace(in.ContentType) == "" {
		return fmt.Errorf("%w: contentType is required", domain.ErrInvalidArgument)
	}
	if s := in.FidelityScore; s != nil && (*s < 0 || *s > 1) {
		return fmt.Errorf("%w: fidelityScore must be within [0,1]", domain.ErrInvalidArgument)
	}
	return nil
}

func (uc *ContentUseCase) CreateContent(ctx context.Context, projectSlug string, in CreateContentInput) (*domain.ContentRecord, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	project, err := uc.projects.GetBySlug(ctx, projectSlug)
	if err != nil {
		return nil, err
	}

	record := &domain.ContentRecord{
		ID:            uuid.New(),
		ProjectID:     project.ID,
		Slug:          in.Slug,
		Title:         strings.TrimSpace(in.Title),
		ContentType:   strings.TrimSpace(in.ContentType),
		SequenceOrder: in.SequenceOrder,
		Status:        in.Status,
		FidelityScore: in.FidelityScore,
		Metadata:      in.Metadata,
	}
	if record.Slug == "" {
		record.Slug = Slugify(record.Title)
	}
	if in.ParentContentID != "" {
		parent, err := uuid.Parse(in.ParentContentID)
		if err != nil {
			return nil, fmt.Errorf("%w: parentContentId is not a uuid", domain.ErrInvalidArgument)
		}
		record.ParentContentID = &parent
	}

	if err := uc.contents.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("create content: %w", err)
	}
	uc.invalidate(ctx, projectSlug)
	return record, nil
}

func (uc *ContentUseCase) DeleteContent(ctx context.Context, projectSlug, id string) error {
	contentID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("%w: id is not a uuid", domain.ErrInvalidArgument)
	}
	project, err := uc.projects.GetBySlug(ctx, projectSlug)
	if err != nil {
		return err
	}
	if err := uc.contents.Delete(ctx, project.ID, contentID); err != nil {
		return err
	}
	uc.invalidate(ctx, projectSlug)
	return nil
}

func (uc *ContentUseCase) invalidate(ctx context.Context, slug string) {
	uc.invalidateCache(ctx, slug)
	uc.views.Invalidate(slug)
}

func (uc *ContentUseCase) invalidateCache(ctx context.Context, slug string) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Invalidate(ctx, slug); err != nil {
		uc.log.Warn("content cache invalidate failed", "slug", slug, "error", err)
	}
}
