package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/waste3d/course-admin/internal/domain"

	"golang.org/x/sync/errgroup"
)

type ProjectRepository interface {
	ProjectStore
	List(ctx context.Context, limit, offset int) ([]domain.Project, int64, error)
	Create(ctx context.Context, p *domain.Project) error
}

type CourseUseCase struct {
	projects ProjectRepository
	content  *ContentUseCase
	personas *PersonaUseCase
}

func NewCourseUseCase(projects ProjectRepository, content *ContentUseCase, personas *PersonaUseCase) *CourseUseCase {
	return &CourseUseCase{projects: projects, content: content, personas: personas}
}

func (uc *CourseUseCase) List(ctx context.Context, limit, offset int) ([]domain.CourseView, int64, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	projects, total, err := uc.projects.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	out := make([]domain.CourseView, 0, len(projects))
	for i := range projects {
		out = append(out, ToCourseView(&projects[i]))
	}
	return out, total, nil
}

func (uc *CourseUseCase) Get(ctx context.Context, slug string) (*domain.CourseView, error) {
	p, err := uc.projects.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	v := ToCourseView(p)
	return &v, nil
}

type CreateCourseInput struct {
	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

func (uc *CourseUseCase) Create(ctx context.Context, in CreateCourseInput) (*domain.CourseView, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidArgument)
	}
	slug := Slugify(in.Slug)
	if slug == "" {
		slug = Slugify(name)
	}
	if slug == "" {
		return nil, fmt.Errorf("%w: cannot derive a slug from %q", domain.ErrInvalidArgument, name)
	}

	p := &domain.Project{
		Slug:        slug,
		Name:        name,
		Description: strings.TrimSpace(in.Description),
	}
	if err := uc.projects.Create(ctx, p); err != nil {
		return nil, err
	}
	v := ToCourseView(p)
	return &v, nil
}

// Overview loads course metadata, content and personas in parallel.
func (uc *CourseUseCase) Overview(ctx context.Context, slug string) (*domain.CourseOverview, error) {
	var (
		course   *domain.CourseView
		content  *domain.CourseContent
		personas []domain.PersonaView
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		course, err = uc.Get(gctx, slug)
		return err
	})
	g.Go(func() (err error) {
		content, err = uc.content.Fetch(gctx, slug)
		return err
	})
	g.Go(func() (err error) {
		personas, err = uc.personas.List(gctx, slug, "")
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &domain.CourseOverview{
		Course:       *course,
		TotalModules: content.TotalModules,
		TotalLessons: content.TotalLessons,
		Research:     len(content.Research),
		Assessments:  len(content.Assessments),
		Resources:    len(content.Resources),
		Reports:      len(content.Reports),
		Personas:     len(personas),
	}, nil
}

func ToCourseView(p *domain.Project) domain.CourseView {
	status := p.Status
	if status == "" {
		status = "draft"
	}
	return domain.CourseView{
		ID:          p.ID.String(),
		Slug:        p.Slug,
		Name:        p.Name,
		Description: strings.TrimSpace(p.Description),
		Status:      status,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
