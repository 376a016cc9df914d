package usecase

import (
	"context"
	"strings"

	"github.com/waste3d/course-admin/internal/domain"
)

type FrameworkStore interface {
	List(ctx context.Context, category string) ([]domain.ContentFramework, error)
	GetBySlug(ctx context.Context, slug string) (*domain.ContentFramework, error)
}

type MindStore interface {
	List(ctx context.Context) ([]domain.SyntheticMind, error)
	GetBySlug(ctx context.Context, slug string) (*domain.SyntheticMind, error)
}

// CatalogUseCase serves the read-only reference lists: pedagogical
// frameworks and synthetic minds.
type CatalogUseCase struct {
	frameworks FrameworkStore
	minds      MindStore
}

func NewCatalogUseCase(frameworks FrameworkStore, minds MindStore) *CatalogUseCase {
	return &CatalogUseCase{frameworks: frameworks, minds: minds}
}

func (uc *CatalogUseCase) ListFrameworks(ctx context.Context, category string) ([]domain.FrameworkView, error) {
	rows, err := uc.frameworks.List(ctx, strings.TrimSpace(category))
	if err != nil {
		return nil, err
	}
	out := make([]domain.FrameworkView, 0, len(rows))
	for i := range rows {
		out = append(out, ToFrameworkView(&rows[i]))
	}
	return out, nil
}

func (uc *CatalogUseCase) GetFramework(ctx context.Context, slug string) (*domain.FrameworkView, error) {
	f, err := uc.frameworks.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	v := ToFrameworkView(f)
	return &v, nil
}

func (uc *CatalogUseCase) ListMinds(ctx context.Context) ([]domain.MindView, error) {
	rows, err := uc.minds.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.MindView, 0, len(rows))
	for i := range rows {
		out = append(out, ToMindView(&rows[i]))
	}
	return out, nil
}

func (uc *CatalogUseCase) GetMind(ctx context.Context, slug string) (*domain.MindView, error) {
	m, err := uc.minds.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	v := ToMindView(m)
	return &v, nil
}

func ToFrameworkView(f *domain.ContentFramework) domain.FrameworkView {
	return domain.FrameworkView{
		ID:          f.ID.String(),
		Slug:        f.Slug,
		Name:        f.Name,
		Category:    orPlaceholder(f.Category),
		Description: strings.TrimSpace(f.Description),
		Steps:       nonNil(f.Steps),
		CreatedAt:   f.CreatedAt,
	}
}

func ToMindView(m *domain.SyntheticMind) domain.MindView {
	meta := map[string]any(m.Metadata)
	if meta == nil {
		meta = map[string]any{}
	}
	return domain.MindView{
		ID:            m.ID.String(),
		Slug:          m.Slug,
		Name:          m.Name,
		Expertise:     orPlaceholder(m.Expertise),
		Voice:         orPlaceholder(m.Voice),
		Description:   strings.TrimSpace(m.Description),
		FidelityScore: m.FidelityScore,
		Metadata:      meta,
		CreatedAt:     m.CreatedAt,
	}
}
