package repository

import (
	"context"
	"fmt"

	"github.com/waste3d/course-admin/internal/domain"

	"gorm.io/gorm"
)

type FrameworkRepository struct {
	db *gorm.DB
}

func NewFrameworkRepository(db *gorm.DB) *FrameworkRepository {
	return &FrameworkRepository{db: db}
}

func (r *FrameworkRepository) List(ctx context.Context, category string) ([]domain.ContentFramework, error) {
	var frameworks []domain.ContentFramework
	query := r.db.WithContext(ctx).Model(&domain.ContentFramework{})
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if err := query.Order("name asc").Find(&frameworks).Error; err != nil {
		return nil, fmt.Errorf("list frameworks: %w", err)
	}
	return frameworks, nil
}

func (r *FrameworkRepository) GetBySlug(ctx context.Context, slug string) (*domain.ContentFramework, error) {
	var f domain.ContentFramework
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&f).Error; err != nil {
		return nil, translate(err, domain.ErrNotFound)
	}
	return &f, nil
}

func (r *FrameworkRepository) Create(ctx context.Context, f *domain.ContentFramework) error {
	return translate(r.db.WithContext(ctx).Create(f).Error, domain.ErrNotFound)
}
