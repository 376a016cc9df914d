package repository

import (
	"context"
	"fmt"

	"github.com/waste3d/course-admin/internal/domain"

	"gorm.io/gorm"
)

type MindRepository struct {
	db *gorm.DB
}

func NewMindRepository(db *gorm.DB) *MindRepository {
	return &MindRepository{db: db}
}

func (r *MindRepository) List(ctx context.Context) ([]domain.SyntheticMind, error) {
	var minds []domain.SyntheticMind
	if err := r.db.WithContext(ctx).Order("name asc").Find(&minds).Error; err != nil {
		return nil, fmt.Errorf("list minds: %w", err)
	}
	return minds, nil
}

func (r *MindRepository) GetBySlug(ctx context.Context, slug string) (*domain.SyntheticMind, error) {
	var m domain.SyntheticMind
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&m).Error; err != nil {
		return nil, translate(err, domain.ErrNotFound)
	}
	return &m, nil
}

func (r *MindRepository) Create(ctx context.Context, m *domain.SyntheticMind) error {
	return translate(r.db.WithContext(ctx).Create(m).Error, domain.ErrNotFound)
}
