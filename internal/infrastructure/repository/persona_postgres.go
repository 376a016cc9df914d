package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/waste3d/course-admin/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PersonaRepository struct {
	db *gorm.DB
}

func NewPersonaRepository(db *gorm.DB) *PersonaRepository {
	return &PersonaRepository{db: db}
}

// List returns personas ordered by name. A nil projectID lists all of them.
func (r *PersonaRepository) List(ctx context.Context, projectID *uuid.UUID, search string) ([]domain.AudienceProfile, error) {
	var personas []domain.AudienceProfile
	query := r.db.WithContext(ctx).Model(&domain.AudienceProfile{})
	if projectID != nil {
		query = query.Where("project_id = ?", *projectID)
	}
	if search = strings.TrimSpace(search); search != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}
	if err := query.Order("name asc").Find(&personas).Error; err != nil {
		return nil, fmt.Errorf("list personas: %w", err)
	}
	return personas, nil
}

func (r *PersonaRepository) GetBySlug(ctx context.Context, slug string) (*domain.AudienceProfile, error) {
	var p domain.AudienceProfile
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&p).Error; err != nil {
		return nil, translate(err, domain.ErrPersonaNotFound)
	}
	return &p, nil
}

func (r *PersonaRepository) Create(ctx context.Context, p *domain.AudienceProfile) error {
	return translate(r.db.WithContext(ctx).Create(p).Error, domain.ErrNotFound)
}
