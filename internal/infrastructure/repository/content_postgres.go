package repository

import (
	"context"
	"fmt"

	"github.com/waste3d/course-admin/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContentRepository struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) *ContentRepository {
	return &ContentRepository{db: db}
}

// ListByProject returns every live content row of the project ordered by
// sequence_order. Soft-deleted rows are filtered out by gorm.
func (r *ContentRepository) ListByProject(ctx context.Context, projectID uuid.UUID) ([]domain.ContentRecord, error) {
	var rows []domain.ContentRecord
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("sequence_order asc").
		Order("created_at asc").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list content: %w", err)
	}
	return rows, nil
}

func (r *ContentRepository) Create(ctx context.Context, c *domain.ContentRecord) error {
	return translate(r.db.WithContext(ctx).Create(c).Error, domain.ErrNotFound)
}

// Delete soft-deletes one row of the project.
func (r *ContentRepository) Delete(ctx context.Context, projectID, id uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("project_id = ? AND id = ?", projectID, id).
		Delete(&domain.ContentRecord{})
	if res.Error != nil {
		return fmt.Errorf("delete content: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
