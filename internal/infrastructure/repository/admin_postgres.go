package repository

import (
	"context"

	"github.com/waste3d/course-admin/internal/domain"

	"gorm.io/gorm"
)

type AdminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

func (r *AdminRepository) Create(ctx context.Context, u *domain.AdminUser) error {
	return translate(r.db.WithContext(ctx).Create(u).Error, domain.ErrNotFound)
}

func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*domain.AdminUser, error) {
	var u domain.AdminUser
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, translate(err, domain.ErrInvalidCreds)
	}
	return &u, nil
}

func (r *AdminRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.AdminUser{}).Count(&n).Error
	return n, err
}
