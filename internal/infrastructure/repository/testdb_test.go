package repository

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/waste3d/course-admin/internal/domain"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := OpenSQLite(dsn)
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func seedProject(t *testing.T, db *gorm.DB, slug string) *domain.Project {
	t.Helper()
	p := &domain.Project{Slug: slug, Name: "Projeto " + slug}
	require.NoError(t, NewProjectRepository(db).Create(context.Background(), p))
	return p
}
