package repository

import (
	"context"

	"github.com/waste3d/course-admin/internal/domain"

	"gorm.io/gorm"
)

var defaultFrameworks = []domain.ContentFramework{
	{
		Slug:        "aida",
		Name:        "AIDA",
		Category:    "copy",
		Description: "Atenção, interesse, desejo e ação.",
		Steps:       []string{"Atenção", "Interesse", "Desejo", "Ação"},
	},
	{
		Slug:        "bloom",
		Name:        "Taxonomia de Bloom",
		Category:    "pedagogia",
		Description: "Objetivos de aprendizagem em níveis crescentes de complexidade.",
		Steps:       []string{"Lembrar", "Entender", "Aplicar", "Analisar", "Avaliar", "Criar"},
	},
	{
		Slug:        "addie",
		Name:        "ADDIE",
		Category:    "design-instrucional",
		Description: "Ciclo clássico de design instrucional.",
		Steps:       []string{"Análise", "Design", "Desenvolvimento", "Implementação", "Avaliação"},
	},
}

// SeedCatalog fills the framework catalog on an empty database.
func SeedCatalog(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).Model(&domain.ContentFramework{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	frameworks := make([]domain.ContentFramework, len(defaultFrameworks))
	copy(frameworks, defaultFrameworks)
	return db.WithContext(ctx).Create(&frameworks).Error
}
