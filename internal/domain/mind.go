package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SyntheticMind is an expert profile the generator imitates when writing.
type SyntheticMind struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Slug          string    `gorm:"uniqueIndex;not null;size:200"`
	Name          string    `gorm:"not null"`
	Expertise     string
	Voice         string
	Description   string
	FidelityScore *float64
	Metadata      datatypes.JSONMap

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (m *SyntheticMind) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

type MindView struct {
	ID            string         `json:"id"`
	Slug          string         `json:"slug"`
	Name          string         `json:"name"`
	Expertise     string         `json:"expertise"`
	Voice         string         `json:"voice"`
	Description   string         `json:"description"`
	FidelityScore *float64       `json:"fidelityScore,omitempty"`
	Metadata      map[string]any `json:"metadata"`
	CreatedAt     time.Time      `json:"createdAt"`
}
