package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Placeholder shown for demographic fields nobody filled in.
const NotInformed = "Não informado"

// AudienceProfile is a buyer persona.
type AudienceProfile struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ProjectID   *uuid.UUID `gorm:"type:uuid;index"`
	Slug        string     `gorm:"uniqueIndex;not null;size:200"`
	Name        string     `gorm:"not null"`
	AgeRange    string
	Occupation  string
	Location    string
	IncomeLevel string
	Education   string
	Description string
	PainPoints  datatypes.JSONSlice[string]
	Goals       datatypes.JSONSlice[string]

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (AudienceProfile) TableName() string {
	return "audience_profiles"
}

func (p *AudienceProfile) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

type PersonaView struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"projectId,omitempty"`
	Slug        string    `json:"slug"`
	Name        string    `json:"name"`
	AgeRange    string    `json:"ageRange"`
	Occupation  string    `json:"occupation"`
	Location    string    `json:"location"`
	IncomeLevel string    `json:"incomeLevel"`
	Education   string    `json:"education"`
	Description string    `json:"description"`
	PainPoints  []string  `json:"painPoints"`
	Goals       []string  `json:"goals"`
	CreatedAt   time.Time `json:"createdAt"`
}

// PersonaDraft is what the generative service fills in for a new persona.
type PersonaDraft struct {
	Name        string   `json:"name"`
	AgeRange    string   `json:"age_range"`
	Occupation  string   `json:"occupation"`
	Location    string   `json:"location"`
	IncomeLevel string   `json:"income_level"`
	Education   string   `json:"education"`
	Description string   `json:"description"`
	PainPoints  []string `json:"pain_points"`
	Goals       []string `json:"goals"`
}
