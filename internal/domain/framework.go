package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ContentFramework is a pedagogical framework lessons can be written against.
type ContentFramework struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Slug        string    `gorm:"uniqueIndex;not null;size:200"`
	Name        string    `gorm:"not null"`
	Category    string    `gorm:"index"`
	Description string
	Steps       datatypes.JSONSlice[string]

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (ContentFramework) TableName() string {
	return "content_frameworks"
}

func (f *ContentFramework) BeforeCreate(*gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

type FrameworkView struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Steps       []string  `json:"steps"`
	CreatedAt   time.Time `json:"createdAt"`
}
