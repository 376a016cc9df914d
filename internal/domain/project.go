package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project is a course under authoring.
type Project struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Slug        string    `gorm:"uniqueIndex;not null;size:200"`
	Name        string    `gorm:"not null"`
	Description string
	Status      string `gorm:"size:32;default:draft"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (p *Project) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// CourseView is the course metadata as the admin screens show it.
type CourseView struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CourseOverview is the course dashboard: metadata plus content counters.
type CourseOverview struct {
	Course       CourseView `json:"course"`
	TotalModules int        `json:"totalModules"`
	TotalLessons int        `json:"totalLessons"`
	Research     int        `json:"research"`
	Assessments  int        `json:"assessments"`
	Resources    int        `json:"resources"`
	Reports      int        `json:"reports"`
	Personas     int        `json:"personas"`
}
