package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	ContentTypeModule = "course_module"
	ContentTypeLesson = "course_lesson"

	PrefixResearch   = "research_"
	PrefixAssessment = "assessment_"
	PrefixResource   = "resource_"
	PrefixReport     = "report_"
)

// ContentRecord is one flat row of authored content. Modules, lessons and
// the side-list types all share this table and are told apart by ContentType.
type ContentRecord struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectID       uuid.UUID         `gorm:"type:uuid;index;not null" json:"projectId"`
	Slug            string            `gorm:"size:200;index" json:"slug"`
	Title           string            `json:"title"`
	ContentType     string            `gorm:"size:64;index" json:"contentType"`
	SequenceOrder   int               `gorm:"index" json:"sequenceOrder"`
	ParentContentID *uuid.UUID        `gorm:"type:uuid;index" json:"parentContentId,omitempty"`
	Status          string            `gorm:"size:32;default:draft" json:"status"`
	FidelityScore   *float64          `json:"fidelityScore,omitempty"`
	Metadata        datatypes.JSONMap `json:"metadata,omitempty"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (ContentRecord) TableName() string {
	return "contents"
}

func (c *ContentRecord) BeforeCreate(*gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
