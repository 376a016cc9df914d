package domain

import "time"

// Synthetic bucket for lessons that cannot be tied to a real module.
const (
	OrphanModuleID    = "orphan"
	OrphanModuleSlug  = "outros"
	OrphanModuleTitle = "Outras Lições"
	OrphanModuleOrder = 999
)

type Lesson struct {
	ID              string   `json:"id"`
	Slug            string   `json:"slug"`
	Title           string   `json:"title"`
	ContentType     string   `json:"contentType"`
	SequenceOrder   int      `json:"sequenceOrder"`
	Status          string   `json:"status"`
	FidelityScore   *float64 `json:"fidelityScore,omitempty"`
	Duration        string   `json:"duration,omitempty"`
	ParentContentID *string  `json:"parentContentId,omitempty"`
}

type Module struct {
	ID            string   `json:"id"`
	Slug          string   `json:"slug"`
	Title         string   `json:"title"`
	Description   string   `json:"description,omitempty"`
	SequenceOrder int      `json:"sequenceOrder"`
	Lessons       []Lesson `json:"lessons"`
}

func (m Module) IsOrphan() bool {
	return m.ID == OrphanModuleID
}

// ContentItem is an entry of one of the flat, non-hierarchical side lists.
type ContentItem struct {
	ID          string     `json:"id"`
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	ContentType string     `json:"contentType"`
	Status      string     `json:"status"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
}

// CourseContent is the reconstructed view of a project's content. It is
// rebuilt from the flat rows on every fetch and never mutated in place.
type CourseContent struct {
	ProjectID    string   `json:"projectId"`
	ProjectSlug  string   `json:"projectSlug"`
	ProjectName  string   `json:"projectName"`
	Modules      []Module `json:"modules"`
	TotalLessons int      `json:"totalLessons"`
	TotalModules int      `json:"totalModules"`

	Research     []ContentItem `json:"research"`
	Assessments  []ContentItem `json:"assessments"`
	Resources    []ContentItem `json:"resources"`
	Reports      []ContentItem `json:"reports"`
	Unclassified []ContentItem `json:"unclassified"`
}
