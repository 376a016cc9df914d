package hierarchy

import (
	"cmp"
	"slices"
	"strings"

	"github.com/waste3d/course-admin/internal/domain"
)

type bucket int

const (
	bucketUnknown bucket = iota
	bucketModule
	bucketLesson
	bucketResearch
	bucketAssessment
	bucketResource
	bucketReport
)

func classify(contentType string) bucket {
	switch {
	case contentType == domain.ContentTypeModule:
		return bucketModule
	case contentType == domain.ContentTypeLesson:
		return bucketLesson
	case strings.HasPrefix(contentType, domain.PrefixResearch):
		return bucketResearch
	case strings.HasPrefix(contentType, domain.PrefixAssessment):
		return bucketAssessment
	case strings.HasPrefix(contentType, domain.PrefixResource):
		return bucketResource
	case strings.HasPrefix(contentType, domain.PrefixReport):
		return bucketReport
	default:
		return bucketUnknown
	}
}

// Reconstruct partitions the project's content rows into the module/lesson
// tree and the flat side lists. Rows are expected to be already scoped to
// the project with soft-deleted rows removed.
//
// Rows whose content type is not recognised are kept apart in
// Unclassified; they never count as modules or lessons.
func Reconstruct(project domain.Project, rows []domain.ContentRecord) *domain.CourseContent {
	out := &domain.CourseContent{
		ProjectID:    project.ID.String(),
		ProjectSlug:  project.Slug,
		ProjectName:  project.Name,
		Modules:      []domain.Module{},
		Research:     []domain.ContentItem{},
		Assessments:  []domain.ContentItem{},
		Resources:    []domain.ContentItem{},
		Reports:      []domain.ContentItem{},
		Unclassified: []domain.ContentItem{},
	}

	var moduleRows, lessonRows []domain.ContentRecord
	for _, row := range rows {
		switch classify(row.ContentType) {
		case bucketModule:
			moduleRows = append(moduleRows, row)
		case bucketLesson:
			lessonRows = append(lessonRows, row)
		case bucketResearch:
			out.Research = append(out.Research, toItem(row))
		case bucketAssessment:
			out.Assessments = append(out.Assessments, toItem(row))
		case bucketResource:
			out.Resources = append(out.Resources, toItem(row))
		case bucketReport:
			out.Reports = append(out.Reports, toItem(row))
		default:
			out.Unclassified = append(out.Unclassified, toItem(row))
		}
	}

	modules := make([]domain.Module, 0, len(moduleRows))
	for _, row := range moduleRows {
		modules = append(modules, toModule(row))
	}
	slices.SortStableFunc(modules, func(a, b domain.Module) int {
		return cmp.Compare(a.SequenceOrder, b.SequenceOrder)
	})

	position := make(map[string]int, len(modules))
	for i, m := range modules {
		position[m.ID] = i
	}

	var orphans []domain.Lesson
	for _, row := range lessonRows {
		lesson := toLesson(row)
		if i, ok := owner(lesson, position, len(modules)); ok {
			modules[i].Lessons = append(modules[i].Lessons, lesson)
			continue
		}
		orphans = append(orphans, lesson)
	}

	for i := range modules {
		slices.SortStableFunc(modules[i].Lessons, compareLessons)
	}
	out.TotalModules = len(modules)

	if len(orphans) > 0 {
		slices.SortStableFunc(orphans, func(a, b domain.Lesson) int {
			return cmp.Compare(a.SequenceOrder, b.SequenceOrder)
		})
		modules = append(modules, domain.Module{
			ID:            domain.OrphanModuleID,
			Slug:          domain.OrphanModuleSlug,
			Title:         domain.OrphanModuleTitle,
			SequenceOrder: domain.OrphanModuleOrder,
			Lessons:       orphans,
		})
	}

	for _, m := range modules {
		out.TotalLessons += len(m.Lessons)
	}
	out.Modules = modules
	return out
}

// owner returns the index of the module a lesson belongs to, trying the
// explicit parent reference first and the title prefix second.
func owner(lesson domain.Lesson, position map[string]int, moduleCount int) (int, bool) {
	if lesson.ParentContentID != nil {
		if i, ok := position[*lesson.ParentContentID]; ok {
			return i, true
		}
	}
	if n, ok := ModuleIndexFromTitle(lesson.Title); ok && n <= moduleCount {
		return n - 1, true
	}
	return 0, false
}

func compareLessons(a, b domain.Lesson) int {
	if c := cmp.Compare(a.SequenceOrder, b.SequenceOrder); c != 0 {
		return c
	}
	return NaturalCompare(a.Title, b.Title)
}

func toModule(row domain.ContentRecord) domain.Module {
	return domain.Module{
		ID:            row.ID.String(),
		Slug:          row.Slug,
		Title:         row.Title,
		Description:   metaString(row.Metadata, "description"),
		SequenceOrder: row.SequenceOrder,
		Lessons:       []domain.Lesson{},
	}
}

func toLesson(row domain.ContentRecord) domain.Lesson {
	l := domain.Lesson{
		ID:            row.ID.String(),
		Slug:          row.Slug,
		Title:         row.Title,
		ContentType:   row.ContentType,
		SequenceOrder: row.SequenceOrder,
		Status:        row.Status,
		FidelityScore: row.FidelityScore,
		Duration:      metaString(row.Metadata, "duration"),
	}
	if row.ParentContentID != nil {
		parent := row.ParentContentID.String()
		l.ParentContentID = &parent
	}
	return l
}

func toItem(row domain.ContentRecord) domain.ContentItem {
	item := domain.ContentItem{
		ID:          row.ID.String(),
		Slug:        row.Slug,
		Title:       row.Title,
		ContentType: row.ContentType,
		Status:      row.Status,
	}
	if !row.CreatedAt.IsZero() {
		created := row.CreatedAt
		item.CreatedAt = &created
	}
	return item
}
