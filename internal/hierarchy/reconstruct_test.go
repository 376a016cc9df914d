package hierarchy

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/waste3d/course-admin/internal/domain"
)

var testProject = domain.Project{ID: uuid.New(), Slug: "curso-de-vendas", Name: "Curso de Vendas"}

func moduleRow(order int, title string) domain.ContentRecord {
	return domain.ContentRecord{
		ID:            uuid.New(),
		ProjectID:     testProject.ID,
		Slug:          "modulo-" + title,
		Title:         title,
		ContentType:   domain.ContentTypeModule,
		SequenceOrder: order,
		Status:        "draft",
	}
}

func lessonRow(order int, title string, parent *uuid.UUID) domain.ContentRecord {
	return domain.ContentRecord{
		ID:              uuid.New(),
		ProjectID:       testProject.ID,
		Slug:            "licao-" + title,
		Title:           title,
		ContentType:     domain.ContentTypeLesson,
		SequenceOrder:   order,
		ParentContentID: parent,
		Status:          "draft",
	}
}

func ptr(id uuid.UUID) *uuid.UUID { return &id }

func lessonTitles(m domain.Module) []string {
	out := make([]string, 0, len(m.Lessons))
	for _, l := range m.Lessons {
		out = append(out, l.Title)
	}
	return out
}

func countLessons(rows []domain.ContentRecord) int {
	n := 0
	for _, r := range rows {
		if r.ContentType == domain.ContentTypeLesson {
			n++
		}
	}
	return n
}

func TestReconstruct_Empty(t *testing.T) {
	got := Reconstruct(testProject, nil)

	require.NotNil(t, got)
	assert.Equal(t, testProject.ID.String(), got.ProjectID)
	assert.Equal(t, "curso-de-vendas", got.ProjectSlug)
	assert.Equal(t, "Curso de Vendas", got.ProjectName)
	assert.Empty(t, got.Modules)
	assert.NotNil(t, got.Modules)
	assert.Zero(t, got.TotalLessons)
	assert.Zero(t, got.TotalModules)
	assert.Empty(t, got.Research)
	assert.Empty(t, got.Assessments)
	assert.Empty(t, got.Resources)
	assert.Empty(t, got.Reports)
	assert.Empty(t, got.Unclassified)
}

func TestReconstruct_SingleModuleSingleLesson(t *testing.T) {
	m1 := moduleRow(1, "Fundamentos")
	l1 := lessonRow(1, "1.1 Intro", nil)

	got := Reconstruct(testProject, []domain.ContentRecord{m1, l1})

	require.Len(t, got.Modules, 1)
	assert.Equal(t, m1.ID.String(), got.Modules[0].ID)
	require.Len(t, got.Modules[0].Lessons, 1)
	assert.Equal(t, l1.ID.String(), got.Modules[0].Lessons[0].ID)
	assert.Equal(t, 1, got.TotalModules)
	assert.Equal(t, 1, got.TotalLessons)
}

func TestReconstruct_OrphanOnly(t *testing.T) {
	got := Reconstruct(testProject, []domain.ContentRecord{lessonRow(1, "Random Title", nil)})

	require.Len(t, got.Modules, 1)
	orphan := got.Modules[0]
	assert.True(t, orphan.IsOrphan())
	assert.Equal(t, "outros", orphan.Slug)
	assert.Equal(t, "Outras Lições", orphan.Title)
	assert.Equal(t, 999, orphan.SequenceOrder)
	assert.Equal(t, 0, got.TotalModules)
	assert.Equal(t, 1, got.TotalLessons)
}

func TestReconstruct_ExplicitParentWinsOverTitle(t *testing.T) {
	m1 := moduleRow(1, "Um")
	m2 := moduleRow(2, "Dois")
	lesson := lessonRow(1, "1.1 Belongs to two", ptr(m2.ID))

	got := Reconstruct(testProject, []domain.ContentRecord{m1, m2, lesson})

	require.Len(t, got.Modules, 2)
	assert.Empty(t, got.Modules[0].Lessons)
	require.Len(t, got.Modules[1].Lessons, 1)
	assert.Equal(t, lesson.ID.String(), got.Modules[1].Lessons[0].ID)
	require.NotNil(t, got.Modules[1].Lessons[0].ParentContentID)
	assert.Equal(t, m2.ID.String(), *got.Modules[1].Lessons[0].ParentContentID)
}

func TestReconstruct_TitlePrefixFallback(t *testing.T) {
	m1 := moduleRow(1, "Um")
	m2 := moduleRow(2, "Dois")
	lesson := lessonRow(1, "2.1 Intro", nil)

	got := Reconstruct(testProject, []domain.ContentRecord{m2, m1, lesson})

	require.Len(t, got.Modules, 2)
	assert.Equal(t, m2.ID.String(), got.Modules[1].ID)
	assert.Equal(t, []string{"2.1 Intro"}, lessonTitles(got.Modules[1]))
}

func TestReconstruct_TitlePrefixOutOfRangeGoesToOrphan(t *testing.T) {
	m1 := moduleRow(1, "Um")
	lesson := lessonRow(1, "2.1 Intro", nil)

	got := Reconstruct(testProject, []domain.ContentRecord{m1, lesson})

	require.Len(t, got.Modules, 2)
	assert.Empty(t, got.Modules[0].Lessons)
	assert.True(t, got.Modules[1].IsOrphan())
	assert.Equal(t, []string{"2.1 Intro"}, lessonTitles(got.Modules[1]))
	assert.Equal(t, 1, got.TotalModules)
}

func TestReconstruct_StaleParentFallsThrough(t *testing.T) {
	m1 := moduleRow(1, "Um")
	deleted := uuid.New()

	byTitle := lessonRow(1, "1.3 Still numbered", ptr(deleted))
	orphaned := lessonRow(2, "No number", ptr(deleted))

	got := Reconstruct(testProject, []domain.ContentRecord{m1, byTitle, orphaned})

	require.Len(t, got.Modules, 2)
	assert.Equal(t, []string{"1.3 Still numbered"}, lessonTitles(got.Modules[0]))
	assert.Equal(t, orphaned.ID.String(), got.Modules[1].Lessons[0].ID)
}

func TestReconstruct_ModulesSortedOrphanLast(t *testing.T) {
	rows := []domain.ContentRecord{
		moduleRow(3, "C"),
		moduleRow(1, "A"),
		lessonRow(1, "sem numero", nil),
		moduleRow(2, "B"),
	}

	got := Reconstruct(testProject, rows)

	require.Len(t, got.Modules, 4)
	assert.Equal(t, "A", got.Modules[0].Title)
	assert.Equal(t, "B", got.Modules[1].Title)
	assert.Equal(t, "C", got.Modules[2].Title)
	assert.True(t, got.Modules[3].IsOrphan())
	assert.Equal(t, 3, got.TotalModules)
	assert.Equal(t, 1, got.TotalLessons)
}

func TestReconstruct_LessonOrderNaturalTieBreak(t *testing.T) {
	m1 := moduleRow(1, "Um")
	rows := []domain.ContentRecord{
		m1,
		lessonRow(5, "1.10 Depois", ptr(m1.ID)),
		lessonRow(5, "1.2 Antes", ptr(m1.ID)),
		lessonRow(1, "1.9 Primeiro", ptr(m1.ID)),
	}

	got := Reconstruct(testProject, rows)

	require.Len(t, got.Modules, 1)
	assert.Equal(t, []string{"1.9 Primeiro", "1.2 Antes", "1.10 Depois"}, lessonTitles(got.Modules[0]))
}

func TestReconstruct_OrphanSortedBySequenceOnly(t *testing.T) {
	rows := []domain.ContentRecord{
		lessonRow(2, "b", nil),
		lessonRow(1, "z", nil),
		lessonRow(2, "a", nil),
	}

	got := Reconstruct(testProject, rows)

	require.Len(t, got.Modules, 1)
	// equal sequence keeps input order
	assert.Equal(t, []string{"z", "b", "a"}, lessonTitles(got.Modules[0]))
}

func TestReconstruct_SideListsAndUnclassified(t *testing.T) {
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	row := func(contentType, title string) domain.ContentRecord {
		return domain.ContentRecord{
			ID:          uuid.New(),
			ProjectID:   testProject.ID,
			Slug:        title,
			Title:       title,
			ContentType: contentType,
			Status:      "published",
			CreatedAt:   created,
		}
	}

	rows := []domain.ContentRecord{
		row("research_market", "mercado"),
		row("research_competitors", "concorrentes"),
		row("assessment_quiz", "quiz"),
		row("resource_template", "template"),
		row("report_fidelity", "fidelidade"),
		row("podcast_episode", "episodio"),
		row("", "sem tipo"),
	}

	got := Reconstruct(testProject, rows)

	assert.Len(t, got.Research, 2)
	assert.Len(t, got.Assessments, 1)
	assert.Len(t, got.Resources, 1)
	assert.Len(t, got.Reports, 1)
	require.Len(t, got.Unclassified, 2)
	assert.Equal(t, "podcast_episode", got.Unclassified[0].ContentType)
	assert.Empty(t, got.Modules)
	assert.Zero(t, got.TotalLessons)

	item := got.Research[0]
	assert.Equal(t, "mercado", item.Title)
	assert.Equal(t, "published", item.Status)
	require.NotNil(t, item.CreatedAt)
	assert.True(t, created.Equal(*item.CreatedAt))
}

func TestReconstruct_MetadataFields(t *testing.T) {
	m1 := moduleRow(1, "Um")
	m1.Metadata = datatypes.JSONMap{"description": "  Abertura do curso "}

	withText := lessonRow(1, "1.1 Texto", ptr(m1.ID))
	withText.Metadata = datatypes.JSONMap{"duration": "15 min"}
	withNumber := lessonRow(2, "1.2 Numero", ptr(m1.ID))
	withNumber.Metadata = datatypes.JSONMap{"duration": float64(12)}
	score := 0.82
	withNumber.FidelityScore = &score

	got := Reconstruct(testProject, []domain.ContentRecord{m1, withText, withNumber})

	require.Len(t, got.Modules, 1)
	assert.Equal(t, "Abertura do curso", got.Modules[0].Description)
	require.Len(t, got.Modules[0].Lessons, 2)
	assert.Equal(t, "15 min", got.Modules[0].Lessons[0].Duration)
	assert.Equal(t, "12", got.Modules[0].Lessons[1].Duration)
	require.NotNil(t, got.Modules[0].Lessons[1].FidelityScore)
	assert.InDelta(t, 0.82, *got.Modules[0].Lessons[1].FidelityScore, 1e-9)
}

func TestReconstruct_ModuleWithoutLessonsKept(t *testing.T) {
	got := Reconstruct(testProject, []domain.ContentRecord{moduleRow(1, "Vazio")})

	require.Len(t, got.Modules, 1)
	assert.NotNil(t, got.Modules[0].Lessons)
	assert.Empty(t, got.Modules[0].Lessons)
	assert.Equal(t, 1, got.TotalModules)
}

func TestReconstruct_NoLessonLostOrDuplicated(t *testing.T) {
	m1 := moduleRow(2, "Um")
	m2 := moduleRow(1, "Dois")
	stale := uuid.New()
	rows := []domain.ContentRecord{
		m1, m2,
		lessonRow(1, "1.1 a", nil),
		lessonRow(2, "2.1 b", nil),
		lessonRow(3, "3.1 c", nil),
		lessonRow(4, "d", ptr(m1.ID)),
		lessonRow(5, "e", ptr(stale)),
		lessonRow(1, "0.1 zero", nil),
		lessonRow(1, "f", ptr(m2.ID)),
		{ID: uuid.New(), ContentType: "report_x"},
	}

	got := Reconstruct(testProject, rows)

	seen := map[string]int{}
	total := 0
	for _, m := range got.Modules {
		for _, l := range m.Lessons {
			seen[l.ID]++
			total++
		}
	}
	assert.Equal(t, countLessons(rows), total)
	assert.Equal(t, total, got.TotalLessons)
	for id, n := range seen {
		assert.Equalf(t, 1, n, "lesson %s placed %d times", id, n)
	}
	assert.Equal(t, 2, got.TotalModules)
	assert.Len(t, got.Modules, 3)
}

func TestReconstruct_Idempotent(t *testing.T) {
	m1 := moduleRow(1, "Um")
	rows := []domain.ContentRecord{
		m1,
		lessonRow(1, "1.2", ptr(m1.ID)),
		lessonRow(1, "1.10", ptr(m1.ID)),
		lessonRow(1, "solta", nil),
		{ID: uuid.New(), ContentType: "resource_pdf", Title: "pdf"},
	}

	first := Reconstruct(testProject, rows)
	second := Reconstruct(testProject, rows)

	assert.Equal(t, first, second)
}

func TestReconstruct_DoesNotMutateInput(t *testing.T) {
	rows := []domain.ContentRecord{
		lessonRow(2, "b", nil),
		moduleRow(2, "M2"),
		moduleRow(1, "M1"),
		lessonRow(1, "a", nil),
	}
	before := make([]domain.ContentRecord, len(rows))
	copy(before, rows)

	Reconstruct(testProject, rows)

	assert.Equal(t, before, rows)
}
