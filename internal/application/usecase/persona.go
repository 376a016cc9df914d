package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/waste3d/course-admin/internal/domain"
	"github.com/waste3d/course-admin/internal/platform/logger"

	"github.com/google/uuid"
)

type PersonaStore interface {
	List(ctx context.Context, projectID *uuid.UUID, search string) ([]domain.AudienceProfile, error)
	GetBySlug(ctx context.Context, slug string) (*domain.AudienceProfile, error)
	Create(ctx context.Context, p *domain.AudienceProfile) error
}

// Completer returns a JSON document for prompt, shaped by schema.
type Completer interface {
	CompleteJSON(ctx context.Context, prompt string, schema map[string]any) (json.RawMessage, error)
}

type PersonaUseCase struct {
	personas  PersonaStore
	projects  ProjectStore
	completer Completer
	log       *logger.Logger
}

// NewPersonaUseCase builds the persona use case. completer may be nil, in
// which case Generate is unavailable.
func NewPersonaUseCase(personas PersonaStore, projects ProjectStore, completer Completer, log *logger.Logger) *PersonaUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &PersonaUseCase{
		personas:  personas,
		projects:  projects,
		completer: completer,
		log:       log.With("component", "persona"),
	}
}

// List returns personas as view models. An empty projectSlug lists all.
func (uc *PersonaUseCase) List(ctx context.Context, projectSlug, search string) ([]domain.PersonaView, error) {
	var projectID *uuid.UUID
	if projectSlug != "" {
		project, err := uc.projects.GetBySlug(ctx, projectSlug)
		if err != nil {
			return nil, err
		}
		projectID = &project.ID
	}

	rows, err := uc.personas.List(ctx, projectID, search)
	if err != nil {
		return nil, err
	}
	out := make([]domain.PersonaView, 0, len(rows))
	for i := range rows {
		out = append(out, ToPersonaView(&rows[i]))
	}
	return out, nil
}

func (uc *PersonaUseCase) Get(ctx context.Context, slug string) (*domain.PersonaView, error) {
	p, err := uc.personas.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	v := ToPersonaView(p)
	return &v, nil
}

// Generate seeds a new persona of the project from a free-text brief.
func (uc *PersonaUseCase) Generate(ctx context.Context, projectSlug, brief string) (*domain.PersonaView, error) {
	brief = strings.TrimSpace(brief)
	if brief == "" {
		return nil, fmt.Errorf("%w: brief is required", domain.ErrInvalidArgument)
	}
	if uc.completer == nil {
		return nil, fmt.Errorf("%w: no generative service configured", domain.ErrGenerationFailed)
	}
	project, err := uc.projects.GetBySlug(ctx, projectSlug)
	if err != nil {
		return nil, err
	}

	raw, err := uc.completer.CompleteJSON(ctx, personaPrompt(project, brief), personaSchema)
	if err != nil {
		uc.log.Error("persona generation failed", "project", projectSlug, "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}
	var draft domain.PersonaDraft
	if err := json.Unmarshal(raw, &draft); err != nil {
		return nil, fmt.Errorf("%w: decode persona: %v", domain.ErrGenerationFailed, err)
	}
	if strings.TrimSpace(draft.Name) == "" {
		return nil, fmt.Errorf("%w: persona without a name", domain.ErrGenerationFailed)
	}

	persona := &domain.AudienceProfile{
		ID:          uuid.New(),
		ProjectID:   &project.ID,
		Name:        strings.TrimSpace(draft.Name),
		AgeRange:    draft.AgeRange,
		Occupation:  draft.Occupation,
		Location:    draft.Location,
		IncomeLevel: draft.IncomeLevel,
		Education:   draft.Education,
		Description: draft.Description,
		PainPoints:  draft.PainPoints,
		Goals:       draft.Goals,
	}
	persona.Slug = Slugify(persona.Name) + "-" + persona.ID.String()[:8]

	if err := uc.personas.Create(ctx, persona); err != nil {
		return nil, fmt.Errorf("save persona: %w", err)
	}
	uc.log.Info("persona generated", "project", projectSlug, "persona", persona.Slug)
	v := ToPersonaView(persona)
	return &v, nil
}

func personaPrompt(project *domain.Project, brief string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Curso: %s\n", project.Name)
	if project.Description != "" {
		fmt.Fprintf(&b, "Descrição do curso: %s\n", project.Description)
	}
	fmt.Fprintf(&b, "Público descrito pelo autor: %s\n", brief)
	b.WriteString("Gere uma buyer persona realista para este curso.")
	return b.String()
}

var personaSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"name":         map[string]any{"type": "string"},
		"age_range":    map[string]any{"type": "string"},
		"occupation":   map[string]any{"type": "string"},
		"location":     map[string]any{"type": "string"},
		"income_level": map[string]any{"type": "string"},
		"education":    map[string]any{"type": "string"},
		"description":  map[string]any{"type": "string"},
		"pain_points":  map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		"goals":        map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
	},
	"required": []string{"name", "description", "pain_points", "goals"},
}

// ToPersonaView fills absent demographic fields with a placeholder.
func ToPersonaView(p *domain.AudienceProfile) domain.PersonaView {
	v := domain.PersonaView{
		ID:          p.ID.String(),
		Slug:        p.Slug,
		Name:        p.Name,
		AgeRange:    orPlaceholder(p.AgeRange),
		Occupation:  orPlaceholder(p.Occupation),
		Location:    orPlaceholder(p.Location),
		IncomeLevel: orPlaceholder(p.IncomeLevel),
		Education:   orPlaceholder(p.Education),
		Description: strings.TrimSpace(p.Description),
		PainPoints:  nonNil(p.PainPoints),
		Goals:       nonNil(p.Goals),
		CreatedAt:   p.CreatedAt,
	}
	if p.ProjectID != nil {
		v.ProjectID = p.ProjectID.String()
	}
	return v
}

func orPlaceholder(s string) string {
	if s = strings.TrimSpace(s); s == "" {
		return domain.NotInformed
	}
	return s
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
