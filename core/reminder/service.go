package reminder

import (
	"context"
	"time"

	"github.com/trezcool/feeflow/core"
)

var (
	ErrNotFound = core.NewNotFoundError("reminder template")

	nowFunc = time.Now // mockable
)

type (
	Repository interface {
		QueryAllTemplates(ctx context.Context) ([]Template, error)
		GetTemplateByID(ctx context.Context, id int) (Template, error)
		CreateTemplate(ctx context.Context, tmpl Template) (Template, error)
		// UpdateTemplate merges ut into the stored template and sets its UpdatedAt.
		UpdateTemplate(ctx context.Context, id int, ut UpdateTemplate, updatedAt time.Time) (Template, error)
		DeleteTemplate(ctx context.Context, id int) (Template, error)
		// ToggleTemplateActive flips IsActive and sets UpdatedAt.
		ToggleTemplateActive(ctx context.Context, id int, updatedAt time.Time) (Template, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, nt NewTemplate) (Template, error) {
	now := nowFunc().UTC()
	tmpl := Template{
		Name:      nt.Name,
		Type:      nt.Type,
		Subject:   nt.Subject,
		Template:  nt.Template,
		IsActive:  true,
		Schedule:  Schedule{Frequency: nt.Schedule.Frequency},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if nt.IsActive != nil {
		tmpl.IsActive = *nt.IsActive
	}
	if nt.Schedule.DaysBefore != nil {
		tmpl.Schedule.DaysBefore = *nt.Schedule.DaysBefore
	}
	return svc.repo.CreateTemplate(ctx, tmpl)
}

func (svc *Service) QueryAll(ctx context.Context) ([]Template, error) {
	return svc.repo.QueryAllTemplates(ctx)
}

func (svc *Service) Filter(ctx context.Context, filter QueryFilter) ([]Template, error) {
	templates, err := svc.repo.QueryAllTemplates(ctx)
	if err != nil || filter.IsEmpty() {
		return templates, err
	}
	filtered := make([]Template, 0, len(templates))
	for _, tmpl := range templates {
		if filter.Match(tmpl) {
			filtered = append(filtered, tmpl)
		}
	}
	return filtered, nil
}

func (svc *Service) GetByID(ctx context.Context, id int) (Template, error) {
	return svc.repo.GetTemplateByID(ctx, id)
}

func (svc *Service) Update(ctx context.Context, id int, ut UpdateTemplate) (Template, error) {
	return svc.repo.UpdateTemplate(ctx, id, ut, nowFunc().UTC())
}

func (svc *Service) ToggleActive(ctx context.Context, id int) (Template, error) {
	return svc.repo.ToggleTemplateActive(ctx, id, nowFunc().UTC())
}

func (svc *Service) Delete(ctx context.Context, id int) (Template, error) {
	return svc.repo.DeleteTemplate(ctx, id)
}
