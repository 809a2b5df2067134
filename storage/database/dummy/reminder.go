package dummydb

import (
	"context"
	"time"

	"github.com/trezcool/feeflow/core/reminder"
)

type reminderRepository struct {
	db *DB
}

var _ reminder.Repository = (*reminderRepository)(nil) // interface compliance check

func NewReminderRepository(db *DB) reminder.Repository {
	return &reminderRepository{db: db}
}

func (repo *reminderRepository) QueryAllTemplates(ctx context.Context) ([]reminder.Template, error) {
	if err := repo.db.wait(ctx); err != nil {
		return nil, err
	}
	return repo.db.reminder.all(), nil
}

func (repo *reminderRepository) GetTemplateByID(ctx context.Context, id int) (reminder.Template, error) {
	if err := repo.db.wait(ctx); err != nil {
		return reminder.Template{}, err
	}
	if tmpl, ok := repo.db.reminder.get(id); ok {
		return tmpl, nil
	}
	return reminder.Template{}, reminder.ErrNotFound
}

func (repo *reminderRepository) CreateTemplate(ctx context.Context, tmpl reminder.Template) (reminder.Template, error) {
	if err := repo.db.wait(ctx); err != nil {
		return reminder.Template{}, err
	}
	return repo.db.reminder.insert(tmpl), nil
}

func (repo *reminderRepository) UpdateTemplate(
	ctx context.Context,
	id int,
	ut reminder.UpdateTemplate,
	updatedAt time.Time,
) (reminder.Template, error) {
	if err := repo.db.wait(ctx); err != nil {
		return reminder.Template{}, err
	}
	tmpl, ok := repo.db.reminder.update(id, func(tmpl *reminder.Template) {
		ut.Apply(tmpl)
		tmpl.UpdatedAt = updatedAt
	})
	if !ok {
		return reminder.Template{}, reminder.ErrNotFound
	}
	return tmpl, nil
}

func (repo *reminderRepository) ToggleTemplateActive(ctx context.Context, id int, updatedAt time.Time) (reminder.Template, error) {
	if err := repo.db.wait(ctx); err != nil {
		return reminder.Template{}, err
	}
	tmpl, ok := repo.db.reminder.update(id, func(tmpl *reminder.Template) {
		tmpl.IsActive = !tmpl.IsActive
		tmpl.UpdatedAt = updatedAt
	})
	if !ok {
		return reminder.Template{}, reminder.ErrNotFound
	}
	return tmpl, nil
}

func (repo *reminderRepository) DeleteTemplate(ctx context.Context, id int) (reminder.Template, error) {
	if err := repo.db.wait(ctx); err != nil {
		return reminder.Template{}, err
	}
	if tmpl, ok := repo.db.reminder.remove(id); ok {
		return tmpl, nil
	}
	return reminder.Template{}, reminder.ErrNotFound
}
