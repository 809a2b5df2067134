package dummydb

import (
	"context"

	"github.com/trezcool/feeflow/core/student"
)

type studentRepository struct {
	db *DB
}

var _ student.Repository = (*studentRepository)(nil) // interface compliance check

func NewStudentRepository(db *DB) student.Repository {
	return &studentRepository{db: db}
}

func (repo *studentRepository) QueryAllStudents(ctx context.Context) ([]student.Student, error) {
	if err := repo.db.wait(ctx); err != nil {
		return nil, err
	}
	return repo.db.student.all(), nil
}

func (repo *studentRepository) GetStudentByID(ctx context.Context, id int) (student.Student, error) {
	if err := repo.db.wait(ctx); err != nil {
		return student.Student{}, err
	}
	if std, ok := repo.db.student.get(id); ok {
		return std, nil
	}
	return student.Student{}, student.ErrNotFound
}

func (repo *studentRepository) CreateStudent(ctx context.Context, std student.Student) (student.Student, error) {
	if err := repo.db.wait(ctx); err != nil {
		return student.Student{}, err
	}
	return repo.db.student.insert(std), nil
}

func (repo *studentRepository) UpdateStudent(ctx context.Context, id int, us student.UpdateStudent) (student.Student, error) {
	if err := repo.db.wait(ctx); err != nil {
		return student.Student{}, err
	}
	// only save set fields
	if std, ok := repo.db.student.update(id, us.Apply); ok {
		return std, nil
	}
	return student.Student{}, student.ErrNotFound
}

func (repo *studentRepository) DeleteStudent(ctx context.Context, id int) (student.Student, error) {
	if err := repo.db.wait(ctx); err != nil {
		return student.Student{}, err
	}
	if std, ok := repo.db.student.remove(id); ok {
		return std, nil
	}
	return student.Student{}, student.ErrNotFound
}
