package student

import (
	"context"

	"github.com/trezcool/feeflow/core"
)

var ErrNotFound = core.NewNotFoundError("student")

type (
	Repository interface {
		QueryAllStudents(ctx context.Context) ([]Student, error)
		GetStudentByID(ctx context.Context, id int) (Student, error)
		CreateStudent(ctx context.Context, std Student) (Student, error)
		UpdateStudent(ctx context.Context, id int, us UpdateStudent) (Student, error)
		DeleteStudent(ctx context.Context, id int) (Student, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, ns NewStudent) (Student, error) {
	return svc.repo.CreateStudent(ctx, Student{
		Name:           ns.Name,
		Email:          ns.Email,
		Phone:          ns.Phone,
		EnrollmentDate: ns.EnrollmentDate,
		Status:         ns.Status,
	})
}

func (svc *Service) QueryAll(ctx context.Context) ([]Student, error) {
	return svc.repo.QueryAllStudents(ctx)
}

func (svc *Service) Filter(ctx context.Context, filter QueryFilter) ([]Student, error) {
	students, err := svc.repo.QueryAllStudents(ctx)
	if err != nil || filter.IsEmpty() {
		return students, err
	}
	filtered := make([]Student, 0, len(students))
	for _, std := range students {
		if filter.Match(std) {
			filtered = append(filtered, std)
		}
	}
	return filtered, nil
}

func (svc *Service) GetByID(ctx context.Context, id int) (Student, error) {
	return svc.repo.GetStudentByID(ctx, id)
}

func (svc *Service) Update(ctx context.Context, id int, us UpdateStudent) (Student, error) {
	return svc.repo.UpdateStudent(ctx, id, us)
}

func (svc *Service) Delete(ctx context.Context, id int) (Student, error) {
	return svc.repo.DeleteStudent(ctx, id)
}
