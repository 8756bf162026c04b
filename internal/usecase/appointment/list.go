package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/lahermandad/internal/domain/appointment"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) Execute(ctx context.Context) (domain.Grouped, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return domain.Grouped{}, err
	}
	return domain.GroupForAdmin(list), nil
}
