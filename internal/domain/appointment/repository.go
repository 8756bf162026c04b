package appointment

import (
	"context"

	"github.com/BruksfildServices01/lahermandad/internal/models"
)

type Repository interface {
	// -------- Appointment --------
	List(ctx context.Context) ([]models.Appointment, error)

	Create(ctx context.Context, ap *models.Appointment) error

	UpdateStatus(
		ctx context.Context,
		id uint,
		status Status,
	) (*models.Appointment, error)

	CountByStatus(ctx context.Context) (map[Status]int64, error)

	// -------- Blocked dates --------
	ListBlockedDays(ctx context.Context) ([]string, error)

	// ToggleBlockedDay deletes day if present, inserts it otherwise, and
	// reports whether the day ends up blocked.
	ToggleBlockedDay(ctx context.Context, day string) (bool, error)
}
