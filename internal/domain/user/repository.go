package user

import (
	"context"

	"github.com/BruksfildServices01/lahermandad/internal/models"
)

type Repository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id uint) (*models.User, error)
}
