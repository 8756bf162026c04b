package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/lahermandad/internal/domain/appointment"
	"github.com/BruksfildServices01/lahermandad/internal/httperr"
	"github.com/BruksfildServices01/lahermandad/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentGormRepository) List(
	ctx context.Context,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Order("date ASC").
		Order("id ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *AppointmentGormRepository) Create(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *AppointmentGormRepository) UpdateStatus(
	ctx context.Context,
	id uint,
	status domain.Status,
) (*models.Appointment, error) {

	var ap models.Appointment
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&ap, id).Error; err != nil {
			return err
		}
		if err := domain.SetStatus(&ap, status); err != nil {
			return err
		}
		return tx.Model(&ap).Update("status", ap.Status).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.ErrBusinessMsg("appointment_not_found", "Agendamento não encontrado.")
	}
	if err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) CountByStatus(
	ctx context.Context,
) (map[domain.Status]int64, error) {

	var rows []struct {
		Status string
		Total  int64
	}
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Select("status, COUNT(*) AS total").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make(map[domain.Status]int64, len(rows))
	for _, row := range rows {
		out[domain.Status(row.Status)] = row.Total
	}
	return out, nil
}

// --------------------------------------------------
// Blocked dates
// --------------------------------------------------

func (r *AppointmentGormRepository) ListBlockedDays(
	ctx context.Context,
) ([]string, error) {

	var days []string
	if err := r.db.WithContext(ctx).
		Model(&models.BlockedDate{}).
		Order("day ASC").
		Pluck("day", &days).Error; err != nil {
		return nil, err
	}
	return days, nil
}

func (r *AppointmentGormRepository) ToggleBlockedDay(
	ctx context.Context,
	day string,
) (bool, error) {

	blocked := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("day = ?", day).Delete(&models.BlockedDate{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			return nil
		}

		if err := tx.Create(&models.BlockedDate{Day: day}).Error; err != nil {
			return err
		}
		blocked = true
		return nil
	})

	// Another request blocked the same day first; the day is blocked either way.
	if isUniqueViolation(err) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return blocked, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
