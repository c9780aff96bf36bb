package admin

import (
	"context"
	"time"

	"autocare/internal/domain"
	"autocare/internal/repository"
)

type AppointmentRepository interface {
	List(ctx context.Context, limit, offset int) ([]domain.Appointment, error)
	Search(ctx context.Context, term, status string, limit, offset int) ([]domain.Appointment, error)
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id string, status string) error
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context, today string) (*repository.AppointmentStats, error)
}

type AdminRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.AdminUser, error)
	GetByID(ctx context.Context, id int64) (*domain.AdminUser, error)
	UpdateLastLogin(ctx context.Context, id int64, at time.Time) error
}

// NotificationSender fires the customer-facing fan-out on confirmation.
type NotificationSender interface {
	AppointmentConfirmed(ctx context.Context, a *domain.Appointment)
}
