package booking

import (
	"context"

	"autocare/internal/domain"
)

// AppointmentRepository is the store contract the intake flow needs.
type AppointmentRepository interface {
	Create(ctx context.Context, a *domain.Appointment) error
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
}

// ServiceCatalog answers whether a submitted service slug is offered.
type ServiceCatalog interface {
	ValidService(slug string) bool
}

// NotificationSender fires the best-effort fan-out after persistence.
// Implementations never return; failures are logged inside.
type NotificationSender interface {
	AppointmentCreated(ctx context.Context, a *domain.Appointment)
}
