package admin

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"autocare/internal/domain"
	"autocare/internal/metrics"
	jwtsvc "autocare/internal/pkg/jwt"
	"autocare/internal/repository"
)

type Service struct {
	appointments AppointmentRepository
	admins       AdminRepository
	jwt          *jwtsvc.Service
	notifs       NotificationSender

	now func() time.Time
}

func NewService(appointments AppointmentRepository, admins AdminRepository, jwt *jwtsvc.Service, notifs NotificationSender) *Service {
	return &Service{
		appointments: appointments,
		admins:       admins,
		jwt:          jwt,
		notifs:       notifs,
		now:          time.Now,
	}
}

// Login checks credentials and issues a session token. Token expiry is the
// session expiry: there is no server-side inactivity tracking.
func (s *Service) Login(ctx context.Context, email, password string) (string, *domain.AdminUser, error) {
	admin, err := s.admins.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(admin.ID, string(admin.Role))
	if err != nil {
		return "", nil, err
	}

	_ = s.admins.UpdateLastLogin(ctx, admin.ID, s.now())

	admin.PasswordHash = ""
	return token, admin, nil
}

func (s *Service) GetAdminByID(ctx context.Context, id int64) (*domain.AdminUser, error) {
	admin, err := s.admins.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	admin.PasswordHash = ""
	return admin, nil
}

// ListAppointments returns the dashboard view: newest first, optional
// free-text search and status filter.
func (s *Service) ListAppointments(ctx context.Context, q ListQuery) ([]domain.Appointment, error) {
	page := q.Page
	if page <= 0 {
		page = 1
	}
	limit := q.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	offset := (page - 1) * limit

	if q.Search == "" && q.Status == "" {
		return s.appointments.List(ctx, limit, offset)
	}
	return s.appointments.Search(ctx, q.Search, q.Status, limit, offset)
}

func (s *Service) Stats(ctx context.Context) (*repository.AppointmentStats, error) {
	today := s.now().Format("2006-01-02")
	return s.appointments.Stats(ctx, today)
}

// UpdateStatus sets any declared status from any current status. The store
// does not enforce a state machine: administrators may need to revert an
// erroneous confirmation. Transitioning to confirmed fires the notifier for
// the channels the record opted into; the fan-out is re-entrant per call.
func (s *Service) UpdateStatus(ctx context.Context, id string, newStatus string) (*domain.Appointment, error) {
	status := domain.AppointmentStatus(strings.ToLower(strings.TrimSpace(newStatus)))
	if !domain.ValidAppointmentStatus(status) {
		return nil, ErrInvalidStatus
	}

	if _, err := s.appointments.GetByID(ctx, id); err != nil {
		return nil, err
	}

	if err := s.appointments.UpdateStatus(ctx, id, string(status)); err != nil {
		return nil, err
	}
	metrics.IncStatusTransition(string(status))

	a, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if status == domain.AppointmentConfirmed && s.notifs != nil {
		s.notifs.AppointmentConfirmed(ctx, a)
	}

	return a, nil
}

func (s *Service) DeleteAppointment(ctx context.Context, id string) error {
	return s.appointments.Delete(ctx, id)
}

// ExportAppointments returns the full store for export, newest first.
func (s *Service) ExportAppointments(ctx context.Context) ([]domain.Appointment, error) {
	return s.appointments.List(ctx, 0, 0)
}
