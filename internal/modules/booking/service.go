package booking

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"autocare/internal/domain"
	"autocare/internal/metrics"
	"autocare/internal/pkg/phone"
	"autocare/internal/pkg/validator"
)

// the shop is closed on Sundays, no exceptions
const closedWeekday = time.Sunday

const defaultNotes = "None"

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type Service struct {
	appointments AppointmentRepository
	catalog      ServiceCatalog
	notifs       NotificationSender

	now func() time.Time
}

func NewService(appointments AppointmentRepository, catalog ServiceCatalog, notifs NotificationSender) *Service {
	return &Service{
		appointments: appointments,
		catalog:      catalog,
		notifs:       notifs,
		now:          time.Now,
	}
}

// CreateAppointment validates raw intake, persists the record and fires the
// notifier. All rejections happen before any side effect; notifier outcomes
// never fail the call.
func (s *Service) CreateAppointment(ctx context.Context, req CreateAppointmentRequest) (*domain.Appointment, error) {
	if errs := validator.Validate(req); errs != nil {
		return nil, ErrValidation
	}

	if !emailPattern.MatchString(req.CustomerEmail) {
		return nil, ErrInvalidEmail
	}

	// strict regional format is the canonical intake rule; the lenient
	// digit-count bound only applies when converting for SMS dispatch
	if !phone.ValidAU(req.CustomerPhone) {
		return nil, ErrInvalidPhone
	}

	if !s.catalog.ValidService(req.ServiceType) {
		return nil, ErrUnknownService
	}

	day, err := time.Parse("2006-01-02", req.PreferredDate)
	if err != nil {
		return nil, ErrInvalidDate
	}

	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, now.Location())
	if day.Before(today) {
		return nil, ErrPastDate
	}
	if day.Weekday() == closedWeekday {
		return nil, ErrClosedDay
	}

	if _, err := time.Parse("15:04", req.PreferredTime); err != nil {
		return nil, ErrInvalidTime
	}

	notes := req.AdditionalNotes
	if notes == "" {
		notes = defaultNotes
	}

	notifyEmail := true
	if req.NotifyEmail != nil {
		notifyEmail = *req.NotifyEmail
	}
	notifySMS := false
	if req.NotifySMS != nil {
		notifySMS = *req.NotifySMS
	}

	a := &domain.Appointment{
		ID:              uuid.NewString(),
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		ServiceType:     req.ServiceType,
		VehicleInfo:     fmt.Sprintf("%s %s %s", req.VehicleYear, req.VehicleMake, req.VehicleModel),
		PreferredDate:   req.PreferredDate,
		PreferredTime:   req.PreferredTime,
		AdditionalNotes: notes,
		NotifyEmail:     notifyEmail,
		NotifySMS:       notifySMS,
		Status:          domain.AppointmentPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.appointments.Create(ctx, a); err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == "23505" {
			return nil, ErrConflict
		}
		return nil, err
	}

	metrics.IncAppointmentCreated()

	if s.notifs != nil {
		s.notifs.AppointmentCreated(ctx, a)
	}

	return a, nil
}

// GetAppointment returns one appointment, for the post-submit confirmation view.
func (s *Service) GetAppointment(ctx context.Context, id string) (*domain.Appointment, error) {
	return s.appointments.GetByID(ctx, id)
}
