package repository

import (
	"context"
	"errors"
	"time"

	"autocare/internal/domain"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

type AppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

type appointmentModel struct {
	ID              string    `gorm:"column:id;primaryKey"`
	CustomerName    string    `gorm:"column:customer_name"`
	CustomerEmail   string    `gorm:"column:customer_email"`
	CustomerPhone   string    `gorm:"column:customer_phone"`
	ServiceType     string    `gorm:"column:service_type"`
	VehicleInfo     string    `gorm:"column:vehicle_info"`
	PreferredDate   string    `gorm:"column:preferred_date;index"`
	PreferredTime   string    `gorm:"column:preferred_time"`
	AdditionalNotes *string   `gorm:"column:additional_notes"`
	NotifyEmail     bool      `gorm:"column:notification_email"`
	NotifySMS       bool      `gorm:"column:notification_sms"`
	Status          string    `gorm:"column:status;index"`
	CreatedAt       time.Time `gorm:"column:created_at;index"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

func (appointmentModel) TableName() string { return "appointments" }

func toDomainAppointment(m appointmentModel) *domain.Appointment {
	var notes string
	if m.AdditionalNotes != nil {
		notes = *m.AdditionalNotes
	}

	return &domain.Appointment{
		ID:              m.ID,
		CustomerName:    m.CustomerName,
		CustomerEmail:   m.CustomerEmail,
		CustomerPhone:   m.CustomerPhone,
		ServiceType:     m.ServiceType,
		VehicleInfo:     m.VehicleInfo,
		PreferredDate:   m.PreferredDate,
		PreferredTime:   m.PreferredTime,
		AdditionalNotes: notes,
		NotifyEmail:     m.NotifyEmail,
		NotifySMS:       m.NotifySMS,
		Status:          domain.AppointmentStatus(m.Status),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func toAppointmentModel(a *domain.Appointment) appointmentModel {
	var notes *string
	if a.AdditionalNotes != "" {
		v := a.AdditionalNotes
		notes = &v
	}

	return appointmentModel{
		ID:              a.ID,
		CustomerName:    a.CustomerName,
		CustomerEmail:   a.CustomerEmail,
		CustomerPhone:   a.CustomerPhone,
		ServiceType:     a.ServiceType,
		VehicleInfo:     a.VehicleInfo,
		PreferredDate:   a.PreferredDate,
		PreferredTime:   a.PreferredTime,
		AdditionalNotes: notes,
		NotifyEmail:     a.NotifyEmail,
		NotifySMS:       a.NotifySMS,
		Status:          string(a.Status),
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

func (r *AppointmentRepository) Create(ctx context.Context, a *domain.Appointment) error {
	m := toAppointmentModel(a)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*a = *toDomainAppointment(m)
	return nil
}

func (r *AppointmentRepository) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	var m appointmentModel
	tx := r.db.WithContext(ctx).Where("id = ?", id).First(&m)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, tx.Error
	}
	return toDomainAppointment(m), nil
}

// List returns appointments ordered by creation time, most recent first.
func (r *AppointmentRepository) List(ctx context.Context, limit, offset int) ([]domain.Appointment, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}

	var models []appointmentModel
	if err := q.Find(&models).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Appointment, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainAppointment(m))
	}
	return out, nil
}

// Search filters by free text over name, email, vehicle and service, and
// optionally by status. Ordering matches List.
func (r *AppointmentRepository) Search(ctx context.Context, term, status string, limit, offset int) ([]domain.Appointment, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if term != "" {
		like := "%" + term + "%"
		q = q.Where(
			"customer_name LIKE ? OR customer_email LIKE ? OR vehicle_info LIKE ? OR service_type LIKE ?",
			like, like, like, like,
		)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}

	var models []appointmentModel
	if err := q.Find(&models).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Appointment, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainAppointment(m))
	}
	return out, nil
}

func (r *AppointmentRepository) UpdateStatus(ctx context.Context, id string, status string) error {
	tx := r.db.WithContext(ctx).
		Model(&appointmentModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     status,
			"updated_at": time.Now(),
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *AppointmentRepository) Delete(ctx context.Context, id string) error {
	tx := r.db.WithContext(ctx).Where("id = ?", id).Delete(&appointmentModel{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

type AppointmentStats struct {
	Total     int64 `json:"total"`
	Today     int64 `json:"today"`
	Pending   int64 `json:"pending"`
	Completed int64 `json:"completed"`
}

func (r *AppointmentRepository) Stats(ctx context.Context, today string) (*AppointmentStats, error) {
	var stats AppointmentStats
	db := r.db.WithContext(ctx).Model(&appointmentModel{})

	if err := db.Count(&stats.Total).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&appointmentModel{}).
		Where("preferred_date = ?", today).Count(&stats.Today).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&appointmentModel{}).
		Where("status = ?", string(domain.AppointmentPending)).Count(&stats.Pending).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&appointmentModel{}).
		Where("status = ?", string(domain.AppointmentCompleted)).Count(&stats.Completed).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}
