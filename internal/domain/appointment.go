package domain

import "time"

type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

// ValidAppointmentStatus reports whether s is one of the declared statuses.
// Transitions themselves are unguarded: an administrator may set any declared
// status from any current status, including reverting an erroneous confirmation.
func ValidAppointmentStatus(s AppointmentStatus) bool {
	switch s {
	case AppointmentPending, AppointmentConfirmed, AppointmentCompleted, AppointmentCancelled:
		return true
	}
	return false
}

type Appointment struct {
	ID              string            `json:"id"`
	CustomerName    string            `json:"customer_name" validate:"required"`
	CustomerEmail   string            `json:"customer_email" validate:"required"`
	CustomerPhone   string            `json:"customer_phone" validate:"required"`
	ServiceType     string            `json:"service_type" validate:"required"`
	VehicleInfo     string            `json:"vehicle_info"`
	PreferredDate   string            `json:"preferred_date" validate:"required"` // 2006-01-02
	PreferredTime   string            `json:"preferred_time" validate:"required"` // 15:04
	AdditionalNotes string            `json:"additional_notes"`
	NotifyEmail     bool              `json:"notification_email"`
	NotifySMS       bool              `json:"notification_sms"`
	Status          AppointmentStatus `json:"status"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}
