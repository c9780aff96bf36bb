package booking

type CreateAppointmentRequest struct {
	CustomerName    string `json:"customer_name" binding:"required" validate:"required"`
	CustomerEmail   string `json:"customer_email" binding:"required" validate:"required"`
	CustomerPhone   string `json:"customer_phone" binding:"required" validate:"required"`
	ServiceType     string `json:"service_type" binding:"required" validate:"required"`
	VehicleMake     string `json:"vehicle_make" binding:"required" validate:"required"`
	VehicleModel    string `json:"vehicle_model" binding:"required" validate:"required"`
	VehicleYear     string `json:"vehicle_year" binding:"required" validate:"required"`
	PreferredDate   string `json:"preferred_date" binding:"required" validate:"required"`
	PreferredTime   string `json:"preferred_time" binding:"required" validate:"required"`
	AdditionalNotes string `json:"additional_notes"`

	// Absent controls fall back to defaults: email on, SMS off.
	NotifyEmail *bool `json:"notification_email"`
	NotifySMS   *bool `json:"notification_sms"`
}
