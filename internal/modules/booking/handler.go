package booking

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"autocare/internal/pkg/response"
	"autocare/internal/repository"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/appointments", h.CreateAppointment)
	rg.GET("/appointments/:id", h.GetAppointment)
}

func (h *Handler) CreateAppointment(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	a, err := h.service.CreateAppointment(c.Request.Context(), req)
	if err != nil {
		code, msg := rejectionReason(err)
		if code == "" {
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to save your booking. Please try again or call us.")
			return
		}
		response.Error(c, http.StatusBadRequest, code, msg)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"appointment": gin.H{
			"id":     a.ID,
			"status": a.Status,
		},
	})
}

func (h *Handler) GetAppointment(c *gin.Context) {
	a, err := h.service.GetAppointment(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Appointment not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load appointment")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"appointment": a})
}

// rejectionReason maps intake errors to the user-facing reason per violation.
// Returns an empty code for errors that are not user-correctable.
func rejectionReason(err error) (code, msg string) {
	switch {
	case errors.Is(err, ErrValidation):
		return "VALIDATION_ERROR", "Please fill in all required fields"
	case errors.Is(err, ErrInvalidEmail):
		return "INVALID_EMAIL", "Please enter a valid email address"
	case errors.Is(err, ErrInvalidPhone):
		return "INVALID_PHONE", "Please enter a valid Australian phone number"
	case errors.Is(err, ErrInvalidDate), errors.Is(err, ErrInvalidTime):
		return "VALIDATION_ERROR", "Please select a valid date and time"
	case errors.Is(err, ErrPastDate):
		return "PAST_DATE", "Please select a future date"
	case errors.Is(err, ErrClosedDay):
		return "CLOSED_DAY", "Sorry, we are closed on Sundays. Please select another day."
	case errors.Is(err, ErrUnknownService):
		return "UNKNOWN_SERVICE", "Please choose one of the offered services"
	}
	return "", ""
}
