package admin

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

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

// RegisterAuthRoutes registers the unauthenticated login endpoint.
func (h *Handler) RegisterAuthRoutes(rg *gin.RouterGroup) {
	rg.POST("/admin/auth/login", h.Login)
}

// RegisterRoutes registers the JWT-protected dashboard endpoints.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/auth/me", h.GetMe)
	rg.GET("/appointments", h.ListAppointments)
	rg.GET("/appointments/stats", h.Stats)
	rg.GET("/appointments/export", h.Export)
	rg.PATCH("/appointments/:id/status", h.UpdateStatus)
	rg.DELETE("/appointments/:id", h.DeleteAppointment)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	token, admin, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "AUTH_FAILED", "Invalid email or password")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Login failed")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"access_token": token,
		"admin":        admin,
	})
}

func (h *Handler) GetMe(c *gin.Context) {
	adminID := c.GetInt64("admin_id")
	if adminID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	admin, err := h.service.GetAdminByID(c.Request.Context(), adminID)
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Admin not found")
		return
	}
	response.Success(c, http.StatusOK, admin)
}

func (h *Handler) ListAppointments(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid query parameters")
		return
	}

	appointments, err := h.service.ListAppointments(c.Request.Context(), q)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load appointments")
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"appointments": appointments,
		"count":        len(appointments),
	})
}

func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load stats")
		return
	}
	response.Success(c, http.StatusOK, stats)
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	a, err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidStatus):
			response.Error(c, http.StatusBadRequest, "INVALID_STATUS", "Status must be pending, confirmed, completed or cancelled")
		case errors.Is(err, repository.ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Appointment not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update status")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"appointment": a})
}

func (h *Handler) DeleteAppointment(c *gin.Context) {
	err := h.service.DeleteAppointment(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Appointment not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete appointment")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// Export streams the full store as a downloadable table. CSV by default,
// XLSX with ?format=xlsx.
func (h *Handler) Export(c *gin.Context) {
	appointments, err := h.service.ExportAppointments(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to export appointments")
		return
	}

	stamp := time.Now().Format("2006-01-02")

	if strings.EqualFold(c.Query("format"), "xlsx") {
		data, err := ExportXLSX(appointments)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build spreadsheet")
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="appointments_%s.xlsx"`, stamp))
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
		return
	}

	data, err := ExportCSV(appointments)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build CSV")
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="appointments_%s.csv"`, stamp))
	c.Data(http.StatusOK, "text/csv", data)
}
