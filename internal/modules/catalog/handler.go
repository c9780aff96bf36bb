package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"autocare/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/services", h.ListServices)
	rg.GET("/vehicles/makes", h.ListMakes)
	rg.GET("/vehicles/makes/:make/models", h.ListModels)
	rg.GET("/vehicles/years", h.ListYears)
}

func (h *Handler) ListServices(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"services": h.service.Services()})
}

func (h *Handler) ListMakes(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"makes": h.service.Makes()})
}

func (h *Handler) ListModels(c *gin.Context) {
	models := h.service.Models(c.Param("make"))
	if models == nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Unknown vehicle make")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"models": models})
}

func (h *Handler) ListYears(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"years": h.service.Years()})
}
