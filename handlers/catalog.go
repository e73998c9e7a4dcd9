package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	catalogRepo "github.com/pallala1989/beauty-plaza-online-hub-sub000/database/repository/catalog"
	technicianRepo "github.com/pallala1989/beauty-plaza-online-hub-sub000/database/repository/technician"
	"github.com/pallala1989/beauty-plaza-online-hub-sub000/utils"
)

// CatalogHandler serves the service catalog and technician directory the
// booking wizard consumes.
type CatalogHandler struct {
	Services    catalogRepo.ServiceRepository
	Technicians technicianRepo.TechnicianRepository
}

// NewCatalogHandler constructs a CatalogHandler.
func NewCatalogHandler(services catalogRepo.ServiceRepository, technicians technicianRepo.TechnicianRepository) *CatalogHandler {
	return &CatalogHandler{Services: services, Technicians: technicians}
}

// ListServices returns the bookable services.
func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.Services.ListActive(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load services", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// ListTechnicians returns technicians currently offered for new bookings.
func (h *CatalogHandler) ListTechnicians(c *gin.Context) {
	techs, err := h.Technicians.ListAvailable(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load technicians", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"technicians": techs})
}
