package handlers

import (
	"net/http"

	partyRepo "salonapi/database/repository/party"
	"salonapi/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StaffHandler exposes the public staff directory.
type StaffHandler struct {
	Parties partyRepo.PartyRepository
	Logger  *zap.Logger
}

// NewStaffHandler creates a StaffHandler.
func NewStaffHandler(parties partyRepo.PartyRepository, logger *zap.Logger) *StaffHandler {
	return &StaffHandler{Parties: parties, Logger: logger}
}

// GetStaffBySalon lists a salon's staff members with sensitive fields
// filtered out.
func (h *StaffHandler) GetStaffBySalon(c *gin.Context) {
	staff, err := h.Parties.ListStaffBySalon(c.Request.Context(), c.Param("salonId"))
	if err != nil {
		h.Logger.Error("failed to list staff", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	profiles := make([]models.StaffProfile, 0, len(staff))
	for _, s := range staff {
		p := s.PublicProfile()
		p.SalonID = ""
		profiles = append(profiles, p)
	}
	c.JSON(http.StatusOK, profiles)
}

// GetStaffByID returns one staff member's public profile. Documents whose
// role is not "staff" read as absent.
func (h *StaffHandler) GetStaffByID(c *gin.Context) {
	staff, err := h.Parties.GetStaffByID(c.Request.Context(), c.Param("staffId"))
	if err != nil {
		h.Logger.Error("failed to fetch staff", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if staff == nil || staff.Role != models.RoleStaff {
		c.JSON(http.StatusNotFound, gin.H{"error": "Staff member not found"})
		return
	}
	c.JSON(http.StatusOK, staff.PublicProfile())
}
