package leads

import (
	"net/http"
	"strconv"
	"time"

	"github.com/eladmalka/gal-fridman-malka-website/config"
	"github.com/eladmalka/gal-fridman-malka-website/db"
	"github.com/eladmalka/gal-fridman-malka-website/models"
	"github.com/eladmalka/gal-fridman-malka-website/utils"
	mailsmodels "github.com/eladmalka/gal-fridman-malka-website/utils/mails-models"

	"github.com/gin-gonic/gin"
)

// @Summary Submit a contact form lead
// @Description Submit a new lead with the provided information
// @Tags leads
// @Accept json
// @Produce json
// @Param lead body models.LeadCreate true "Lead information"
// @Success 201 {object} map[string]interface{} "message: Lead submitted successfully, lead: created lead"
// @Failure 400 {object} map[string]interface{} "error: Invalid input"
// @Failure 500 {object} map[string]interface{} "error: Error message"
// @Router /leads [post]
func CreateLead(c *gin.Context) {
	var leadInput models.LeadCreate

	if err := c.ShouldBindJSON(&leadInput); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid input: " + err.Error(),
		})
		return
	}

	lead := models.Lead{
		Name:          leadInput.Name,
		Phone:         leadInput.Phone,
		Email:         leadInput.Email,
		Status:        leadInput.Status,
		Goals:         leadInput.Goals,
		ContactMethod: leadInput.ContactMethod,
		Seen:          false,
	}

	result := db.DB.Create(&lead)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": result.Error.Error(),
		})
		return
	}

	// Notify the owner without holding up or failing the submission
	go mailsmodels.LeadNotification(mailsmodels.LeadEmailData{
		Name:          lead.Name,
		Phone:         lead.Phone,
		Email:         lead.Email,
		Status:        lead.Status,
		Goals:         lead.Goals,
		ContactMethod: lead.ContactMethod,
	})

	utils.LogSuccess("Lead submitted")
	c.JSON(http.StatusCreated, gin.H{
		"message": "Lead submitted successfully",
		"lead":    lead,
	})
}

// @Summary List active leads
// @Description Retrieve all leads that are not in the trash, newest first
// @Tags leads
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Lead
// @Failure 500 {object} map[string]interface{} "error: Error message"
// @Router /admin/leads [get]
func GetActiveLeads(c *gin.Context) {
	var activeLeads []models.Lead
	result := db.DB.Where("deleted_at IS NULL").Order("created_at DESC").Find(&activeLeads)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error retrieving leads",
		})
		return
	}

	c.JSON(http.StatusOK, activeLeads)
}

// @Summary List trashed leads
// @Description Retrieve all leads in the trash, most recently trashed first
// @Tags leads
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.TrashedLead
// @Failure 500 {object} map[string]interface{} "error: Error message"
// @Router /admin/leads/trash [get]
func GetTrashedLeads(c *gin.Context) {
	var trashedLeads []models.Lead
	result := db.DB.Where("deleted_at IS NOT NULL").Order("deleted_at DESC").Find(&trashedLeads)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error retrieving trashed leads",
		})
		return
	}

	retainDays := config.GetRetention().TrashRetainDays
	now := time.Now()
	response := make([]models.TrashedLead, 0, len(trashedLeads))
	for _, lead := range trashedLeads {
		response = append(response, models.TrashedLead{
			Lead:           lead,
			DaysUntilPurge: daysUntilPurge(lead.DeletedAt, now, retainDays),
		})
	}

	c.JSON(http.StatusOK, response)
}

// daysUntilPurge is recomputed on every read, never stored
func daysUntilPurge(deletedAt *time.Time, now time.Time, retainDays int) int {
	if deletedAt == nil {
		return retainDays
	}
	elapsedDays := int(now.Sub(*deletedAt).Hours() / 24)
	remaining := retainDays - elapsedDays
	if remaining < 0 {
		return 0
	}
	return remaining
}

// @Summary Count unseen leads
// @Description Count active leads not yet seen by the admin, for the panel badge
// @Tags leads
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "count: number of unseen leads"
// @Failure 500 {object} map[string]interface{} "error: Error message"
// @Router /admin/leads/unseen-count [get]
func GetUnseenCount(c *gin.Context) {
	var count int64
	result := db.DB.Model(&models.Lead{}).Where("seen = ? AND deleted_at IS NULL", false).Count(&count)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error counting unseen leads",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count": count,
	})
}

// MarkSeenInput is the bulk payload for flagging leads as seen
type MarkSeenInput struct {
	IDs []uint `json:"ids" binding:"required"`
}

// @Summary Mark leads as seen
// @Description Flag the given leads as seen; unknown or already seen ids are no-ops
// @Tags leads
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "success: true"
// @Failure 400 {object} map[string]interface{} "error: Invalid input"
// @Failure 500 {object} map[string]interface{} "error: Error message"
// @Router /admin/leads/seen [post]
func MarkLeadsSeen(c *gin.Context) {
	var input MarkSeenInput

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid input: " + err.Error(),
		})
		return
	}

	if len(input.IDs) == 0 {
		c.JSON(http.StatusOK, gin.H{"success": true})
		return
	}

	result := db.DB.Model(&models.Lead{}).Where("id IN ?", input.IDs).Update("seen", true)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error marking leads as seen",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// @Summary Move a lead to the trash
// @Description Soft delete an active lead. Trashing an already trashed or unknown lead is an error, not a no-op.
// @Tags leads
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lead ID"
// @Success 200 {object} map[string]interface{} "success: true"
// @Failure 404 {object} map[string]interface{} "error: Lead not found"
// @Failure 500 {object} map[string]interface{} "error: Error message"
// @Router /admin/leads/{id} [delete]
func TrashLead(c *gin.Context) {
	id, ok := parseLeadID(c)
	if !ok {
		return
	}

	result := db.DB.Model(&models.Lead{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", time.Now())
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error trashing lead",
		})
		return
	}

	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Lead not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// @Summary Restore a lead from the trash
// @Description Clear the trashed state; restoring an already active lead is harmless
// @Tags leads
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lead ID"
// @Success 200 {object} map[string]interface{} "success: true"
// @Failure 404 {object} map[string]interface{} "error: Lead not found"
// @Failure 500 {object} map[string]interface{} "error: Error message"
// @Router /admin/leads/{id}/restore [post]
func RestoreLead(c *gin.Context) {
	id, ok := parseLeadID(c)
	if !ok {
		return
	}

	result := db.DB.Model(&models.Lead{}).Where("id = ?", id).Update("deleted_at", nil)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error restoring lead",
		})
		return
	}

	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Lead not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// @Summary Permanently delete a trashed lead
// @Description Remove a lead for good. Only trashed leads qualify: purging an active lead is refused.
// @Tags leads
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lead ID"
// @Success 200 {object} map[string]interface{} "success: true"
// @Failure 404 {object} map[string]interface{} "error: Lead not found in trash"
// @Failure 500 {object} map[string]interface{} "error: Error message"
// @Router /admin/leads/{id}/permanent [delete]
func PurgeLead(c *gin.Context) {
	id, ok := parseLeadID(c)
	if !ok {
		return
	}

	// The deleted_at guard keeps an active lead from being purged directly
	result := db.DB.Where("id = ? AND deleted_at IS NOT NULL", id).Delete(&models.Lead{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error deleting lead",
		})
		return
	}

	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Lead not found in trash",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// @Summary Empty the trash
// @Description Permanently delete every trashed lead
// @Tags leads
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "count: number of leads removed"
// @Failure 500 {object} map[string]interface{} "error: Error message"
// @Router /admin/leads/trash [delete]
func PurgeAllTrash(c *gin.Context) {
	result := db.DB.Where("deleted_at IS NOT NULL").Delete(&models.Lead{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error emptying the trash",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   result.RowsAffected,
	})
}

// @Summary Restore the whole trash
// @Description Move every trashed lead back to the active list
// @Tags leads
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "count: number of leads restored"
// @Failure 500 {object} map[string]interface{} "error: Error message"
// @Router /admin/leads/trash/restore-all [post]
func RestoreAllTrash(c *gin.Context) {
	result := db.DB.Model(&models.Lead{}).Where("deleted_at IS NOT NULL").Update("deleted_at", nil)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error restoring the trash",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   result.RowsAffected,
	})
}

func parseLeadID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid lead id",
		})
		return 0, false
	}
	return uint(id), true
}
