package leads

import (
	"net/http"
	"time"

	"github.com/eladmalka/gal-fridman-malka-website/config"
	"github.com/eladmalka/gal-fridman-malka-website/db"
	"github.com/eladmalka/gal-fridman-malka-website/models"
	"github.com/eladmalka/gal-fridman-malka-website/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SweepAutoTrash moves every active lead older than the auto-trash threshold
// into the trash. The whole sweep is a single UPDATE, so re-running it (or
// racing a concurrent trash/restore) cannot transition a row twice.
func SweepAutoTrash(gdb *gorm.DB, now time.Time) (int64, error) {
	policy := config.GetRetention()
	if !policy.AutoTrashEnabled {
		return 0, nil
	}

	cutoff := now.Add(-time.Duration(policy.AutoTrashDays) * 24 * time.Hour)
	result := gdb.Model(&models.Lead{}).
		Where("deleted_at IS NULL AND created_at < ?", cutoff).
		Update("deleted_at", now)
	return result.RowsAffected, result.Error
}

// SweepAutoPurge permanently removes every lead that has sat in the trash
// longer than the retention window.
func SweepAutoPurge(gdb *gorm.DB, now time.Time) (int64, error) {
	policy := config.GetRetention()

	cutoff := now.Add(-time.Duration(policy.TrashRetainDays) * 24 * time.Hour)
	result := gdb.Where("deleted_at IS NOT NULL AND deleted_at < ?", cutoff).Delete(&models.Lead{})
	return result.RowsAffected, result.Error
}

// RunRetentionSweeps runs both sweeps in order: age out active leads first so
// freshly auto-trashed rows get a full retention window before the purge.
func RunRetentionSweeps(gdb *gorm.DB, now time.Time) (trashed int64, purged int64, err error) {
	trashed, err = SweepAutoTrash(gdb, now)
	if err != nil {
		return trashed, 0, err
	}
	purged, err = SweepAutoPurge(gdb, now)
	return trashed, purged, err
}

// @Summary Run the retention sweeps
// @Description Auto-trash old active leads and purge expired trash, returning both counts
// @Tags leads
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "trashed: count, purged: count"
// @Failure 500 {object} map[string]interface{} "error: Error message"
// @Router /admin/leads/sweep [post]
func SweepLeads(c *gin.Context) {
	trashed, purged, err := RunRetentionSweeps(db.DB, time.Now())
	if err != nil {
		utils.LogError(err, "Retention sweep failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error running retention sweeps",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"trashed": trashed,
		"purged":  purged,
	})
}

// StartRetentionTicker runs the sweeps on an interval for as long as the
// process lives. Sweeps also run on demand from the admin panel, this just
// keeps the tables tidy when nobody logs in for a while.
func StartRetentionTicker(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C {
			trashed, purged, err := RunRetentionSweeps(db.DB, time.Now())
			if err != nil {
				utils.LogError(err, "Scheduled retention sweep failed")
				continue
			}
			if trashed > 0 || purged > 0 {
				utils.LogInfo("Retention sweep moved leads")
			}
		}
	}()
}
