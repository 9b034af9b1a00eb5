package auth

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/eladmalka/gal-fridman-malka-website/config"
	"github.com/eladmalka/gal-fridman-malka-website/db"
	"github.com/eladmalka/gal-fridman-malka-website/models"
	"github.com/eladmalka/gal-fridman-malka-website/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// loginGuard throttles brute-force attempts on the single admin credential.
// The credential is a singleton so one in-process counter is enough; the
// clock is a field so tests can drive the cooldown.
type loginGuard struct {
	mu          sync.Mutex
	failures    int
	lockedUntil time.Time
	now         func() time.Time
}

var guard = &loginGuard{now: time.Now}

// remainingLockout returns the seconds left in the cooldown, or 0 when
// attempts are allowed. Attempts during the cooldown never extend it.
func (g *loginGuard) remainingLockout() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	remaining := g.lockedUntil.Sub(g.now())
	if remaining <= 0 {
		return 0
	}
	// Round up so the caller never sees 0 while still locked
	return int((remaining + time.Second - 1) / time.Second)
}

// recordFailure counts a genuine failed attempt. It reports whether this
// attempt tripped the lockout, the cooldown seconds if so, and the attempts
// left otherwise. The counter restarts once a lockout is armed, so only
// post-cooldown failures build toward the next one.
func (g *loginGuard) recordFailure(policy config.Lockout) (locked bool, remainingSeconds int, attemptsLeft int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.failures++
	if g.failures >= policy.MaxAttempts {
		g.lockedUntil = g.now().Add(time.Duration(policy.CooldownSeconds) * time.Second)
		g.failures = 0
		return true, policy.CooldownSeconds, 0
	}
	return false, 0, policy.MaxAttempts - g.failures
}

func (g *loginGuard) reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.failures = 0
	g.lockedUntil = time.Time{}
}

func fetchPasswordHash() (string, error) {
	var setting models.AdminSetting
	err := db.DB.Where("key = ?", models.SettingAdminPassword).First(&setting).Error
	if err != nil {
		return "", err
	}
	return setting.Value, nil
}

// @Summary Admin login
// @Description Verify the admin password and issue a session token. Three consecutive failures lock logins for a cooldown window.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body models.AdminLogin true "Admin password"
// @Success 200 {object} map[string]interface{} "token: JWT"
// @Failure 400 {object} map[string]interface{} "error: Invalid input"
// @Failure 401 {object} map[string]interface{} "error: Incorrect password, attemptsLeft: remaining attempts"
// @Failure 429 {object} map[string]interface{} "error: Too many attempts, remainingSeconds: cooldown left"
// @Failure 500 {object} map[string]interface{} "error: Error message"
// @Router /admin/login [post]
func Login(c *gin.Context) {
	var input models.AdminLogin

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid input: " + err.Error(),
		})
		return
	}

	if remaining := guard.remainingLockout(); remaining > 0 {
		c.JSON(http.StatusTooManyRequests, gin.H{
			"error":            "Too many failed attempts",
			"remainingSeconds": remaining,
		})
		return
	}

	hash, err := fetchPasswordHash()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Admin password is not configured",
			})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Database error",
			})
		}
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(input.Password)) != nil {
		locked, remainingSeconds, attemptsLeft := guard.recordFailure(config.GetLockout())
		if locked {
			utils.LogError(nil, "Admin login locked out after repeated failures")
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":            "Too many failed attempts",
				"remainingSeconds": remainingSeconds,
			})
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":        "Incorrect password",
			"attemptsLeft": attemptsLeft,
		})
		return
	}

	guard.reset()

	token, err := utils.GenerateAdminJWT(24)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Error creating the token"})
		return
	}

	utils.LogSuccess("Admin login successful")
	c.JSON(http.StatusOK, gin.H{
		"token": token,
	})
}

// @Summary Change the admin password
// @Description Replace the admin password after verifying the current one
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param passwords body models.PasswordChange true "Current and new password"
// @Success 200 {object} map[string]interface{} "success: true"
// @Failure 400 {object} map[string]interface{} "error: Invalid input"
// @Failure 401 {object} map[string]interface{} "error: Current password is incorrect"
// @Failure 500 {object} map[string]interface{} "error: Error message"
// @Router /admin/change-password [post]
func ChangePassword(c *gin.Context) {
	var input models.PasswordChange

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid input: " + err.Error(),
		})
		return
	}

	if len(input.NewPassword) < 6 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "The new password must contain at least 6 characters",
		})
		return
	}

	hash, err := fetchPasswordHash()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Database error",
		})
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(input.CurrentPassword)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Current password is incorrect",
		})
		return
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Error hashing the password"})
		return
	}

	result := db.DB.Model(&models.AdminSetting{}).
		Where("key = ?", models.SettingAdminPassword).
		Update("value", string(newHash))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error saving the new password",
		})
		return
	}

	utils.LogSuccess("Admin password changed")
	c.JSON(http.StatusOK, gin.H{"success": true})
}
