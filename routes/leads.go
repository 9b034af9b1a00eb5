package routes

import (
	"github.com/eladmalka/gal-fridman-malka-website/handlers/leads"
	"github.com/eladmalka/gal-fridman-malka-website/middleware"

	"github.com/gin-gonic/gin"
)

func LeadsRoutes(r *gin.Engine) {
	r.POST("/api/leads", leads.CreateLead)

	admin := r.Group("/api/admin/leads", middleware.AdminAuth())
	admin.GET("", leads.GetActiveLeads)
	admin.GET("/unseen-count", leads.GetUnseenCount)
	admin.POST("/seen", leads.MarkLeadsSeen)
	admin.POST("/sweep", leads.SweepLeads)
	admin.GET("/trash", leads.GetTrashedLeads)
	admin.DELETE("/trash", leads.PurgeAllTrash)
	admin.POST("/trash/restore-all", leads.RestoreAllTrash)
	admin.DELETE("/:id", leads.TrashLead)
	admin.POST("/:id/restore", leads.RestoreLead)
	admin.DELETE("/:id/permanent", leads.PurgeLead)
}
