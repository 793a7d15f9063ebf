package consensus

import (
	"hopa-consensus/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, h *Handler, jwtSecret string) {
	group := router.Group("/consensus")
	{
		group.GET("/", h.Index)
		group.GET("/match", h.Match)
		group.GET("/templates", h.ListTemplates)
		group.GET("/templates/by-title", h.GetTemplateByTitle)
		group.GET("/templates/:id", h.GetTemplate)

		admin := group.Group("/templates")
		admin.Use(middleware.AdminAuthMiddleware(jwtSecret))
		{
			admin.POST("/batch", h.BatchCreateTemplates)
			admin.DELETE("/:id", h.DeleteTemplate)
		}
	}
}
