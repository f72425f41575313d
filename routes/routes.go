package routes

import (
	"github.com/gin-gonic/gin"

	"journey-backend/controllers/admins"
	"journey-backend/controllers/authentication"
	"journey-backend/controllers/recommendations"
	"journey-backend/controllers/roadmaps"
	"journey-backend/middleware"
)

// Setup wires the API routes onto the engine.
func Setup(r *gin.Engine, auth *authentication.Handler, roadmap *roadmaps.Handler, rec *recommendations.Handler, admin *admins.Handler, jwtSecret []byte) {
	api := r.Group("/api")

	api.POST("/auth/register", auth.Register)
	api.POST("/auth/login", auth.Login)

	protected := api.Group("")
	protected.Use(middleware.RequireAuth(jwtSecret))
	{
		protected.POST("/auth/logout", auth.Logout)
		protected.GET("/profile", auth.GetProfile)
		protected.PUT("/profile", auth.UpdateProfile)

		protected.GET("/roadmap", roadmap.GetRoadmap)
		protected.POST("/roadmap/generate", roadmap.GenerateRoadmap)
		protected.POST("/roadmap/milestones", roadmap.AddMilestone)
		protected.PUT("/roadmap/milestones/:id", roadmap.UpdateMilestone)
		protected.POST("/roadmap/milestones/:id/toggle", roadmap.ToggleMilestone)
		protected.DELETE("/roadmap/milestones/:id", roadmap.DeleteMilestone)
		protected.POST("/roadmap/resources", roadmap.AddResource)
		protected.DELETE("/roadmap/resources/:id", roadmap.DeleteResource)

		protected.POST("/recommendations/generate", rec.Generate)

		protected.GET("/admin/profile", admin.GetProfile)
		protected.POST("/admin/schools", admin.AddSchool)
		protected.DELETE("/admin/schools/:name", admin.RemoveSchool)
	}
}
