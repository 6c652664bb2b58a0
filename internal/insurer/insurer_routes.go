package insurer

import (
	"insuregate/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbac middleware.RBACService) {
	insurers := r.Group("/insurers")
	insurers.Use(middleware.AuthMiddleware())
	{
		insurers.POST("", middleware.RBACAuthorize(rbac, "insurer", "create"), handler.Create)
		insurers.GET("", middleware.RBACAuthorize(rbac, "insurer", "read"), handler.List)
		insurers.GET("/:id", middleware.RBACAuthorize(rbac, "insurer", "read"), handler.Get)
		insurers.PUT("/:id", middleware.RBACAuthorize(rbac, "insurer", "update"), handler.Update)

		insurers.POST("/:id/plans", middleware.RBACAuthorize(rbac, "insurer", "create"), handler.CreatePlan)
		insurers.GET("/:id/plans", middleware.RBACAuthorize(rbac, "insurer", "read"), handler.ListPlans)
	}

	plans := r.Group("/plans")
	plans.Use(middleware.AuthMiddleware())
	{
		plans.GET("", middleware.RBACAuthorize(rbac, "insurer", "read"), handler.ListAllPlans)
		plans.GET("/:planId", middleware.RBACAuthorize(rbac, "insurer", "read"), handler.GetPlan)
		plans.PUT("/:planId", middleware.RBACAuthorize(rbac, "insurer", "update"), handler.UpdatePlan)
	}
}
