package cost

import (
	"go-finboard/internal/middleware"
	"go-finboard/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
) {
	costs := r.Group("/costs")
	costs.Use(middleware.AuthMiddleware())
	{
		costs.GET("", middleware.RBACAuthorize(rbacService, "cost", "read"), handler.GetAll)
		costs.GET("/:id", middleware.RBACAuthorize(rbacService, "cost", "read"), handler.GetById)
		costs.POST("", middleware.RBACAuthorize(rbacService, "cost", "create"), handler.Create)
		costs.DELETE("/:id", middleware.RBACAuthorize(rbacService, "cost", "delete"), handler.Delete)
	}
}
