package budget

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
	budgets := r.Group("/budgets")
	budgets.Use(middleware.AuthMiddleware())
	{
		budgets.GET("", middleware.RBACAuthorize(rbacService, "budget", "read"), handler.GetAll)
		budgets.GET("/:month", middleware.RBACAuthorize(rbacService, "budget", "read"), handler.GetByMonth)
		budgets.PUT("", middleware.RBACAuthorize(rbacService, "budget", "manage"), handler.Upsert)
		budgets.DELETE("/:id", middleware.RBACAuthorize(rbacService, "budget", "manage"), handler.Delete)
	}
}
