package cashtransaction

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
	transactions := r.Group("/cash-transactions")
	transactions.Use(middleware.AuthMiddleware())
	{
		transactions.GET("", middleware.RBACAuthorize(rbacService, "cash_transaction", "read"), handler.GetAll)
		transactions.POST("", middleware.RBACAuthorize(rbacService, "cash_transaction", "create"), handler.Create)
	}
}
