package wallet

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
	wallets := r.Group("/wallets")
	wallets.Use(middleware.AuthMiddleware())
	{
		wallets.GET("", middleware.RBACAuthorize(rbacService, "wallet", "read"), handler.GetAll)
		wallets.GET("/:id", middleware.RBACAuthorize(rbacService, "wallet", "read"), handler.GetById)
		wallets.GET("/:id/transactions", middleware.RBACAuthorize(rbacService, "wallet", "read"), handler.GetTransactions)
		wallets.POST("", middleware.RBACAuthorize(rbacService, "wallet", "create"), handler.Create)
		wallets.PUT("/:id", middleware.RBACAuthorize(rbacService, "wallet", "update"), handler.Update)
		wallets.POST("/:id/deposit", middleware.RBACAuthorize(rbacService, "wallet", "update"), handler.Deposit)
		wallets.POST("/transfer", middleware.RBACAuthorize(rbacService, "wallet", "transfer"), handler.Transfer)
	}
}
