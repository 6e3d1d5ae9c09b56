package payroll

import (
	"go-finboard/internal/middleware"
	"go-finboard/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	rdb *redis.Client,
) {
	payments := r.Group("/salary-payments")
	payments.Use(middleware.AuthMiddleware())
	{
		payments.GET("", middleware.RBACAuthorize(rbacService, "salary_payment", "read"), handler.GetAllPayments)
		payments.GET("/:id", middleware.RBACAuthorize(rbacService, "salary_payment", "read"), handler.GetPaymentById)
		payments.POST("",
			middleware.RBACAuthorize(rbacService, "salary_payment", "create"),
			middleware.Idempotency(rdb),
			handler.CreatePayment,
		)
	}

	pendingCosts := r.Group("/pending-costs")
	pendingCosts.Use(middleware.AuthMiddleware())
	{
		pendingCosts.GET("", middleware.RBACAuthorize(rbacService, "pending_cost", "read"), handler.GetAllPendingCosts)
		pendingCosts.GET("/:id", middleware.RBACAuthorize(rbacService, "pending_cost", "read"), handler.GetPendingCostById)
		pendingCosts.POST("/:id/review",
			middleware.RBACAuthorize(rbacService, "pending_cost", "approve"),
			middleware.Idempotency(rdb),
			handler.Review,
		)
	}
}
