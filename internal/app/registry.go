package app

import (
	"path/filepath"

	"go-finboard/internal/budget"
	"go-finboard/internal/cashtransaction"
	"go-finboard/internal/cost"
	"go-finboard/internal/employee"
	"go-finboard/internal/messaging/kafka"
	"go-finboard/internal/middleware"
	"go-finboard/internal/notification"
	"go-finboard/internal/payroll"
	"go-finboard/internal/rbac"
	"go-finboard/internal/rbac/infra"
	"go-finboard/internal/reporting"
	"go-finboard/internal/wallet"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	budgetRepo := budget.NewRepository(gormDB)
	cashRepo := cashtransaction.NewRepository(gormDB)
	costRepo := cost.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	notificationRepo := notification.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(gormDB)
	payrollRepo := payroll.NewRepository(gormDB)
	walletRepo := wallet.NewRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(
		filepath.Join("internal", "rbac", "infra", "model.conf"),
		filepath.Join("internal", "rbac", "infra", "policy.csv"),
	)
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(enforcer)

	// --- Domain plumbing ---
	ledger := wallet.NewLedger(walletRepo)
	emitter := notification.NewEmitter(notificationRepo)
	spendCache := reporting.NewSpendCache(rdb)

	// --- Services ---
	budgetService := budget.NewService(gormDB, budgetRepo)
	cashService := cashtransaction.NewService(cashRepo)
	costService := cost.NewService(gormDB, costRepo)
	employeeService := employee.NewService(gormDB, employeeRepo, rdb)
	notificationService := notification.NewService(notificationRepo)
	payrollService := payroll.NewService(payroll.ServiceDeps{
		DB:           gormDB,
		Repo:         payrollRepo,
		EmployeeRepo: employeeRepo,
		CostRepo:     costRepo,
		WalletRepo:   walletRepo,
		Ledger:       ledger,
		BudgetRepo:   budgetRepo,
		CashRepo:     cashRepo,
		Outbox:       outboxRepo,
		Emitter:      emitter,
	})
	reportingService := reporting.NewService(spendCache, costRepo, budgetRepo)
	walletService := wallet.NewService(gormDB, walletRepo, ledger)

	// --- Handlers ---
	budgetHandler := budget.NewHandler(budgetService)
	cashHandler := cashtransaction.NewHandler(cashService)
	costHandler := cost.NewHandler(costService)
	employeeHandler := employee.NewHandler(employeeService)
	notificationHandler := notification.NewHandler(notificationService)
	payrollHandler := payroll.NewHandler(payrollService)
	reportingHandler := reporting.NewHandler(reportingService)
	walletHandler := wallet.NewHandler(walletService)

	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(zap.L()))
	router.Use(middleware.RateLimitByIP(rate.Limit(50), 100))

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		budget.RegisterRoutes(api, budgetHandler, rbacService)
		cashtransaction.RegisterRoutes(api, cashHandler, rbacService)
		cost.RegisterRoutes(api, costHandler, rbacService)
		employee.RegisterRoutes(api, employeeHandler, rbacService)
		notification.RegisterRoutes(api, notificationHandler, rbacService)
		payroll.RegisterRoutes(api, payrollHandler, rbacService, rdb)
		reporting.RegisterRoutes(api, reportingHandler, rbacService)
		wallet.RegisterRoutes(api, walletHandler, rbacService)
	}

	return nil
}
