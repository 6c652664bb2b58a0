package app

import (
	"database/sql"
	"path/filepath"

	"insuregate/internal/auth"
	"insuregate/internal/bandplan"
	"insuregate/internal/employee"
	"insuregate/internal/insurer"
	"insuregate/internal/messaging/kafka"
	"insuregate/internal/organization"
	"insuregate/internal/payment"
	"insuregate/internal/premium"
	"insuregate/internal/rbac"
	"insuregate/internal/rbac/infra"
	"insuregate/internal/salaryband"
	"insuregate/internal/shared/counter"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	organizationRepo := organization.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB, db)
	insurerRepo := insurer.NewRepository(gormDB)
	salaryBandRepo := salaryband.NewRepository(gormDB, db)
	bandPlanRepo := bandplan.NewRepository(gormDB, db)
	premiumRepo := premium.NewRepository(db)
	paymentRepo := payment.NewRepository(gormDB, db)
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(filepath.Join("internal", "rbac", "infra", "model.conf"))
	if err != nil {
		return err
	}
	rbacService, err := rbac.NewService(enforcer)
	if err != nil {
		return err
	}

	// --- Services ---
	authService := auth.NewService(authRepo)
	organizationService := organization.NewService(organizationRepo)
	employeeService := employee.NewService(employeeRepo, counterRepo, outboxRepo, db, rdb)
	insurerService := insurer.NewService(insurerRepo)
	salaryBandService := salaryband.NewService(salaryBandRepo, db)
	bandPlanService := bandplan.NewService(bandPlanRepo, salaryBandRepo, insurerRepo)
	premiumService := premium.NewService(premiumRepo, counterRepo, db)
	paymentService := payment.NewService(paymentRepo, outboxRepo, db)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	organizationHandler := organization.NewHandler(organizationService)
	employeeHandler := employee.NewHandler(employeeService)
	insurerHandler := insurer.NewHandler(insurerService)
	salaryBandHandler := salaryband.NewHandler(salaryBandService)
	bandPlanHandler := bandplan.NewHandler(bandPlanService)
	premiumHandler := premium.NewHandler(premiumService)
	paymentHandler := payment.NewHandler(paymentService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		organization.RegisterRoutes(api, organizationHandler, rbacService)
		employee.RegisterRoutes(api, employeeHandler, rbacService, rdb)
		insurer.RegisterRoutes(api, insurerHandler, rbacService)
		salaryband.RegisterRoutes(api, salaryBandHandler, rbacService)
		bandplan.RegisterRoutes(api, bandPlanHandler, rbacService)
		premium.RegisterRoutes(api, premiumHandler, rbacService, rdb)
		payment.RegisterRoutes(api, paymentHandler, rbacService, rdb)
	}

	return nil
}
