package app

import (
	"employee-management/internal/employee"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(router gin.IRouter, gormDB *gorm.DB, logger *zap.Logger) {
	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB)

	// --- Services ---
	employeeService := employee.NewService(employeeRepo, logger)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService, logger)

	// --- Routes Registration ---
	employee.RegisterRoutes(router, employeeHandler)
}
